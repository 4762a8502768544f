package game

import (
	"github.com/emberfall/battle-server-go/internal/core"
)

// EffectSourceKind describes what produced an effect.
type EffectSourceKind uint8

const (
	// SourceGame is an effect produced by game rules rather than a card.
	SourceGame EffectSourceKind = iota
	// SourceEvent is an event card resolving from the stack.
	SourceEvent
	// SourceTriggered is a triggered ability firing.
	SourceTriggered
	// SourceActivated is an activated ability being used.
	SourceActivated
)

// EffectSource identifies the origin of an effect: the controlling player,
// the card (if any), and which of the card's abilities produced it.
type EffectSource struct {
	Kind          EffectSourceKind
	Controller    core.PlayerName
	Card          CardID
	AbilityNumber int
}

// GameSource returns a source for rules-produced effects.
func GameSource(controller core.PlayerName) EffectSource {
	return EffectSource{Kind: SourceGame, Controller: controller, Card: NoCard}
}

// EventSource returns a source for an event card's ability.
func EventSource(controller core.PlayerName, card CardID, abilityNumber int) EffectSource {
	return EffectSource{
		Kind:          SourceEvent,
		Controller:    controller,
		Card:          card,
		AbilityNumber: abilityNumber,
	}
}

// TriggeredSource returns a source for a triggered ability.
func TriggeredSource(controller core.PlayerName, card CardID, abilityNumber int) EffectSource {
	return EffectSource{
		Kind:          SourceTriggered,
		Controller:    controller,
		Card:          card,
		AbilityNumber: abilityNumber,
	}
}

// ActivatedSource returns a source for an activated ability.
func ActivatedSource(controller core.PlayerName, card CardID, abilityNumber int) EffectSource {
	return EffectSource{
		Kind:          SourceActivated,
		Controller:    controller,
		Card:          card,
		AbilityNumber: abilityNumber,
	}
}

// CardID returns the source card, or false for rules-produced effects.
func (s EffectSource) CardID() (CardID, bool) {
	if s.Card == NoCard {
		return NoCard, false
	}
	return s.Card, true
}
