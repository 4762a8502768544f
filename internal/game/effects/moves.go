package effects

import (
	"github.com/emberfall/battle-server-go/internal/core"
	"github.com/emberfall/battle-server-go/internal/game"
	"github.com/emberfall/battle-server-go/internal/game/ability"
)

// Zone movement helpers. These perform the raw zone bookkeeping plus the
// enter/leave side effects the zones imply: character state creation and
// removal, revealing cards that leave hidden zones, and enqueueing
// materialize/dissolve triggers. Triggered effects are enqueued here and
// consumed by the executor's drain loop, never applied inline.

// drawCards moves up to n cards from the top of p's deck to p's hand and
// returns the number actually drawn. An empty deck stops the draw early.
func (e *Executor) drawCards(b *game.BattleState, p core.PlayerName, n int) int {
	drawn := 0
	for i := 0; i < n; i++ {
		top := b.Cards.TopOfDeck(p, 1)
		if len(top) == 0 {
			break
		}
		b.Cards.MoveCard(p, game.CardID(top[0]), game.ZoneDeck, game.ZoneHand)
		drawn++
	}
	if drawn > 0 {
		e.trace(b, "draw cards", "player", p, "count", drawn)
	}
	return drawn
}

// materializeCharacter moves a card onto its owner's battlefield, creates
// its character state, and enqueues its materialize triggers.
func (e *Executor) materializeCharacter(b *game.BattleState, id game.CardID, from game.Zone) {
	owner := b.Cards.Owner(id)
	b.Cards.MoveCard(owner, id, from, game.ZoneBattlefield)
	def := b.Cards.Definition(id)
	b.Cards.SetCharacterState(owner, game.CharacterID(id), game.CharacterState{Spark: def.Spark})
	e.trace(b, "materialize character", "card", def.Name, "player", owner)
	e.enqueueTriggers(b, id, ability.TriggerMaterialized)
}

// dissolveCharacter moves a battlefield character to its owner's void,
// drops its character state, and enqueues its dissolve triggers.
func (e *Executor) dissolveCharacter(b *game.BattleState, owner core.PlayerName, id game.CharacterID) {
	b.Cards.RemoveCharacterState(owner, id)
	b.Cards.MoveCard(owner, game.CardID(id), game.ZoneBattlefield, game.ZoneVoid)
	e.trace(b, "dissolve character", "card", b.Cards.Definition(game.CardID(id)).Name, "player", owner)
	e.enqueueTriggers(b, game.CardID(id), ability.TriggerDissolved)
}

// banishCharacter moves a battlefield character to its owner's banished
// zone. Banishing fires no triggers.
func (e *Executor) banishCharacter(b *game.BattleState, owner core.PlayerName, id game.CharacterID) {
	b.Cards.RemoveCharacterState(owner, id)
	b.Cards.MoveCard(owner, game.CardID(id), game.ZoneBattlefield, game.ZoneBanished)
	e.trace(b, "banish character", "card", b.Cards.Definition(game.CardID(id)).Name, "player", owner)
}

// returnCharacterToHand moves a battlefield character to its owner's hand.
func (e *Executor) returnCharacterToHand(b *game.BattleState, owner core.PlayerName, id game.CharacterID) {
	b.Cards.RemoveCharacterState(owner, id)
	b.Cards.MoveCard(owner, game.CardID(id), game.ZoneBattlefield, game.ZoneHand)
	e.trace(b, "return character to hand", "card", b.Cards.Definition(game.CardID(id)).Name, "player", owner)
}

// moveStackCardToVoid moves a stack card to its owner's void, removing its
// stack item. Used both for countered cards and for events that have
// finished resolving.
func (e *Executor) moveStackCardToVoid(b *game.BattleState, id game.StackCardID) {
	owner := b.Cards.Owner(game.CardID(id))
	b.Cards.MoveCard(owner, game.CardID(id), game.ZoneStack, game.ZoneVoid)
	e.trace(b, "stack card to void", "card", b.Cards.Definition(game.CardID(id)).Name, "player", owner)
}

// returnVoidCardToHand moves a void card to its owner's hand. Cards leaving
// the void are public knowledge, so the card stays revealed in hand.
func (e *Executor) returnVoidCardToHand(b *game.BattleState, owner core.PlayerName, id game.VoidCardID) {
	b.Cards.MoveCard(owner, game.CardID(id), game.ZoneVoid, game.ZoneHand)
	b.Cards.State(game.CardID(id)).RevealedToOpponent = true
	e.trace(b, "return void card to hand", "card", b.Cards.Definition(game.CardID(id)).Name, "player", owner)
}

// enqueueTriggers appends pending effects for every triggered ability on
// the card listening for the given event.
func (e *Executor) enqueueTriggers(b *game.BattleState, card game.CardID, event ability.TriggerEvent) {
	def := b.Cards.Definition(card)
	controller := b.Cards.Controller(card)
	for i, ab := range def.Abilities {
		if ab.Kind != ability.AbilityTriggered || ab.Trigger != event {
			continue
		}
		source := game.TriggeredSource(controller, card, i)
		for _, pending := range flattenEffect(b, source, ab.Effect, nil, card) {
			b.EnqueuePending(pending)
		}
		e.trace(b, "trigger enqueued", "card", def.Name, "event", event, "ability", i)
	}
}

// flattenEffect converts an effect tree into pending-queue entries. List
// effects become one entry per sub-effect, in order. When pre-resolved
// positional targets are supplied they are split across the entries.
func flattenEffect(
	b *game.BattleState,
	source game.EffectSource,
	effect ability.Effect,
	targets *game.EffectTargets,
	thatCard game.CardID,
) []game.PendingEffect {
	switch {
	case effect.Standard != nil:
		return []game.PendingEffect{{
			Source:   source,
			Effect:   ability.WithOptions(*effect.Standard),
			Targets:  targets,
			ThatCard: thatCard,
		}}
	case effect.Options != nil:
		return []game.PendingEffect{{
			Source:   source,
			Effect:   *effect.Options,
			Targets:  targets,
			ThatCard: thatCard,
		}}
	case effect.List != nil:
		out := make([]game.PendingEffect, len(effect.List))
		for i, sub := range effect.List {
			var subTargets *game.EffectTargets
			if targets.IsList() {
				subTargets = game.StandardTargets(targets.PopFront())
			}
			out[i] = game.PendingEffect{
				Source:   source,
				Effect:   sub,
				Targets:  subTargets,
				ThatCard: thatCard,
			}
		}
		return out
	default:
		game.Fault(b, "cannot flatten modal effect into pending queue", "source", source.Kind)
		return nil
	}
}
