// Package prompts builds the player-decision descriptions the engine
// enqueues when targeting cannot be resolved automatically.
package prompts

import (
	"fmt"

	"github.com/emberfall/battle-server-go/internal/core"
	"github.com/emberfall/battle-server-go/internal/game"
	"github.com/emberfall/battle-server-go/internal/game/ability"
	"github.com/emberfall/battle-server-go/internal/game/predicates"
)

// BuildPrompt constructs the prompt needed to resolve an effect's targets,
// or nil when no choice is possible (empty candidate set) or needed. For
// effect lists, only the first sub-effect that needs a prompt produces one;
// the caller invokes this again as each answer advances the queue.
func BuildPrompt(
	b *game.BattleState,
	player core.PlayerName,
	source game.EffectSource,
	effect *ability.Effect,
	thatCard game.CardID,
) *game.PromptData {
	switch {
	case effect.Standard != nil:
		return buildStandardPrompt(b, player, source, effect.Standard, false, thatCard)

	case effect.Options != nil:
		return buildStandardPrompt(b, player, source, &effect.Options.Effect, effect.Options.Optional, thatCard)

	case effect.List != nil:
		for i := range effect.List {
			sub := &effect.List[i]
			if !needsPrompt(b, source, &sub.Effect, thatCard) {
				continue
			}
			return buildStandardPrompt(b, player, source, &sub.Effect, sub.Optional, thatCard)
		}
		return nil

	case effect.Modal != nil:
		return ModalPrompt(source, player, effect.Modal)

	default:
		game.Fault(b, "effect with no variant set")
		return nil
	}
}

// needsPrompt reports whether a standard effect has two or more valid
// targets, the only case that requires a player decision.
func needsPrompt(
	b *game.BattleState,
	source game.EffectSource,
	effect *ability.StandardEffect,
	thatCard game.CardID,
) bool {
	if pred := predicates.CharacterTargetPredicate(effect); pred != nil {
		return predicates.MatchingCharacters(b, source, pred, thatCard).Len() > 1
	}
	if pred := predicates.StackTargetPredicate(effect); pred != nil {
		return predicates.MatchingStackCards(b, source, pred, thatCard).Len() > 1
	}
	if pred := predicates.VoidTargetPredicate(effect); pred != nil {
		return predicates.MatchingVoidCards(b, source, pred).Len() > 1
	}
	return false
}

func buildStandardPrompt(
	b *game.BattleState,
	player core.PlayerName,
	source game.EffectSource,
	effect *ability.StandardEffect,
	optional bool,
	thatCard game.CardID,
) *game.PromptData {
	if pred := predicates.CharacterTargetPredicate(effect); pred != nil {
		valid := predicates.MatchingCharacters(b, source, pred, thatCard)
		if valid.IsEmpty() {
			return nil
		}
		return &game.PromptData{
			Source:          source,
			Player:          player,
			Kind:            game.PromptChooseCharacter,
			Optional:        optional,
			ValidCharacters: valid,
			That:            thatCard,
		}
	}

	if pred := predicates.StackTargetPredicate(effect); pred != nil {
		valid := predicates.MatchingStackCards(b, source, pred, thatCard)
		if valid.IsEmpty() {
			return nil
		}
		return &game.PromptData{
			Source:          source,
			Player:          player,
			Kind:            game.PromptChooseStackCard,
			Optional:        optional,
			ValidStackCards: valid,
			That:            thatCard,
		}
	}

	if pred := predicates.VoidTargetPredicate(effect); pred != nil {
		valid := predicates.MatchingVoidCards(b, source, pred)
		if valid.IsEmpty() {
			return nil
		}
		return &game.PromptData{
			Source:           source,
			Player:           player,
			Kind:             game.PromptChooseVoidCards,
			Optional:         optional,
			ValidVoidCards:   valid,
			MaximumSelection: voidMaximumSelection(effect),
			That:             thatCard,
		}
	}

	return nil
}

// voidMaximumSelection derives how many void cards a prompt may select.
func voidMaximumSelection(effect *ability.StandardEffect) int {
	switch effect.Kind {
	case ability.EffectReturnFromYourVoidToHand:
		return 1
	case ability.EffectReturnUpToCountFromYourVoidToHand:
		return effect.Count
	default:
		return 1
	}
}

// ModalPrompt builds a choice prompt for a modal effect. Modal prompts
// never consult the predicate matcher; the choices themselves are the
// candidate set.
func ModalPrompt(source game.EffectSource, player core.PlayerName, modal []ability.ModalChoice) *game.PromptData {
	choices := make([]game.PromptChoiceOption, len(modal))
	for i, m := range modal {
		effect := m.Effect
		choices[i] = game.PromptChoiceOption{
			Label:      fmt.Sprintf("choice %d", i+1),
			EnergyCost: m.EnergyCost,
			Effect:     &effect,
		}
	}
	return &game.PromptData{
		Source:  source,
		Player:  player,
		Kind:    game.PromptChoice,
		Choices: choices,
		That:    game.NoCard,
	}
}

// YesNoPrompt builds the optional-effect confirmation: applying the effect
// or declining it.
func YesNoPrompt(source game.EffectSource, player core.PlayerName, effect ability.Effect, thatCard game.CardID) *game.PromptData {
	return &game.PromptData{
		Source:   source,
		Player:   player,
		Kind:     game.PromptChoice,
		Optional: true,
		That:     thatCard,
		Choices: []game.PromptChoiceOption{
			{Label: "yes", Effect: &effect},
			{Label: "no"},
		},
	}
}
