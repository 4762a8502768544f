// Package targeting decides how an effect's targets resolve: automatically
// when exactly one candidate exists, as a no-op when none exist, or by
// deferring to a player prompt when the choice is ambiguous.
package targeting

import (
	"github.com/emberfall/battle-server-go/internal/game"
	"github.com/emberfall/battle-server-go/internal/game/ability"
	"github.com/emberfall/battle-server-go/internal/game/predicates"
)

// Resolution is the outcome of automatic target resolution for one effect.
type Resolution struct {
	// Targets are the resolved targets, nil when the effect is untargeted
	// or has no valid target.
	Targets *game.EffectTargets
	// RequiresPrompt is set when a player decision is needed before the
	// effect can apply.
	RequiresPrompt bool
}

// Resolve attempts automatic resolution for an effect tree. The three-way
// policy is uniform: zero candidates resolve to no target (the effect will
// no-op), exactly one candidate auto-resolves, and two or more require a
// prompt. For effect lists the decision is made independently per
// sub-effect; if any sub-effect needs a prompt the whole list does, so a
// list is never partially auto-resolved.
func Resolve(
	b *game.BattleState,
	source game.EffectSource,
	effect *ability.Effect,
	thatCard game.CardID,
) Resolution {
	switch {
	case effect.Standard != nil:
		target, prompt := ResolveStandard(b, source, effect.Standard, thatCard)
		if prompt {
			return Resolution{RequiresPrompt: true}
		}
		if target == nil {
			return Resolution{}
		}
		return Resolution{Targets: game.StandardTargets(target)}

	case effect.Options != nil:
		target, prompt := ResolveStandard(b, source, &effect.Options.Effect, thatCard)
		if prompt {
			return Resolution{RequiresPrompt: true}
		}
		if target == nil {
			return Resolution{}
		}
		return Resolution{Targets: game.StandardTargets(target)}

	case effect.List != nil:
		list := make([]*game.StandardEffectTarget, len(effect.List))
		for i := range effect.List {
			target, prompt := ResolveStandard(b, source, &effect.List[i].Effect, thatCard)
			if prompt {
				return Resolution{RequiresPrompt: true}
			}
			list[i] = target
		}
		return Resolution{Targets: game.ListTargets(list)}

	case effect.Modal != nil:
		// Modal choices are resolved by a prior player decision; absent one,
		// a prompt is always required.
		return Resolution{RequiresPrompt: true}

	default:
		game.Fault(b, "effect with no variant set")
		return Resolution{}
	}
}

// ResolveStandard attempts automatic resolution for one standard effect.
// It returns the resolved target (nil for untargeted effects and for
// effects with no valid candidate) and whether a prompt is required.
func ResolveStandard(
	b *game.BattleState,
	source game.EffectSource,
	effect *ability.StandardEffect,
	thatCard game.CardID,
) (*game.StandardEffectTarget, bool) {
	if pred := predicates.CharacterTargetPredicate(effect); pred != nil {
		set := predicates.MatchingCharacters(b, source, pred, thatCard)
		switch set.Len() {
		case 0:
			return nil, false
		case 1:
			only, _ := set.GetAtIndex(0)
			return game.CharacterTarget(only), false
		default:
			return nil, true
		}
	}

	if pred := predicates.StackTargetPredicate(effect); pred != nil {
		set := predicates.MatchingStackCards(b, source, pred, thatCard)
		switch set.Len() {
		case 0:
			return nil, false
		case 1:
			only, _ := set.GetAtIndex(0)
			return game.StackCardTarget(only), false
		default:
			return nil, true
		}
	}

	if pred := predicates.VoidTargetPredicate(effect); pred != nil {
		set := predicates.MatchingVoidCards(b, source, pred)
		switch set.Len() {
		case 0:
			return nil, false
		case 1:
			return game.VoidCardsTarget(set), false
		default:
			return nil, true
		}
	}

	return nil, false
}
