package predicates

import (
	"github.com/emberfall/battle-server-go/internal/game"
	"github.com/emberfall/battle-server-go/internal/game/ability"
)

// CharacterTargetPredicate returns the character-target predicate of an
// effect, or nil if the effect does not target a character.
func CharacterTargetPredicate(effect *ability.StandardEffect) *ability.Predicate {
	switch effect.Kind {
	case ability.EffectDissolveCharacter,
		ability.EffectBanishCharacter,
		ability.EffectReturnToHand,
		ability.EffectGainsSpark:
		return effect.Target
	default:
		return nil
	}
}

// StackTargetPredicate returns the stack-card-target predicate of an effect,
// or nil if the effect does not target the stack.
func StackTargetPredicate(effect *ability.StandardEffect) *ability.Predicate {
	switch effect.Kind {
	case ability.EffectCounterspell, ability.EffectCounterspellUnlessPaysCost:
		return effect.Target
	default:
		return nil
	}
}

// VoidTargetPredicate returns the void-card-target predicate of an effect,
// or nil if the effect does not target void cards.
func VoidTargetPredicate(effect *ability.StandardEffect) *ability.Predicate {
	switch effect.Kind {
	case ability.EffectReturnFromYourVoidToHand,
		ability.EffectReturnUpToCountFromYourVoidToHand:
		return effect.Target
	default:
		return nil
	}
}

// TargetPredicate returns the target predicate of an effect together with
// the kind of object it selects, or false if the effect is untargeted.
func TargetPredicate(effect *ability.StandardEffect) (*ability.Predicate, game.TargetKind, bool) {
	if p := CharacterTargetPredicate(effect); p != nil {
		return p, game.TargetCharacter, true
	}
	if p := StackTargetPredicate(effect); p != nil {
		return p, game.TargetStackCard, true
	}
	if p := VoidTargetPredicate(effect); p != nil {
		return p, game.TargetVoidCards, true
	}
	return nil, 0, false
}

// HasTargets reports whether the effect selects any target at all.
func HasTargets(effect *ability.StandardEffect) bool {
	_, _, ok := TargetPredicate(effect)
	return ok
}
