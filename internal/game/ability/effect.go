package ability

import (
	"github.com/emberfall/battle-server-go/internal/core"
)

// StandardEffectKind discriminates the closed set of concrete game actions
// an effect can perform. The effect executor's dispatch table is exhaustive
// over this set; reaching an unhandled kind at runtime is an engine fault.
type StandardEffectKind uint8

const (
	// EffectNoEffect does nothing.
	EffectNoEffect StandardEffectKind = iota
	// EffectDrawCards draws Count cards.
	EffectDrawCards
	// EffectDrawCardsForEach draws Count cards per Quantity match.
	EffectDrawCardsForEach
	// EffectDissolveCharacter dissolves a target character.
	EffectDissolveCharacter
	// EffectBanishCharacter banishes a target character.
	EffectBanishCharacter
	// EffectReturnToHand returns a target character to its owner's hand.
	EffectReturnToHand
	// EffectGainsSpark gives a target character +Spark.
	EffectGainsSpark
	// EffectGainEnergy gives the controller Energy.
	EffectGainEnergy
	// EffectPayEnergy removes Energy from the controller.
	EffectPayEnergy
	// EffectGainPoints gives the controller Points.
	EffectGainPoints
	// EffectLosePoints removes Points from the controller.
	EffectLosePoints
	// EffectCounterspell negates a target card on the stack.
	EffectCounterspell
	// EffectCounterspellUnlessPaysCost negates a target stack card unless its
	// controller pays Cost.
	EffectCounterspellUnlessPaysCost
	// EffectForesee looks at the top Count cards of the deck and reorders
	// them or moves them to the void.
	EffectForesee
	// EffectReturnFromYourVoidToHand returns one matching void card to hand.
	EffectReturnFromYourVoidToHand
	// EffectReturnUpToCountFromYourVoidToHand returns up to Count matching
	// void cards to hand.
	EffectReturnUpToCountFromYourVoidToHand
)

func (k StandardEffectKind) String() string {
	switch k {
	case EffectNoEffect:
		return "NoEffect"
	case EffectDrawCards:
		return "DrawCards"
	case EffectDrawCardsForEach:
		return "DrawCardsForEach"
	case EffectDissolveCharacter:
		return "DissolveCharacter"
	case EffectBanishCharacter:
		return "BanishCharacter"
	case EffectReturnToHand:
		return "ReturnToHand"
	case EffectGainsSpark:
		return "GainsSpark"
	case EffectGainEnergy:
		return "GainEnergy"
	case EffectPayEnergy:
		return "PayEnergy"
	case EffectGainPoints:
		return "GainPoints"
	case EffectLosePoints:
		return "LosePoints"
	case EffectCounterspell:
		return "Counterspell"
	case EffectCounterspellUnlessPaysCost:
		return "CounterspellUnlessPaysCost"
	case EffectForesee:
		return "Foresee"
	case EffectReturnFromYourVoidToHand:
		return "ReturnFromYourVoidToHand"
	case EffectReturnUpToCountFromYourVoidToHand:
		return "ReturnUpToCountFromYourVoidToHand"
	default:
		return "Unknown"
	}
}

// QuantityExpression counts something in the live game state, used by
// "for each" effects.
type QuantityExpression struct {
	// Matching counts battlefield characters matching the predicate.
	Matching *Predicate
}

// StandardEffect is one concrete game action together with the data needed
// to apply it. Which payload fields are meaningful depends on Kind.
type StandardEffect struct {
	Kind StandardEffectKind

	Count    int
	Target   *Predicate
	Quantity *QuantityExpression
	Energy   core.Energy
	Points   core.Points
	Spark    core.Spark
	Cost     *Cost
}

// EffectWithOptions wraps a StandardEffect with resolution modifiers.
type EffectWithOptions struct {
	Effect StandardEffect

	// Optional effects offer the controller a yes/no choice before applying.
	Optional bool
	// TriggerCost must be paid for the effect to apply; unaffordable costs
	// silently skip the effect.
	TriggerCost *Cost
	// Condition is checked against live state; false silently skips the
	// effect.
	Condition *Condition
}

// WithOptions wraps a plain StandardEffect with no modifiers set.
func WithOptions(effect StandardEffect) EffectWithOptions {
	return EffectWithOptions{Effect: effect}
}

// ModalChoice is one branch of a modal effect, chosen by the player.
type ModalChoice struct {
	EnergyCost core.Energy
	Effect     Effect
}

// Effect is the evaluation shape of an ability: exactly one of the fields
// is set.
type Effect struct {
	// Standard is a single standard effect.
	Standard *StandardEffect
	// Options is a standard effect with resolution modifiers.
	Options *EffectWithOptions
	// List is an ordered sequence applied via the pending-effect queue.
	List []EffectWithOptions
	// Modal is a set of choices resolved by a player decision.
	Modal []ModalChoice
}

// EffectOf wraps a StandardEffect as an Effect.
func EffectOf(effect StandardEffect) Effect {
	return Effect{Standard: &effect}
}

// ListOf wraps a sequence of standard effects as a list Effect.
func ListOf(effects ...StandardEffect) Effect {
	list := make([]EffectWithOptions, len(effects))
	for i, e := range effects {
		list[i] = WithOptions(e)
	}
	return Effect{List: list}
}
