// Package ability holds the symbolic card-ability trees produced by the
// upstream rules-text parser. The engine consumes these values; it never
// constructs them from text.
package ability

import (
	"github.com/emberfall/battle-server-go/internal/core"
)

// PredicateKind is the ownership/context qualifier of a Predicate.
type PredicateKind uint8

const (
	// PredicateThis matches the effect's own source card.
	PredicateThis PredicateKind = iota
	// PredicateThat matches the "that card" referenced by a trigger.
	PredicateThat
	// PredicateIt matches any card in an "it" back-reference position.
	PredicateIt
	// PredicateYour matches cards controlled by the effect's controller.
	PredicateYour
	// PredicateEnemy matches cards controlled by the opponent.
	PredicateEnemy
	// PredicateAnother matches controller's cards other than the source.
	PredicateAnother
	// PredicateAny matches cards regardless of controller.
	PredicateAny
	// PredicateAnyOther matches any card other than the source.
	PredicateAnyOther
	// PredicateYourVoid matches cards in the controller's void.
	PredicateYourVoid
	// PredicateEnemyVoid matches cards in the opponent's void.
	PredicateEnemyVoid
)

// Predicate selects a subset of game objects by owner and kind, e.g.
// "enemy character" or "event in your void with cost 2 or less".
type Predicate struct {
	Kind PredicateKind
	Card *CardPredicate
}

// That returns a Predicate matching the referenced "that card".
func That() *Predicate {
	return &Predicate{Kind: PredicateThat}
}

// Your returns a Predicate matching the controller's cards of the given kind.
func Your(card CardPredicate) *Predicate {
	return &Predicate{Kind: PredicateYour, Card: &card}
}

// Enemy returns a Predicate matching the opponent's cards of the given kind.
func Enemy(card CardPredicate) *Predicate {
	return &Predicate{Kind: PredicateEnemy, Card: &card}
}

// YourVoid returns a Predicate matching cards of the given kind in the
// controller's void.
func YourVoid(card CardPredicate) *Predicate {
	return &Predicate{Kind: PredicateYourVoid, Card: &card}
}

// EnemyVoid returns a Predicate matching cards of the given kind in the
// opponent's void.
func EnemyVoid(card CardPredicate) *Predicate {
	return &Predicate{Kind: PredicateEnemyVoid, Card: &card}
}

// CardPredicateKind discriminates CardPredicate variants.
type CardPredicateKind uint8

const (
	// CardPredicateCard matches any card.
	CardPredicateCard CardPredicateKind = iota
	// CardPredicateCharacter matches character cards.
	CardPredicateCharacter
	// CardPredicateEvent matches event cards.
	CardPredicateEvent
	// CardPredicateDream matches dream cards.
	CardPredicateDream
	// CardPredicateCardOnStack matches any card on the stack.
	CardPredicateCardOnStack
	// CardPredicateCharacterWithSpark compares a character's spark against a
	// threshold.
	CardPredicateCharacterWithSpark
	// CardPredicateCardWithCost compares a card's energy cost against a
	// threshold, after matching an inner predicate.
	CardPredicateCardWithCost
	// CardPredicateFast matches cards playable at fast speed, after matching
	// an inner predicate.
	CardPredicateFast
)

// OperatorKind is a numeric comparison form used inside card predicates.
type OperatorKind uint8

const (
	// OpOrLess matches values less than or equal to the threshold.
	OpOrLess OperatorKind = iota
	// OpOrMore matches values greater than or equal to the threshold.
	OpOrMore
	// OpExactly matches values equal to the threshold.
	OpExactly
	// OpHigherBy matches values exactly threshold+amount.
	OpHigherBy
	// OpLowerBy matches values exactly threshold-amount.
	OpLowerBy
)

// Operator is a comparison against a threshold carried by the predicate.
type Operator struct {
	Kind   OperatorKind
	Amount int
}

// CompareInt applies the operator with `value` on the left and `threshold`
// on the right.
func (o Operator) CompareInt(value, threshold int) bool {
	switch o.Kind {
	case OpOrLess:
		return value <= threshold
	case OpOrMore:
		return value >= threshold
	case OpExactly:
		return value == threshold
	case OpHigherBy:
		return value == threshold+o.Amount
	case OpLowerBy:
		return value == threshold-o.Amount
	default:
		return false
	}
}

// CardPredicate is the card-kind half of a Predicate.
type CardPredicate struct {
	Kind CardPredicateKind

	// Target is the inner predicate for CardWithCost and Fast.
	Target *CardPredicate

	// Spark comparison, for CharacterWithSpark.
	Spark         core.Spark
	SparkOperator Operator

	// Cost comparison, for CardWithCost.
	Cost         core.Energy
	CostOperator Operator
}

// AnyCard matches every card.
func AnyCard() CardPredicate { return CardPredicate{Kind: CardPredicateCard} }

// Character matches character cards.
func Character() CardPredicate { return CardPredicate{Kind: CardPredicateCharacter} }

// Event matches event cards.
func Event() CardPredicate { return CardPredicate{Kind: CardPredicateEvent} }

// CharacterWithCost matches characters whose energy cost compares against
// the given threshold.
func CharacterWithCost(cost core.Energy, op Operator) CardPredicate {
	inner := Character()
	return CardPredicate{
		Kind:         CardPredicateCardWithCost,
		Target:       &inner,
		Cost:         cost,
		CostOperator: op,
	}
}

// CharacterWithSpark matches characters whose spark compares against the
// given threshold.
func CharacterWithSpark(spark core.Spark, op Operator) CardPredicate {
	return CardPredicate{
		Kind:          CardPredicateCharacterWithSpark,
		Spark:         spark,
		SparkOperator: op,
	}
}
