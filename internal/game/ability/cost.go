package ability

import (
	"github.com/emberfall/battle-server-go/internal/core"
)

// CostKind discriminates Cost variants.
type CostKind uint8

const (
	// CostEnergy is an energy payment.
	CostEnergy CostKind = iota
	// CostAbandonCharacters requires moving Count matching characters from
	// the battlefield to the void.
	CostAbandonCharacters
)

// Cost is a price attached to an ability, a trigger, or a counterspell
// negotiation.
type Cost struct {
	Kind      CostKind
	Energy    core.Energy
	Count     int
	Predicate *Predicate
}

// EnergyCost returns an energy payment cost.
func EnergyCost(amount core.Energy) *Cost {
	return &Cost{Kind: CostEnergy, Energy: amount}
}

// ConditionKind discriminates Condition variants.
type ConditionKind uint8

const (
	// ConditionPredicateCount requires at least Count battlefield matches of
	// Predicate.
	ConditionPredicateCount ConditionKind = iota
	// ConditionCardsInVoidCount requires at least Count cards in the
	// controller's void.
	ConditionCardsInVoidCount
	// ConditionEnergyAtLeast requires the controller to have at least Energy.
	ConditionEnergyAtLeast
)

// Condition is a pre-check evaluated against live state before an effect
// applies.
type Condition struct {
	Kind      ConditionKind
	Count     int
	Predicate *Predicate
	Energy    core.Energy
}
