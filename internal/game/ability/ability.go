package ability

// AbilityKind discriminates how an ability is put into effect.
type AbilityKind uint8

const (
	// AbilityEvent applies when its card resolves from the stack.
	AbilityEvent AbilityKind = iota
	// AbilityTriggered fires when its trigger event occurs.
	AbilityTriggered
	// AbilityActivated is activated by its controller for a cost.
	AbilityActivated
)

// TriggerEvent names the game events a triggered ability can listen for.
type TriggerEvent uint8

const (
	// TriggerMaterialized fires when the ability's character enters the
	// battlefield.
	TriggerMaterialized TriggerEvent = iota
	// TriggerDissolved fires when the ability's character leaves the
	// battlefield for the void.
	TriggerDissolved
)

// Ability is one parsed ability on a card definition.
type Ability struct {
	Kind    AbilityKind
	Effect  Effect
	Trigger TriggerEvent
	Cost    *Cost
	// Fast activated abilities may be used while the opponent has priority.
	Fast bool
}

// EventAbility builds an event ability around an effect.
func EventAbility(effect Effect) Ability {
	return Ability{Kind: AbilityEvent, Effect: effect}
}

// TriggeredAbility builds a triggered ability.
func TriggeredAbility(trigger TriggerEvent, effect Effect) Ability {
	return Ability{Kind: AbilityTriggered, Trigger: trigger, Effect: effect}
}

// ActivatedAbility builds an activated ability with a cost.
func ActivatedAbility(cost *Cost, effect Effect) Ability {
	return Ability{Kind: AbilityActivated, Cost: cost, Effect: effect}
}
