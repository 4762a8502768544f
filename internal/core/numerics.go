package core

// Energy is the game's primary resource, used to pay card and ability costs.
type Energy int

// Spark is a character's power level.
type Spark int

// Points is a player's victory point total.
type Points int

// TurnID is a monotonically increasing turn counter.
type TurnID int

// CardKind categorizes a card definition.
type CardKind uint8

const (
	// CardKindCharacter is a card that materializes onto the battlefield.
	CardKindCharacter CardKind = iota
	// CardKindEvent is a card that resolves from the stack and goes to the void.
	CardKindEvent
	// CardKindDream is a card playable only under special rules.
	CardKindDream
)

func (k CardKind) String() string {
	switch k {
	case CardKindCharacter:
		return "character"
	case CardKindEvent:
		return "event"
	case CardKindDream:
		return "dream"
	default:
		return "unknown"
	}
}
