package game

// Zone names a card location within a battle.
type Zone uint8

const (
	// ZoneDeck is a player's face-down, ordered deck.
	ZoneDeck Zone = iota
	// ZoneHand is a player's hand.
	ZoneHand
	// ZoneBattlefield holds materialized characters.
	ZoneBattlefield
	// ZoneStack holds cards awaiting resolution.
	ZoneStack
	// ZoneVoid is a player's discard pile.
	ZoneVoid
	// ZoneBanished holds cards removed from the game.
	ZoneBanished
)

func (z Zone) String() string {
	switch z {
	case ZoneDeck:
		return "deck"
	case ZoneHand:
		return "hand"
	case ZoneBattlefield:
		return "battlefield"
	case ZoneStack:
		return "stack"
	case ZoneVoid:
		return "void"
	case ZoneBanished:
		return "banished"
	default:
		return "unknown"
	}
}
