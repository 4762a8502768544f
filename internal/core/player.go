package core

// PlayerName identifies one of the two players in a battle.
type PlayerName uint8

const (
	// PlayerOne is the first player.
	PlayerOne PlayerName = iota
	// PlayerTwo is the second player.
	PlayerTwo
)

// Opponent returns the other player.
func (p PlayerName) Opponent() PlayerName {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

func (p PlayerName) String() string {
	if p == PlayerOne {
		return "one"
	}
	return "two"
}
