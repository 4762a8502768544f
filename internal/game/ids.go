// Package game owns the authoritative battle state: players, zones, the
// pending-effect and prompt queues, and the dense card identifier types the
// rest of the engine operates on.
package game

// CardID is a dense per-battle card identifier in the range 0..127. Card IDs
// are assigned once at battle creation and never change as cards move
// between zones.
type CardID int

// NoCard is the sentinel for an absent card reference.
const NoCard CardID = -1

// MaxCards is the number of card IDs a single battle supports.
const MaxCards = 128

// Zone-view ID types. Each wraps a CardID and asserts which zone the card
// was observed in when the ID was produced; conversions go through the
// BattleCards lookup helpers, which re-check zone membership.
type (
	// CharacterID is a card on a battlefield.
	CharacterID CardID
	// StackCardID is a card on the stack.
	StackCardID CardID
	// VoidCardID is a card in a void.
	VoidCardID CardID
	// HandCardID is a card in a hand.
	HandCardID CardID
	// DeckCardID is a card in a deck.
	DeckCardID CardID
)

// ActivatedAbilityID identifies one activated ability on a battlefield
// character.
type ActivatedAbilityID struct {
	Character     CharacterID
	AbilityNumber int
}
