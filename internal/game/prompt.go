package game

import (
	"github.com/emberfall/battle-server-go/internal/core"
	"github.com/emberfall/battle-server-go/internal/game/ability"
)

// PromptKind discriminates the player decision a prompt asks for.
type PromptKind uint8

const (
	// PromptChooseCharacter picks one character from a valid set.
	PromptChooseCharacter PromptKind = iota
	// PromptChooseStackCard picks one stack card from a valid set.
	PromptChooseStackCard
	// PromptChooseVoidCards picks up to MaximumSelection void cards.
	PromptChooseVoidCards
	// PromptChoice picks one of several listed choices (modal effects,
	// optional yes/no decisions, pay-or-decline negotiations).
	PromptChoice
	// PromptSelectDeckCardOrder orders revealed deck cards between the top
	// of the deck and the void.
	PromptSelectDeckCardOrder
)

func (k PromptKind) String() string {
	switch k {
	case PromptChooseCharacter:
		return "choose-character"
	case PromptChooseStackCard:
		return "choose-stack-card"
	case PromptChooseVoidCards:
		return "choose-void-cards"
	case PromptChoice:
		return "choice"
	case PromptSelectDeckCardOrder:
		return "select-deck-card-order"
	default:
		return "unknown"
	}
}

// PromptChoiceOption is one selectable branch of a choice prompt.
type PromptChoiceOption struct {
	Label      string
	EnergyCost core.Energy
	// Effect applies when the choice is selected; nil choices (e.g.
	// "decline") apply nothing.
	Effect *ability.Effect
}

// DeckCardOrderPrompt is the working state of a Foresee-style ordering
// decision: each revealed card is placed either back on the deck at a chosen
// position or into the void.
type DeckCardOrderPrompt struct {
	// Initial is the revealed cards, topmost first.
	Initial []DeckCardID
	// Deck is the current chosen ordering of cards kept on top, topmost
	// first.
	Deck []DeckCardID
	// Void is the set of revealed cards routed to the void.
	Void CardSet[DeckCardID]
	// Moved is the set of cards already explicitly placed.
	Moved CardSet[DeckCardID]
}

// Clone returns a deep copy.
func (p *DeckCardOrderPrompt) Clone() *DeckCardOrderPrompt {
	if p == nil {
		return nil
	}
	out := *p
	out.Initial = append([]DeckCardID(nil), p.Initial...)
	out.Deck = append([]DeckCardID(nil), p.Deck...)
	return &out
}

// PromptData describes one suspended player decision. While any prompt is
// queued, the pending-effect drain loop is frozen; at most one prompt is
// presented at a time (the front of the queue).
type PromptData struct {
	Source EffectSource
	Player core.PlayerName
	Kind   PromptKind
	// Optional prompts may be declined without choosing.
	Optional bool

	ValidCharacters CardSet[CharacterID]
	ValidStackCards CardSet[StackCardID]

	ValidVoidCards    CardSet[VoidCardID]
	SelectedVoidCards CardSet[VoidCardID]
	MaximumSelection  int

	Choices []PromptChoiceOption

	// That carries the card a choice's effect refers to, e.g. the stack card
	// under a pay-or-be-countered negotiation.
	That CardID

	DeckOrder *DeckCardOrderPrompt
}

// Clone returns a deep copy.
func (p *PromptData) Clone() *PromptData {
	if p == nil {
		return nil
	}
	out := *p
	out.Choices = append([]PromptChoiceOption(nil), p.Choices...)
	out.DeckOrder = p.DeckOrder.Clone()
	return &out
}
