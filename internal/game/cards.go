package game

import (
	"slices"

	"github.com/emberfall/battle-server-go/internal/core"
	"github.com/emberfall/battle-server-go/internal/game/ability"
)

// CardDefinition is the immutable printed data of a card. Definitions are
// shared between battles and never mutated; all live state lives in
// CardState and the zone collections.
type CardDefinition struct {
	Name string
	Kind core.CardKind
	Cost core.Energy
	// Spark is the base spark of a character card.
	Spark core.Spark
	// IsFast cards may be played while the opponent holds priority.
	IsFast bool
	// Reclaim cards may be played from the void.
	Reclaim bool

	Abilities []ability.Ability
}

// CardState is the per-battle mutable state of one card.
type CardState struct {
	Definition *CardDefinition
	Owner      core.PlayerName
	// RevealedToOpponent marks hidden-zone cards the opponent has seen.
	RevealedToOpponent bool
}

// CharacterState is the battlefield-only state of a character.
type CharacterState struct {
	Spark core.Spark
}

// StackItem is one entry on the shared, ordered stack.
type StackItem struct {
	Card       StackCardID
	Controller core.PlayerName
	// Targets are the resolved targets chosen when the card was played.
	Targets *EffectTargets
	// FromVoid marks cards played with reclaim; they banish after resolving
	// instead of returning to the void.
	FromVoid bool
}

// BattleCards is the card collection of a battle, indexed by zone. Zone sets
// are value-type bitsets; only the deck order, the stack, and the character
// state maps need explicit copying on clone.
type BattleCards struct {
	states []CardState

	hand        [2]CardSet[HandCardID]
	void        [2]CardSet[VoidCardID]
	battlefield [2]CardSet[CharacterID]
	banished    [2]CardSet[CardID]

	// deck is ordered bottom-first; the last element is the top card.
	deck [2][]DeckCardID

	// stack is ordered bottom-first; the last item resolves next.
	stack []StackItem

	characterState [2]map[CharacterID]CharacterState
}

// NewBattleCards returns an empty collection.
func NewBattleCards() BattleCards {
	return BattleCards{
		characterState: [2]map[CharacterID]CharacterState{
			make(map[CharacterID]CharacterState),
			make(map[CharacterID]CharacterState),
		},
	}
}

// CreateCard registers a new card for owner in the given zone and returns
// its dense ID.
func (c *BattleCards) CreateCard(def *CardDefinition, owner core.PlayerName, zone Zone) CardID {
	id := CardID(len(c.states))
	if int(id) >= MaxCards {
		panic("battle card capacity exceeded")
	}
	c.states = append(c.states, CardState{Definition: def, Owner: owner})
	c.addToZone(owner, id, zone)
	return id
}

// State returns the mutable per-battle state of a card.
func (c *BattleCards) State(id CardID) *CardState {
	return &c.states[id]
}

// Definition returns the printed data of a card.
func (c *BattleCards) Definition(id CardID) *CardDefinition {
	return c.states[id].Definition
}

// Owner returns the player who owns a card.
func (c *BattleCards) Owner(id CardID) core.PlayerName {
	return c.states[id].Owner
}

// Controller returns the player currently controlling a card: the stack
// item's controller for stack cards, the owner otherwise.
func (c *BattleCards) Controller(id CardID) core.PlayerName {
	for _, item := range c.stack {
		if CardID(item.Card) == id {
			return item.Controller
		}
	}
	return c.states[id].Owner
}

// CardCount returns the number of cards registered in the battle.
func (c *BattleCards) CardCount() int {
	return len(c.states)
}

// Hand returns the set of cards in p's hand.
func (c *BattleCards) Hand(p core.PlayerName) CardSet[HandCardID] { return c.hand[p] }

// Void returns the set of cards in p's void.
func (c *BattleCards) Void(p core.PlayerName) CardSet[VoidCardID] { return c.void[p] }

// Battlefield returns the set of p's battlefield characters.
func (c *BattleCards) Battlefield(p core.PlayerName) CardSet[CharacterID] { return c.battlefield[p] }

// Banished returns the set of p's banished cards.
func (c *BattleCards) Banished(p core.PlayerName) CardSet[CardID] { return c.banished[p] }

// DeckSize returns the number of cards in p's deck.
func (c *BattleCards) DeckSize(p core.PlayerName) int { return len(c.deck[p]) }

// TopOfDeck returns up to n cards from the top of p's deck, topmost first.
func (c *BattleCards) TopOfDeck(p core.PlayerName, n int) []DeckCardID {
	deck := c.deck[p]
	if n > len(deck) {
		n = len(deck)
	}
	out := make([]DeckCardID, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, deck[len(deck)-1-i])
	}
	return out
}

// Stack returns the shared stack, bottom-first.
func (c *BattleCards) Stack() []StackItem { return c.stack }

// StackIsEmpty reports whether the stack holds no items.
func (c *BattleCards) StackIsEmpty() bool { return len(c.stack) == 0 }

// TopOfStack returns the item that resolves next, or nil.
func (c *BattleCards) TopOfStack() *StackItem {
	if len(c.stack) == 0 {
		return nil
	}
	return &c.stack[len(c.stack)-1]
}

// StackSet returns the set of stack cards controlled by p.
func (c *BattleCards) StackSet(p core.PlayerName) CardSet[StackCardID] {
	var s CardSet[StackCardID]
	for _, item := range c.stack {
		if item.Controller == p {
			s.Insert(item.Card)
		}
	}
	return s
}

// StackItemFor returns the stack item for a card, or nil.
func (c *BattleCards) StackItemFor(id StackCardID) *StackItem {
	for i := range c.stack {
		if c.stack[i].Card == id {
			return &c.stack[i]
		}
	}
	return nil
}

// ToCharacterID converts a card ID to a battlefield view for p, checking
// zone membership.
func (c *BattleCards) ToCharacterID(p core.PlayerName, id CardID) (CharacterID, bool) {
	cid := CharacterID(id)
	return cid, c.battlefield[p].Contains(cid)
}

// ToStackCardID converts a card ID to a stack view for p, checking that p
// controls the stack item.
func (c *BattleCards) ToStackCardID(p core.PlayerName, id CardID) (StackCardID, bool) {
	sid := StackCardID(id)
	return sid, c.StackSet(p).Contains(sid)
}

// ToVoidCardID converts a card ID to a void view for p, checking zone
// membership.
func (c *BattleCards) ToVoidCardID(p core.PlayerName, id CardID) (VoidCardID, bool) {
	vid := VoidCardID(id)
	return vid, c.void[p].Contains(vid)
}

// ContainsCard reports whether p's zone holds the card.
func (c *BattleCards) ContainsCard(p core.PlayerName, id CardID, zone Zone) bool {
	switch zone {
	case ZoneHand:
		return c.hand[p].Contains(HandCardID(id))
	case ZoneVoid:
		return c.void[p].Contains(VoidCardID(id))
	case ZoneBattlefield:
		return c.battlefield[p].Contains(CharacterID(id))
	case ZoneBanished:
		return c.banished[p].Contains(id)
	case ZoneDeck:
		return slices.Contains(c.deck[p], DeckCardID(id))
	case ZoneStack:
		item := c.StackItemFor(StackCardID(id))
		return item != nil && item.Controller == p
	default:
		return false
	}
}

// MoveCard performs the raw zone bookkeeping for moving p's card between
// zones. Enter/leave side effects (triggers, character state, priority) are
// the effect layer's responsibility.
func (c *BattleCards) MoveCard(p core.PlayerName, id CardID, from, to Zone) {
	c.removeFromZone(p, id, from)
	c.addToZone(p, id, to)
}

func (c *BattleCards) addToZone(p core.PlayerName, id CardID, zone Zone) {
	switch zone {
	case ZoneHand:
		c.hand[p].Insert(HandCardID(id))
	case ZoneVoid:
		c.void[p].Insert(VoidCardID(id))
	case ZoneBattlefield:
		c.battlefield[p].Insert(CharacterID(id))
	case ZoneBanished:
		c.banished[p].Insert(id)
	case ZoneDeck:
		c.deck[p] = append(c.deck[p], DeckCardID(id))
	case ZoneStack:
		c.stack = append(c.stack, StackItem{Card: StackCardID(id), Controller: p})
	}
}

func (c *BattleCards) removeFromZone(p core.PlayerName, id CardID, zone Zone) {
	switch zone {
	case ZoneHand:
		c.hand[p].Remove(HandCardID(id))
	case ZoneVoid:
		c.void[p].Remove(VoidCardID(id))
	case ZoneBattlefield:
		c.battlefield[p].Remove(CharacterID(id))
	case ZoneBanished:
		c.banished[p].Remove(id)
	case ZoneDeck:
		c.deck[p] = slices.DeleteFunc(c.deck[p], func(d DeckCardID) bool {
			return CardID(d) == id
		})
	case ZoneStack:
		c.stack = slices.DeleteFunc(c.stack, func(item StackItem) bool {
			return CardID(item.Card) == id
		})
	}
}

// PlaceOnTopOfDeck puts a card on top of p's deck.
func (c *BattleCards) PlaceOnTopOfDeck(p core.PlayerName, id DeckCardID) {
	c.deck[p] = append(c.deck[p], id)
}

// SetDeckOrder replaces the top len(top) cards of p's deck with the given
// order, topmost first. The caller must pass exactly the cards currently in
// those positions.
func (c *BattleCards) SetDeckOrder(p core.PlayerName, top []DeckCardID) {
	deck := c.deck[p]
	for i := range top {
		deck[len(deck)-1-i] = top[i]
	}
}

// ShuffleDeck randomizes p's deck order using the battle's generator.
func (c *BattleCards) ShuffleDeck(p core.PlayerName, rng *Rng) {
	deck := c.deck[p]
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
}

// CharacterStateFor returns the battlefield state of p's character.
func (c *BattleCards) CharacterStateFor(p core.PlayerName, id CharacterID) (CharacterState, bool) {
	st, ok := c.characterState[p][id]
	return st, ok
}

// SetCharacterState inserts or replaces the battlefield state of p's
// character.
func (c *BattleCards) SetCharacterState(p core.PlayerName, id CharacterID, st CharacterState) {
	c.characterState[p][id] = st
}

// RemoveCharacterState deletes the battlefield state of p's character.
func (c *BattleCards) RemoveCharacterState(p core.PlayerName, id CharacterID) {
	delete(c.characterState[p], id)
}

// SparkOf returns the current spark of p's battlefield character.
func (c *BattleCards) SparkOf(p core.PlayerName, id CharacterID) (core.Spark, bool) {
	st, ok := c.characterState[p][id]
	if !ok {
		return 0, false
	}
	return st.Spark, true
}

// Clone returns a deep copy of the collection.
func (c *BattleCards) Clone() BattleCards {
	out := *c
	out.states = slices.Clone(c.states)
	out.stack = slices.Clone(c.stack)
	for i := range c.stack {
		if c.stack[i].Targets != nil {
			out.stack[i].Targets = c.stack[i].Targets.Clone()
		}
	}
	for p := range c.deck {
		out.deck[p] = slices.Clone(c.deck[p])
	}
	for p := range c.characterState {
		m := make(map[CharacterID]CharacterState, len(c.characterState[p]))
		for k, v := range c.characterState[p] {
			m[k] = v
		}
		out.characterState[p] = m
	}
	return out
}
