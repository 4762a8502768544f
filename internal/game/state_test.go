package game

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberfall/battle-server-go/internal/core"
)

var testBattleID = uuid.MustParse("5a8f2b54-9c6e-4a10-b18f-3d20c61f4c7a")

func testCharacterDef(name string, cost core.Energy, spark core.Spark) *CardDefinition {
	return &CardDefinition{Name: name, Kind: core.CardKindCharacter, Cost: cost, Spark: spark}
}

func testEventDef(name string, cost core.Energy) *CardDefinition {
	return &CardDefinition{Name: name, Kind: core.CardKindEvent, Cost: cost}
}

func TestBattleState_PromptQueue(t *testing.T) {
	b := NewBattleState(testBattleID, 1)

	require.False(t, b.HasActivePrompt())
	require.Nil(t, b.ActivePrompt())

	b.PushPrompt(PromptData{Player: core.PlayerOne, Kind: PromptChooseCharacter})
	b.PushPrompt(PromptData{Player: core.PlayerTwo, Kind: PromptChoice})

	require.True(t, b.HasActivePrompt())
	assert.Equal(t, PromptChooseCharacter, b.ActivePrompt().Kind)

	first := b.PopPrompt()
	assert.Equal(t, core.PlayerOne, first.Player)
	assert.Equal(t, PromptChoice, b.ActivePrompt().Kind)

	b.PopPrompt()
	assert.False(t, b.HasActivePrompt())
}

func TestBattleState_PendingQueueIsFIFO(t *testing.T) {
	b := NewBattleState(testBattleID, 1)

	b.EnqueuePending(PendingEffect{Source: GameSource(core.PlayerOne), ThatCard: 1})
	b.EnqueuePending(PendingEffect{Source: GameSource(core.PlayerTwo), ThatCard: 2})

	assert.Equal(t, CardID(1), b.DequeuePending().ThatCard)
	assert.Equal(t, CardID(2), b.DequeuePending().ThatCard)
	assert.Empty(t, b.PendingEffects)
}

func TestBattleState_StackPriority(t *testing.T) {
	b := NewBattleState(testBattleID, 1)
	def := testEventDef("Bolt", 1)
	id := b.Cards.CreateCard(def, core.PlayerOne, ZoneStack)

	b.SetStackPriority(core.PlayerTwo)
	require.NotNil(t, b.StackPriority)

	// Priority persists while the stack is occupied.
	b.ClearStackPriorityIfStackEmpty()
	require.NotNil(t, b.StackPriority)

	b.Cards.MoveCard(core.PlayerOne, id, ZoneStack, ZoneVoid)
	b.ClearStackPriorityIfStackEmpty()
	assert.Nil(t, b.StackPriority)
}

func TestBattleState_CloneIsDeep(t *testing.T) {
	b := NewBattleState(testBattleID, 42)
	charID := b.Cards.CreateCard(testCharacterDef("Whelp", 2, 1), core.PlayerOne, ZoneBattlefield)
	b.Cards.SetCharacterState(core.PlayerOne, CharacterID(charID), CharacterState{Spark: 1})
	b.Cards.CreateCard(testEventDef("Bolt", 1), core.PlayerTwo, ZoneHand)
	b.Player(core.PlayerOne).Energy = 3
	b.PushPrompt(PromptData{
		Player:  core.PlayerOne,
		Kind:    PromptChoice,
		Choices: []PromptChoiceOption{{Label: "yes"}, {Label: "no"}},
		That:    NoCard,
	})
	b.EnqueuePending(PendingEffect{
		Source:  GameSource(core.PlayerOne),
		Targets: StandardTargets(CharacterTarget(CharacterID(charID))),
	})
	b.SetStackPriority(core.PlayerTwo)

	clone := b.Clone()

	// Mutating the clone must leave the original untouched.
	clone.Player(core.PlayerOne).Energy = 9
	clone.Cards.SetCharacterState(core.PlayerOne, CharacterID(charID), CharacterState{Spark: 5})
	clone.PopPrompt()
	clone.DequeuePending()
	*clone.StackPriority = core.PlayerOne

	assert.Equal(t, core.Energy(3), b.Player(core.PlayerOne).Energy)
	spark, ok := b.Cards.SparkOf(core.PlayerOne, CharacterID(charID))
	require.True(t, ok)
	assert.Equal(t, core.Spark(1), spark)
	assert.Len(t, b.Prompts, 1)
	assert.Len(t, b.PendingEffects, 1)
	assert.Equal(t, core.PlayerTwo, *b.StackPriority)

	// The generator is cloned mid-sequence.
	x := b.Rng.Next()
	y := clone.Rng.Next()
	assert.Equal(t, x, y)
}

func TestBattleCards_DeckOrder(t *testing.T) {
	b := NewBattleState(testBattleID, 1)
	var ids []CardID
	for i := 0; i < 4; i++ {
		ids = append(ids, b.Cards.CreateCard(testEventDef("Card", 1), core.PlayerOne, ZoneDeck))
	}

	// The last-created card sits on top.
	top := b.Cards.TopOfDeck(core.PlayerOne, 2)
	require.Len(t, top, 2)
	assert.Equal(t, DeckCardID(ids[3]), top[0])
	assert.Equal(t, DeckCardID(ids[2]), top[1])

	// SetDeckOrder rewrites the top positions, topmost first.
	b.Cards.SetDeckOrder(core.PlayerOne, []DeckCardID{DeckCardID(ids[2]), DeckCardID(ids[3])})
	top = b.Cards.TopOfDeck(core.PlayerOne, 2)
	assert.Equal(t, DeckCardID(ids[2]), top[0])
	assert.Equal(t, DeckCardID(ids[3]), top[1])

	// Asking for more cards than the deck holds truncates.
	assert.Len(t, b.Cards.TopOfDeck(core.PlayerOne, 10), 4)
}

func TestBattleCards_ControllerFollowsStackItem(t *testing.T) {
	b := NewBattleState(testBattleID, 1)
	id := b.Cards.CreateCard(testEventDef("Bolt", 1), core.PlayerOne, ZoneHand)

	assert.Equal(t, core.PlayerOne, b.Cards.Controller(id))

	// A card played onto the stack is controlled by whoever put it there.
	b.Cards.MoveCard(core.PlayerTwo, id, ZoneHand, ZoneStack)
	assert.Equal(t, core.PlayerTwo, b.Cards.Controller(id))
}

func TestBattleCards_ZoneMembership(t *testing.T) {
	b := NewBattleState(testBattleID, 1)
	id := b.Cards.CreateCard(testCharacterDef("Whelp", 2, 1), core.PlayerOne, ZoneHand)

	assert.True(t, b.Cards.ContainsCard(core.PlayerOne, id, ZoneHand))
	assert.False(t, b.Cards.ContainsCard(core.PlayerOne, id, ZoneVoid))

	b.Cards.MoveCard(core.PlayerOne, id, ZoneHand, ZoneBattlefield)
	assert.False(t, b.Cards.ContainsCard(core.PlayerOne, id, ZoneHand))
	assert.True(t, b.Cards.ContainsCard(core.PlayerOne, id, ZoneBattlefield))

	_, onField := b.Cards.ToCharacterID(core.PlayerOne, id)
	assert.True(t, onField)
	_, onField = b.Cards.ToCharacterID(core.PlayerTwo, id)
	assert.False(t, onField)
}
