package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emberfall/battle-server-go/internal/core"
	"github.com/emberfall/battle-server-go/internal/game/ability"
)

func checksumFixture() *BattleState {
	b := NewBattleState(testBattleID, 42)
	for i := 0; i < 3; i++ {
		b.Cards.CreateCard(testCharacterDef("Whelp", 2, 1), core.PlayerOne, ZoneDeck)
		b.Cards.CreateCard(testEventDef("Bolt", 1), core.PlayerTwo, ZoneDeck)
	}
	id := b.Cards.CreateCard(testCharacterDef("Warden", 3, 2), core.PlayerOne, ZoneBattlefield)
	b.Cards.SetCharacterState(core.PlayerOne, CharacterID(id), CharacterState{Spark: 2})
	b.Player(core.PlayerOne).Energy = 2
	b.Turn = TurnData{ActivePlayer: core.PlayerOne, TurnID: 3}
	return b
}

// TestChecksum_Deterministic verifies that identical states always hash
// identically; map iteration order must not leak into the digest.
func TestChecksum_Deterministic(t *testing.T) {
	expected := checksumFixture().Checksum()
	for i := 0; i < 10; i++ {
		assert.Equal(t, expected, checksumFixture().Checksum(), "run %d not deterministic", i)
	}
}

func TestChecksum_DetectsResourceChange(t *testing.T) {
	a := checksumFixture()
	b := checksumFixture()
	b.Player(core.PlayerTwo).Energy = 7

	assert.NotEqual(t, a.Checksum(), b.Checksum())
}

func TestChecksum_DetectsSparkChange(t *testing.T) {
	a := checksumFixture()
	b := checksumFixture()
	for _, id := range b.Cards.Battlefield(core.PlayerOne).All() {
		b.Cards.SetCharacterState(core.PlayerOne, id, CharacterState{Spark: 9})
	}

	assert.NotEqual(t, a.Checksum(), b.Checksum())
}

func TestChecksum_DetectsDeckOrderChange(t *testing.T) {
	a := checksumFixture()
	b := checksumFixture()
	top := b.Cards.TopOfDeck(core.PlayerOne, 2)
	b.Cards.SetDeckOrder(core.PlayerOne, []DeckCardID{top[1], top[0]})

	assert.NotEqual(t, a.Checksum(), b.Checksum())
}

func TestChecksum_CloneMatches(t *testing.T) {
	b := checksumFixture()
	assert.Equal(t, b.Checksum(), b.Clone().Checksum())
}

// TestChecksum_DetectsSuspendedDecisionChange verifies that two states with
// equally long queues but different suspended decisions hash differently.
func TestChecksum_DetectsSuspendedDecisionChange(t *testing.T) {
	pendingOf := func(kind ability.StandardEffectKind) *BattleState {
		b := checksumFixture()
		b.EnqueuePending(PendingEffect{
			Source:   GameSource(core.PlayerOne),
			Effect:   ability.WithOptions(ability.StandardEffect{Kind: kind, Count: 1}),
			ThatCard: NoCard,
		})
		return b
	}
	assert.NotEqual(t,
		pendingOf(ability.EffectDrawCards).Checksum(),
		pendingOf(ability.EffectForesee).Checksum())

	promptOf := func(kind PromptKind, p core.PlayerName) *BattleState {
		b := checksumFixture()
		b.PushPrompt(PromptData{
			Source: GameSource(p),
			Player: p,
			Kind:   kind,
			That:   NoCard,
		})
		return b
	}
	assert.NotEqual(t,
		promptOf(PromptChooseCharacter, core.PlayerOne).Checksum(),
		promptOf(PromptChooseStackCard, core.PlayerOne).Checksum())
	assert.NotEqual(t,
		promptOf(PromptChooseCharacter, core.PlayerOne).Checksum(),
		promptOf(PromptChooseCharacter, core.PlayerTwo).Checksum())
}
