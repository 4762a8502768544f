package prompts

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberfall/battle-server-go/internal/core"
	"github.com/emberfall/battle-server-go/internal/game"
	"github.com/emberfall/battle-server-go/internal/game/ability"
)

func newBattle() *game.BattleState {
	return game.NewBattleState(uuid.MustParse("0c7e5a21-6d14-49b8-8f02-9b6f1a2e4d55"), 1)
}

func addCharacter(b *game.BattleState, p core.PlayerName, spark core.Spark) game.CharacterID {
	def := &game.CardDefinition{Name: "Character", Kind: core.CardKindCharacter, Cost: 2, Spark: spark}
	id := b.Cards.CreateCard(def, p, game.ZoneBattlefield)
	b.Cards.SetCharacterState(p, game.CharacterID(id), game.CharacterState{Spark: spark})
	return game.CharacterID(id)
}

func addVoidEvent(b *game.BattleState, p core.PlayerName) game.VoidCardID {
	def := &game.CardDefinition{Name: "Event", Kind: core.CardKindEvent, Cost: 1}
	return game.VoidCardID(b.Cards.CreateCard(def, p, game.ZoneVoid))
}

func TestBuildPrompt_Character(t *testing.T) {
	b := newBattle()
	a := addCharacter(b, core.PlayerTwo, 1)
	c := addCharacter(b, core.PlayerTwo, 2)

	effect := ability.EffectOf(ability.StandardEffect{
		Kind:   ability.EffectDissolveCharacter,
		Target: ability.Enemy(ability.Character()),
	})
	source := game.GameSource(core.PlayerOne)
	prompt := BuildPrompt(b, core.PlayerOne, source, &effect, game.NoCard)

	require.NotNil(t, prompt)
	assert.Equal(t, game.PromptChooseCharacter, prompt.Kind)
	assert.Equal(t, core.PlayerOne, prompt.Player)
	assert.True(t, prompt.ValidCharacters.Contains(a))
	assert.True(t, prompt.ValidCharacters.Contains(c))
	assert.Equal(t, game.NoCard, prompt.That)
}

func TestBuildPrompt_EmptyCandidatesIsNil(t *testing.T) {
	b := newBattle()

	effect := ability.EffectOf(ability.StandardEffect{
		Kind:   ability.EffectDissolveCharacter,
		Target: ability.Enemy(ability.Character()),
	})
	prompt := BuildPrompt(b, core.PlayerOne, game.GameSource(core.PlayerOne), &effect, game.NoCard)
	assert.Nil(t, prompt)
}

func TestBuildPrompt_VoidMaximumSelection(t *testing.T) {
	b := newBattle()
	addVoidEvent(b, core.PlayerOne)
	addVoidEvent(b, core.PlayerOne)
	addVoidEvent(b, core.PlayerOne)
	source := game.GameSource(core.PlayerOne)

	single := ability.EffectOf(ability.StandardEffect{
		Kind:   ability.EffectReturnFromYourVoidToHand,
		Target: ability.YourVoid(ability.AnyCard()),
	})
	prompt := BuildPrompt(b, core.PlayerOne, source, &single, game.NoCard)
	require.NotNil(t, prompt)
	assert.Equal(t, game.PromptChooseVoidCards, prompt.Kind)
	assert.Equal(t, 1, prompt.MaximumSelection)
	assert.Equal(t, 3, prompt.ValidVoidCards.Len())

	upTo := ability.EffectOf(ability.StandardEffect{
		Kind:   ability.EffectReturnUpToCountFromYourVoidToHand,
		Count:  2,
		Target: ability.YourVoid(ability.AnyCard()),
	})
	prompt = BuildPrompt(b, core.PlayerOne, source, &upTo, game.NoCard)
	require.NotNil(t, prompt)
	assert.Equal(t, 2, prompt.MaximumSelection)
}

// TestBuildPrompt_ListFirstAmbiguousOnly verifies that a list produces a
// prompt only for the first sub-effect that actually needs a decision.
func TestBuildPrompt_ListFirstAmbiguousOnly(t *testing.T) {
	b := newBattle()
	addCharacter(b, core.PlayerTwo, 1)
	addCharacter(b, core.PlayerTwo, 2)

	effect := ability.ListOf(
		ability.StandardEffect{Kind: ability.EffectDrawCards, Count: 1},
		ability.StandardEffect{
			Kind:   ability.EffectDissolveCharacter,
			Target: ability.Enemy(ability.Character()),
		},
		ability.StandardEffect{Kind: ability.EffectGainEnergy, Energy: 1},
	)
	prompt := BuildPrompt(b, core.PlayerOne, game.GameSource(core.PlayerOne), &effect, game.NoCard)

	require.NotNil(t, prompt)
	assert.Equal(t, game.PromptChooseCharacter, prompt.Kind)
	assert.Equal(t, 2, prompt.ValidCharacters.Len())
}

func TestBuildPrompt_ListWithNoAmbiguityIsNil(t *testing.T) {
	b := newBattle()
	addCharacter(b, core.PlayerTwo, 1)

	effect := ability.ListOf(
		ability.StandardEffect{Kind: ability.EffectDrawCards, Count: 1},
		ability.StandardEffect{
			Kind:   ability.EffectDissolveCharacter,
			Target: ability.Enemy(ability.Character()),
		},
	)
	prompt := BuildPrompt(b, core.PlayerOne, game.GameSource(core.PlayerOne), &effect, game.NoCard)
	assert.Nil(t, prompt)
}

func TestModalPrompt(t *testing.T) {
	draw := ability.EffectOf(ability.StandardEffect{Kind: ability.EffectDrawCards, Count: 1})
	gain := ability.EffectOf(ability.StandardEffect{Kind: ability.EffectGainEnergy, Energy: 2})
	source := game.GameSource(core.PlayerOne)

	prompt := ModalPrompt(source, core.PlayerOne, []ability.ModalChoice{
		{EnergyCost: 0, Effect: draw},
		{EnergyCost: 2, Effect: gain},
	})

	require.NotNil(t, prompt)
	assert.Equal(t, game.PromptChoice, prompt.Kind)
	require.Len(t, prompt.Choices, 2)
	assert.Equal(t, core.Energy(2), prompt.Choices[1].EnergyCost)
	require.NotNil(t, prompt.Choices[0].Effect)
	assert.Equal(t, game.NoCard, prompt.That)
}

func TestYesNoPrompt(t *testing.T) {
	effect := ability.EffectOf(ability.StandardEffect{Kind: ability.EffectDrawCards, Count: 1})
	prompt := YesNoPrompt(game.GameSource(core.PlayerTwo), core.PlayerTwo, effect, game.NoCard)

	require.NotNil(t, prompt)
	assert.Equal(t, game.PromptChoice, prompt.Kind)
	assert.True(t, prompt.Optional)
	require.Len(t, prompt.Choices, 2)
	assert.NotNil(t, prompt.Choices[0].Effect)
	assert.Nil(t, prompt.Choices[1].Effect)
}
