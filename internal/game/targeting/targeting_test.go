package targeting

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
	return game.NewBattleState(uuid.MustParse("8d5c7e02-40f7-4f3a-9d79-2f4a6c1be9a3"), 1)
}

func addCharacter(b *game.BattleState, p core.PlayerName, spark core.Spark) game.CharacterID {
	def := &game.CardDefinition{Name: "Character", Kind: core.CardKindCharacter, Cost: 2, Spark: spark}
	id := b.Cards.CreateCard(def, p, game.ZoneBattlefield)
	b.Cards.SetCharacterState(p, game.CharacterID(id), game.CharacterState{Spark: spark})
	return game.CharacterID(id)
}

func addVoidCard(b *game.BattleState, p core.PlayerName) game.VoidCardID {
	def := &game.CardDefinition{Name: "Event", Kind: core.CardKindEvent, Cost: 1}
	return game.VoidCardID(b.Cards.CreateCard(def, p, game.ZoneVoid))
}

func dissolveEnemy() *ability.StandardEffect {
	return &ability.StandardEffect{
		Kind:   ability.EffectDissolveCharacter,
		Target: ability.Enemy(ability.Character()),
	}
}

// TestResolveStandard_ThreeWay verifies the uniform resolution policy: no
// candidates is a no-op, one candidate auto-resolves, two or more prompt.
func TestResolveStandard_ThreeWay(t *testing.T) {
	source := game.GameSource(core.PlayerOne)

	t.Run("zero candidates", func(t *testing.T) {
		b := newBattle()
		target, prompt := ResolveStandard(b, source, dissolveEnemy(), game.NoCard)
		assert.Nil(t, target)
		assert.False(t, prompt)
	})

	t.Run("one candidate", func(t *testing.T) {
		b := newBattle()
		only := addCharacter(b, core.PlayerTwo, 1)
		target, prompt := ResolveStandard(b, source, dissolveEnemy(), game.NoCard)
		require.NotNil(t, target)
		assert.False(t, prompt)
		assert.Equal(t, game.TargetCharacter, target.Kind)
		assert.Equal(t, only, target.Character)
	})

	t.Run("two candidates", func(t *testing.T) {
		b := newBattle()
		addCharacter(b, core.PlayerTwo, 1)
		addCharacter(b, core.PlayerTwo, 2)
		target, prompt := ResolveStandard(b, source, dissolveEnemy(), game.NoCard)
		assert.Nil(t, target)
		assert.True(t, prompt)
	})
}

func TestResolveStandard_Untargeted(t *testing.T) {
	b := newBattle()
	addCharacter(b, core.PlayerTwo, 1)

	draw := &ability.StandardEffect{Kind: ability.EffectDrawCards, Count: 2}
	target, prompt := ResolveStandard(b, game.GameSource(core.PlayerOne), draw, game.NoCard)
	assert.Nil(t, target)
	assert.False(t, prompt)
}

// TestResolveStandard_SingleVoidCandidate verifies that a lone void
// candidate resolves to the whole candidate set without a prompt.
func TestResolveStandard_SingleVoidCandidate(t *testing.T) {
	b := newBattle()
	id := addVoidCard(b, core.PlayerOne)

	effect := &ability.StandardEffect{
		Kind:   ability.EffectReturnFromYourVoidToHand,
		Target: ability.YourVoid(ability.AnyCard()),
	}
	target, prompt := ResolveStandard(b, game.GameSource(core.PlayerOne), effect, game.NoCard)
	require.NotNil(t, target)
	assert.False(t, prompt)
	assert.Equal(t, game.TargetVoidCards, target.Kind)
	assert.True(t, target.VoidCards.Contains(id))
}

func TestResolve_ListPromptsAsAWhole(t *testing.T) {
	b := newBattle()
	addCharacter(b, core.PlayerTwo, 1)
	addCharacter(b, core.PlayerTwo, 2)

	// First sub-effect is unambiguous, second needs a choice: the whole
	// list defers to a prompt rather than partially resolving.
	effect := ability.ListOf(
		ability.StandardEffect{Kind: ability.EffectDrawCards, Count: 1},
		*dissolveEnemy(),
	)
	resolution := Resolve(b, game.GameSource(core.PlayerOne), &effect, game.NoCard)
	assert.True(t, resolution.RequiresPrompt)
	assert.Nil(t, resolution.Targets)
}

func TestResolve_ListFullyAutomatic(t *testing.T) {
	b := newBattle()
	only := addCharacter(b, core.PlayerTwo, 1)

	effect := ability.ListOf(
		ability.StandardEffect{Kind: ability.EffectDrawCards, Count: 1},
		*dissolveEnemy(),
	)
	resolution := Resolve(b, game.GameSource(core.PlayerOne), &effect, game.NoCard)
	require.False(t, resolution.RequiresPrompt)
	require.NotNil(t, resolution.Targets)
	require.True(t, resolution.Targets.IsList())

	// Positional entries line up with the sub-effects: nil for the
	// untargeted draw, the lone enemy for the dissolve.
	assert.Nil(t, resolution.Targets.PopFront())
	second := resolution.Targets.PopFront()
	require.NotNil(t, second)
	assert.Equal(t, only, second.Character)
}

func TestResolve_ModalAlwaysPrompts(t *testing.T) {
	b := newBattle()
	draw := ability.EffectOf(ability.StandardEffect{Kind: ability.EffectDrawCards, Count: 1})
	effect := ability.Effect{Modal: []ability.ModalChoice{
		{EnergyCost: 1, Effect: draw},
		{EnergyCost: 2, Effect: draw},
	}}

	resolution := Resolve(b, game.GameSource(core.PlayerOne), &effect, game.NoCard)
	assert.True(t, resolution.RequiresPrompt)
}
