package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberfall/battle-server-go/internal/core"
	"github.com/emberfall/battle-server-go/internal/game/ability"
)

func TestParseKind(t *testing.T) {
	kind, err := parseKind("character")
	require.NoError(t, err)
	assert.Equal(t, core.CardKindCharacter, kind)

	kind, err = parseKind("event")
	require.NoError(t, err)
	assert.Equal(t, core.CardKindEvent, kind)

	_, err = parseKind("sorcery")
	assert.Error(t, err)
}

func TestAbilitiesForKey(t *testing.T) {
	abilities, err := abilitiesForKey("")
	require.NoError(t, err)
	assert.Nil(t, abilities)

	abilities, err = abilitiesForKey("draw_two")
	require.NoError(t, err)
	require.Len(t, abilities, 1)
	assert.Equal(t, ability.AbilityEvent, abilities[0].Kind)
	require.NotNil(t, abilities[0].Effect.Standard)
	assert.Equal(t, ability.EffectDrawCards, abilities[0].Effect.Standard.Kind)
	assert.Equal(t, 2, abilities[0].Effect.Standard.Count)

	abilities, err = abilitiesForKey("materialized_draw")
	require.NoError(t, err)
	require.Len(t, abilities, 1)
	assert.Equal(t, ability.AbilityTriggered, abilities[0].Kind)
	assert.Equal(t, ability.TriggerMaterialized, abilities[0].Trigger)

	abilities, err = abilitiesForKey("activated_spark")
	require.NoError(t, err)
	require.Len(t, abilities, 1)
	assert.Equal(t, ability.AbilityActivated, abilities[0].Kind)
	require.NotNil(t, abilities[0].Cost)
	assert.Equal(t, ability.CostEnergy, abilities[0].Cost.Kind)

	_, err = abilitiesForKey("nonsense")
	assert.Error(t, err)
}

func TestBuiltinDefinitions(t *testing.T) {
	defs := BuiltinDefinitions()
	require.NotEmpty(t, defs)

	byName := make(map[string]int, len(defs))
	for i, def := range defs {
		assert.NotEmpty(t, def.Name)
		byName[def.Name] = i
	}
	// Names are unique.
	assert.Len(t, byName, len(defs))

	// The set covers the engine's play surface: a fast answer card and a
	// reclaim card must both be present.
	abolish := defs[byName["Abolish"]]
	assert.True(t, abolish.IsFast)
	require.Len(t, abolish.Abilities, 1)
	require.NotNil(t, abolish.Abilities[0].Effect.Standard)
	assert.Equal(t, ability.EffectCounterspell, abolish.Abilities[0].Effect.Standard.Kind)

	echo := defs[byName["Grave Echo"]]
	assert.True(t, echo.Reclaim)

	for _, def := range defs {
		if def.Kind == core.CardKindCharacter {
			assert.Greater(t, int(def.Spark), 0, "character %s needs printed spark", def.Name)
		}
	}
}
