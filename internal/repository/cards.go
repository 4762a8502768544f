package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/emberfall/battle-server-go/internal/core"
	"github.com/emberfall/battle-server-go/internal/game"
	"github.com/emberfall/battle-server-go/internal/game/ability"
)

// CardRepository loads card definitions from the cards table. Ability rules
// text is parsed upstream; rows reference the parsed trees by ability key.
type CardRepository struct {
	db *DB
}

// NewCardRepository creates a card repository.
func NewCardRepository(db *DB) *CardRepository {
	return &CardRepository{db: db}
}

// LoadDefinitions reads every card definition.
func (r *CardRepository) LoadDefinitions(ctx context.Context) ([]*game.CardDefinition, error) {
	rows, err := r.db.pool.Query(ctx, `
		SELECT name, kind, cost, spark, is_fast, reclaim, ability_key
		FROM cards
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("querying cards: %w", err)
	}
	defer rows.Close()

	var out []*game.CardDefinition
	for rows.Next() {
		var (
			name, kind, abilityKey string
			cost, spark            int
			isFast, reclaim        bool
		)
		if err := rows.Scan(&name, &kind, &cost, &spark, &isFast, &reclaim, &abilityKey); err != nil {
			return nil, fmt.Errorf("scanning card row: %w", err)
		}

		cardKind, err := parseKind(kind)
		if err != nil {
			return nil, fmt.Errorf("card %s: %w", name, err)
		}
		abilities, err := abilitiesForKey(abilityKey)
		if err != nil {
			return nil, fmt.Errorf("card %s: %w", name, err)
		}

		out = append(out, &game.CardDefinition{
			Name:      name,
			Kind:      cardKind,
			Cost:      core.Energy(cost),
			Spark:     core.Spark(spark),
			IsFast:    isFast,
			Reclaim:   reclaim,
			Abilities: abilities,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating card rows: %w", err)
	}

	r.db.log.Info("card definitions loaded", zap.Int("count", len(out)))
	return out, nil
}

func parseKind(kind string) (core.CardKind, error) {
	switch kind {
	case "character":
		return core.CardKindCharacter, nil
	case "event":
		return core.CardKindEvent, nil
	case "dream":
		return core.CardKindDream, nil
	default:
		return 0, fmt.Errorf("unknown card kind %q", kind)
	}
}

// abilitiesForKey maps an ability key to its parsed tree. The keys mirror
// what the upstream parser emits for the built-in set.
func abilitiesForKey(key string) ([]ability.Ability, error) {
	switch key {
	case "":
		return nil, nil
	case "draw_two":
		return []ability.Ability{ability.EventAbility(ability.EffectOf(ability.StandardEffect{
			Kind:  ability.EffectDrawCards,
			Count: 2,
		}))}, nil
	case "dissolve_enemy":
		return []ability.Ability{ability.EventAbility(ability.EffectOf(ability.StandardEffect{
			Kind:   ability.EffectDissolveCharacter,
			Target: ability.Enemy(ability.Character()),
		}))}, nil
	case "negate":
		return []ability.Ability{ability.EventAbility(ability.EffectOf(ability.StandardEffect{
			Kind:   ability.EffectCounterspell,
			Target: ability.Enemy(ability.Event()),
		}))}, nil
	case "foresee_two":
		return []ability.Ability{ability.EventAbility(ability.EffectOf(ability.StandardEffect{
			Kind:  ability.EffectForesee,
			Count: 2,
		}))}, nil
	case "materialized_draw":
		return []ability.Ability{ability.TriggeredAbility(ability.TriggerMaterialized,
			ability.EffectOf(ability.StandardEffect{
				Kind:  ability.EffectDrawCards,
				Count: 1,
			}))}, nil
	case "dissolved_gain_energy":
		return []ability.Ability{ability.TriggeredAbility(ability.TriggerDissolved,
			ability.EffectOf(ability.StandardEffect{
				Kind:   ability.EffectGainEnergy,
				Energy: 1,
			}))}, nil
	case "activated_spark":
		return []ability.Ability{ability.ActivatedAbility(ability.EnergyCost(1),
			ability.EffectOf(ability.StandardEffect{
				Kind:   ability.EffectGainsSpark,
				Target: ability.Your(ability.Character()),
				Spark:  1,
			}))}, nil
	case "reclaim_return_void":
		return []ability.Ability{ability.EventAbility(ability.EffectOf(ability.StandardEffect{
			Kind:   ability.EffectReturnFromYourVoidToHand,
			Target: ability.YourVoid(ability.AnyCard()),
		}))}, nil
	default:
		return nil, fmt.Errorf("unknown ability key %q", key)
	}
}

// BuiltinDefinitions returns the card set used when no database is
// configured. It matches the rows seeded by the schema migration so local
// runs and database-backed runs see the same cards.
func BuiltinDefinitions() []*game.CardDefinition {
	mk := func(name, kind string, cost, spark int, fast, reclaim bool, key string) *game.CardDefinition {
		cardKind, err := parseKind(kind)
		if err != nil {
			panic(err)
		}
		abilities, err := abilitiesForKey(key)
		if err != nil {
			panic(err)
		}
		return &game.CardDefinition{
			Name:      name,
			Kind:      cardKind,
			Cost:      core.Energy(cost),
			Spark:     core.Spark(spark),
			IsFast:    fast,
			Reclaim:   reclaim,
			Abilities: abilities,
		}
	}

	return []*game.CardDefinition{
		mk("Ember Whelp", "character", 1, 1, false, false, ""),
		mk("Dune Stalker", "character", 2, 2, false, false, ""),
		mk("Archive Keeper", "character", 3, 2, false, false, "materialized_draw"),
		mk("Cinder Shade", "character", 2, 1, false, false, "dissolved_gain_energy"),
		mk("Beacon Warden", "character", 4, 3, false, false, "activated_spark"),
		mk("Glimpse Beyond", "event", 1, 0, false, false, "foresee_two"),
		mk("Scholar's Gambit", "event", 2, 0, false, false, "draw_two"),
		mk("Unmake", "event", 3, 0, false, false, "dissolve_enemy"),
		mk("Abolish", "event", 2, 0, true, false, "negate"),
		mk("Grave Echo", "event", 2, 0, false, true, "reclaim_return_void"),
	}
}
