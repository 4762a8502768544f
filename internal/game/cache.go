package game

import (
	"slices"

	"github.com/emberfall/battle-server-go/internal/core"
)

// EnergyActionSets is the precomputed answer for one (player, energy level)
// pair: which cards and abilities that player could afford at that energy,
// split into fast and normal subsets.
type EnergyActionSets struct {
	PlayFromHand     CardSet[HandCardID]
	PlayFromHandFast CardSet[HandCardID]
	PlayFromVoid     CardSet[VoidCardID]
	PlayFromVoidFast CardSet[VoidCardID]
	Abilities        []ActivatedAbilityID
	AbilitiesFast    []ActivatedAbilityID
}

// Clone returns a deep copy.
func (s EnergyActionSets) Clone() EnergyActionSets {
	out := s
	out.Abilities = slices.Clone(s.Abilities)
	out.AbilitiesFast = slices.Clone(s.AbilitiesFast)
	return out
}

// LegalActionsCacheData is the denormalized legal-action table: per player,
// one EnergyActionSets per discrete energy level 0..N. It is a pure
// projection of the battle snapshot it was computed from; callers that
// mutate zones, costs, or abilities must repopulate it before the next read
// that should observe the change.
type LegalActionsCacheData struct {
	PerEnergy [2][]EnergyActionSets
}

// ForEnergy returns the cached sets for a player at an energy level, or
// false when the level is outside the precomputed range.
func (c *LegalActionsCacheData) ForEnergy(p core.PlayerName, energy core.Energy) (EnergyActionSets, bool) {
	if c == nil || energy < 0 || int(energy) >= len(c.PerEnergy[p]) {
		return EnergyActionSets{}, false
	}
	return c.PerEnergy[p][energy], true
}

// Clone returns a deep copy.
func (c *LegalActionsCacheData) Clone() *LegalActionsCacheData {
	if c == nil {
		return nil
	}
	out := &LegalActionsCacheData{}
	for p := range c.PerEnergy {
		out.PerEnergy[p] = make([]EnergyActionSets, len(c.PerEnergy[p]))
		for i, sets := range c.PerEnergy[p] {
			out.PerEnergy[p][i] = sets.Clone()
		}
	}
	return out
}
