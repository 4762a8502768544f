// Package legal enumerates the actions a player may take and maintains the
// per-energy legal-actions cache used to avoid rescanning zones on every
// enumeration call.
package legal

import (
	"github.com/emberfall/battle-server-go/internal/core"
	"github.com/emberfall/battle-server-go/internal/game"
	"github.com/emberfall/battle-server-go/internal/game/ability"
)

// Populate recomputes the legal-actions cache for both players, one slot
// per discrete energy level from zero to the player's maximum. The cache is
// a pure projection of the battle snapshot: callers that move cards between
// zones or change costs must call Populate again before the next read that
// should observe the change.
func Populate(b *game.BattleState) {
	cache := &game.LegalActionsCacheData{}
	for _, p := range []core.PlayerName{core.PlayerOne, core.PlayerTwo} {
		state := b.Player(p)
		max := state.Energy
		if state.ProducedEnergy > max {
			max = state.ProducedEnergy
		}
		slots := make([]game.EnergyActionSets, int(max)+1)
		for energy := core.Energy(0); energy <= max; energy++ {
			slots[energy] = computeForEnergy(b, p, energy)
		}
		cache.PerEnergy[p] = slots
	}
	b.ActionsCache = cache
}

// computeForEnergy is the direct, uncached computation backing the cache:
// one scan of the player's hand, void, and battlefield at a fixed energy
// level.
func computeForEnergy(b *game.BattleState, p core.PlayerName, energy core.Energy) game.EnergyActionSets {
	var sets game.EnergyActionSets

	for _, id := range b.Cards.Hand(p).All() {
		def := b.Cards.Definition(game.CardID(id))
		if def.Cost > energy {
			continue
		}
		sets.PlayFromHand.Insert(id)
		if def.IsFast {
			sets.PlayFromHandFast.Insert(id)
		}
	}

	for _, id := range b.Cards.Void(p).All() {
		def := b.Cards.Definition(game.CardID(id))
		if !def.Reclaim || def.Cost > energy {
			continue
		}
		sets.PlayFromVoid.Insert(id)
		if def.IsFast {
			sets.PlayFromVoidFast.Insert(id)
		}
	}

	for _, cid := range b.Cards.Battlefield(p).All() {
		def := b.Cards.Definition(game.CardID(cid))
		for i, ab := range def.Abilities {
			if ab.Kind != ability.AbilityActivated {
				continue
			}
			if !costAffordable(b, p, ab.Cost, energy) {
				continue
			}
			id := game.ActivatedAbilityID{Character: cid, AbilityNumber: i}
			sets.Abilities = append(sets.Abilities, id)
			if ab.Fast {
				sets.AbilitiesFast = append(sets.AbilitiesFast, id)
			}
		}
	}

	return sets
}

func costAffordable(b *game.BattleState, p core.PlayerName, cost *ability.Cost, energy core.Energy) bool {
	if cost == nil {
		return true
	}
	switch cost.Kind {
	case ability.CostEnergy:
		return cost.Energy <= energy
	case ability.CostAbandonCharacters:
		return b.Cards.Battlefield(p).Len() >= cost.Count
	default:
		game.Fault(b, "unhandled cost in legal action computation", "kind", cost.Kind)
		return false
	}
}

// PlayCardCandidates returns the hand cards p can afford right now. Energy
// levels above the precomputed range fall back to direct computation.
func PlayCardCandidates(b *game.BattleState, p core.PlayerName, fastOnly bool) game.CardSet[game.HandCardID] {
	sets, ok := b.ActionsCache.ForEnergy(p, b.Player(p).Energy)
	if !ok {
		sets = computeForEnergy(b, p, b.Player(p).Energy)
	}
	if fastOnly {
		return sets.PlayFromHandFast
	}
	return sets.PlayFromHand
}

// PlayFromVoidCandidates returns the reclaim cards p can afford right now.
func PlayFromVoidCandidates(b *game.BattleState, p core.PlayerName, fastOnly bool) game.CardSet[game.VoidCardID] {
	sets, ok := b.ActionsCache.ForEnergy(p, b.Player(p).Energy)
	if !ok {
		sets = computeForEnergy(b, p, b.Player(p).Energy)
	}
	if fastOnly {
		return sets.PlayFromVoidFast
	}
	return sets.PlayFromVoid
}

// ActivateAbilityCandidates returns the activated abilities p can afford
// right now.
func ActivateAbilityCandidates(b *game.BattleState, p core.PlayerName, fastOnly bool) []game.ActivatedAbilityID {
	sets, ok := b.ActionsCache.ForEnergy(p, b.Player(p).Energy)
	if !ok {
		sets = computeForEnergy(b, p, b.Player(p).Energy)
	}
	if fastOnly {
		return sets.AbilitiesFast
	}
	return sets.Abilities
}
