package effects

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/emberfall/battle-server-go/internal/core"
	"github.com/emberfall/battle-server-go/internal/game"
)

// ReplaySetup is everything needed to reconstruct a battle from scratch:
// the deck lists, the seed, and the opening hand size. Together with the
// recorded action history it deterministically reproduces any battle.
type ReplaySetup struct {
	BattleID uuid.UUID
	Seed     uint64
	HandSize int
	Decks    [2][]*game.CardDefinition
}

// Replay rebuilds a battle and reapplies a recorded action history. The
// engine draws all randomness from the state-owned generator, so identical
// setups and histories always converge on identical states; the returned
// battle's checksum can be compared against the original to detect
// divergence.
func (e *Executor) Replay(setup ReplaySetup, history []game.BattleAction) (*game.BattleState, error) {
	b := game.NewBattleState(setup.BattleID, setup.Seed)
	for _, p := range []core.PlayerName{core.PlayerOne, core.PlayerTwo} {
		for _, def := range setup.Decks[p] {
			b.Cards.CreateCard(def, p, game.ZoneDeck)
		}
	}
	e.StartBattle(b, setup.HandSize)

	for i, action := range history {
		player := actingPlayer(b, action)
		if err := e.ApplyAction(b, player, action); err != nil {
			return nil, fmt.Errorf("replaying action %d: %w", i, err)
		}
	}
	return b, nil
}

// actingPlayer recovers which player submitted an action: the open
// prompt's player for prompt answers, the priority holder while the stack
// is occupied, and otherwise whoever can act in the current turn state.
func actingPlayer(b *game.BattleState, action game.BattleAction) core.PlayerName {
	if prompt := b.ActivePrompt(); prompt != nil {
		return prompt.Player
	}
	if b.StackPriority != nil {
		return *b.StackPriority
	}
	if action.Kind == game.ActionStartNextTurn {
		return b.Turn.ActivePlayer.Opponent()
	}
	return b.Turn.ActivePlayer
}
