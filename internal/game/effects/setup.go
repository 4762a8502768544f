package effects

import (
	"github.com/emberfall/battle-server-go/internal/core"
	"github.com/emberfall/battle-server-go/internal/game"
)

// StartBattle shuffles both decks, deals opening hands, and begins the
// first turn. Cards must already be registered in the deck zones.
func (e *Executor) StartBattle(b *game.BattleState, handSize int) {
	for _, p := range []core.PlayerName{core.PlayerOne, core.PlayerTwo} {
		b.Cards.ShuffleDeck(p, &b.Rng)
		e.drawCards(b, p, handSize)
		state := b.Player(p)
		state.ProducedEnergy = 1
		state.Energy = 1
	}
	b.Turn = game.TurnData{ActivePlayer: core.PlayerOne, TurnID: 1}
	e.trace(b, "battle started", "hand_size", handSize)
}
