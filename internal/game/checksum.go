package game

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/emberfall/battle-server-go/internal/core"
)

// Checksum computes a deterministic digest of the battle. Two states with
// the same checksum are observably identical, which guards against
// divergence between replayed or cloned battles. Only game-meaningful data
// participates; the digest is stable across processes.
func (b *BattleState) Checksum() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "battle:%s|turn:%d|active:%s|ended:%t\n",
		b.ID, b.Turn.TurnID, b.Turn.ActivePlayer, b.Turn.Ended)
	fmt.Fprintf(&sb, "status:%t|winner:%s\n", b.Status.GameOver, b.Status.Winner)
	if b.StackPriority != nil {
		fmt.Fprintf(&sb, "priority:%s\n", *b.StackPriority)
	}

	for _, p := range []core.PlayerName{core.PlayerOne, core.PlayerTwo} {
		state := b.Player(p)
		fmt.Fprintf(&sb, "player:%s|energy:%d|produced:%d|points:%d|bonus:%d\n",
			p, state.Energy, state.ProducedEnergy, state.Points, state.SparkBonus)
		fmt.Fprintf(&sb, "hand:%s|void:%s|banished:%s\n",
			b.Cards.Hand(p).String(), b.Cards.Void(p).String(), b.Cards.Banished(p).String())
		for _, id := range b.Cards.Battlefield(p).All() {
			spark, _ := b.Cards.SparkOf(p, id)
			fmt.Fprintf(&sb, "character:%d|spark:%d\n", id, spark)
		}
		for _, id := range b.Cards.TopOfDeck(p, b.Cards.DeckSize(p)) {
			fmt.Fprintf(&sb, "deck:%d\n", id)
		}
	}

	for _, item := range b.Cards.Stack() {
		fmt.Fprintf(&sb, "stack:%d|controller:%s|from_void:%t\n",
			item.Card, item.Controller, item.FromVoid)
	}
	for _, pending := range b.PendingEffects {
		fmt.Fprintf(&sb, "pending:%s|source:%d|card:%d|that:%d\n",
			pending.Effect.Effect.Kind, pending.Source.Kind, pending.Source.Card, pending.ThatCard)
	}
	for _, prompt := range b.Prompts {
		fmt.Fprintf(&sb, "prompt:%d|player:%s|source:%d|that:%d|selected:%s\n",
			prompt.Kind, prompt.Player, prompt.Source.Card, prompt.That,
			prompt.SelectedVoidCards.String())
	}

	sum := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(sum[:])
}
