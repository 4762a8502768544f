package game

import (
	"slices"

	"github.com/google/uuid"

	"github.com/emberfall/battle-server-go/internal/core"
)

// PointsToWin is the victory point total that ends a battle.
const PointsToWin core.Points = 12

// PlayerState is one player's mutable resources.
type PlayerState struct {
	Name core.PlayerName
	// Energy is the player's currently spendable energy.
	Energy core.Energy
	// ProducedEnergy is the energy produced this turn, the refill value.
	ProducedEnergy core.Energy
	Points         core.Points
	// SparkBonus is added to spark gains this player's characters receive.
	SparkBonus core.Spark
}

// BattleStatus describes whether a battle is still running.
type BattleStatus struct {
	GameOver bool
	Winner   core.PlayerName
}

// TurnData tracks whose turn it is.
type TurnData struct {
	ActivePlayer core.PlayerName
	TurnID       core.TurnID
	// Ended is set between the active player ending their turn and the
	// opponent starting the next one.
	Ended bool
}

// BattleState is the single owned root of all mutable game data for one
// battle. Exactly one BattleState is mutated per game; external simulation
// callers take clones and replay actions against those. Everything reachable
// from here is plain data, so Clone is a straight deep copy with no resource
// handles involved.
type BattleState struct {
	ID      uuid.UUID
	Players [2]PlayerState
	Cards   BattleCards

	// PendingEffects is the FIFO queue of not-yet-applied sub-effects.
	PendingEffects []PendingEffect
	// Prompts is the FIFO queue of suspended player decisions. A non-empty
	// queue freezes effect resolution until the front prompt is answered.
	Prompts []PromptData

	// StackPriority is the player holding priority while cards are on the
	// stack, nil when the stack is empty.
	StackPriority *core.PlayerName

	Status BattleStatus
	Turn   TurnData

	// Rng is the state-owned generator; all in-battle randomness draws from
	// it so that identical seeds replay identically.
	Rng Rng

	// ActionsCache is the precomputed legal-action table, nil until
	// populated.
	ActionsCache *LegalActionsCacheData

	// ActionHistory records every accepted action, for replay and debugging.
	ActionHistory []BattleAction

	// Tracing enables verbose effect/prompt trace logging for this battle.
	Tracing bool
}

// NewBattleState returns an empty battle with the given identifier and
// random seed.
func NewBattleState(id uuid.UUID, seed uint64) *BattleState {
	return &BattleState{
		ID: id,
		Players: [2]PlayerState{
			{Name: core.PlayerOne},
			{Name: core.PlayerTwo},
		},
		Cards: NewBattleCards(),
		Rng:   NewRng(seed),
	}
}

// Player returns the mutable state for a player.
func (b *BattleState) Player(p core.PlayerName) *PlayerState {
	return &b.Players[p]
}

// HasActivePrompt reports whether a prompt is awaiting an answer.
func (b *BattleState) HasActivePrompt() bool {
	return len(b.Prompts) > 0
}

// ActivePrompt returns the front of the prompt queue, or nil.
func (b *BattleState) ActivePrompt() *PromptData {
	if len(b.Prompts) == 0 {
		return nil
	}
	return &b.Prompts[0]
}

// PushPrompt appends a prompt to the queue.
func (b *BattleState) PushPrompt(p PromptData) {
	b.Prompts = append(b.Prompts, p)
}

// PopPrompt removes and returns the front prompt.
func (b *BattleState) PopPrompt() PromptData {
	p := b.Prompts[0]
	b.Prompts = b.Prompts[1:]
	return p
}

// EnqueuePending appends a pending effect.
func (b *BattleState) EnqueuePending(e PendingEffect) {
	b.PendingEffects = append(b.PendingEffects, e)
}

// DequeuePending removes and returns the front pending effect.
func (b *BattleState) DequeuePending() PendingEffect {
	e := b.PendingEffects[0]
	b.PendingEffects = b.PendingEffects[1:]
	return e
}

// ClearStackPriorityIfStackEmpty drops the priority holder once the stack
// has emptied.
func (b *BattleState) ClearStackPriorityIfStackEmpty() {
	if b.Cards.StackIsEmpty() {
		b.StackPriority = nil
	}
}

// SetStackPriority records which player holds priority.
func (b *BattleState) SetStackPriority(p core.PlayerName) {
	b.StackPriority = &p
}

// SetGameOver marks the battle finished.
func (b *BattleState) SetGameOver(winner core.PlayerName) {
	b.Status = BattleStatus{GameOver: true, Winner: winner}
}

// Clone returns an independent deep copy of the battle, including the
// generator state, suitable for hypothetical simulation by search callers.
func (b *BattleState) Clone() *BattleState {
	out := *b
	out.Cards = b.Cards.Clone()
	out.PendingEffects = make([]PendingEffect, len(b.PendingEffects))
	for i, e := range b.PendingEffects {
		out.PendingEffects[i] = e.Clone()
	}
	out.Prompts = make([]PromptData, len(b.Prompts))
	for i := range b.Prompts {
		out.Prompts[i] = *b.Prompts[i].Clone()
	}
	if b.StackPriority != nil {
		p := *b.StackPriority
		out.StackPriority = &p
	}
	out.ActionsCache = b.ActionsCache.Clone()
	out.ActionHistory = slices.Clone(b.ActionHistory)
	return &out
}
