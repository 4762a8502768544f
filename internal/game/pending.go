package game

import (
	"github.com/emberfall/battle-server-go/internal/game/ability"
)

// PendingEffect is one not-yet-applied sub-effect in the FIFO pending queue.
// Entries are created when a multi-effect list is enqueued and consumed one
// at a time, in order, by the executor's drain loop.
type PendingEffect struct {
	Source EffectSource
	Effect ability.EffectWithOptions
	// Targets are the pre-resolved targets for this entry, if any.
	Targets *EffectTargets
	// ThatCard carries the "that card" reference for triggered effects.
	ThatCard CardID
}

// Clone returns a deep copy.
func (p PendingEffect) Clone() PendingEffect {
	out := p
	out.Targets = p.Targets.Clone()
	return out
}
