// Package effects is the engine's driving state machine: it walks effect
// trees, applies standard effects through per-kind mutators, and drains the
// pending-effect queue while no prompt is open and the game has not ended.
package effects

import (
	"go.uber.org/zap"

	"github.com/emberfall/battle-server-go/internal/core"
	"github.com/emberfall/battle-server-go/internal/game"
	"github.com/emberfall/battle-server-go/internal/game/ability"
	"github.com/emberfall/battle-server-go/internal/game/prompts"
	"github.com/emberfall/battle-server-go/internal/game/targeting"
)

// Executor applies effects to battle state. It is stateless apart from its
// logger; all mutable data lives in the BattleState passed to each call.
type Executor struct {
	log *zap.Logger
}

// NewExecutor creates an executor logging through the given logger.
func NewExecutor(log *zap.Logger) *Executor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Executor{log: log}
}

// trace emits a battle trace entry when tracing is enabled for the battle.
func (e *Executor) trace(b *game.BattleState, msg string, kv ...any) {
	if !b.Tracing {
		return
	}
	fields := make([]zap.Field, 0, len(kv)/2+2)
	fields = append(fields, zap.String("battle", b.ID.String()), zap.Int("turn", int(b.Turn.TurnID)))
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		fields = append(fields, zap.Any(key, kv[i+1]))
	}
	e.log.Debug(msg, fields...)
}

// ExecuteEventAbilities applies a card's event abilities as it resolves from
// the stack. A single ability applies directly; multiple abilities are
// flattened into the pending queue so their effects, and any triggers they
// fire, keep strict FIFO order. The pending queue must be empty on entry
// when flattening.
func (e *Executor) ExecuteEventAbilities(
	b *game.BattleState,
	controller core.PlayerName,
	sourceCard game.CardID,
	abilities []ability.Ability,
	requested *game.EffectTargets,
) {
	eventAbilities := make([]int, 0, len(abilities))
	for i, ab := range abilities {
		if ab.Kind == ability.AbilityEvent {
			eventAbilities = append(eventAbilities, i)
		}
	}

	if len(eventAbilities) == 1 {
		i := eventAbilities[0]
		e.Execute(b, game.EventSource(controller, sourceCard, i), abilities[i].Effect, requested, game.NoCard)
		return
	}

	if len(b.PendingEffects) > 0 {
		game.Fault(b, "pending queue must be empty before enqueueing event abilities",
			"pending", len(b.PendingEffects))
	}
	for _, i := range eventAbilities {
		source := game.EventSource(controller, sourceCard, i)
		for _, pending := range flattenEffect(b, source, abilities[i].Effect, requested, game.NoCard) {
			b.EnqueuePending(pending)
		}
		// Positional targets are consumed by the first ability's sub-effects.
		requested = nil
	}
	e.ExecutePendingIfNoPrompt(b)
}

// Execute applies one effect tree for a source. A bare standard effect
// applies immediately; a list is flattened into the pending queue (which
// must be empty) and drained; a modal effect opens a choice prompt for the
// controller.
func (e *Executor) Execute(
	b *game.BattleState,
	source game.EffectSource,
	effect ability.Effect,
	requested *game.EffectTargets,
	thatCard game.CardID,
) {
	switch {
	case effect.Standard != nil:
		e.applyWithOptions(b, source, ability.WithOptions(*effect.Standard), requested, thatCard)
		b.ClearStackPriorityIfStackEmpty()
		e.ExecutePendingIfNoPrompt(b)

	case effect.Options != nil:
		e.applyWithOptions(b, source, *effect.Options, requested, thatCard)
		b.ClearStackPriorityIfStackEmpty()
		e.ExecutePendingIfNoPrompt(b)

	case effect.List != nil:
		if len(b.PendingEffects) > 0 {
			game.Fault(b, "pending queue must be empty before enqueueing an effect list",
				"pending", len(b.PendingEffects))
		}
		for _, pending := range flattenEffect(b, source, effect, requested, thatCard) {
			b.EnqueuePending(pending)
		}
		e.ExecutePendingIfNoPrompt(b)

	case effect.Modal != nil:
		b.PushPrompt(*prompts.ModalPrompt(source, source.Controller, effect.Modal))
		e.trace(b, "modal prompt opened", "choices", len(effect.Modal))

	default:
		game.Fault(b, "effect with no variant set", "source", source.Kind)
	}
}

// ExecutePendingIfNoPrompt is the queue-drain loop and the only consumer of
// the pending-effect queue. It stops as soon as a prompt is open or the game
// has ended; a pending effect whose targets need a player decision stays at
// the front of the queue until its prompt is answered.
func (e *Executor) ExecutePendingIfNoPrompt(b *game.BattleState) {
	for !b.HasActivePrompt() && !b.Status.GameOver && len(b.PendingEffects) > 0 {
		front := &b.PendingEffects[0]
		if front.Targets == nil {
			effect := ability.Effect{Options: &front.Effect}
			resolution := targeting.Resolve(b, front.Source, &effect, front.ThatCard)
			if resolution.RequiresPrompt {
				prompt := prompts.BuildPrompt(b, front.Source.Controller, front.Source, &effect, front.ThatCard)
				if prompt != nil {
					b.PushPrompt(*prompt)
					e.trace(b, "prompt opened", "kind", prompt.Kind)
					return
				}
				// No choice is possible; fall through and no-op.
			} else {
				front.Targets = resolution.Targets
			}
		}

		pending := b.DequeuePending()
		e.applyWithOptions(b, pending.Source, pending.Effect, pending.Targets, pending.ThatCard)
		b.ClearStackPriorityIfStackEmpty()
	}
}

// applyWithOptions applies one standard effect under its resolution
// modifiers: a false condition or an unpayable trigger cost silently skips
// the effect, and an optional effect defers to a yes/no choice prompt.
func (e *Executor) applyWithOptions(
	b *game.BattleState,
	source game.EffectSource,
	effect ability.EffectWithOptions,
	targets *game.EffectTargets,
	thatCard game.CardID,
) bool {
	if effect.Condition != nil && !e.conditionMet(b, source, effect.Condition, thatCard) {
		e.trace(b, "condition not met", "effect", effect.Effect.Kind)
		return false
	}

	if effect.TriggerCost != nil {
		if !e.canPayCost(b, source.Controller, effect.TriggerCost) {
			e.trace(b, "trigger cost unpayable", "effect", effect.Effect.Kind)
			return false
		}
		e.payCost(b, source.Controller, effect.TriggerCost)
	}

	if effect.Optional {
		inner := effect
		inner.Optional = false
		b.PushPrompt(*prompts.YesNoPrompt(source, source.Controller, ability.Effect{Options: &inner}, thatCard))
		e.trace(b, "optional effect prompt opened", "effect", effect.Effect.Kind)
		return false
	}

	if targets == nil {
		target, prompt := targeting.ResolveStandard(b, source, &effect.Effect, thatCard)
		if prompt {
			// Ambiguous targets reaching direct application mean the caller
			// skipped resolution; re-route through the prompt path.
			built := prompts.BuildPrompt(b, source.Controller, source,
				&ability.Effect{Standard: &effect.Effect}, thatCard)
			if built != nil {
				b.PushPrompt(*built)
				b.EnqueuePending(game.PendingEffect{Source: source, Effect: effect, ThatCard: thatCard})
				return false
			}
		}
		if target != nil {
			targets = game.StandardTargets(target)
		}
	}

	applied := e.applyStandard(b, source, &effect.Effect, targets, thatCard)
	if applied {
		e.trace(b, "effect applied", "effect", effect.Effect.Kind)
	}
	return applied
}

// conditionMet evaluates an effect condition against live state.
func (e *Executor) conditionMet(
	b *game.BattleState,
	source game.EffectSource,
	cond *ability.Condition,
	thatCard game.CardID,
) bool {
	switch cond.Kind {
	case ability.ConditionPredicateCount:
		return matchCount(b, source, cond.Predicate, thatCard) >= cond.Count
	case ability.ConditionCardsInVoidCount:
		return b.Cards.Void(source.Controller).Len() >= cond.Count
	case ability.ConditionEnergyAtLeast:
		return b.Player(source.Controller).Energy >= cond.Energy
	default:
		game.Fault(b, "unhandled condition", "kind", cond.Kind)
		return false
	}
}

// canPayCost reports whether the controller can pay a cost right now.
func (e *Executor) canPayCost(b *game.BattleState, p core.PlayerName, cost *ability.Cost) bool {
	switch cost.Kind {
	case ability.CostEnergy:
		return b.Player(p).Energy >= cost.Energy
	case ability.CostAbandonCharacters:
		return matchCount(b, game.GameSource(p), cost.Predicate, game.NoCard) >= cost.Count
	default:
		game.Fault(b, "unhandled cost", "kind", cost.Kind)
		return false
	}
}

// payCost deducts a cost the caller has already verified is payable. An
// abandon cost with an ambiguous character choice opens a prompt from the
// caller's side; here only the unambiguous forms are paid directly.
func (e *Executor) payCost(b *game.BattleState, p core.PlayerName, cost *ability.Cost) {
	switch cost.Kind {
	case ability.CostEnergy:
		b.Player(p).Energy -= cost.Energy
		e.trace(b, "energy cost paid", "player", p, "amount", cost.Energy)
	case ability.CostAbandonCharacters:
		set := matchingCharactersFor(b, p, cost.Predicate)
		for i := 0; i < cost.Count; i++ {
			id, ok := set.GetAtIndex(i)
			if !ok {
				game.Fault(b, "abandon cost short of characters", "needed", cost.Count, "have", set.Len())
			}
			e.dissolveCharacter(b, b.Cards.Owner(game.CardID(id)), id)
		}
	default:
		game.Fault(b, "unhandled cost", "kind", cost.Kind)
	}
}
