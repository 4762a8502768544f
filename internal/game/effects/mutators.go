package effects

import (
	"github.com/emberfall/battle-server-go/internal/core"
	"github.com/emberfall/battle-server-go/internal/game"
	"github.com/emberfall/battle-server-go/internal/game/ability"
	"github.com/emberfall/battle-server-go/internal/game/predicates"
)

// applyStandard dispatches one standard effect to its mutator. The return
// value reports whether anything observable happened; an unresolved target
// or a zero quantity is a silent no-op, not an error. The dispatch is
// exhaustive over the effect vocabulary; an unhandled kind is an engine
// fault.
func (e *Executor) applyStandard(
	b *game.BattleState,
	source game.EffectSource,
	effect *ability.StandardEffect,
	targets *game.EffectTargets,
	thatCard game.CardID,
) bool {
	controller := source.Controller

	switch effect.Kind {
	case ability.EffectNoEffect:
		return false

	case ability.EffectDrawCards:
		if effect.Count == 0 {
			return false
		}
		return e.drawCards(b, controller, effect.Count) > 0

	case ability.EffectDrawCardsForEach:
		n := effect.Count * predicates.CountMatching(b, source, effect.Quantity, thatCard)
		if n == 0 {
			return false
		}
		return e.drawCards(b, controller, n) > 0

	case ability.EffectDissolveCharacter:
		target := characterTarget(b, targets)
		if target == nil {
			return false
		}
		e.dissolveCharacter(b, b.Cards.Owner(game.CardID(*target)), *target)
		return true

	case ability.EffectBanishCharacter:
		target := characterTarget(b, targets)
		if target == nil {
			return false
		}
		e.banishCharacter(b, b.Cards.Owner(game.CardID(*target)), *target)
		return true

	case ability.EffectReturnToHand:
		target := characterTarget(b, targets)
		if target == nil {
			return false
		}
		e.returnCharacterToHand(b, b.Cards.Owner(game.CardID(*target)), *target)
		return true

	case ability.EffectGainsSpark:
		target := characterTarget(b, targets)
		if target == nil {
			return false
		}
		owner := b.Cards.Owner(game.CardID(*target))
		state, ok := b.Cards.CharacterStateFor(owner, *target)
		if !ok {
			return false
		}
		state.Spark += effect.Spark + b.Player(owner).SparkBonus
		b.Cards.SetCharacterState(owner, *target, state)
		e.trace(b, "spark gained", "card", b.Cards.Definition(game.CardID(*target)).Name, "spark", state.Spark)
		return true

	case ability.EffectGainEnergy:
		b.Player(controller).Energy += effect.Energy
		return true

	case ability.EffectPayEnergy:
		player := b.Player(controller)
		if player.Energy < effect.Energy {
			game.Fault(b, "energy payment exceeds available energy",
				"player", controller, "have", player.Energy, "pay", effect.Energy)
		}
		player.Energy -= effect.Energy
		return true

	case ability.EffectGainPoints:
		player := b.Player(controller)
		player.Points += effect.Points
		if player.Points >= game.PointsToWin && !b.Status.GameOver {
			b.SetGameOver(controller)
			e.trace(b, "game over", "winner", controller, "points", player.Points)
		}
		return true

	case ability.EffectLosePoints:
		player := b.Player(controller)
		player.Points -= effect.Points
		if player.Points < 0 {
			player.Points = 0
		}
		return true

	case ability.EffectCounterspell:
		target := stackTarget(b, targets)
		if target == nil {
			return false
		}
		e.moveStackCardToVoid(b, *target)
		return true

	case ability.EffectCounterspellUnlessPaysCost:
		return e.counterspellUnlessPays(b, source, effect, targets)

	case ability.EffectForesee:
		return e.foresee(b, source, controller, effect.Count)

	case ability.EffectReturnFromYourVoidToHand,
		ability.EffectReturnUpToCountFromYourVoidToHand:
		cards := voidTarget(b, controller, targets)
		if cards.IsEmpty() {
			return false
		}
		for _, id := range cards.All() {
			e.returnVoidCardToHand(b, controller, id)
		}
		return true

	default:
		game.Fault(b, "unhandled standard effect", "kind", effect.Kind)
		return false
	}
}

// counterspellUnlessPays negates a stack card unless its controller pays
// the attached cost: an unpayable cost counters immediately, a payable one
// opens a pay-or-decline choice for the card's controller.
func (e *Executor) counterspellUnlessPays(
	b *game.BattleState,
	source game.EffectSource,
	effect *ability.StandardEffect,
	targets *game.EffectTargets,
) bool {
	target := stackTarget(b, targets)
	if target == nil {
		return false
	}
	if effect.Cost == nil || effect.Cost.Kind != ability.CostEnergy {
		game.Fault(b, "counterspell negotiation requires an energy cost")
	}
	itemController := b.Cards.Controller(game.CardID(*target))
	if b.Player(itemController).Energy < effect.Cost.Energy {
		e.moveStackCardToVoid(b, *target)
		return true
	}

	counter := ability.EffectOf(ability.StandardEffect{
		Kind:   ability.EffectCounterspell,
		Target: ability.That(),
	})
	b.PushPrompt(game.PromptData{
		Source: source,
		Player: itemController,
		Kind:   game.PromptChoice,
		Choices: []game.PromptChoiceOption{
			{Label: "pay", EnergyCost: effect.Cost.Energy},
			{Label: "decline", Effect: &counter},
		},
		That: game.CardID(*target),
	})
	e.trace(b, "counterspell negotiation opened", "cost", effect.Cost.Energy)
	return true
}

// foresee reveals the top n deck cards and opens the ordering prompt. An
// empty deck is a silent no-op with no prompt.
func (e *Executor) foresee(b *game.BattleState, source game.EffectSource, p core.PlayerName, n int) bool {
	top := b.Cards.TopOfDeck(p, n)
	if len(top) == 0 {
		return false
	}
	b.PushPrompt(game.PromptData{
		Source: source,
		Player: p,
		Kind:   game.PromptSelectDeckCardOrder,
		That:   game.NoCard,
		DeckOrder: &game.DeckCardOrderPrompt{
			Initial: top,
			Deck:    append([]game.DeckCardID(nil), top...),
		},
	})
	e.trace(b, "foresee prompt opened", "revealed", len(top))
	return true
}

// characterTarget pops the next target and returns it only while the
// character is still on its owner's battlefield. A target that left the
// zone between resolution and application counts as unresolved.
func characterTarget(b *game.BattleState, targets *game.EffectTargets) *game.CharacterID {
	t := targets.PopFront()
	if t == nil || t.Kind != game.TargetCharacter {
		return nil
	}
	id := t.Character
	if !b.Cards.Battlefield(b.Cards.Owner(game.CardID(id))).Contains(id) {
		return nil
	}
	return &id
}

// stackTarget pops the next target and returns it only while the card is
// still on the stack.
func stackTarget(b *game.BattleState, targets *game.EffectTargets) *game.StackCardID {
	t := targets.PopFront()
	if t == nil || t.Kind != game.TargetStackCard {
		return nil
	}
	id := t.StackCard
	if b.Cards.StackItemFor(id) == nil {
		return nil
	}
	return &id
}

// voidTarget pops the next target, dropping any selected cards that have
// already left the controller's void.
func voidTarget(b *game.BattleState, controller core.PlayerName, targets *game.EffectTargets) game.CardSet[game.VoidCardID] {
	t := targets.PopFront()
	if t == nil || t.Kind != game.TargetVoidCards {
		return game.CardSet[game.VoidCardID]{}
	}
	cards := t.VoidCards
	cards.IntersectWith(b.Cards.Void(controller))
	return cards
}

// matchCount counts battlefield characters matching a predicate.
func matchCount(b *game.BattleState, source game.EffectSource, pred *ability.Predicate, thatCard game.CardID) int {
	if pred == nil {
		return 0
	}
	return predicates.MatchingCharacters(b, source, pred, thatCard).Len()
}

// matchingCharactersFor matches p's own battlefield characters against a
// cost predicate, defaulting to all of them for a nil predicate.
func matchingCharactersFor(b *game.BattleState, p core.PlayerName, pred *ability.Predicate) game.CardSet[game.CharacterID] {
	if pred == nil {
		return b.Cards.Battlefield(p)
	}
	return predicates.MatchingCharacters(b, game.GameSource(p), pred, game.NoCard)
}
