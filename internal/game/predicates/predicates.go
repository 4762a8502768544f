// Package predicates evaluates ability predicates against live battle
// state. Matching is always a pure read of the current snapshot; results
// are never cached.
package predicates

import (
	"github.com/emberfall/battle-server-go/internal/core"
	"github.com/emberfall/battle-server-go/internal/game"
	"github.com/emberfall/battle-server-go/internal/game/ability"
)

// MatchingCharacters returns battlefield characters matching the predicate,
// from the point of view of the effect's controller. ThatCard carries the
// "that card" reference for triggered effects, or NoCard.
func MatchingCharacters(
	b *game.BattleState,
	source game.EffectSource,
	pred *ability.Predicate,
	thatCard game.CardID,
) game.CardSet[game.CharacterID] {
	controller := source.Controller
	var out game.CardSet[game.CharacterID]

	switch pred.Kind {
	case ability.PredicateYour:
		out = charactersIn(b, controller, pred.Card)
	case ability.PredicateEnemy:
		out = charactersIn(b, controller.Opponent(), pred.Card)
	case ability.PredicateAnother:
		out = charactersIn(b, controller, pred.Card)
		if card, ok := source.CardID(); ok {
			out.Remove(game.CharacterID(card))
		}
	case ability.PredicateAny:
		out = charactersIn(b, controller, pred.Card)
		out.UnionWith(charactersIn(b, controller.Opponent(), pred.Card))
	case ability.PredicateAnyOther:
		out = charactersIn(b, controller, pred.Card)
		out.UnionWith(charactersIn(b, controller.Opponent(), pred.Card))
		if card, ok := source.CardID(); ok {
			out.Remove(game.CharacterID(card))
		}
	case ability.PredicateThis:
		if card, ok := source.CardID(); ok {
			if id, onField := b.Cards.ToCharacterID(controller, card); onField {
				out.Insert(id)
			}
		}
	case ability.PredicateThat, ability.PredicateIt:
		if thatCard != game.NoCard {
			owner := b.Cards.Owner(thatCard)
			if id, onField := b.Cards.ToCharacterID(owner, thatCard); onField {
				if matchesCharacter(b, owner, id, pred.Card) {
					out.Insert(id)
				}
			}
		}
	default:
		game.Fault(b, "unhandled character predicate", "predicate", pred.Kind)
	}
	return out
}

func charactersIn(
	b *game.BattleState,
	owner core.PlayerName,
	card *ability.CardPredicate,
) game.CardSet[game.CharacterID] {
	var out game.CardSet[game.CharacterID]
	for _, id := range b.Cards.Battlefield(owner).All() {
		if matchesCharacter(b, owner, id, card) {
			out.Insert(id)
		}
	}
	return out
}

func matchesCharacter(
	b *game.BattleState,
	owner core.PlayerName,
	id game.CharacterID,
	card *ability.CardPredicate,
) bool {
	if card == nil {
		return true
	}
	def := b.Cards.Definition(game.CardID(id))
	switch card.Kind {
	case ability.CardPredicateCard, ability.CardPredicateCharacter:
		return def.Kind == core.CardKindCharacter
	case ability.CardPredicateEvent, ability.CardPredicateDream:
		// Only characters occupy the battlefield.
		return false
	case ability.CardPredicateCharacterWithSpark:
		spark, ok := b.Cards.SparkOf(owner, id)
		if !ok {
			spark = def.Spark
		}
		return card.SparkOperator.CompareInt(int(spark), int(card.Spark))
	case ability.CardPredicateCardWithCost:
		if !matchesCharacter(b, owner, id, card.Target) {
			return false
		}
		return card.CostOperator.CompareInt(int(def.Cost), int(card.Cost))
	case ability.CardPredicateFast:
		return def.IsFast && matchesCharacter(b, owner, id, card.Target)
	default:
		game.Fault(b, "unhandled battlefield card predicate", "kind", card.Kind)
		return false
	}
}

// MatchingStackCards returns stack cards matching the predicate from the
// controller's point of view.
func MatchingStackCards(
	b *game.BattleState,
	source game.EffectSource,
	pred *ability.Predicate,
	thatCard game.CardID,
) game.CardSet[game.StackCardID] {
	controller := source.Controller
	var out game.CardSet[game.StackCardID]

	appendFor := func(p core.PlayerName) {
		for _, id := range b.Cards.StackSet(p).All() {
			if matchesStackCard(b, id, pred.Card) {
				out.Insert(id)
			}
		}
	}

	switch pred.Kind {
	case ability.PredicateYour:
		appendFor(controller)
	case ability.PredicateEnemy:
		appendFor(controller.Opponent())
	case ability.PredicateThat, ability.PredicateIt:
		if thatCard != game.NoCard {
			if item := b.Cards.StackItemFor(game.StackCardID(thatCard)); item != nil {
				if matchesStackCard(b, item.Card, pred.Card) {
					out.Insert(item.Card)
				}
			}
		}
	case ability.PredicateAny, ability.PredicateAnyOther:
		appendFor(controller)
		appendFor(controller.Opponent())
		if pred.Kind == ability.PredicateAnyOther {
			if card, ok := source.CardID(); ok {
				out.Remove(game.StackCardID(card))
			}
		}
	default:
		game.Fault(b, "unhandled stack predicate", "predicate", pred.Kind)
	}
	return out
}

func matchesStackCard(b *game.BattleState, id game.StackCardID, card *ability.CardPredicate) bool {
	if card == nil {
		return true
	}
	def := b.Cards.Definition(game.CardID(id))
	switch card.Kind {
	case ability.CardPredicateCard, ability.CardPredicateCardOnStack:
		return true
	case ability.CardPredicateCharacter:
		return def.Kind == core.CardKindCharacter
	case ability.CardPredicateEvent:
		return def.Kind == core.CardKindEvent
	case ability.CardPredicateDream:
		return def.Kind == core.CardKindDream
	case ability.CardPredicateCardWithCost:
		if !matchesStackCard(b, id, card.Target) {
			return false
		}
		return card.CostOperator.CompareInt(int(def.Cost), int(card.Cost))
	case ability.CardPredicateFast:
		return def.IsFast && matchesStackCard(b, id, card.Target)
	default:
		game.Fault(b, "unhandled stack card predicate", "kind", card.Kind)
		return false
	}
}

// MatchingVoidCards returns void cards matching the predicate. Only the
// void-qualified predicate kinds are meaningful here.
func MatchingVoidCards(
	b *game.BattleState,
	source game.EffectSource,
	pred *ability.Predicate,
) game.CardSet[game.VoidCardID] {
	controller := source.Controller
	var owner core.PlayerName

	switch pred.Kind {
	case ability.PredicateYourVoid, ability.PredicateYour:
		owner = controller
	case ability.PredicateEnemyVoid, ability.PredicateEnemy:
		owner = controller.Opponent()
	default:
		game.Fault(b, "unhandled void predicate", "predicate", pred.Kind)
	}

	var out game.CardSet[game.VoidCardID]
	for _, id := range b.Cards.Void(owner).All() {
		if matchesVoidCard(b, id, pred.Card) {
			out.Insert(id)
		}
	}
	return out
}

func matchesVoidCard(b *game.BattleState, id game.VoidCardID, card *ability.CardPredicate) bool {
	if card == nil {
		return true
	}
	def := b.Cards.Definition(game.CardID(id))
	switch card.Kind {
	case ability.CardPredicateCard:
		return true
	case ability.CardPredicateCharacter:
		return def.Kind == core.CardKindCharacter
	case ability.CardPredicateEvent:
		return def.Kind == core.CardKindEvent
	case ability.CardPredicateDream:
		return def.Kind == core.CardKindDream
	case ability.CardPredicateCharacterWithSpark:
		if def.Kind != core.CardKindCharacter {
			return false
		}
		return card.SparkOperator.CompareInt(int(def.Spark), int(card.Spark))
	case ability.CardPredicateCardWithCost:
		if !matchesVoidCard(b, id, card.Target) {
			return false
		}
		return card.CostOperator.CompareInt(int(def.Cost), int(card.Cost))
	case ability.CardPredicateFast:
		return def.IsFast && matchesVoidCard(b, id, card.Target)
	default:
		game.Fault(b, "unhandled void card predicate", "kind", card.Kind)
		return false
	}
}

// CountMatching evaluates a quantity expression, counting battlefield
// characters matching the predicate.
func CountMatching(
	b *game.BattleState,
	source game.EffectSource,
	quantity *ability.QuantityExpression,
	thatCard game.CardID,
) int {
	if quantity == nil || quantity.Matching == nil {
		return 0
	}
	return MatchingCharacters(b, source, quantity.Matching, thatCard).Len()
}
