package legal

import (
	"github.com/emberfall/battle-server-go/internal/core"
	"github.com/emberfall/battle-server-go/internal/game"
)

// LegalActions is the enumerated set of actions one player may submit
// against the current battle snapshot.
type LegalActions struct {
	actions []game.BattleAction
}

// ForPlayer enumerates every action p may legally take right now: prompt
// answers while a prompt addressed to p is open, otherwise plays, ability
// activations, and turn-structure actions as the stack and turn state allow.
func ForPlayer(b *game.BattleState, p core.PlayerName) LegalActions {
	if b.Status.GameOver {
		return LegalActions{}
	}
	if prompt := b.ActivePrompt(); prompt != nil {
		if prompt.Player != p {
			return LegalActions{}
		}
		return promptAnswers(b, prompt)
	}

	var out LegalActions

	if b.StackPriority != nil {
		if *b.StackPriority != p {
			return LegalActions{}
		}
		out.add(game.PassPriority())
		addPlays(&out, b, p, true)
		return out
	}

	if b.Turn.Ended {
		if p != b.Turn.ActivePlayer {
			out.add(game.StartNextTurn())
		}
		return out
	}
	if p != b.Turn.ActivePlayer {
		return LegalActions{}
	}

	addPlays(&out, b, p, false)
	out.add(game.EndTurn())
	return out
}

func addPlays(out *LegalActions, b *game.BattleState, p core.PlayerName, fastOnly bool) {
	for _, id := range PlayCardCandidates(b, p, fastOnly).All() {
		out.add(game.PlayCardFromHand(id))
	}
	for _, id := range PlayFromVoidCandidates(b, p, fastOnly).All() {
		out.add(game.PlayCardFromVoid(id))
	}
	for _, id := range ActivateAbilityCandidates(b, p, fastOnly) {
		out.add(game.ActivateAbility(id))
	}
}

func promptAnswers(b *game.BattleState, prompt *game.PromptData) LegalActions {
	var out LegalActions
	switch prompt.Kind {
	case game.PromptChooseCharacter:
		for _, id := range prompt.ValidCharacters.All() {
			out.add(game.SelectCharacterTarget(id))
		}
	case game.PromptChooseStackCard:
		for _, id := range prompt.ValidStackCards.All() {
			out.add(game.SelectStackCardTarget(id))
		}
	case game.PromptChooseVoidCards:
		for _, id := range prompt.ValidVoidCards.All() {
			if prompt.SelectedVoidCards.Contains(id) ||
				prompt.SelectedVoidCards.Len() < prompt.MaximumSelection {
				out.add(game.SelectVoidCardTarget(id))
			}
		}
		if prompt.Optional || !prompt.SelectedVoidCards.IsEmpty() {
			out.add(game.SubmitVoidCardTargets())
		}
	case game.PromptChoice:
		for i, choice := range prompt.Choices {
			if b.Player(prompt.Player).Energy >= choice.EnergyCost {
				out.add(game.SelectPromptChoice(i))
			}
		}
	case game.PromptSelectDeckCardOrder:
		order := prompt.DeckOrder
		for _, id := range order.Initial {
			out.add(game.SelectOrderForDeckCard(id, game.DeckOrderTarget{ToVoid: true}))
			for pos := 0; pos <= len(order.Deck); pos++ {
				out.add(game.SelectOrderForDeckCard(id, game.DeckOrderTarget{Position: pos}))
			}
		}
		out.add(game.SubmitDeckCardOrder())
	default:
		game.Fault(b, "unhandled prompt kind in legal actions", "kind", prompt.Kind)
	}
	return out
}

func (l *LegalActions) add(a game.BattleAction) {
	l.actions = append(l.actions, a)
}

// Contains reports whether the set holds the action.
func (l LegalActions) Contains(a game.BattleAction) bool {
	for _, action := range l.actions {
		if action == a {
			return true
		}
	}
	return false
}

// All returns the actions in enumeration order.
func (l LegalActions) All() []game.BattleAction {
	return l.actions
}

// Len returns the number of legal actions.
func (l LegalActions) Len() int { return len(l.actions) }

// IsEmpty reports whether no action is legal.
func (l LegalActions) IsEmpty() bool { return len(l.actions) == 0 }

// Random picks a uniformly random action using the battle's generator.
func (l LegalActions) Random(rng *game.Rng) (game.BattleAction, bool) {
	if len(l.actions) == 0 {
		return game.BattleAction{}, false
	}
	return l.actions[rng.IntN(len(l.actions))], true
}
