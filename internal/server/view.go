package server

import (
	"github.com/emberfall/battle-server-go/internal/core"
	"github.com/emberfall/battle-server-go/internal/game"
	"github.com/emberfall/battle-server-go/internal/game/legal"
)

// BattleView is the JSON state snapshot pushed to one player. Hidden
// information (the opponent's hand and both decks) is reduced to counts.
type BattleView struct {
	BattleID     string      `json:"battle_id"`
	Turn         int         `json:"turn"`
	ActivePlayer string      `json:"active_player"`
	GameOver     bool        `json:"game_over"`
	Winner       string      `json:"winner,omitempty"`
	You          PlayerView  `json:"you"`
	Opponent     PlayerView  `json:"opponent"`
	Stack        []CardView  `json:"stack"`
	Prompt       *PromptView `json:"prompt,omitempty"`
	Actions      []string    `json:"actions"`
}

// PlayerView is one player's visible state.
type PlayerView struct {
	Energy      int        `json:"energy"`
	Points      int        `json:"points"`
	DeckCount   int        `json:"deck_count"`
	HandCount   int        `json:"hand_count"`
	Hand        []CardView `json:"hand,omitempty"`
	Battlefield []CardView `json:"battlefield"`
	Void        []CardView `json:"void"`
}

// CardView is one visible card.
type CardView struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Cost  int    `json:"cost"`
	Spark int    `json:"spark,omitempty"`
}

// PromptView describes the open prompt when it is addressed to the viewer.
type PromptView struct {
	Kind             string   `json:"kind"`
	Optional         bool     `json:"optional"`
	ValidCards       []int    `json:"valid_cards,omitempty"`
	SelectedCards    []int    `json:"selected_cards,omitempty"`
	MaximumSelection int      `json:"maximum_selection,omitempty"`
	Choices          []string `json:"choices,omitempty"`
	RevealedCards    []int    `json:"revealed_cards,omitempty"`
}

func buildView(b *game.BattleState, viewer core.PlayerName) *BattleView {
	view := &BattleView{
		BattleID:     b.ID.String(),
		Turn:         int(b.Turn.TurnID),
		ActivePlayer: b.Turn.ActivePlayer.String(),
		GameOver:     b.Status.GameOver,
		You:          buildPlayerView(b, viewer, true),
		Opponent:     buildPlayerView(b, viewer.Opponent(), false),
	}
	if b.Status.GameOver {
		view.Winner = b.Status.Winner.String()
	}

	for _, item := range b.Cards.Stack() {
		view.Stack = append(view.Stack, cardView(b, game.CardID(item.Card)))
	}

	if prompt := b.ActivePrompt(); prompt != nil && prompt.Player == viewer {
		view.Prompt = buildPromptView(prompt)
	}
	for _, action := range legal.ForPlayer(b, viewer).All() {
		view.Actions = append(view.Actions, actionName(action.Kind))
	}
	return view
}

func buildPlayerView(b *game.BattleState, p core.PlayerName, own bool) PlayerView {
	state := b.Player(p)
	view := PlayerView{
		Energy:    int(state.Energy),
		Points:    int(state.Points),
		DeckCount: b.Cards.DeckSize(p),
		HandCount: b.Cards.Hand(p).Len(),
	}
	if own {
		for _, id := range b.Cards.Hand(p).All() {
			view.Hand = append(view.Hand, cardView(b, game.CardID(id)))
		}
	}
	for _, id := range b.Cards.Battlefield(p).All() {
		card := cardView(b, game.CardID(id))
		if spark, ok := b.Cards.SparkOf(p, id); ok {
			card.Spark = int(spark)
		}
		view.Battlefield = append(view.Battlefield, card)
	}
	for _, id := range b.Cards.Void(p).All() {
		view.Void = append(view.Void, cardView(b, game.CardID(id)))
	}
	return view
}

func cardView(b *game.BattleState, id game.CardID) CardView {
	def := b.Cards.Definition(id)
	return CardView{
		ID:    int(id),
		Name:  def.Name,
		Kind:  def.Kind.String(),
		Cost:  int(def.Cost),
		Spark: int(def.Spark),
	}
}

func buildPromptView(prompt *game.PromptData) *PromptView {
	view := &PromptView{
		Kind:     prompt.Kind.String(),
		Optional: prompt.Optional,
	}
	switch prompt.Kind {
	case game.PromptChooseCharacter:
		for _, id := range prompt.ValidCharacters.All() {
			view.ValidCards = append(view.ValidCards, int(id))
		}
	case game.PromptChooseStackCard:
		for _, id := range prompt.ValidStackCards.All() {
			view.ValidCards = append(view.ValidCards, int(id))
		}
	case game.PromptChooseVoidCards:
		for _, id := range prompt.ValidVoidCards.All() {
			view.ValidCards = append(view.ValidCards, int(id))
		}
		for _, id := range prompt.SelectedVoidCards.All() {
			view.SelectedCards = append(view.SelectedCards, int(id))
		}
		view.MaximumSelection = prompt.MaximumSelection
	case game.PromptChoice:
		for _, choice := range prompt.Choices {
			view.Choices = append(view.Choices, choice.Label)
		}
	case game.PromptSelectDeckCardOrder:
		for _, id := range prompt.DeckOrder.Initial {
			view.RevealedCards = append(view.RevealedCards, int(id))
		}
	}
	return view
}

func actionName(kind game.BattleActionKind) string {
	switch kind {
	case game.ActionPlayCardFromHand:
		return "play_card_from_hand"
	case game.ActionPlayCardFromVoid:
		return "play_card_from_void"
	case game.ActionActivateAbility:
		return "activate_ability"
	case game.ActionPassPriority:
		return "pass_priority"
	case game.ActionEndTurn:
		return "end_turn"
	case game.ActionStartNextTurn:
		return "start_next_turn"
	case game.ActionSelectCharacterTarget:
		return "select_character_target"
	case game.ActionSelectStackCardTarget:
		return "select_stack_card_target"
	case game.ActionSelectVoidCardTarget:
		return "select_void_card_target"
	case game.ActionSubmitVoidCardTargets:
		return "submit_void_card_targets"
	case game.ActionSelectPromptChoice:
		return "select_prompt_choice"
	case game.ActionSelectOrderForDeckCard:
		return "select_order_for_deck_card"
	case game.ActionSubmitDeckCardOrder:
		return "submit_deck_card_order"
	default:
		return "unknown"
	}
}
