package effects

import (
	"fmt"

	"github.com/emberfall/battle-server-go/internal/core"
	"github.com/emberfall/battle-server-go/internal/game"
	"github.com/emberfall/battle-server-go/internal/game/ability"
	"github.com/emberfall/battle-server-go/internal/game/prompts"
	"github.com/emberfall/battle-server-go/internal/game/targeting"
)

// ApplyAction validates and applies one player action against the battle,
// resuming the pending-effect drain afterwards where appropriate. Illegal
// actions return an error with no state mutation; engine-internal
// inconsistencies fault.
func (e *Executor) ApplyAction(b *game.BattleState, player core.PlayerName, action game.BattleAction) error {
	if b.Status.GameOver {
		return fmt.Errorf("game is over")
	}

	if b.HasActivePrompt() != isPromptAnswer(action.Kind) {
		if b.HasActivePrompt() {
			return fmt.Errorf("a prompt is awaiting an answer")
		}
		return fmt.Errorf("no prompt is open")
	}
	if b.HasActivePrompt() && b.ActivePrompt().Player != player {
		return fmt.Errorf("prompt belongs to the other player")
	}

	var err error
	switch action.Kind {
	case game.ActionPlayCardFromHand:
		err = e.playCardFromHand(b, player, game.HandCardID(action.Card))
	case game.ActionPlayCardFromVoid:
		err = e.playCardFromVoid(b, player, game.VoidCardID(action.Card))
	case game.ActionActivateAbility:
		err = e.activateAbility(b, player, action.Ability)
	case game.ActionPassPriority:
		err = e.passPriority(b, player)
	case game.ActionEndTurn:
		err = e.endTurn(b, player)
	case game.ActionStartNextTurn:
		err = e.startNextTurn(b, player)
	case game.ActionSelectCharacterTarget:
		err = e.selectCharacterTarget(b, game.CharacterID(action.Card))
	case game.ActionSelectStackCardTarget:
		err = e.selectStackCardTarget(b, game.StackCardID(action.Card))
	case game.ActionSelectVoidCardTarget:
		err = e.selectVoidCardTarget(b, game.VoidCardID(action.Card))
	case game.ActionSubmitVoidCardTargets:
		err = e.submitVoidCardTargets(b)
	case game.ActionSelectPromptChoice:
		err = e.selectPromptChoice(b, action.Choice)
	case game.ActionSelectOrderForDeckCard:
		err = e.selectOrderForDeckCard(b, game.DeckCardID(action.Card), action.Order)
	case game.ActionSubmitDeckCardOrder:
		err = e.submitDeckCardOrder(b)
	default:
		game.Fault(b, "unhandled battle action", "kind", action.Kind)
	}
	if err != nil {
		return err
	}

	b.ActionHistory = append(b.ActionHistory, action)
	return nil
}

func isPromptAnswer(kind game.BattleActionKind) bool {
	switch kind {
	case game.ActionSelectCharacterTarget,
		game.ActionSelectStackCardTarget,
		game.ActionSelectVoidCardTarget,
		game.ActionSubmitVoidCardTargets,
		game.ActionSelectPromptChoice,
		game.ActionSelectOrderForDeckCard,
		game.ActionSubmitDeckCardOrder:
		return true
	default:
		return false
	}
}

func (e *Executor) playCardFromHand(b *game.BattleState, player core.PlayerName, id game.HandCardID) error {
	if !b.Cards.Hand(player).Contains(id) {
		return fmt.Errorf("card %d is not in hand", id)
	}
	def := b.Cards.Definition(game.CardID(id))
	if err := checkPlayTiming(b, player, def); err != nil {
		return err
	}
	if b.Player(player).Energy < def.Cost {
		return fmt.Errorf("cannot afford %s: have %d, need %d", def.Name, b.Player(player).Energy, def.Cost)
	}

	b.Player(player).Energy -= def.Cost
	b.Cards.MoveCard(player, game.CardID(id), game.ZoneHand, game.ZoneStack)
	b.Cards.State(game.CardID(id)).RevealedToOpponent = true
	e.trace(b, "card played", "card", def.Name, "player", player)

	e.chooseTargetsOnPlay(b, player, game.CardID(id), def)
	b.SetStackPriority(player.Opponent())
	return nil
}

func (e *Executor) playCardFromVoid(b *game.BattleState, player core.PlayerName, id game.VoidCardID) error {
	if !b.Cards.Void(player).Contains(id) {
		return fmt.Errorf("card %d is not in the void", id)
	}
	def := b.Cards.Definition(game.CardID(id))
	if !def.Reclaim {
		return fmt.Errorf("%s cannot be played from the void", def.Name)
	}
	if err := checkPlayTiming(b, player, def); err != nil {
		return err
	}
	if b.Player(player).Energy < def.Cost {
		return fmt.Errorf("cannot afford %s: have %d, need %d", def.Name, b.Player(player).Energy, def.Cost)
	}

	b.Player(player).Energy -= def.Cost
	b.Cards.MoveCard(player, game.CardID(id), game.ZoneVoid, game.ZoneStack)
	if item := b.Cards.StackItemFor(game.StackCardID(id)); item != nil {
		item.FromVoid = true
	}
	e.trace(b, "card played from void", "card", def.Name, "player", player)

	e.chooseTargetsOnPlay(b, player, game.CardID(id), def)
	b.SetStackPriority(player.Opponent())
	return nil
}

// checkPlayTiming enforces when a card may be played: fast cards any time
// the player could respond, other cards only on the player's own turn with
// an empty stack.
func checkPlayTiming(b *game.BattleState, player core.PlayerName, def *game.CardDefinition) error {
	if def.IsFast {
		if b.StackPriority != nil && *b.StackPriority != player {
			return fmt.Errorf("the other player holds priority")
		}
		return nil
	}
	if b.Turn.ActivePlayer != player || b.Turn.Ended {
		return fmt.Errorf("not your turn")
	}
	if !b.Cards.StackIsEmpty() {
		return fmt.Errorf("cannot play a slow card while the stack is occupied")
	}
	return nil
}

// chooseTargetsOnPlay resolves the played card's event-ability targets at
// play time: auto-resolved targets are recorded on the stack item, an
// ambiguous choice opens a prompt answered before the card can resolve.
func (e *Executor) chooseTargetsOnPlay(b *game.BattleState, player core.PlayerName, card game.CardID, def *game.CardDefinition) {
	for i, ab := range def.Abilities {
		if ab.Kind != ability.AbilityEvent {
			continue
		}
		source := game.EventSource(player, card, i)
		resolution := targeting.Resolve(b, source, &ab.Effect, game.NoCard)
		if resolution.RequiresPrompt {
			prompt := prompts.BuildPrompt(b, player, source, &ab.Effect, game.NoCard)
			if prompt != nil {
				b.PushPrompt(*prompt)
				e.trace(b, "play-time target prompt opened", "card", def.Name)
			}
			return
		}
		if resolution.Targets != nil {
			if item := b.Cards.StackItemFor(game.StackCardID(card)); item != nil {
				item.Targets = resolution.Targets
			}
		}
		return
	}
}

func (e *Executor) activateAbility(b *game.BattleState, player core.PlayerName, id game.ActivatedAbilityID) error {
	if !b.Cards.Battlefield(player).Contains(id.Character) {
		return fmt.Errorf("character %d is not on your battlefield", id.Character)
	}
	def := b.Cards.Definition(game.CardID(id.Character))
	if id.AbilityNumber < 0 || id.AbilityNumber >= len(def.Abilities) {
		return fmt.Errorf("%s has no ability %d", def.Name, id.AbilityNumber)
	}
	ab := def.Abilities[id.AbilityNumber]
	if ab.Kind != ability.AbilityActivated {
		return fmt.Errorf("%s ability %d is not activated", def.Name, id.AbilityNumber)
	}
	if !ab.Fast {
		if b.Turn.ActivePlayer != player || b.Turn.Ended {
			return fmt.Errorf("not your turn")
		}
	}
	if ab.Cost != nil && !e.canPayCost(b, player, ab.Cost) {
		return fmt.Errorf("cannot pay the activation cost of %s", def.Name)
	}

	if ab.Cost != nil {
		e.payCost(b, player, ab.Cost)
	}
	e.trace(b, "ability activated", "card", def.Name, "ability", id.AbilityNumber)
	e.Execute(b, game.ActivatedSource(player, game.CardID(id.Character), id.AbilityNumber), ab.Effect, nil, game.NoCard)
	return nil
}

func (e *Executor) passPriority(b *game.BattleState, player core.PlayerName) error {
	if b.StackPriority == nil || *b.StackPriority != player {
		return fmt.Errorf("you do not hold priority")
	}
	item := b.Cards.TopOfStack()
	if item == nil {
		game.Fault(b, "priority held over an empty stack", "player", player)
	}
	e.resolveStackItem(b, *item)

	b.ClearStackPriorityIfStackEmpty()
	if next := b.Cards.TopOfStack(); next != nil {
		b.SetStackPriority(next.Controller.Opponent())
	}
	return nil
}

// resolveStackItem resolves the top item of the stack: characters
// materialize, events apply their abilities and finish in the void (or
// banished, for reclaim plays).
func (e *Executor) resolveStackItem(b *game.BattleState, item game.StackItem) {
	card := game.CardID(item.Card)
	def := b.Cards.Definition(card)
	e.trace(b, "resolving stack item", "card", def.Name, "controller", item.Controller)

	if def.Kind == core.CardKindCharacter {
		e.materializeCharacter(b, card, game.ZoneStack)
		e.ExecutePendingIfNoPrompt(b)
		return
	}

	destination := game.ZoneVoid
	if item.FromVoid {
		destination = game.ZoneBanished
	}
	owner := b.Cards.Owner(card)
	b.Cards.MoveCard(owner, card, game.ZoneStack, destination)
	e.ExecuteEventAbilities(b, item.Controller, card, def.Abilities, item.Targets)
}

func (e *Executor) endTurn(b *game.BattleState, player core.PlayerName) error {
	if b.Turn.ActivePlayer != player || b.Turn.Ended {
		return fmt.Errorf("not your turn")
	}
	if !b.Cards.StackIsEmpty() {
		return fmt.Errorf("cannot end the turn while the stack is occupied")
	}

	b.Turn.Ended = true
	e.judgment(b, player)
	return nil
}

// judgment scores the turn: the active player gains a point when their
// total battlefield spark exceeds the opponent's.
func (e *Executor) judgment(b *game.BattleState, active core.PlayerName) {
	if totalSpark(b, active) <= totalSpark(b, active.Opponent()) {
		return
	}
	player := b.Player(active)
	player.Points++
	e.trace(b, "judgment point scored", "player", active, "points", player.Points)
	if player.Points >= game.PointsToWin {
		b.SetGameOver(active)
	}
}

func totalSpark(b *game.BattleState, p core.PlayerName) core.Spark {
	var total core.Spark
	for _, id := range b.Cards.Battlefield(p).All() {
		if spark, ok := b.Cards.SparkOf(p, id); ok {
			total += spark
		}
	}
	return total
}

func (e *Executor) startNextTurn(b *game.BattleState, player core.PlayerName) error {
	if !b.Turn.Ended || b.Turn.ActivePlayer == player {
		return fmt.Errorf("the current turn has not ended")
	}

	b.Turn.ActivePlayer = player
	b.Turn.TurnID++
	b.Turn.Ended = false
	state := b.Player(player)
	state.ProducedEnergy++
	state.Energy = state.ProducedEnergy
	e.drawCards(b, player, 1)
	e.trace(b, "turn started", "player", player, "turn", b.Turn.TurnID, "energy", state.Energy)
	return nil
}

func (e *Executor) selectCharacterTarget(b *game.BattleState, id game.CharacterID) error {
	prompt := b.ActivePrompt()
	if prompt.Kind != game.PromptChooseCharacter {
		return fmt.Errorf("the open prompt is %s", prompt.Kind)
	}
	if !prompt.ValidCharacters.Contains(id) {
		return fmt.Errorf("character %d is not a valid target", id)
	}
	answered := b.PopPrompt()
	e.attachTarget(b, answered, game.CharacterTarget(id))
	return nil
}

func (e *Executor) selectStackCardTarget(b *game.BattleState, id game.StackCardID) error {
	prompt := b.ActivePrompt()
	if prompt.Kind != game.PromptChooseStackCard {
		return fmt.Errorf("the open prompt is %s", prompt.Kind)
	}
	if !prompt.ValidStackCards.Contains(id) {
		return fmt.Errorf("stack card %d is not a valid target", id)
	}
	answered := b.PopPrompt()
	e.attachTarget(b, answered, game.StackCardTarget(id))
	return nil
}

func (e *Executor) selectVoidCardTarget(b *game.BattleState, id game.VoidCardID) error {
	prompt := b.ActivePrompt()
	if prompt.Kind != game.PromptChooseVoidCards {
		return fmt.Errorf("the open prompt is %s", prompt.Kind)
	}
	if !prompt.ValidVoidCards.Contains(id) {
		return fmt.Errorf("void card %d is not a valid target", id)
	}
	if prompt.SelectedVoidCards.Contains(id) {
		prompt.SelectedVoidCards.Remove(id)
		return nil
	}
	if prompt.SelectedVoidCards.Len() >= prompt.MaximumSelection {
		return fmt.Errorf("at most %d cards may be selected", prompt.MaximumSelection)
	}
	prompt.SelectedVoidCards.Insert(id)
	return nil
}

func (e *Executor) submitVoidCardTargets(b *game.BattleState) error {
	prompt := b.ActivePrompt()
	if prompt.Kind != game.PromptChooseVoidCards {
		return fmt.Errorf("the open prompt is %s", prompt.Kind)
	}
	if prompt.SelectedVoidCards.IsEmpty() && !prompt.Optional {
		return fmt.Errorf("at least one card must be selected")
	}
	answered := b.PopPrompt()
	e.attachTarget(b, answered, game.VoidCardsTarget(answered.SelectedVoidCards))
	return nil
}

func (e *Executor) selectPromptChoice(b *game.BattleState, index int) error {
	prompt := b.ActivePrompt()
	if prompt.Kind != game.PromptChoice {
		return fmt.Errorf("the open prompt is %s", prompt.Kind)
	}
	if index < 0 || index >= len(prompt.Choices) {
		return fmt.Errorf("choice %d is out of range", index)
	}
	choice := prompt.Choices[index]
	if b.Player(prompt.Player).Energy < choice.EnergyCost {
		return fmt.Errorf("cannot afford choice %d", index)
	}

	answered := b.PopPrompt()
	if choice.EnergyCost > 0 {
		b.Player(answered.Player).Energy -= choice.EnergyCost
		e.trace(b, "choice cost paid", "player", answered.Player, "amount", choice.EnergyCost)
	}
	if choice.Effect != nil {
		e.Execute(b, answered.Source, *choice.Effect, nil, answered.That)
	}
	e.ExecutePendingIfNoPrompt(b)
	return nil
}

func (e *Executor) selectOrderForDeckCard(b *game.BattleState, id game.DeckCardID, target game.DeckOrderTarget) error {
	prompt := b.ActivePrompt()
	if prompt.Kind != game.PromptSelectDeckCardOrder {
		return fmt.Errorf("the open prompt is %s", prompt.Kind)
	}
	order := prompt.DeckOrder
	found := false
	for _, c := range order.Initial {
		if c == id {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("card %d was not revealed", id)
	}

	for i, c := range order.Deck {
		if c == id {
			order.Deck = append(order.Deck[:i], order.Deck[i+1:]...)
			break
		}
	}
	order.Void.Remove(id)

	if target.ToVoid {
		order.Void.Insert(id)
	} else {
		pos := target.Position
		if pos < 0 {
			pos = 0
		}
		if pos > len(order.Deck) {
			pos = len(order.Deck)
		}
		order.Deck = append(order.Deck[:pos], append([]game.DeckCardID{id}, order.Deck[pos:]...)...)
	}
	order.Moved.Insert(id)
	return nil
}

func (e *Executor) submitDeckCardOrder(b *game.BattleState) error {
	prompt := b.ActivePrompt()
	if prompt.Kind != game.PromptSelectDeckCardOrder {
		return fmt.Errorf("the open prompt is %s", prompt.Kind)
	}

	answered := b.PopPrompt()
	order := answered.DeckOrder
	for _, id := range order.Void.All() {
		b.Cards.MoveCard(answered.Player, game.CardID(id), game.ZoneDeck, game.ZoneVoid)
	}
	b.Cards.SetDeckOrder(answered.Player, order.Deck)
	e.trace(b, "deck order submitted", "kept", len(order.Deck), "voided", order.Void.Len())
	e.ExecutePendingIfNoPrompt(b)
	return nil
}

// attachTarget routes an answered prompt's target to where the suspended
// effect lives: the front pending effect for drain-time prompts, or the
// source card's stack item for play-time target selection.
func (e *Executor) attachTarget(b *game.BattleState, prompt game.PromptData, target *game.StandardEffectTarget) {
	if len(b.PendingEffects) > 0 {
		front := &b.PendingEffects[0]
		if front.Source == prompt.Source {
			front.Targets = game.StandardTargets(target)
			e.ExecutePendingIfNoPrompt(b)
			return
		}
	}
	if card, ok := prompt.Source.CardID(); ok {
		if item := b.Cards.StackItemFor(game.StackCardID(card)); item != nil {
			item.Targets = game.StandardTargets(target)
			e.ExecutePendingIfNoPrompt(b)
			return
		}
	}
	game.Fault(b, "prompt answer has no destination", "source", prompt.Source.Kind)
}
