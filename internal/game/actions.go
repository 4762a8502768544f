package game

// BattleActionKind discriminates the actions a player can submit.
type BattleActionKind uint8

const (
	// ActionPlayCardFromHand plays a hand card onto the stack.
	ActionPlayCardFromHand BattleActionKind = iota
	// ActionPlayCardFromVoid plays a reclaim card from the void.
	ActionPlayCardFromVoid
	// ActionActivateAbility activates a character's activated ability.
	ActionActivateAbility
	// ActionPassPriority passes priority, resolving the top of the stack.
	ActionPassPriority
	// ActionEndTurn ends the active player's turn.
	ActionEndTurn
	// ActionStartNextTurn begins the next turn.
	ActionStartNextTurn
	// ActionSelectCharacterTarget answers a character prompt.
	ActionSelectCharacterTarget
	// ActionSelectStackCardTarget answers a stack-card prompt.
	ActionSelectStackCardTarget
	// ActionSelectVoidCardTarget toggles one card in a void prompt.
	ActionSelectVoidCardTarget
	// ActionSubmitVoidCardTargets submits the current void selection.
	ActionSubmitVoidCardTargets
	// ActionSelectPromptChoice answers a choice prompt by index.
	ActionSelectPromptChoice
	// ActionSelectOrderForDeckCard places one revealed deck card.
	ActionSelectOrderForDeckCard
	// ActionSubmitDeckCardOrder submits the chosen deck order.
	ActionSubmitDeckCardOrder
)

// DeckOrderTarget is the destination for one revealed deck card.
type DeckOrderTarget struct {
	// ToVoid routes the card to the void instead of the deck.
	ToVoid bool
	// Position is the deck position (0 = top) when ToVoid is false.
	Position int
}

// BattleAction is one action submitted by a player, either a standard play
// or an answer to the open prompt. Which payload fields are meaningful
// depends on Kind.
type BattleAction struct {
	Kind    BattleActionKind
	Card    CardID
	Ability ActivatedAbilityID
	Choice  int
	Order   DeckOrderTarget
}

// PlayCardFromHand returns a play-from-hand action.
func PlayCardFromHand(id HandCardID) BattleAction {
	return BattleAction{Kind: ActionPlayCardFromHand, Card: CardID(id)}
}

// PlayCardFromVoid returns a play-from-void action.
func PlayCardFromVoid(id VoidCardID) BattleAction {
	return BattleAction{Kind: ActionPlayCardFromVoid, Card: CardID(id)}
}

// ActivateAbility returns an ability activation action.
func ActivateAbility(id ActivatedAbilityID) BattleAction {
	return BattleAction{Kind: ActionActivateAbility, Ability: id}
}

// PassPriority returns a pass-priority action.
func PassPriority() BattleAction { return BattleAction{Kind: ActionPassPriority} }

// EndTurn returns an end-turn action.
func EndTurn() BattleAction { return BattleAction{Kind: ActionEndTurn} }

// StartNextTurn returns a start-next-turn action.
func StartNextTurn() BattleAction { return BattleAction{Kind: ActionStartNextTurn} }

// SelectCharacterTarget answers the open character prompt.
func SelectCharacterTarget(id CharacterID) BattleAction {
	return BattleAction{Kind: ActionSelectCharacterTarget, Card: CardID(id)}
}

// SelectStackCardTarget answers the open stack-card prompt.
func SelectStackCardTarget(id StackCardID) BattleAction {
	return BattleAction{Kind: ActionSelectStackCardTarget, Card: CardID(id)}
}

// SelectVoidCardTarget toggles a card in the open void prompt.
func SelectVoidCardTarget(id VoidCardID) BattleAction {
	return BattleAction{Kind: ActionSelectVoidCardTarget, Card: CardID(id)}
}

// SubmitVoidCardTargets submits the void selection.
func SubmitVoidCardTargets() BattleAction {
	return BattleAction{Kind: ActionSubmitVoidCardTargets}
}

// SelectPromptChoice answers the open choice prompt.
func SelectPromptChoice(index int) BattleAction {
	return BattleAction{Kind: ActionSelectPromptChoice, Choice: index}
}

// SelectOrderForDeckCard places one revealed deck card.
func SelectOrderForDeckCard(id DeckCardID, target DeckOrderTarget) BattleAction {
	return BattleAction{Kind: ActionSelectOrderForDeckCard, Card: CardID(id), Order: target}
}

// SubmitDeckCardOrder submits the chosen deck order.
func SubmitDeckCardOrder() BattleAction {
	return BattleAction{Kind: ActionSubmitDeckCardOrder}
}
