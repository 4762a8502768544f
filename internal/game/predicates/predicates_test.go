package predicates

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/emberfall/battle-server-go/internal/core"
	"github.com/emberfall/battle-server-go/internal/game"
	"github.com/emberfall/battle-server-go/internal/game/ability"
)

func newBattle() *game.BattleState {
	return game.NewBattleState(uuid.MustParse("37b1c2e8-58f1-4f24-aafc-6b0f58d9f0d1"), 1)
}

func addCharacter(b *game.BattleState, p core.PlayerName, def *game.CardDefinition) game.CharacterID {
	id := b.Cards.CreateCard(def, p, game.ZoneBattlefield)
	b.Cards.SetCharacterState(p, game.CharacterID(id), game.CharacterState{Spark: def.Spark})
	return game.CharacterID(id)
}

func characterDef(name string, cost core.Energy, spark core.Spark) *game.CardDefinition {
	return &game.CardDefinition{Name: name, Kind: core.CardKindCharacter, Cost: cost, Spark: spark}
}

func eventDef(name string, cost core.Energy) *game.CardDefinition {
	return &game.CardDefinition{Name: name, Kind: core.CardKindEvent, Cost: cost}
}

func TestMatchingCharacters_Ownership(t *testing.T) {
	b := newBattle()
	mine := addCharacter(b, core.PlayerOne, characterDef("Whelp", 2, 1))
	enemy := addCharacter(b, core.PlayerTwo, characterDef("Stalker", 3, 2))
	source := game.GameSource(core.PlayerOne)

	yours := MatchingCharacters(b, source, ability.Your(ability.Character()), game.NoCard)
	assert.Equal(t, []game.CharacterID{mine}, yours.All())

	enemies := MatchingCharacters(b, source, ability.Enemy(ability.Character()), game.NoCard)
	assert.Equal(t, []game.CharacterID{enemy}, enemies.All())

	any := MatchingCharacters(b, source, &ability.Predicate{Kind: ability.PredicateAny}, game.NoCard)
	assert.Equal(t, 2, any.Len())
}

func TestMatchingCharacters_AnotherExcludesSource(t *testing.T) {
	b := newBattle()
	self := addCharacter(b, core.PlayerOne, characterDef("Warden", 3, 2))
	other := addCharacter(b, core.PlayerOne, characterDef("Whelp", 2, 1))

	source := game.ActivatedSource(core.PlayerOne, game.CardID(self), 0)
	pred := &ability.Predicate{Kind: ability.PredicateAnother}

	set := MatchingCharacters(b, source, pred, game.NoCard)
	assert.Equal(t, []game.CharacterID{other}, set.All())
}

func TestMatchingCharacters_This(t *testing.T) {
	b := newBattle()
	self := addCharacter(b, core.PlayerOne, characterDef("Warden", 3, 2))
	addCharacter(b, core.PlayerOne, characterDef("Whelp", 2, 1))

	source := game.TriggeredSource(core.PlayerOne, game.CardID(self), 0)
	pred := &ability.Predicate{Kind: ability.PredicateThis}

	set := MatchingCharacters(b, source, pred, game.NoCard)
	assert.Equal(t, []game.CharacterID{self}, set.All())
}

func TestMatchingCharacters_ThatCard(t *testing.T) {
	b := newBattle()
	that := addCharacter(b, core.PlayerTwo, characterDef("Stalker", 3, 2))
	addCharacter(b, core.PlayerTwo, characterDef("Whelp", 2, 1))

	source := game.GameSource(core.PlayerOne)
	set := MatchingCharacters(b, source, ability.That(), game.CardID(that))
	assert.Equal(t, []game.CharacterID{that}, set.All())

	// Without a referenced card the predicate matches nothing.
	empty := MatchingCharacters(b, source, ability.That(), game.NoCard)
	assert.True(t, empty.IsEmpty())
}

func TestMatchingCharacters_SparkThreshold(t *testing.T) {
	b := newBattle()
	weak := addCharacter(b, core.PlayerTwo, characterDef("Whelp", 2, 1))
	addCharacter(b, core.PlayerTwo, characterDef("Colossus", 6, 5))

	pred := ability.Enemy(ability.CharacterWithSpark(2, ability.Operator{Kind: ability.OpOrLess}))
	set := MatchingCharacters(b, game.GameSource(core.PlayerOne), pred, game.NoCard)
	assert.Equal(t, []game.CharacterID{weak}, set.All())
}

func TestMatchingCharacters_SparkReadsLiveState(t *testing.T) {
	b := newBattle()
	id := addCharacter(b, core.PlayerTwo, characterDef("Whelp", 2, 1))
	b.Cards.SetCharacterState(core.PlayerTwo, id, game.CharacterState{Spark: 5})

	// The printed spark is 1, but the live state says 5.
	pred := ability.Enemy(ability.CharacterWithSpark(3, ability.Operator{Kind: ability.OpOrMore}))
	set := MatchingCharacters(b, game.GameSource(core.PlayerOne), pred, game.NoCard)
	assert.Equal(t, []game.CharacterID{id}, set.All())
}

func TestMatchingCharacters_CostThreshold(t *testing.T) {
	b := newBattle()
	cheap := addCharacter(b, core.PlayerTwo, characterDef("Whelp", 2, 1))
	addCharacter(b, core.PlayerTwo, characterDef("Colossus", 6, 5))

	pred := ability.Enemy(ability.CharacterWithCost(2, ability.Operator{Kind: ability.OpOrLess}))
	set := MatchingCharacters(b, game.GameSource(core.PlayerOne), pred, game.NoCard)
	assert.Equal(t, []game.CharacterID{cheap}, set.All())
}

func TestMatchingStackCards(t *testing.T) {
	b := newBattle()
	ev := b.Cards.CreateCard(eventDef("Bolt", 1), core.PlayerOne, game.ZoneHand)
	ch := b.Cards.CreateCard(characterDef("Whelp", 2, 1), core.PlayerTwo, game.ZoneHand)
	b.Cards.MoveCard(core.PlayerOne, ev, game.ZoneHand, game.ZoneStack)
	b.Cards.MoveCard(core.PlayerTwo, ch, game.ZoneHand, game.ZoneStack)

	// From player two's perspective, the enemy event is player one's.
	source := game.GameSource(core.PlayerTwo)
	set := MatchingStackCards(b, source, ability.Enemy(ability.Event()), game.NoCard)
	assert.Equal(t, []game.StackCardID{game.StackCardID(ev)}, set.All())

	characters := MatchingStackCards(b, source, ability.Your(ability.Character()), game.NoCard)
	assert.Equal(t, []game.StackCardID{game.StackCardID(ch)}, characters.All())
}

func TestMatchingStackCards_That(t *testing.T) {
	b := newBattle()
	ev := b.Cards.CreateCard(eventDef("Bolt", 1), core.PlayerOne, game.ZoneHand)
	other := b.Cards.CreateCard(eventDef("Gust", 1), core.PlayerOne, game.ZoneHand)
	b.Cards.MoveCard(core.PlayerOne, ev, game.ZoneHand, game.ZoneStack)
	b.Cards.MoveCard(core.PlayerOne, other, game.ZoneHand, game.ZoneStack)

	set := MatchingStackCards(b, game.GameSource(core.PlayerTwo), ability.That(), ev)
	assert.Equal(t, []game.StackCardID{game.StackCardID(ev)}, set.All())
}

func TestMatchingVoidCards(t *testing.T) {
	b := newBattle()
	mine := b.Cards.CreateCard(eventDef("Bolt", 1), core.PlayerOne, game.ZoneVoid)
	b.Cards.CreateCard(characterDef("Whelp", 2, 1), core.PlayerOne, game.ZoneVoid)
	b.Cards.CreateCard(eventDef("Gust", 1), core.PlayerTwo, game.ZoneVoid)

	source := game.GameSource(core.PlayerOne)

	events := MatchingVoidCards(b, source, ability.YourVoid(ability.Event()))
	assert.Equal(t, []game.VoidCardID{game.VoidCardID(mine)}, events.All())

	all := MatchingVoidCards(b, source, ability.YourVoid(ability.AnyCard()))
	assert.Equal(t, 2, all.Len())

	enemy := MatchingVoidCards(b, source, ability.EnemyVoid(ability.AnyCard()))
	assert.Equal(t, 1, enemy.Len())
}

func TestCountMatching(t *testing.T) {
	b := newBattle()
	addCharacter(b, core.PlayerOne, characterDef("Whelp", 2, 1))
	addCharacter(b, core.PlayerOne, characterDef("Warden", 3, 2))
	addCharacter(b, core.PlayerTwo, characterDef("Stalker", 3, 2))

	source := game.GameSource(core.PlayerOne)
	your := ability.Your(ability.Character())
	assert.Equal(t, 2, CountMatching(b, source, &ability.QuantityExpression{Matching: your}, game.NoCard))
	assert.Equal(t, 0, CountMatching(b, source, nil, game.NoCard))
}

func TestTargetPredicate(t *testing.T) {
	dissolve := &ability.StandardEffect{
		Kind:   ability.EffectDissolveCharacter,
		Target: ability.Enemy(ability.Character()),
	}
	pred, kind, ok := TargetPredicate(dissolve)
	assert.True(t, ok)
	assert.Equal(t, game.TargetCharacter, kind)
	assert.NotNil(t, pred)

	counter := &ability.StandardEffect{
		Kind:   ability.EffectCounterspell,
		Target: ability.Enemy(ability.Event()),
	}
	_, kind, ok = TargetPredicate(counter)
	assert.True(t, ok)
	assert.Equal(t, game.TargetStackCard, kind)

	draw := &ability.StandardEffect{Kind: ability.EffectDrawCards, Count: 2}
	_, _, ok = TargetPredicate(draw)
	assert.False(t, ok)
	assert.False(t, HasTargets(draw))
}
