package game

// TargetKind discriminates StandardEffectTarget variants.
type TargetKind uint8

const (
	// TargetCharacter is a battlefield character.
	TargetCharacter TargetKind = iota
	// TargetStackCard is a card on the stack.
	TargetStackCard
	// TargetVoidCards is a set of cards in a void.
	TargetVoidCards
)

// StandardEffectTarget is one resolved target for a standard effect.
type StandardEffectTarget struct {
	Kind      TargetKind
	Character CharacterID
	StackCard StackCardID
	VoidCards CardSet[VoidCardID]
}

// CharacterTarget returns a character target.
func CharacterTarget(id CharacterID) *StandardEffectTarget {
	return &StandardEffectTarget{Kind: TargetCharacter, Character: id}
}

// StackCardTarget returns a stack-card target.
func StackCardTarget(id StackCardID) *StandardEffectTarget {
	return &StandardEffectTarget{Kind: TargetStackCard, StackCard: id}
}

// VoidCardsTarget returns a void-card-set target.
func VoidCardsTarget(cards CardSet[VoidCardID]) *StandardEffectTarget {
	return &StandardEffectTarget{Kind: TargetVoidCards, VoidCards: cards}
}

// EffectTargets carries resolved targets through effect application: either
// one target for a standalone standard effect, or a positional list matched
// one-to-one against the sub-effects of an effect list. List entries may be
// nil for sub-effects that take no target.
type EffectTargets struct {
	Standard *StandardEffectTarget
	List     []*StandardEffectTarget
	isList   bool
}

// StandardTargets wraps a single resolved target.
func StandardTargets(t *StandardEffectTarget) *EffectTargets {
	return &EffectTargets{Standard: t}
}

// ListTargets wraps a positional target list.
func ListTargets(list []*StandardEffectTarget) *EffectTargets {
	return &EffectTargets{List: list, isList: true}
}

// IsList reports whether the targets are a positional list.
func (t *EffectTargets) IsList() bool {
	return t != nil && t.isList
}

// PopFront destructively consumes the next positional target. Each list
// entry is read exactly once, in original order; popping an exhausted list
// returns nil.
func (t *EffectTargets) PopFront() *StandardEffectTarget {
	if t == nil {
		return nil
	}
	if !t.isList {
		out := t.Standard
		t.Standard = nil
		return out
	}
	if len(t.List) == 0 {
		return nil
	}
	out := t.List[0]
	t.List = t.List[1:]
	return out
}

// Remaining reports how many positional entries are left.
func (t *EffectTargets) Remaining() int {
	if t == nil {
		return 0
	}
	if !t.isList {
		if t.Standard != nil {
			return 1
		}
		return 0
	}
	return len(t.List)
}

// Clone returns a deep copy.
func (t *EffectTargets) Clone() *EffectTargets {
	if t == nil {
		return nil
	}
	out := &EffectTargets{isList: t.isList}
	if t.Standard != nil {
		st := *t.Standard
		out.Standard = &st
	}
	if t.List != nil {
		out.List = make([]*StandardEffectTarget, len(t.List))
		for i, entry := range t.List {
			if entry != nil {
				st := *entry
				out.List[i] = &st
			}
		}
	}
	return out
}
