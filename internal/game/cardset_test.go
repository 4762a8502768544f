package game

import (
	"testing"
)

func TestCardSet_InsertRemove(t *testing.T) {
	var s CardSet[CardID]

	if !s.Insert(3) {
		t.Error("Expected Insert to report a new element")
	}
	if s.Insert(3) {
		t.Error("Expected duplicate Insert to report false")
	}
	if !s.Contains(3) {
		t.Error("Expected set to contain 3")
	}
	if s.Len() != 1 {
		t.Errorf("Expected length 1, got %d", s.Len())
	}

	if !s.Remove(3) {
		t.Error("Expected Remove to report the element was present")
	}
	if s.Remove(3) {
		t.Error("Expected second Remove to report false")
	}
	if !s.IsEmpty() {
		t.Error("Expected empty set after removal")
	}
}

func TestCardSet_HighWord(t *testing.T) {
	// IDs 64..127 live in the second word.
	s := SetOf[CardID](0, 63, 64, 127)

	for _, id := range []CardID{0, 63, 64, 127} {
		if !s.Contains(id) {
			t.Errorf("Expected set to contain %d", id)
		}
	}
	if s.Len() != 4 {
		t.Errorf("Expected length 4, got %d", s.Len())
	}

	all := s.All()
	want := []CardID{0, 63, 64, 127}
	for i, id := range want {
		if all[i] != id {
			t.Errorf("Expected All()[%d] = %d, got %d", i, id, all[i])
		}
	}
}

func TestCardSet_GetAtIndex(t *testing.T) {
	s := SetOf[CharacterID](5, 70, 12)

	// Iteration order is ascending regardless of insertion order.
	want := []CharacterID{5, 12, 70}
	for i, expected := range want {
		id, ok := s.GetAtIndex(i)
		if !ok {
			t.Fatalf("Expected index %d to be in range", i)
		}
		if id != expected {
			t.Errorf("Expected index %d = %d, got %d", i, expected, id)
		}
	}

	if _, ok := s.GetAtIndex(3); ok {
		t.Error("Expected out-of-range index to report false")
	}
	if _, ok := s.GetAtIndex(-1); ok {
		t.Error("Expected negative index to report false")
	}
}

func TestCardSet_SetOperations(t *testing.T) {
	a := SetOf[CardID](1, 2, 3)
	b := SetOf[CardID](2, 3, 4)

	union := a
	union.UnionWith(b)
	if union.Len() != 4 {
		t.Errorf("Expected union length 4, got %d", union.Len())
	}

	inter := a
	inter.IntersectWith(b)
	if inter.Len() != 2 || !inter.Contains(2) || !inter.Contains(3) {
		t.Errorf("Expected intersection {2 3}, got %s", inter)
	}

	diff := a
	diff.DifferenceWith(b)
	if diff.Len() != 1 || !diff.Contains(1) {
		t.Errorf("Expected difference {1}, got %s", diff)
	}
}

func TestCardSet_CopiesByValue(t *testing.T) {
	a := SetOf[CardID](1, 2)
	b := a
	b.Insert(3)

	if a.Contains(3) {
		t.Error("Expected copy mutation to leave the original untouched")
	}
}

func TestCardSet_OutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for ID outside 0-127")
		}
	}()
	var s CardSet[CardID]
	s.Insert(128)
}

func TestReinterpret(t *testing.T) {
	hand := SetOf[HandCardID](7, 9)
	cards := Reinterpret[CardID](hand)

	if !cards.Contains(7) || !cards.Contains(9) || cards.Len() != 2 {
		t.Errorf("Expected reinterpreted set {7 9}, got %s", cards)
	}
}
