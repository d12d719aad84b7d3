package search

import (
	"testing"

	"chessforge/position"
)

func TestTranspositionTable_StoreAndProbe(t *testing.T) {
	tt := newTranspositionTable()
	m := position.NewMove(position.MakeSquare(4, 1), position.MakeSquare(4, 3), position.FlagNormal, 0)
	tt.store(12345, 4, 100, m, BoundExact)

	e, ok := tt.probe(12345)
	if !ok {
		t.Fatal("expected a hit")
	}
	if e.score != 100 || e.move != m || e.bound != BoundExact {
		t.Fatalf("unexpected entry: %+v", e)
	}
}

func TestTranspositionTable_PreferDeeper(t *testing.T) {
	tt := newTranspositionTable()
	m1 := position.NewMove(position.MakeSquare(4, 1), position.MakeSquare(4, 3), position.FlagNormal, 0)
	m2 := position.NewMove(position.MakeSquare(3, 1), position.MakeSquare(3, 3), position.FlagNormal, 0)

	tt.store(99, 6, 50, m1, BoundExact)
	tt.store(99, 3, 75, m2, BoundExact)

	e, ok := tt.probe(99)
	if !ok {
		t.Fatal("expected a hit")
	}
	if e.depth != 6 || e.move != m1 {
		t.Fatalf("shallower store should not overwrite a deeper entry, got %+v", e)
	}
}

func TestTranspositionTable_MissOnDifferentKey(t *testing.T) {
	tt := newTranspositionTable()
	_, ok := tt.probe(7)
	if ok {
		t.Fatal("expected a miss on an empty table")
	}
}
