package search_test

import (
	"testing"

	"chessforge/position"
	"chessforge/search"
)

func TestFindBestMove_ReturnsAMove(t *testing.T) {
	p, err := position.LoadFEN("k7/8/1K6/8/8/8/8/7R w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	s := search.New()
	move := s.FindBestMove(p, 0.2, 64)
	if move.IsNull() {
		t.Fatalf("expected a move to be returned")
	}
}

func TestFindBestMove_MateInOne(t *testing.T) {
	p, err := position.LoadFEN("6k1/8/6K1/8/8/8/8/R7 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	s := search.New()
	move := s.FindBestMove(p, 1.0, 8)
	if move.IsNull() {
		t.Fatal("expected a mating move")
	}
	stats := s.Stats()
	if stats.LastScore < search.Mate-200 {
		t.Fatalf("expected a mate score >= Mate-200, got %d", stats.LastScore)
	}
}

func TestFindBestMove_NoLegalMoveReturnsNull(t *testing.T) {
	// Checkmate: Black king on a8 checked by the White rook on h8, with the
	// White king on b6 covering a7 and b7.
	p, err := position.LoadFEN("k6R/8/1K6/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	s := search.New()
	move := s.FindBestMove(p, 0.2, 4)
	if !move.IsNull() {
		t.Fatalf("expected the null move from a position with no legal moves, got %v", move)
	}
}

func TestFindBestMove_ReachesRequestedDepthEventually(t *testing.T) {
	p := position.NewStart()
	s := search.New()
	s.FindBestMove(p, 0.5, 3)
	if s.Stats().DepthReached < 3 {
		t.Fatalf("expected the requested depth 3 to be reached, got %d", s.Stats().DepthReached)
	}
}
