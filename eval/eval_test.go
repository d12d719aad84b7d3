package eval_test

import (
	"testing"

	"chessforge/eval"
	"chessforge/position"
)

func TestEvaluate_StartPositionIsSymmetric(t *testing.T) {
	p := position.NewStart()
	if got := eval.Evaluate(p); got != 0 {
		t.Fatalf("expected start position eval of 0, got %d", got)
	}
}

func TestEvaluate_BareKingsIsZero(t *testing.T) {
	p, err := position.LoadFEN("8/8/8/8/8/8/8/K6k w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if got := eval.Evaluate(p); got != 0 {
		t.Fatalf("expected bare-kings eval of 0, got %d", got)
	}
	if !p.IsDraw() {
		t.Fatalf("bare kings should be a draw")
	}
}

func TestEvaluate_ExtraQueenIsPositive(t *testing.T) {
	p, err := position.LoadFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if got := eval.Evaluate(p); got <= 0 {
		t.Fatalf("expected a material advantage to score positive for White, got %d", got)
	}
}

func TestEvaluate_MirroredPositionsAreNegatives(t *testing.T) {
	white, err := position.LoadFEN("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	black, err := position.LoadFEN("4k3/4p3/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if eval.Evaluate(white) != -eval.Evaluate(black) {
		t.Fatalf("mirrored single-pawn positions should score as negatives of each other: %d vs %d",
			eval.Evaluate(white), eval.Evaluate(black))
	}
}
