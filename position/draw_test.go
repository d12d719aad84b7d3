package position_test

import (
	"testing"

	"chessforge/position"
)

func TestIsDraw_FiftyMoveRule(t *testing.T) {
	p, err := position.LoadFEN("7k/8/8/8/8/8/R7/K7 w - - 99 80")
	if err != nil {
		t.Fatal(err)
	}
	m := position.NewMove(position.MakeSquare(0, 0), position.MakeSquare(1, 0), position.FlagNormal, 0)
	if !p.Make(m) {
		t.Fatalf("Make failed")
	}
	if !p.IsDraw() {
		t.Fatalf("expected fifty-move draw once halfmove clock reaches 100")
	}
}

func TestIsDraw_InsufficientMaterial_BareKings(t *testing.T) {
	p, err := position.LoadFEN("7k/8/8/8/8/8/8/K7 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsDraw() {
		t.Fatalf("bare kings should be an insufficient-material draw")
	}
}

func TestIsDraw_InsufficientMaterial_KingAndMinor(t *testing.T) {
	p, err := position.LoadFEN("7k/8/8/8/8/8/8/KB6 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsDraw() {
		t.Fatalf("K+B vs K should be an insufficient-material draw")
	}
}

func TestIsDraw_SufficientMaterial_WithPawn(t *testing.T) {
	p, err := position.LoadFEN("7k/8/8/8/8/8/P7/K7 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if p.IsDraw() {
		t.Fatalf("a lone pawn is sufficient material, should not be a draw")
	}
}

func TestIsDraw_TwoMinorsNotInsufficient(t *testing.T) {
	p, err := position.LoadFEN("7k/8/8/8/8/8/8/KBB5 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if p.IsDraw() {
		t.Fatalf("K+B+B vs K is not automatically insufficient material")
	}
}

func TestIsDraw_ThreefoldRepetition(t *testing.T) {
	p, err := position.LoadFEN("7k/8/8/8/8/8/8/K3R3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	shuttle := []position.Move{
		position.NewMove(position.MakeSquare(0, 0), position.MakeSquare(1, 0), position.FlagNormal, 0),
		position.NewMove(position.MakeSquare(7, 7), position.MakeSquare(6, 7), position.FlagNormal, 0),
		position.NewMove(position.MakeSquare(1, 0), position.MakeSquare(0, 0), position.FlagNormal, 0),
		position.NewMove(position.MakeSquare(6, 7), position.MakeSquare(7, 7), position.FlagNormal, 0),
	}
	if p.IsDraw() {
		t.Fatalf("starting position should not be a draw")
	}
	for round := 0; round < 2; round++ {
		for _, m := range shuttle {
			if !p.Make(m) {
				t.Fatalf("shuffle move %v failed to apply", m)
			}
		}
	}
	if !p.IsDraw() {
		t.Fatalf("expected threefold repetition after shuttling kings back and forth")
	}
}

func TestIsDraw_CaptureResetsRepetitionWindow(t *testing.T) {
	p, err := position.LoadFEN("7k/8/8/8/8/8/7p/K6R w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	capture := position.NewMove(position.MakeSquare(7, 0), position.MakeSquare(7, 1), position.FlagNormal, 0)
	if !p.Make(capture) {
		t.Fatalf("capture move failed to apply")
	}
	if p.Halfmove() != 0 {
		t.Fatalf("halfmove clock should reset to 0 after a capture, got %d", p.Halfmove())
	}
}
