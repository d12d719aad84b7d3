package position_test

import (
	"testing"

	"chessforge/position"
)

func TestMakeUnmake_NormalMove(t *testing.T) {
	p, err := position.LoadFEN(position.StartFEN)
	if err != nil {
		t.Fatal(err)
	}
	startFEN := p.ExportFEN()
	startZ := p.Zobrist()

	m := position.NewMove(position.MakeSquare(4, 1), position.MakeSquare(4, 3), position.FlagNormal, 0)
	if !p.Make(m) {
		t.Fatalf("Make failed for e2e4")
	}
	if !p.Validate() {
		t.Fatalf("position invalid after Make")
	}
	p.Unmake()
	if !p.Validate() {
		t.Fatalf("position invalid after Unmake")
	}
	if p.ExportFEN() != startFEN {
		t.Fatalf("FEN mismatch after unmake: got %q want %q", p.ExportFEN(), startFEN)
	}
	if p.Zobrist() != startZ {
		t.Fatalf("zobrist mismatch after unmake")
	}
}

func TestMakeUnmake_Capture(t *testing.T) {
	p, err := position.LoadFEN("4k3/r7/8/8/8/8/8/R3K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	startZ := p.Zobrist()
	m := position.NewMove(position.MakeSquare(0, 0), position.MakeSquare(0, 6), position.FlagNormal, 0)
	if !p.Make(m) {
		t.Fatalf("Make failed for capture")
	}
	if !p.Validate() {
		t.Fatalf("position invalid after capture")
	}
	p.Unmake()
	if p.Zobrist() != startZ {
		t.Fatalf("zobrist mismatch after capture unmake")
	}
}

func TestMakeUnmake_EnPassant(t *testing.T) {
	p, err := position.LoadFEN("k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	if err != nil {
		t.Fatal(err)
	}
	startZ := p.Zobrist()
	from := position.MakeSquare(4, 4) // e5
	to := position.MakeSquare(3, 5)   // d6
	m := position.NewMove(from, to, position.FlagEnPassant, 0)
	if !p.Make(m) {
		t.Fatalf("Make failed for en passant")
	}
	if p.PieceAt(position.MakeSquare(3, 4)) != position.NoPiece {
		t.Fatalf("captured pawn still present after en passant")
	}
	if !p.Validate() {
		t.Fatalf("position invalid after en passant")
	}
	p.Unmake()
	if p.Zobrist() != startZ {
		t.Fatalf("zobrist mismatch after en passant unmake")
	}
}

func TestMakeUnmake_Castling(t *testing.T) {
	p, err := position.LoadFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	startZ := p.Zobrist()
	m := position.NewMove(position.MakeSquare(4, 0), position.MakeSquare(6, 0), position.FlagCastle, 0)
	if !p.Make(m) {
		t.Fatalf("Make failed for castling")
	}
	if p.PieceAt(position.MakeSquare(5, 0)).Kind() != position.Rook {
		t.Fatalf("rook did not land on f1")
	}
	if p.Castling()&(position.CastleWhiteKing|position.CastleWhiteQueen) != 0 {
		t.Fatalf("white castling rights should be cleared")
	}
	p.Unmake()
	if p.Zobrist() != startZ {
		t.Fatalf("zobrist mismatch after castle unmake")
	}
	if p.Castling()&position.CastleWhiteKing == 0 {
		t.Fatalf("castling rights should be restored")
	}
}

func TestMakeUnmake_Promotion(t *testing.T) {
	p, err := position.LoadFEN("8/P6k/8/8/8/8/7p/7K w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	startZ := p.Zobrist()
	m := position.NewMove(position.MakeSquare(0, 6), position.MakeSquare(0, 7), position.FlagPromotion, position.PromoQueen)
	if !p.Make(m) {
		t.Fatalf("Make failed for promotion")
	}
	if p.PieceAt(position.MakeSquare(0, 7)).Kind() != position.Queen {
		t.Fatalf("expected promoted queen on a8")
	}
	p.Unmake()
	if p.PieceAt(position.MakeSquare(0, 6)).Kind() != position.Pawn {
		t.Fatalf("pawn should be restored on a7")
	}
	if p.Zobrist() != startZ {
		t.Fatalf("zobrist mismatch after promotion unmake")
	}
}

func TestMake_RejectsSelfCheck(t *testing.T) {
	// White bishop on e2 is pinned against the king on e1 by the black rook
	// on e8; moving it off the e-file would expose the king to check.
	p, err := position.LoadFEN("4r3/8/8/8/8/8/4B3/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	startFEN := p.ExportFEN()
	m := position.NewMove(position.MakeSquare(4, 1), position.MakeSquare(0, 5), position.FlagNormal, 0)
	if p.Make(m) {
		t.Fatalf("Make should reject a move that exposes the king to check")
	}
	if p.ExportFEN() != startFEN {
		t.Fatalf("position should be untouched after a rejected Make")
	}
}

func TestUnmake_EmptyStackIsNoop(t *testing.T) {
	p := position.NewStart()
	p.Unmake() // should not panic
	if p.ExportFEN() != position.StartFEN {
		t.Fatalf("unmake on empty stack mutated the position")
	}
}

func TestHistoryLenTracksUndoStack(t *testing.T) {
	p := position.NewStart()
	legal := p.Legal()
	if len(legal) == 0 {
		t.Fatal("expected legal moves from start position")
	}
	p.Make(legal[0])
	if p.HistoryLen() != 1 {
		t.Fatalf("expected history length 1, got %d", p.HistoryLen())
	}
	p.Unmake()
	if p.HistoryLen() != 0 {
		t.Fatalf("expected history length 0 after unmake, got %d", p.HistoryLen())
	}
}
