package eval

import "chessforge/position"

// flipRank mirrors a square vertically so Black pieces read the same table
// White does, from Black's point of view.
func flipRank(sq position.Square) position.Square {
	return position.MakeSquare(sq.File(), 7-sq.Rank())
}

// Piece-square tables, white-to-move orientation (rank 0 = rank 1). Pawn and
// king carry separate middlegame/endgame tables; knight, bishop, rook and
// queen share one table across both phases, as spec'd.
var pawnPSTMG = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	-6, -4, 1, -8, -8, 1, -4, -6,
	-8, -4, 2, 8, 8, 2, -4, -8,
	-6, 0, 4, 16, 16, 4, 0, -6,
	0, 4, 10, 22, 22, 10, 4, 0,
	10, 14, 22, 28, 28, 22, 14, 10,
	30, 30, 30, 30, 30, 30, 30, 30,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var pawnPSTEG = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	4, 2, 0, -2, -2, 0, 2, 4,
	4, 2, 0, 0, 0, 0, 2, 4,
	8, 6, 2, -4, -4, 2, 6, 8,
	18, 14, 10, 6, 6, 10, 14, 18,
	32, 28, 22, 18, 18, 22, 28, 32,
	50, 50, 50, 50, 50, 50, 50, 50,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int{
	-40, -30, -20, -20, -20, -20, -30, -40,
	-30, -10, 0, 0, 0, 0, -10, -30,
	-20, 0, 10, 15, 15, 10, 0, -20,
	-20, 5, 15, 20, 20, 15, 5, -20,
	-20, 0, 15, 20, 20, 15, 0, -20,
	-20, 5, 10, 15, 15, 10, 5, -20,
	-30, -10, 0, 5, 5, 0, -10, -30,
	-40, -30, -20, -20, -20, -20, -30, -40,
}

var bishopPST = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPST = [64]int{
	0, 0, 0, 5, 5, 0, 0, 0,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	5, 10, 10, 10, 10, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var queenPST = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-10, 5, 5, 5, 5, 5, 0, -10,
	0, 0, 5, 5, 5, 5, 0, -5,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingPSTMG = [64]int{
	20, 30, 10, 0, 0, 10, 30, 20,
	20, 20, 0, 0, 0, 0, 20, 20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
}

var kingPSTEG = [64]int{
	-50, -30, -30, -30, -30, -30, -30, -50,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-50, -40, -30, -20, -20, -30, -40, -50,
}

func pstLookup(kind position.PieceKind, sq position.Square) (mg, eg int) {
	switch kind {
	case position.Pawn:
		return pawnPSTMG[sq], pawnPSTEG[sq]
	case position.Knight:
		return knightPST[sq], knightPST[sq]
	case position.Bishop:
		return bishopPST[sq], bishopPST[sq]
	case position.Rook:
		return rookPST[sq], rookPST[sq]
	case position.Queen:
		return queenPST[sq], queenPST[sq]
	case position.King:
		return kingPSTMG[sq], kingPSTEG[sq]
	}
	return 0, 0
}

// pstScore returns the white-relative (mg, eg) PST sum across both colors.
func pstScore(p *position.Position) (mg, eg int) {
	for sq := position.Square(0); sq < 64; sq++ {
		pc := p.PieceAt(sq)
		if pc == position.NoPiece {
			continue
		}
		kind := pc.Kind()
		if pc.Color() == position.White {
			m, e := pstLookup(kind, sq)
			mg += m
			eg += e
		} else {
			m, e := pstLookup(kind, flipRank(sq))
			mg -= m
			eg -= e
		}
	}
	return mg, eg
}
