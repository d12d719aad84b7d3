// Package eval implements the tapered, PST-driven evaluation function:
// material, piece-square tables, pawn structure, rook files, bishop pair,
// mobility, and king safety. A phase count interpolates the piece-square
// tables between middlegame and endgame and scales king safety; the other
// terms are not phase-dependent.
package eval

import "chessforge/position"

// Material values in centipawns.
const (
	valuePawn   = 100
	valueKnight = 320
	valueBishop = 330
	valueRook   = 500
	valueQueen  = 900
	valueKing   = 20000
)

var pieceValue = [7]int{
	position.NoPieceKind: 0,
	position.Pawn:        valuePawn,
	position.Knight:      valueKnight,
	position.Bishop:      valueBishop,
	position.Rook:        valueRook,
	position.Queen:       valueQueen,
	position.King:        valueKing,
}

// Phase weights, mirroring the teacher's GetPiecePhase: knights and bishops
// count 1, rooks 2, queens 4, summed across both colors and capped at 24.
const (
	knightPhase = 1
	bishopPhase = 1
	rookPhase   = 2
	queenPhase  = 4
	maxPhase    = 24
)

func computePhase(p *position.Position) int {
	phase := p.CountPiece(position.White, position.Knight)*knightPhase +
		p.CountPiece(position.Black, position.Knight)*knightPhase +
		p.CountPiece(position.White, position.Bishop)*bishopPhase +
		p.CountPiece(position.Black, position.Bishop)*bishopPhase +
		p.CountPiece(position.White, position.Rook)*rookPhase +
		p.CountPiece(position.Black, position.Rook)*rookPhase +
		p.CountPiece(position.White, position.Queen)*queenPhase +
		p.CountPiece(position.Black, position.Queen)*queenPhase
	if phase > maxPhase {
		phase = maxPhase
	}
	return phase
}

func materialScore(p *position.Position) int {
	score := 0
	for kind := position.Pawn; kind <= position.King; kind++ {
		score += p.CountPiece(position.White, kind) * pieceValue[kind]
		score -= p.CountPiece(position.Black, kind) * pieceValue[kind]
	}
	return score
}
