package eval

import "chessforge/position"

// Evaluate returns a centipawn score from White's perspective. It is a pure
// function of the position: no caching, no mutation.
func Evaluate(p *position.Position) int {
	phase := computePhase(p)
	egWeight := maxPhase - phase // out of maxPhase

	pstMG, pstEG := pstScore(p)
	pstTapered := (pstMG*phase + pstEG*egWeight) / maxPhase

	score := materialScore(p)
	score += pstTapered
	score += pawnStructureScore(p)
	score += rookFileScore(p)
	score += bishopPairScore(p)
	score += mobilityScore(p)
	score += (kingSafetyScore(p, phase) * phase) / maxPhase

	return score
}
