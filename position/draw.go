package position

// IsDraw reports whether the position is drawn by the fifty-move rule,
// threefold repetition, or insufficient material.
func (p *Position) IsDraw() bool {
	if p.halfmove >= 100 {
		return true
	}
	if p.isRepetitionDraw() {
		return true
	}
	return p.isInsufficientMaterial()
}

// isRepetitionDraw scans the undo stack backwards. Each entry's prevZobrist
// and prevHalfmove describe the position that existed immediately before
// that move was made, so walking the stack backwards walks the game's past
// positions. The scan stops once it reaches a position whose own halfmove
// clock is 0 — the boundary of the last irreversible move (pawn move or
// capture), beyond which no repetition of the current position is
// possible. The current position counts as occurrence 1; the rule fires at
// count >= 3.
func (p *Position) isRepetitionDraw() bool {
	count := 1
	for i := len(p.undo) - 1; i >= 0; i-- {
		snap := p.undo[i]
		if snap.prevZobrist == p.zobrist {
			count++
			if count >= 3 {
				return true
			}
		}
		if snap.prevHalfmove == 0 {
			break
		}
	}
	return false
}

// isInsufficientMaterial reports true for K-K, K+minor-K, and K-K+minor,
// with no pawns, rooks, or queens on the board.
func (p *Position) isInsufficientMaterial() bool {
	var whiteMinors, blackMinors int
	for _, pc := range p.squares {
		switch pc.Kind() {
		case Pawn, Rook, Queen:
			return false
		case Knight, Bishop:
			if pc.Color() == White {
				whiteMinors++
			} else {
				blackMinors++
			}
		}
	}
	total := whiteMinors + blackMinors
	return total <= 1
}
