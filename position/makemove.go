package position

// Make applies m to the position. It returns false, and leaves the position
// exactly as it was (via an internal Unmake), if the move would leave the
// mover's own king in check. Make assumes m is well-formed — produced by
// MoveGen — and only validates the king-safety postcondition.
func (p *Position) Make(m Move) bool {
	mover := p.sideToMove
	from, to := m.From(), m.To()
	flag := m.Flags()
	moved := p.squares[from]

	entry := undoEntry{
		move:         m,
		prevCastling: p.castling,
		prevEP:       p.epSquare,
		prevHalfmove: p.halfmove,
		prevFullmove: p.fullmove,
		prevZobrist:  p.zobrist,
	}

	// 1. Undo the old ep/castling components of the zobrist key.
	if p.epSquare != NoSquare {
		p.zobrist ^= zobristEnPassant[p.epSquare.File()]
	}
	p.zobrist ^= zobristCastle[p.castling]

	// 2. Determine captured piece.
	var capturedSq Square
	var captured Piece
	if flag == FlagEnPassant {
		if mover == White {
			capturedSq = to - 8
		} else {
			capturedSq = to + 8
		}
		captured = p.squares[capturedSq]
	} else {
		capturedSq = to
		captured = p.squares[to]
	}
	entry.captured = captured

	// 3. Halfmove clock.
	if moved.Kind() == Pawn || captured != NoPiece {
		p.halfmove = 0
	} else {
		p.halfmove++
	}

	// 4. En passant capture: remove the captured pawn from its actual square.
	if flag == FlagEnPassant {
		p.zobrist ^= zobristPiece[captured][capturedSq]
		p.squares[capturedSq] = NoPiece
	} else if captured != NoPiece {
		p.zobrist ^= zobristPiece[captured][to]
	}

	// 5. Castling: move the corresponding rook too.
	if flag == FlagCastle {
		var rookFrom, rookTo Square
		var rook Piece
		switch to {
		case whiteKingsideTo:
			rookFrom, rookTo, rook = whiteRookHStart, 5, MakePiece(White, Rook)
		case whiteQueensideTo:
			rookFrom, rookTo, rook = whiteRookAStart, 3, MakePiece(White, Rook)
		case blackKingsideTo:
			rookFrom, rookTo, rook = blackRookHStart, 61, MakePiece(Black, Rook)
		case blackQueensideTo:
			rookFrom, rookTo, rook = blackRookAStart, 59, MakePiece(Black, Rook)
		}
		p.squares[rookFrom] = NoPiece
		p.squares[rookTo] = rook
		p.zobrist ^= zobristPiece[rook][rookFrom]
		p.zobrist ^= zobristPiece[rook][rookTo]
	}

	// 6. Move the piece (or place the promoted piece).
	p.squares[from] = NoPiece
	p.zobrist ^= zobristPiece[moved][from]
	placed := moved
	if flag == FlagPromotion {
		placed = MakePiece(mover, m.PromoKind())
	}
	p.squares[to] = placed
	p.zobrist ^= zobristPiece[placed][to]

	// 7. En passant target square.
	p.epSquare = NoSquare
	if moved.Kind() == Pawn {
		diff := to.Rank() - from.Rank()
		if diff == 2 || diff == -2 {
			p.epSquare = MakeSquare(from.File(), (from.Rank()+to.Rank())/2)
		}
	}

	// 8. Update castling rights.
	clearCastling(&p.castling, from)
	clearCastling(&p.castling, to)

	// 9. XOR in the new ep/castling components and the side-to-move key.
	if p.epSquare != NoSquare {
		p.zobrist ^= zobristEnPassant[p.epSquare.File()]
	}
	p.zobrist ^= zobristCastle[p.castling]
	p.zobrist ^= zobristSide
	p.sideToMove = mover.Opposite()
	if p.sideToMove == White {
		p.fullmove++
	}

	// 10. Reject if the mover is left in check.
	if p.IsInCheck(mover) {
		p.undo = append(p.undo, entry)
		p.moveHistory = append(p.moveHistory, m)
		p.Unmake()
		return false
	}

	p.undo = append(p.undo, entry)
	p.moveHistory = append(p.moveHistory, m)
	return true
}

// clearCastling clears any castling bit whose associated king/rook starting
// square is touched by sq (as either the moving or the captured side).
func clearCastling(mask *uint8, sq Square) {
	switch sq {
	case whiteKingStart:
		*mask &^= CastleWhiteKing | CastleWhiteQueen
	case blackKingStart:
		*mask &^= CastleBlackKing | CastleBlackQueen
	case whiteRookAStart:
		*mask &^= CastleWhiteQueen
	case whiteRookHStart:
		*mask &^= CastleWhiteKing
	case blackRookAStart:
		*mask &^= CastleBlackQueen
	case blackRookHStart:
		*mask &^= CastleBlackKing
	}
}

// Unmake pops the most recent snapshot and restores every field verbatim.
// It is a silent no-op if the undo stack is empty.
func (p *Position) Unmake() {
	n := len(p.undo)
	if n == 0 {
		return
	}
	entry := p.undo[n-1]
	p.undo = p.undo[:n-1]
	p.moveHistory = p.moveHistory[:len(p.moveHistory)-1]

	m := entry.move
	from, to := m.From(), m.To()
	flag := m.Flags()

	p.sideToMove = p.sideToMove.Opposite()
	mover := p.sideToMove

	// Undo castling rook movement.
	if flag == FlagCastle {
		var rookFrom, rookTo Square
		var rook Piece
		switch to {
		case whiteKingsideTo:
			rookFrom, rookTo, rook = whiteRookHStart, 5, MakePiece(White, Rook)
		case whiteQueensideTo:
			rookFrom, rookTo, rook = whiteRookAStart, 3, MakePiece(White, Rook)
		case blackKingsideTo:
			rookFrom, rookTo, rook = blackRookHStart, 61, MakePiece(Black, Rook)
		case blackQueensideTo:
			rookFrom, rookTo, rook = blackRookAStart, 59, MakePiece(Black, Rook)
		}
		p.squares[rookTo] = NoPiece
		p.squares[rookFrom] = rook
	}

	// Move the piece back, undoing promotion if needed.
	if flag == FlagPromotion {
		p.squares[from] = MakePiece(mover, Pawn)
	} else {
		p.squares[from] = p.squares[to]
	}
	p.squares[to] = NoPiece

	// Restore the captured piece.
	if entry.captured != NoPiece {
		if flag == FlagEnPassant {
			var capturedSq Square
			if mover == White {
				capturedSq = to - 8
			} else {
				capturedSq = to + 8
			}
			p.squares[capturedSq] = entry.captured
		} else {
			p.squares[to] = entry.captured
		}
	}

	p.castling = entry.prevCastling
	p.epSquare = entry.prevEP
	p.halfmove = entry.prevHalfmove
	p.fullmove = entry.prevFullmove
	p.zobrist = entry.prevZobrist
}

// HistoryLen returns the number of committed makes still on the undo stack
// (equivalently, the length of the move history). Used to check invariant 6.
func (p *Position) HistoryLen() int { return len(p.undo) }
