package position

// promoOrder lists promotion kinds in the stable enum order (N, B, R, Q)
// required so under-promotions are visible to quiescence search.
var promoOrder = [4]struct {
	kind PieceKind
	code uint8
}{
	{Knight, PromoKnight}, {Bishop, PromoBishop}, {Rook, PromoRook}, {Queen, PromoQueen},
}

// PseudoLegal returns every move that follows piece-movement rules but may
// leave the mover in check.
func (p *Position) PseudoLegal() []Move {
	moves := make([]Move, 0, 48)
	us := p.sideToMove
	for sq := 0; sq < 64; sq++ {
		pc := p.squares[sq]
		if pc == NoPiece || pc.Color() != us {
			continue
		}
		from := Square(sq)
		switch pc.Kind() {
		case Pawn:
			genPawnMoves(p, from, us, &moves)
		case Knight:
			genOffsetMoves(p, from, us, knightOffsets[:], &moves)
		case Bishop:
			genSlidingMoves(p, from, us, bishopDirs[:], &moves)
		case Rook:
			genSlidingMoves(p, from, us, rookDirs[:], &moves)
		case Queen:
			genSlidingMoves(p, from, us, bishopDirs[:], &moves)
			genSlidingMoves(p, from, us, rookDirs[:], &moves)
		case King:
			genOffsetMoves(p, from, us, kingOffsets[:], &moves)
			genCastles(p, us, &moves)
		}
	}
	return moves
}

func genPawnMoves(p *Position, from Square, us Color, moves *[]Move) {
	file, rank := from.File(), from.Rank()
	dir, startRank, promoRank := 1, 1, 7
	if us == Black {
		dir, startRank, promoRank = -1, 6, 0
	}

	addPawnMove := func(to Square, flag uint8) {
		if to.Rank() == promoRank && flag == FlagNormal {
			for _, pr := range promoOrder {
				*moves = append(*moves, NewMove(from, to, FlagPromotion, pr.code))
			}
			return
		}
		*moves = append(*moves, NewMove(from, to, flag, 0))
	}

	// Single push.
	oneRank := rank + dir
	if onBoard(file, oneRank) {
		oneSq := MakeSquare(file, oneRank)
		if p.squares[oneSq] == NoPiece {
			addPawnMove(oneSq, FlagNormal)
			// Double push.
			if rank == startRank {
				twoRank := rank + 2*dir
				twoSq := MakeSquare(file, twoRank)
				if p.squares[twoSq] == NoPiece {
					*moves = append(*moves, NewMove(from, twoSq, FlagNormal, 0))
				}
			}
		}
	}

	// Captures (including en passant).
	for _, df := range [2]int{-1, 1} {
		tf := file + df
		tr := rank + dir
		if !onBoard(tf, tr) {
			continue
		}
		to := MakeSquare(tf, tr)
		target := p.squares[to]
		if target != NoPiece && target.Color() != us {
			addPawnMove(to, FlagNormal)
		} else if to == p.epSquare {
			*moves = append(*moves, NewMove(from, to, FlagEnPassant, 0))
		}
	}
}

func genOffsetMoves(p *Position, from Square, us Color, offsets [][2]int, moves *[]Move) {
	file, rank := from.File(), from.Rank()
	for _, off := range offsets {
		f, r := file+off[0], rank+off[1]
		if !onBoard(f, r) {
			continue
		}
		to := MakeSquare(f, r)
		target := p.squares[to]
		if target == NoPiece || target.Color() != us {
			*moves = append(*moves, NewMove(from, to, FlagNormal, 0))
		}
	}
}

func genSlidingMoves(p *Position, from Square, us Color, dirs [][2]int, moves *[]Move) {
	file, rank := from.File(), from.Rank()
	for _, d := range dirs {
		f, r := file+d[0], rank+d[1]
		for onBoard(f, r) {
			to := MakeSquare(f, r)
			target := p.squares[to]
			if target == NoPiece {
				*moves = append(*moves, NewMove(from, to, FlagNormal, 0))
			} else {
				if target.Color() != us {
					*moves = append(*moves, NewMove(from, to, FlagNormal, 0))
				}
				break
			}
			f += d[0]
			r += d[1]
		}
	}
}

func genCastles(p *Position, us Color, moves *[]Move) {
	them := us.Opposite()
	if us == White {
		if p.castling&CastleWhiteKing != 0 &&
			p.squares[5] == NoPiece && p.squares[6] == NoPiece &&
			!p.IsSquareAttacked(4, them) && !p.IsSquareAttacked(5, them) && !p.IsSquareAttacked(6, them) {
			*moves = append(*moves, NewMove(whiteKingStart, whiteKingsideTo, FlagCastle, 0))
		}
		if p.castling&CastleWhiteQueen != 0 &&
			p.squares[1] == NoPiece && p.squares[2] == NoPiece && p.squares[3] == NoPiece &&
			!p.IsSquareAttacked(4, them) && !p.IsSquareAttacked(3, them) && !p.IsSquareAttacked(2, them) {
			*moves = append(*moves, NewMove(whiteKingStart, whiteQueensideTo, FlagCastle, 0))
		}
	} else {
		if p.castling&CastleBlackKing != 0 &&
			p.squares[61] == NoPiece && p.squares[62] == NoPiece &&
			!p.IsSquareAttacked(60, them) && !p.IsSquareAttacked(61, them) && !p.IsSquareAttacked(62, them) {
			*moves = append(*moves, NewMove(blackKingStart, blackKingsideTo, FlagCastle, 0))
		}
		if p.castling&CastleBlackQueen != 0 &&
			p.squares[57] == NoPiece && p.squares[58] == NoPiece && p.squares[59] == NoPiece &&
			!p.IsSquareAttacked(60, them) && !p.IsSquareAttacked(59, them) && !p.IsSquareAttacked(58, them) {
			*moves = append(*moves, NewMove(blackKingStart, blackQueensideTo, FlagCastle, 0))
		}
	}
}

// Captures returns pseudo-legal moves whose destination is an enemy piece,
// plus en passant and all four promotion kinds (including under-promotions
// onto an empty square). Used for quiescence search.
func (p *Position) Captures() []Move {
	all := p.PseudoLegal()
	out := all[:0:0]
	for _, m := range all {
		if m.Flags() == FlagEnPassant || m.IsPromotion() {
			out = append(out, m)
			continue
		}
		if p.squares[m.To()] != NoPiece {
			out = append(out, m)
		}
	}
	return out
}

// Legal filters PseudoLegal through Make/Unmake: a move is legal iff Make
// returns true.
func (p *Position) Legal() []Move {
	pseudo := p.PseudoLegal()
	out := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if p.Make(m) {
			p.Unmake()
			out = append(out, m)
		}
	}
	return out
}

// HasLegalMove reports whether at least one pseudo-legal move survives
// Make, without building the full legal-move slice.
func (p *Position) HasLegalMove() bool {
	for _, m := range p.PseudoLegal() {
		if p.Make(m) {
			p.Unmake()
			return true
		}
	}
	return false
}
