package eval

import "chessforge/position"

const (
	rookOpenFileBonus     = 20
	rookSemiOpenFileBonus = 10
	rookSeventhRankBonus  = 25
	bishopPairBonus       = 30

	knightMobilityWeight = 2
	bishopMobilityWeight = 2
	rookMobilityWeight   = 1
	queenMobilityWeight  = 1
)

type fileOccupancy struct {
	whitePawn, blackPawn [8]bool
}

func scanFiles(p *position.Position) fileOccupancy {
	var occ fileOccupancy
	for sq := position.Square(0); sq < 64; sq++ {
		pc := p.PieceAt(sq)
		if pc.Kind() != position.Pawn {
			continue
		}
		if pc.Color() == position.White {
			occ.whitePawn[sq.File()] = true
		} else {
			occ.blackPawn[sq.File()] = true
		}
	}
	return occ
}

func rookFileScore(p *position.Position) int {
	occ := scanFiles(p)
	score := 0
	for sq := position.Square(0); sq < 64; sq++ {
		pc := p.PieceAt(sq)
		if pc.Kind() != position.Rook {
			continue
		}
		f := sq.File()
		open := !occ.whitePawn[f] && !occ.blackPawn[f]
		switch pc.Color() {
		case position.White:
			if open {
				score += rookOpenFileBonus
			} else if !occ.whitePawn[f] {
				score += rookSemiOpenFileBonus
			}
			if sq.Rank() == 6 {
				score += rookSeventhRankBonus
			}
		case position.Black:
			if open {
				score -= rookOpenFileBonus
			} else if !occ.blackPawn[f] {
				score -= rookSemiOpenFileBonus
			}
			if sq.Rank() == 1 {
				score -= rookSeventhRankBonus
			}
		}
	}
	return score
}

func bishopPairScore(p *position.Position) int {
	score := 0
	if p.CountPiece(position.White, position.Bishop) >= 2 {
		score += bishopPairBonus
	}
	if p.CountPiece(position.Black, position.Bishop) >= 2 {
		score -= bishopPairBonus
	}
	return score
}

var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func onBoard(file, rank int) bool { return file >= 0 && file < 8 && rank >= 0 && rank < 8 }

func knightMobility(p *position.Position, sq position.Square) int {
	count := 0
	f, r := sq.File(), sq.Rank()
	for _, off := range knightOffsets {
		nf, nr := f+off[0], r+off[1]
		if !onBoard(nf, nr) {
			continue
		}
		target := position.MakeSquare(nf, nr)
		if p.PieceAt(target).Kind() == position.NoPieceKind || p.PieceAt(target).Color() != p.PieceAt(sq).Color() {
			count++
		}
	}
	return count
}

func slidingMobility(p *position.Position, sq position.Square, dirs [4][2]int) int {
	count := 0
	color := p.PieceAt(sq).Color()
	f, r := sq.File(), sq.Rank()
	for _, d := range dirs {
		nf, nr := f+d[0], r+d[1]
		for onBoard(nf, nr) {
			target := position.MakeSquare(nf, nr)
			occ := p.PieceAt(target)
			if occ.Kind() == position.NoPieceKind {
				count++
			} else {
				if occ.Color() != color {
					count++
				}
				break
			}
			nf += d[0]
			nr += d[1]
		}
	}
	return count
}

func mobilityScore(p *position.Position) int {
	score := 0
	for sq := position.Square(0); sq < 64; sq++ {
		pc := p.PieceAt(sq)
		sign := 1
		if pc.Color() == position.Black {
			sign = -1
		}
		switch pc.Kind() {
		case position.Knight:
			score += sign * knightMobilityWeight * knightMobility(p, sq)
		case position.Bishop:
			score += sign * bishopMobilityWeight * slidingMobility(p, sq, bishopDirs)
		case position.Rook:
			score += sign * rookMobilityWeight * slidingMobility(p, sq, rookDirs)
		case position.Queen:
			mob := slidingMobility(p, sq, bishopDirs) + slidingMobility(p, sq, rookDirs)
			score += sign * queenMobilityWeight * mob
		}
	}
	return score
}
