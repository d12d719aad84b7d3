package eval

import "chessforge/position"

const (
	doubledPawnPenalty  = -15
	isolatedPawnPenalty = -20
	passedPawnBase      = 20
	passedPawnPerRank   = 10
	backwardPawnPenalty = -10
)

type pawnFiles [8][]position.Square

func collectPawnFiles(p *position.Position, c position.Color) pawnFiles {
	var files pawnFiles
	for sq := position.Square(0); sq < 64; sq++ {
		pc := p.PieceAt(sq)
		if pc.Kind() == position.Pawn && pc.Color() == c {
			f := sq.File()
			files[f] = append(files[f], sq)
		}
	}
	return files
}

func pawnStructureScore(p *position.Position) int {
	white := collectPawnFiles(p, position.White)
	black := collectPawnFiles(p, position.Black)

	score := 0
	score += doubledScore(white) - doubledScore(black)
	score += isolatedScore(white) - isolatedScore(black)
	score += passedScore(p, white, position.White) - passedScore(p, black, position.Black)
	score += backwardScore(p, white, position.White) - backwardScore(p, black, position.Black)
	return score
}

func doubledScore(files pawnFiles) int {
	total := 0
	for _, sqs := range files {
		if len(sqs) > 1 {
			total += (len(sqs) - 1) * doubledPawnPenalty
		}
	}
	return total
}

func isolatedScore(files pawnFiles) int {
	total := 0
	for f, sqs := range files {
		if len(sqs) == 0 {
			continue
		}
		hasNeighbor := false
		if f > 0 && len(files[f-1]) > 0 {
			hasNeighbor = true
		}
		if f < 7 && len(files[f+1]) > 0 {
			hasNeighbor = true
		}
		if !hasNeighbor {
			total += len(sqs) * isolatedPawnPenalty
		}
	}
	return total
}

// passedScore awards a pawn when no enemy pawn occupies the same or an
// adjacent file on a rank ahead of it (ahead = toward promotion for its
// color); an enemy pawn on the same rank does not block it.
func passedScore(p *position.Position, files pawnFiles, c position.Color) int {
	enemy := c.Opposite()
	total := 0
	for f := 0; f < 8; f++ {
		for _, sq := range files[f] {
			if isPassed(p, sq, f, c, enemy) {
				advancement := sq.Rank()
				if c == position.Black {
					advancement = 7 - sq.Rank()
				}
				total += passedPawnBase + passedPawnPerRank*advancement
			}
		}
	}
	return total
}

func isPassed(p *position.Position, sq position.Square, file int, c, enemy position.Color) bool {
	lo, hi := file-1, file+1
	if lo < 0 {
		lo = 0
	}
	if hi > 7 {
		hi = 7
	}
	for checkSq := position.Square(0); checkSq < 64; checkSq++ {
		pc := p.PieceAt(checkSq)
		if pc.Kind() != position.Pawn || pc.Color() != enemy {
			continue
		}
		cf := checkSq.File()
		if cf < lo || cf > hi {
			continue
		}
		if c == position.White && checkSq.Rank() > sq.Rank() {
			return false
		}
		if c == position.Black && checkSq.Rank() < sq.Rank() {
			return false
		}
	}
	return true
}

// backwardScore penalizes a pawn whose stop square is attacked by an enemy
// pawn while it has no friendly pawn on an adjacent file to support it.
func backwardScore(p *position.Position, files pawnFiles, c position.Color) int {
	enemy := c.Opposite()
	total := 0
	for f := 0; f < 8; f++ {
		for _, sq := range files[f] {
			if f > 0 && len(files[f-1]) > 0 {
				continue
			}
			if f < 7 && len(files[f+1]) > 0 {
				continue
			}
			stop := stopSquare(sq, c)
			if stop == position.NoSquare {
				continue
			}
			if p.IsPawnAttacked(stop, enemy) {
				total += backwardPawnPenalty
			}
		}
	}
	return total
}

func stopSquare(sq position.Square, c position.Color) position.Square {
	rank := sq.Rank()
	if c == position.White {
		if rank == 7 {
			return position.NoSquare
		}
		return position.MakeSquare(sq.File(), rank+1)
	}
	if rank == 0 {
		return position.NoSquare
	}
	return position.MakeSquare(sq.File(), rank-1)
}
