package eval

import "chessforge/position"

const (
	shieldPawnBonus     = 10
	centralKingPenalty  = -20
	enemyProximityPen   = -8
	shieldPhaseFloor    = 8
	kingSafetyBoxRadius = 2
)

// kingSafetyScore is computed for both colors and scaled by phase/maxPhase
// by the caller, per spec: it decays toward the endgame.
func kingSafetyScore(p *position.Position, phase int) int {
	return kingSafetyFor(p, position.White, phase) - kingSafetyFor(p, position.Black, phase)
}

func kingSafetyFor(p *position.Position, c position.Color, phase int) int {
	kingSq := p.KingSquare(c)
	if kingSq == position.NoSquare {
		return 0
	}
	score := 0
	file := kingSq.File()

	if phase > shieldPhaseFloor {
		score += shieldPawnBonus * shieldPawnCount(p, kingSq, c)
	}
	if file >= 2 && file <= 5 {
		score += centralKingPenalty
	}
	score += enemyProximityPen * enemyPiecesNearby(p, kingSq, c)
	return score
}

func shieldPawnCount(p *position.Position, kingSq position.Square, c position.Color) int {
	file := kingSq.File()
	rank := kingSq.Rank()
	shieldRank := rank + 1
	if c == position.Black {
		shieldRank = rank - 1
	}
	if shieldRank < 0 || shieldRank > 7 {
		return 0
	}
	count := 0
	for f := file - 1; f <= file+1; f++ {
		if f < 0 || f > 7 {
			continue
		}
		sq := position.MakeSquare(f, shieldRank)
		pc := p.PieceAt(sq)
		if pc.Kind() == position.Pawn && pc.Color() == c {
			count++
		}
	}
	return count
}

func enemyPiecesNearby(p *position.Position, kingSq position.Square, c position.Color) int {
	enemy := c.Opposite()
	file, rank := kingSq.File(), kingSq.Rank()
	count := 0
	for f := file - kingSafetyBoxRadius; f <= file+kingSafetyBoxRadius; f++ {
		for r := rank - kingSafetyBoxRadius; r <= rank+kingSafetyBoxRadius; r++ {
			if !onBoard(f, r) {
				continue
			}
			pc := p.PieceAt(position.MakeSquare(f, r))
			if pc.Kind() == position.NoPieceKind || pc.Kind() == position.Pawn {
				continue
			}
			if pc.Color() == enemy {
				count++
			}
		}
	}
	return count
}
