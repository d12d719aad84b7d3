package search

import (
	"sort"

	"chessforge/position"
)

const maxPly = 128

// killerMoves holds two quiet killer moves per ply, the teacher's
// shift-in/shift-out replacement scheme.
type killerMoves [maxPly][2]position.Move

func (k *killerMoves) add(ply int, m position.Move) {
	if ply >= maxPly {
		return
	}
	if k[ply][0] == m {
		return
	}
	k[ply][1] = k[ply][0]
	k[ply][0] = m
}

func (k *killerMoves) isKiller(ply int, m position.Move) (first, second bool) {
	if ply >= maxPly {
		return false, false
	}
	return k[ply][0] == m, k[ply][1] == m
}

// historyTable accumulates depth^2 per [from][to] on a quiet cutoff.
type historyTable [64][64]int

func (h *historyTable) add(from, to position.Square, depth int) {
	h[from][to] += depth * depth
}

const (
	scoreTTMove        = 100000
	scoreCaptureBase   = 10000
	scoreEnPassant     = 9000
	scorePromotionBase = 8000
	scoreKiller0       = 7000
	scoreKiller1       = 6900
)

// pieceValueForOrdering mirrors eval's material scale for MVV-LVA; kept
// local so search has no dependency on the eval package's internals.
var pieceValueForOrdering = [7]int{
	position.NoPieceKind: 0,
	position.Pawn:        100,
	position.Knight:      320,
	position.Bishop:      330,
	position.Rook:        500,
	position.Queen:       900,
	position.King:        20000,
}

func moveScore(p *position.Position, m position.Move, ttMove position.Move, ply int, killers *killerMoves, history *historyTable) int {
	if m == ttMove {
		return scoreTTMove
	}
	if m.Flags() == position.FlagEnPassant {
		return scoreEnPassant
	}
	if m.IsPromotion() {
		return scorePromotionBase + 100*int(m.PromoCode())
	}
	captured := p.PieceAt(m.To())
	if captured != position.NoPiece {
		attacker := p.PieceAt(m.From())
		mvvLva := 10*pieceValueForOrdering[captured.Kind()] - pieceValueForOrdering[attacker.Kind()]
		return scoreCaptureBase + mvvLva
	}
	if isFirst, isSecond := killers.isKiller(ply, m); isFirst {
		return scoreKiller0
	} else if isSecond {
		return scoreKiller1
	}
	return history[m.From()][m.To()]
}

type scoredMove struct {
	move  position.Move
	score int
}

// orderMoves sorts moves descending by moveScore, in place.
func orderMoves(p *position.Position, moves []position.Move, ttMove position.Move, ply int, killers *killerMoves, history *historyTable) {
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{m, moveScore(p, m, ttMove, ply, killers, history)}
	}
	sort.Slice(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	for i, sm := range scored {
		moves[i] = sm.move
	}
}
