// Package search implements iterative-deepening negamax alpha-beta search
// over a position: quiescence, transposition table, MVV-LVA/killer/history
// move ordering, PVS, and LMR.
package search

import (
	"fmt"
	"sync/atomic"
	"time"

	"chessforge/eval"
	"chessforge/position"
)

// Mate and Draw are the score conventions used throughout the search.
// Scores within mateScoreThreshold of +/-Mate are treated as mate scores.
const (
	Mate               = 30000
	Draw               = 0
	mateScoreThreshold = 300
	nodeCheckMask      = 4095
	defaultMaxDepth    = 64
)

// Stats exposes read-only search bookkeeping after FindBestMove returns.
type Stats struct {
	NodesSearched uint64
	DepthReached  int
	LastScore     int
	BestMove      position.Move
}

// Search owns one transposition table and one set of ordering heuristics.
// It operates on a single, shared *position.Position; it never clones it.
type Search struct {
	tt      *TranspositionTable
	killers killerMoves
	history historyTable

	nodesSearched uint64
	depthReached  int
	lastScore     int
	bestMove      position.Move

	deadline   time.Time
	shouldStop *atomic.Bool

	rootIncomplete bool
	rootBestMove   position.Move
}

// New creates a Search with a fresh transposition table.
func New() *Search {
	return &Search{tt: newTranspositionTable()}
}

// SetStopFlag installs a cooperative cancellation flag the caller may set
// from another goroutine; checked at the same cadence as the deadline.
func (s *Search) SetStopFlag(flag *atomic.Bool) { s.shouldStop = flag }

// Stats reports the outcome of the most recent FindBestMove call.
func (s *Search) Stats() Stats {
	return Stats{
		NodesSearched: s.nodesSearched,
		DepthReached:  s.depthReached,
		LastScore:     s.lastScore,
		BestMove:      s.bestMove,
	}
}

// FindBestMove runs iterative deepening up to maxDepth (or defaultMaxDepth
// if maxDepth <= 0), bounded by timeBudgetSeconds. It returns the null move
// iff the position has no legal move.
func (s *Search) FindBestMove(p *position.Position, timeBudgetSeconds float64, maxDepth int) position.Move {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	s.deadline = time.Now().Add(time.Duration(timeBudgetSeconds * float64(time.Second)))
	s.nodesSearched = 0
	s.depthReached = 0

	legal := p.Legal()
	if len(legal) == 0 {
		s.bestMove = position.NullMove
		s.lastScore = Draw
		if p.IsInCheck(p.SideToMove()) {
			s.lastScore = -Mate
		}
		return position.NullMove
	}
	if len(legal) == 1 {
		s.bestMove = legal[0]
		s.depthReached = 1
		s.lastScore = 0
		return legal[0]
	}

	best := legal[0]
	var bestScore int
	s.bestMove, s.lastScore = best, 0
	for depth := 1; depth <= maxDepth; depth++ {
		s.rootIncomplete = false
		s.rootBestMove = position.NullMove
		score := s.negamax(p, depth, -Mate, Mate, 0)
		if s.rootIncomplete {
			break
		}
		best, bestScore = s.rootBestMove, score
		s.bestMove, s.lastScore, s.depthReached = best, bestScore, depth
		fmt.Printf("info depth %d score %d nodes %d bestmove %s\n", depth, bestScore, s.nodesSearched, best)
		if bestScore >= Mate-mateScoreThreshold || bestScore <= -Mate+mateScoreThreshold {
			break
		}
	}
	return best
}

func (s *Search) timeUp() bool {
	if s.shouldStop != nil && s.shouldStop.Load() {
		return true
	}
	return time.Now().After(s.deadline)
}

// negamax implements the spec's node algorithm: time/draw checks, TT probe,
// quiescence at the horizon, checkmate/stalemate detection, LMR, PVS, and
// killer/history updates on a cutoff. Called at ply 0 for the search root,
// where the draw check is skipped (the caller decides) and the chosen move
// is recorded in s.rootBestMove.
func (s *Search) negamax(p *position.Position, depth, alpha, beta, ply int) int {
	s.nodesSearched++
	if s.nodesSearched&nodeCheckMask == 0 && s.timeUp() {
		if ply == 0 {
			s.rootIncomplete = true
		}
		return alpha
	}
	if ply > 0 && p.IsDraw() {
		return Draw
	}

	origAlpha := alpha
	key := p.Zobrist()
	var ttMove position.Move
	if e, ok := s.tt.probe(key); ok {
		ttMove = e.move
		if e.depth >= depth {
			switch e.bound {
			case BoundExact:
				return e.score
			case BoundLower:
				if e.score > alpha {
					alpha = e.score
				}
			case BoundUpper:
				if e.score < beta {
					beta = e.score
				}
			}
			if alpha >= beta {
				return e.score
			}
		}
	}

	if depth <= 0 {
		return s.quiesce(p, alpha, beta)
	}

	inCheck := p.IsInCheck(p.SideToMove())
	moves := p.PseudoLegal()
	orderMoves(p, moves, ttMove, ply, &s.killers, &s.history)

	moveCount := 0
	bestScore := -Mate - 1
	var bestMove position.Move
	for _, m := range moves {
		isCapture := p.PieceAt(m.To()) != position.NoPiece || m.Flags() == position.FlagEnPassant
		if !p.Make(m) {
			continue
		}
		moveCount++

		var score int
		if moveCount > 4 && depth >= 3 && !inCheck && !isCapture && !m.IsPromotion() {
			r := 1
			if moveCount > 8 {
				r++
			}
			if depth > 6 {
				r++
			}
			reducedDepth := depth - 1 - r
			if reducedDepth < 0 {
				reducedDepth = 0
			}
			score = -s.negamax(p, reducedDepth, -alpha-1, -alpha, ply+1)
			if score > alpha {
				score = -s.negamax(p, depth-1, -alpha-1, -alpha, ply+1)
			}
		} else if moveCount > 1 {
			score = -s.negamax(p, depth-1, -alpha-1, -alpha, ply+1)
			if score > alpha && score < beta {
				score = -s.negamax(p, depth-1, -beta, -alpha, ply+1)
			}
		} else {
			score = -s.negamax(p, depth-1, -beta, -alpha, ply+1)
		}
		p.Unmake()

		if s.timeUp() {
			if ply == 0 {
				s.rootIncomplete = true
			}
			break
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
			if ply == 0 {
				s.rootBestMove = m
			}
		}
		if alpha >= beta {
			if p.PieceAt(m.To()) == position.NoPiece {
				s.killers.add(ply, m)
				s.history.add(m.From(), m.To(), depth)
			}
			break
		}
	}

	if moveCount == 0 {
		if inCheck {
			return -(Mate - ply)
		}
		return Draw
	}

	if s.rootIncomplete && ply == 0 {
		return bestScore
	}

	if !s.timeUp() {
		var bound Bound
		switch {
		case alpha >= beta:
			bound = BoundLower
		case alpha > origAlpha:
			bound = BoundExact
		default:
			bound = BoundUpper
		}
		s.tt.store(key, depth, bestScore, bestMove, bound)
	}

	if ply == 0 && s.rootBestMove == position.NullMove {
		s.rootBestMove = bestMove
	}

	return bestScore
}

// quiesce is the capture-only extension at the horizon: stand-pat, then
// MVV-LVA-ordered captures, no TT, no explicit depth limit.
func (s *Search) quiesce(p *position.Position, alpha, beta int) int {
	s.nodesSearched++

	stand := eval.Evaluate(p)
	if p.SideToMove() == position.Black {
		stand = -stand
	}
	if stand >= beta {
		return beta
	}
	if stand > alpha {
		alpha = stand
	}

	captures := p.Captures()
	orderMoves(p, captures, position.NullMove, 0, &s.killers, &s.history)

	for _, m := range captures {
		if !p.Make(m) {
			continue
		}
		score := -s.quiesce(p, -beta, -alpha)
		p.Unmake()

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
