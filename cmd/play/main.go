// Command play is a thin driver over the core: load a FEN, run a bounded
// search, and print the chosen move with its stats. No SAN/PGN, no UCI.
package main

import (
	"flag"
	"fmt"
	"os"

	"chessforge/position"
	"chessforge/search"
)

func main() {
	fen := flag.String("fen", position.StartFEN, "FEN string (defaults to the initial position)")
	seconds := flag.Float64("time", 1.0, "Time budget in seconds")
	maxDepth := flag.Int("depth", 0, "Max search depth (0 = engine default)")
	flag.Parse()

	p, err := position.LoadFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "LoadFEN error: %v\n", err)
		os.Exit(2)
	}

	s := search.New()
	move := s.FindBestMove(p, *seconds, *maxDepth)
	stats := s.Stats()

	if move.IsNull() {
		if p.IsInCheck(p.SideToMove()) {
			fmt.Println("checkmate")
		} else {
			fmt.Println("stalemate")
		}
		return
	}

	fmt.Printf("bestmove %s\n", move)
	fmt.Printf("depth %d score %d nodes %d\n", stats.DepthReached, stats.LastScore, stats.NodesSearched)
}
