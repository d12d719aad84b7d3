package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"chessforge/position"
)

func main() {
	fen := flag.String("fen", position.StartFEN, "FEN string (defaults to the initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-root-move node counts followed by their total")
	repeat := flag.Int("repeat", 1, "Repeat the perft run N times and report aggregate timing")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	p, err := position.LoadFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "LoadFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div := position.PerftDivide(p, *depth)
		type kv struct {
			m position.Move
			n uint64
		}
		arr := make([]kv, 0, len(div))
		var sum uint64
		for m, n := range div {
			arr = append(arr, kv{m, n})
			sum += n
		}
		sort.Slice(arr, func(i, j int) bool { return arr[i].m.String() < arr[j].m.String() })
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.m.String(), x.n)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += position.Perft(p, *depth)
	}
	elapsed := time.Since(start)
	secs := elapsed.Seconds()
	var nps float64
	if secs > 0 {
		nps = float64(totalNodes) / secs
	}

	fmt.Printf("depth %d \tnodes %d \ttime %s \tnps %.0f\n", *depth, totalNodes, elapsed, nps)
}
