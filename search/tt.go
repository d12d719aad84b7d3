package search

import "chessforge/position"

// Bound records which side of the window a stored score is exact for.
type Bound uint8

const (
	BoundExact Bound = iota
	BoundLower
	BoundUpper
)

// ttSize is the entry count: 2^20, open-addressed with no clustering or
// aging, matching the spec's "simple, no-frills" transposition table.
const ttSize = 1 << 20

type ttEntry struct {
	key   uint64
	depth int
	score int
	move  position.Move
	bound Bound
}

// TranspositionTable is owned by exactly one Search and is never shared
// across goroutines.
type TranspositionTable struct {
	entries []ttEntry
}

func newTranspositionTable() *TranspositionTable {
	return &TranspositionTable{entries: make([]ttEntry, ttSize)}
}

func (tt *TranspositionTable) probe(key uint64) (ttEntry, bool) {
	e := &tt.entries[key%ttSize]
	if e.key == key {
		return *e, true
	}
	return ttEntry{}, false
}

// store keeps the existing entry when it shares the key and was searched to
// a strictly greater depth; otherwise it overwrites: "prefer deeper", no aging.
func (tt *TranspositionTable) store(key uint64, depth, score int, move position.Move, bound Bound) {
	idx := key % ttSize
	e := &tt.entries[idx]
	if e.key == key && e.depth > depth {
		return
	}
	e.key = key
	e.depth = depth
	e.score = score
	e.move = move
	e.bound = bound
}
