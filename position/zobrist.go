package position

import "math/rand"

// zobristSeed is the fixed seed required by the spec so that equal positions
// hash equal across separate processes (reproducible perft, deterministic TT
// behavior in tests). A var, not a const: the bit pattern overflows int64 and
// must be truncated at runtime rather than at compile time.
var zobristSeed uint64 = 0xDEADBEEFCAFEBABE

// Zobrist key tables: process-lifetime constants, filled once at package init.
var (
	zobristPiece    [13][64]uint64 // indexed by packed Piece code (0 unused)
	zobristCastle   [16]uint64
	zobristEnPassant [8]uint64
	zobristSide     uint64
)

func init() {
	initZobrist()
}

func initZobrist() {
	rnd := rand.New(rand.NewSource(int64(zobristSeed)))

	for p := 0; p < 13; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// ComputeZobrist recomputes the Zobrist hash from scratch. Used on LoadFEN
// and by Validate to cross-check the incrementally maintained key.
func (p *Position) ComputeZobrist() uint64 {
	var key uint64
	for sq := 0; sq < 64; sq++ {
		pc := p.squares[sq]
		if pc != NoPiece {
			key ^= zobristPiece[pc][sq]
		}
	}
	if p.sideToMove == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[p.castling]
	if p.epSquare != NoSquare {
		key ^= zobristEnPassant[p.epSquare.File()]
	}
	return key
}
