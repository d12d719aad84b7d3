package position

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFEN is returned by LoadFEN when the input text is malformed.
var ErrInvalidFEN = errors.New("position: invalid FEN")

// undoEntry is the snapshot pushed onto the undo stack by Make: the move, the
// captured piece, and the castling mask, en passant square, clocks and
// Zobrist key from before the move. It does not copy the board; Unmake
// restores the squares by reversing the move.
type undoEntry struct {
	move         Move
	captured     Piece
	prevCastling uint8
	prevEP       Square
	prevHalfmove int
	prevFullmove int
	prevZobrist  uint64
}

// Position is the mutable live board state shared by MoveGen, Eval, and
// Search. It owns its undo stack exclusively.
type Position struct {
	squares    [64]Piece
	sideToMove Color
	castling   uint8
	epSquare   Square
	halfmove   int
	fullmove   int
	zobrist    uint64

	undo        []undoEntry
	moveHistory []Move
}

// StartFEN is the FEN of the standard initial chess position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewStart returns a Position set to the standard initial chess position.
func NewStart() *Position {
	p, err := LoadFEN(StartFEN)
	if err != nil {
		panic("position: built-in start FEN is malformed: " + err.Error())
	}
	return p
}

var pieceFromLetter = map[byte]Piece{
	'P': MakePiece(White, Pawn), 'N': MakePiece(White, Knight), 'B': MakePiece(White, Bishop),
	'R': MakePiece(White, Rook), 'Q': MakePiece(White, Queen), 'K': MakePiece(White, King),
	'p': MakePiece(Black, Pawn), 'n': MakePiece(Black, Knight), 'b': MakePiece(Black, Bishop),
	'r': MakePiece(Black, Rook), 'q': MakePiece(Black, Queen), 'k': MakePiece(Black, King),
}

// LoadFEN parses a FEN-like string and returns a freshly built Position.
// History is empty and the Zobrist key is recomputed from scratch. Missing
// halfmove/fullmove fields default to 0/1.
func LoadFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, errInvalid("not enough fields")
	}

	p := &Position{epSquare: NoSquare, fullmove: 1}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, errInvalid("expected 8 ranks")
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pc, ok := pieceFromLetter[ch]
			if !ok {
				return nil, errInvalid("unrecognized piece character")
			}
			if file >= 8 {
				return nil, errInvalid("too many squares in rank")
			}
			p.squares[MakeSquare(file, rank)] = pc
			file++
		}
		if file != 8 {
			return nil, errInvalid("rank does not total 8 files")
		}
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return nil, errInvalid("side to move must be 'w' or 'b'")
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				p.castling |= CastleWhiteKing
			case 'Q':
				p.castling |= CastleWhiteQueen
			case 'k':
				p.castling |= CastleBlackKing
			case 'q':
				p.castling |= CastleBlackQueen
			default:
				return nil, errInvalid("invalid castling rights character")
			}
		}
	}

	if fields[3] != "-" {
		if len(fields[3]) != 2 {
			return nil, errInvalid("invalid en passant square")
		}
		fileCh, rankCh := fields[3][0], fields[3][1]
		if fileCh < 'a' || fileCh > 'h' || rankCh < '1' || rankCh > '8' {
			return nil, errInvalid("en passant square out of range")
		}
		p.epSquare = MakeSquare(int(fileCh-'a'), int(rankCh-'1'))
	}

	if len(fields) > 4 {
		hm, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, errInvalid("halfmove clock is not a number")
		}
		p.halfmove = hm
	}
	if len(fields) > 5 {
		fm, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, errInvalid("fullmove number is not a number")
		}
		p.fullmove = fm
	}

	p.zobrist = p.ComputeZobrist()
	return p, nil
}

func errInvalid(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidFEN, reason)
}

// ExportFEN is the inverse of LoadFEN: round-trip lossless for well-formed
// positions.
func (p *Position) ExportFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := p.squares[MakeSquare(file, rank)]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pc.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if p.castling == 0 {
		sb.WriteByte('-')
	} else {
		if p.castling&CastleWhiteKing != 0 {
			sb.WriteByte('K')
		}
		if p.castling&CastleWhiteQueen != 0 {
			sb.WriteByte('Q')
		}
		if p.castling&CastleBlackKing != 0 {
			sb.WriteByte('k')
		}
		if p.castling&CastleBlackQueen != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.epSquare.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfmove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmove))
	return sb.String()
}

// String renders the position as FEN, for debug printing via fmt.
func (p *Position) String() string { return p.ExportFEN() }

// PieceAt returns the piece occupying sq (NoPiece if empty).
func (p *Position) PieceAt(sq Square) Piece { return p.squares[sq] }

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// Castling returns the 4-bit castling rights mask.
func (p *Position) Castling() uint8 { return p.castling }

// EpSquare returns the en passant target square, or NoSquare.
func (p *Position) EpSquare() Square { return p.epSquare }

// Halfmove returns the halfmove clock (plies since last pawn move/capture).
func (p *Position) Halfmove() int { return p.halfmove }

// Fullmove returns the fullmove number.
func (p *Position) Fullmove() int { return p.fullmove }

// Zobrist returns the current Zobrist hash.
func (p *Position) Zobrist() uint64 { return p.zobrist }

// CountPiece returns the number of pieces of the given color and kind.
func (p *Position) CountPiece(c Color, k PieceKind) int {
	target := MakePiece(c, k)
	n := 0
	for _, pc := range p.squares {
		if pc == target {
			n++
		}
	}
	return n
}

// KingSquare returns the square of c's king, or NoSquare if absent (should
// not happen in a valid position per invariant 1).
func (p *Position) KingSquare(c Color) Square {
	king := MakePiece(c, King)
	for sq := 0; sq < 64; sq++ {
		if p.squares[sq] == king {
			return Square(sq)
		}
	}
	return NoSquare
}

// Validate is a debug/test-only consistency check: exactly one king per
// side and the incrementally maintained Zobrist key matches a from-scratch
// recomputation. It is not on the hot path.
func (p *Position) Validate() bool {
	var whiteKings, blackKings int
	for _, pc := range p.squares {
		if pc == MakePiece(White, King) {
			whiteKings++
		} else if pc == MakePiece(Black, King) {
			blackKings++
		}
	}
	if whiteKings != 1 || blackKings != 1 {
		return false
	}
	return p.zobrist == p.ComputeZobrist()
}
