package position

// Move packs a chess move into 16 bits: from (6 bits), to (6 bits), flags (2
// bits), promotion kind (2 bits). The zero value is the reserved null move.
type Move uint16

// Move flags.
const (
	FlagNormal    uint8 = 0
	FlagCastle    uint8 = 1
	FlagEnPassant uint8 = 2
	FlagPromotion uint8 = 3
)

// Promotion sub-codes, packed in the top 2 bits, enum order N,B,R,Q.
const (
	PromoKnight uint8 = 0
	PromoBishop uint8 = 1
	PromoRook   uint8 = 2
	PromoQueen  uint8 = 3
)

// NullMove is the reserved all-zero value; no legal move ever equals it
// because no legal move has from == to == a1 with flags == 0.
const NullMove Move = 0

// NewMove packs a move from its components.
func NewMove(from, to Square, flag uint8, promo uint8) Move {
	return Move(uint16(from)&0x3F | (uint16(to)&0x3F)<<6 | (uint16(flag)&0x3)<<12 | (uint16(promo)&0x3)<<14)
}

// From returns the origin square.
func (m Move) From() Square { return Square(m & 0x3F) }

// To returns the destination square.
func (m Move) To() Square { return Square((m >> 6) & 0x3F) }

// Flags returns the special-move flag.
func (m Move) Flags() uint8 { return uint8((m >> 12) & 0x3) }

// IsNull reports whether m is the reserved null move.
func (m Move) IsNull() bool { return m == NullMove }

// IsPromotion reports whether m carries a promotion.
func (m Move) IsPromotion() bool { return m.Flags() == FlagPromotion }

// PromoKind returns the promoted-to piece kind, or NoPieceKind if m is not a
// promotion.
func (m Move) PromoKind() PieceKind {
	if !m.IsPromotion() {
		return NoPieceKind
	}
	switch uint8((m >> 14) & 0x3) {
	case PromoKnight:
		return Knight
	case PromoBishop:
		return Bishop
	case PromoRook:
		return Rook
	case PromoQueen:
		return Queen
	}
	return NoPieceKind
}

// PromoCode returns the raw 2-bit promotion sub-code (PromoKnight..PromoQueen),
// used by move ordering's "100*promoKind" term.
func (m Move) PromoCode() uint8 { return uint8((m >> 14) & 0x3) }

var promoLetters = [4]byte{'n', 'b', 'r', 'q'}

// String renders the move in UCI-like coordinate form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(promoLetters[(m>>14)&0x3])
	}
	return s
}
