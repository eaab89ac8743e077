package chess

// CastleSide selects the rook a king castles with.
type CastleSide int

const (
	Kingside CastleSide = iota
	Queenside
)

// String returns the string representation of a castling side.
func (s CastleSide) String() string {
	if s == Kingside {
		return "Kingside"
	}
	return "Queenside"
}

// RookCol returns the starting column of the side's rook.
func (s CastleSide) RookCol() int {
	if s == Kingside {
		return BoardSize - 1
	}
	return 0
}

// KingStartCol is the starting column of both kings (the e-file).
const KingStartCol = 4

// PositionState records the history-dependent facts a board cannot show:
// whether kings and rooks have left their starting squares, and the
// en-passant target created by the previous move.
//
// The moved flags only ever go from false to true.
type PositionState struct {
	WhiteKingMoved          bool
	BlackKingMoved          bool
	WhiteRookQueensideMoved bool // a1 rook
	WhiteRookKingsideMoved  bool // h1 rook
	BlackRookQueensideMoved bool // a8 rook
	BlackRookKingsideMoved  bool // h8 rook

	// Is en passant capture possible? If so then EPSquare is the square
	// the capturing pawn lands on.
	EnPassant bool
	EPSquare  Square
}

// KingMoved reports whether the colour's king has ever moved.
func (s *PositionState) KingMoved(colour Colour) bool {
	if colour == White {
		return s.WhiteKingMoved
	}
	return s.BlackKingMoved
}

// RookMoved reports whether the colour's rook on the given side has ever
// left its starting square.
func (s *PositionState) RookMoved(colour Colour, side CastleSide) bool {
	switch {
	case colour == White && side == Kingside:
		return s.WhiteRookKingsideMoved
	case colour == White:
		return s.WhiteRookQueensideMoved
	case side == Kingside:
		return s.BlackRookKingsideMoved
	default:
		return s.BlackRookQueensideMoved
	}
}

// MarkKingMoved sets the colour's king-moved flag.
func (s *PositionState) MarkKingMoved(colour Colour) {
	if colour == White {
		s.WhiteKingMoved = true
	} else {
		s.BlackKingMoved = true
	}
}

// MarkRookMoved sets the flag for the colour's rook on the given side.
func (s *PositionState) MarkRookMoved(colour Colour, side CastleSide) {
	switch {
	case colour == White && side == Kingside:
		s.WhiteRookKingsideMoved = true
	case colour == White:
		s.WhiteRookQueensideMoved = true
	case side == Kingside:
		s.BlackRookKingsideMoved = true
	default:
		s.BlackRookQueensideMoved = true
	}
}

// SetEnPassant records sq as the en-passant target.
func (s *PositionState) SetEnPassant(sq Square) {
	s.EnPassant = true
	s.EPSquare = sq
}

// ClearEnPassant removes any en-passant target.
func (s *PositionState) ClearEnPassant() {
	s.EnPassant = false
	s.EPSquare = Square{}
}

// IsEnPassantTarget reports whether sq is the current en-passant target.
func (s *PositionState) IsEnPassantTarget(sq Square) bool {
	return s.EnPassant && s.EPSquare == sq
}

// CanCastle reports whether neither the king nor the side's rook has moved.
// It says nothing about the board itself.
func (s *PositionState) CanCastle(colour Colour, side CastleSide) bool {
	return !s.KingMoved(colour) && !s.RookMoved(colour, side)
}
