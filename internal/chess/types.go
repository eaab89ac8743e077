// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents a chess piece type without colour.
type Kind int

const (
	NoKind Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is the occupant of a board cell: a kind paired with a colour.
// The zero value is an empty cell.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// Empty is the occupant of a vacant cell.
var Empty = Piece{}

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, kind Kind) Piece {
	return Piece{Kind: kind, Colour: colour}
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakeColouredPiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakeColouredPiece(Black, kind)
}

// IsEmpty reports whether the cell holds no piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// IsWhite reports whether p is a white piece.
func (p Piece) IsWhite() bool {
	return !p.IsEmpty() && p.Colour == White
}

// IsBlack reports whether p is a black piece.
func (p Piece) IsBlack() bool {
	return !p.IsEmpty() && p.Colour == Black
}

// IsSameColour reports whether both pieces exist and share a colour.
func (p Piece) IsSameColour(other Piece) bool {
	return !p.IsEmpty() && !other.IsEmpty() && p.Colour == other.Colour
}

// Is reports whether p is a piece of the given kind and colour.
func (p Piece) Is(colour Colour, kind Kind) bool {
	return p.Kind == kind && p.Colour == colour && kind != NoKind
}

// String returns a readable name such as "White Knight" or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// ForwardDir returns the row delta of a pawn advance for the colour.
// White moves toward row 0, Black toward row 7.
func ForwardDir(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// BackRow returns the row holding the colour's king and rooks at the start.
func BackRow(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}

// PawnRow returns the row holding the colour's pawns at the start.
func PawnRow(colour Colour) int {
	return BackRow(colour) + ForwardDir(colour)
}

// PromotionRow returns the row on which the colour's pawns promote.
func PromotionRow(colour Colour) int {
	return BackRow(colour.Opposite())
}
