package chess

// EmptyGlyph is drawn for a vacant cell.
const EmptyGlyph = "·"

var glyphs = [2][7]string{
	White: {EmptyGlyph, "♙", "♘", "♗", "♖", "♕", "♔"},
	Black: {EmptyGlyph, "♟", "♞", "♝", "♜", "♛", "♚"},
}

// Glyph returns the Unicode chess symbol for the piece.
func (p Piece) Glyph() string {
	if p.IsEmpty() || p.Kind > King || p.Colour > White {
		return EmptyGlyph
	}
	return glyphs[p.Colour][p.Kind]
}

// Letter returns the ASCII letter for the piece: uppercase for White,
// lowercase for Black, '.' for an empty cell.
func (p Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.IsBlack() {
		l |= 0x20 // lowercase is +32 uppercase
	}
	return l
}
