package chess

// Board represents a chess board with all state needed for the game.
//
// Board is a plain value: assigning or copying it yields a fully
// independent position.
type Board struct {
	// Squares[row][col]; row 0 is rank 8, col 0 is file a.
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// Castling rights and en-passant target.
	State PositionState
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{ToMove: White}
}

// NewInitialBoard creates a board set up in the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	backRank := [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

	b.Squares = [BoardSize][BoardSize]Piece{}
	for col := 0; col < BoardSize; col++ {
		b.Squares[BackRow(Black)][col] = B(backRank[col])
		b.Squares[PawnRow(Black)][col] = B(Pawn)
		b.Squares[PawnRow(White)][col] = W(Pawn)
		b.Squares[BackRow(White)][col] = W(backRank[col])
	}

	b.ToMove = White
	b.State = PositionState{}
}

// Get returns the piece on sq, or Empty if sq is off the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece on sq. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.Squares[sq.Row][sq.Col] = piece
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
