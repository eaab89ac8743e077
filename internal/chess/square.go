package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	ColBase  = 'a'
	RankBase = '1'
)

// Square addresses a board cell. Row 0 is rank 8 (Black's back rank),
// row 7 is rank 1; Col 0 is file a.
type Square struct {
	Row int
	Col int
}

// Sq returns the square at the given row and column.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// File returns the file letter ('a'-'h').
func (s Square) File() byte {
	return byte(ColBase + s.Col)
}

// Rank returns the rank digit ('1'-'8').
func (s Square) Rank() byte {
	return byte(RankBase + BoardSize - 1 - s.Row)
}

// String returns the square name, e.g. "e4". Off-board squares print as "-".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}

// Offset returns the square displaced by the given row and column deltas.
// The result may be off the board.
func (s Square) Offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// ParseSquare converts a square name such as "e2" into a Square.
func ParseSquare(name string) (Square, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if len(n) != 2 {
		return Square{}, fmt.Errorf("%w: %q", errors.ErrInvalidSquare, name)
	}
	file, rank := n[0], n[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("%w: %q", errors.ErrInvalidSquare, name)
	}
	return Square{
		Row: BoardSize - 1 - int(rank-RankBase),
		Col: int(file - ColBase),
	}, nil
}

// Move is an origin/destination pair.
type Move struct {
	From Square
	To   Square
}

// String returns the move in coordinate form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}
