package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

var diagramPieces = map[byte]chess.Piece{
	'P': chess.W(chess.Pawn), 'N': chess.W(chess.Knight), 'B': chess.W(chess.Bishop),
	'R': chess.W(chess.Rook), 'Q': chess.W(chess.Queen), 'K': chess.W(chess.King),
	'p': chess.B(chess.Pawn), 'n': chess.B(chess.Knight), 'b': chess.B(chess.Bishop),
	'r': chess.B(chess.Rook), 'q': chess.B(chess.Queen), 'k': chess.B(chess.King),
}

// BoardFromDiagram builds a board from eight rows, rank 8 first. Each row
// holds eight cells: a piece letter (uppercase White, lowercase Black) or
// '.' for an empty cell. Spaces are ignored. Castling flags start false
// and there is no en-passant target.
//
//	b := testutil.BoardFromDiagram(t, chess.White,
//		"....k...",
//		"........",
//		...
//		"....K..R",
//	)
func BoardFromDiagram(t *testing.T, toMove chess.Colour, rows ...string) *chess.Board {
	t.Helper()
	if len(rows) != chess.BoardSize {
		t.Fatalf("BoardFromDiagram: got %d rows, want %d", len(rows), chess.BoardSize)
	}

	b := chess.NewBoard()
	b.ToMove = toMove
	for row, line := range rows {
		cells := strings.ReplaceAll(line, " ", "")
		if len(cells) != chess.BoardSize {
			t.Fatalf("BoardFromDiagram: row %d %q has %d cells, want %d", row, line, len(cells), chess.BoardSize)
		}
		for col := 0; col < chess.BoardSize; col++ {
			c := cells[col]
			if c == '.' {
				continue
			}
			piece, ok := diagramPieces[c]
			if !ok {
				t.Fatalf("BoardFromDiagram: row %d: unknown piece %q", row, c)
			}
			b.Squares[row][col] = piece
		}
	}
	return b
}

// MustSquare parses a square name, failing the test on error.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", name, err)
	}
	return sq
}

// MustMove parses a coordinate move such as "e2e4", failing the test on
// error.
func MustMove(t *testing.T, text string) chess.Move {
	t.Helper()
	if len(text) != 4 {
		t.Fatalf("MustMove(%q): want four characters", text)
	}
	return chess.Move{From: MustSquare(t, text[:2]), To: MustSquare(t, text[2:])}
}
