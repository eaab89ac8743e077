package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
// A board without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := FindKing(board, colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, kingSq, colour.Opposite())
}

// FindKing finds the king of the given colour on the board.
func FindKing(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if board.Squares[row][col].Is(colour, chess.King) {
				return chess.Sq(row, col), true
			}
		}
	}
	return chess.Square{}, false
}

// IsSquareAttacked returns true if the square is attacked by the given
// colour. The square may be empty or occupied by either side.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	if !sq.Valid() {
		return false
	}
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() || piece.Colour != byColour {
				continue
			}
			if canPieceAttack(board, piece, chess.Sq(row, col), sq) {
				return true
			}
		}
	}
	return false
}

// canPieceAttack differs from movement only for pawns, which attack
// diagonally whether or not anything stands there, and for kings, which
// never attack by castling.
func canPieceAttack(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	if piece.Kind == chess.Pawn {
		return pawnAttacks(piece.Colour, from, to)
	}
	return canPieceMove(board, piece.Kind, from, to)
}
