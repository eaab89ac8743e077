// Package engine provides chess move validation and board manipulation.
//
// All functions operate on a *chess.Board supplied by the caller. Queries
// never modify the board; MakeMove modifies it only when the move is legal.
// A board must not be used from several goroutines at once.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsValidMove reports whether moving the piece on from to to is legal for
// the side to move. The checks run in order and stop at the first failure:
// ownership of the moving piece, no self-capture, the piece's movement
// shape, and finally that the mover's king is not left attacked.
func IsValidMove(board *chess.Board, from, to chess.Square) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}

	piece := board.Get(from)
	if piece.IsEmpty() || piece.Colour != board.ToMove {
		return false
	}

	if piece.IsSameColour(board.Get(to)) {
		return false
	}

	if !isShapeValid(board, piece, from, to) {
		return false
	}

	return !leavesKingInCheck(board, from, to)
}

// isShapeValid delegates to the movement rule of the piece's kind.
func isShapeValid(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	switch piece.Kind {
	case chess.Pawn:
		return isPawnMoveValid(board, piece, from, to)

	case chess.King:
		if canPieceMove(board, chess.King, from, to) {
			return true
		}
		if from.Row == to.Row && abs(to.Col-from.Col) == 2 {
			return canCastle(board, from, to)
		}
		return false

	default:
		return canPieceMove(board, piece.Kind, from, to)
	}
}

// leavesKingInCheck plays the move on a copy of the board and reports
// whether the mover's king is attacked afterwards.
func leavesKingInCheck(board *chess.Board, from, to chess.Square) bool {
	colour := board.ToMove
	testBoard := *board
	applyMove(&testBoard, from, to)
	return IsInCheck(&testBoard, colour)
}
