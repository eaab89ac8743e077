package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// canPieceMove checks the movement shape of a knight, bishop, rook, queen
// or king (one-step only) from one square to another, including path
// obstruction. Pawns and castling are handled separately.
func canPieceMove(board *chess.Board, kind chess.Kind, from, to chess.Square) bool {
	if from == to {
		return false
	}
	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)

	switch kind {
	case chess.Knight:
		return (rowDiff == 2 && colDiff == 1) || (rowDiff == 1 && colDiff == 2)

	case chess.Bishop:
		return isDiagonal(from, to) && isPathClear(board, from, to)

	case chess.Rook:
		return isStraight(from, to) && isPathClear(board, from, to)

	case chess.Queen:
		return canPieceMove(board, chess.Rook, from, to) ||
			canPieceMove(board, chess.Bishop, from, to)

	case chess.King:
		return rowDiff <= 1 && colDiff <= 1
	}

	return false
}
