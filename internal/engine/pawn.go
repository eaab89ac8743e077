package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// isPawnMoveValid checks the shape of a pawn move: a single push onto an
// empty square, a double push from the start row through two empty
// squares, or a diagonal step that captures an enemy piece or lands on
// the en-passant target.
func isPawnMoveValid(board *chess.Board, pawn chess.Piece, from, to chess.Square) bool {
	dir := chess.ForwardDir(pawn.Colour)
	rowDiff := to.Row - from.Row
	colDiff := abs(to.Col - from.Col)

	switch {
	case colDiff == 0 && rowDiff == dir:
		return board.Get(to).IsEmpty()

	case colDiff == 0 && rowDiff == 2*dir:
		if from.Row != chess.PawnRow(pawn.Colour) {
			return false
		}
		return board.Get(from.Offset(dir, 0)).IsEmpty() && board.Get(to).IsEmpty()

	case colDiff == 1 && rowDiff == dir:
		target := board.Get(to)
		if !target.IsEmpty() {
			return target.Colour != pawn.Colour
		}
		return board.State.IsEnPassantTarget(to)
	}

	return false
}

// pawnAttacks reports whether a pawn of the given colour on from attacks to.
// Occupancy of to is irrelevant.
func pawnAttacks(colour chess.Colour, from, to chess.Square) bool {
	return to.Row-from.Row == chess.ForwardDir(colour) && abs(to.Col-from.Col) == 1
}

// isDoublePush reports whether a pawn move from -> to is a two-square advance.
func isDoublePush(from, to chess.Square) bool {
	return from.Col == to.Col && abs(to.Row-from.Row) == 2
}
