package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Columns used when castling, indexed by chess.CastleSide.
var (
	// castleKingTo is the king's destination column.
	castleKingTo = [2]int{chess.Kingside: 6, chess.Queenside: 2}

	// castleRookTo is the rook's destination column.
	castleRookTo = [2]int{chess.Kingside: 5, chess.Queenside: 3}

	// castleKingPath lists the squares the king stands on, crosses or lands
	// on. None of them may be attacked.
	castleKingPath = [2][3]int{
		chess.Kingside:  {chess.KingStartCol, 5, 6},
		chess.Queenside: {chess.KingStartCol, 3, 2},
	}
)

// castleSideFor maps a king destination column to the castling side.
func castleSideFor(toCol int) (chess.CastleSide, bool) {
	switch toCol {
	case castleKingTo[chess.Kingside]:
		return chess.Kingside, true
	case castleKingTo[chess.Queenside]:
		return chess.Queenside, true
	}
	return chess.Kingside, false
}

// canCastle checks every castling precondition for a king moving two
// columns from -> to, against the current (pre-move) board.
func canCastle(board *chess.Board, from, to chess.Square) bool {
	king := board.Get(from)
	if king.Kind != chess.King {
		return false
	}
	colour := king.Colour
	row := chess.BackRow(colour)

	if from != chess.Sq(row, chess.KingStartCol) || to.Row != row {
		return false
	}
	side, ok := castleSideFor(to.Col)
	if !ok {
		return false
	}

	if !board.State.CanCastle(colour, side) {
		return false
	}

	rookSq := chess.Sq(row, side.RookCol())
	if !board.Get(rookSq).Is(colour, chess.Rook) {
		return false
	}
	if !isPathClear(board, from, rookSq) {
		return false
	}

	for _, col := range castleKingPath[side] {
		if IsSquareAttacked(board, chess.Sq(row, col), colour.Opposite()) {
			return false
		}
	}

	return true
}

// castleRook moves the rook that accompanies a castling king on row.
func castleRook(board *chess.Board, row int, side chess.CastleSide) {
	rookFrom := chess.Sq(row, side.RookCol())
	rookTo := chess.Sq(row, castleRookTo[side])

	rook := board.Get(rookFrom)
	board.Set(rookFrom, chess.Empty)
	board.Set(rookTo, rook)
}

// updateCastlingRightsForRook removes castling rights when a rook leaves
// or is captured on its starting square. Rooks elsewhere are ignored.
func updateCastlingRightsForRook(board *chess.Board, colour chess.Colour, sq chess.Square) {
	if sq.Row != chess.BackRow(colour) {
		return
	}
	for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
		if sq.Col == side.RookCol() {
			board.State.MarkRookMoved(colour, side)
		}
	}
}
