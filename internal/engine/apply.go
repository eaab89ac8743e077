package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// MakeMove validates and plays a move. It returns false, leaving the board
// untouched, if the move is illegal. Otherwise every side effect of the
// move is applied (en-passant capture, rook relocation when castling,
// castling-rights bookkeeping, promotion to a queen) and the turn passes.
func MakeMove(board *chess.Board, from, to chess.Square) bool {
	if !IsValidMove(board, from, to) {
		return false
	}
	applyMove(board, from, to)
	return true
}

// applyMove plays a move without validating it.
func applyMove(board *chess.Board, from, to chess.Square) {
	piece := board.Get(from)
	captured := board.Get(to)
	colour := piece.Colour

	// The pawn taken en passant stands beside the capturer, not on to.
	if piece.Kind == chess.Pawn && board.State.IsEnPassantTarget(to) {
		board.Set(chess.Sq(from.Row, to.Col), chess.Empty)
	}

	if piece.Kind == chess.Pawn && isDoublePush(from, to) {
		board.State.SetEnPassant(chess.Sq((from.Row+to.Row)/2, from.Col))
	} else {
		board.State.ClearEnPassant()
	}

	if piece.Kind == chess.King && from.Row == to.Row && abs(to.Col-from.Col) == 2 {
		if side, ok := castleSideFor(to.Col); ok {
			castleRook(board, from.Row, side)
		}
	}

	switch piece.Kind {
	case chess.King:
		board.State.MarkKingMoved(colour)
	case chess.Rook:
		updateCastlingRightsForRook(board, colour, from)
	}
	if captured.Kind == chess.Rook {
		updateCastlingRightsForRook(board, captured.Colour, to)
	}

	board.Set(to, piece)
	board.Set(from, chess.Empty)

	if piece.Kind == chess.Pawn && to.Row == chess.PromotionRow(colour) {
		board.Set(to, chess.MakeColouredPiece(colour, chess.Queen))
	}

	board.ToMove = board.ToMove.Opposite()
}
