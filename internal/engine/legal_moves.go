package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *chess.Board) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Sq(row, col)
			if !ownsSquare(board, from) {
				continue
			}
			if hasLegalMovesForPiece(board, from) {
				return true
			}
		}
	}
	return false
}

// hasLegalMovesForPiece probes every destination for the piece on from.
func hasLegalMovesForPiece(board *chess.Board, from chess.Square) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if IsValidMove(board, from, chess.Sq(row, col)) {
				return true
			}
		}
	}
	return false
}

// LegalMoves returns the legal destinations of the piece on from, in row
// then column order. It is empty when from does not hold a piece of the
// side to move.
func LegalMoves(board *chess.Board, from chess.Square) []chess.Square {
	if !ownsSquare(board, from) {
		return nil
	}
	var targets []chess.Square
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			to := chess.Sq(row, col)
			if IsValidMove(board, from, to) {
				targets = append(targets, to)
			}
		}
	}
	return targets
}

// AllLegalMoves returns every legal move of the side to move.
func AllLegalMoves(board *chess.Board) []chess.Move {
	var moves []chess.Move
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Sq(row, col)
			for _, to := range LegalMoves(board, from) {
				moves = append(moves, chess.Move{From: from, To: to})
			}
		}
	}
	return moves
}

// ownsSquare reports whether from holds a piece of the side to move.
func ownsSquare(board *chess.Board, from chess.Square) bool {
	piece := board.Get(from)
	return !piece.IsEmpty() && piece.Colour == board.ToMove
}
