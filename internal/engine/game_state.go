package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// GameStatus summarises the position for the side to move.
type GameStatus int

const (
	// StatusRunning means the side to move is not in check and can move.
	StatusRunning GameStatus = iota

	// StatusCheck means the side to move is in check but can escape.
	StatusCheck

	// StatusCheckmate means the side to move is in check with no legal move.
	StatusCheckmate

	// StatusStalemate means the side to move is not in check but cannot move.
	StatusStalemate
)

// String returns the string representation of a status.
func (s GameStatus) String() string {
	switch s {
	case StatusRunning:
		return "Running"
	case StatusCheck:
		return "Check"
	case StatusCheckmate:
		return "Checkmate"
	case StatusStalemate:
		return "Stalemate"
	default:
		return "Unknown"
	}
}

// IsOver reports whether the game has ended.
func (s GameStatus) IsOver() bool {
	return s == StatusCheckmate || s == StatusStalemate
}

// IsCheck reports whether the side to move is in check.
func (s GameStatus) IsCheck() bool {
	return s == StatusCheck || s == StatusCheckmate
}

// Status evaluates check, checkmate and stalemate for the side to move.
func Status(board *chess.Board) GameStatus {
	inCheck := IsInCheck(board, board.ToMove)
	canMove := HasLegalMoves(board)

	switch {
	case inCheck && canMove:
		return StatusCheck
	case inCheck:
		return StatusCheckmate
	case canMove:
		return StatusRunning
	default:
		return StatusStalemate
	}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return IsInCheck(board, board.ToMove) && !HasLegalMoves(board)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	return !IsInCheck(board, board.ToMove) && !HasLegalMoves(board)
}
