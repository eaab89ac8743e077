// Package errors provides sentinel errors and error types for the chess
// front ends and their infrastructure. The rules engine itself reports
// illegality with booleans; these types carry that verdict, with context,
// to the layers that talk to users and files.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidSquare indicates a square name that is not on the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrParseFailure indicates input that could not be understood.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameOver indicates a move attempted after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")
)

// MoveError wraps errors with move context: the ply at which it was
// attempted, the side to move and the two squares involved.
// It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err  error  // The underlying error
	Ply  int    // 1-based ply number of the attempt (0 if not applicable)
	Side string // Side to move when the attempt was made
	From string // Origin square name
	To   string // Destination square name
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Side != "" {
		parts = append(parts, e.Side)
	}
	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s%s", e.From, e.To))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "move error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a failure to read a command line or a
// configuration file.
type ParseError struct {
	Err      error  // The underlying error
	Source   string // Where the input came from (file name or "input")
	Line     int    // Line number (1-based, 0 if unknown)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Source != "" {
		loc := e.Source
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %q", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
