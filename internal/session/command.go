package session

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// CommandKind identifies what a line of input asks for.
type CommandKind int

const (
	CmdNone CommandKind = iota // blank line
	CmdMove
	CmdMoves
	CmdBoard
	CmdFlip
	CmdNew
	CmdHelp
	CmdQuit
)

// String returns the string representation of a command kind.
func (k CommandKind) String() string {
	names := []string{"none", "move", "moves", "board", "flip", "new", "help", "quit"}
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// Command is one parsed line of input.
type Command struct {
	Kind   CommandKind
	Move   chess.Move   // CmdMove
	Square chess.Square // CmdMoves
}

var keywords = map[string]CommandKind{
	"board": CmdBoard,
	"show":  CmdBoard,
	"flip":  CmdFlip,
	"new":   CmdNew,
	"reset": CmdNew,
	"help":  CmdHelp,
	"?":     CmdHelp,
	"quit":  CmdQuit,
	"exit":  CmdQuit,
}

// ParseCommand reads one line. Moves may be written e2e4, "e2 e4" or e2-e4.
// lineNo is used only for error context.
func ParseCommand(line string, lineNo int) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))

	fail := func(expected string, err error) (Command, error) {
		return Command{}, &errors.ParseError{
			Err:      err,
			Source:   "input",
			Line:     lineNo,
			Expected: expected,
			Got:      strings.TrimSpace(line),
		}
	}

	switch len(fields) {
	case 0:
		return Command{Kind: CmdNone}, nil

	case 1:
		if kind, ok := keywords[fields[0]]; ok {
			return Command{Kind: kind}, nil
		}
		if fields[0] == "moves" {
			return fail("moves <square>", errors.ErrParseFailure)
		}
		text := strings.Replace(fields[0], "-", "", 1)
		if len(text) != 4 {
			return fail("a move like e2e4 or a command", errors.ErrParseFailure)
		}
		return parseMove(text[:2], text[2:], fail)

	case 2:
		if fields[0] == "moves" {
			sq, err := chess.ParseSquare(fields[1])
			if err != nil {
				return fail("a square", err)
			}
			return Command{Kind: CmdMoves, Square: sq}, nil
		}
		return parseMove(fields[0], fields[1], fail)
	}

	return fail("a move like e2e4 or a command", errors.ErrParseFailure)
}

func parseMove(from, to string, fail func(string, error) (Command, error)) (Command, error) {
	f, err := chess.ParseSquare(from)
	if err != nil {
		return fail("origin square", err)
	}
	t, err := chess.ParseSquare(to)
	if err != nil {
		return fail("destination square", err)
	}
	return Command{Kind: CmdMove, Move: chess.Move{From: f, To: t}}, nil
}

const helpText = `Commands:
  e2e4, e2 e4, e2-e4   move a piece (pawns promote to a queen)
  moves <square>       list legal destinations of a piece
  board                redraw the board
  flip                 turn the board around
  new                  start a new game
  help                 show this text
  quit                 leave
`
