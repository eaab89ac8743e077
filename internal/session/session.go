// Package session runs an interactive game over a line-oriented stream.
// It knows nothing of terminals or networks; the local CLI and the SSH
// server both drive it.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/render"
)

// Session is one game between two players at the same keyboard.
type Session struct {
	Name string

	cfg      *config.Config
	in       io.Reader
	out      io.Writer
	renderer *render.Renderer

	board  *chess.Board
	last   *chess.Move
	ply    int
	status engine.GameStatus
	lineNo int
}

// New creates a session reading commands from in and writing to out.
func New(name string, cfg *config.Config, in io.Reader, out io.Writer) *Session {
	s := &Session{
		Name:     name,
		cfg:      cfg,
		in:       in,
		out:      out,
		renderer: render.New(cfg.Display),
	}
	s.reset()
	return s
}

// Board returns the current position. Callers must not modify it.
func (s *Session) Board() *chess.Board {
	return s.board
}

// Status returns the state of the game for the side to move.
func (s *Session) Status() engine.GameStatus {
	return s.status
}

// Ply returns the number of moves played since the game started.
func (s *Session) Ply() int {
	return s.ply
}

func (s *Session) reset() {
	s.board = chess.NewInitialBoard()
	s.last = nil
	s.ply = 0
	s.status = engine.StatusRunning
}

func (s *Session) logf(format string, args ...interface{}) {
	s.cfg.Logf("[%s] "+format, append([]interface{}{s.Name}, args...)...)
}

// Run reads commands until input ends, the players quit or ctx is
// cancelled. Errors from individual commands are shown to the players and
// do not stop the loop.
func (s *Session) Run(ctx context.Context) error {
	s.logf("session started")
	defer func() { s.logf("session ended after %d plies", s.ply) }()

	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	// The reader outlives a cancelled Run until s.in is closed or
	// delivers another line.
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	fmt.Fprintf(s.out, "Welcome, %s. Type help for commands.\n", s.Name)
	s.draw(nil)
	s.prompt()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					return err
				default:
					return nil
				}
			}
			quit, err := s.Execute(line)
			if err != nil {
				fmt.Fprintf(s.out, "error: %v\n", err)
			}
			if quit {
				fmt.Fprintln(s.out, "Goodbye.")
				return nil
			}
			s.prompt()
		}
	}
}

func (s *Session) prompt() {
	if s.status.IsOver() {
		fmt.Fprint(s.out, "game over> ")
		return
	}
	fmt.Fprintf(s.out, "%s> ", strings.ToLower(s.board.ToMove.String()))
}

// Execute runs one line of input. It reports whether the players asked to
// quit.
func (s *Session) Execute(line string) (bool, error) {
	s.lineNo++
	cmd, err := ParseCommand(line, s.lineNo)
	if err != nil {
		return false, err
	}

	switch cmd.Kind {
	case CmdMove:
		return false, s.move(cmd.Move)

	case CmdMoves:
		s.showMoves(cmd.Square)

	case CmdBoard:
		s.draw(nil)

	case CmdFlip:
		s.renderer.Flip = !s.renderer.Flip
		s.draw(nil)

	case CmdNew:
		s.logf("new game after %d plies", s.ply)
		s.reset()
		s.draw(nil)

	case CmdHelp:
		fmt.Fprint(s.out, helpText)

	case CmdQuit:
		return true, nil
	}
	return false, nil
}

// move plays m for the side to move.
func (s *Session) move(m chess.Move) error {
	side := s.board.ToMove
	if s.status.IsOver() {
		return &errors.MoveError{
			Err:  errors.ErrGameOver,
			Ply:  s.ply + 1,
			Side: side.String(),
			From: m.From.String(),
			To:   m.To.String(),
		}
	}

	if !engine.MakeMove(s.board, m.From, m.To) {
		return &errors.MoveError{
			Err:  errors.ErrIllegalMove,
			Ply:  s.ply + 1,
			Side: side.String(),
			From: m.From.String(),
			To:   m.To.String(),
		}
	}

	s.ply++
	s.last = &m
	s.status = engine.Status(s.board)
	s.logf("ply %d: %s %v", s.ply, side, m)

	s.draw(nil)
	switch s.status {
	case engine.StatusCheck:
		fmt.Fprintf(s.out, "%s is in check.\n", s.board.ToMove)
	case engine.StatusCheckmate:
		fmt.Fprintf(s.out, "Checkmate. %s wins. Type new to play again.\n", side)
		s.logf("checkmate, %s wins", side)
	case engine.StatusStalemate:
		fmt.Fprintln(s.out, "Stalemate. The game is drawn. Type new to play again.")
		s.logf("stalemate")
	}
	return nil
}

// showMoves lists and highlights the legal destinations of the piece on sq.
func (s *Session) showMoves(sq chess.Square) {
	targets := engine.LegalMoves(s.board, sq)
	if len(targets) == 0 {
		fmt.Fprintf(s.out, "%v: no legal moves\n", sq)
		return
	}

	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.String()
	}
	s.draw(targets)
	fmt.Fprintf(s.out, "%v: %s\n", sq, strings.Join(names, " "))
}

// draw renders the board with the last move and any targets highlighted.
func (s *Session) draw(targets []chess.Square) {
	hs := render.MoveHighlights(s.last).Add(render.HighlightTarget, targets...)
	if err := s.renderer.Render(s.out, s.board, hs); err != nil {
		s.logf("render: %v", err)
	}
	if !s.status.IsOver() {
		fmt.Fprintf(s.out, "%s to move.\n", s.board.ToMove)
	}
}
