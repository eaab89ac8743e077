// Package render draws chess boards as text.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Highlight marks a square for emphasis.
type Highlight int

const (
	HighlightNone Highlight = iota
	HighlightLastMove
	HighlightTarget
	HighlightCheck
)

// Highlights maps squares to their emphasis. A later Add wins.
type Highlights map[chess.Square]Highlight

// Add marks every square with h.
func (hs Highlights) Add(h Highlight, squares ...chess.Square) Highlights {
	for _, sq := range squares {
		hs[sq] = h
	}
	return hs
}

// Renderer draws a board. The zero value draws plain letters with White
// at the bottom and no coordinates.
type Renderer struct {
	Unicode     bool
	Colour      bool
	Flip        bool
	Coordinates bool

	palette map[Highlight]*color.Color
	light   *color.Color
	dark    *color.Color
}

// New creates a Renderer from display settings.
func New(cfg config.DisplayConfig) *Renderer {
	r := &Renderer{
		Unicode:     cfg.Unicode,
		Colour:      cfg.Colour,
		Flip:        cfg.Flip,
		Coordinates: cfg.Coordinates,
	}
	r.initPalette()
	return r
}

// initPalette builds the square colours. fatih/color turns itself off when
// stdout is not a terminal; a renderer writing to an SSH channel must not
// inherit that, so every colour is enabled explicitly.
func (r *Renderer) initPalette() {
	r.light = color.New(color.BgHiWhite, color.FgBlack)
	r.dark = color.New(color.BgGreen, color.FgBlack)
	r.palette = map[Highlight]*color.Color{
		HighlightLastMove: color.New(color.BgYellow, color.FgBlack),
		HighlightTarget:   color.New(color.BgCyan, color.FgBlack),
		HighlightCheck:    color.New(color.BgRed, color.FgHiWhite, color.Bold),
	}
	for _, c := range []*color.Color{r.light, r.dark} {
		c.EnableColor()
	}
	for _, c := range r.palette {
		c.EnableColor()
	}
}

// Render writes the board to w. The king of the side to move is
// highlighted when in check, on top of any highlights passed in.
func (r *Renderer) Render(w io.Writer, board *chess.Board, hs Highlights) error {
	if r.Colour && r.light == nil {
		r.initPalette()
	}

	marks := make(Highlights, len(hs)+1)
	for sq, h := range hs {
		marks[sq] = h
	}
	if engine.IsInCheck(board, board.ToMove) {
		if kingSq, ok := engine.FindKing(board, board.ToMove); ok {
			marks.Add(HighlightCheck, kingSq)
		}
	}

	bw := bufio.NewWriter(w)
	for i := 0; i < chess.BoardSize; i++ {
		row := i
		if r.Flip {
			row = chess.BoardSize - 1 - i
		}

		var line strings.Builder
		if r.Coordinates {
			line.WriteByte(chess.Sq(row, 0).Rank())
			line.WriteByte(' ')
		}
		for j := 0; j < chess.BoardSize; j++ {
			col := j
			if r.Flip {
				col = chess.BoardSize - 1 - j
			}
			sq := chess.Sq(row, col)
			line.WriteString(r.cell(sq, board.Get(sq), marks[sq]))
		}
		fmt.Fprintln(bw, strings.TrimRight(line.String(), " "))
	}

	if r.Coordinates {
		fmt.Fprintln(bw, r.fileLabels())
	}
	return bw.Flush()
}

// cell returns the text for one square.
func (r *Renderer) cell(sq chess.Square, piece chess.Piece, h Highlight) string {
	symbol := r.symbol(piece)
	if !r.Colour {
		if h == HighlightTarget && piece.IsEmpty() {
			symbol = "*"
		}
		return symbol + " "
	}

	c := r.palette[h]
	if c == nil {
		c = r.dark
		if (sq.Row+sq.Col)%2 == 0 {
			c = r.light
		}
	}
	if piece.IsEmpty() {
		symbol = " "
		if h == HighlightTarget {
			symbol = "•"
		}
	}
	return c.Sprint(" " + symbol + " ")
}

// symbol returns the glyph or letter for a piece.
func (r *Renderer) symbol(piece chess.Piece) string {
	if r.Unicode {
		return piece.Glyph()
	}
	return string(piece.Letter())
}

// fileLabels returns the a-h line under the board, aligned with the cells.
func (r *Renderer) fileLabels() string {
	var line strings.Builder
	line.WriteString("  ")
	for j := 0; j < chess.BoardSize; j++ {
		col := j
		if r.Flip {
			col = chess.BoardSize - 1 - j
		}
		file := chess.Sq(0, col).File()
		if r.Colour {
			line.WriteByte(' ')
		}
		line.WriteByte(file)
		line.WriteByte(' ')
	}
	return strings.TrimRight(line.String(), " ")
}

// MoveHighlights marks the squares of the last move.
func MoveHighlights(last *chess.Move) Highlights {
	hs := Highlights{}
	if last != nil {
		hs.Add(HighlightLastMove, last.From, last.To)
	}
	return hs
}
