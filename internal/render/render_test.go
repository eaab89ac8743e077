package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func plain(flip, coords bool) *Renderer {
	return New(config.DisplayConfig{Flip: flip, Coordinates: coords})
}

func renderString(t *testing.T, r *Renderer, b *chess.Board, hs Highlights) string {
	t.Helper()
	var buf bytes.Buffer
	if err := r.Render(&buf, b, hs); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	return buf.String()
}

func TestRender_InitialPosition(t *testing.T) {
	tests := []struct {
		name string
		r    *Renderer
		want []string
	}{
		{
			name: "letters with coordinates",
			r:    plain(false, true),
			want: []string{
				"8 r n b q k b n r",
				"7 p p p p p p p p",
				"6 . . . . . . . .",
				"5 . . . . . . . .",
				"4 . . . . . . . .",
				"3 . . . . . . . .",
				"2 P P P P P P P P",
				"1 R N B Q K B N R",
				"  a b c d e f g h",
			},
		},
		{
			name: "flipped",
			r:    plain(true, true),
			want: []string{
				"1 R N B K Q B N R",
				"2 P P P P P P P P",
				"3 . . . . . . . .",
				"4 . . . . . . . .",
				"5 . . . . . . . .",
				"6 . . . . . . . .",
				"7 p p p p p p p p",
				"8 r n b k q b n r",
				"  h g f e d c b a",
			},
		},
		{
			name: "no coordinates",
			r:    plain(false, false),
			want: []string{
				"r n b q k b n r",
				"p p p p p p p p",
				". . . . . . . .",
				". . . . . . . .",
				". . . . . . . .",
				". . . . . . . .",
				"P P P P P P P P",
				"R N B Q K B N R",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderString(t, tt.r, chess.NewInitialBoard(), nil)
			want := strings.Join(tt.want, "\n") + "\n"
			testutil.AssertEqual(t, got, want)
		})
	}
}

func TestRender_Unicode(t *testing.T) {
	r := New(config.DisplayConfig{Unicode: true})
	got := renderString(t, r, chess.NewInitialBoard(), nil)

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != chess.BoardSize {
		t.Fatalf("Render() wrote %d lines, want %d", len(lines), chess.BoardSize)
	}
	testutil.AssertEqual(t, lines[0], "♜ ♞ ♝ ♛ ♚ ♝ ♞ ♜")
	testutil.AssertEqual(t, lines[3], "· · · · · · · ·")
	testutil.AssertEqual(t, lines[7], "♖ ♘ ♗ ♕ ♔ ♗ ♘ ♖")
}

func TestRender_TargetsWithoutColour(t *testing.T) {
	b := chess.NewInitialBoard()
	hs := Highlights{}.Add(HighlightTarget, testutil.MustSquare(t, "e3"), testutil.MustSquare(t, "e4"))

	got := renderString(t, plain(false, true), b, hs)
	testutil.AssertContains(t, got, "4 . . . . * . . .")
	testutil.AssertContains(t, got, "3 . . . . * . . .")
}

func TestRender_Colour(t *testing.T) {
	r := New(config.DisplayConfig{Colour: true, Coordinates: true})
	b := chess.NewInitialBoard()
	last := chess.Move{From: testutil.MustSquare(t, "e2"), To: testutil.MustSquare(t, "e4")}

	got := renderString(t, r, b, MoveHighlights(&last))

	testutil.AssertContains(t, got, "\x1b[", "colour output has no escape codes")
	testutil.AssertContains(t, got, "   a  b  c  d  e  f  g  h")
	if n := strings.Count(got, "\n"); n != chess.BoardSize+1 {
		t.Errorf("Render() wrote %d lines, want %d", n, chess.BoardSize+1)
	}
}

func TestRender_CheckHighlight(t *testing.T) {
	b := chess.NewInitialBoard()
	for _, m := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		mv := testutil.MustMove(t, m)
		b.Set(mv.To, b.Get(mv.From))
		b.Set(mv.From, chess.Empty)
	}
	b.ToMove = chess.White

	r := New(config.DisplayConfig{Colour: true})
	checked := renderString(t, r, b, nil)

	calm := renderString(t, r, chess.NewInitialBoard(), nil)
	if checked == calm {
		t.Fatal("positions differ but renders are identical")
	}

	red := r.palette[HighlightCheck].Sprint(" " + string(chess.W(chess.King).Letter()) + " ")
	testutil.AssertContains(t, checked, red, "king in check is not highlighted")
}

func TestMoveHighlights(t *testing.T) {
	testutil.AssertEqual(t, MoveHighlights(nil), Highlights{})

	m := testutil.MustMove(t, "g1f3")
	want := Highlights{m.From: HighlightLastMove, m.To: HighlightLastMove}
	testutil.AssertEqual(t, MoveHighlights(&m), want)
}

func TestHighlights_AddOverrides(t *testing.T) {
	sq := testutil.MustSquare(t, "e4")
	hs := Highlights{}.Add(HighlightLastMove, sq).Add(HighlightTarget, sq)
	if hs[sq] != HighlightTarget {
		t.Errorf("Highlights[e4] = %v, want HighlightTarget", hs[sq])
	}
}
