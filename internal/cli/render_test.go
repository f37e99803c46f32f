package cli

import (
	"strings"
	"testing"

	"github.com/gridpull/gridpull/pkg/board"
	"github.com/gridpull/gridpull/pkg/geom"
	"github.com/gridpull/gridpull/pkg/level"
)

func buildLine(t *testing.T, opts ...level.Option) *board.Board {
	t.Helper()
	l, err := level.NewLevel("Line", "",
		[]geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(2, 0)},
		[]geom.PointDir{
			{Point: geom.Pt(0, 0), Dir: geom.DirRight},
			{Point: geom.Pt(1, 0), Dir: geom.DirRight},
		}, opts...)
	if err != nil {
		t.Fatalf("NewLevel: %v", err)
	}
	return board.StandardBuilder{}.Build(l)
}

func TestRenderBoardMarksStartAndGoal(t *testing.T) {
	out := renderBoard(buildLine(t), false)

	if !strings.Contains(out, glyphStart) {
		t.Errorf("output missing start glyph:\n%s", out)
	}
	if !strings.Contains(out, glyphFinal) {
		t.Errorf("output missing goal glyph:\n%s", out)
	}
	if lines := strings.Count(out, "\n"); lines != 1 {
		t.Errorf("a 1-row board should render 1 line, got %d:\n%s", lines, out)
	}
}

func TestRenderBoardPiece(t *testing.T) {
	b := buildLine(t)
	if out := renderBoard(b, true); !strings.Contains(out, glyphPiece) {
		t.Errorf("withPiece output missing piece glyph:\n%s", out)
	}
	if out := renderBoard(b, false); strings.Contains(out, glyphPiece) {
		t.Errorf("static output should not draw the piece:\n%s", out)
	}
}

func TestNodeGlyph(t *testing.T) {
	tests := []struct {
		name string
		arcs []geom.Direction
		want string
	}{
		{"no arcs", nil, glyphNode},
		{"single arc", []geom.Direction{geom.DirRight}, "→"},
		{"junction", []geom.Direction{geom.DirUp, geom.DirDown}, glyphJunction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nodeGlyph(tt.arcs); got != tt.want {
				t.Errorf("nodeGlyph = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderBoardCoversBounds(t *testing.T) {
	l, err := level.NewLevel("Tall", "",
		[]geom.Point{geom.Pt(0, 0), geom.Pt(0, 3)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	out := renderBoard(board.StandardBuilder{}.Build(l), false)

	if lines := strings.Count(out, "\n"); lines != 4 {
		t.Errorf("bounds 0..3 should render 4 rows, got %d", lines)
	}
}
