package cli

import (
	"strings"

	"github.com/gridpull/gridpull/pkg/board"
	"github.com/gridpull/gridpull/pkg/geom"
)

// Board cell glyphs. A node's glyph encodes its outgoing arcs: a single arc
// renders as that arrow, several as a junction.
const (
	glyphEmpty    = "·"
	glyphNode     = "•"
	glyphJunction = "✦"
	glyphStart    = "S"
	glyphFinal    = "F"
	glyphPiece    = "◉"
)

var arrowGlyphs = map[geom.Direction]string{
	geom.DirUp:    "↑",
	geom.DirDown:  "↓",
	geom.DirLeft:  "←",
	geom.DirRight: "→",
}

// renderBoard draws the board as a styled grid. When withPiece is set the
// current piece position is drawn on top of whatever occupies its cell.
func renderBoard(b *board.Board, withPiece bool) string {
	min, max := b.Bounds()

	var sb strings.Builder
	for y := min.Y; y <= max.Y; y++ {
		for x := min.X; x <= max.X; x++ {
			if x > min.X {
				sb.WriteString(" ")
			}
			sb.WriteString(cellGlyph(b, geom.Pt(x, y), withPiece))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// cellGlyph picks the glyph and style for one cell. Precedence: piece,
// start, final, node, empty.
func cellGlyph(b *board.Board, p geom.Point, withPiece bool) string {
	if withPiece && b.Piece() == p {
		if b.Completed() {
			return StyleSuccess.Render(glyphPiece)
		}
		return stylePiece.Render(glyphPiece)
	}
	switch {
	case p == b.Start():
		return styleStart.Render(glyphStart)
	case p == b.Final():
		return styleFinal.Render(glyphFinal)
	case b.HasNode(p):
		return styleNode.Render(nodeGlyph(b.ArcsAt(p)))
	default:
		return styleEmpty.Render(glyphEmpty)
	}
}

func nodeGlyph(arcs []geom.Direction) string {
	switch len(arcs) {
	case 0:
		return glyphNode
	case 1:
		if g, ok := arrowGlyphs[arcs[0]]; ok {
			return g
		}
		return glyphNode
	default:
		return glyphJunction
	}
}
