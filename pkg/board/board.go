// Package board turns a level definition into a playable board.
//
// A board materializes the level's node graph as cell and arc lookup tables
// and tracks the piece position during play. Construction performs no
// validation of the level data: a start node outside the node set or an arc
// anchored off the board is carried through unchanged, and play simply
// finds no arcs there.
package board

import (
	"github.com/gridpull/gridpull/pkg/geom"
	"github.com/gridpull/gridpull/pkg/level"
)

// Builder constructs a playable board from a level definition.
type Builder interface {
	Build(l *level.Level) *Board
}

// StandardBuilder is the default Builder.
type StandardBuilder struct{}

// Build materializes the level graph and places the piece on the start
// node. If the level declares a start pull, the piece immediately follows a
// matching arc, uncounted; a pull with no matching arc leaves the piece on
// the start node.
func (StandardBuilder) Build(l *level.Level) *Board {
	b := &Board{
		level: l,
		cells: make(map[geom.Point]bool, l.NodeCount()),
		arcs:  make(map[geom.Point][]geom.Direction),
		piece: l.StartNode(),
		moves: l.Moves(),
	}
	for _, p := range l.Nodes() {
		b.cells[p] = true
	}
	for _, a := range l.Arcs() {
		b.arcs[a.Point] = append(b.arcs[a.Point], a.Dir)
	}

	if pull := l.StartPull(); pull != geom.DirNone && b.hasArc(b.piece, pull) {
		b.piece = b.piece.Step(pull)
	}
	return b
}

var _ Builder = StandardBuilder{}

// Board is a playable instance of one level.
type Board struct {
	level *level.Level
	cells map[geom.Point]bool
	arcs  map[geom.Point][]geom.Direction
	piece geom.Point
	moves int
}

// Level returns the level definition this board was built from.
func (b *Board) Level() *level.Level { return b.level }

// Piece returns the current piece position.
func (b *Board) Piece() geom.Point { return b.piece }

// Moves returns the number of moves played, including any resumed count
// from the level's saved progress.
func (b *Board) Moves() int { return b.moves }

// Start returns the start node.
func (b *Board) Start() geom.Point { return b.level.StartNode() }

// Final returns the goal node.
func (b *Board) Final() geom.Point { return b.level.FinalNode() }

// Completed reports whether the piece stands on the goal node.
func (b *Board) Completed() bool { return b.piece == b.level.FinalNode() }

// HasNode reports whether p is part of the board.
func (b *Board) HasNode(p geom.Point) bool { return b.cells[p] }

// ArcsAt returns the outgoing arc directions of the node at p, in source
// order. The returned slice is a copy.
func (b *Board) ArcsAt(p geom.Point) []geom.Direction {
	return append([]geom.Direction(nil), b.arcs[p]...)
}

// Move advances the piece one cell in direction d if the current node has a
// matching arc, and reports whether it moved. Successful moves count.
func (b *Board) Move(d geom.Direction) bool {
	if d == geom.DirNone || !b.hasArc(b.piece, d) {
		return false
	}
	b.piece = b.piece.Step(d)
	b.moves++
	return true
}

// Reset puts the piece back on the start node and clears the move counter.
// The start pull is not re-applied; a reset board waits for input.
func (b *Board) Reset() {
	b.piece = b.level.StartNode()
	b.moves = 0
}

// Bounds returns the smallest rectangle covering every node, as inclusive
// min/max corners. A board always has at least one node.
func (b *Board) Bounds() (min, max geom.Point) {
	first := true
	for p := range b.cells {
		if first {
			min, max = p, p
			first = false
			continue
		}
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

func (b *Board) hasArc(p geom.Point, d geom.Direction) bool {
	for _, ad := range b.arcs[p] {
		if ad == d {
			return true
		}
	}
	return false
}
