// Package level holds the puzzle level data model and its YAML
// deserialization.
//
// A level is a graph-structured board: a set of grid nodes, directed
// connector arcs anchored at nodes, a start and final node, and an optional
// pull direction applied when play begins. Levels travel in packs, the unit
// of persistence and distribution. The decoder applies the format's
// defaulting rules (start/final inferred from the node list, pull defaults
// to none) and tolerates unknown fields for forward compatibility.
package level

import (
	"github.com/gridpull/gridpull/pkg/errors"
	"github.com/gridpull/gridpull/pkg/geom"
)

// =============================================================================
// Level
// =============================================================================

// Level is one playable puzzle board definition. It is immutable after
// construction: accessors that expose slices return copies.
type Level struct {
	name        string
	description string
	moves       int
	timeElapsed float64
	nodes       []geom.Point
	arcs        []geom.PointDir
	startNode   geom.Point
	finalNode   geom.Point
	startPull   geom.Direction
}

// Option customizes a Level built with NewLevel.
type Option func(*Level, *levelOverrides)

// levelOverrides records which optional fields were set explicitly, so
// defaulting only fills the gaps.
type levelOverrides struct {
	start bool
	final bool
}

// WithStart sets an explicit start node instead of defaulting to the first
// node.
func WithStart(p geom.Point) Option {
	return func(l *Level, o *levelOverrides) {
		l.startNode = p
		o.start = true
	}
}

// WithFinal sets an explicit final node instead of defaulting to the last
// node.
func WithFinal(p geom.Point) Option {
	return func(l *Level, o *levelOverrides) {
		l.finalNode = p
		o.final = true
	}
}

// WithStartPull sets the pull direction applied at the start node when the
// level begins.
func WithStartPull(d geom.Direction) Option {
	return func(l *Level, _ *levelOverrides) {
		l.startPull = d
	}
}

// WithProgress seeds resumed progress counters. Fresh levels keep the
// zero defaults.
func WithProgress(moves int, timeElapsed float64) Option {
	return func(l *Level, _ *levelOverrides) {
		l.moves = moves
		l.timeElapsed = timeElapsed
	}
}

// NewLevel constructs a Level from already-typed values, for building levels
// programmatically rather than from decoded text. Unless overridden via
// options, the start node defaults to the first node, the final node to the
// last, the start pull to none, and the progress counters to zero.
//
// The node list must be non-empty; the defaulting rules index into it.
// No further validation is performed: duplicate nodes, arcs anchored off
// the node set, or a start node outside the graph are passed through
// unchanged and left to the board builder.
func NewLevel(name, description string, nodes []geom.Point, arcs []geom.PointDir, opts ...Option) (*Level, error) {
	if len(nodes) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyNodes, "level %q: nodes list is empty", name)
	}

	l := &Level{
		name:        name,
		description: description,
		nodes:       append([]geom.Point(nil), nodes...),
		arcs:        append([]geom.PointDir(nil), arcs...),
		startPull:   geom.DirNone,
	}

	var set levelOverrides
	for _, opt := range opts {
		opt(l, &set)
	}
	if !set.start {
		l.startNode = l.nodes[0]
	}
	if !set.final {
		l.finalNode = l.nodes[len(l.nodes)-1]
	}
	return l, nil
}

// Name returns the level name. May be empty.
func (l *Level) Name() string { return l.name }

// Description returns the level description. May be empty.
func (l *Level) Description() string { return l.description }

// Moves returns the saved move counter. Zero means fresh/unplayed.
func (l *Level) Moves() int { return l.moves }

// TimeElapsed returns the saved play time in seconds. Zero means
// fresh/unplayed.
func (l *Level) TimeElapsed() float64 { return l.timeElapsed }

// Nodes returns every coordinate participating in the level graph, in
// source order. The returned slice is a copy.
func (l *Level) Nodes() []geom.Point {
	return append([]geom.Point(nil), l.nodes...)
}

// NodeCount returns the number of nodes without copying.
func (l *Level) NodeCount() int { return len(l.nodes) }

// Arcs returns the directed connectors, in source order. Multiple arcs may
// share a point. The returned slice is a copy.
func (l *Level) Arcs() []geom.PointDir {
	return append([]geom.PointDir(nil), l.arcs...)
}

// StartNode returns where play begins.
func (l *Level) StartNode() geom.Point { return l.startNode }

// FinalNode returns the goal node.
func (l *Level) FinalNode() geom.Point { return l.finalNode }

// StartPull returns the pull applied to the piece at the start node when
// the level begins. DirNone means no pull.
func (l *Level) StartPull() geom.Direction { return l.startPull }

// =============================================================================
// LevelPack
// =============================================================================

// LevelPackInfo is pack-level metadata. All fields are free-form strings
// with no cross-field invariants.
type LevelPackInfo struct {
	Title       string
	Description string
	Version     string
}

// LevelPack is an ordered, index-stable collection of levels plus pack
// metadata. Order is source order and significant: levels are referenced by
// position. A pack may be empty.
type LevelPack struct {
	info   LevelPackInfo
	levels []*Level
}

// NewLevelPack builds a pack from the given info and levels, preserving
// order.
func NewLevelPack(info LevelPackInfo, levels []*Level) *LevelPack {
	return &LevelPack{
		info:   info,
		levels: append([]*Level(nil), levels...),
	}
}

// Info returns the pack metadata.
func (p *LevelPack) Info() LevelPackInfo { return p.info }

// Len returns the number of levels in the pack.
func (p *LevelPack) Len() int { return len(p.levels) }

// Level returns the level at position i, or nil if i is out of range.
func (p *LevelPack) Level(i int) *Level {
	if i < 0 || i >= len(p.levels) {
		return nil
	}
	return p.levels[i]
}

// Levels returns the levels in order. The returned slice is a copy; the
// Level pointers are shared (levels are immutable).
func (p *LevelPack) Levels() []*Level {
	return append([]*Level(nil), p.levels...)
}
