// Package geom provides the small geometric value types the level model is
// built from: grid coordinates and the cardinal directions.
package geom

import (
	"fmt"
	"strings"
)

// Point is a board cell coordinate. Value type; equality is by value.
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the point translated by dx, dy.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Step returns the neighboring point one cell in direction d.
// Stepping in DirNone returns p unchanged.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return p.Add(dx, dy)
}

// String returns "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the four cardinal directions or DirNone.
//
// DirNone is a first-class value, not absence-of-value: as a start pull it
// means "apply no pull", and in raw level records it marks fields that were
// not set. It is the zero value.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// directions in declaration order, for String and Directions.
var directionNames = [...]string{"None", "Up", "Down", "Left", "Right"}

// String returns the canonical name of the direction ("None", "Up", ...).
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Delta returns the unit grid offset of the direction. The Y axis grows
// downward, matching the level file's row-major coordinates.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. DirNone is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// ParseDirection converts a direction name into a Direction. Matching is
// case-insensitive; the empty string parses as DirNone.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return DirNone, nil
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	default:
		return DirNone, fmt.Errorf("unknown direction %q", s)
	}
}

// PointDir is a directed connector anchored at a node: the node at Point
// has an arc pointing in Dir. A node with several connectors appears in
// multiple PointDir entries sharing the same Point.
type PointDir struct {
	Point Point
	Dir   Direction
}

// String returns "(x,y)→Dir".
func (pd PointDir) String() string {
	return fmt.Sprintf("%s→%s", pd.Point, pd.Dir)
}
