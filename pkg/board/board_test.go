package board

import (
	"testing"

	"github.com/gridpull/gridpull/pkg/geom"
	"github.com/gridpull/gridpull/pkg/level"
)

func mustLevel(t *testing.T, name string, nodes []geom.Point, arcs []geom.PointDir, opts ...level.Option) *level.Level {
	t.Helper()
	l, err := level.NewLevel(name, "", nodes, arcs, opts...)
	if err != nil {
		t.Fatalf("NewLevel: %v", err)
	}
	return l
}

func lineLevel(t *testing.T, opts ...level.Option) *level.Level {
	return mustLevel(t, "Line",
		[]geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(2, 0)},
		[]geom.PointDir{
			{Point: geom.Pt(0, 0), Dir: geom.DirRight},
			{Point: geom.Pt(1, 0), Dir: geom.DirRight},
		}, opts...)
}

func TestBuildPlacesPieceOnStart(t *testing.T) {
	b := StandardBuilder{}.Build(lineLevel(t))

	if b.Piece() != geom.Pt(0, 0) {
		t.Errorf("piece = %v, want start (0,0)", b.Piece())
	}
	if b.Moves() != 0 {
		t.Errorf("moves = %d, want 0", b.Moves())
	}
	if b.Completed() {
		t.Error("fresh board should not be completed")
	}
}

func TestBuildAppliesStartPull(t *testing.T) {
	b := StandardBuilder{}.Build(lineLevel(t, level.WithStartPull(geom.DirRight)))

	if b.Piece() != geom.Pt(1, 0) {
		t.Errorf("piece = %v, want pulled to (1,0)", b.Piece())
	}
	if b.Moves() != 0 {
		t.Error("the start pull must not count as a move")
	}
}

func TestBuildIgnoresPullWithoutArc(t *testing.T) {
	b := StandardBuilder{}.Build(lineLevel(t, level.WithStartPull(geom.DirUp)))

	if b.Piece() != geom.Pt(0, 0) {
		t.Errorf("piece = %v, want unmoved start", b.Piece())
	}
}

func TestMoveFollowsArcs(t *testing.T) {
	b := StandardBuilder{}.Build(lineLevel(t))

	if b.Move(geom.DirLeft) {
		t.Error("move without a matching arc should fail")
	}
	if !b.Move(geom.DirRight) || b.Piece() != geom.Pt(1, 0) {
		t.Fatalf("first move failed, piece = %v", b.Piece())
	}
	if !b.Move(geom.DirRight) || b.Piece() != geom.Pt(2, 0) {
		t.Fatalf("second move failed, piece = %v", b.Piece())
	}
	if b.Moves() != 2 {
		t.Errorf("moves = %d, want 2", b.Moves())
	}
	if !b.Completed() {
		t.Error("piece on final node should complete the board")
	}
	// The final node has no outgoing arcs; nothing more to do.
	if b.Move(geom.DirRight) {
		t.Error("move off the final node should fail")
	}
}

func TestMoveNoneFails(t *testing.T) {
	b := StandardBuilder{}.Build(lineLevel(t))
	if b.Move(geom.DirNone) {
		t.Error("Move(DirNone) must never move the piece")
	}
}

func TestReset(t *testing.T) {
	b := StandardBuilder{}.Build(lineLevel(t))
	b.Move(geom.DirRight)
	b.Reset()

	if b.Piece() != geom.Pt(0, 0) || b.Moves() != 0 {
		t.Errorf("after reset: piece = %v, moves = %d", b.Piece(), b.Moves())
	}
}

func TestMultiArcNode(t *testing.T) {
	l := mustLevel(t, "Cross",
		[]geom.Point{geom.Pt(1, 1), geom.Pt(1, 0), geom.Pt(0, 1), geom.Pt(2, 1), geom.Pt(1, 2)},
		[]geom.PointDir{
			{Point: geom.Pt(1, 1), Dir: geom.DirUp},
			{Point: geom.Pt(1, 1), Dir: geom.DirLeft},
			{Point: geom.Pt(1, 1), Dir: geom.DirRight},
			{Point: geom.Pt(1, 1), Dir: geom.DirDown},
		})
	b := StandardBuilder{}.Build(l)

	if got := len(b.ArcsAt(geom.Pt(1, 1))); got != 4 {
		t.Fatalf("ArcsAt(center) has %d arcs, want 4", got)
	}
	if !b.Move(geom.DirDown) || b.Piece() != geom.Pt(1, 2) {
		t.Errorf("move down failed, piece = %v", b.Piece())
	}
}

func TestResumedProgressCarriesIntoBoard(t *testing.T) {
	b := StandardBuilder{}.Build(lineLevel(t, level.WithProgress(5, 30)))
	if b.Moves() != 5 {
		t.Errorf("moves = %d, want resumed 5", b.Moves())
	}
}

func TestBounds(t *testing.T) {
	l := mustLevel(t, "Spread",
		[]geom.Point{geom.Pt(-1, 2), geom.Pt(3, 0), geom.Pt(1, 5)}, nil)
	b := StandardBuilder{}.Build(l)

	min, max := b.Bounds()
	if min != geom.Pt(-1, 0) || max != geom.Pt(3, 5) {
		t.Errorf("Bounds() = %v, %v", min, max)
	}
}

func TestGarbageInGarbageOut(t *testing.T) {
	// A start node outside the node set is not rejected; play just finds
	// no arcs there.
	l := mustLevel(t, "Offboard",
		[]geom.Point{geom.Pt(0, 0)}, nil,
		level.WithStart(geom.Pt(9, 9)))
	b := StandardBuilder{}.Build(l)

	if b.HasNode(geom.Pt(9, 9)) {
		t.Error("start node should not be added to the cell set")
	}
	if b.Move(geom.DirUp) {
		t.Error("no arcs exist off the board")
	}
}
