package level

import (
	"github.com/gridpull/gridpull/pkg/errors"
	"github.com/gridpull/gridpull/pkg/geom"
)

// =============================================================================
// Raw records — the decoded-but-unresolved shape of the YAML document
// =============================================================================
//
// Decoding is two-stage: the YAML decoder fills these records, keeping
// optional fields optional, then resolve() runs the pure defaulting rules
// and produces the typed model. The split keeps "explicit vs defaulted"
// inspectable.
//
// Key matching is case-insensitive: Decode lowercases every mapping key
// before resolving against the all-lowercase tags below. Unknown keys are
// ignored, which is exactly the tolerance the save format requires: files
// written by a newer version with extra fields still load.

// packDoc is the root of a level pack document.
type packDoc struct {
	Info   packInfoRecord `yaml:"info"`
	Levels []levelRecord  `yaml:"levels"`
}

// packInfoRecord mirrors the info block.
type packInfoRecord struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
}

// levelRecord mirrors one entry of the levels list. StartNode, FinalNode
// and StartPull are optional; nil / empty marks "not given" so resolve can
// tell explicit values from defaults.
type levelRecord struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Moves       int         `yaml:"moves"`
	TimeElapsed float64     `yaml:"timeelapsed"`
	Nodes       []rawPoint  `yaml:"nodes"`
	Arcs        []arcRecord `yaml:"arcs"`
	StartNode   *rawPoint   `yaml:"startnode"`
	FinalNode   *rawPoint   `yaml:"finalnode"`
	StartPull   string      `yaml:"startpull"`
}

// rawPoint is a 2-integer [x, y] pair. Length is validated in resolve, not
// by the decoder, so a wrong-shaped pair reports which level it came from.
type rawPoint []int

// arcRecord mirrors one arc entry: a parent point plus a direction name.
type arcRecord struct {
	Parent    rawPoint `yaml:"parent"`
	Direction string   `yaml:"direction"`
}

// =============================================================================
// Resolution — pure defaulting from raw records to the typed model
// =============================================================================

// point converts a rawPoint, rejecting anything but exactly two integers.
func (rp rawPoint) point() (geom.Point, error) {
	if len(rp) != 2 {
		return geom.Point{}, errors.New(errors.ErrCodeInvalidPack, "coordinate must be a [x, y] pair, got %d values", len(rp))
	}
	return geom.Pt(rp[0], rp[1]), nil
}

// resolve applies the defaulting rules to one raw level record:
//   - startNode: explicit value if given, else the first node
//   - finalNode: explicit value if given, else the last node
//   - startPull: explicit value if given, else none
//
// An empty nodes list is a fatal decode error for the whole pack; the
// defaulting rules have nothing to index into and the level could never be
// placed on a board.
func (r levelRecord) resolve(index int) (*Level, error) {
	if len(r.Nodes) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyNodes, "level %d (%q): nodes list is empty", index, r.Name)
	}

	nodes := make([]geom.Point, len(r.Nodes))
	for i, rp := range r.Nodes {
		p, err := rp.point()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPack, err, "level %d (%q): node %d", index, r.Name, i)
		}
		nodes[i] = p
	}

	arcs := make([]geom.PointDir, len(r.Arcs))
	for i, ra := range r.Arcs {
		p, err := ra.Parent.point()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPack, err, "level %d (%q): arc %d parent", index, r.Name, i)
		}
		d, err := geom.ParseDirection(ra.Direction)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDirection, err, "level %d (%q): arc %d", index, r.Name, i)
		}
		arcs[i] = geom.PointDir{Point: p, Dir: d}
	}

	opts := []Option{WithProgress(r.Moves, r.TimeElapsed)}

	if r.StartNode != nil {
		p, err := r.StartNode.point()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPack, err, "level %d (%q): startNode", index, r.Name)
		}
		opts = append(opts, WithStart(p))
	}
	if r.FinalNode != nil {
		p, err := r.FinalNode.point()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPack, err, "level %d (%q): finalNode", index, r.Name)
		}
		opts = append(opts, WithFinal(p))
	}
	if r.StartPull != "" {
		d, err := geom.ParseDirection(r.StartPull)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDirection, err, "level %d (%q): startPull", index, r.Name)
		}
		opts = append(opts, WithStartPull(d))
	}

	return NewLevel(r.Name, r.Description, nodes, arcs, opts...)
}

// resolve converts the whole document into a LevelPack.
func (d packDoc) resolve() (*LevelPack, error) {
	levels := make([]*Level, 0, len(d.Levels))
	for i, rec := range d.Levels {
		l, err := rec.resolve(i)
		if err != nil {
			return nil, err
		}
		levels = append(levels, l)
	}
	return NewLevelPack(LevelPackInfo{
		Title:       d.Info.Title,
		Description: d.Info.Description,
		Version:     d.Info.Version,
	}, levels), nil
}
