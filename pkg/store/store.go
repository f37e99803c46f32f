// Package store loads and owns the level pack for the running process.
//
// The store replaces a hidden lazily-initialized global with an explicit
// handle: Open loads the pack exactly once, the caller keeps the handle and
// passes it to whatever needs levels. After Open the store is read-only, so
// concurrent readers need no further synchronization.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/gridpull/gridpull/pkg/board"
	"github.com/gridpull/gridpull/pkg/level"
	"github.com/gridpull/gridpull/pkg/level/assets"
)

const (
	// appDirName is the directory under ~/.config holding all persisted
	// state: the saved level pack, progress files, config.
	appDirName = "gridpull"

	// packFileName is the well-known saved-pack file name.
	packFileName = "SavedLevels.yaml"
)

// DefaultDataDir returns the persistent data directory,
// ~/.config/gridpull.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", appDirName), nil
}

// DefaultPackPath returns the well-known saved-pack path,
// ~/.config/gridpull/SavedLevels.yaml.
func DefaultPackPath() (string, error) {
	dir, err := DefaultDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, packFileName), nil
}

// Options configures Open. The zero value selects the well-known pack
// path, the bundled beginner pack as fallback, and the standard board
// builder.
type Options struct {
	// Path is the persisted pack location. Empty selects DefaultPackPath.
	Path string

	// Fallback is the bundled pack written to Path on first run. Nil
	// selects the beginner pack.
	Fallback []byte

	// Builder constructs boards from levels. Nil selects
	// board.StandardBuilder.
	Builder board.Builder

	// Logger receives load diagnostics. Nil selects log.Default().
	Logger *log.Logger
}

// LevelStore holds one loaded level pack. Read-only after Open.
type LevelStore struct {
	pack    *level.LevelPack
	builder board.Builder
	path    string
}

// Open loads the level pack eagerly and returns the owning handle. Loading
// failures — malformed pack, missing fallback, failed bootstrap persist —
// are returned as-is; there is no partial or degraded pack.
func Open(opts Options) (*LevelStore, error) {
	path := opts.Path
	if path == "" {
		p, err := DefaultPackPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	fallback := opts.Fallback
	if fallback == nil {
		fallback = assets.Beginner()
	}
	builder := opts.Builder
	if builder == nil {
		builder = board.StandardBuilder{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	pack, err := level.Load(path, fallback)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded level pack",
		"path", path,
		"title", pack.Info().Title,
		"levels", pack.Len())

	return &LevelStore{pack: pack, builder: builder, path: path}, nil
}

// Path returns the persisted pack location backing this store.
func (s *LevelStore) Path() string { return s.path }

// Info returns the loaded pack's metadata.
func (s *LevelStore) Info() level.LevelPackInfo { return s.pack.Info() }

// LevelCount returns the number of levels in the loaded pack.
func (s *LevelStore) LevelCount() int { return s.pack.Len() }

// Level returns the level at position i, or nil if i is out of range.
func (s *LevelStore) Level(i int) *level.Level { return s.pack.Level(i) }

// BuildLevel builds a playable board for the level at position i. Out of
// range indices return nil rather than an error: "no such level" is an
// ordinary answer, not a failure. In range, the level is handed to the
// builder and its result returned unchanged.
func (s *LevelStore) BuildLevel(i int) *board.Board {
	l := s.pack.Level(i)
	if l == nil {
		return nil
	}
	return s.builder.Build(l)
}
