// Package pkg provides the core libraries for gridpull.
//
// # Overview
//
// Gridpull loads packs of graph-structured puzzle levels from a
// human-editable YAML save file and turns them into playable boards. The
// pkg directory is organized by concern:
//
//   - [geom] - Grid coordinates, directions, and directed connectors
//   - [level] - The level/pack data model, YAML decoding, defaulting rules
//   - [board] - Building playable boards from level definitions
//   - [store] - Loading and owning the level pack for a process
//   - [progress] - Per-level saved-progress persistence
//   - [config] - Optional TOML configuration (path overrides)
//   - [errors] - Structured error codes shared across the tool
//
// # Architecture
//
// The typical data flow:
//
//	SavedLevels.yaml (or bundled fallback, persisted on first run)
//	         ↓
//	    [level] package (decode + defaulting → LevelPack)
//	         ↓
//	    [store] package (one loaded pack, indexed access)
//	         ↓
//	    [board] package (playable board per level)
//
// # Quick Start
//
// Load the pack and build a board:
//
//	s, err := store.Open(store.Options{})
//	if err != nil {
//	    return err
//	}
//	b := s.BuildLevel(0) // nil if the pack has no level 0
//	for b != nil && !b.Completed() {
//	    b.Move(geom.DirRight)
//	}
//
// [geom]: https://pkg.go.dev/github.com/gridpull/gridpull/pkg/geom
// [level]: https://pkg.go.dev/github.com/gridpull/gridpull/pkg/level
// [board]: https://pkg.go.dev/github.com/gridpull/gridpull/pkg/board
// [store]: https://pkg.go.dev/github.com/gridpull/gridpull/pkg/store
// [progress]: https://pkg.go.dev/github.com/gridpull/gridpull/pkg/progress
// [config]: https://pkg.go.dev/github.com/gridpull/gridpull/pkg/config
// [errors]: https://pkg.go.dev/github.com/gridpull/gridpull/pkg/errors
package pkg
