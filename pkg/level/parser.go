package level

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gridpull/gridpull/pkg/errors"
)

// Decode parses a level pack document from YAML bytes.
//
// Field matching is case-insensitive and unknown keys are ignored (files
// written by newer versions still load); missing required content, an
// unparsable document, or a level without nodes fails the whole decode.
// There is no partial pack: the first bad record aborts the load.
func Decode(data []byte) (*LevelPack, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPack, err, "parse level pack")
	}
	if root.Kind == 0 {
		// Empty document: a pack with no info and no levels.
		return NewLevelPack(LevelPackInfo{}, nil), nil
	}
	normalizeKeys(&root)

	var doc packDoc
	if err := root.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPack, err, "parse level pack")
	}
	return doc.resolve()
}

// normalizeKeys lowercases every mapping key in the node tree so that field
// matching tolerates any key casing (startNode, StartNode, startnode).
func normalizeKeys(n *yaml.Node) {
	switch n.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, c := range n.Content {
			normalizeKeys(c)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			if key := n.Content[i]; key.Kind == yaml.ScalarNode {
				key.Value = strings.ToLower(key.Value)
			}
			normalizeKeys(n.Content[i+1])
		}
	}
}

// Load reads the pack from path if it exists. Otherwise it writes fallback
// verbatim to path (the one-time bootstrap persist, so later runs read the
// user's own editable copy) and decodes those same bytes.
//
// A missing fallback when the primary is absent is fatal: with no level
// source at all the application cannot function. A failed bootstrap write
// is fatal too; there is no silent in-memory degradation, since a level
// file the user believes exists but doesn't would make every later save
// path misbehave.
func Load(path string, fallback []byte) (*LevelPack, error) {
	if _, err := os.Stat(path); err != nil {
		if len(fallback) == 0 {
			return nil, errors.New(errors.ErrCodeFallbackNotFound, "no pack at %s and no bundled fallback", path)
		}
		if err := persistBootstrap(path, fallback); err != nil {
			return nil, err
		}
		return Decode(fallback)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	pack, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return pack, nil
}

// persistBootstrap writes the fallback bytes to path, creating parent
// directories as needed.
func persistBootstrap(path string, fallback []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(errors.ErrCodeBootstrapWrite, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, fallback, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeBootstrapWrite, err, "persist bundled pack to %s", path)
	}
	return nil
}
