// Package assets bundles the default level packs shipped with the binary.
package assets

import (
	_ "embed"
)

//go:embed beginner.yaml
var beginner []byte

// Beginner returns the bundled beginner pack as raw YAML. Used as the
// bootstrap fallback when no user-saved pack exists yet.
func Beginner() []byte {
	return beginner
}
