// Package shaders provides the embedded GLSL sources for the viewer.
package shaders

import "embed"

// FS holds default.vert and default.frag.
//
//go:embed default.vert default.frag
var FS embed.FS

// Paths of the default program within FS (or within a shader directory
// that overrides it).
const (
	DefaultVertex   = "default.vert"
	DefaultFragment = "default.frag"
)
