package scene

import _ "embed"

// DefaultVertexSource is the vertex shader used when no source is given.
// It reads aVertexPosition and aVertexColor and applies
// uProjectionMatrix * uModelViewMatrix.
//
//go:embed shaders/cube.vert
var DefaultVertexSource string

// DefaultFragmentSource is the fragment shader used when no source is given.
//
//go:embed shaders/cube.frag
var DefaultFragmentSource string
