// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// LineVertexShader transforms line and point vertices.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader fills with a flat color.
//
//go:embed line.frag
var LineFragmentShader string
