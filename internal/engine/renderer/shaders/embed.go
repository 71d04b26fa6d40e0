// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// PhongVertexShader transforms mesh vertices and normals to world space.
//
//go:embed phong.vert
var PhongVertexShader string

// PhongFragmentShader shades a glossy surface under directional lights.
//
//go:embed phong.frag
var PhongFragmentShader string
