// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// FaceVertexShader transforms the lit head model.
//
//go:embed face.vert
var FaceVertexShader string

// FaceFragmentShader shades the head model with a Phong point light.
//
//go:embed face.frag
var FaceFragmentShader string

// LightVertexShader transforms the light marker sphere.
//
//go:embed light.vert
var LightVertexShader string

// LightFragmentShader draws the light marker in a flat color.
//
//go:embed light.frag
var LightFragmentShader string
