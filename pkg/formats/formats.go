// Package formats loads Wavefront OBJ/MTL assets through the g3n OBJ decoder.
package formats
