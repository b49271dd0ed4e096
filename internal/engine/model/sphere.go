package model

import (
	"errors"
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidSegmentCount is returned when a sphere is requested with zero
// longitude or latitude segments.
var ErrInvalidSegmentCount = errors.New("sphere segment counts must be at least 1")

// NewSphere builds a unit UV sphere centered at the origin.
//
// Vertices are laid out row-major: (xSegments+1) vertices per latitude row,
// ySegments+1 rows from the +Y pole (v=0) down to the -Y pole (v=1). Each grid
// quad is split into two triangles. Pole rows collapse to a single point and
// produce degenerate triangles, which are kept.
func NewSphere(xSegments, ySegments uint32) (*Mesh, error) {
	if xSegments == 0 || ySegments == 0 {
		return nil, ErrInvalidSegmentCount
	}

	stride := xSegments + 1
	mesh := &Mesh{
		Vertices: make([]Vertex, 0, int(stride)*int(ySegments+1)),
		Indices:  make([]uint32, 0, int(xSegments)*int(ySegments)*6),
	}

	for y := uint32(0); y <= ySegments; y++ {
		ySegment := float32(y) / float32(ySegments)
		polar := float64(ySegment) * gomath.Pi
		for x := uint32(0); x <= xSegments; x++ {
			xSegment := float32(x) / float32(xSegments)
			longitude := float64(xSegment) * 2 * gomath.Pi

			pos := mgl32.Vec3{
				float32(gomath.Cos(longitude) * gomath.Sin(polar)),
				float32(gomath.Cos(polar)),
				float32(gomath.Sin(longitude) * gomath.Sin(polar)),
			}
			mesh.Vertices = append(mesh.Vertices, Vertex{
				Position: pos,
				Normal:   pos,
				TexCoord: mgl32.Vec2{xSegment, ySegment},
			})
		}
	}

	for y := uint32(0); y < ySegments; y++ {
		for x := uint32(0); x < xSegments; x++ {
			top := y*stride + x
			bottom := (y+1)*stride + x
			mesh.Indices = append(mesh.Indices,
				bottom, top, top+1,
				bottom, top+1, bottom+1,
			)
		}
	}

	mesh.computeBounds()
	return mesh, nil
}
