package model

import (
	"fmt"

	"github.com/g3n/engine/loader/obj"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/facelight/pkg/formats"
)

// cornerKey identifies one face corner. Absent texcoords and normals are -1.
type cornerKey struct {
	position, uv, normal int
	// flat normal used when the corner has no normal of its own
	flat mgl32.Vec3
}

// BuildOBJMesh converts decoded OBJ geometry into an indexed triangle mesh.
// Each unique position/texcoord/normal triple becomes one vertex. Polygons are
// fan-triangulated. Faces without normals get their flat face normal.
func BuildOBJMesh(dec *obj.Decoder) (*Mesh, error) {
	if dec == nil {
		return nil, fmt.Errorf("%w: empty geometry", formats.ErrInvalidOBJ)
	}

	positions := len(dec.Vertices) / 3
	uvs := len(dec.Uvs) / 2
	normals := len(dec.Normals) / 3

	position := func(i int) mgl32.Vec3 {
		return mgl32.Vec3{dec.Vertices[3*i], dec.Vertices[3*i+1], dec.Vertices[3*i+2]}
	}
	// The decoder marks absent indices with a large sentinel.
	optional := func(i, n int) int {
		if i < 0 || i >= n {
			return -1
		}
		return i
	}

	mesh := &Mesh{}
	lookup := make(map[cornerKey]uint32)

	vertexFor := func(key cornerKey) uint32 {
		if key.normal >= 0 {
			key.flat = mgl32.Vec3{}
		}
		if idx, ok := lookup[key]; ok {
			return idx
		}

		v := Vertex{Position: position(key.position), Normal: key.flat}
		if key.uv >= 0 {
			v.TexCoord = mgl32.Vec2{dec.Uvs[2*key.uv], dec.Uvs[2*key.uv+1]}
		}
		if key.normal >= 0 {
			v.Normal = mgl32.Vec3{dec.Normals[3*key.normal], dec.Normals[3*key.normal+1], dec.Normals[3*key.normal+2]}
		}

		idx := uint32(len(mesh.Vertices))
		mesh.Vertices = append(mesh.Vertices, v)
		lookup[key] = idx
		return idx
	}

	for oi := range dec.Objects {
		for fi, face := range dec.Objects[oi].Faces {
			n := len(face.Vertices)
			if n < 3 {
				continue
			}
			corners := make([]cornerKey, n)
			for i, p := range face.Vertices {
				if p < 0 || p >= positions {
					return nil, fmt.Errorf("%w: object %q face %d: position index %d out of range [0,%d)",
						formats.ErrInvalidOBJ, dec.Objects[oi].Name, fi, p, positions)
				}
				corners[i] = cornerKey{position: p, uv: -1, normal: -1}
				if i < len(face.Uvs) {
					corners[i].uv = optional(face.Uvs[i], uvs)
				}
				if i < len(face.Normals) {
					corners[i].normal = optional(face.Normals[i], normals)
				}
			}

			p0 := position(corners[0].position)
			for i := 1; i+1 < n; i++ {
				c0, c1, c2 := corners[0], corners[i], corners[i+1]
				flat := faceNormal(p0, position(c1.position), position(c2.position))
				c0.flat, c1.flat, c2.flat = flat, flat, flat
				mesh.Indices = append(mesh.Indices, vertexFor(c0), vertexFor(c1), vertexFor(c2))
			}
		}
	}

	if len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("%w: empty geometry", formats.ErrInvalidOBJ)
	}
	mesh.computeBounds()
	return mesh, nil
}

// faceNormal returns the unit normal of a counter-clockwise triangle, or +Y for
// degenerate triangles.
func faceNormal(p0, p1, p2 mgl32.Vec3) mgl32.Vec3 {
	n := p1.Sub(p0).Cross(p2.Sub(p0))
	if n.Len() < 1e-8 {
		return mgl32.Vec3{0, 1, 0}
	}
	return n.Normalize()
}
