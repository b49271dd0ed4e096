package app

import (
	"github.com/go-gl/mathgl/mgl32"
)

// HeadTransform returns the model matrix of the head: turned -90 degrees
// around Y so it faces the camera, then scaled by modelScale*scale.
func HeadTransform(modelScale, scale float32) mgl32.Mat4 {
	s := modelScale * scale
	return mgl32.HomogRotate3DY(mgl32.DegToRad(-90)).Mul4(mgl32.Scale3D(s, s, s))
}

// SphereTransform returns the model matrix of the light marker at pos.
func SphereTransform(pos mgl32.Vec3, scale float32) mgl32.Mat4 {
	return mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).Mul4(mgl32.Scale3D(scale, scale, scale))
}
