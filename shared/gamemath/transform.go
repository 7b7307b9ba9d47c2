// Package gamemath holds the 3D camera and transform math shared by the
// placement controller, the mask synchronizer and the ECS systems.
package gamemath

import "cogentcore.org/core/math32"

// Transform is the position and scale of a world object.
type Transform struct {
	Position math32.Vector3
	Scale    math32.Vector3
}

// UniformScale returns a transform at position with the same scale on every axis.
func UniformScale(position math32.Vector3, scale float32) Transform {
	return Transform{Position: position, Scale: math32.Vec3(scale, scale, scale)}
}

// Equal reports whether both transforms have identical components.
func (t Transform) Equal(o Transform) bool {
	return t.Position == o.Position && t.Scale == o.Scale
}
