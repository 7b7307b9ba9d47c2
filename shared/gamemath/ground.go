package gamemath

import "cogentcore.org/core/math32"

// Up is the world up axis. The ground is the XZ plane.
var Up = math32.Vec3(0, 1, 0)

// GroundPlane returns the horizontal plane passing through point.
func GroundPlane(point math32.Vector3) math32.Plane {
	return math32.Plane{Norm: Up, Off: -point.Y}
}

// IntersectGround casts ray against the horizontal plane through point.
// ok is false when the ray is parallel to the plane or points away from it.
func IntersectGround(ray math32.Ray, point math32.Vector3) (hit math32.Vector3, ok bool) {
	return ray.IntersectPlane(GroundPlane(point))
}
