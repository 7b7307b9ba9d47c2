package gamemath

import (
	"image"

	"cogentcore.org/core/math32"
)

// Camera is a free-look perspective camera. Yaw turns around the world up
// axis, pitch tilts the view (negative looks down).
type Camera struct {
	Position math32.Vector3
	Yaw      float32 // radians
	Pitch    float32 // radians
	FOV      float32 // vertical field of view in degrees
	Aspect   float32 // width / height
	Near     float32
}

// Forward returns the unit view direction.
func (c *Camera) Forward() math32.Vector3 {
	cp := math32.Cos(c.Pitch)
	return math32.Vec3(math32.Sin(c.Yaw)*cp, math32.Sin(c.Pitch), -math32.Cos(c.Yaw)*cp).Normal()
}

// Basis returns the forward, right and up axes of the view.
func (c *Camera) Basis() (forward, right, up math32.Vector3) {
	forward = c.Forward()
	right = forward.Cross(Up).Normal()
	up = right.Cross(forward)
	return forward, right, up
}

// TanHalfFOV returns tan(fov/2), the half height of the image plane at distance 1.
func (c *Camera) TanHalfFOV() float32 {
	return math32.Tan(math32.DegToRad(c.FOV) / 2)
}

// ViewportPointToRay returns the world ray through a normalized viewport
// point. (0,0) is the top-left corner, (1,1) the bottom-right.
func (c *Camera) ViewportPointToRay(vp math32.Vector2) math32.Ray {
	forward, right, up := c.Basis()
	h := c.TanHalfFOV()
	x := (vp.X*2 - 1) * h * c.Aspect
	y := (1 - vp.Y*2) * h
	dir := forward.Add(right.MulScalar(x)).Add(up.MulScalar(y)).Normal()
	return math32.Ray{Origin: c.Position, Dir: dir}
}

// WorldToViewport projects p onto the viewport. ok is false when p is
// behind the near plane.
func (c *Camera) WorldToViewport(p math32.Vector3) (vp math32.Vector2, ok bool) {
	forward, right, up := c.Basis()
	d := p.Sub(c.Position)
	z := d.Dot(forward)
	if z <= c.Near {
		return vp, false
	}
	h := c.TanHalfFOV()
	x := d.Dot(right) / (z * h * c.Aspect)
	y := d.Dot(up) / (z * h)
	return math32.Vec2((x+1)/2, (1-y)/2), true
}

// Look rotates the view by the given yaw and pitch deltas, clamping pitch
// to [minPitch, maxPitch].
func (c *Camera) Look(dYaw, dPitch, minPitch, maxPitch float32) {
	c.Yaw += dYaw
	c.Pitch = math32.Min(maxPitch, math32.Max(minPitch, c.Pitch+dPitch))
}

// ScreenToViewport converts a pixel position to a normalized viewport point.
func ScreenToViewport(pt image.Point, width, height int) math32.Vector2 {
	return math32.Vec2(float32(pt.X)/float32(width), float32(pt.Y)/float32(height))
}

// ViewportToScreen converts a normalized viewport point to pixel coordinates.
func ViewportToScreen(vp math32.Vector2, width, height int) (x, y float32) {
	return vp.X * float32(width), vp.Y * float32(height)
}

// ViewportCenter is the normalized center of the viewport.
var ViewportCenter = math32.Vec2(0.5, 0.5)
