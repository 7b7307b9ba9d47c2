// Package mask keeps the global spherical-mask shader state in step with
// the dome's transform.
package mask

import (
	"cogentcore.org/core/math32"
	"github.com/automoto/domemask/shared/gamemath"
)

// Sink receives global shader state. Implementations are process-wide and
// expect a single writer.
type Sink interface {
	ResolveID(name string) int
	SetVector(id int, v math32.Vector3)
	SetFloat(id int, f float32)
	EnableKeyword(name string)
	DisableKeyword(name string)
}

// TransformSource exposes the transform the mask is derived from.
type TransformSource interface {
	Transform() gamemath.Transform
}

// Params describes the spherical clip region.
type Params struct {
	Center math32.Vector3
	Radius float32
}

// ParamsFor derives mask parameters from a transform. The dome mesh has unit
// diameter, so the radius is half the X scale plus margin.
func ParamsFor(t gamemath.Transform, margin float32) Params {
	return Params{
		Center: t.Position,
		Radius: t.Scale.X/2 + margin,
	}
}
