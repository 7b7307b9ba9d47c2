package systems

import (
	"image"

	"cogentcore.org/core/math32"
	"github.com/automoto/domemask/components"
	"github.com/automoto/domemask/config"
	"github.com/automoto/domemask/shared/gamemath"
	"github.com/automoto/domemask/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// frameDelta is the length of one update tick in seconds.
func frameDelta() float32 {
	return 1 / float32(ebiten.TPS())
}

// UpdateDome advances the dome's appear animation.
func UpdateDome(ecs *ecs.ECS) {
	tags.Dome.Each(ecs.World, func(e *donburi.Entry) {
		dome := components.Dome.Get(e)
		if dome.Appear == nil {
			return
		}
		s, done := dome.Appear.Update(frameDelta())
		components.Transform.Get(e).Scale = math32.Vec3(s, s, s)
		if done {
			dome.Appear = nil
		}
	})
}

// DomeVisual drives the dome entity for the placement controller and
// exposes its transform to the mask synchronizer.
type DomeVisual struct {
	entry  *donburi.Entry
	camera *CameraView
}

func NewDomeVisual(dome *donburi.Entry, camera *CameraView) *DomeVisual {
	return &DomeVisual{entry: dome, camera: camera}
}

// AnimateIn restarts the appear animation from zero scale.
func (v *DomeVisual) AnimateIn() {
	dome := components.Dome.Get(v.entry)
	t := components.Transform.Get(v.entry)
	if dome.AppearDuration <= 0 {
		dome.Appear = nil
		t.Scale = math32.Vec3(dome.Diameter, dome.Diameter, dome.Diameter)
		return
	}
	dome.Appear = gween.New(0, dome.Diameter, dome.AppearDuration, ease.OutBack)
	t.Scale = math32.Vector3{}
}

// MoveToScreenPoint puts the dome where the camera ray through pt meets the
// anchor plane. Points above the horizon leave the dome where it is.
func (v *DomeVisual) MoveToScreenPoint(pt image.Point) {
	dome := components.Dome.Get(v.entry)
	vp := gamemath.ScreenToViewport(pt, config.C.Width, config.C.Height)
	hit, ok := gamemath.IntersectGround(v.camera.ViewportPointToRay(vp), dome.Anchor)
	if !ok {
		return
	}
	components.Transform.Get(v.entry).Position = hit
}

func (v *DomeVisual) SetAllowInteraction(allow bool) {
	components.Dome.Get(v.entry).AllowInteraction = allow
}

func (v *DomeVisual) AllowInteraction() bool {
	return components.Dome.Get(v.entry).AllowInteraction
}

func (v *DomeVisual) Transform() gamemath.Transform {
	return *components.Transform.Get(v.entry)
}

// Animating reports whether the appear animation is still running.
func (v *DomeVisual) Animating() bool {
	return components.Dome.Get(v.entry).Appear != nil
}
