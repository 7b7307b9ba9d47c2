package components

import (
	"image/color"

	"cogentcore.org/core/math32"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DomeData stores the dome's placement and appear animation state
type DomeData struct {
	AllowInteraction bool
	Anchor           math32.Vector3 // dome moves on the horizontal plane through this point
	Diameter         float32        // scale reached at the end of the appear animation
	AppearDuration   float32        // seconds
	Appear           *gween.Tween   // nil when not animating
	Color            color.RGBA
}

var Dome = donburi.NewComponentType[DomeData]()
