package components

import (
	"image/color"

	"cogentcore.org/core/math32"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DisappearData animates a dome ghost growing and fading out
type DisappearData struct {
	BaseScale math32.Vector3
	Growth    float32      // scale multiplier at the end
	Progress  float32      // 0..1
	Tween     *gween.Tween // drives Progress
	Color     color.RGBA
}

var Disappear = donburi.NewComponentType[DisappearData]()

// AutoDestroyData marks entities that should be destroyed after a duration
type AutoDestroyData struct {
	FramesRemaining int // frames until destruction
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
