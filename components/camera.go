package components

import (
	"github.com/automoto/domemask/shared/gamemath"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	gamemath.Camera

	// Pitch limits in radians
	MinPitch, MaxPitch float32
}

var Camera = donburi.NewComponentType[CameraData]()
