package systems

import (
	"errors"

	"cogentcore.org/core/math32"
	"github.com/automoto/domemask/components"
	"github.com/automoto/domemask/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera keeps the aspect ratio in sync with the window and turns the
// view while the placement action is dragged or look keys are held.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Aspect = float32(config.C.Width) / float32(config.C.Height)

	input := GetOrCreateInput(e)
	var dYaw, dPitch float32

	// Drag to look. The press frame has no meaningful delta yet.
	place := config.Dome.PlacementAction
	if input.Pressed(place) && !input.JustPressed(place) && !input.OverUI {
		d := input.CursorDelta()
		sensitivity := math32.DegToRad(config.Camera.LookSensitivity)
		dYaw += float32(d.X) * sensitivity
		dPitch -= float32(d.Y) * sensitivity
	}

	keySpeed := math32.DegToRad(config.Input.KeyLookSpeed)
	if input.Pressed(config.ActionLookLeft) {
		dYaw -= keySpeed
	}
	if input.Pressed(config.ActionLookRight) {
		dYaw += keySpeed
	}
	if input.Pressed(config.ActionLookUp) {
		dPitch += keySpeed
	}
	if input.Pressed(config.ActionLookDown) {
		dPitch -= keySpeed
	}

	if dYaw != 0 || dPitch != 0 {
		camera.Look(dYaw, dPitch, camera.MinPitch, camera.MaxPitch)
	}
}

// CameraView gives the placement controller rays from the scene camera.
type CameraView struct {
	entry *donburi.Entry
}

// NewCameraView binds to the camera entity; the camera must already exist.
func NewCameraView(e *ecs.ECS) (*CameraView, error) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return nil, errors.New("no camera entity")
	}
	return &CameraView{entry: entry}, nil
}

// ViewportPointToRay returns the camera ray through vp.
func (c *CameraView) ViewportPointToRay(vp math32.Vector2) math32.Ray {
	return components.Camera.Get(c.entry).ViewportPointToRay(vp)
}
