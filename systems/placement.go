package systems

import (
	"github.com/automoto/domemask/config"
	"github.com/automoto/domemask/mask"
	"github.com/automoto/domemask/placement"
	"github.com/yohamta/donburi/ecs"
)

// NewPlacementSystem feeds the placement action's press and release to the
// controller as gesture start and end, then ticks it. The toggle action
// activates or deactivates the controller.
func NewPlacementSystem(ctrl *placement.Controller) ecs.System {
	return func(e *ecs.ECS) {
		input := GetOrCreateInput(e)

		if input.JustPressed(config.ActionToggleActive) {
			if ctrl.Active() {
				ctrl.Deactivate()
			} else {
				ctrl.Activate()
			}
		}

		place := config.Dome.PlacementAction
		if input.JustPressed(place) {
			ctrl.OnGestureStart()
		}
		if input.JustReleased(place) {
			ctrl.OnGestureEnd()
		}

		ctrl.Tick()
	}
}

// NewMaskSystem pushes the dome transform into the shader globals while the
// controller is active. Must run after every system that moves or scales
// the dome.
func NewMaskSystem(sync *mask.Synchronizer, ctrl *placement.Controller) ecs.System {
	return func(e *ecs.ECS) {
		if !ctrl.Active() {
			return
		}
		sync.SyncIfChanged()
	}
}
