package factory

import (
	"cogentcore.org/core/math32"
	"github.com/automoto/domemask/archetypes"
	"github.com/automoto/domemask/components"
	cfg "github.com/automoto/domemask/config"
	"github.com/automoto/domemask/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the free-look camera. Angles in c are degrees.
func CreateCamera(ecs *ecs.ECS, c cfg.CameraConfig, width, height int) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Camera: gamemath.Camera{
			Position: c.Position,
			Yaw:      math32.DegToRad(c.Yaw),
			Pitch:    math32.DegToRad(c.Pitch),
			FOV:      c.FOV,
			Aspect:   float32(width) / float32(height),
			Near:     c.Near,
		},
		MinPitch: math32.DegToRad(c.MinPitch),
		MaxPitch: math32.DegToRad(c.MaxPitch),
	})
	return camera
}
