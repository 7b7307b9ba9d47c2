package factory

import (
	"github.com/automoto/domemask/archetypes"
	"github.com/automoto/domemask/components"
	cfg "github.com/automoto/domemask/config"
	"github.com/automoto/domemask/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDome spawns the dome at the anchor with zero scale; it grows when
// its appear animation plays.
func CreateDome(ecs *ecs.ECS, d cfg.DomeConfig) *donburi.Entry {
	dome := archetypes.Dome.Spawn(ecs)
	components.Dome.Set(dome, &components.DomeData{
		Anchor:         d.AnchorPosition,
		Diameter:       d.Diameter,
		AppearDuration: d.AppearDuration,
		Color:          d.Color,
	})
	components.Transform.SetValue(dome, gamemath.UniformScale(d.AnchorPosition, 0))
	return dome
}
