package archetypes

import (
	"github.com/automoto/domemask/components"
	cfg "github.com/automoto/domemask/config"
	"github.com/automoto/domemask/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Dome = newArchetype(
		tags.Dome,
		components.Dome,
		components.Transform,
	)
	Disappear = newArchetype(
		tags.Disappear,
		components.Disappear,
		components.Transform,
		components.AutoDestroy,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
