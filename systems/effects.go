package systems

import (
	"cogentcore.org/core/math32"
	"github.com/automoto/domemask/components"
	"github.com/automoto/domemask/config"
	"github.com/automoto/domemask/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances disappear effects and removes expired ones
func UpdateEffects(ecs *ecs.ECS) {
	updateDisappearEffects(ecs)
	updateAutoDestroy(ecs)
}

// updateDisappearEffects grows the ghost dome while its tween runs
func updateDisappearEffects(ecs *ecs.ECS) {
	components.Disappear.Each(ecs.World, func(e *donburi.Entry) {
		d := components.Disappear.Get(e)
		if d.Tween != nil {
			var done bool
			d.Progress, done = d.Tween.Update(frameDelta())
			if done {
				d.Tween = nil
			}
		}
		grow := 1 + (d.Growth-1)*d.Progress
		components.Transform.Get(e).Scale = d.BaseScale.MulScalar(grow)
	})
}

// updateAutoDestroy removes entities whose frame countdown ran out
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.FramesRemaining--
		if ad.FramesRemaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}

// EffectSpawner spawns fire-and-forget effect entities.
type EffectSpawner struct {
	ecs *ecs.ECS
}

func NewEffectSpawner(ecs *ecs.ECS) *EffectSpawner {
	return &EffectSpawner{ecs: ecs}
}

// DisappearFrom spawns a disappear effect; the entity removes itself.
func (s *EffectSpawner) DisappearFrom(position, scale math32.Vector3) {
	factory.CreateDisappearEffect(s.ecs, position, scale, config.Effects)
}
