package factory

import (
	"cogentcore.org/core/math32"
	"github.com/automoto/domemask/archetypes"
	"github.com/automoto/domemask/components"
	cfg "github.com/automoto/domemask/config"
	"github.com/automoto/domemask/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDisappearEffect spawns a one-shot dome ghost at position/scale that
// grows, fades and destroys itself.
func CreateDisappearEffect(ecs *ecs.ECS, position, scale math32.Vector3, e cfg.EffectsConfig) *donburi.Entry {
	effect := archetypes.Disappear.Spawn(ecs)

	components.Transform.SetValue(effect, gamemath.Transform{Position: position, Scale: scale})
	data := &components.DisappearData{
		BaseScale: scale,
		Growth:    e.DisappearGrowth,
		Progress:  1,
		Color:     e.Color,
	}
	if e.DisappearDuration > 0 {
		data.Progress = 0
		data.Tween = gween.New(0, 1, e.DisappearDuration, ease.OutQuad)
	}
	components.Disappear.Set(effect, data)

	frames := int(math32.Ceil(e.DisappearDuration * float32(ebiten.TPS())))
	if frames < 1 {
		frames = 1
	}
	components.AutoDestroy.Set(effect, &components.AutoDestroyData{
		FramesRemaining: frames,
	})
	return effect
}
