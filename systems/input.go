package systems

import (
	"image"

	"github.com/automoto/domemask/archetypes"
	"github.com/automoto/domemask/components"
	cfg "github.com/automoto/domemask/config"
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls raw input and updates the Input component.
// Must run after the UI update (for hover state) and before the camera and
// placement systems.
func UpdateInput(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
			}
		}
	}

	x, y := ebiten.CursorPosition()
	input.LastCursor = input.Cursor
	input.Cursor = image.Pt(x, y)
	input.OverUI = ebuiinput.UIHovered
}

// GetOrCreateInput returns the singleton Input component, creating if needed.
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		// Zero-value InputData is correct (all bools false)
		entry = archetypes.Input.Spawn(ecs)
	}
	return components.Input.Get(entry)
}

// Pointer exposes the Input component's cursor to the placement controller.
type Pointer struct {
	ecs *ecs.ECS
}

func NewPointer(ecs *ecs.ECS) *Pointer {
	return &Pointer{ecs: ecs}
}

// Position returns the cursor in screen pixels.
func (p *Pointer) Position() image.Point {
	return GetOrCreateInput(p.ecs).Cursor
}

// OverUI reports whether the cursor is over a HUD widget.
func (p *Pointer) OverUI() bool {
	return GetOrCreateInput(p.ecs).OverUI
}
