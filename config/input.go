package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical input action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionPlace
	ActionToggleActive
	ActionLookLeft
	ActionLookRight
	ActionLookUp
	ActionLookDown
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys and mouse buttons bound to an action
type InputBinding struct {
	Keys         []ebiten.Key
	MouseButtons []ebiten.MouseButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Keyboard look speed in degrees per frame
	KeyLookSpeed float32
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		KeyLookSpeed: 1.5,
		Bindings: map[ActionID]InputBinding{
			ActionPlace: {
				Keys:         []ebiten.Key{ebiten.KeySpace},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
			},
			ActionToggleActive: {
				Keys: []ebiten.Key{ebiten.KeyF1},
			},
			ActionLookLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			},
			ActionLookRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			},
			ActionLookUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
			},
			ActionLookDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			},
		},
	}
}
