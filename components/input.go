package components

import (
	"image"

	cfg "github.com/automoto/domemask/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	Cursor     image.Point // pointer position this frame
	LastCursor image.Point // pointer position last frame
	OverUI     bool        // pointer is over an interactive UI widget
}

// Pressed reports whether the action is held this frame
func (in *InputData) Pressed(a cfg.ActionID) bool {
	return in.Current[a]
}

// JustPressed reports whether the action went down this frame
func (in *InputData) JustPressed(a cfg.ActionID) bool {
	return in.Current[a] && !in.Previous[a]
}

// JustReleased reports whether the action went up this frame
func (in *InputData) JustReleased(a cfg.ActionID) bool {
	return !in.Current[a] && in.Previous[a]
}

// CursorDelta returns how far the pointer moved since last frame
func (in *InputData) CursorDelta() image.Point {
	return in.Cursor.Sub(in.LastCursor)
}

var Input = donburi.NewComponentType[InputData]()
