// Package placement implements the dome placement state machine: the dome
// follows the pointer until a tap commits it, and later taps move it.
//
// A gesture counts as a tap when the world point under the viewport center
// moved less than MaxCameraTravel between press and release. Dragging with
// the same button turns the camera, which moves that point, so camera
// drags never place the dome.
package placement

import (
	"errors"
	"fmt"
	"image"

	"cogentcore.org/core/math32"
	"github.com/automoto/domemask/shared/gamemath"
	"github.com/sirupsen/logrus"
)

var (
	// ErrMissingCollaborator is returned by New when a dependency is nil.
	ErrMissingCollaborator = errors.New("placement: missing collaborator")
	// ErrInvalidConfig is returned by New for an unusable configuration.
	ErrInvalidConfig = errors.New("placement: invalid config")
)

// Camera yields world rays for normalized viewport points.
type Camera interface {
	ViewportPointToRay(vp math32.Vector2) math32.Ray
}

// DomeVisual is the animated dome the controller moves around.
type DomeVisual interface {
	AnimateIn()
	MoveToScreenPoint(pt image.Point)
	SetAllowInteraction(allow bool)
	Transform() gamemath.Transform
}

// EffectSpawner plays one-shot effects. Spawned effects own themselves.
type EffectSpawner interface {
	DisappearFrom(position, scale math32.Vector3)
}

// Pointer reports the pointer position and UI occlusion.
type Pointer interface {
	Position() image.Point
	OverUI() bool
}

// Mask is the global mask state toggled by activation.
type Mask interface {
	EnableFeature()
	DisableFeature()
	Reset()
}

// Deps groups the collaborators of a Controller.
type Deps struct {
	Camera  Camera
	Visual  DomeVisual
	Effects EffectSpawner
	Pointer Pointer
	Mask    Mask
}

// Config holds the controller settings.
type Config struct {
	// MaxCameraTravel is the largest look-point travel, in world units,
	// still treated as a tap.
	MaxCameraTravel float32
	// AnchorPosition fixes the height of the plane look samples are taken on.
	AnchorPosition math32.Vector3
	// ResetMaskOnDisable zeroes the mask on Deactivate before it is disabled.
	ResetMaskOnDisable bool
}

// Validate rejects a non-positive travel threshold.
func (c Config) Validate() error {
	if !(c.MaxCameraTravel > 0) {
		return fmt.Errorf("%w: max camera travel must be positive, got %v", ErrInvalidConfig, c.MaxCameraTravel)
	}
	return nil
}

type sample struct {
	pos math32.Vector3
	ok  bool
}

// Controller is the placement state machine. All methods must be called
// from the frame loop goroutine.
type Controller struct {
	cfg  Config
	deps Deps
	log  logrus.FieldLogger

	state        State
	inputEnabled bool
	gesture      bool
	start        sample
}

// New builds a controller. It is inactive until Activate.
func New(cfg Config, deps Deps, log logrus.FieldLogger) (*Controller, error) {
	switch {
	case deps.Camera == nil:
		return nil, fmt.Errorf("%w: camera", ErrMissingCollaborator)
	case deps.Visual == nil:
		return nil, fmt.Errorf("%w: dome visual", ErrMissingCollaborator)
	case deps.Effects == nil:
		return nil, fmt.Errorf("%w: effect spawner", ErrMissingCollaborator)
	case deps.Pointer == nil:
		return nil, fmt.Errorf("%w: pointer", ErrMissingCollaborator)
	case deps.Mask == nil:
		return nil, fmt.Errorf("%w: mask", ErrMissingCollaborator)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Controller{
		cfg:  cfg,
		deps: deps,
		log:  log.WithField("component", "placement"),
	}, nil
}

// State returns the current placement state.
func (c *Controller) State() State {
	return c.state
}

// Active reports whether gesture input is enabled.
func (c *Controller) Active() bool {
	return c.inputEnabled
}

// SetMaxCameraTravel replaces the tap threshold. Non-positive values are ignored.
func (c *Controller) SetMaxCameraTravel(travel float32) {
	if travel > 0 {
		c.cfg.MaxCameraTravel = travel
	}
}

// Activate enables input, turns the mask on at zero, plays the dome's appear
// animation and waits for the initial placement.
func (c *Controller) Activate() {
	c.inputEnabled = true
	c.gesture = false
	c.deps.Mask.EnableFeature()
	c.deps.Mask.Reset()
	c.deps.Visual.AnimateIn()
	c.setState(AwaitingInitialPlacement)
}

// Deactivate disables input and switches the mask off. With
// ResetMaskOnDisable the mask is zeroed first.
func (c *Controller) Deactivate() {
	c.inputEnabled = false
	c.gesture = false
	if c.cfg.ResetMaskOnDisable {
		c.deps.Mask.Reset()
	}
	c.deps.Mask.DisableFeature()
	c.log.Debug("deactivated")
}

// OnGestureStart records the look sample at press time.
func (c *Controller) OnGestureStart() {
	if !c.inputEnabled {
		return
	}
	c.start = c.lookSample()
	c.gesture = true
}

// OnGestureEnd classifies the gesture and commits a placement on a tap.
func (c *Controller) OnGestureEnd() {
	if !c.inputEnabled || !c.gesture {
		return
	}
	c.gesture = false

	end := c.lookSample()
	if !c.start.ok || !end.ok {
		c.log.Debug("look ray missed the ground, gesture ignored")
		return
	}

	travel := c.start.pos.DistanceTo(end.pos)
	fields := logrus.Fields{"travel": travel, "threshold": c.cfg.MaxCameraTravel}
	if travel >= c.cfg.MaxCameraTravel {
		c.log.WithFields(fields).Debug("camera drag, no placement")
		return
	}
	c.log.WithFields(fields).Debug("tap")
	c.commit()
}

// Tick keeps the dome under the pointer until the first placement.
func (c *Controller) Tick() {
	if !c.inputEnabled || c.state != AwaitingInitialPlacement {
		return
	}
	c.deps.Visual.MoveToScreenPoint(c.deps.Pointer.Position())
}

// lookSample intersects the ray through the viewport center with the
// horizontal plane through the anchor. The real pointer position is not
// used here on purpose; it only decides where the dome goes.
func (c *Controller) lookSample() sample {
	ray := c.deps.Camera.ViewportPointToRay(gamemath.ViewportCenter)
	pos, ok := gamemath.IntersectGround(ray, c.cfg.AnchorPosition)
	return sample{pos: pos, ok: ok}
}

func (c *Controller) commit() {
	if c.deps.Pointer.OverUI() {
		c.log.Debug("pointer over UI, placement swallowed")
	} else {
		if c.state != AwaitingInitialPlacement {
			t := c.deps.Visual.Transform()
			c.deps.Effects.DisappearFrom(t.Position, t.Scale)
		}
		c.deps.Visual.MoveToScreenPoint(c.deps.Pointer.Position())
		c.deps.Visual.AnimateIn()
	}
	// Initial placement ends even when the tap was swallowed by the UI.
	c.setState(Placed)
	c.deps.Visual.SetAllowInteraction(true)
}

func (c *Controller) setState(s State) {
	if c.state != s {
		c.log.WithFields(logrus.Fields{"from": c.state, "to": s}).Debug("state change")
	}
	c.state = s
}
