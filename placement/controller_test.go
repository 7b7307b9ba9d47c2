package placement

import (
	"image"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/automoto/domemask/mask"
	"github.com/automoto/domemask/shared/gamemath"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// lookCamera looks straight down from Origin, so the look sample is the
// origin projected onto the anchor plane. Moving Origin simulates a camera drag.
type lookCamera struct {
	Origin math32.Vector3
}

func (c *lookCamera) ViewportPointToRay(vp math32.Vector2) math32.Ray {
	return math32.Ray{Origin: c.Origin, Dir: math32.Vec3(0, -1, 0)}
}

type fakeVisual struct {
	transform gamemath.Transform
	moves     []image.Point
	animateIn int
	allow     bool
}

func (v *fakeVisual) AnimateIn() { v.animateIn++ }

func (v *fakeVisual) MoveToScreenPoint(pt image.Point) {
	v.moves = append(v.moves, pt)
	v.transform.Position = math32.Vec3(float32(pt.X), 0, float32(pt.Y))
}

func (v *fakeVisual) SetAllowInteraction(allow bool) { v.allow = allow }

func (v *fakeVisual) Transform() gamemath.Transform { return v.transform }

func (v *fakeVisual) resetCalls() {
	v.moves = nil
	v.animateIn = 0
}

type mockEffects struct {
	mock.Mock
}

func (m *mockEffects) DisappearFrom(position, scale math32.Vector3) {
	m.Called(position, scale)
}

type fakePointer struct {
	pos    image.Point
	overUI bool
}

func (p *fakePointer) Position() image.Point { return p.pos }
func (p *fakePointer) OverUI() bool          { return p.overUI }

type fakeMask struct {
	calls []string
}

func (m *fakeMask) EnableFeature()  { m.calls = append(m.calls, "enable") }
func (m *fakeMask) DisableFeature() { m.calls = append(m.calls, "disable") }
func (m *fakeMask) Reset()          { m.calls = append(m.calls, "reset") }

type fixture struct {
	ctrl    *Controller
	camera  *lookCamera
	visual  *fakeVisual
	effects *mockEffects
	pointer *fakePointer
	mask    *fakeMask
}

func newFixture(t *testing.T, cfg Config) *fixture {
	t.Helper()
	f := &fixture{
		camera:  &lookCamera{Origin: math32.Vec3(0, 10, 0)},
		visual:  &fakeVisual{transform: gamemath.UniformScale(math32.Vector3{}, 4)},
		effects: &mockEffects{},
		pointer: &fakePointer{pos: image.Pt(100, 50)},
		mask:    &fakeMask{},
	}
	log, _ := test.NewNullLogger()
	ctrl, err := New(cfg, Deps{
		Camera:  f.camera,
		Visual:  f.visual,
		Effects: f.effects,
		Pointer: f.pointer,
		Mask:    f.mask,
	}, log)
	require.NoError(t, err)
	f.ctrl = ctrl
	return f
}

var defaultConfig = Config{MaxCameraTravel: 20}

// gesture performs a press/release pair with the camera look point moving
// by travel along X.
func (f *fixture) gesture(travel float32) {
	f.ctrl.OnGestureStart()
	f.camera.Origin.X += travel
	f.ctrl.OnGestureEnd()
}

func TestNewFailsFast(t *testing.T) {
	full := Deps{
		Camera:  &lookCamera{},
		Visual:  &fakeVisual{},
		Effects: &mockEffects{},
		Pointer: &fakePointer{},
		Mask:    &fakeMask{},
	}
	for name, deps := range map[string]Deps{
		"camera":  {Visual: full.Visual, Effects: full.Effects, Pointer: full.Pointer, Mask: full.Mask},
		"visual":  {Camera: full.Camera, Effects: full.Effects, Pointer: full.Pointer, Mask: full.Mask},
		"effects": {Camera: full.Camera, Visual: full.Visual, Pointer: full.Pointer, Mask: full.Mask},
		"pointer": {Camera: full.Camera, Visual: full.Visual, Effects: full.Effects, Mask: full.Mask},
		"mask":    {Camera: full.Camera, Visual: full.Visual, Effects: full.Effects, Pointer: full.Pointer},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := New(defaultConfig, deps, nil)
			assert.ErrorIs(t, err, ErrMissingCollaborator)
		})
	}

	_, err := New(Config{MaxCameraTravel: 0}, full, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestActivate(t *testing.T) {
	f := newFixture(t, defaultConfig)
	f.ctrl.Activate()

	assert.True(t, f.ctrl.Active())
	assert.Equal(t, AwaitingInitialPlacement, f.ctrl.State())
	assert.Equal(t, 1, f.visual.animateIn)
	assert.Equal(t, []string{"enable", "reset"}, f.mask.calls)
}

func TestTapCommits(t *testing.T) {
	// threshold 20, travel 5
	f := newFixture(t, defaultConfig)
	f.ctrl.Activate()
	f.visual.resetCalls()

	f.gesture(5)

	assert.Equal(t, Placed, f.ctrl.State())
	assert.Equal(t, []image.Point{f.pointer.pos}, f.visual.moves)
	assert.Equal(t, 1, f.visual.animateIn)
	assert.True(t, f.visual.allow)
	f.effects.AssertNotCalled(t, "DisappearFrom", mock.Anything, mock.Anything)
}

func TestDragDoesNotCommit(t *testing.T) {
	// threshold 20, travel 25
	f := newFixture(t, defaultConfig)
	f.ctrl.Activate()
	f.visual.resetCalls()

	f.gesture(25)

	assert.Equal(t, AwaitingInitialPlacement, f.ctrl.State())
	assert.Empty(t, f.visual.moves)
	assert.Zero(t, f.visual.animateIn)
	assert.False(t, f.visual.allow)
}

func TestTravelAtThresholdIsDrag(t *testing.T) {
	f := newFixture(t, defaultConfig)
	f.ctrl.Activate()
	f.gesture(5)
	f.visual.resetCalls()

	f.gesture(20)
	assert.Empty(t, f.visual.moves)
	f.effects.AssertNotCalled(t, "DisappearFrom", mock.Anything, mock.Anything)
}

func TestDragsNeverChangeState(t *testing.T) {
	for _, travel := range []float32{20, 21, 50, 1000} {
		f := newFixture(t, defaultConfig)
		f.ctrl.Activate()
		f.visual.resetCalls()
		f.gesture(travel)
		assert.Equal(t, AwaitingInitialPlacement, f.ctrl.State(), "travel %v", travel)
		assert.Empty(t, f.visual.moves, "travel %v", travel)

		f.gesture(-2)
		f.visual.resetCalls()
		f.gesture(travel)
		assert.Equal(t, Placed, f.ctrl.State(), "travel %v", travel)
		assert.Empty(t, f.visual.moves, "travel %v", travel)
	}
}

func TestLaterCommitsDispatchDisappearAtPreMoveTransform(t *testing.T) {
	f := newFixture(t, defaultConfig)
	f.ctrl.Activate()
	f.gesture(1)
	require.Equal(t, Placed, f.ctrl.State())

	for i := 1; i <= 3; i++ {
		before := f.visual.Transform()
		f.effects.On("DisappearFrom", before.Position, before.Scale).Return().Once()
		f.pointer.pos = image.Pt(10*i, 20*i)
		f.visual.resetCalls()

		f.gesture(0)

		f.effects.AssertExpectations(t)
		assert.Equal(t, []image.Point{f.pointer.pos}, f.visual.moves)
		assert.Equal(t, 1, f.visual.animateIn)
		assert.NotEqual(t, before.Position, f.visual.Transform().Position)
	}
	f.effects.AssertNumberOfCalls(t, "DisappearFrom", 3)
}

// The first resolved tap always leaves initial placement, even when the UI
// swallows it. Kept deliberately until product confirms otherwise.
func TestSwallowedTapStillEndsInitialPlacement(t *testing.T) {
	f := newFixture(t, defaultConfig)
	f.ctrl.Activate()
	f.visual.resetCalls()
	f.pointer.overUI = true

	f.gesture(1)

	assert.Equal(t, Placed, f.ctrl.State())
	assert.True(t, f.visual.allow)
	assert.Empty(t, f.visual.moves)
	assert.Zero(t, f.visual.animateIn)
	f.effects.AssertNotCalled(t, "DisappearFrom", mock.Anything, mock.Anything)

	// The dome no longer follows the pointer.
	f.ctrl.Tick()
	assert.Empty(t, f.visual.moves)
}

func TestTapOverUIAfterPlacementDoesNotDispatchEffect(t *testing.T) {
	f := newFixture(t, defaultConfig)
	f.ctrl.Activate()
	f.gesture(1)
	f.visual.resetCalls()
	f.pointer.overUI = true

	f.gesture(1)

	assert.Empty(t, f.visual.moves)
	f.effects.AssertNotCalled(t, "DisappearFrom", mock.Anything, mock.Anything)
}

func TestTickFollowsPointerWhileAwaiting(t *testing.T) {
	f := newFixture(t, defaultConfig)
	f.ctrl.Activate()
	f.visual.resetCalls()

	var want []image.Point
	for i := 0; i < 5; i++ {
		f.pointer.pos = image.Pt(i*7, i*3)
		want = append(want, f.pointer.pos)
		f.ctrl.Tick()
	}
	assert.Equal(t, want, f.visual.moves)

	f.gesture(0)
	f.visual.resetCalls()
	f.ctrl.Tick()
	assert.Empty(t, f.visual.moves)
}

func TestTickDoesNothingWhenInactive(t *testing.T) {
	f := newFixture(t, defaultConfig)
	f.ctrl.Tick()
	assert.Empty(t, f.visual.moves)
}

func TestLookSampleUsesViewportCenterNotPointer(t *testing.T) {
	f := newFixture(t, defaultConfig)
	f.ctrl.Activate()
	f.visual.resetCalls()

	// A big pointer move with a still camera is a tap.
	f.ctrl.OnGestureStart()
	f.pointer.pos = image.Pt(900, 700)
	f.ctrl.OnGestureEnd()

	assert.Equal(t, Placed, f.ctrl.State())
	assert.Equal(t, []image.Point{image.Pt(900, 700)}, f.visual.moves)
}

func TestGesturesIgnoredWhileInactive(t *testing.T) {
	f := newFixture(t, defaultConfig)
	f.gesture(0)
	assert.Empty(t, f.visual.moves)

	f.ctrl.Activate()
	f.ctrl.OnGestureStart()
	f.ctrl.Deactivate()
	f.ctrl.OnGestureEnd()
	assert.Equal(t, AwaitingInitialPlacement, f.ctrl.State())
}

func TestGestureEndWithoutStartIsIgnored(t *testing.T) {
	f := newFixture(t, defaultConfig)
	f.ctrl.Activate()
	f.visual.resetCalls()
	f.ctrl.OnGestureEnd()
	assert.Equal(t, AwaitingInitialPlacement, f.ctrl.State())
	assert.Empty(t, f.visual.moves)
}

func TestLookRayMissingGroundIgnoresGesture(t *testing.T) {
	f := newFixture(t, defaultConfig)
	f.ctrl.Activate()
	f.visual.resetCalls()
	// Below the anchor plane looking down: the ray never reaches it.
	f.camera.Origin.Y = -1
	f.gesture(0)
	assert.Equal(t, AwaitingInitialPlacement, f.ctrl.State())
	assert.Empty(t, f.visual.moves)
}

func TestAnchorHeightDefinesPlane(t *testing.T) {
	f := newFixture(t, Config{MaxCameraTravel: 20, AnchorPosition: math32.Vec3(0, 5, 0)})
	f.ctrl.Activate()
	f.camera.Origin.Y = 4
	f.gesture(0)
	assert.Equal(t, AwaitingInitialPlacement, f.ctrl.State())

	f.camera.Origin.Y = 6
	f.gesture(0)
	assert.Equal(t, Placed, f.ctrl.State())
}

func TestDeactivate(t *testing.T) {
	f := newFixture(t, Config{MaxCameraTravel: 20, ResetMaskOnDisable: true})
	f.ctrl.Activate()
	f.mask.calls = nil

	f.ctrl.Deactivate()
	assert.False(t, f.ctrl.Active())
	assert.Equal(t, []string{"reset", "disable"}, f.mask.calls)

	g := newFixture(t, defaultConfig)
	g.ctrl.Activate()
	g.mask.calls = nil
	g.ctrl.Deactivate()
	assert.Equal(t, []string{"disable"}, g.mask.calls)
}

func TestDeactivateWithoutResetLeavesKeywordOff(t *testing.T) {
	globals := mask.NewGlobals()
	f := newFixture(t, defaultConfig)
	sync, err := mask.New(mask.Config{
		PositionUniform: "Center",
		RadiusUniform:   "Radius",
		FeatureKeyword:  "K",
		Margin:          0.5,
	}, globals, f.visual, nil)
	require.NoError(t, err)

	log, _ := test.NewNullLogger()
	ctrl, err := New(defaultConfig, Deps{
		Camera:  f.camera,
		Visual:  f.visual,
		Effects: f.effects,
		Pointer: f.pointer,
		Mask:    sync,
	}, log)
	require.NoError(t, err)

	sync.Initialize()
	ctrl.Activate()
	sync.SyncIfChanged()
	require.True(t, globals.KeywordEnabled("K"))

	ctrl.Deactivate()
	assert.False(t, globals.KeywordEnabled("K"))
	assert.False(t, sync.FeatureEnabled())
}

func TestReactivateReturnsToInitialPlacement(t *testing.T) {
	f := newFixture(t, defaultConfig)
	f.ctrl.Activate()
	f.gesture(0)
	f.ctrl.Deactivate()
	f.ctrl.Activate()
	assert.Equal(t, AwaitingInitialPlacement, f.ctrl.State())

	// First commit after reactivation does not dispatch the effect.
	f.gesture(0)
	f.effects.AssertNotCalled(t, "DisappearFrom", mock.Anything, mock.Anything)
}

func TestSetMaxCameraTravel(t *testing.T) {
	f := newFixture(t, defaultConfig)
	f.ctrl.SetMaxCameraTravel(30)
	f.ctrl.SetMaxCameraTravel(-1)
	f.ctrl.Activate()
	f.gesture(25)
	assert.Equal(t, Placed, f.ctrl.State())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "AwaitingInitialPlacement", AwaitingInitialPlacement.String())
	assert.Equal(t, "Placed", Placed.String())
	assert.Equal(t, "Unknown", State(9).String())
}
