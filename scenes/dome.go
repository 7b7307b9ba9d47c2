package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/domemask/assets"
	cfg "github.com/automoto/domemask/config"
	"github.com/automoto/domemask/mask"
	"github.com/automoto/domemask/placement"
	"github.com/automoto/domemask/systems"
	"github.com/automoto/domemask/systems/factory"
	"github.com/automoto/domemask/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DomeScene is the placement demo: a ground grid, a dome that follows the
// pointer until tapped down, and the mask pass driven by the dome.
type DomeScene struct {
	ecs     *ecs.ECS
	globals *mask.Globals
	sync    *mask.Synchronizer
	ctrl    *placement.Controller
	hud     *ui.HUD
	watcher *cfg.Watcher
	log     logrus.FieldLogger
	once    sync.Once
}

// NewDomeScene creates the scene. watcher may be nil when no config file is
// in use.
func NewDomeScene(watcher *cfg.Watcher, log logrus.FieldLogger) *DomeScene {
	return &DomeScene{watcher: watcher, log: log}
}

func (ds *DomeScene) Update() {
	ds.once.Do(ds.configure)
	ds.applyConfigChanges()

	// The HUD updates first so the input system sees this frame's hover state.
	ds.hud.Update()
	ds.ecs.Update()

	ds.hud.Refresh(ui.Status{
		Active:      ds.ctrl.Active(),
		State:       ds.ctrl.State().String(),
		Params:      ds.sync.Params(),
		MaskEnabled: ds.sync.FeatureEnabled(),
	})
}

func (ds *DomeScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
	ds.hud.Draw(screen)
}

func (ds *DomeScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		panic("failed to load shaders: " + err.Error())
	}

	ecs := ecs.NewECS(donburi.NewWorld())
	ds.ecs = ecs

	factory.CreateCamera(ecs, cfg.Camera, cfg.C.Width, cfg.C.Height)
	dome := factory.CreateDome(ecs, cfg.Dome)
	systems.GetOrCreateInput(ecs)

	camera, err := systems.NewCameraView(ecs)
	if err != nil {
		panic(err)
	}
	visual := systems.NewDomeVisual(dome, camera)

	ds.globals = mask.NewGlobals()
	ds.sync, err = mask.New(mask.Config{
		PositionUniform: cfg.Dome.PositionUniform,
		RadiusUniform:   cfg.Dome.RadiusUniform,
		FeatureKeyword:  cfg.Dome.FeatureKeyword,
		Margin:          cfg.Dome.MaskRadiusMargin,
	}, ds.globals, visual, ds.log)
	if err != nil {
		panic(err)
	}

	ds.ctrl, err = placement.New(placement.Config{
		MaxCameraTravel:    cfg.Dome.MaxCameraTravel,
		AnchorPosition:     cfg.Dome.AnchorPosition,
		ResetMaskOnDisable: cfg.Dome.ResetMaskOnDisable,
	}, placement.Deps{
		Camera:  camera,
		Visual:  visual,
		Effects: systems.NewEffectSpawner(ecs),
		Pointer: systems.NewPointer(ecs),
		Mask:    ds.sync,
	}, ds.log)
	if err != nil {
		panic(err)
	}

	ds.hud = ui.NewHUD(ds.toggle)

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.NewPlacementSystem(ds.ctrl))
	ecs.AddSystem(systems.UpdateDome)
	ecs.AddSystem(systems.UpdateEffects)
	// Must stay last so the mask sees this frame's final dome transform.
	ecs.AddSystem(systems.NewMaskSystem(ds.sync, ds.ctrl))

	ecs.AddRenderer(cfg.Default, systems.DrawGround)
	ecs.AddRenderer(cfg.Default, systems.NewMaskRenderer(ds.globals, assets.MaskShader))
	ecs.AddRenderer(cfg.Default, systems.DrawDome)
	ecs.AddRenderer(cfg.Default, systems.DrawEffects)

	ds.sync.Initialize()
	ds.ctrl.Activate()
}

func (ds *DomeScene) toggle() {
	if ds.ctrl.Active() {
		ds.ctrl.Deactivate()
	} else {
		ds.ctrl.Activate()
	}
}

// applyConfigChanges picks up a reloaded config file. Only the tunables
// take effect; fields copied into entities and collaborators at startup keep
// their running values.
func (ds *DomeScene) applyConfigChanges() {
	if ds.watcher == nil {
		return
	}
	select {
	case s := <-ds.watcher.Changes():
		s, ignored := pinStartupFields(cfg.Current(), s)
		if len(ignored) > 0 {
			ds.log.WithField("fields", ignored).Warn("config reload changed startup-only fields, ignoring them")
		}
		cfg.Apply(s)
		ds.ctrl.SetMaxCameraTravel(s.Dome.MaxCameraTravel)
		ds.sync.SetMargin(s.Dome.MaskRadiusMargin)
		ds.log.WithFields(logrus.Fields{
			"maxCameraTravel":  s.Dome.MaxCameraTravel,
			"maskRadiusMargin": s.Dome.MaskRadiusMargin,
		}).Info("applied config reload")
	default:
	}
}

// pinStartupFields copies the fields that are fixed after configure from cur
// into next and names the ones next tried to change.
func pinStartupFields(cur, next cfg.Settings) (cfg.Settings, []string) {
	var changed []string
	pin := func(name string, differs bool) {
		if differs {
			changed = append(changed, name)
		}
	}

	pin("window", next.Window != cur.Window)
	pin("dome.positionUniform", next.Dome.PositionUniform != cur.Dome.PositionUniform)
	pin("dome.radiusUniform", next.Dome.RadiusUniform != cur.Dome.RadiusUniform)
	pin("dome.featureKeyword", next.Dome.FeatureKeyword != cur.Dome.FeatureKeyword)
	pin("dome.resetMaskOnDisable", next.Dome.ResetMaskOnDisable != cur.Dome.ResetMaskOnDisable)
	pin("dome.anchorPosition", next.Dome.AnchorPosition != cur.Dome.AnchorPosition)
	pin("dome.diameter", next.Dome.Diameter != cur.Dome.Diameter)
	pin("dome.appearDuration", next.Dome.AppearDuration != cur.Dome.AppearDuration)
	pin("camera.position", next.Camera.Position != cur.Camera.Position)
	pin("camera.yaw", next.Camera.Yaw != cur.Camera.Yaw)
	pin("camera.pitch", next.Camera.Pitch != cur.Camera.Pitch)
	pin("camera.fov", next.Camera.FOV != cur.Camera.FOV)
	pin("camera.near", next.Camera.Near != cur.Camera.Near)
	pin("camera.minPitch", next.Camera.MinPitch != cur.Camera.MinPitch)
	pin("camera.maxPitch", next.Camera.MaxPitch != cur.Camera.MaxPitch)

	next.Window = cur.Window
	next.Dome.PositionUniform = cur.Dome.PositionUniform
	next.Dome.RadiusUniform = cur.Dome.RadiusUniform
	next.Dome.FeatureKeyword = cur.Dome.FeatureKeyword
	next.Dome.ResetMaskOnDisable = cur.Dome.ResetMaskOnDisable
	next.Dome.AnchorPosition = cur.Dome.AnchorPosition
	next.Dome.Diameter = cur.Dome.Diameter
	next.Dome.AppearDuration = cur.Dome.AppearDuration

	// Look sensitivity stays live; the pose and limits live on the entity.
	sensitivity := next.Camera.LookSensitivity
	next.Camera = cur.Camera
	next.Camera.LookSensitivity = sensitivity

	return next, changed
}
