package systems

import (
	"image/color"

	"cogentcore.org/core/math32"
	"github.com/automoto/domemask/components"
	"github.com/automoto/domemask/config"
	"github.com/automoto/domemask/mask"
	"github.com/automoto/domemask/shared/gamemath"
	"github.com/automoto/domemask/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// project maps a world point to screen pixels with the scene camera.
func project(camera *components.CameraData, p math32.Vector3, w, h int) (x, y float32, ok bool) {
	vp, ok := camera.WorldToViewport(p)
	if !ok {
		return 0, 0, false
	}
	x, y = gamemath.ViewportToScreen(vp, w, h)
	return x, y, true
}

// projectedRadius returns the on-screen radius of a sphere of radius r at center.
func projectedRadius(camera *components.CameraData, center math32.Vector3, r float32, w, h int) (x, y, sr float32, ok bool) {
	x, y, ok = project(camera, center, w, h)
	if !ok {
		return 0, 0, 0, false
	}
	_, right, _ := camera.Basis()
	ex, ey, ok := project(camera, center.Add(right.MulScalar(r)), w, h)
	if !ok {
		return 0, 0, 0, false
	}
	return x, y, math32.Hypot(ex-x, ey-y), true
}

// DrawGround draws a reference grid on the dome's anchor plane.
func DrawGround(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	g := config.Ground
	y := config.Dome.AnchorPosition.Y

	// Lines are split into spacing-sized segments so the parts behind the
	// camera can be dropped individually.
	segment := func(a, b math32.Vector3) {
		x0, y0, ok0 := project(camera, a, w, h)
		x1, y1, ok1 := project(camera, b, w, h)
		if ok0 && ok1 {
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, g.Color, true)
		}
	}
	for i := -g.HalfExtent; i <= g.HalfExtent; i++ {
		c := float32(i) * g.Spacing
		for j := -g.HalfExtent; j < g.HalfExtent; j++ {
			s0 := float32(j) * g.Spacing
			s1 := s0 + g.Spacing
			segment(math32.Vec3(c, y, s0), math32.Vec3(c, y, s1))
			segment(math32.Vec3(s0, y, c), math32.Vec3(s1, y, c))
		}
	}
}

// DrawDome draws the dome outline and its center marker.
func DrawDome(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	tags.Dome.Each(ecs.World, func(e *donburi.Entry) {
		dome := components.Dome.Get(e)
		t := components.Transform.Get(e)
		x, y, r, ok := projectedRadius(camera, t.Position, t.Scale.X/2, w, h)
		if !ok {
			return
		}
		clr := dome.Color
		if !dome.AllowInteraction {
			clr = fade(clr, 0.5)
		}
		if r > 0 {
			vector.StrokeCircle(screen, x, y, r, 2, clr, true)
		}
		vector.StrokeCircle(screen, x, y, 3, 2, clr, true)
	})
}

// DrawEffects draws disappear effects fading out as they grow.
func DrawEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	tags.Disappear.Each(ecs.World, func(e *donburi.Entry) {
		d := components.Disappear.Get(e)
		t := components.Transform.Get(e)
		x, y, r, ok := projectedRadius(camera, t.Position, t.Scale.X/2, w, h)
		if !ok || r <= 0 {
			return
		}
		vector.StrokeCircle(screen, x, y, r, 2, fade(d.Color, 1-d.Progress), true)
	})
}

func fade(c color.RGBA, alpha float32) color.RGBA {
	a := math32.Clamp(alpha, 0, 1)
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}

// NewMaskRenderer returns a full-screen pass of shader fed with the mask
// globals plus the scene camera.
func NewMaskRenderer(globals *mask.Globals, shader *ebiten.Shader) ecs.RendererWithArg[ebiten.Image] {
	op := &ebiten.DrawRectShaderOptions{}
	inside := config.Dome.Color

	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		cameraEntry, ok := components.Camera.First(ecs.World)
		if !ok || shader == nil {
			return
		}
		camera := components.Camera.Get(cameraEntry)
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		forward, right, up := camera.Basis()

		u := globals.Uniforms()
		u["ScreenSize"] = []float32{float32(w), float32(h)}
		u["CameraPosition"] = vec3(camera.Position)
		u["CameraForward"] = vec3(forward)
		u["CameraRight"] = vec3(right)
		u["CameraUp"] = vec3(up)
		u["TanHalfFOV"] = camera.TanHalfFOV()
		u["Aspect"] = camera.Aspect
		u["GroundHeight"] = config.Dome.AnchorPosition.Y
		u["InsideColor"] = []float32{
			float32(inside.R) / 255 * 0.35,
			float32(inside.G) / 255 * 0.35,
			float32(inside.B) / 255 * 0.35,
			0.35,
		}
		u["OutsideShade"] = float32(0.45)
		op.Uniforms = u

		screen.DrawRectShader(w, h, shader, op)
	}
}

func vec3(v math32.Vector3) []float32 {
	return []float32{v.X, v.Y, v.Z}
}
