package config

import (
	"errors"
	"fmt"
	"image/color"

	"cogentcore.org/core/math32"
)

// ErrInvalid is wrapped by every Validate error.
var ErrInvalid = errors.New("invalid config")

// Config contains window configuration
type Config struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// DomeConfig contains the placement and mask configuration
type DomeConfig struct {
	// Action that places the dome (bound in Input)
	PlacementAction ActionID `mapstructure:"-"`

	// Largest look-point travel (world units) between press and release that still counts as a tap
	MaxCameraTravel float32 `mapstructure:"maxCameraTravel"`
	// Added to half the dome scale to get the mask radius
	MaskRadiusMargin float32 `mapstructure:"maskRadiusMargin"`

	// Shader globals; names must match the uniforms in assets/shaders/mask.kage
	PositionUniform string `mapstructure:"positionUniform"`
	RadiusUniform   string `mapstructure:"radiusUniform"`
	FeatureKeyword  string `mapstructure:"featureKeyword"`

	ResetMaskOnDisable bool `mapstructure:"resetMaskOnDisable"`

	// Look samples and dome placement use the horizontal plane through this point
	AnchorPosition math32.Vector3 `mapstructure:"anchorPosition"`

	// Dome diameter once the appear animation finishes
	Diameter float32 `mapstructure:"diameter"`
	// Appear animation length in seconds
	AppearDuration float32 `mapstructure:"appearDuration"`

	Color color.RGBA `mapstructure:"-"`
}

// CameraConfig contains the free-look camera configuration
type CameraConfig struct {
	Position math32.Vector3 `mapstructure:"position"`
	Yaw      float32        `mapstructure:"yaw"`   // degrees
	Pitch    float32        `mapstructure:"pitch"` // degrees
	FOV      float32        `mapstructure:"fov"`   // vertical, degrees
	Near     float32        `mapstructure:"near"`

	LookSensitivity float32 `mapstructure:"lookSensitivity"` // degrees per pixel dragged
	MinPitch        float32 `mapstructure:"minPitch"`        // degrees
	MaxPitch        float32 `mapstructure:"maxPitch"`        // degrees
}

// EffectsConfig contains the disappear effect configuration
type EffectsConfig struct {
	DisappearDuration float32 `mapstructure:"disappearDuration"` // seconds
	DisappearGrowth   float32 `mapstructure:"disappearGrowth"`   // scale multiplier reached at the end

	Color color.RGBA `mapstructure:"-"`
}

// GroundConfig contains the reference grid drawn on the anchor plane
type GroundConfig struct {
	HalfExtent int        `mapstructure:"halfExtent"` // grid lines each side of the origin
	Spacing    float32    `mapstructure:"spacing"`
	Color      color.RGBA `mapstructure:"-"`
}

// Settings is the full set of file-overridable configuration.
type Settings struct {
	Window  Config        `mapstructure:"window"`
	Dome    DomeConfig    `mapstructure:"dome"`
	Camera  CameraConfig  `mapstructure:"camera"`
	Effects EffectsConfig `mapstructure:"effects"`
	Ground  GroundConfig  `mapstructure:"ground"`
}

// Global configuration instances
var C *Config
var Dome DomeConfig
var Camera CameraConfig
var Effects EffectsConfig
var Ground GroundConfig

func init() {
	Apply(Defaults())
}

// Defaults returns the built-in configuration.
func Defaults() Settings {
	return Settings{
		Window: Config{
			Width:  960,
			Height: 540,
			Title:  "Dome Mask",
		},
		Dome: DomeConfig{
			PlacementAction:    ActionPlace,
			MaxCameraTravel:    0.5,
			MaskRadiusMargin:   0.1,
			PositionUniform:    "MaskCenter",
			RadiusUniform:      "MaskRadius",
			FeatureKeyword:     "MaskEnabled",
			ResetMaskOnDisable: true,
			Diameter:           4,
			AppearDuration:     0.45,
			Color:              color.RGBA{R: 90, G: 200, B: 255, A: 255},
		},
		Camera: CameraConfig{
			Position:        math32.Vec3(0, 6, 12),
			Yaw:             0,
			Pitch:           -30,
			FOV:             60,
			Near:            0.1,
			LookSensitivity: 0.15,
			MinPitch:        -85,
			MaxPitch:        20,
		},
		Effects: EffectsConfig{
			DisappearDuration: 0.6,
			DisappearGrowth:   1.6,
			Color:             color.RGBA{R: 255, G: 160, B: 80, A: 255},
		},
		Ground: GroundConfig{
			HalfExtent: 20,
			Spacing:    1,
			Color:      color.RGBA{R: 60, G: 60, B: 80, A: 255},
		},
	}
}

// Current returns the active configuration.
func Current() Settings {
	return Settings{
		Window:  *C,
		Dome:    Dome,
		Camera:  Camera,
		Effects: Effects,
		Ground:  Ground,
	}
}

// Apply replaces the global configuration.
func Apply(s Settings) {
	w := s.Window
	C = &w
	Dome = s.Dome
	Camera = s.Camera
	Effects = s.Effects
	Ground = s.Ground
}

// Validate checks values the game cannot run with.
func (s Settings) Validate() error {
	switch {
	case s.Window.Width <= 0 || s.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, s.Window.Width, s.Window.Height)
	case !(s.Dome.MaxCameraTravel > 0):
		return fmt.Errorf("%w: dome.maxCameraTravel must be positive", ErrInvalid)
	case s.Dome.MaskRadiusMargin < 0:
		return fmt.Errorf("%w: dome.maskRadiusMargin must not be negative", ErrInvalid)
	case s.Dome.PositionUniform == "" || s.Dome.RadiusUniform == "" || s.Dome.FeatureKeyword == "":
		return fmt.Errorf("%w: dome shader names must be set", ErrInvalid)
	case !(s.Dome.Diameter > 0):
		return fmt.Errorf("%w: dome.diameter must be positive", ErrInvalid)
	case s.Dome.AppearDuration < 0 || s.Effects.DisappearDuration < 0:
		return fmt.Errorf("%w: animation durations must not be negative", ErrInvalid)
	case s.Camera.FOV <= 0 || s.Camera.FOV >= 180:
		return fmt.Errorf("%w: camera.fov %v out of range", ErrInvalid, s.Camera.FOV)
	case s.Camera.MinPitch > s.Camera.MaxPitch:
		return fmt.Errorf("%w: camera.minPitch above camera.maxPitch", ErrInvalid)
	}
	return nil
}
