package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// MaskShader shades the ground inside and outside the spherical mask
	MaskShader *ebiten.Shader
)

// MaskShaderSource returns the Kage source of the mask shader.
func MaskShaderSource() ([]byte, error) {
	return shaderFS.ReadFile("shaders/mask.kage")
}

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	maskSrc, err := MaskShaderSource()
	if err != nil {
		return err
	}
	MaskShader, err = ebiten.NewShader(maskSrc)
	if err != nil {
		return err
	}

	return nil
}
