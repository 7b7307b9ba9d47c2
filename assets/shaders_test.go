package assets

import (
	"testing"

	"github.com/automoto/domemask/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The synchronizer writes uniforms by configured name; the shader must
// declare the default names or it silently reads zero.
func TestMaskShaderDeclaresDefaultUniforms(t *testing.T) {
	src, err := MaskShaderSource()
	require.NoError(t, err)

	d := config.Defaults().Dome
	assert.Contains(t, string(src), "var "+d.PositionUniform+" vec3")
	assert.Contains(t, string(src), "var "+d.RadiusUniform+" float")
	assert.Contains(t, string(src), "var "+d.FeatureKeyword+" float")
}
