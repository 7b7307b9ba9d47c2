package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/domemask/config"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dome.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadSettingsDefaults(t *testing.T) {
	log, _ := test.NewNullLogger()
	s, w, err := loadSettings(&options{}, log)
	require.NoError(t, err)
	assert.Nil(t, w)
	assert.Equal(t, config.Defaults(), s)
}

func TestLoadSettingsFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "window:\n  width: 800\n  height: 600\ndome:\n  maxCameraTravel: 2\n")
	log, _ := test.NewNullLogger()

	s, w, err := loadSettings(&options{configFile: path, width: 1280}, log)
	require.NoError(t, err)
	assert.Nil(t, w)
	assert.Equal(t, 1280, s.Window.Width)
	assert.Equal(t, 600, s.Window.Height)
	assert.Equal(t, float32(2), s.Dome.MaxCameraTravel)
}

func TestLoadSettingsRejectsInvalidFile(t *testing.T) {
	path := writeConfig(t, "dome:\n  maxCameraTravel: -1\n")
	log, _ := test.NewNullLogger()

	_, _, err := loadSettings(&options{configFile: path}, log)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestValidateCommand(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		path := writeConfig(t, "dome:\n  maskRadiusMargin: 0.5\n")
		cmd := newRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"validate", "--config", path})
		require.NoError(t, cmd.Execute())
		assert.Contains(t, out.String(), "ok")
	})

	t.Run("missing flag", func(t *testing.T) {
		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"validate"})
		assert.Error(t, cmd.Execute())
	})

	t.Run("invalid", func(t *testing.T) {
		path := writeConfig(t, "dome:\n  maskRadiusMargin: -3\n")
		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"validate", "--config", path})
		assert.ErrorIs(t, cmd.Execute(), config.ErrInvalid)
	})
}
