package isoview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRunConfig_Valid(t *testing.T) {
	cfg := DefaultRunConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, DefaultTileWidth, cfg.TileWidth)
	assert.Equal(t, North, cfg.Orientation)
	assert.Equal(t, ButtonRight, cfg.PanButton)
	assert.Equal(t, "screenshots", cfg.ScreenshotDir)
}

func TestLoadRunConfig_Overrides(t *testing.T) {
	cfg, err := LoadRunConfig([]byte(`
title: hills
width: 800
tile_width: 32
tile_height: 8
orientation: east
mouse_mode: terraform
pan_button: middle
seed: 42
show_fps: true
test_script: scripts/smoke.json
exit_when_done: true
`))
	require.NoError(t, err)
	assert.Equal(t, "hills", cfg.Title)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 480, cfg.Height, "unset keys keep their defaults")
	assert.Equal(t, 32, cfg.TileWidth)
	assert.Equal(t, 8, cfg.TileHeight)
	assert.Equal(t, East, cfg.Orientation)
	assert.Equal(t, MouseTileTerraform, cfg.MouseMode)
	assert.Equal(t, ButtonMiddle, cfg.PanButton)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.ShowFPS)
	assert.Equal(t, "scripts/smoke.json", cfg.TestScript)
	assert.True(t, cfg.ExitWhenDone)
}

func TestLoadRunConfig_Errors(t *testing.T) {
	tests := []struct {
		name, yaml string
	}{
		{"malformed", "width: [1"},
		{"tile width", "tile_width: 30"},
		{"negative size", "width: -1"},
		{"orientation", "orientation: up"},
		{"mouse mode", "mouse_mode: paint"},
		{"pan button", "pan_button: thumb"},
		{"world size", "world_width: 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRunConfig([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "isoview: run config")
		})
	}
}

func TestRunConfig_Apply(t *testing.T) {
	cfg := DefaultRunConfig()
	cfg.Width, cfg.Height = 320, 200
	cfg.TileWidth, cfg.TileHeight = 32, 8
	cfg.Orientation = South
	cfg.MouseMode = MouseTileTerraform
	cfg.PanButton = ButtonMiddle
	cfg.ScreenshotDir = "out"

	vp := NewViewport(NewGrid(8, 8), NewSpriteSheet(), 0, 0, 10, 10)
	cfg.Apply(vp)
	defer vp.SetDebugMode(false)

	assert.Equal(t, Rect{0, 0, 320, 200}, vp.Window())
	assert.Equal(t, 32, vp.Camera.TileWidth)
	assert.Equal(t, 8, vp.Camera.TileHeight)
	assert.Equal(t, South, vp.Camera.Orientation)
	assert.Equal(t, MouseTileTerraform, vp.MouseMode())
	assert.Equal(t, ButtonMiddle, vp.PanButton)
	assert.Equal(t, "out", vp.ScreenshotDir)
	assert.True(t, vp.NeedsRedraw())
}

func TestNewViewportFromConfig(t *testing.T) {
	cfg := DefaultRunConfig()
	cfg.WorldWidth, cfg.WorldHeight = 12, 10
	vp := NewViewportFromConfig(cfg)
	defer vp.SetDebugMode(false)

	xs, ys := vp.World().Size()
	assert.Equal(t, 12, xs)
	assert.Equal(t, 10, ys)
	assert.Equal(t, 640, vp.Width)

	s := NewImageSurface(cfg.Width, cfg.Height)
	require.NoError(t, vp.Draw(s))
	assert.NotZero(t, s.Blits, "generated terrain should be visible")
}

func TestParseRunConfig_KeepsBase(t *testing.T) {
	base := DefaultRunConfig()
	base.Title = "custom"
	base.ShowFPS = true
	base.MouseMode = MouseTileTerraform

	cfg, err := ParseRunConfig([]byte("width: 800\n"), base)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, "custom", cfg.Title)
	assert.True(t, cfg.ShowFPS)
	assert.Equal(t, MouseTileTerraform, cfg.MouseMode)

	cfg, err = ParseRunConfig([]byte("mouse_mode: inactive\n"), base)
	require.NoError(t, err)
	assert.Equal(t, MouseInactive, cfg.MouseMode, "keys in the file still win")
}

func TestRunConfig_ValidatePanButton(t *testing.T) {
	for _, b := range []MouseButtons{ButtonLeft, ButtonMiddle, ButtonRight} {
		cfg := DefaultRunConfig()
		cfg.PanButton = b
		assert.NoError(t, cfg.Validate(), "button %#x", b)
	}
	for _, b := range []MouseButtons{0, ButtonLeft | ButtonRight, ButtonRight.WithPrevious(ButtonLeft)} {
		cfg := DefaultRunConfig()
		cfg.PanButton = b
		assert.Error(t, cfg.Validate(), "button %#x", b)
	}
}
