package isoview

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RunConfig configures the ebiten host started by Run.
type RunConfig struct {
	Title       string       `yaml:"title"`
	Width       int          `yaml:"width"`
	Height      int          `yaml:"height"`
	TileWidth   int          `yaml:"tile_width"`
	TileHeight  int          `yaml:"tile_height"`
	Orientation Orientation  `yaml:"orientation"`
	MouseMode   MouseMode    `yaml:"mouse_mode"`
	PanButton   MouseButtons `yaml:"pan_button"`

	WorldWidth  int   `yaml:"world_width"`
	WorldHeight int   `yaml:"world_height"`
	Seed        int64 `yaml:"seed"`

	ShowFPS       bool   `yaml:"show_fps"`
	Debug         bool   `yaml:"debug"`
	ScreenshotDir string `yaml:"screenshot_dir"`
	// TestScript is the path of a JSON test script to run, if any.
	TestScript string `yaml:"test_script"`
	// ExitWhenDone stops the game once the test script has finished.
	ExitWhenDone bool `yaml:"exit_when_done"`
}

// DefaultRunConfig returns a 640x480 window onto a 64x64 world with
// 64x16 tiles, facing north.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:         "isoview",
		Width:         640,
		Height:        480,
		TileWidth:     DefaultTileWidth,
		TileHeight:    DefaultTileHeight,
		Orientation:   North,
		MouseMode:     MouseInactive,
		PanButton:     ButtonRight,
		WorldWidth:    64,
		WorldHeight:   64,
		Seed:          1,
		ScreenshotDir: "screenshots",
	}
}

// LoadRunConfig parses YAML on top of DefaultRunConfig and validates the
// result.
func LoadRunConfig(data []byte) (RunConfig, error) {
	return ParseRunConfig(data, DefaultRunConfig())
}

// ParseRunConfig parses YAML on top of base, so keys missing from data keep
// the values already set in base, and validates the result.
func ParseRunConfig(data []byte, base RunConfig) (RunConfig, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("isoview: run config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("isoview: run config: %w", err)
	}
	return cfg, nil
}

// Validate checks that sizes are positive, the tile width is a multiple of
// 4, which the projection needs to stay pixel exact, and the pan button is
// a single button.
func (c RunConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	case c.TileWidth <= 0 || c.TileWidth%4 != 0:
		return fmt.Errorf("tile width %d must be a positive multiple of 4", c.TileWidth)
	case c.TileHeight <= 0:
		return fmt.Errorf("tile height %d must be positive", c.TileHeight)
	case c.WorldWidth <= 0 || c.WorldHeight <= 0:
		return fmt.Errorf("world size %dx%d must be positive", c.WorldWidth, c.WorldHeight)
	case !c.Orientation.Valid():
		return fmt.Errorf("invalid orientation %d", c.Orientation)
	case c.PanButton != ButtonLeft && c.PanButton != ButtonMiddle && c.PanButton != ButtonRight:
		return fmt.Errorf("pan button %#x must be exactly one of left, middle or right", uint8(c.PanButton))
	}
	return nil
}

// Apply copies the view settings of c onto v.
func (c RunConfig) Apply(v *Viewport) {
	v.Width, v.Height = c.Width, c.Height
	v.Camera.TileWidth = c.TileWidth
	v.Camera.TileHeight = c.TileHeight
	v.Camera.Orientation = c.Orientation
	v.PanButton = c.PanButton
	if c.ScreenshotDir != "" {
		v.ScreenshotDir = c.ScreenshotDir
	}
	v.SetDebugMode(c.Debug)
	v.SetMouseMode(c.MouseMode)
	v.MarkDirty()
}
