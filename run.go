package isoview

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// game hosts a viewport as an ebiten.Game.
type game struct {
	vp      *Viewport
	cfg     RunConfig
	surface *EbitenSurface
	fps     *fpsOverlay
	err     error
}

// Update implements ebiten.Game.
func (g *game) Update() error {
	if g.err != nil {
		return g.err
	}
	v := g.vp
	if v.testRunner != nil {
		v.testRunner.step(v)
		if g.cfg.ExitWhenDone && v.testRunner.Done() && len(v.screenshotQueue) == 0 {
			return ebiten.Termination
		}
	}
	v.processInput()

	dt := 1.0 / float64(ebiten.TPS())
	v.Update(float32(dt))
	if g.fps != nil {
		g.fps.update(dt, v)
	}
	return nil
}

// Draw implements ebiten.Game. Ebiten clears the screen every frame, so the
// view is redrawn whether or not it changed.
func (g *game) Draw(screen *ebiten.Image) {
	v := g.vp
	g.surface.SetTarget(screen)
	if err := v.Draw(g.surface); err != nil {
		g.err = err
		return
	}
	if g.fps != nil {
		g.fps.draw(screen, v)
	}
	if len(v.screenshotQueue) > 0 {
		v.flushScreenshots(readScreen(screen))
	}
}

// Layout implements ebiten.Game.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// NewViewportFromConfig generates a world and sprite sheet from cfg and
// returns a viewport covering the whole window.
func NewViewportFromConfig(cfg RunConfig) *Viewport {
	tc := DefaultTerrainConfig()
	tc.Width, tc.Height, tc.Seed = cfg.WorldWidth, cfg.WorldHeight, cfg.Seed
	world := GenerateTerrain(tc)
	sheet := GenerateSpriteSheet(cfg.TileWidth, cfg.TileHeight)
	v := NewViewport(world, sheet, 0, 0, cfg.Width, cfg.Height)
	cfg.Apply(v)
	return v
}

// Run opens a window and runs v until the window is closed or, with
// ExitWhenDone, the test script finishes.
func Run(v *Viewport, cfg RunConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("isoview: run: %w", err)
	}
	if cfg.TestScript != "" {
		data, err := os.ReadFile(cfg.TestScript)
		if err != nil {
			return fmt.Errorf("isoview: run: %w", err)
		}
		runner, err := LoadTestScript(data)
		if err != nil {
			return fmt.Errorf("isoview: run: %w", err)
		}
		v.SetTestRunner(runner)
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	g := &game{vp: v, cfg: cfg, surface: NewEbitenSurface(nil)}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("isoview: run: %w", err)
	}
	return nil
}
