package isoview

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Default view settings.
const (
	DefaultTileWidth  = 64
	DefaultTileHeight = 16
	defaultViewLevel  = 8
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera is the view state of a viewport: the fixed-point world position the
// window centres on, the tile scale, and the orientation.
type Camera struct {
	// X, Y and Z are the focus point in world units (WorldUnit per tile).
	X, Y, Z int
	// TileWidth and TileHeight are the screen size of a tile and of one
	// voxel level.
	TileWidth, TileHeight int
	// Orientation is the current view direction.
	Orientation Orientation

	// The focus is clamped to [0, MaxX] x [0, MaxY].
	MaxX, MaxY int

	scrollTween *scrollAnim
}

// newCamera creates a camera looking at the centre of a world of xsize by
// ysize columns.
func newCamera(xsize, ysize int) *Camera {
	return &Camera{
		X:           xsize * WorldUnit / 2,
		Y:           ysize * WorldUnit / 2,
		Z:           defaultViewLevel * WorldUnit,
		TileWidth:   DefaultTileWidth,
		TileHeight:  DefaultTileHeight,
		Orientation: North,
		MaxX:        xsize * WorldUnit,
		MaxY:        ysize * WorldUnit,
	}
}

// Projector returns the projection for the camera's scale and orientation.
func (c *Camera) Projector() Projector {
	return Projector{TileWidth: c.TileWidth, TileHeight: c.TileHeight, Orientation: c.Orientation}
}

// Move shifts the focus by dx, dy screen pixels. Each screen axis maps onto
// both world axes; the pairing depends on the orientation. The result is
// clamped to the world bounds. Move reports whether the focus changed.
func (c *Camera) Move(dx, dy int) bool {
	tw := c.TileWidth
	var nx, ny int
	switch c.Orientation {
	case North:
		nx = c.X + dx*256/tw - dy*512/tw
		ny = c.Y - dx*256/tw - dy*512/tw
	case East:
		nx = c.X - dx*256/tw - dy*512/tw
		ny = c.Y - dx*256/tw + dy*512/tw
	case South:
		nx = c.X - dx*256/tw + dy*512/tw
		ny = c.Y + dx*256/tw + dy*512/tw
	case West:
		nx = c.X + dx*256/tw + dy*512/tw
		ny = c.Y + dx*256/tw - dy*512/tw
	default:
		mustOrientation(c.Orientation)
	}
	return c.setFocus(nx, ny)
}

// Rotate turns the view a quarter turn; a positive direction turns clockwise.
func (c *Camera) Rotate(direction int) {
	c.Orientation = c.Orientation.Rotate(direction)
}

// ScrollTo animates the focus to world position (x, y) over duration seconds.
func (c *Camera) ScrollTo(x, y int, duration float32, easeFn ease.TweenFunc) {
	x, y = c.clamp(x, y)
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// ScrollToTile scrolls to the centre of tile (tileX, tileY).
func (c *Camera) ScrollToTile(tileX, tileY int, duration float32, easeFn ease.TweenFunc) {
	c.ScrollTo(tileX*WorldUnit+WorldUnit/2, tileY*WorldUnit+WorldUnit/2, duration, easeFn)
}

// Scrolling reports whether a scroll animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// StopScroll cancels a running scroll animation, leaving the focus where it is.
func (c *Camera) StopScroll() {
	c.scrollTween = nil
}

// update advances the scroll animation by dt seconds and reports whether
// the focus moved.
func (c *Camera) update(dt float32) bool {
	if c.scrollTween == nil {
		return false
	}
	nx, ny := c.X, c.Y
	if !c.scrollTween.doneX {
		val, done := c.scrollTween.tweenX.Update(dt)
		nx = int(val)
		c.scrollTween.doneX = done
	}
	if !c.scrollTween.doneY {
		val, done := c.scrollTween.tweenY.Update(dt)
		ny = int(val)
		c.scrollTween.doneY = done
	}
	if c.scrollTween.doneX && c.scrollTween.doneY {
		c.scrollTween = nil
	}
	return c.setFocus(nx, ny)
}

// setFocus clamps and stores a new focus, reporting whether it changed.
func (c *Camera) setFocus(x, y int) bool {
	x, y = c.clamp(x, y)
	if x == c.X && y == c.Y {
		return false
	}
	c.X, c.Y = x, y
	return true
}

// clamp restricts a focus point to [0, MaxX] x [0, MaxY].
func (c *Camera) clamp(x, y int) (int, int) {
	return max(0, min(x, c.MaxX)), max(0, min(y, c.MaxY))
}
