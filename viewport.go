package isoview

import (
	"fmt"
	"time"

	"github.com/tanema/gween/ease"
)

// EventType identifies a kind of view event.
type EventType uint8

// View event types.
const (
	EventCursorMoved EventType = iota // the terraform cursor moved to another voxel
	EventViewMoved                    // the camera focus changed
	EventViewRotated                  // the orientation changed
	EventModeChanged                  // the mouse mode changed
)

var eventTypeNames = [...]string{"cursor-moved", "view-moved", "view-rotated", "mode-changed"}

// String returns the event type name.
func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return fmt.Sprintf("EventType(%d)", t)
}

// ViewEvent carries a viewport state change for the ECS bridge.
type ViewEvent struct {
	Type        EventType
	Voxel       VoxelPos // cursor voxel, for EventCursorMoved
	X, Y, Z     int      // camera focus in world units
	Orientation Orientation
	Mode        MouseMode
}

// EntityStore is the interface for optional ECS integration.
// When set on a Viewport, view events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event ViewEvent)
}

// Viewport is a rectangular window onto a World. It owns the camera, draws
// the visible voxels into a Surface and turns mouse events into panning,
// rotation and cursor tracking.
type Viewport struct {
	// X, Y, Width and Height are the window rectangle on the surface.
	X, Y, Width, Height int

	// Camera is the view state. Change it through the viewport so the
	// redraw flag and cursor stay in sync.
	Camera *Camera

	// PanButton is the mouse button that drags the view in terraform mode.
	PanButton MouseButtons

	// ScreenshotDir is the directory where screenshots are saved.
	// Defaults to "screenshots".
	ScreenshotDir string

	world   World
	sprites SpriteStore
	store   EntityStore
	images  *DrawList

	mouseMode  MouseMode
	mousePos   Point
	mouseState MouseButtons

	cursor      VoxelPos
	cursorValid bool

	dirty bool
	debug bool

	// Input
	pointer       pointerTracker
	injectQueue   []syntheticPointerEvent
	injectButtons MouseButtons
	testRunner    *TestRunner

	// Screenshots
	screenshotQueue []string
}

// NewViewport creates a viewport for world at the window rectangle
// (x, y, width, height). The camera looks at the centre of the world at
// level 8 with the default tile size, facing north. The mouse starts
// inactive.
func NewViewport(world World, sprites SpriteStore, x, y, width, height int) *Viewport {
	xsize, ysize := world.Size()
	return &Viewport{
		X:             x,
		Y:             y,
		Width:         width,
		Height:        height,
		Camera:        newCamera(xsize, ysize),
		PanButton:     ButtonRight,
		ScreenshotDir: "screenshots",
		world:         world,
		sprites:       sprites,
		images:        NewDrawList(),
		mouseMode:     MouseInactive,
		dirty:         true,
	}
}

// World returns the world the viewport shows.
func (v *Viewport) World() World {
	return v.world
}

// Window returns the window rectangle.
func (v *Viewport) Window() Rect {
	return Rect{X: v.X, Y: v.Y, Width: v.Width, Height: v.Height}
}

// SetEntityStore sets the optional ECS bridge.
func (v *Viewport) SetEntityStore(store EntityStore) {
	v.store = store
}

// --- Drawing ---

// Collect walks the view and returns the depth-sorted sprites of the
// window. The returned list is reused by the next Collect or Draw.
func (v *Viewport) Collect() *DrawList {
	c := v.newCollector()
	c.Collect(v.world)
	return c.Images
}

func (v *Viewport) newCollector() *SpriteCollector {
	v.images.Reset()
	c := &SpriteCollector{
		Walker: NewWalker(v.Camera),
		Images: v.images,
		store:  v.sprites,
	}
	c.SetWindowSize(-v.Width/2, -v.Height/2, v.Width, v.Height)
	c.SetXYOffset(v.X, v.Y)
	if v.mouseMode == MouseTileTerraform && v.cursorValid {
		c.SetMouseCursor(v.cursor.X, v.cursor.Y, v.cursor.Z)
	}
	return c
}

// Draw renders the window into s: the surface is filled with the
// background color, then every visible sprite is blitted back to front,
// clipped to the window. The redraw flag is cleared on success.
func (v *Viewport) Draw(s Surface) error {
	var stats frameStats

	var t0 time.Time
	if v.debug {
		t0 = time.Now()
	}
	c := v.newCollector()
	c.Collect(v.world)
	if v.debug {
		stats.walkTime = time.Since(t0)
		stats.scanned = c.Scanned
		stats.visited = c.Visited
		t0 = time.Now()
	}

	entries := c.Images.Entries()
	if v.debug {
		stats.sortTime = time.Since(t0)
		stats.entries = len(entries)
		stats.blits = countBlits(entries)
		t0 = time.Now()
	}

	clip := v.Window()
	err := withLock(s, func() {
		s.Fill(ColorBackground)
		for i := range entries {
			e := &entries[i]
			s.Blit(e.Base, e.Sprite, clip)
			if e.Cursor != nil {
				s.Blit(e.Base, e.Cursor, clip)
			}
		}
	})
	if err != nil {
		return fmt.Errorf("isoview: draw: %w", err)
	}
	v.dirty = false

	if v.debug {
		stats.blitTime = time.Since(t0)
		stats.cursorHit = v.cursorValid
		v.debugLog(stats)
	}
	return nil
}

// NeedsRedraw reports whether the view changed since the last Draw.
func (v *Viewport) NeedsRedraw() bool {
	return v.dirty
}

// MarkDirty flags the view for redrawing.
func (v *Viewport) MarkDirty() {
	v.dirty = true
}

// --- Picking ---

// PixelAt finds the topmost opaque pixel at window position (mx, my).
func (v *Viewport) PixelAt(mx, my int) *PixelFinder {
	f := NewPixelFinder(v.Camera, v.sprites)
	f.SetWindowSize(mx-v.Width/2, my-v.Height/2, 1, 1)
	f.Find(v.world)
	return f
}

// ComputeCursorPosition probes the pixel under the mouse and moves the
// cursor to the voxel owning it. A miss leaves the cursor where it is.
func (v *Viewport) ComputeCursorPosition() {
	f := v.PixelAt(v.mousePos.X, v.mousePos.Y)
	if !f.Found {
		return
	}
	if v.cursorValid && f.Voxel == v.cursor {
		return
	}
	v.cursor = f.Voxel
	v.cursorValid = true
	v.MarkDirty()
	v.emit(EventCursorMoved)
}

// CursorVoxel returns the voxel under the terraform cursor. The boolean is
// false until a voxel has been hit.
func (v *Viewport) CursorVoxel() (VoxelPos, bool) {
	return v.cursor, v.cursorValid
}

// --- View changes ---

// Pan moves the view by dx, dy screen pixels. A pan that leaves the focus
// unchanged (zero delta or clamped at the world edge) does not mark the
// view dirty.
func (v *Viewport) Pan(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	v.Camera.StopScroll()
	if v.Camera.Move(dx, dy) {
		v.MarkDirty()
		v.emit(EventViewMoved)
	}
}

// Rotate turns the view a quarter turn; a positive direction turns
// clockwise. The cursor is recomputed since a different voxel is now under
// the mouse.
func (v *Viewport) Rotate(direction int) {
	v.Camera.Rotate(direction)
	v.ComputeCursorPosition()
	v.MarkDirty()
	v.emit(EventViewRotated)
}

// ScrollToTile animates the view to the centre of tile (tileX, tileY) over
// duration seconds. Update drives the animation.
func (v *Viewport) ScrollToTile(tileX, tileY int, duration float32) {
	v.Camera.ScrollToTile(tileX, tileY, duration, ease.InOutQuad)
}

// ScrollToScreen animates the view so that the point at window position
// (mx, my), taken at the camera's view level, becomes the centre.
func (v *Viewport) ScrollToScreen(mx, my int, duration float32) {
	cam := v.Camera
	p := cam.Projector()
	focus := p.Project(cam.X, cam.Y, cam.Z)
	x, y := p.Unproject(focus.X+mx-v.Width/2, focus.Y+my-v.Height/2, cam.Z)
	cam.ScrollTo(x, y, duration, ease.InOutQuad)
}

// Update moves running camera animations forward by dt seconds.
func (v *Viewport) Update(dt float32) {
	if !v.Camera.update(dt) {
		return
	}
	v.MarkDirty()
	if v.mouseMode == MouseTileTerraform {
		v.ComputeCursorPosition()
	}
	v.emit(EventViewMoved)
}

// --- Mouse ---

// MouseMode returns the current mouse mode.
func (v *Viewport) MouseMode() MouseMode {
	return v.mouseMode
}

// SetMouseMode switches the mouse mode and forgets held buttons. It panics
// on an unknown mode.
func (v *Viewport) SetMouseMode(mode MouseMode) {
	if mode >= mouseModeCount {
		panic(fmt.Sprintf("isoview: invalid mouse mode %d", mode))
	}
	v.mouseState = 0
	if mode == v.mouseMode {
		return
	}
	v.mouseMode = mode
	v.MarkDirty()
	v.emit(EventModeChanged)
}

// MouseState returns the held mouse buttons.
func (v *Viewport) MouseState() MouseButtons {
	return v.mouseState
}

// MousePosition returns the last mouse position tracked in terraform mode,
// relative to the window.
func (v *Viewport) MousePosition() Point {
	return v.mousePos
}

// OnMouseMove handles the mouse moving to pos, relative to the window.
// In terraform mode, holding PanButton drags the view; otherwise the cursor
// follows the mouse.
func (v *Viewport) OnMouseMove(pos Point) {
	switch v.mouseMode {
	case MouseInactive:
	case MouseTileTerraform:
		if pos == v.mousePos {
			return
		}
		if v.mouseState&v.PanButton != 0 {
			v.Pan(pos.X-v.mousePos.X, pos.Y-v.mousePos.Y)
			v.mousePos = pos
		} else {
			v.mousePos = pos
			v.ComputeCursorPosition()
		}
	default:
		v.invalidMode()
	}
}

// OnMouseButton handles a button change. state carries the held buttons in
// its low bits and the previous buttons in its high bits.
func (v *Viewport) OnMouseButton(state MouseButtons) {
	switch v.mouseMode {
	case MouseInactive:
	case MouseTileTerraform:
		v.mouseState = state & ButtonsCurrent
	default:
		v.invalidMode()
	}
}

// OnMouseWheel handles a wheel step. In terraform mode the wheel rotates
// the view.
func (v *Viewport) OnMouseWheel(direction int) {
	switch v.mouseMode {
	case MouseInactive:
	case MouseTileTerraform:
		if direction != 0 {
			v.Rotate(direction)
		}
	default:
		v.invalidMode()
	}
}

// OnMouseEnter handles the mouse entering the window.
func (v *Viewport) OnMouseEnter() {
	v.mouseState = 0
}

// OnMouseLeave handles the mouse leaving the window.
func (v *Viewport) OnMouseLeave() {
	v.mouseState = 0
}

func (v *Viewport) invalidMode() {
	panic(fmt.Sprintf("isoview: invalid mouse mode %d", v.mouseMode))
}

// --- ECS bridge ---

func (v *Viewport) emit(t EventType) {
	if v.store == nil {
		return
	}
	v.store.EmitEvent(ViewEvent{
		Type:        t,
		Voxel:       v.cursor,
		X:           v.Camera.X,
		Y:           v.Camera.Y,
		Z:           v.Camera.Z,
		Orientation: v.Camera.Orientation,
		Mode:        v.mouseMode,
	})
}
