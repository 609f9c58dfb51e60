package isoview

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyPanStep is the distance in screen pixels an arrow key pans per frame.
const keyPanStep = 8

// pointerSample is one frame of mouse device state in screen coordinates.
type pointerSample struct {
	x, y    int
	buttons MouseButtons
	wheel   int
}

// pointerTracker remembers the previous sample so that device state can be
// turned into enter, leave, button, move and wheel events.
type pointerTracker struct {
	inside  bool
	primed  bool
	pos     Point
	buttons MouseButtons
}

// processInput is called once per frame from the game loop. Injected events
// take priority over the real mouse; the keyboard is always read.
func (v *Viewport) processInput() {
	if !v.processInjectedInput() {
		v.feedPointer(readPointer())
	}
	v.processKeys()
}

// readPointer samples the ebiten mouse.
func readPointer() pointerSample {
	mx, my := ebiten.CursorPosition()
	var buttons MouseButtons
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		buttons |= ButtonLeft
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		buttons |= ButtonMiddle
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		buttons |= ButtonRight
	}
	_, wy := ebiten.Wheel()
	wheel := 0
	switch {
	case wy > 0:
		wheel = 1
	case wy < 0:
		wheel = -1
	}
	return pointerSample{x: mx, y: my, buttons: buttons, wheel: wheel}
}

// feedPointer compares a sample with the previous one and dispatches the
// resulting events. Positions handed to the viewport are relative to the
// window. While a button is held the pointer stays captured, so a drag
// that leaves the window keeps panning.
func (v *Viewport) feedPointer(s pointerSample) {
	t := &v.pointer
	inside := v.Window().Contains(s.x, s.y)
	rel := Point{X: s.x - v.X, Y: s.y - v.Y}
	captured := t.inside && t.buttons != 0

	if inside && !t.inside {
		v.OnMouseEnter()
		t.inside = true
		t.buttons = 0
	} else if !inside && t.inside && !captured {
		v.OnMouseLeave()
		t.inside = false
		t.buttons = 0
		return
	}
	if !t.inside {
		return
	}

	if !t.primed || rel != t.pos {
		v.OnMouseMove(rel)
		t.pos = rel
		t.primed = true
	}
	if s.buttons != t.buttons {
		v.OnMouseButton(s.buttons.WithPrevious(t.buttons))
		t.buttons = s.buttons
	}
	if s.wheel != 0 {
		v.OnMouseWheel(s.wheel)
	}
	if !inside && s.buttons == 0 {
		v.OnMouseLeave()
		t.inside = false
		t.buttons = 0
	}
}

// processKeys handles keyboard shortcuts: arrows pan, Q and E rotate and
// T toggles terraform mode.
func (v *Viewport) processKeys() {
	dx, dy := 0, 0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx -= keyPanStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx += keyPanStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy -= keyPanStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy += keyPanStep
	}
	v.Pan(dx, dy)

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		v.Rotate(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		v.Rotate(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		v.ToggleMouseMode()
	}
}

// ToggleMouseMode switches between inactive and terraform mode.
func (v *Viewport) ToggleMouseMode() {
	if v.mouseMode == MouseTileTerraform {
		v.SetMouseMode(MouseInactive)
	} else {
		v.SetMouseMode(MouseTileTerraform)
	}
}
