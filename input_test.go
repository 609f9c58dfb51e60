package isoview

import "testing"

func newPanViewport() *Viewport {
	vp := NewViewport(NewGrid(16, 16), NewSpriteSheet(), 0, 0, 320, 240)
	vp.SetMouseMode(MouseTileTerraform)
	return vp
}

func TestFeedPointer_EnterThenMove(t *testing.T) {
	vp := newPickViewport()
	vp.SetMouseMode(MouseTileTerraform)

	vp.feedPointer(pointerSample{x: 100, y: 58})
	if !vp.pointer.inside {
		t.Fatal("pointer should be inside after the first sample")
	}
	if pos, ok := vp.CursorVoxel(); !ok || pos != (VoxelPos{0, 0, 0}) {
		t.Errorf("cursor = %v %v, want (0,0,0)", pos, ok)
	}
}

func TestFeedPointer_PositionsRelativeToWindow(t *testing.T) {
	vp := NewViewport(NewGrid(4, 4), NewSpriteSheet(), 10, 20, 200, 100)
	vp.SetMouseMode(MouseTileTerraform)

	vp.feedPointer(pointerSample{x: 60, y: 70})
	if vp.MousePosition() != (Point{50, 50}) {
		t.Errorf("MousePosition = %v, want (50,50)", vp.MousePosition())
	}
}

func TestFeedPointer_IgnoresOutsideSamples(t *testing.T) {
	vp := newPanViewport()
	vp.feedPointer(pointerSample{x: 500, y: 500, buttons: ButtonRight})
	if vp.pointer.inside {
		t.Error("pointer outside the window should not enter")
	}
	if vp.MouseState() != 0 {
		t.Errorf("MouseState = %#x, want 0", vp.MouseState())
	}
}

func TestFeedPointer_DragStaysCaptured(t *testing.T) {
	vp := newPanViewport()
	x0, y0 := vp.Camera.X, vp.Camera.Y

	vp.feedPointer(pointerSample{x: 100, y: 100})
	vp.feedPointer(pointerSample{x: 100, y: 100, buttons: ButtonRight})
	if vp.MouseState() != ButtonRight {
		t.Fatalf("MouseState = %#x, want right", vp.MouseState())
	}
	vp.feedPointer(pointerSample{x: 116, y: 100, buttons: ButtonRight})
	if vp.Camera.X != x0+64 || vp.Camera.Y != y0-64 {
		t.Errorf("camera = (%d,%d), want (%d,%d)", vp.Camera.X, vp.Camera.Y, x0+64, y0-64)
	}

	// Leaving the window with the button held keeps panning.
	vp.feedPointer(pointerSample{x: 400, y: 100, buttons: ButtonRight})
	if !vp.pointer.inside {
		t.Fatal("held button should keep the pointer captured")
	}
	if vp.Camera.X == x0+64 {
		t.Error("drag outside the window should still pan")
	}
	if vp.MouseState() != ButtonRight {
		t.Errorf("MouseState = %#x, want right", vp.MouseState())
	}

	// Releasing outside the window ends the capture.
	vp.feedPointer(pointerSample{x: 400, y: 100})
	if vp.pointer.inside {
		t.Error("release outside the window should leave")
	}
	if vp.MouseState() != 0 {
		t.Errorf("MouseState = %#x, want 0", vp.MouseState())
	}
}

func TestFeedPointer_MoveBeforeButtonOnEnter(t *testing.T) {
	vp := newPanViewport()
	vp.feedPointer(pointerSample{x: 50, y: 50})
	vp.feedPointer(pointerSample{x: 500, y: 500})
	if vp.pointer.inside {
		t.Fatal("expected leave")
	}
	x0, y0 := vp.Camera.X, vp.Camera.Y

	// Re-entering far away with the pan button already down must not jump
	// the view by the distance travelled outside.
	vp.feedPointer(pointerSample{x: 200, y: 150, buttons: ButtonRight})
	if vp.Camera.X != x0 || vp.Camera.Y != y0 {
		t.Errorf("camera moved to (%d,%d) on enter", vp.Camera.X, vp.Camera.Y)
	}
	if vp.MouseState() != ButtonRight {
		t.Errorf("MouseState = %#x, want right", vp.MouseState())
	}
}

func TestFeedPointer_WheelRotates(t *testing.T) {
	vp := newPanViewport()
	vp.feedPointer(pointerSample{x: 100, y: 100, wheel: 1})
	if vp.Camera.Orientation != East {
		t.Errorf("Orientation = %s, want east", vp.Camera.Orientation)
	}
	vp.feedPointer(pointerSample{x: 100, y: 100, wheel: -1})
	if vp.Camera.Orientation != North {
		t.Errorf("Orientation = %s, want north", vp.Camera.Orientation)
	}
}

func TestToggleMouseMode(t *testing.T) {
	vp := newPickViewport()
	vp.ToggleMouseMode()
	if vp.MouseMode() != MouseTileTerraform {
		t.Errorf("MouseMode = %s, want terraform", vp.MouseMode())
	}
	vp.ToggleMouseMode()
	if vp.MouseMode() != MouseInactive {
		t.Errorf("MouseMode = %s, want inactive", vp.MouseMode())
	}
}
