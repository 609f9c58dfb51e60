package isoview

import "testing"

func TestInjectMove_Queued(t *testing.T) {
	vp := newPanViewport()
	vp.InjectMove(100, 100)
	if len(vp.injectQueue) != 1 {
		t.Fatalf("queue len = %d, want 1", len(vp.injectQueue))
	}
	if !vp.processInjectedInput() {
		t.Error("expected an event to be consumed")
	}
	if vp.processInjectedInput() {
		t.Error("empty queue should report nothing consumed")
	}
	if vp.MousePosition() != (Point{100, 100}) {
		t.Errorf("MousePosition = %v", vp.MousePosition())
	}
}

func TestInjectPress_HoldsButton(t *testing.T) {
	vp := newPanViewport()
	vp.InjectPress(10, 10, ButtonRight)
	vp.InjectMove(20, 10)
	vp.InjectRelease(20, 10, ButtonRight)
	vp.InjectMove(30, 10)

	want := []MouseButtons{ButtonRight, ButtonRight, 0, 0}
	for i, e := range vp.injectQueue {
		if e.sample.buttons != want[i] {
			t.Errorf("event %d buttons = %#x, want %#x", i, e.sample.buttons, want[i])
		}
	}
}

func TestInjectDrag_Frames(t *testing.T) {
	vp := newPanViewport()
	vp.InjectDrag(100, 100, 130, 100, 4, ButtonRight)
	if len(vp.injectQueue) != 4 {
		t.Fatalf("queue len = %d, want 4", len(vp.injectQueue))
	}
	xs := []int{100, 110, 120, 130}
	for i, e := range vp.injectQueue {
		if e.sample.x != xs[i] {
			t.Errorf("event %d x = %d, want %d", i, e.sample.x, xs[i])
		}
	}
	if vp.injectQueue[3].sample.buttons != 0 {
		t.Error("last event should release the button")
	}
}

func TestInjectDrag_MinimumTwoFrames(t *testing.T) {
	vp := newPanViewport()
	vp.InjectDrag(0, 0, 50, 50, 0, ButtonLeft)
	if len(vp.injectQueue) != 2 {
		t.Errorf("queue len = %d, want 2", len(vp.injectQueue))
	}
}

func TestInjectDrag_Pans(t *testing.T) {
	vp := newPanViewport()
	x0, y0 := vp.Camera.X, vp.Camera.Y
	vp.InjectDrag(100, 100, 130, 100, 4, ButtonRight)
	for vp.processInjectedInput() {
	}
	// North: each pixel to the right moves the focus +4, -4.
	if vp.Camera.X != x0+120 || vp.Camera.Y != y0-120 {
		t.Errorf("camera = (%d,%d), want (%d,%d)", vp.Camera.X, vp.Camera.Y, x0+120, y0-120)
	}
	if vp.MouseState() != 0 {
		t.Errorf("MouseState = %#x after release", vp.MouseState())
	}
}

func TestInjectWheel(t *testing.T) {
	vp := newPanViewport()
	vp.InjectWheel(50, 50, 1)
	vp.processInjectedInput()
	if vp.Camera.Orientation != East {
		t.Errorf("Orientation = %s, want east", vp.Camera.Orientation)
	}
}
