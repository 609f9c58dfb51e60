package isoview

// syntheticPointerEvent represents a single injected mouse sample.
// Screen coordinates are used (matching what a screenshot shows) and go
// through the same enter/leave and capture logic as real mouse input.
type syntheticPointerEvent struct {
	sample pointerSample
}

func (v *Viewport) inject(x, y int, wheel int) {
	v.injectQueue = append(v.injectQueue, syntheticPointerEvent{
		sample: pointerSample{x: x, y: y, buttons: v.injectButtons, wheel: wheel},
	})
}

// InjectMove queues a mouse move to the given screen coordinates. Buttons
// pressed by earlier injections stay held. The event is consumed on the
// next frame's processInput call.
func (v *Viewport) InjectMove(x, y int) {
	v.inject(x, y, 0)
}

// InjectPress queues pressing button at the given screen coordinates.
func (v *Viewport) InjectPress(x, y int, button MouseButtons) {
	v.injectButtons |= button & ButtonsCurrent
	v.inject(x, y, 0)
}

// InjectRelease queues releasing button at the given screen coordinates.
func (v *Viewport) InjectRelease(x, y int, button MouseButtons) {
	v.injectButtons &^= button
	v.inject(x, y, 0)
}

// InjectWheel queues a wheel step at the given screen coordinates.
// A positive direction rotates clockwise in terraform mode.
func (v *Viewport) InjectWheel(x, y, direction int) {
	v.inject(x, y, direction)
}

// InjectDrag queues a full drag sequence with button held: press at
// (fromX, fromY), linearly interpolated moves over frames-2 intermediate
// frames, and release at (toX, toY). The total sequence consumes `frames`
// frames. Minimum frames is 2 (press + release).
func (v *Viewport) InjectDrag(fromX, fromY, toX, toY, frames int, button MouseButtons) {
	if frames < 2 {
		frames = 2
	}
	v.InjectPress(fromX, fromY, button)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		x := fromX + (toX-fromX)*i/(steps+1)
		y := fromY + (toY-fromY)*i/(steps+1)
		v.InjectMove(x, y)
	}
	v.InjectRelease(toX, toY, button)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through feedPointer. Returns true if an event was consumed (real mouse
// input should be skipped).
func (v *Viewport) processInjectedInput() bool {
	if len(v.injectQueue) == 0 {
		return false
	}
	evt := v.injectQueue[0]
	copy(v.injectQueue, v.injectQueue[1:])
	v.injectQueue = v.injectQueue[:len(v.injectQueue)-1]

	v.feedPointer(evt.sample)
	return true
}
