package birthday

// syntheticPointerEvent is a queued pointer sample. Screen coordinates are
// used and hit tested through the scene camera, identical to real mouse input.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	wheel   float64
}

// InjectPress queues a pointer press at the given screen coordinates. The
// event is consumed on the next frame's processInput call.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectMove queues a pointer move with the button up, for hover.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), held moves
// linearly interpolated over frames-2 intermediate frames, and release at
// (toX, toY). The sequence consumes frames frames, at least 2.
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
			x:       fromX + (toX-fromX)*t,
			y:       fromY + (toY-fromY)*t,
			pressed: true,
		})
	}
	s.InjectRelease(toX, toY)
}

// InjectWheel queues a vertical wheel step with the button up at the given
// screen coordinates. Positive dy scrolls up, which zooms in.
func (s *Scene) InjectWheel(x, y, dy float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, wheel: dy})
}

// PendingInput returns the number of queued synthetic events.
func (s *Scene) PendingInput() int {
	return len(s.injectQueue)
}
