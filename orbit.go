package birthday

import "math"

// dragDeadZone is the pointer travel in pixels before a press becomes a drag.
const dragDeadZone = 4.0

// OrbitControls turns left-drags that start off any interactable node into
// camera orbits around Camera.Target, and wheel steps into zoom. Panning is
// not supported.
type OrbitControls struct {
	// Enabled gates both orbit and zoom.
	Enabled bool
	// RotateSpeed is radians of orbit per dragged pixel.
	RotateSpeed float64
	// ZoomSpeed is world units per wheel step.
	ZoomSpeed float64

	armed          bool
	dragging       bool
	startX, startY float64
	lastX, lastY   float64
}

func newOrbitControls() *OrbitControls {
	return &OrbitControls{RotateSpeed: 0.008, ZoomSpeed: 0.5}
}

// Dragging reports whether a press has moved past the dead zone and is
// orbiting the camera.
func (o *OrbitControls) Dragging() bool {
	return o.dragging
}

func (o *OrbitControls) press(x, y float64, onNode bool) {
	o.armed = o.Enabled && !onNode
	o.dragging = false
	o.startX, o.startY = x, y
	o.lastX, o.lastY = x, y
}

func (o *OrbitControls) move(cam *Camera, x, y float64) {
	if !o.armed {
		return
	}
	if !o.dragging {
		if math.Hypot(x-o.startX, y-o.startY) <= dragDeadZone {
			return
		}
		o.dragging = true
	}
	// Dragging right swings the eye left, dragging down raises it.
	cam.Orbit(-(x-o.lastX)*o.RotateSpeed, (y-o.lastY)*o.RotateSpeed)
	o.lastX, o.lastY = x, y
}

func (o *OrbitControls) release() {
	o.armed = false
	o.dragging = false
}

func (o *OrbitControls) wheel(cam *Camera, dy float64) {
	if !o.Enabled || dy == 0 {
		return
	}
	cam.Zoom(dy * o.ZoomSpeed)
}
