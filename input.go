package birthday

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// HoverAdapter performs the platform side of hovering, such as changing the
// cursor. The scene only decides whether something interactable is hovered.
type HoverAdapter interface {
	SetHovering(hovering bool)
}

// cursorHoverAdapter switches the OS cursor between default and pointer.
type cursorHoverAdapter struct{}

func (cursorHoverAdapter) SetHovering(hovering bool) {
	if hovering {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
		return
	}
	ebiten.SetCursorShape(ebiten.CursorShapeDefault)
}

// --- Hit testing ---

// ScreenBounds returns the screen-space rectangle covered by the projected
// mesh bounds of n and its descendants, and the nearest NDC depth. ok is false
// when nothing is in front of the camera.
func (s *Scene) ScreenBounds(n *Node) (r Rect, depth float64, ok bool) {
	vp := s.camera.ViewProjection()
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	depth = math.Inf(1)
	n.Walk(func(c *Node) bool {
		if !c.Visible {
			return false
		}
		if c.Kind != NodeMesh || c.Geometry == nil {
			return true
		}
		lo, hi := c.Geometry.Bounds()
		for i := 0; i < 8; i++ {
			corner := Vec3{lo[0], lo[1], lo[2]}
			if i&1 != 0 {
				corner[0] = hi[0]
			}
			if i&2 != 0 {
				corner[1] = hi[1]
			}
			if i&4 != 0 {
				corner[2] = hi[2]
			}
			x, y, z, in := projectWith(vp, s.camera.Viewport, c.LocalToWorld(corner))
			if !in {
				continue
			}
			ok = true
			minX, maxX = math.Min(minX, x), math.Max(maxX, x)
			minY, maxY = math.Min(minY, y), math.Max(maxY, y)
			depth = math.Min(depth, z)
		}
		return true
	})
	if !ok {
		return Rect{}, 0, false
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, depth, true
}

// collectInteractable appends visible interactable nodes that have handlers.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || n.disposed {
		return buf
	}
	if n.Interactable && (n.OnClick != nil || n.OnHover != nil) {
		buf = append(buf, n)
	}
	for _, c := range n.children {
		buf = collectInteractable(c, buf)
	}
	return buf
}

// HitTest returns the nearest interactable node whose projected bounds
// contain the screen point, or nil.
func (s *Scene) HitTest(x, y float64) *Node {
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])
	var best *Node
	bestDepth := math.Inf(1)
	for _, n := range s.hitBuf {
		r, depth, ok := s.ScreenBounds(n)
		if !ok || !r.Contains(x, y) {
			continue
		}
		if depth < bestDepth {
			best, bestDepth = n, depth
		}
	}
	return best
}

// --- Input processing ---

// processInput consumes one injected event if queued, otherwise samples the
// real mouse.
func (s *Scene) processInput() {
	var evt syntheticPointerEvent
	if len(s.injectQueue) > 0 {
		evt = s.injectQueue[0]
		copy(s.injectQueue, s.injectQueue[1:])
		s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	} else {
		mx, my := ebiten.CursorPosition()
		_, wy := ebiten.Wheel()
		evt = syntheticPointerEvent{
			x:       float64(mx),
			y:       float64(my),
			pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
			wheel:   wy,
		}
	}
	s.processPointer(evt)
}

func (s *Scene) processPointer(evt syntheticPointerEvent) {
	hit := s.HitTest(evt.x, evt.y)
	if hit != s.hovered {
		if s.hovered != nil && !s.hovered.disposed {
			s.fireHover(s.hovered, false, evt.x, evt.y)
		}
		if hit != nil {
			s.fireHover(hit, true, evt.x, evt.y)
		}
		if s.hover != nil && (hit == nil) != (s.hovered == nil) {
			s.hover.SetHovering(hit != nil)
		}
		s.hovered = hit
	}

	switch {
	case evt.pressed && !s.pointerDown:
		s.pointerDown = true
		s.pressedOn = hit
		s.orbit.press(evt.x, evt.y, hit != nil)
	case evt.pressed && s.pointerDown:
		s.orbit.move(s.camera, evt.x, evt.y)
	case !evt.pressed && s.pointerDown:
		s.pointerDown = false
		if hit != nil && hit == s.pressedOn {
			s.fireClick(hit, evt.x, evt.y)
		}
		s.pressedOn = nil
		s.orbit.release()
	}
	s.orbit.wheel(s.camera, evt.wheel)
}

func (s *Scene) fireHover(n *Node, hovering bool, x, y float64) {
	n.hovered = hovering
	if n.OnHover != nil {
		n.OnHover(HoverContext{Node: n, Hovering: hovering, ScreenX: x, ScreenY: y})
	}
	typ := EventPointerLeave
	if hovering {
		typ = EventPointerEnter
	}
	s.Emit(InteractionEvent{Type: typ, NodeID: n.ID, NodeName: n.Name, ScreenX: x, ScreenY: y})
}

func (s *Scene) fireClick(n *Node, x, y float64) {
	if n.OnClick != nil {
		n.OnClick(ClickContext{Node: n, ScreenX: x, ScreenY: y})
	}
	s.Emit(InteractionEvent{Type: EventClick, NodeID: n.ID, NodeName: n.Name, ScreenX: x, ScreenY: y})
}

// Hovered returns the node currently under the pointer, or nil.
func (s *Scene) Hovered() *Node {
	return s.hovered
}

// IsHovered reports whether the pointer is over n.
func (n *Node) IsHovered() bool {
	return n.hovered
}
