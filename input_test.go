package birthday

import "testing"

// fakeHover records hover adapter calls.
type fakeHover struct {
	calls []bool
}

func (f *fakeHover) SetHovering(h bool) { f.calls = append(f.calls, h) }

// addButton adds an interactable unit box at z with a click counter.
func addButton(s *Scene, name string, z float64, clicks *int) *Node {
	n := NewMesh(name, BoxGeometry(1, 1, 1), ColorWhite)
	n.SetPosition(0, 0, z)
	n.Interactable = true
	n.OnClick = func(ClickContext) { *clicks++ }
	s.Root().AddChild(n)
	return n
}

func TestScreenBounds(t *testing.T) {
	s, _ := newTestScene()
	var clicks int
	n := addButton(s, "box", 0, &clicks)
	s.Step(0)

	r, depth, ok := s.ScreenBounds(n)
	if !ok {
		t.Fatal("box should be on screen")
	}
	if !r.Contains(400, 300) {
		t.Errorf("bounds %+v should contain the screen center", r)
	}
	if r.Contains(10, 10) {
		t.Errorf("bounds %+v should not contain the corner", r)
	}
	if depth < -1 || depth > 1 {
		t.Errorf("depth = %v", depth)
	}
}

func TestScreenBoundsGroup(t *testing.T) {
	s, _ := newTestScene()
	g := NewGroup("g")
	left := NewMesh("left", BoxGeometry(0.5, 0.5, 0.5), ColorWhite)
	left.SetPosition(-1, 0, 0)
	right := NewMesh("right", BoxGeometry(0.5, 0.5, 0.5), ColorWhite)
	right.SetPosition(1, 0, 0)
	g.AddChild(left)
	g.AddChild(right)
	s.Root().AddChild(g)
	s.Step(0)

	r, _, ok := s.ScreenBounds(g)
	if !ok || !r.Contains(400, 300) {
		t.Errorf("group bounds %+v should span both children", r)
	}
	if _, _, ok := s.ScreenBounds(NewGroup("empty")); ok {
		t.Error("empty group should have no bounds")
	}
}

func TestHitTestNearestWins(t *testing.T) {
	s, _ := newTestScene()
	var backClicks, frontClicks int
	addButton(s, "back", -2, &backClicks)
	front := addButton(s, "front", 1, &frontClicks)
	s.Step(0)

	if got := s.HitTest(400, 300); got != front {
		t.Errorf("HitTest = %v, want front", got)
	}
	if got := s.HitTest(5, 5); got != nil {
		t.Errorf("HitTest corner = %v, want nil", got.Name)
	}
}

func TestHitTestSkipsHiddenAndInert(t *testing.T) {
	s, _ := newTestScene()
	var clicks int
	n := addButton(s, "box", 0, &clicks)
	s.Step(0)

	n.Visible = false
	if s.HitTest(400, 300) != nil {
		t.Error("hidden node should not be hit")
	}
	n.Visible = true
	n.Interactable = false
	if s.HitTest(400, 300) != nil {
		t.Error("non-interactable node should not be hit")
	}
	n.Interactable = true
	n.OnClick = nil
	if s.HitTest(400, 300) != nil {
		t.Error("node without handlers should not be hit")
	}
}

func TestInjectClickFiresOnRelease(t *testing.T) {
	s, _ := newTestScene()
	store := &recordStore{}
	s.SetEntityStore(store)
	var clicks int
	addButton(s, "box", 0, &clicks)

	s.InjectClick(400, 300)
	if s.PendingInput() != 2 {
		t.Fatalf("PendingInput = %d, want 2", s.PendingInput())
	}
	s.Step(0)
	if clicks != 0 {
		t.Fatal("click should not fire on press")
	}
	s.Step(0)
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	if s.PendingInput() != 0 {
		t.Error("queue should be drained")
	}
	if store.count(EventClick) != 1 {
		t.Errorf("click events = %d, want 1", store.count(EventClick))
	}
}

func TestClickRequiresSameNode(t *testing.T) {
	s, _ := newTestScene()
	var clicks int
	addButton(s, "box", 0, &clicks)

	s.injectQueue = append(s.injectQueue,
		syntheticPointerEvent{x: 400, y: 300, pressed: true},
		syntheticPointerEvent{x: 5, y: 5},
	)
	s.Step(0)
	s.Step(0)
	if clicks != 0 {
		t.Errorf("clicks = %d, want 0 when released elsewhere", clicks)
	}
}

func TestHoverEnterLeave(t *testing.T) {
	s, hover := newTestScene()
	store := &recordStore{}
	s.SetEntityStore(store)
	var clicks int
	n := addButton(s, "box", 0, &clicks)
	var states []bool
	n.OnHover = func(ctx HoverContext) { states = append(states, ctx.Hovering) }

	s.InjectMove(400, 300)
	s.Step(0)
	if !n.IsHovered() || s.Hovered() != n {
		t.Fatal("node should be hovered")
	}
	s.InjectMove(410, 305)
	s.Step(0)
	s.InjectMove(5, 5)
	s.Step(0)
	if n.IsHovered() || s.Hovered() != nil {
		t.Error("node should no longer be hovered")
	}

	if len(states) != 2 || !states[0] || states[1] {
		t.Errorf("hover callbacks = %v, want [true false]", states)
	}
	if len(hover.calls) != 2 || !hover.calls[0] || hover.calls[1] {
		t.Errorf("adapter calls = %v, want [true false]", hover.calls)
	}
	if store.count(EventPointerEnter) != 1 || store.count(EventPointerLeave) != 1 {
		t.Errorf("events = %+v", store.events)
	}
}

func TestHoverMovesBetweenNodesKeepsAdapterOn(t *testing.T) {
	s, hover := newTestScene()
	var clicks int
	a := NewMesh("a", BoxGeometry(1, 1, 1), ColorWhite)
	a.SetPosition(-1.5, 0, 0)
	a.Interactable = true
	a.OnClick = func(ClickContext) { clicks++ }
	s.Root().AddChild(a)
	b := NewMesh("b", BoxGeometry(1, 1, 1), ColorWhite)
	b.SetPosition(1.5, 0, 0)
	b.Interactable = true
	b.OnClick = func(ClickContext) { clicks++ }
	s.Root().AddChild(b)
	s.Step(0)

	ax, ay, _, _ := s.Camera().Project(Vec3{-1.5, 0, 0})
	bx, by, _, _ := s.Camera().Project(Vec3{1.5, 0, 0})
	s.InjectMove(ax, ay)
	s.Step(0)
	s.InjectMove(bx, by)
	s.Step(0)

	if s.Hovered() != b {
		t.Fatal("b should be hovered")
	}
	if len(hover.calls) != 1 || !hover.calls[0] {
		t.Errorf("adapter calls = %v, want a single true", hover.calls)
	}
}
