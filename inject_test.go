package birthday

import "testing"

func TestInjectPressRelease(t *testing.T) {
	s, _ := newTestScene()
	var clicks int
	addButton(s, "box", 0, &clicks)

	s.InjectPress(400, 300)
	s.InjectRelease(400, 300)
	s.InjectMove(400, 300)
	if s.PendingInput() != 3 {
		t.Fatalf("PendingInput = %d, want 3", s.PendingInput())
	}
	s.Step(0)
	if clicks != 0 {
		t.Fatalf("clicks = %d after press, want 0", clicks)
	}
	s.Step(0)
	if clicks != 1 {
		t.Fatalf("clicks = %d after release, want 1", clicks)
	}
	s.Step(0)
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestInjectQueueConsumedOnePerFrame(t *testing.T) {
	s, _ := newTestScene()
	s.InjectClick(1, 1)
	s.InjectClick(2, 2)
	for want := 3; want >= 0; want-- {
		s.Step(0)
		if s.PendingInput() != want {
			t.Fatalf("PendingInput = %d, want %d", s.PendingInput(), want)
		}
	}
}

func TestInjectDragQueuesHeldMoves(t *testing.T) {
	s, _ := newTestScene()
	s.InjectDrag(0, 0, 100, 50, 4)
	if s.PendingInput() != 4 {
		t.Fatalf("PendingInput = %d, want 4", s.PendingInput())
	}
	for i, evt := range s.injectQueue {
		if want := i < 3; evt.pressed != want {
			t.Errorf("event %d pressed = %v, want %v", i, evt.pressed, want)
		}
	}
	assertNear(t, "move x", s.injectQueue[1].x, 100.0/3)
	assertNear(t, "move y", s.injectQueue[1].y, 50.0/3)

	s.InjectDrag(0, 0, 1, 1, 1)
	if s.PendingInput() != 6 {
		t.Errorf("PendingInput = %d, short drags need press and release", s.PendingInput())
	}
}
