package birthday

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestCameraProjectTargetIsCentered(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.Position = Vec3{0, 3, 9}
	cam.Target = Vec3{0, 1, 0}

	x, y, depth, ok := cam.Project(cam.Target)
	if !ok {
		t.Fatal("target should be projectable")
	}
	assertNear(t, "x", x, 400)
	assertNear(t, "y", y, 300)
	if depth <= -1 || depth >= 1 {
		t.Errorf("depth = %v, want within (-1, 1)", depth)
	}
}

func TestCameraProjectAxes(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cx, cy, _, _ := cam.Project(Vec3{0, 0, 0})
	rx, _, _, _ := cam.Project(Vec3{1, 0, 0})
	_, uy, _, _ := cam.Project(Vec3{0, 1, 0})
	if rx <= cx {
		t.Errorf("+X should project right: %v <= %v", rx, cx)
	}
	if uy >= cy {
		t.Errorf("+Y should project up: %v >= %v", uy, cy)
	}
}

func TestCameraProjectBehind(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	if _, _, _, ok := cam.Project(Vec3{0, 0, 10}); ok {
		t.Error("point behind the camera should not project")
	}
}

func TestCameraNearerIsSmallerDepth(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	_, _, near, _ := cam.Project(Vec3{0, 0, 2})
	_, _, far, _ := cam.Project(Vec3{0, 0, -10})
	if near >= far {
		t.Errorf("near depth %v should be less than far depth %v", near, far)
	}
}

func TestCameraPixelsPerUnit(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	ppu := cam.PixelsPerUnit(5)
	// Measure via projection of a unit segment at distance 5.
	_, y0, _, _ := cam.Project(Vec3{0, 0, 0})
	_, y1, _, _ := cam.Project(Vec3{0, 1, 0})
	assertNear(t, "ppu", ppu, math.Abs(y1-y0))
	if cam.PixelsPerUnit(0) != 0 {
		t.Error("PixelsPerUnit(0) should be 0")
	}
}

func TestCameraMoveTo(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.MoveTo(Vec3{4, 0, 5}, 1, ease.Linear)
	if !cam.IsMoving() {
		t.Fatal("IsMoving should be true")
	}
	cam.update(0.5)
	if math.Abs(cam.Position[0]-2) > 1e-4 {
		t.Errorf("x at half = %v, want 2", cam.Position[0])
	}
	cam.update(0.6)
	if cam.IsMoving() {
		t.Error("IsMoving should be false after duration")
	}
	assertVecNear(t, "final", cam.Position, Vec3{4, 0, 5})
}

func TestCameraOrbitKeepsDistance(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.Orbit(math.Pi/2, 0)
	assertVecNear(t, "quarter turn", cam.Position, Vec3{5, 0, 0})
	assertNear(t, "distance", cam.Distance(), 5)

	cam.Orbit(0, 10)
	assertNear(t, "clamped pitch", cam.Position[1], 5*math.Sin(maxOrbitPitch))
	assertNear(t, "distance after pitch", cam.Distance(), 5)
}

func TestCameraOrbitCancelsMoveTo(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.MoveTo(Vec3{0, 0, 10}, 1, ease.Linear)
	cam.Orbit(0.1, 0)
	if cam.IsMoving() {
		t.Error("orbit should cancel the move")
	}
}

func TestCameraZoomClamps(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.MinDistance, cam.MaxDistance = 2, 8
	cam.Zoom(1)
	assertNear(t, "zoom in", cam.Distance(), 4)
	cam.Zoom(10)
	assertNear(t, "min", cam.Distance(), 2)
	cam.Zoom(-100)
	assertNear(t, "max", cam.Distance(), 8)
	assertVecNear(t, "direction kept", cam.Position, Vec3{0, 0, 8})
}

func TestCameraSway(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.SetSway(0.5, 0.3)
	assertVecNear(t, "at rest", cam.Eye(), cam.Position)
	cam.update(2)
	assertNear(t, "eye x", cam.Eye()[0], 0.5*math.Sin(0.6))
	assertVecNear(t, "position untouched", cam.Position, Vec3{0, 0, 5})

	cam.SetSway(0, 0)
	assertVecNear(t, "stopped", cam.Eye(), cam.Position)
}
