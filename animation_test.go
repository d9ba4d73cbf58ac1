package birthday

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestDropInEndpoints(t *testing.T) {
	rest := at(1, 2, 3)
	a := DropIn(rest, 3, 1.2)
	assertNear(t, "start y", a(0).Position[1], 5)
	assertNear(t, "end y", a(1.2).Position[1], 2)
	assertNear(t, "after y", a(10).Position[1], 2)
	if a(0).Position[0] != 1 || a(0).Position[2] != 3 {
		t.Error("DropIn should only move Y")
	}
}

func TestDropInIsPure(t *testing.T) {
	a := DropIn(IdentityTransform, 2, 1)
	first := a(0.37)
	for i := 0; i < 5; i++ {
		if a(0.37) != first {
			t.Fatal("same elapsed should give the same transform")
		}
	}
}

func TestSlideInEndpoints(t *testing.T) {
	rest := at(0, 0, 0)
	a := SlideIn(rest, Vec3{-6, 0, 0}, 0.9)
	assertNear(t, "start x", a(0).Position[0], -6)
	assertNear(t, "end x", a(0.9).Position[0], 0)
	if mid := a(0.45).Position[0]; mid <= -6 || mid >= 0 {
		t.Errorf("mid x = %v, want between -6 and 0", mid)
	}
}

func TestBobPeriodic(t *testing.T) {
	rest := at(0, 1, 0)
	a := Bob(rest, 0.1, 2)
	assertNear(t, "t=0", a(0).Position[1], 1)
	assertNear(t, "quarter", a(0.125).Position[1], 1.1)
	assertNear(t, "period", a(0.5).Position[1], a(0).Position[1])
}

func TestFlickerKeepsVolumeNearRest(t *testing.T) {
	a := Flicker(IdentityTransform, 0.12)
	for _, e := range []float64{0, 0.1, 0.7, 3.3} {
		s := a(e).Scale
		if math.Abs(s[1]-1) > 0.12+1e-9 {
			t.Errorf("scale y at %v = %v, beyond amount", e, s[1])
		}
		assertNear(t, "xz balance", s[0]+s[1], 2)
	}
}

func TestSpin(t *testing.T) {
	a := Spin(IdentityTransform, math.Pi)
	assertNear(t, "rot", a(0.5).Rotation[1], math.Pi/2)
}

func TestSequenceSwitchesClock(t *testing.T) {
	first := func(float64) Transform { return at(0, 9, 0) }
	second := func(e float64) Transform { return at(e, 0, 0) }
	a := Sequence(first, 1, second)
	if a(0.5).Position[1] != 9 {
		t.Error("before switch should use first")
	}
	assertNear(t, "second clock", a(1.25).Position[0], 0.25)
}

func TestTweenPosition(t *testing.T) {
	n := NewGroup("n")
	g := TweenPosition(n, Vec3{10, 0, 0}, 1, ease.Linear)
	g.Update(0.5)
	if math.Abs(n.Position[0]-5) > 1e-4 {
		t.Errorf("x = %v, want 5", n.Position[0])
	}
	if g.Done {
		t.Error("should not be done halfway")
	}
	g.Update(0.6)
	if !g.Done {
		t.Error("should be done")
	}
	if !n.transformDirty {
		t.Error("tween should mark the node dirty")
	}
}

func TestTweenScaleAndColor(t *testing.T) {
	n := NewMesh("m", BoxGeometry(1, 1, 1), Color{0, 0, 0, 1})
	s := TweenScale(n, Vec3{2, 2, 2}, 1, ease.Linear)
	c := TweenColor(n, Color{1, 1, 1, 1}, 1, ease.Linear)
	s.Update(1)
	c.Update(1)
	assertVecNear(t, "scale", n.Scale, Vec3{2, 2, 2})
	assertNear(t, "red", n.Color.R, 1)
}

func TestTweenStopsOnDisposed(t *testing.T) {
	n := NewGroup("n")
	g := TweenPosition(n, Vec3{1, 1, 1}, 1, ease.Linear)
	n.Dispose()
	g.Update(0.1)
	if !g.Done {
		t.Error("tween on a disposed node should finish")
	}
}
