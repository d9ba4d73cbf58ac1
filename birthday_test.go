package birthday

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// --- Rect ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 9, 40, false},
		{"outside below", 50, 71, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	base := Rect{10, 10, 100, 100}
	tests := []struct {
		name   string
		other  Rect
		expect bool
	}{
		{"overlapping", Rect{50, 50, 100, 100}, true},
		{"adjacent right", Rect{110, 10, 50, 50}, true},
		{"disjoint below", Rect{10, 111, 50, 50}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.expect {
				t.Errorf("Rect%v.Intersects(Rect%v) = %v, want %v", base, tt.other, got, tt.expect)
			}
		})
	}
}

// --- Blend / enums ---

func TestBlendModeEbitenBlend(t *testing.T) {
	if BlendNormal.EbitenBlend() != ebiten.BlendSourceOver {
		t.Error("BlendNormal should map to BlendSourceOver")
	}
	if BlendAdd.EbitenBlend() != ebiten.BlendLighter {
		t.Error("BlendAdd should map to BlendLighter")
	}
	if BlendScreen.EbitenBlend() == (ebiten.Blend{}) {
		t.Error("BlendScreen returned zero blend")
	}
}

func TestEnumValues(t *testing.T) {
	if NodeGroup != 0 || NodePoints != 3 {
		t.Errorf("NodeKind iota drift: group=%d points=%d", NodeGroup, NodePoints)
	}
	if EventPointerEnter != 0 || EventStateChange != 3 {
		t.Errorf("EventType iota drift: enter=%d state=%d", EventPointerEnter, EventStateChange)
	}
	if NodeMesh.String() != "mesh" || NodeKind(99).String() != "unknown" {
		t.Error("NodeKind.String mismatch")
	}
}

// --- Color ---

func TestColorFromHSL(t *testing.T) {
	c := ColorFromHSL(0, 1, 0.5)
	assertNear(t, "R", c.R, 1)
	assertNear(t, "G", c.G, 0)
	assertNear(t, "B", c.B, 0)
	assertNear(t, "A", c.A, 1)
}

func TestColorFromHex(t *testing.T) {
	c, err := ColorFromHex("#ff0080")
	if err != nil {
		t.Fatalf("ColorFromHex: %v", err)
	}
	assertNear(t, "R", c.R, 1)
	assertNear(t, "G", c.G, 0)
	if math.Abs(c.B-128.0/255.0) > 1e-6 {
		t.Errorf("B = %v, want %v", c.B, 128.0/255.0)
	}
	if _, err := ColorFromHex("nope"); err == nil {
		t.Error("expected error for invalid hex")
	}
}

func TestColorScaleClamps(t *testing.T) {
	c := Color{0.5, 0.8, 0.1, 0.7}.Scale(2)
	assertNear(t, "R", c.R, 1)
	assertNear(t, "G", c.G, 1)
	assertNear(t, "B", c.B, 0.2)
	assertNear(t, "A", c.A, 0.7)
}

func TestColorToRGBAPremultiplies(t *testing.T) {
	got := Color{1, 1, 1, 0.5}.toRGBA()
	if got.A != 128 || got.R != 128 {
		t.Errorf("toRGBA = %+v, want premultiplied ~128", got)
	}
}

func BenchmarkRectContains(b *testing.B) {
	r := Rect{10, 20, 100, 50}
	b.ReportAllocs()
	for b.Loop() {
		_ = r.Contains(50, 40)
	}
}
