package birthday

import "testing"

// outwardFacing reports whether every triangle's normal points away from the
// geometry's center.
func outwardFacing(t *testing.T, g *Geometry) {
	t.Helper()
	for i := 0; i+2 < len(g.Indices); i += 3 {
		a := g.Vertices[g.Indices[i]].Pos
		b := g.Vertices[g.Indices[i+1]].Pos
		c := g.Vertices[g.Indices[i+2]].Pos
		n := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).Mul(1.0 / 3)
		if n.Len() < 1e-12 {
			continue
		}
		if n.Dot(centroid) < -1e-9 {
			t.Fatalf("triangle %d faces inward: normal %v centroid %v", i/3, n, centroid)
		}
	}
}

func TestBoxGeometry(t *testing.T) {
	g := BoxGeometry(2, 4, 6)
	if g.TriangleCount() != 12 {
		t.Errorf("triangles = %d, want 12", g.TriangleCount())
	}
	lo, hi := g.Bounds()
	assertVecNear(t, "min", lo, Vec3{-1, -2, -3})
	assertVecNear(t, "max", hi, Vec3{1, 2, 3})
	outwardFacing(t, g)
}

func TestPlaneGeometryFacesPlusZ(t *testing.T) {
	g := PlaneGeometry(2, 1)
	if g.TriangleCount() != 2 {
		t.Fatalf("triangles = %d, want 2", g.TriangleCount())
	}
	a := g.Vertices[g.Indices[0]].Pos
	b := g.Vertices[g.Indices[1]].Pos
	c := g.Vertices[g.Indices[2]].Pos
	if n := b.Sub(a).Cross(c.Sub(a)); n[2] <= 0 {
		t.Errorf("normal = %v, want +Z", n)
	}
}

func TestCylinderGeometry(t *testing.T) {
	g := CylinderGeometry(0.5, 0.5, 2, 12)
	lo, hi := g.Bounds()
	assertNear(t, "min y", lo[1], -1)
	assertNear(t, "max y", hi[1], 1)
	outwardFacing(t, g)

	if CylinderGeometry(1, 1, 1, 1).TriangleCount() != CylinderGeometry(1, 1, 1, 3).TriangleCount() {
		t.Error("segments below 3 should be raised to 3")
	}
}

func TestSphereGeometry(t *testing.T) {
	g := SphereGeometry(1, 12, 8)
	for i, v := range g.Vertices {
		assertNear(t, "radius", v.Pos.Len(), 1)
		if i > 50 {
			break
		}
	}
	outwardFacing(t, g)
}

func TestNilGeometry(t *testing.T) {
	var g *Geometry
	if g.TriangleCount() != 0 {
		t.Error("nil geometry should have no triangles")
	}
	lo, hi := g.Bounds()
	if lo != (Vec3{}) || hi != (Vec3{}) {
		t.Error("nil geometry should have zero bounds")
	}
}
