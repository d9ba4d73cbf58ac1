package birthday

import "math"

// Vertex3 is a mesh vertex in local space with texture coordinates in [0, 1].
type Vertex3 struct {
	Pos  Vec3
	U, V float64
}

// Geometry is an indexed triangle list. Triangles are counter-clockwise when
// viewed from outside.
type Geometry struct {
	Vertices []Vertex3
	Indices  []uint16
}

// Bounds returns the local-space axis-aligned bounding box.
func (g *Geometry) Bounds() (min, max Vec3) {
	if g == nil || len(g.Vertices) == 0 {
		return Vec3{}, Vec3{}
	}
	min = g.Vertices[0].Pos
	max = min
	for _, v := range g.Vertices[1:] {
		for a := 0; a < 3; a++ {
			min[a] = math.Min(min[a], v.Pos[a])
			max[a] = math.Max(max[a], v.Pos[a])
		}
	}
	return min, max
}

// TriangleCount returns the number of triangles.
func (g *Geometry) TriangleCount() int {
	if g == nil {
		return 0
	}
	return len(g.Indices) / 3
}

// appendQuad adds two triangles a-b-c, a-c-d with full UV coverage.
func (g *Geometry) appendQuad(a, b, c, d Vec3) {
	base := uint16(len(g.Vertices))
	g.Vertices = append(g.Vertices,
		Vertex3{Pos: a, U: 0, V: 1},
		Vertex3{Pos: b, U: 1, V: 1},
		Vertex3{Pos: c, U: 1, V: 0},
		Vertex3{Pos: d, U: 0, V: 0},
	)
	g.Indices = append(g.Indices, base, base+1, base+2, base, base+2, base+3)
}

// BoxGeometry returns an axis-aligned box centered at the origin.
func BoxGeometry(w, h, d float64) *Geometry {
	x, y, z := w/2, h/2, d/2
	g := &Geometry{}
	// front, back, left, right, top, bottom
	g.appendQuad(Vec3{-x, -y, z}, Vec3{x, -y, z}, Vec3{x, y, z}, Vec3{-x, y, z})
	g.appendQuad(Vec3{x, -y, -z}, Vec3{-x, -y, -z}, Vec3{-x, y, -z}, Vec3{x, y, -z})
	g.appendQuad(Vec3{-x, -y, -z}, Vec3{-x, -y, z}, Vec3{-x, y, z}, Vec3{-x, y, -z})
	g.appendQuad(Vec3{x, -y, z}, Vec3{x, -y, -z}, Vec3{x, y, -z}, Vec3{x, y, z})
	g.appendQuad(Vec3{-x, y, z}, Vec3{x, y, z}, Vec3{x, y, -z}, Vec3{-x, y, -z})
	g.appendQuad(Vec3{-x, -y, -z}, Vec3{x, -y, -z}, Vec3{x, -y, z}, Vec3{-x, -y, z})
	return g
}

// PlaneGeometry returns a w×h rectangle in the XY plane facing +Z.
func PlaneGeometry(w, h float64) *Geometry {
	x, y := w/2, h/2
	g := &Geometry{}
	g.appendQuad(Vec3{-x, -y, 0}, Vec3{x, -y, 0}, Vec3{x, y, 0}, Vec3{-x, y, 0})
	return g
}

// CylinderGeometry returns a capped cylinder along Y centered at the origin.
// Fewer than 3 segments is raised to 3.
func CylinderGeometry(radiusTop, radiusBottom, height float64, segments int) *Geometry {
	if segments < 3 {
		segments = 3
	}
	g := &Geometry{}
	hy := height / 2
	ring := func(r, y float64, i int) Vec3 {
		a := 2 * math.Pi * float64(i%segments) / float64(segments)
		return Vec3{r * math.Cos(a), y, -r * math.Sin(a)}
	}
	for i := 0; i < segments; i++ {
		b0, b1 := ring(radiusBottom, -hy, i), ring(radiusBottom, -hy, i+1)
		t0, t1 := ring(radiusTop, hy, i), ring(radiusTop, hy, i+1)
		g.appendQuad(b0, b1, t1, t0)
	}
	g.appendFan(Vec3{0, hy, 0}, func(i int) Vec3 { return ring(radiusTop, hy, i) }, segments, false)
	g.appendFan(Vec3{0, -hy, 0}, func(i int) Vec3 { return ring(radiusBottom, -hy, i) }, segments, true)
	return g
}

func (g *Geometry) appendFan(center Vec3, rim func(int) Vec3, segments int, flip bool) {
	c := uint16(len(g.Vertices))
	g.Vertices = append(g.Vertices, Vertex3{Pos: center, U: 0.5, V: 0.5})
	for i := 0; i <= segments; i++ {
		g.Vertices = append(g.Vertices, Vertex3{Pos: rim(i), U: 0.5, V: 0.5})
	}
	for i := 0; i < segments; i++ {
		a, b := c+1+uint16(i), c+2+uint16(i)
		if flip {
			a, b = b, a
		}
		g.Indices = append(g.Indices, c, a, b)
	}
}

// SphereGeometry returns a UV sphere. Fewer than 3 segments or 2 rings is
// raised to those minimums.
func SphereGeometry(radius float64, segments, rings int) *Geometry {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}
	g := &Geometry{}
	for r := 0; r <= rings; r++ {
		phi := math.Pi * float64(r) / float64(rings)
		for s := 0; s <= segments; s++ {
			theta := 2 * math.Pi * float64(s) / float64(segments)
			g.Vertices = append(g.Vertices, Vertex3{
				Pos: Vec3{
					radius * math.Sin(phi) * math.Cos(theta),
					radius * math.Cos(phi),
					-radius * math.Sin(phi) * math.Sin(theta),
				},
				U: float64(s) / float64(segments),
				V: float64(r) / float64(rings),
			})
		}
	}
	stride := uint16(segments + 1)
	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			a := uint16(r)*stride + uint16(s)
			b := a + stride
			g.Indices = append(g.Indices, a, b, b+1, a, b+1, a+1)
		}
	}
	return g
}
