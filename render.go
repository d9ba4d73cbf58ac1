package birthday

import (
	"image"
	"math"
	"sort"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// maxBatchVertices keeps DrawTriangles under the uint16 index limit.
const maxBatchVertices = 65532

// renderTri is one projected, shaded triangle queued for painter sorting.
type renderTri struct {
	x, y    [3]float32
	u, v    [3]float32
	color   color32
	depth   float64
	texture *ebiten.Image
}

// color32 is a compact RGBA color using float32, for render commands only.
type color32 struct {
	R, G, B, A float32
}

func toColor32(c Color) color32 {
	return color32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}

var whitePixel *ebiten.Image

// whiteImage lazily creates the 3x3 white source used for untextured
// triangles; sampling its center avoids edge bleeding.
func whiteImage() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(ColorWhite.toRGBA())
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

// Draw renders the scene: meshes back-to-front, then point clouds additively.
func (s *Scene) Draw(screen *ebiten.Image) {
	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}

	vp := s.camera.ViewProjection()
	s.lights = collectLights(s.root, s.lights[:0])
	s.tris = s.tris[:0]
	s.collectTriangles(s.root, vp)

	if s.debug {
		stats.traverseTime = time.Since(t0)
		t0 = time.Now()
	}

	sort.SliceStable(s.tris, func(i, j int) bool { return s.tris[i].depth > s.tris[j].depth })

	if s.debug {
		stats.sortTime = time.Since(t0)
		t0 = time.Now()
	}

	stats.drawCalls = s.submitTriangles(screen)
	stats.triangles = len(s.tris)
	stats.points, stats.drawCalls = s.drawPoints(screen, s.root, vp, 0, stats.drawCalls)

	if s.debug {
		stats.submitTime = time.Since(t0)
		s.debugLog(stats)
	}
}

// collectTriangles walks visible meshes, shading and projecting triangles.
func (s *Scene) collectTriangles(n *Node, vp mgl64.Mat4) {
	if !n.Visible {
		return
	}
	if n.Kind == NodeMesh && n.Geometry != nil {
		s.appendMesh(n, vp)
	}
	for _, c := range n.children {
		s.collectTriangles(c, vp)
	}
}

func (s *Scene) appendMesh(n *Node, vp mgl64.Mat4) {
	g := n.Geometry
	vw := s.camera.Viewport
	for i := 0; i+2 < len(g.Indices); i += 3 {
		var world [3]Vec3
		var tri renderTri
		inFront := true
		for k := 0; k < 3; k++ {
			v := g.Vertices[g.Indices[i+k]]
			world[k] = n.LocalToWorld(v.Pos)
			x, y, z, ok := projectWith(vp, vw, world[k])
			if !ok {
				inFront = false
				break
			}
			tri.x[k], tri.y[k] = float32(x), float32(y)
			tri.u[k], tri.v[k] = float32(v.U), float32(v.V)
			tri.depth += z / 3
		}
		if !inFront || !triBounds(&tri).Intersects(vw) {
			continue
		}
		// Back-face cull in screen space (y down flips the winding sign).
		area := (tri.x[1]-tri.x[0])*(tri.y[2]-tri.y[0]) - (tri.y[1]-tri.y[0])*(tri.x[2]-tri.x[0])
		if area >= 0 {
			continue
		}
		c := n.Color
		if !n.Unlit {
			normal := world[1].Sub(world[0]).Cross(world[2].Sub(world[0]))
			if l := normal.Len(); l > 0 {
				normal = normal.Mul(1 / l)
			}
			centroid := world[0].Add(world[1]).Add(world[2]).Mul(1.0 / 3)
			c = shade(c, normal, centroid, s.lights)
		}
		tri.color = toColor32(c)
		tri.texture = n.Texture
		s.tris = append(s.tris, tri)
	}
}

// triBounds returns the screen-space bounding box of a projected triangle.
func triBounds(t *renderTri) Rect {
	minX := min(t.x[0], t.x[1], t.x[2])
	minY := min(t.y[0], t.y[1], t.y[2])
	return Rect{
		X:      float64(minX),
		Y:      float64(minY),
		Width:  float64(max(t.x[0], t.x[1], t.x[2]) - minX),
		Height: float64(max(t.y[0], t.y[1], t.y[2]) - minY),
	}
}

// submitTriangles batches sorted triangles into DrawTriangles calls, flushing
// on texture changes and at the vertex limit. Returns the draw call count.
func (s *Scene) submitTriangles(screen *ebiten.Image) int {
	calls := 0
	var current *ebiten.Image
	s.verts = s.verts[:0]
	s.indices = s.indices[:0]

	flush := func() {
		if len(s.verts) == 0 {
			return
		}
		src := current
		if src == nil {
			src = whiteImage()
		}
		screen.DrawTriangles(s.verts, s.indices, src, &ebiten.DrawTrianglesOptions{})
		calls++
		s.verts = s.verts[:0]
		s.indices = s.indices[:0]
	}

	for i := range s.tris {
		t := &s.tris[i]
		if t.texture != current || len(s.verts)+3 > maxBatchVertices {
			flush()
			current = t.texture
		}
		src := current
		if src == nil {
			src = whiteImage()
		}
		b := src.Bounds()
		base := uint16(len(s.verts))
		for k := 0; k < 3; k++ {
			sx := float32(b.Min.X) + t.u[k]*float32(b.Dx())
			sy := float32(b.Min.Y) + t.v[k]*float32(b.Dy())
			if current == nil {
				sx, sy = float32(b.Min.X)+0.5, float32(b.Min.Y)+0.5
			}
			s.verts = append(s.verts, ebiten.Vertex{
				DstX: t.x[k], DstY: t.y[k],
				SrcX: sx, SrcY: sy,
				ColorR: t.color.R * t.color.A,
				ColorG: t.color.G * t.color.A,
				ColorB: t.color.B * t.color.A,
				ColorA: t.color.A,
			})
		}
		s.indices = append(s.indices, base, base+1, base+2)
	}
	flush()
	return calls
}

// drawPoints renders every drawn Fireworks point cloud as camera-facing quads
// with additive blending. Points never occlude meshes.
func (s *Scene) drawPoints(screen *ebiten.Image, n *Node, vp mgl64.Mat4, points, calls int) (int, int) {
	if !n.Visible {
		return points, calls
	}
	if n.Kind == NodePoints && n.Fireworks != nil && n.Fireworks.Drawn() {
		drawn := s.appendPointQuads(n, vp)
		if drawn > 0 {
			opts := &ebiten.DrawTrianglesOptions{Blend: n.Fireworks.Points().Blend.EbitenBlend()}
			screen.DrawTriangles(s.verts, s.indices, whiteImage(), opts)
			calls++
		}
		points += drawn
	}
	for _, c := range n.children {
		points, calls = s.drawPoints(screen, c, vp, points, calls)
	}
	return points, calls
}

// appendPointQuads fills the vertex buffers with one quad per visible
// particle. Positions are world space relative to the node. Colors are
// premultiplied by the cloud opacity.
func (s *Scene) appendPointQuads(n *Node, vp mgl64.Mat4) int {
	s.verts = s.verts[:0]
	s.indices = s.indices[:0]
	cloud := n.Fireworks.Points()
	src := whiteImage().Bounds()
	sx, sy := float32(src.Min.X)+0.5, float32(src.Min.Y)+0.5
	alpha := float32(cloud.Opacity)
	count := 0
	for i, p := range cloud.Positions {
		if p == Sentinel {
			continue
		}
		world := n.LocalToWorld(p)
		x, y, _, ok := projectWith(vp, s.camera.Viewport, world)
		if !ok {
			continue
		}
		half := math.Max(1, cloud.Size*s.camera.PixelsPerUnit(world.Sub(s.camera.Eye()).Len())/2)
		quad := Rect{X: x - half, Y: y - half, Width: 2 * half, Height: 2 * half}
		if !quad.Intersects(s.camera.Viewport) {
			continue
		}
		c := cloud.Particles[i].Color
		base := uint16(len(s.verts))
		fx, fy, fh := float32(x), float32(y), float32(half)
		for _, d := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			s.verts = append(s.verts, ebiten.Vertex{
				DstX: fx + d[0]*fh, DstY: fy + d[1]*fh,
				SrcX: sx, SrcY: sy,
				ColorR: float32(c.R) * alpha,
				ColorG: float32(c.G) * alpha,
				ColorB: float32(c.B) * alpha,
				ColorA: alpha,
			})
		}
		s.indices = append(s.indices, base, base+1, base+2, base, base+2, base+3)
		count++
	}
	return count
}
