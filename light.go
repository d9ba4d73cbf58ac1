package birthday

import "math"

// LightType selects how a Light contributes to mesh shading.
type LightType uint8

const (
	LightAmbient     LightType = iota // uniform contribution
	LightDirectional                  // parallel rays along Direction
	LightPoint                        // radiates from the node's world position
)

// Light describes one light source. Point lights attenuate linearly to zero
// at Range; a zero Range means no attenuation.
type Light struct {
	Type      LightType
	Color     Color
	Intensity float64
	Direction Vec3 // direction the light travels (directional only)
	Range     float64
}

// activeLight is a light resolved to world space for one frame.
type activeLight struct {
	light    *Light
	position Vec3
	dir      Vec3 // normalized, pointing from surface toward the light
}

// collectLights gathers visible lights in world space.
func collectLights(n *Node, buf []activeLight) []activeLight {
	if !n.Visible {
		return buf
	}
	if n.Kind == NodeLight && n.Light != nil {
		al := activeLight{light: n.Light, position: n.WorldPosition()}
		if n.Light.Type == LightDirectional {
			d := n.Light.Direction
			if d.Len() > 0 {
				al.dir = d.Normalize().Mul(-1)
			}
		}
		buf = append(buf, al)
	}
	for _, c := range n.children {
		buf = collectLights(c, buf)
	}
	return buf
}

// shade returns the lit color of a surface with the given world-space normal
// and centroid. With no lights the base color is returned unchanged.
func shade(base Color, normal, at Vec3, lights []activeLight) Color {
	if len(lights) == 0 {
		return base
	}
	var r, g, b float64
	for i := range lights {
		l := &lights[i]
		k := l.light.Intensity
		switch l.light.Type {
		case LightDirectional:
			k *= math.Max(0, normal.Dot(l.dir))
		case LightPoint:
			toLight := l.position.Sub(at)
			dist := toLight.Len()
			if dist == 0 {
				continue
			}
			k *= math.Max(0, normal.Dot(toLight.Mul(1/dist)))
			if l.light.Range > 0 {
				k *= math.Max(0, 1-dist/l.light.Range)
			}
		}
		r += k * l.light.Color.R
		g += k * l.light.Color.G
		b += k * l.light.Color.B
	}
	return Color{
		R: clamp01(base.R * r),
		G: clamp01(base.G * g),
		B: clamp01(base.B * b),
		A: base.A,
	}
}
