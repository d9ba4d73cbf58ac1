package birthday

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animator maps time since the animation was attached to a local transform.
// Animators must be pure: the same elapsed always yields the same transform.
type Animator func(elapsed float64) Transform

// easeAt evaluates a gween tween from a to b at elapsed seconds.
func easeAt(a, b, duration, elapsed float64, fn ease.TweenFunc) float64 {
	if duration <= 0 || elapsed >= duration {
		return b
	}
	if elapsed <= 0 {
		return a
	}
	v, _ := gween.New(float32(a), float32(b), float32(duration), fn).Set(float32(elapsed))
	return float64(v)
}

// DropIn falls from rest+height to rest over duration with a bounce.
func DropIn(rest Transform, height, duration float64) Animator {
	return func(elapsed float64) Transform {
		t := rest
		t.Position[1] = easeAt(rest.Position[1]+height, rest.Position[1], duration, elapsed, ease.OutBounce)
		return t
	}
}

// SlideIn moves from rest+offset to rest over duration, decelerating.
func SlideIn(rest Transform, offset Vec3, duration float64) Animator {
	return func(elapsed float64) Transform {
		t := rest
		for a := 0; a < 3; a++ {
			t.Position[a] = easeAt(rest.Position[a]+offset[a], rest.Position[a], duration, elapsed, ease.OutCubic)
		}
		return t
	}
}

// Bob oscillates vertically around rest with the given amplitude and
// frequency in Hz, tilting slightly in phase.
func Bob(rest Transform, amplitude, frequency float64) Animator {
	return func(elapsed float64) Transform {
		t := rest
		phase := 2 * math.Pi * frequency * elapsed
		t.Position[1] = rest.Position[1] + amplitude*math.Sin(phase)
		t.Rotation[2] = rest.Rotation[2] + amplitude*0.5*math.Sin(phase+math.Pi/2)
		return t
	}
}

// Flicker jitters the scale around rest like a candle flame.
func Flicker(rest Transform, amount float64) Animator {
	return func(elapsed float64) Transform {
		t := rest
		k := 1 + amount*(0.6*math.Sin(elapsed*23)+0.4*math.Sin(elapsed*37+1.3))
		t.Scale = Vec3{rest.Scale[0] * (2 - k), rest.Scale[1] * k, rest.Scale[2] * (2 - k)}
		return t
	}
}

// Wave swings the Z rotation as base + amplitude*sin(speed*elapsed), for
// waving arms.
func Wave(rest Transform, base, amplitude, speed float64) Animator {
	return func(elapsed float64) Transform {
		t := rest
		t.Rotation[2] = base + amplitude*math.Sin(speed*elapsed)
		return t
	}
}

// Spin rotates around Y at speed radians per second.
func Spin(rest Transform, speed float64) Animator {
	return func(elapsed float64) Transform {
		t := rest
		t.Rotation[1] = rest.Rotation[1] + speed*elapsed
		return t
	}
}

// Sequence runs first until switchAt, then second with its own clock.
func Sequence(first Animator, switchAt float64, second Animator) Animator {
	return func(elapsed float64) Transform {
		if elapsed < switchAt {
			return first(elapsed)
		}
		return second(elapsed - switchAt)
	}
}

// animation binds an Animator to a node for the scene driver.
type animation struct {
	node    *Node
	name    string
	fn      Animator
	started float64
}

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one via TweenPosition, TweenScale or TweenColor and call Update(dt)
// each frame. If the target node is disposed, the group stops immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	if g.target != nil {
		g.target.MarkDirty()
	}
}

// TweenPosition animates node.Position to the target over duration.
func TweenPosition(node *Node, to Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 3, target: node}
	for i := 0; i < 3; i++ {
		g.tweens[i] = gween.New(float32(node.Position[i]), float32(to[i]), duration, fn)
		g.fields[i] = &node.Position[i]
	}
	return g
}

// TweenScale animates node.Scale to the target over duration.
func TweenScale(node *Node, to Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 3, target: node}
	for i := 0; i < 3; i++ {
		g.tweens[i] = gween.New(float32(node.Scale[i]), float32(to[i]), duration, fn)
		g.fields[i] = &node.Scale[i]
	}
	return g
}

// TweenColor animates all four components of node.Color to the target.
func TweenColor(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4, target: node}
	g.tweens[0] = gween.New(float32(node.Color.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(node.Color.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(node.Color.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(node.Color.A), float32(to.A), duration, fn)
	g.fields[0] = &node.Color.R
	g.fields[1] = &node.Color.G
	g.fields[2] = &node.Color.B
	g.fields[3] = &node.Color.A
	return g
}
