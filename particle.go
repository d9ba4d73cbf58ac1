package birthday

import (
	"math"
	"math/rand/v2"
)

const (
	// BurstCount is the number of timed bursts per fireworks activation.
	BurstCount = 8
	// ParticlesPerBurst is the number of particles sharing one color and delay.
	ParticlesPerBurst = 100
	// TotalParticles is the fixed size of the point buffer.
	TotalParticles = BurstCount * ParticlesPerBurst

	// BurstStagger is the delay in seconds between consecutive bursts.
	BurstStagger = 0.4
	// Gravity is the vertical acceleration applied to every particle.
	Gravity = -2.5

	burstSaturation = 1.0
	burstLightness  = 0.6
	jitterExtent    = 1.0
	minSpeed        = 3.0
	speedSpan       = 6.0
	minLifetime     = 1.5
	lifetimeSpan    = 1.5
)

// Sentinel is the out-of-frustum position used for particles that are not
// yet started or already expired. Hidden particles keep their slot.
var Sentinel = Vec3{9999, 9999, 9999}

// RandSource supplies uniform samples in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// Particle holds the fixed kinematic parameters of one point. Immutable after
// the owning BurstSet is built.
type Particle struct {
	Origin      Vec3
	Velocity    Vec3
	Color       Color
	Lifetime    float64 // seconds
	StartOffset float64 // seconds after activation the particle appears
}

// Burst returns the index of the burst the particle belongs to.
func (p Particle) Burst() int {
	return int(math.Round(p.StartOffset / BurstStagger))
}

// BurstSet is the particle array for one fireworks invocation.
type BurstSet struct {
	origin    Vec3
	particles []Particle
}

// NewBurstSet samples TotalParticles particles around origin. A nil rng uses
// the global generator.
func NewBurstSet(origin Vec3, rng RandSource) *BurstSet {
	if rng == nil {
		rng = globalRand{}
	}
	s := &BurstSet{
		origin:    origin,
		particles: make([]Particle, TotalParticles),
	}
	for b := 0; b < BurstCount; b++ {
		c := ColorFromHSL(rng.Float64()*360, burstSaturation, burstLightness)
		offset := float64(b) * BurstStagger
		base := b * ParticlesPerBurst
		for i := 0; i < ParticlesPerBurst; i++ {
			s.particles[base+i] = sampleParticle(origin, c, offset, rng)
		}
	}
	return s
}

func sampleParticle(center Vec3, c Color, offset float64, rng RandSource) Particle {
	jitter := Vec3{
		(rng.Float64() - 0.5) * 2 * jitterExtent,
		(rng.Float64() - 0.5) * 2 * jitterExtent,
		(rng.Float64() - 0.5) * 2 * jitterExtent,
	}
	dir := sampleSphere(rng)
	speed := minSpeed + rng.Float64()*speedSpan
	return Particle{
		Origin:      center.Add(jitter),
		Velocity:    dir.Mul(speed),
		Color:       c,
		Lifetime:    minLifetime + rng.Float64()*lifetimeSpan,
		StartOffset: offset,
	}
}

// sampleSphere returns a unit vector uniformly distributed over the sphere.
// phi must come from acos(2u-1); a uniform phi clusters points at the poles.
func sampleSphere(rng RandSource) Vec3 {
	theta := rng.Float64() * 2 * math.Pi
	phi := math.Acos(2*rng.Float64() - 1)
	sinPhi := math.Sin(phi)
	return Vec3{
		sinPhi * math.Cos(theta),
		math.Cos(phi),
		sinPhi * math.Sin(theta),
	}
}

// Origin returns the launch point the set was built around.
func (s *BurstSet) Origin() Vec3 { return s.origin }

// Len returns the number of particles (always TotalParticles).
func (s *BurstSet) Len() int { return len(s.particles) }

// Particle returns the i-th particle by value.
func (s *BurstSet) Particle(i int) Particle { return s.particles[i] }

// Particles returns the particle slice. The returned slice MUST NOT be mutated.
func (s *BurstSet) Particles() []Particle { return s.particles }

// BurstAnimator computes presentation positions from a BurstSet. It holds no
// simulation state: every Update is a closed-form function of elapsed time.
type BurstAnimator struct {
	set       *BurstSet
	positions []Vec3
	visible   []bool
}

// NewBurstAnimator creates an animator with every slot at Sentinel.
func NewBurstAnimator(set *BurstSet) *BurstAnimator {
	a := &BurstAnimator{
		set:       set,
		positions: make([]Vec3, set.Len()),
		visible:   make([]bool, set.Len()),
	}
	a.HideAll()
	return a
}

// Update writes each particle's position for tActive seconds since
// activation and reports whether any particle is visible.
func (a *BurstAnimator) Update(tActive float64) bool {
	if math.IsNaN(tActive) || tActive < 0 {
		a.HideAll()
		return false
	}
	anyVisible := false
	for i := range a.set.particles {
		p := &a.set.particles[i]
		t := tActive - p.StartOffset
		if t < 0 || t > p.Lifetime {
			a.positions[i] = Sentinel
			a.visible[i] = false
			continue
		}
		a.positions[i] = Vec3{
			p.Origin[0] + p.Velocity[0]*t,
			p.Origin[1] + p.Velocity[1]*t + 0.5*Gravity*t*t,
			p.Origin[2] + p.Velocity[2]*t,
		}
		a.visible[i] = true
		anyVisible = true
	}
	return anyVisible
}

// HideAll moves every slot to Sentinel.
func (a *BurstAnimator) HideAll() {
	for i := range a.positions {
		a.positions[i] = Sentinel
		a.visible[i] = false
	}
}

// Positions returns the position buffer written by the last Update.
// The returned slice MUST NOT be mutated.
func (a *BurstAnimator) Positions() []Vec3 { return a.positions }

// Visible reports whether slot i was visible after the last Update.
func (a *BurstAnimator) Visible(i int) bool { return a.visible[i] }

// Set returns the animated burst set.
func (a *BurstAnimator) Set() *BurstSet { return a.set }
