package birthday

const (
	// PointSize is the rendered edge length of one particle in world units.
	PointSize = 0.12
	// PointOpacity scales every particle's additive contribution.
	PointOpacity = 0.8
	// AutoHideAfter is the elapsed time after which a fully decayed effect
	// stops being drawn even though it is still logically active.
	AutoHideAfter = BurstCount*0.5 + 3
)

// FireworksState is the logical activation state of a Fireworks controller.
type FireworksState uint8

const (
	FireworksInactive FireworksState = iota
	FireworksActive
)

// String returns the state name.
func (s FireworksState) String() string {
	if s == FireworksActive {
		return "active"
	}
	return "inactive"
}

// Fireworks owns the activation session of one fireworks effect and drives a
// BurstAnimator once per tick while active. Timestamps are scene-clock
// seconds. Single-threaded: call from the update loop only.
type Fireworks struct {
	rng      RandSource
	origin   Vec3
	animator *BurstAnimator

	state       FireworksState
	activatedAt float64
	elapsed     float64
	drawn       bool
}

// NewFireworks creates an inactive controller whose first burst set is built
// around origin. A nil rng uses the global generator.
func NewFireworks(origin Vec3, rng RandSource) *Fireworks {
	if rng == nil {
		rng = globalRand{}
	}
	return &Fireworks{
		rng:      rng,
		origin:   origin,
		animator: NewBurstAnimator(NewBurstSet(origin, rng)),
	}
}

// SetOrigin changes the spawn origin. The burst set is rebuilt immediately
// when inactive, or on the next activation otherwise.
func (f *Fireworks) SetOrigin(origin Vec3) {
	if origin == f.origin {
		return
	}
	f.origin = origin
	if f.state == FireworksInactive {
		f.animator = NewBurstAnimator(NewBurstSet(origin, f.rng))
	}
}

// Activate starts a session at now with the given origin. It is a no-op while
// already active: the session start and particles are kept.
func (f *Fireworks) Activate(origin Vec3, now float64) {
	if f.state == FireworksActive {
		return
	}
	f.SetOrigin(origin)
	if f.animator.Set().Origin() != f.origin {
		f.animator = NewBurstAnimator(NewBurstSet(f.origin, f.rng))
	}
	f.state = FireworksActive
	f.activatedAt = now
	f.elapsed = 0
	f.drawn = true
}

// SetActive mirrors the external active flag. true activates at the current
// origin; false ends the session and hides everything immediately.
func (f *Fireworks) SetActive(active bool, now float64) {
	if active {
		f.Activate(f.origin, now)
		return
	}
	if f.state == FireworksInactive {
		return
	}
	f.state = FireworksInactive
	f.activatedAt = 0
	f.elapsed = 0
	f.drawn = false
	f.animator.HideAll()
}

// Tick advances the effect to now and reports whether the point cloud should
// be drawn this frame.
func (f *Fireworks) Tick(now float64) bool {
	if f.state != FireworksActive {
		f.drawn = false
		return false
	}
	f.elapsed = now - f.activatedAt
	anyVisible := f.animator.Update(f.elapsed)
	// NaN fails both bounds, so a bad clock hides the effect.
	f.drawn = anyVisible || (f.elapsed >= 0 && f.elapsed <= AutoHideAfter)
	return f.drawn
}

// State returns the logical activation state.
func (f *Fireworks) State() FireworksState { return f.state }

// IsActive reports whether a session is live.
func (f *Fireworks) IsActive() bool { return f.state == FireworksActive }

// Drawn reports the result of the last Tick.
func (f *Fireworks) Drawn() bool { return f.drawn }

// Elapsed returns the session time used by the last Tick.
func (f *Fireworks) Elapsed() float64 { return f.elapsed }

// Origin returns the current spawn origin.
func (f *Fireworks) Origin() Vec3 { return f.origin }

// Done reports whether every particle of the current session has expired.
func (f *Fireworks) Done() bool {
	return f.state == FireworksActive && f.elapsed > AutoHideAfter && !f.drawn
}

// PointCloud is the renderable output of a Fireworks controller.
type PointCloud struct {
	Positions []Vec3
	Particles []Particle
	Size      float64
	Opacity   float64
	Blend     BlendMode
}

// Points returns the current point cloud. Slices alias internal buffers and
// MUST NOT be mutated.
func (f *Fireworks) Points() PointCloud {
	return PointCloud{
		Positions: f.animator.Positions(),
		Particles: f.animator.Set().Particles(),
		Size:      PointSize,
		Opacity:   PointOpacity,
		Blend:     BlendAdd,
	}
}

// Animator returns the underlying BurstAnimator.
func (f *Fireworks) Animator() *BurstAnimator { return f.animator }
