package birthday

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction and lifecycle data for the ECS bridge.
type InteractionEvent struct {
	Type     EventType
	NodeID   uint32
	NodeName string
	ScreenX  float64
	ScreenY  float64
	// State change fields (valid for EventStateChange)
	From State
	To   State
}

// Scene owns the node tree, the camera, the animator driver, input state and
// render buffers. It is driven once per frame by Update and Draw.
type Scene struct {
	root   *Node
	camera *Camera
	store  EntityStore
	debug  bool

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color

	clock      float64
	animations []animation
	tweens     []*TweenGroup

	// Render state
	lights  []activeLight
	tris    []renderTri
	verts   []ebiten.Vertex
	indices []uint16

	// Input state
	hover       HoverAdapter
	hovered     *Node
	pressedOn   *Node
	pointerDown bool
	injectQueue []syntheticPointerEvent
	hitBuf      []*Node
	orbit       *OrbitControls
}

// NewScene creates a scene with a root group and a default camera covering
// the given screen size.
func NewScene(width, height int) *Scene {
	return &Scene{
		root:   NewGroup("root"),
		camera: NewCamera(Rect{Width: float64(width), Height: float64(height)}),
		hover:  cursorHoverAdapter{},
		orbit:  newOrbitControls(),
	}
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// Camera returns the scene camera.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// Orbit returns the camera orbit controls. They start disabled.
func (s *Scene) Orbit() *OrbitControls {
	return s.orbit
}

// Clock returns the scene time in seconds accumulated by Update.
func (s *Scene) Clock() float64 {
	return s.clock
}

// Update advances the scene by one tick at the current TPS.
func (s *Scene) Update() {
	s.Step(1.0 / float64(ebiten.TPS()))
}

// Step advances animations, tweens, fireworks and input by dt seconds.
func (s *Scene) Step(dt float64) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.clock += dt
	s.camera.update(float32(dt))
	s.runAnimations()
	s.runTweens(float32(dt))
	updateWorldTransform(s.root, mgl64.Ident4(), false)
	s.tickFireworks(s.root)
	s.processInput()

	if s.debug {
		s.debugLogUpdate(time.Since(t0))
	}
}

// Animate attaches a named animator to node, replacing any animator with the
// same name on that node. Its clock starts at the current scene time.
func (s *Scene) Animate(node *Node, name string, fn Animator) {
	s.StopAnimation(node, name)
	s.animations = append(s.animations, animation{node: node, name: name, fn: fn, started: s.clock})
}

// StopAnimation detaches the named animator from node. The node keeps its
// last transform.
func (s *Scene) StopAnimation(node *Node, name string) {
	for i := range s.animations {
		if s.animations[i].node == node && s.animations[i].name == name {
			s.animations = append(s.animations[:i], s.animations[i+1:]...)
			return
		}
	}
}

// IsAnimating reports whether node has an animator with the given name.
func (s *Scene) IsAnimating(node *Node, name string) bool {
	for i := range s.animations {
		if s.animations[i].node == node && s.animations[i].name == name {
			return true
		}
	}
	return false
}

// AddTween registers a TweenGroup to be advanced every Step until Done.
func (s *Scene) AddTween(g *TweenGroup) {
	s.tweens = append(s.tweens, g)
}

func (s *Scene) runAnimations() {
	live := s.animations[:0]
	for _, a := range s.animations {
		if a.node.IsDisposed() {
			continue
		}
		a.node.SetTransform(a.fn(s.clock - a.started))
		live = append(live, a)
	}
	for i := len(live); i < len(s.animations); i++ {
		s.animations[i] = animation{}
	}
	s.animations = live
}

func (s *Scene) runTweens(dt float32) {
	live := s.tweens[:0]
	for _, g := range s.tweens {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	for i := len(live); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = live
}

func (s *Scene) tickFireworks(n *Node) {
	if n.Kind == NodePoints && n.Fireworks != nil {
		n.Fireworks.Tick(s.clock)
	}
	for _, c := range n.children {
		s.tickFireworks(c)
	}
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// Emit forwards an event to the entity store, if any.
func (s *Scene) Emit(event InteractionEvent) {
	if s.store != nil {
		s.store.EmitEvent(event)
	}
}

// SetHoverAdapter replaces the presentation adapter notified when the pointer
// starts or stops hovering an interactable node. nil disables it.
func (s *Scene) SetHoverAdapter(a HoverAdapter) {
	s.hover = a
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth warnings are printed, and per-frame timing stats
// are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
