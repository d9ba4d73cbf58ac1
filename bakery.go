package birthday

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Bakery layout in world units. The floor is y=0 and the camera looks down -Z.
const (
	tableHeight    = 1.0
	tableTopDepth  = 0.08
	cakeBottomH    = 0.5
	cakeTopH       = 0.35
	candleH        = 0.4
	wallZ          = -4.0
	frameY         = 2.6
	frameSpacing   = 1.5
	frameW, frameH = 1.0, 0.8

	cakeDropHeight   = 3.0
	cakeDropDuration = 1.2
	tableSlideTime   = 0.9
	hoverLift        = 0.08

	armWaveSpeed = 4.0
	armWave      = 0.5
	armRaised    = 2.5

	orbitMinDistance = 2.5
	orbitMaxDistance = 12.5
	swayAmplitude    = 0.25
	swaySpeed        = 0.3
)

// Animator names used by the bakery.
const (
	AnimCakeDrop    = "cake-drop"
	AnimTableSlide  = "table-slide"
	AnimFigureBob   = "figure-bob"
	AnimFlameFlickr = "flame-flicker"
	AnimLetterHover = "letter-hover"
	AnimArmWave     = "arm-wave"
)

var (
	colorWood     = Color{0.45, 0.28, 0.16, 1}
	colorDarkWood = Color{0.3, 0.18, 0.1, 1}
	colorFloor    = Color{0.62, 0.5, 0.4, 1}
	colorWall     = Color{0.93, 0.84, 0.74, 1}
	colorSponge   = Color{0.96, 0.8, 0.62, 1}
	colorFrosting = Color{1, 0.72, 0.82, 1}
	colorCandle   = Color{0.55, 0.78, 1, 1}
	colorFlame    = Color{1, 0.75, 0.25, 1}
	colorSkin     = Color{0.98, 0.82, 0.7, 1}
	colorShirt    = Color{0.35, 0.55, 0.9, 1}
	colorPaper    = Color{1, 0.97, 0.9, 1}
	colorPhotoBg  = Color{0.8, 0.8, 0.85, 1}
)

// PhotoLoader turns an opaque photo handle into a texture.
type PhotoLoader func(Photo) (*ebiten.Image, error)

// SceneConfig parameterizes ComposeBakery.
type SceneConfig struct {
	Photos []Photo
	// Loader resolves photo handles; nil leaves frames with a placeholder.
	Loader PhotoLoader
	// FireworksOffset is added to the candle tip to get the launch point.
	FireworksOffset Vec3
	// Rand seeds the fireworks; nil uses the global generator.
	Rand RandSource
}

// Bakery is the composed greeting scene.
type Bakery struct {
	scene *Scene

	Root        *Node
	Environment *Node
	Table       *Node
	Cake        *Node
	Candle      *Node
	Flame       *Node
	Figure      *Node
	ArmLeft     *Node
	ArmRight    *Node
	Letter      *Node
	Frames      []*Node
	Sparks      *Node

	Fireworks *Fireworks

	// OnCandleClick and OnLetterClick are invoked on clicks of those nodes.
	OnCandleClick func()
	OnLetterClick func()

	rest      map[*Node]Transform
	revealed  bool
	photoErrs []error
	textures  map[Photo]*ebiten.Image
}

// ComposeBakery builds the bakery under the scene root. The bakery starts
// hidden; call Reveal to show it and start its entrance animators.
func ComposeBakery(s *Scene, cfg SceneConfig) *Bakery {
	b := &Bakery{
		scene:    s,
		rest:     make(map[*Node]Transform),
		textures: make(map[Photo]*ebiten.Image),
	}
	b.Root = NewGroup("bakery")
	b.Root.Visible = false
	s.Root().AddChild(b.Root)

	b.addLights()
	b.Environment = b.buildEnvironment()
	b.Table = b.buildTable()
	b.Cake = b.buildCake()
	b.Table.AddChild(b.Cake)
	b.Figure = b.buildFigure()
	b.Letter = b.buildLetter()
	b.Table.AddChild(b.Letter)
	b.buildFrames()
	b.SetPhotos(cfg.Photos, cfg.Loader)

	origin := b.CandleTip().Add(cfg.FireworksOffset)
	b.Fireworks = NewFireworks(origin, cfg.Rand)
	b.Sparks = NewPoints("fireworks", b.Fireworks)
	b.Root.AddChild(b.Sparks)

	cam := s.Camera()
	cam.Position = Vec3{0, 3.2, 9}
	cam.Target = Vec3{0, 1.6, 0}
	cam.MinDistance = orbitMinDistance
	cam.MaxDistance = orbitMaxDistance
	return b
}

func (b *Bakery) place(parent, n *Node, t Transform) *Node {
	n.SetTransform(t)
	b.rest[n] = t
	parent.AddChild(n)
	return n
}

func at(x, y, z float64) Transform {
	t := IdentityTransform
	t.Position = Vec3{x, y, z}
	return t
}

func (b *Bakery) addLights() {
	b.Root.AddChild(NewLight("ambient", Light{Type: LightAmbient, Color: ColorWhite, Intensity: 0.45}))
	b.Root.AddChild(NewLight("sun", Light{
		Type: LightDirectional, Color: Color{1, 0.95, 0.85, 1}, Intensity: 0.6,
		Direction: Vec3{-0.4, -1, -0.6},
	}))
	warm := NewLight("candle-glow", Light{
		Type: LightPoint, Color: Color{1, 0.7, 0.4, 1}, Intensity: 0.5, Range: 6,
	})
	b.place(b.Root, warm, at(0, tableHeight+cakeBottomH+cakeTopH+candleH+0.2, 0.5))
}

func (b *Bakery) buildEnvironment() *Node {
	env := NewGroup("environment")
	b.Root.AddChild(env)

	floor := NewMesh("floor", PlaneGeometry(20, 12), colorFloor)
	ft := at(0, 0, 0)
	ft.Rotation = Vec3{-math.Pi / 2, 0, 0}
	b.place(env, floor, ft)

	b.place(env, NewMesh("wall", PlaneGeometry(20, 8), colorWall), at(0, 4, wallZ))

	for i, y := range []float64{1.4, 3.8} {
		shelf := NewMesh(fmt.Sprintf("shelf-%d", i), BoxGeometry(3, 0.08, 0.5), colorDarkWood)
		b.place(env, shelf, at(-5.5, y, wallZ+0.3))
		for j := 0; j < 3; j++ {
			jar := NewMesh(fmt.Sprintf("jar-%d-%d", i, j), CylinderGeometry(0.18, 0.18, 0.45, 10),
				ColorFromHSL(float64(40+j*70), 0.5, 0.7))
			b.place(env, jar, at(-6.5+float64(j)*0.9, y+0.27, wallZ+0.3))
		}
	}
	return env
}

func (b *Bakery) buildTable() *Node {
	table := NewGroup("table")
	b.place(b.Root, table, at(0, 0, 0))
	b.place(table, NewMesh("table-top", BoxGeometry(3.2, tableTopDepth, 1.8), colorWood),
		at(0, tableHeight-tableTopDepth/2, 0))
	for i, p := range [][2]float64{{-1.45, -0.75}, {1.45, -0.75}, {-1.45, 0.75}, {1.45, 0.75}} {
		leg := NewMesh(fmt.Sprintf("table-leg-%d", i), BoxGeometry(0.12, tableHeight-tableTopDepth, 0.12), colorDarkWood)
		b.place(table, leg, at(p[0], (tableHeight-tableTopDepth)/2, p[1]))
	}
	return table
}

func (b *Bakery) buildCake() *Node {
	cake := NewGroup("cake")
	cake.SetTransform(at(0, tableHeight, 0))
	b.rest[cake] = cake.LocalTransform()

	b.place(cake, NewMesh("cake-bottom", CylinderGeometry(0.7, 0.7, cakeBottomH, 24), colorSponge), at(0, cakeBottomH/2, 0))
	b.place(cake, NewMesh("frosting-bottom", CylinderGeometry(0.72, 0.72, 0.06, 24), colorFrosting), at(0, cakeBottomH, 0))
	b.place(cake, NewMesh("cake-top", CylinderGeometry(0.45, 0.45, cakeTopH, 20), colorSponge), at(0, cakeBottomH+cakeTopH/2, 0))
	b.place(cake, NewMesh("frosting-top", CylinderGeometry(0.47, 0.47, 0.05, 20), colorFrosting), at(0, cakeBottomH+cakeTopH, 0))

	b.Candle = NewMesh("candle", CylinderGeometry(0.05, 0.05, candleH, 8), colorCandle)
	b.Candle.Interactable = true
	b.Candle.OnClick = func(ClickContext) {
		if b.OnCandleClick != nil {
			b.OnCandleClick()
		}
	}
	b.place(cake, b.Candle, at(0, cakeBottomH+cakeTopH+candleH/2, 0))

	b.Flame = NewMesh("flame", SphereGeometry(0.07, 8, 6), colorFlame)
	b.Flame.Unlit = true
	ft := at(0, cakeBottomH+cakeTopH+candleH+0.08, 0)
	ft.Scale = Vec3{1, 1.6, 1}
	b.place(cake, b.Flame, ft)
	return cake
}

func (b *Bakery) buildFigure() *Node {
	fig := NewGroup("figure")
	b.place(b.Root, fig, at(2.4, 0, 0.4))
	b.place(fig, NewMesh("figure-body", CylinderGeometry(0.25, 0.4, 1.3, 12), colorShirt), at(0, 0.65, 0))
	b.place(fig, NewMesh("figure-head", SphereGeometry(0.3, 12, 8), colorSkin), at(0, 1.6, 0))
	hat := NewMesh("figure-hat", CylinderGeometry(0.02, 0.22, 0.45, 10), colorFrosting)
	b.place(fig, hat, at(0, 2.05, 0))

	left := at(-0.42, 1.05, 0)
	left.Rotation[2] = armWave
	b.ArmLeft = b.place(fig, NewMesh("figure-arm-left", CylinderGeometry(0.08, 0.08, 0.55, 8), colorShirt), left)
	right := at(0.42, 1.05, 0)
	right.Rotation[2] = -armWave
	b.ArmRight = b.place(fig, NewMesh("figure-arm-right", CylinderGeometry(0.08, 0.08, 0.55, 8), colorShirt), right)
	return fig
}

// waveArms starts the arm wave shown while the candle is lit.
func (b *Bakery) waveArms() {
	b.scene.Animate(b.ArmLeft, AnimArmWave, Wave(b.rest[b.ArmLeft], armWave, armWave, armWaveSpeed))
	b.scene.Animate(b.ArmRight, AnimArmWave, Wave(b.rest[b.ArmRight], -armWave, -armWave, armWaveSpeed))
}

// raiseArms stops the wave and holds both arms up in celebration.
func (b *Bakery) raiseArms() {
	for _, arm := range []*Node{b.ArmLeft, b.ArmRight} {
		b.scene.StopAnimation(arm, AnimArmWave)
	}
	left, right := b.rest[b.ArmLeft], b.rest[b.ArmRight]
	left.Rotation[2] = armRaised
	right.Rotation[2] = -armRaised
	b.ArmLeft.SetTransform(left)
	b.ArmRight.SetTransform(right)
}

func (b *Bakery) buildLetter() *Node {
	letter := NewGroup("letter")
	lt := at(0.95, tableHeight+0.03, 0.45)
	lt.Rotation = Vec3{0, -0.3, 0}
	b.place(letter, NewMesh("envelope", BoxGeometry(0.6, 0.04, 0.4), colorPaper), IdentityTransform)
	seal := NewMesh("seal", CylinderGeometry(0.06, 0.06, 0.02, 10), Color{0.8, 0.1, 0.2, 1})
	b.place(letter, seal, at(0, 0.03, 0))
	letter.SetTransform(lt)
	b.rest[letter] = lt
	letter.Interactable = true
	letter.OnHover = func(ctx HoverContext) {
		rest := b.rest[letter]
		if ctx.Hovering {
			lifted := rest
			lifted.Position[1] += hoverLift
			b.scene.Animate(letter, AnimLetterHover, Bob(lifted, 0.02, 1.5))
			return
		}
		b.scene.StopAnimation(letter, AnimLetterHover)
		letter.SetTransform(rest)
	}
	letter.OnClick = func(ClickContext) {
		if b.OnLetterClick != nil {
			b.OnLetterClick()
		}
	}
	return letter
}

func (b *Bakery) buildFrames() {
	wall := NewGroup("frames")
	b.place(b.Root, wall, at(0, frameY, wallZ+0.05))
	b.Frames = make([]*Node, MaxPhotos)
	for i := 0; i < MaxPhotos; i++ {
		frame := NewGroup(fmt.Sprintf("frame-%d", i))
		x := (float64(i) - float64(MaxPhotos-1)/2) * frameSpacing
		b.place(wall, frame, at(x, 0, 0))
		b.place(frame, NewMesh("border", BoxGeometry(frameW+0.12, frameH+0.12, 0.05), colorDarkWood), IdentityTransform)
		photo := NewMesh("photo", PlaneGeometry(frameW, frameH), colorPhotoBg)
		photo.Unlit = true
		b.place(frame, photo, at(0, 0, 0.03))
		frame.Interactable = true
		frame.OnHover = func(ctx HoverContext) {
			target := Vec3{1, 1, 1}
			if ctx.Hovering {
				target = Vec3{1.08, 1.08, 1.08}
			}
			b.scene.AddTween(TweenScale(frame, target, 0.2, ease.OutQuad))
		}
		b.Frames[i] = frame
	}
}

// SetPhotos binds photos to frames in order. Frames beyond len(photos) are
// hidden. Textures are loaded once per handle and cached. Loader errors
// leave that frame's placeholder and are kept for PhotoErrors.
func (b *Bakery) SetPhotos(photos []Photo, loader PhotoLoader) {
	if len(photos) > MaxPhotos {
		photos = photos[len(photos)-MaxPhotos:]
	}
	b.photoErrs = b.photoErrs[:0]
	for i, frame := range b.Frames {
		photo := frame.FindChild("photo")
		photo.Texture = nil
		photo.Color = colorPhotoBg
		photo.UserData = nil
		frame.Visible = i < len(photos)
		if i >= len(photos) {
			continue
		}
		photo.UserData = photos[i]
		img, ok := b.textures[photos[i]]
		if !ok {
			if loader == nil {
				continue
			}
			var err error
			img, err = loader(photos[i])
			if err != nil {
				b.photoErrs = append(b.photoErrs, fmt.Errorf("photo %q: %w", photos[i], err))
				continue
			}
			b.textures[photos[i]] = img
		}
		photo.Texture = img
		photo.Color = ColorWhite
	}
}

// SetTexture caches img for p so SetPhotos uses it without a loader.
func (b *Bakery) SetTexture(p Photo, img *ebiten.Image) {
	b.textures[p] = img
}

// PhotoErrors returns loader errors from the last SetPhotos.
func (b *Bakery) PhotoErrors() []error {
	return b.photoErrs
}

// CandleTip returns the world position of the top of the candle at rest.
func (b *Bakery) CandleTip() Vec3 {
	return Vec3{0, tableHeight + cakeBottomH + cakeTopH + candleH, 0}
}

// Reveal shows the bakery, starts the entrance and idle animators, and hands
// the camera to the orbit controls with a gentle sway.
func (b *Bakery) Reveal() {
	if b.revealed {
		return
	}
	b.revealed = true
	b.Root.Visible = true
	s := b.scene
	s.Animate(b.Table, AnimTableSlide, SlideIn(b.rest[b.Table], Vec3{-6, 0, 0}, tableSlideTime))
	s.Animate(b.Cake, AnimCakeDrop, Sequence(
		func(float64) Transform {
			t := b.rest[b.Cake]
			t.Position[1] += cakeDropHeight
			return t
		},
		tableSlideTime,
		DropIn(b.rest[b.Cake], cakeDropHeight, cakeDropDuration),
	))
	s.Animate(b.Figure, AnimFigureBob, Bob(b.rest[b.Figure], 0.05, 0.8))
	s.Animate(b.Flame, AnimFlameFlickr, Flicker(b.rest[b.Flame], 0.12))
	b.waveArms()
	cam := s.Camera()
	cam.MoveTo(Vec3{0, 2.8, 6.5}, 2, ease.InOutQuad)
	cam.SetSway(swayAmplitude, swaySpeed)
	s.Orbit().Enabled = true
}

// Revealed reports whether Reveal has been called.
func (b *Bakery) Revealed() bool {
	return b.revealed
}

// ExtinguishCandle hides the flame, raises the figure's arms and launches
// the fireworks at now.
func (b *Bakery) ExtinguishCandle(now float64) {
	b.scene.StopAnimation(b.Flame, AnimFlameFlickr)
	b.Flame.Visible = false
	b.Candle.Interactable = false
	b.raiseArms()
	b.Fireworks.SetActive(true, now)
}

// RelightCandle ends the fireworks session, lights the candle again and
// resumes the wave.
func (b *Bakery) RelightCandle(now float64) {
	b.Fireworks.SetActive(false, now)
	b.Flame.Visible = true
	b.Candle.Interactable = true
	b.scene.Animate(b.Flame, AnimFlameFlickr, Flicker(b.rest[b.Flame], 0.12))
	b.waveArms()
}

// SetLetterEnabled turns letter hover and clicks on or off.
func (b *Bakery) SetLetterEnabled(enabled bool) {
	b.Letter.Interactable = enabled
}
