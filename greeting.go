package birthday

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GreetingOptions carries optional collaborators for NewGreeting.
type GreetingOptions struct {
	// Loader resolves photo handles into textures.
	Loader PhotoLoader
	// Rand seeds the fireworks; nil uses the global generator.
	Rand RandSource
	// Store receives interaction and state-change events.
	Store EntityStore
}

// Greeting is the complete birthday card. It implements ebiten.Game.
type Greeting struct {
	cfg     *Config
	scene   *Scene
	bakery  *Bakery
	ui      *UIStateMachine
	overlay *Overlay
	loader  PhotoLoader
	runner  *TestRunner
	fps     *fpsWidget

	// ScreenshotDir receives PNGs queued with Screenshot.
	ScreenshotDir   string
	screenshotQueue []string

	message string
	width   int
	height  int
}

// NewGreeting builds the scene, bakery, state machine and overlay for cfg.
func NewGreeting(cfg *Config, opts GreetingOptions) *Greeting {
	w, h := cfg.Window.Width, cfg.Window.Height
	g := &Greeting{
		cfg:     cfg,
		scene:   NewScene(w, h),
		overlay: NewOverlay(w, h),
		loader:  opts.Loader,
		message: cfg.Personalize(cfg.Message),
		width:   w,
		height:  h,

		ScreenshotDir: "screenshots",
	}
	g.scene.ClearColor = cfg.Background()
	g.scene.SetEntityStore(opts.Store)
	g.scene.SetDebugMode(cfg.Debug)
	g.SetShowFPS(cfg.Debug)

	g.ui = NewUIStateMachine(NewTypewriter(cfg.IntroLines(), cfg.Typing.CharsPerSecond, cfg.Typing.LinePause), cfg.Typing.PostDelay)
	for _, p := range cfg.Photos {
		g.ui.AddPhoto(Photo(p))
	}
	g.bakery = ComposeBakery(g.scene, SceneConfig{
		Photos:          g.ui.Photos(),
		Loader:          opts.Loader,
		FireworksOffset: cfg.Fireworks.Offset.Vec3(),
		Rand:            opts.Rand,
	})
	g.logPhotoErrors()

	g.bakery.OnCandleClick = func() { g.do(g.ui.BlowCandle) }
	g.bakery.OnLetterClick = func() { g.do(g.ui.OpenLetter) }
	g.ui.OnTransition(g.onTransition)
	return g
}

// Scene returns the 3D scene.
func (g *Greeting) Scene() *Scene { return g.scene }

// Bakery returns the composed bakery.
func (g *Greeting) Bakery() *Bakery { return g.bakery }

// UI returns the greeting state machine.
func (g *Greeting) UI() *UIStateMachine { return g.ui }

// Overlay returns the 2D overlay.
func (g *Greeting) Overlay() *Overlay { return g.overlay }

// Message returns the personalized closing message.
func (g *Greeting) Message() string { return g.message }

// AddPhoto keeps p among the most recent photos and rebinds the frames. It
// reports false once the closing message has appeared.
func (g *Greeting) AddPhoto(p Photo) bool {
	if !g.ui.AddPhoto(p) {
		return false
	}
	g.bakery.SetPhotos(g.ui.Photos(), g.loader)
	g.logPhotoErrors()
	return true
}

// DropPhotos adds the image files at the root of fsys, such as the files
// returned by ebiten.DroppedFiles, and returns how many were added. Files
// that fail to decode are skipped with a warning.
func (g *Greeting) DropPhotos(fsys fs.FS) int {
	if !g.ui.AcceptsPhotos() {
		return 0
	}
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[birthday] warning: dropped files: %v\n", err)
		return 0
	}
	load := LoadPhotoFS(fsys)
	added := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		p := Photo(e.Name())
		img, err := load(p)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[birthday] warning: %v\n", err)
			continue
		}
		g.bakery.SetTexture(p, img)
		if g.ui.AddPhoto(p) {
			added++
		}
	}
	if added > 0 {
		g.bakery.SetPhotos(g.ui.Photos(), g.loader)
		g.logPhotoErrors()
	}
	return added
}

func (g *Greeting) onTransition(from, to State) {
	now := g.scene.Clock()
	switch to {
	case StateCelebrating:
		if from == StateComplete {
			g.bakery.RelightCandle(now)
		} else {
			g.bakery.Reveal()
		}
	case StateComplete:
		g.bakery.ExtinguishCandle(now)
	}
	g.scene.Emit(InteractionEvent{Type: EventStateChange, From: from, To: to})
	if g.cfg.Debug {
		_, _ = fmt.Fprintf(os.Stderr, "[birthday] state: %s -> %s at %.2fs\n", from, to, now)
	}
}

// do runs a state machine event, logging rejected transitions in debug mode.
// The letter only takes clicks while the closing message is hidden.
func (g *Greeting) do(event func() error) {
	if err := event(); err != nil && g.cfg.Debug {
		_, _ = fmt.Fprintf(os.Stderr, "[birthday] %v\n", err)
	}
	g.bakery.SetLetterEnabled(!g.ui.MessageOpen())
}

func (g *Greeting) logPhotoErrors() {
	for _, err := range g.bakery.PhotoErrors() {
		_, _ = fmt.Fprintf(os.Stderr, "[birthday] warning: %v\n", err)
	}
}

// Click handles a click at screen coordinates: overlay buttons first, then
// the 3D scene on the following frames.
func (g *Greeting) Click(x, y float64) {
	if g.overlayClick(x, y) {
		return
	}
	g.scene.InjectClick(x, y)
}

// overlayClick handles clicks on the 2D layer and reports whether one was
// consumed.
func (g *Greeting) overlayClick(x, y float64) bool {
	switch {
	case g.ui.State() == StateWaiting && g.overlay.StartButton().Contains(x, y):
		g.do(g.ui.Start)
		return true
	case g.ui.MessageOpen() && g.overlay.MessagePanel().Contains(x, y):
		g.do(g.ui.CloseLetter)
		return true
	}
	return false
}

// Press handles a key as if it had just been pressed.
func (g *Greeting) Press(key ebiten.Key) {
	switch g.ui.State() {
	case StateWaiting:
		if key == ebiten.KeyEnter || key == ebiten.KeySpace {
			g.do(g.ui.Start)
		}
	case StateIntro:
		if key == ebiten.KeySpace || key == ebiten.KeyEnter {
			g.do(g.ui.Skip)
		}
	case StateCelebrating:
		if key == ebiten.KeySpace {
			g.do(g.ui.BlowCandle)
		}
	case StateComplete:
		switch key {
		case ebiten.KeyEnter:
			if g.ui.MessageOpen() {
				g.do(g.ui.CloseLetter)
			} else {
				g.do(g.ui.OpenLetter)
			}
		case ebiten.KeyR:
			g.do(g.ui.Replay)
		}
	}
}

// SetShowFPS toggles the FPS readout in the top-left corner.
func (g *Greeting) SetShowFPS(show bool) {
	if !show {
		g.fps = nil
		return
	}
	if g.fps == nil {
		g.fps = newFPSWidget()
	}
}

// Step advances the greeting by dt seconds without reading real input.
func (g *Greeting) Step(dt float64) {
	if g.runner != nil {
		g.runner.step(g)
	}
	g.ui.Update(dt)
	g.scene.Step(dt)
	if g.fps != nil {
		g.fps.update(dt)
	}
}

// Update implements ebiten.Game. It returns ebiten.Termination once an
// attached TestRunner has finished, or the runner's failures.
func (g *Greeting) Update() error {
	if g.runner != nil && g.runner.Done() {
		if err := g.runner.Err(); err != nil {
			return err
		}
		return ebiten.Termination
	}
	for _, k := range []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter, ebiten.KeyR} {
		if inpututil.IsKeyJustPressed(k) {
			g.Press(k)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.Screenshot(g.ui.State().String())
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.overlayClick(float64(mx), float64(my))
	}
	if fsys := ebiten.DroppedFiles(); fsys != nil {
		g.DropPhotos(fsys)
	}
	g.Step(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw implements ebiten.Game.
func (g *Greeting) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	g.overlay.Draw(screen, g.ui, g.message)
	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game with a fixed logical size.
func (g *Greeting) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
