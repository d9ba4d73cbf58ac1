package birthday

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	overlayTextScale = 2.0
	overlayLineGap   = 6.0
	buttonW, buttonH = 220.0, 48.0
)

// Overlay draws the 2D layer over the scene: start button, intro text,
// hints and the closing message.
type Overlay struct {
	face          text.Face
	width, height float64

	// TextColor tints all overlay text.
	TextColor Color
	// ButtonColor fills the start button.
	ButtonColor Color
}

// NewOverlay creates an overlay for a screen of the given size.
func NewOverlay(width, height int) *Overlay {
	return &Overlay{
		face:        text.NewGoXFace(basicfont.Face7x13),
		width:       float64(width),
		height:      float64(height),
		TextColor:   Color{1, 0.95, 0.9, 1},
		ButtonColor: Color{0.9, 0.35, 0.5, 1},
	}
}

// StartButton returns the screen rectangle of the start button.
func (o *Overlay) StartButton() Rect {
	return Rect{
		X:      (o.width - buttonW) / 2,
		Y:      o.height*0.5 - buttonH/2,
		Width:  buttonW,
		Height: buttonH,
	}
}

// MessagePanel returns the screen rectangle behind the closing message.
func (o *Overlay) MessagePanel() Rect {
	return Rect{X: o.width * 0.15, Y: o.height * 0.2, Width: o.width * 0.7, Height: o.height * 0.5}
}

// hint returns the instruction line for the machine's state.
func hint(ui *UIStateMachine) string {
	switch ui.State() {
	case StateIntro:
		return "press space to skip"
	case StateCelebrating:
		return "make a wish and click the candle! drop photos here to add memories"
	case StateComplete:
		if ui.MessageOpen() {
			return "click the message to close it, R to celebrate again"
		}
		return "click the letter to read it again, R to celebrate again"
	}
	return ""
}

// Draw renders the overlay for the machine's state. message is the closing
// message shown while the letter is open.
func (o *Overlay) Draw(screen *ebiten.Image, ui *UIStateMachine, message string) {
	switch ui.State() {
	case StateWaiting:
		o.drawButton(screen, "Open Surprise")
	case StateIntro:
		intro := strings.Join(ui.IntroText(), "\n")
		if ui.Typing() {
			intro += "_"
		}
		o.drawBlock(screen, intro, o.height*0.4)
	case StateComplete:
		if ui.MessageOpen() {
			r := o.MessagePanel()
			vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
				Color{0.1, 0.05, 0.1, 0.75}.toRGBA(), true)
			o.drawBlock(screen, message, r.Y+r.Height/2)
		}
	}
	if h := hint(ui); h != "" {
		o.drawLine(screen, h, o.height-28, 1)
	}
}

func (o *Overlay) drawButton(screen *ebiten.Image, label string) {
	r := o.StartButton()
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
		o.ButtonColor.toRGBA(), true)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 2,
		o.TextColor.toRGBA(), true)
	o.drawLine(screen, label, r.Y+r.Height/2, overlayTextScale)
}

// drawBlock draws multi-line text centered horizontally around centerY.
func (o *Overlay) drawBlock(screen *ebiten.Image, s string, centerY float64) {
	if s == "" {
		return
	}
	lineH := o.face.Metrics().HAscent + o.face.Metrics().HDescent + overlayLineGap
	_, h := text.Measure(s, o.face, lineH)
	op := &text.DrawOptions{}
	op.LineSpacing = lineH
	op.PrimaryAlign = text.AlignCenter
	op.GeoM.Scale(overlayTextScale, overlayTextScale)
	op.GeoM.Translate(o.width/2, centerY-h*overlayTextScale/2)
	op.ColorScale.ScaleWithColor(o.TextColor.toRGBA())
	text.Draw(screen, s, o.face, op)
}

// drawLine draws one line centered horizontally with its middle at centerY.
func (o *Overlay) drawLine(screen *ebiten.Image, s string, centerY, scale float64) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(o.width/2, centerY)
	op.ColorScale.ScaleWithColor(o.TextColor.toRGBA())
	text.Draw(screen, s, o.face, op)
}
