package birthday

import (
	"errors"
	"fmt"
)

// State is a step of the greeting flow.
type State uint8

const (
	StateWaiting     State = iota // start screen, waiting for Start
	StateIntro                    // intro lines are being typed
	StateCelebrating              // bakery scene shown, candle lit
	StateComplete                 // candle blown, fireworks and closing message
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StateIntro:
		return "intro"
	case StateCelebrating:
		return "celebrating"
	case StateComplete:
		return "complete"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// MaxPhotos is the number of most recent photos kept.
const MaxPhotos = 5

// DefaultPostTypingDelay is the pause in seconds between the last typed
// character and the scene starting.
const DefaultPostTypingDelay = 1.0

// Photo is an opaque image handle (file path or URL) passed through unchanged.
type Photo string

// ErrInvalidTransition is returned when an event does not apply to the
// current state.
var ErrInvalidTransition = errors.New("invalid transition")

// UIStateMachine drives the greeting flow: start screen, intro typing, the
// automatic scene start, blowing the candle and the closing message. It also
// keeps the uploaded photo list.
type UIStateMachine struct {
	state       State
	writer      *Typewriter
	typeClock   float64
	postDelay   float64
	messageOpen bool
	photos      []Photo

	observers []func(from, to State)
}

// NewUIStateMachine creates a machine in StateWaiting that types with w once
// started and moves to StateCelebrating postDelay seconds after typing ends.
func NewUIStateMachine(w *Typewriter, postDelay float64) *UIStateMachine {
	if postDelay < 0 {
		postDelay = 0
	}
	return &UIStateMachine{writer: w, postDelay: postDelay}
}

// State returns the current state.
func (m *UIStateMachine) State() State { return m.state }

// OnTransition registers fn to be called after every state change.
func (m *UIStateMachine) OnTransition(fn func(from, to State)) {
	m.observers = append(m.observers, fn)
}

func (m *UIStateMachine) introDuration() float64 {
	if m.writer == nil {
		return 0
	}
	return m.writer.Duration()
}

// Update advances the intro clock by dt seconds. The scene starts once
// typing has finished and the post-typing delay has passed.
func (m *UIStateMachine) Update(dt float64) {
	if m.state != StateIntro {
		return
	}
	m.typeClock += dt
	if m.typeClock >= m.introDuration()+m.postDelay {
		m.transition(StateCelebrating)
	}
}

// IntroText returns the currently typed intro lines.
func (m *UIStateMachine) IntroText() []string {
	if m.writer == nil {
		return nil
	}
	lines, _ := m.writer.Visible(m.typeClock)
	return lines
}

// Typing reports whether intro characters are still being revealed.
func (m *UIStateMachine) Typing() bool {
	return m.state == StateIntro && m.typeClock < m.introDuration()
}

// Start leaves the start screen and begins typing.
func (m *UIStateMachine) Start() error {
	if m.state != StateWaiting {
		return m.invalid("start")
	}
	m.typeClock = 0
	m.transition(StateIntro)
	return nil
}

// Skip ends the intro and starts the scene immediately.
func (m *UIStateMachine) Skip() error {
	if m.state != StateIntro {
		return m.invalid("skip")
	}
	m.typeClock = m.introDuration() + m.postDelay
	m.transition(StateCelebrating)
	return nil
}

// BlowCandle puts the candle out, starting the fireworks and showing the
// closing message.
func (m *UIStateMachine) BlowCandle() error {
	if m.state != StateCelebrating {
		return m.invalid("blow candle")
	}
	m.messageOpen = true
	m.transition(StateComplete)
	return nil
}

// OpenLetter shows the closing message again after it was closed.
func (m *UIStateMachine) OpenLetter() error {
	if m.state != StateComplete {
		return m.invalid("open letter")
	}
	m.messageOpen = true
	return nil
}

// CloseLetter hides the closing message, leaving the fireworks in view.
func (m *UIStateMachine) CloseLetter() error {
	if m.state != StateComplete {
		return m.invalid("close letter")
	}
	m.messageOpen = false
	return nil
}

// MessageOpen reports whether the closing message is shown.
func (m *UIStateMachine) MessageOpen() bool {
	return m.state == StateComplete && m.messageOpen
}

// Replay relights the candle for another round from the closing message.
func (m *UIStateMachine) Replay() error {
	if m.state != StateComplete {
		return m.invalid("replay")
	}
	m.messageOpen = false
	m.transition(StateCelebrating)
	return nil
}

func (m *UIStateMachine) invalid(event string) error {
	return fmt.Errorf("%s in state %s: %w", event, m.state, ErrInvalidTransition)
}

func (m *UIStateMachine) transition(to State) {
	from := m.state
	if from == to {
		return
	}
	m.state = to
	for _, fn := range m.observers {
		fn(from, to)
	}
}

// AcceptsPhotos reports whether photos can still be added. Uploads close
// once the closing message has appeared.
func (m *UIStateMachine) AcceptsPhotos() bool {
	return m.state != StateComplete
}

// AddPhoto appends p, dropping the oldest photos beyond MaxPhotos. It
// reports false for empty handles and when photos are no longer accepted.
func (m *UIStateMachine) AddPhoto(p Photo) bool {
	if p == "" || !m.AcceptsPhotos() {
		return false
	}
	m.photos = append(m.photos, p)
	if n := len(m.photos); n > MaxPhotos {
		m.photos = append(m.photos[:0], m.photos[n-MaxPhotos:]...)
	}
	return true
}

// Photos returns the kept photos, oldest first. The returned slice MUST NOT
// be mutated.
func (m *UIStateMachine) Photos() []Photo { return m.photos }
