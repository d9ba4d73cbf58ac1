package birthday

import (
	"errors"
	"reflect"
	"testing"
)

func TestUIStateStrings(t *testing.T) {
	want := map[State]string{
		StateWaiting: "waiting", StateIntro: "intro", StateCelebrating: "celebrating",
		StateComplete: "complete", State(42): "State(42)",
	}
	for s, name := range want {
		if s.String() != name {
			t.Errorf("%d.String() = %q, want %q", s, s.String(), name)
		}
	}
}

func TestUIHappyPath(t *testing.T) {
	m := NewUIStateMachine(NewTypewriter([]string{"hi"}, 10, 0), 0.5)
	var seen [][2]State
	m.OnTransition(func(from, to State) { seen = append(seen, [2]State{from, to}) })

	m.Update(1)
	if m.State() != StateWaiting {
		t.Fatalf("state = %v, typing must wait for Start", m.State())
	}
	if err := m.Start(); err != nil {
		t.Fatal(err)
	}
	m.Update(0.1)
	if !m.Typing() {
		t.Fatal("should still be typing")
	}
	m.Update(0.1)
	if m.Typing() || m.State() != StateIntro {
		t.Fatalf("state = %v typing = %v, want the post-typing pause", m.State(), m.Typing())
	}
	m.Update(0.4)
	if m.State() != StateIntro {
		t.Fatalf("state = %v, scene should wait for the delay", m.State())
	}
	m.Update(0.1)
	if m.State() != StateCelebrating {
		t.Fatalf("state = %v, want celebrating after the delay", m.State())
	}

	if err := m.BlowCandle(); err != nil {
		t.Fatal(err)
	}
	if !m.MessageOpen() {
		t.Error("blowing the candle should show the message")
	}
	if err := m.Replay(); err != nil {
		t.Fatal(err)
	}
	want := [][2]State{
		{StateWaiting, StateIntro},
		{StateIntro, StateCelebrating},
		{StateCelebrating, StateComplete},
		{StateComplete, StateCelebrating},
	}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("transitions = %v, want %v", seen, want)
	}
	if m.MessageOpen() {
		t.Error("message should be closed after replay")
	}
}

func TestUIInvalidTransitions(t *testing.T) {
	m := NewUIStateMachine(NewTypewriter([]string{"hello"}, 1, 0), 0)
	for name, fn := range map[string]func() error{
		"skip": m.Skip, "blow": m.BlowCandle, "open": m.OpenLetter,
		"close": m.CloseLetter, "replay": m.Replay,
	} {
		if err := fn(); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("%s while waiting: err = %v, want ErrInvalidTransition", name, err)
		}
	}
	if m.State() != StateWaiting {
		t.Errorf("state = %v, want waiting", m.State())
	}
	if err := m.Start(); err != nil {
		t.Fatal(err)
	}
	if err := m.Start(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second Start err = %v", err)
	}
}

func TestUISkip(t *testing.T) {
	m := NewUIStateMachine(NewTypewriter([]string{"a long intro line"}, 1, 0), 1)
	if err := m.Start(); err != nil {
		t.Fatal(err)
	}
	if err := m.Skip(); err != nil {
		t.Fatal(err)
	}
	if m.State() != StateCelebrating {
		t.Errorf("state = %v, want celebrating", m.State())
	}
	if got := m.IntroText(); len(got) != 1 || got[0] != "a long intro line" {
		t.Errorf("IntroText = %q, want full line", got)
	}
	if err := m.Skip(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second Skip err = %v", err)
	}
}

func TestUILetterReopensMessage(t *testing.T) {
	m := NewUIStateMachine(nil, 0)
	for _, step := range []func() error{m.Start, m.Skip, m.BlowCandle, m.CloseLetter} {
		if err := step(); err != nil {
			t.Fatal(err)
		}
	}
	if m.MessageOpen() {
		t.Fatal("message should be closed")
	}
	if err := m.OpenLetter(); err != nil {
		t.Fatal(err)
	}
	if !m.MessageOpen() || m.State() != StateComplete {
		t.Errorf("open = %v state = %v", m.MessageOpen(), m.State())
	}
}

func TestUINilWriter(t *testing.T) {
	m := NewUIStateMachine(nil, -1)
	if m.IntroText() != nil {
		t.Error("IntroText should be nil")
	}
	if err := m.Start(); err != nil {
		t.Fatal(err)
	}
	m.Update(0)
	if m.State() != StateCelebrating {
		t.Errorf("state = %v, want celebrating", m.State())
	}
}

func TestUIPhotosKeepsLastFive(t *testing.T) {
	m := NewUIStateMachine(nil, 0)
	if m.AddPhoto("") {
		t.Error("empty handle should be rejected")
	}
	for _, p := range []Photo{"1", "2", "3", "4", "5", "6", "7"} {
		m.AddPhoto(p)
	}
	want := []Photo{"3", "4", "5", "6", "7"}
	if !reflect.DeepEqual(m.Photos(), want) {
		t.Errorf("Photos = %v, want %v", m.Photos(), want)
	}
}

func TestUIPhotosCloseWithMessage(t *testing.T) {
	m := NewUIStateMachine(nil, 0)
	for _, step := range []func() error{m.Start, m.Skip} {
		if err := step(); err != nil {
			t.Fatal(err)
		}
	}
	if !m.AcceptsPhotos() || !m.AddPhoto("party.png") {
		t.Fatal("photos should be accepted during the celebration")
	}
	if err := m.BlowCandle(); err != nil {
		t.Fatal(err)
	}
	if m.AcceptsPhotos() || m.AddPhoto("late.png") {
		t.Error("photos should be refused once the message appears")
	}
	if len(m.Photos()) != 1 {
		t.Errorf("Photos = %v", m.Photos())
	}
}
