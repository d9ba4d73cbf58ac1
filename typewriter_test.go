package birthday

import (
	"reflect"
	"testing"
)

func TestTypewriterDuration(t *testing.T) {
	w := NewTypewriter([]string{"abcd", "ef"}, 2, 1)
	// 4/2 + pause 1 + 2/2
	assertNear(t, "duration", w.Duration(), 4)
	if w.Done(3.9) || !w.Done(4) {
		t.Error("Done should flip at Duration")
	}
}

func TestTypewriterVisible(t *testing.T) {
	w := NewTypewriter([]string{"abcd", "ef"}, 2, 1)
	cases := []struct {
		elapsed float64
		want    []string
		done    bool
	}{
		{-1, []string{""}, false},
		{0, []string{""}, false},
		{1, []string{"ab"}, false},
		{2.5, []string{"abcd"}, false},
		{3.5, []string{"abcd", "e"}, false},
		{4, []string{"abcd", "ef"}, true},
		{99, []string{"abcd", "ef"}, true},
	}
	for _, c := range cases {
		got, done := w.Visible(c.elapsed)
		if !reflect.DeepEqual(got, c.want) || done != c.done {
			t.Errorf("Visible(%v) = %q, %v; want %q, %v", c.elapsed, got, done, c.want, c.done)
		}
	}
}

func TestTypewriterCountsRunes(t *testing.T) {
	w := NewTypewriter([]string{"héllo🎂"}, 1, 0)
	assertNear(t, "duration", w.Duration(), 6)
	got, _ := w.Visible(2)
	if got[0] != "hé" {
		t.Errorf("partial = %q, want %q", got[0], "hé")
	}
}

func TestTypewriterInstant(t *testing.T) {
	w := NewTypewriter([]string{"a", "b"}, 0, -1)
	if w.Duration() != 0 {
		t.Errorf("duration = %v, want 0", w.Duration())
	}
	got, done := w.Visible(0)
	if !done || len(got) != 2 {
		t.Errorf("Visible(0) = %q, %v", got, done)
	}
}
