package birthday

import "unicode/utf8"

// Typewriter reveals lines of text one rune at a time, pausing between lines.
// Visible is a pure function of elapsed time.
type Typewriter struct {
	lines          []string
	charsPerSecond float64
	linePause      float64
}

// NewTypewriter creates a typewriter. A non-positive speed reveals everything
// at once; a negative pause is treated as zero.
func NewTypewriter(lines []string, charsPerSecond, linePause float64) *Typewriter {
	if linePause < 0 {
		linePause = 0
	}
	return &Typewriter{lines: lines, charsPerSecond: charsPerSecond, linePause: linePause}
}

func (w *Typewriter) lineDuration(line string) float64 {
	if w.charsPerSecond <= 0 {
		return 0
	}
	return float64(utf8.RuneCountInString(line)) / w.charsPerSecond
}

// Duration returns the time needed to type every line, including pauses
// between lines but not after the last.
func (w *Typewriter) Duration() float64 {
	var d float64
	for i, l := range w.lines {
		d += w.lineDuration(l)
		if i < len(w.lines)-1 {
			d += w.linePause
		}
	}
	return d
}

// Done reports whether every line is fully typed at elapsed.
func (w *Typewriter) Done(elapsed float64) bool {
	return elapsed >= w.Duration()
}

// Visible returns the lines typed so far at elapsed. The last returned line
// may be partial. done is true once everything is typed.
func (w *Typewriter) Visible(elapsed float64) (lines []string, done bool) {
	if elapsed < 0 {
		elapsed = 0
	}
	remaining := elapsed
	for i, l := range w.lines {
		d := w.lineDuration(l)
		if remaining < d {
			n := int(remaining * w.charsPerSecond)
			lines = append(lines, prefixRunes(l, n))
			return lines, false
		}
		lines = append(lines, l)
		remaining -= d
		if i < len(w.lines)-1 {
			if remaining < w.linePause {
				return lines, false
			}
			remaining -= w.linePause
		}
	}
	return lines, true
}

// prefixRunes returns the first n runes of s.
func prefixRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}
