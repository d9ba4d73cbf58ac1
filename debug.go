package birthday

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and draw-call metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	traverseTime time.Duration
	sortTime     time.Duration
	submitTime   time.Duration
	triangles    int
	points       int
	drawCalls    int
}

// debugLog prints draw timing and counts to stderr.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	total := stats.traverseTime + stats.sortTime + stats.submitTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[birthday] traverse: %v | sort: %v | submit: %v | total: %v\n",
		stats.traverseTime, stats.sortTime, stats.submitTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[birthday] triangles: %d | points: %d | draw calls: %d\n",
		stats.triangles, stats.points, stats.drawCalls)
}

// debugLogUpdate prints the update step duration to stderr.
func (s *Scene) debugLogUpdate(d time.Duration) {
	_, _ = fmt.Fprintf(os.Stderr, "[birthday] update: %v | clock: %.3fs | animators: %d\n",
		d, s.clock, len(s.animations))
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("birthday debug: %s on disposed node %q", op, n.Name))
	}
}

// debugMaxTreeDepth is the depth above which debugCheckTreeDepth warns.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[birthday] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}
