package nebula

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// globalDebug enables tree checks in node operations. Set through
// Container.SetDebugMode.
var globalDebug bool

// debugLogger receives tree warnings. It is the logger of the container that
// last enabled debug mode.
var debugLogger = log.Default()

// frameStats holds per-frame timing and draw-call metrics.
type frameStats struct {
	traverseTime  time.Duration
	sortTime      time.Duration
	submitTime    time.Duration
	commandCount  int
	drawCallCount int
}

// debugLog logs timing and draw-call stats at Debug level.
func (c *Container) debugLog(stats frameStats) {
	if !c.debug {
		return
	}
	c.logger.Debug("frame",
		"traverse", stats.traverseTime,
		"sort", stats.sortTime,
		"submit", stats.submitTime,
		"total", stats.traverseTime+stats.sortTime+stats.submitTime,
		"commands", stats.commandCount,
		"draws", stats.drawCallCount,
	)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("nebula debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
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
		debugLogger.Warn("tree depth exceeds limit", "depth", depth, "limit", debugMaxTreeDepth, "node", n.Name)
	}
}
