package cartoon

import (
	"fmt"
	"os"
	"time"
)

// drawStats holds per-draw metrics. Only timed when the canvas is in debug
// mode; emptyPaths is always counted.
type drawStats struct {
	drawTime   time.Duration
	itemCount  int
	emptyPaths int
}

// debugLog prints draw stats to stderr.
func (c *Canvas) debugLog(stats drawStats) {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[cartoon] draw: %v | items: %d | empty paths: %d\n",
		stats.drawTime, stats.itemCount, stats.emptyPaths)
}

// debugf prints a diagnostic to stderr when c is in debug mode. A nil
// canvas is silent.
func (c *Canvas) debugf(format string, args ...any) {
	if c == nil || !c.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[cartoon] "+format+"\n", args...)
}
