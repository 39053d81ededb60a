package cartoon

import (
	"fmt"
	"math"
	"time"
)

// FormatClock formats t as m:ss, truncating fractions of a second.
// Negative times format as 0:00.
func FormatClock(t time.Duration) string {
	if t < 0 {
		t = 0
	}
	secs := int(t / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Meter maps playback time onto a horizontal progress bar of a given width
// and back, for transport controls.
type Meter struct {
	Width float64
}

// Position returns the bar offset for now out of total, clamped to
// [0, Width]. A zero total maps to 0.
func (m Meter) Position(now, total time.Duration) float64 {
	if total <= 0 || m.Width <= 0 {
		return 0
	}
	f := float64(now) / float64(total)
	return math.Max(0, math.Min(1, f)) * m.Width
}

// TimeAt returns the playback time for a click at offset x on the bar,
// clamped to [0, total].
func (m Meter) TimeAt(x float64, total time.Duration) time.Duration {
	if m.Width <= 0 || total <= 0 {
		return 0
	}
	f := math.Max(0, math.Min(1, x/m.Width))
	return time.Duration(f * float64(total))
}

// Seek moves p to the time under offset x.
func (m Meter) Seek(p *Player, x float64) {
	p.SetTime(m.TimeAt(x, p.Duration()))
}
