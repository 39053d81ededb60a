package cartoon

import "time"

// Clock supplies wall-clock time to a Player.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is a Clock that only moves when told to. Exports and
// scripted playback use it to step time by exact frame intervals.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a clock reading start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the clock's current reading.
func (c *ManualClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Scheduler runs a callback once on the host's next frame. The returned
// function cancels the callback if it has not run yet.
type Scheduler interface {
	ScheduleFrame(fn func()) (cancel func())
}

// Audio is an optional soundtrack kept in sync with playback. It never
// drives timing.
type Audio interface {
	Play()
	Pause()
	SetCurrentTime(seconds float64)
}

// frameRequest is a queued callback; cancelled requests are skipped.
type frameRequest struct {
	fn        func()
	cancelled bool
}

// FrameQueue is a Scheduler whose callbacks run when the host calls
// RunFrame, typically once per game Update. There is no locking; it must be
// used from the frame loop goroutine only.
type FrameQueue struct {
	pending []*frameRequest
}

// ScheduleFrame queues fn for the next RunFrame.
func (q *FrameQueue) ScheduleFrame(fn func()) func() {
	req := &frameRequest{fn: fn}
	q.pending = append(q.pending, req)
	return func() { req.cancelled = true }
}

// RunFrame runs the callbacks queued before this call and returns how many
// ran. Callbacks scheduled while running wait for the next frame.
func (q *FrameQueue) RunFrame() int {
	if len(q.pending) == 0 {
		return 0
	}
	batch := q.pending
	q.pending = nil
	ran := 0
	for _, req := range batch {
		if req.cancelled {
			continue
		}
		req.fn()
		ran++
	}
	return ran
}

// Len returns the number of queued, uncancelled callbacks.
func (q *FrameQueue) Len() int {
	n := 0
	for _, req := range q.pending {
		if !req.cancelled {
			n++
		}
	}
	return n
}
