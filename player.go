package cartoon

import (
	"slices"
	"time"
)

// Status is the playback state of a Player.
type Status uint8

const (
	StatusReady   Status = iota // stopped, or finished playing
	StatusPlaying               // ticking every frame
	StatusPaused                // holding the current time
)

// String returns "ready", "playing" or "paused".
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	default:
		return "unknown"
	}
}

// DefaultRewindStep is how far Back15 rewinds.
const DefaultRewindStep = 15 * time.Second

// Player drives time across a set of scenes. Each Timeline is registered
// with an activation time; at any moment the scene with the greatest
// activation time not after the current time is visible and evaluated.
//
// Player is single-threaded: every method and every scheduled tick must
// run on the same goroutine.
type Player struct {
	// OnStep is called every tick with the current time and the total
	// duration.
	OnStep func(now, total time.Duration)
	// OnStatus is called when the status is about to change.
	OnStatus func(Status)

	// RewindStep is the amount Back15 rewinds by.
	RewindStep time.Duration

	scenes    map[time.Duration]*Timeline
	changes   []time.Duration // activation times, latest first after Play/Stop
	status    Status
	time      time.Duration
	lastFrame time.Duration
	startTime time.Time
	audio     Audio
	clock     Clock
	scheduler Scheduler
	cancel    func()
}

// NewPlayer creates a Player ticking through sched. A nil clock uses the
// system clock.
func NewPlayer(sched Scheduler, clock Clock) *Player {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Player{
		RewindStep: DefaultRewindStep,
		scenes:     map[time.Duration]*Timeline{},
		clock:      clock,
		scheduler:  sched,
	}
}

// AddScene registers tl to become visible at time at, replacing any scene
// registered at the same time.
func (p *Player) AddScene(tl *Timeline, at time.Duration) {
	p.scenes[at] = tl
	if !slices.Contains(p.changes, at) {
		p.changes = append(p.changes, at)
		p.sortChanges()
	}
}

// SetAudio attaches a soundtrack. A nil audio detaches it.
func (p *Player) SetAudio(a Audio) {
	p.audio = a
}

// Status returns the current playback status.
func (p *Player) Status() Status {
	return p.status
}

// Time returns the current playback time.
func (p *Player) Time() time.Duration {
	return p.time
}

// Duration returns the end time of the latest-activated scene, as
// computed by the last Play or Stop.
func (p *Player) Duration() time.Duration {
	return p.lastFrame
}

// Scene returns the timeline registered at activation time at.
func (p *Player) Scene(at time.Duration) *Timeline {
	return p.scenes[at]
}

// ActiveScene returns the timeline that is current at time now, or nil if
// no scene has been activated yet.
func (p *Player) ActiveScene(now time.Duration) *Timeline {
	at, ok := p.activation(now)
	if !ok {
		return nil
	}
	return p.scenes[at]
}

// TogglePlay starts, pauses or resumes playback depending on the status.
// OnStatus is notified before the transition.
func (p *Player) TogglePlay() {
	switch p.status {
	case StatusReady:
		p.notify(StatusPlaying)
		p.Play()
	case StatusPlaying:
		p.notify(StatusPaused)
		p.Pause()
	default:
		p.notify(StatusPlaying)
		p.Resume()
	}
}

// Play compiles and hides every scene, then plays from the start.
func (p *Player) Play() {
	p.cancelPending()
	p.prepare()
	p.startTime = p.clock.Now()
	p.status = StatusPlaying
	if p.audio != nil {
		p.audio.Play()
	}
	p.step(false)
}

// Stop returns to time 0 and draws the first frame without scheduling
// further ticks.
func (p *Player) Stop() {
	if p.status == StatusReady {
		p.prepare()
	} else {
		p.cancelPending()
		p.status = StatusReady
		p.notify(StatusReady)
	}
	p.hideAll()
	p.time = 0
	p.startTime = p.clock.Now()
	if p.audio != nil {
		p.audio.Pause()
		p.audio.SetCurrentTime(0)
	}
	p.step(true)
}

// Pause holds playback at the current time.
func (p *Player) Pause() {
	p.cancelPending()
	if p.audio != nil {
		p.audio.Pause()
	}
	p.status = StatusPaused
}

// Resume continues from the paused time.
func (p *Player) Resume() {
	p.cancelPending()
	p.startTime = p.clock.Now().Add(-p.time)
	p.status = StatusPlaying
	if p.audio != nil {
		p.audio.Play()
	}
	p.step(false)
}

// SetTime jumps to t and draws that frame. Unless playing, the player is
// left paused.
func (p *Player) SetTime(t time.Duration) {
	p.seek(t)
}

// Back15 rewinds by RewindStep, stopping at 0.
func (p *Player) Back15() {
	t := p.time - p.RewindStep
	if p.time <= p.RewindStep {
		t = 0
	}
	p.seek(t)
}

func (p *Player) seek(t time.Duration) {
	p.time = t
	p.startTime = p.clock.Now().Add(-t)
	if p.audio != nil {
		p.audio.SetCurrentTime(t.Seconds())
	}
	p.hideAll()
	if p.status != StatusPlaying {
		p.status = StatusPaused
	}
	p.step(true)
}

// prepare sorts activation times latest first, compiles and hides every
// scene, and takes the total duration from the latest-activated scene.
func (p *Player) prepare() {
	p.sortChanges()
	for _, at := range p.changes {
		tl := p.scenes[at]
		tl.Compile()
		tl.Hide()
	}
	p.lastFrame = 0
	if len(p.changes) > 0 {
		p.lastFrame = p.scenes[p.changes[0]].LastFrame
	}
}

// sortChanges orders activation times latest first, so the first entry
// not after a given time is the active one and the next entry is the scene
// it replaced.
func (p *Player) sortChanges() {
	slices.SortFunc(p.changes, func(a, b time.Duration) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		}
		return 0
	})
}

func (p *Player) hideAll() {
	for _, tl := range p.scenes {
		tl.Hide()
	}
}

// step evaluates one frame. In seek mode the time has been set explicitly
// and no further tick is scheduled; otherwise the tick is skipped unless
// playing, and the next one is scheduled until the last frame is reached.
func (p *Player) step(seek bool) {
	if !seek {
		p.cancel = nil
		if p.status != StatusPlaying {
			return
		}
		p.time = p.clock.Now().Sub(p.startTime)
	}
	now := p.time
	if p.OnStep != nil {
		p.OnStep(now, p.lastFrame)
	}

	if at, ok := p.activation(now); ok {
		current := p.scenes[at]
		if current.Hidden() {
			if i := slices.Index(p.changes, at); i+1 < len(p.changes) {
				p.scenes[p.changes[i+1]].Hide()
			}
			current.Show()
		}
		current.Apply(now, seek)
	}

	if seek {
		return
	}
	if now < p.lastFrame {
		if p.scheduler != nil {
			p.cancel = p.scheduler.ScheduleFrame(func() { p.step(false) })
		}
		return
	}
	p.notify(StatusReady)
	p.status = StatusReady
}

// activation returns the greatest activation time not after now.
func (p *Player) activation(now time.Duration) (time.Duration, bool) {
	for _, at := range p.changes {
		if at <= now {
			return at, true
		}
	}
	return 0, false
}

func (p *Player) cancelPending() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

func (p *Player) notify(s Status) {
	if p.OnStatus != nil {
		p.OnStatus(s)
	}
}
