package cartoon

import (
	"slices"
	"time"
)

// keyTrack holds the key frames of one (item, attribute) pair.
type keyTrack struct {
	values map[time.Duration]any
	keys   []time.Duration
}

// change is one discrete attribute assignment.
type change struct {
	item, attr string
	value      any
}

// changeSet is the ordered list of changes scheduled at one instant.
type changeSet struct {
	changes []change
}

func (cs *changeSet) set(item, attr string, value any) {
	for i := range cs.changes {
		if cs.changes[i].item == item && cs.changes[i].attr == attr {
			cs.changes[i].value = value
			return
		}
	}
	cs.changes = append(cs.changes, change{item: item, attr: attr, value: value})
}

func (cs *changeSet) has(item, attr string) bool {
	for _, c := range cs.changes {
		if c.item == item && c.attr == attr {
			return true
		}
	}
	return false
}

// Timeline is the animation of one scene: key frames that compile into
// interpolation segments, plus discrete attribute changes. Times are
// offsets from the start of playback.
type Timeline struct {
	Scene      *Canvas
	Background *Canvas

	// LastFrame is the latest time registered through AddKeyFrame or
	// AddAttrChange.
	LastFrame time.Duration

	tracks    map[string]map[string]*keyTrack
	itemOrder []string
	attrOrder map[string][]string
	discrete  map[time.Duration]*changeSet
	segments  []*Segment
	prev      time.Duration
	hidden    bool
}

// NewTimeline creates a timeline animating scene. background may be nil.
func NewTimeline(scene, background *Canvas) *Timeline {
	return &Timeline{
		Scene:      scene,
		Background: background,
		tracks:     map[string]map[string]*keyTrack{},
		attrOrder:  map[string][]string{},
		discrete:   map[time.Duration]*changeSet{},
		prev:       -1,
	}
}

// AddKeyFrame records value for attr of the named item at time at. The
// first key frame of a pair also captures the attribute's current value as
// a key at time 0, unless at is itself 0. Returns false, recording
// nothing, if the scene has no such item or the item has no such attribute.
func (t *Timeline) AddKeyFrame(item string, at time.Duration, attr string, value any) bool {
	target := t.target(item)
	if target == nil {
		return false
	}
	current, ok := target.Attr(attr)
	if !ok {
		t.Scene.debugf("key frame: %q has no attribute %q", item, attr)
		return false
	}
	t.extend(at)

	attrs, ok := t.tracks[item]
	if !ok {
		attrs = map[string]*keyTrack{}
		t.tracks[item] = attrs
		t.itemOrder = append(t.itemOrder, item)
	}
	track, ok := attrs[attr]
	if !ok {
		track = &keyTrack{values: map[time.Duration]any{}}
		attrs[attr] = track
		t.attrOrder[item] = append(t.attrOrder[item], attr)
	}
	if _, seen := track.values[at]; !seen {
		track.keys = append(track.keys, at)
	}
	track.values[at] = value
	if _, seen := track.values[0]; !seen {
		track.values[0] = current
		track.keys = append(track.keys, 0)
	}
	return true
}

// AddAttrChange schedules an instantaneous change: once playback reaches
// at, attr of the named item snaps to value. The first change of a pair
// captures the current value as a change at time 0. Returns false if the
// scene has no such item or the item has no such attribute.
func (t *Timeline) AddAttrChange(item string, at time.Duration, attr string, value any) bool {
	target := t.target(item)
	if target == nil {
		return false
	}
	current, ok := target.Attr(attr)
	if !ok {
		t.Scene.debugf("attr change: %q has no attribute %q", item, attr)
		return false
	}
	t.extend(at)

	cs, ok := t.discrete[at]
	if !ok {
		cs = &changeSet{}
		t.discrete[at] = cs
	}
	cs.set(item, attr, value)

	zero, ok := t.discrete[0]
	if !ok {
		zero = &changeSet{}
		t.discrete[0] = zero
	}
	if !zero.has(item, attr) {
		zero.set(item, attr, current)
	}
	return true
}

// Compile turns the key frames into segments, one per pair of consecutive
// key times of each (item, attribute). It is a no-op once segments exist,
// and it always rewinds the discrete-event cursor.
func (t *Timeline) Compile() {
	t.prev = -1
	if len(t.segments) > 0 {
		return
	}
	for _, item := range t.itemOrder {
		target := t.target(item)
		if target == nil {
			continue
		}
		for _, attr := range t.attrOrder[item] {
			track := t.tracks[item][attr]
			slices.Sort(track.keys)
			for i := 1; i < len(track.keys); i++ {
				prev, next := track.keys[i-1], track.keys[i]
				t.segments = append(t.segments,
					newSegment(target, attr, track.values[prev], track.values[next], prev, next))
			}
		}
	}
}

// Segments returns the compiled segments. The slice MUST NOT be mutated.
func (t *Timeline) Segments() []*Segment {
	return t.segments
}

// KeyTimes returns the sorted key times recorded for (item, attr).
func (t *Timeline) KeyTimes(item, attr string) []time.Duration {
	track, ok := t.tracks[item][attr]
	if !ok {
		return nil
	}
	keys := slices.Clone(track.keys)
	slices.Sort(keys)
	return keys
}

// Apply evaluates the timeline at time at. Every segment containing at
// writes its value. Discrete changes are applied incrementally when
// playing forward: only changes crossed since the previous Apply fire.
// When seek is set, every change at or before at is replayed in time
// order so the result does not depend on history. The scene is drawn last.
func (t *Timeline) Apply(at time.Duration, seek bool) {
	for _, s := range t.segments {
		if s.IsPlaying(at) {
			s.TransformForTime(at)
		}
	}

	times := t.discreteTimes()
	if seek {
		for _, kt := range times {
			if kt > at {
				break
			}
			t.applyChanges(t.discrete[kt])
		}
	} else {
		for _, kt := range times {
			if (t.prev < kt && at >= kt) || (at < t.prev && at == kt) {
				t.applyChanges(t.discrete[kt])
			}
		}
	}

	t.prev = at
	if t.Scene != nil {
		t.Scene.Draw()
	}
}

// Forget drops every key frame, discrete change and segment that refers to
// the named item. Call it after removing the item from the scene.
func (t *Timeline) Forget(item string) {
	if _, ok := t.tracks[item]; ok {
		delete(t.tracks, item)
		delete(t.attrOrder, item)
		t.itemOrder = slices.DeleteFunc(t.itemOrder, func(n string) bool { return n == item })
	}
	for at, cs := range t.discrete {
		cs.changes = slices.DeleteFunc(cs.changes, func(c change) bool { return c.item == item })
		if len(cs.changes) == 0 {
			delete(t.discrete, at)
		}
	}
	t.segments = slices.DeleteFunc(t.segments, func(s *Segment) bool { return s.Item == item })
}

// Hidden reports whether the scene is currently suppressed.
func (t *Timeline) Hidden() bool {
	return t.hidden
}

// Hide suppresses the scene and its background.
func (t *Timeline) Hide() {
	if t.Scene != nil {
		t.Scene.Hidden = true
	}
	if t.Background != nil {
		t.Background.Hidden = true
	}
	t.hidden = true
}

// Show reveals the scene and redraws its background.
func (t *Timeline) Show() {
	if t.Scene != nil {
		t.Scene.Hidden = false
	}
	if t.Background != nil {
		t.Background.Hidden = false
		t.Background.Draw()
	}
	t.hidden = false
}

func (t *Timeline) extend(at time.Duration) {
	if at > t.LastFrame {
		t.LastFrame = at
	}
}

// target looks up the named drawable in the scene.
func (t *Timeline) target(item string) Animatable {
	if t.Scene == nil {
		return nil
	}
	d := t.Scene.Item(item)
	if d == nil {
		t.Scene.debugf("timeline: scene has no item %q", item)
		return nil
	}
	return d
}

func (t *Timeline) discreteTimes() []time.Duration {
	times := make([]time.Duration, 0, len(t.discrete))
	for at := range t.discrete {
		times = append(times, at)
	}
	slices.Sort(times)
	return times
}

func (t *Timeline) applyChanges(cs *changeSet) {
	for _, c := range cs.changes {
		target := t.target(c.item)
		if target == nil {
			continue
		}
		target.SetAttr(c.attr, c.value)
	}
}
