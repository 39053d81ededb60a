package cartoon

import "time"

// segmentKind selects how a segment writes interpolated values.
type segmentKind uint8

const (
	segmentNumeric segmentKind = iota
	segmentColor
	segmentPath
)

// colorAttrs are the attributes interpolated channel by channel.
var colorAttrs = map[string]bool{
	"fillStyle":   true,
	"strokeStyle": true,
	"shadowColor": true,
}

// Segment interpolates one attribute of one target between two
// consecutive key frames.
type Segment struct {
	Item       string
	Attr       string
	Start, End time.Duration
	From, To   any

	target    Animatable
	kind      segmentKind
	fromColor RGBA
	toColor   RGBA
}

// newSegment builds a segment and pre-parses color endpoints.
func newSegment(target Animatable, attr string, from, to any, start, end time.Duration) *Segment {
	s := &Segment{
		Item:   target.Name(),
		Attr:   attr,
		Start:  start,
		End:    end,
		From:   from,
		To:     to,
		target: target,
	}
	switch {
	case attr == "path":
		s.kind = segmentPath
	case colorAttrs[attr]:
		s.kind = segmentColor
		s.fromColor = colorValue(from)
		s.toColor = colorValue(to)
	}
	return s
}

// Target returns the animated object.
func (s *Segment) Target() Animatable {
	return s.target
}

// IsPlaying reports whether t lies within [Start, End].
func (s *Segment) IsPlaying(t time.Duration) bool {
	return t >= s.Start && t <= s.End
}

// Progress returns (t-Start)/(End-Start). It is not clamped; callers
// check IsPlaying first.
func (s *Segment) Progress(t time.Duration) float64 {
	return float64(t-s.Start) / float64(s.End-s.Start)
}

// TransformForTime writes the interpolated value for t into the target.
func (s *Segment) TransformForTime(t time.Duration) {
	p := s.Progress(t)
	switch s.kind {
	case segmentColor:
		s.target.SetAttr(s.Attr, s.fromColor.Lerp(s.toColor, p).String())
	case segmentPath:
		from, ok1 := s.From.([]Vertex)
		to, ok2 := s.To.([]Vertex)
		if !ok1 || !ok2 {
			s.step(p)
			return
		}
		s.target.SetAttr(s.Attr, interpolatePath(from, to, p))
	default:
		a, ok1 := toFloat(s.From)
		b, ok2 := toFloat(s.To)
		if !ok1 || !ok2 {
			s.step(p)
			return
		}
		s.target.SetAttr(s.Attr, lerp(a, b, p))
	}
}

// step handles values that cannot be blended: the start value holds until
// the segment completes.
func (s *Segment) step(p float64) {
	if p >= 1 {
		s.target.SetAttr(s.Attr, s.To)
		return
	}
	s.target.SetAttr(s.Attr, s.From)
}
