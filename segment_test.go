package cartoon

import (
	"testing"
	"time"
)

func TestSegmentProgressUnclamped(t *testing.T) {
	it := NewPathItem("a")
	s := newSegment(it, "x", 0.0, 10.0, time.Second, 2*time.Second)

	assertNear(t, "start", s.Progress(time.Second), 0)
	assertNear(t, "mid", s.Progress(1500*time.Millisecond), 0.5)
	assertNear(t, "beyond", s.Progress(3*time.Second), 2)
	assertNear(t, "before", s.Progress(0), -1)
}

func TestSegmentIsPlayingInclusive(t *testing.T) {
	s := newSegment(NewPathItem("a"), "x", 0.0, 1.0, time.Second, 2*time.Second)
	cases := map[time.Duration]bool{
		999 * time.Millisecond:  false,
		time.Second:             true,
		2 * time.Second:         true,
		2001 * time.Millisecond: false,
	}
	for at, want := range cases {
		if s.IsPlaying(at) != want {
			t.Errorf("IsPlaying(%v) = %v, want %v", at, !want, want)
		}
	}
}

func TestSegmentNumeric(t *testing.T) {
	it := NewPathItem("a")
	s := newSegment(it, "x", 10, float32(20), 0, time.Second)
	s.TransformForTime(250 * time.Millisecond)
	assertNear(t, "x", it.X, 12.5)
}

func TestSegmentColor(t *testing.T) {
	it := NewPathItem("a")
	s := newSegment(it, "fillStyle", "#ff0000", "#0000ff", 0, time.Second)
	s.TransformForTime(500 * time.Millisecond)
	if v, _ := it.Attr("fillStyle"); v != "rgba(127,0,127,1)" {
		t.Errorf("fillStyle = %v", v)
	}
}

func TestSegmentNonNumericHoldsThenSnaps(t *testing.T) {
	it := NewPathItem("a")
	s := newSegment(it, "lineCap", "butt", "round", 0, time.Second)

	s.TransformForTime(999 * time.Millisecond)
	if v, _ := it.Attr("lineCap"); v != "butt" {
		t.Errorf("before end = %v, want butt", v)
	}
	s.TransformForTime(time.Second)
	if v, _ := it.Attr("lineCap"); v != "round" {
		t.Errorf("at end = %v, want round", v)
	}
}

func TestSegmentPath(t *testing.T) {
	it := NewPathItem("a")
	it.MoveTo(0, 0).LineTo(10, 0)
	from := it.Path()
	to := []Vertex{{Type: VertexMove, X: 0, Y: 0}, {Type: VertexLine, X: 20, Y: 10}}

	s := newSegment(it, "path", from, to, 0, time.Second)
	s.TransformForTime(500 * time.Millisecond)
	p := it.Path()
	assertVertex(t, "v1", p[1], 15, 5)
	if s.Target() != Animatable(it) || s.Item != "a" {
		t.Error("segment should remember its target")
	}
}
