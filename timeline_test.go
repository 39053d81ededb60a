package cartoon

import (
	"testing"
	"time"
)

func newTimelineScene() (*Canvas, *Item) {
	c := NewCanvas(nil, 100, 100)
	it := c.NewPath("a")
	it.MoveTo(0, 0).LineTo(10, 0)
	return c, it
}

func TestTimelineCapturesTimeZero(t *testing.T) {
	c, it := newTimelineScene()
	it.X = 5
	tl := NewTimeline(c, nil)

	if !tl.AddKeyFrame("a", time.Second, "x", 50.0) {
		t.Fatal("AddKeyFrame returned false")
	}
	keys := tl.KeyTimes("a", "x")
	if len(keys) != 2 || keys[0] != 0 || keys[1] != time.Second {
		t.Fatalf("keys = %v, want [0 1s]", keys)
	}
	tl.Compile()
	segs := tl.Segments()
	if len(segs) != 1 {
		t.Fatalf("segments = %d, want 1", len(segs))
	}
	if segs[0].From != 5.0 || segs[0].To != 50.0 {
		t.Errorf("segment = %v -> %v", segs[0].From, segs[0].To)
	}
}

func TestTimelineExplicitZeroKeyGivesOneSegment(t *testing.T) {
	c, it := newTimelineScene()
	tl := NewTimeline(c, nil)
	tl.AddKeyFrame("a", 0, "x", 0.0)
	tl.AddKeyFrame("a", time.Second, "x", 50.0)
	tl.Compile()

	if n := len(tl.Segments()); n != 1 {
		t.Fatalf("segments = %d, want 1", n)
	}
	tl.Apply(500*time.Millisecond, false)
	assertNear(t, "x", it.X, 25)
}

func TestTimelineSingleKeyInterpolatesFromCapturedZero(t *testing.T) {
	c, it := newTimelineScene()
	tl := NewTimeline(c, nil)
	tl.AddKeyFrame("a", time.Second, "x", 50.0)
	tl.Compile()

	tl.Apply(500*time.Millisecond, false)
	assertNear(t, "x at midpoint", it.X, 25)
	tl.Apply(time.Second, false)
	assertNear(t, "x at key", it.X, 50)
}

func TestTimelineSegmentsPerConsecutiveKeys(t *testing.T) {
	c, it := newTimelineScene()
	tl := NewTimeline(c, nil)
	tl.AddKeyFrame("a", 2*time.Second, "x", 20.0)
	tl.AddKeyFrame("a", time.Second, "x", 10.0)
	tl.AddKeyFrame("a", time.Second, "rotation", 90.0)
	tl.Compile()

	if n := len(tl.Segments()); n != 3 {
		t.Fatalf("segments = %d, want 3", n)
	}
	tl.Apply(1500*time.Millisecond, false)
	assertNear(t, "x", it.X, 15)
	if tl.LastFrame != 2*time.Second {
		t.Errorf("LastFrame = %v", tl.LastFrame)
	}
}

func TestTimelineCompileIsIdempotent(t *testing.T) {
	c, _ := newTimelineScene()
	tl := NewTimeline(c, nil)
	tl.AddKeyFrame("a", time.Second, "x", 10.0)
	tl.Compile()
	tl.Compile()
	if n := len(tl.Segments()); n != 1 {
		t.Errorf("segments after second Compile = %d, want 1", n)
	}
}

func TestTimelineRejectsUnknownTargets(t *testing.T) {
	c, _ := newTimelineScene()
	tl := NewTimeline(c, nil)

	if tl.AddKeyFrame("missing", time.Second, "x", 1.0) {
		t.Error("key frame on missing item should fail")
	}
	if tl.AddKeyFrame("a", time.Second, "nope", 1.0) {
		t.Error("key frame on missing attribute should fail")
	}
	if tl.AddAttrChange("missing", time.Second, "visible", false) {
		t.Error("change on missing item should fail")
	}
	if tl.LastFrame != 0 {
		t.Errorf("LastFrame = %v, want 0", tl.LastFrame)
	}
	if len(tl.discrete) != 0 {
		t.Errorf("discrete = %d entries, want 0", len(tl.discrete))
	}
}

func TestTimelineForwardMatchesSeek(t *testing.T) {
	build := func() (*Timeline, *Item) {
		c, it := newTimelineScene()
		tl := NewTimeline(c, nil)
		tl.AddAttrChange("a", time.Second, "visible", false)
		tl.AddAttrChange("a", 2*time.Second, "visible", true)
		tl.Compile()
		return tl, it
	}

	forward, fit := build()
	for _, at := range []time.Duration{0, 500 * time.Millisecond, 1500 * time.Millisecond} {
		forward.Apply(at, false)
	}
	seeked, sit := build()
	seeked.Apply(1500*time.Millisecond, true)

	if fit.Visible || sit.Visible {
		t.Errorf("visible at 1.5s: forward=%v seek=%v, want false", fit.Visible, sit.Visible)
	}

	forward.Apply(2500*time.Millisecond, false)
	seeked.Apply(2500*time.Millisecond, true)
	if !fit.Visible || !sit.Visible {
		t.Errorf("visible at 2.5s: forward=%v seek=%v, want true", fit.Visible, sit.Visible)
	}
}

func TestTimelineSeekBackReplaysFromZero(t *testing.T) {
	c, it := newTimelineScene()
	tl := NewTimeline(c, nil)
	tl.AddAttrChange("a", time.Second, "visible", false)
	tl.Compile()

	tl.Apply(2*time.Second, true)
	if it.Visible {
		t.Fatal("expected hidden after 1s")
	}
	tl.Apply(500*time.Millisecond, true)
	if !it.Visible {
		t.Error("seeking before the change should restore the captured value")
	}
}

func TestTimelineBackwardExactHit(t *testing.T) {
	c, it := newTimelineScene()
	tl := NewTimeline(c, nil)
	tl.AddAttrChange("a", time.Second, "visible", false)
	tl.AddAttrChange("a", 2*time.Second, "visible", true)
	tl.Compile()

	tl.Apply(2500*time.Millisecond, false)
	if !it.Visible {
		t.Fatal("expected visible at 2.5s")
	}
	tl.Apply(time.Second, false)
	if it.Visible {
		t.Error("moving back onto a change time should apply it")
	}
	tl.Apply(1500*time.Millisecond, false)
	if it.Visible {
		t.Error("no change lies between 1s and 1.5s")
	}
}

func TestTimelineZeroChangesMerge(t *testing.T) {
	c, it := newTimelineScene()
	tl := NewTimeline(c, nil)
	tl.AddAttrChange("a", time.Second, "visible", false)
	it.Visible = false
	tl.AddAttrChange("a", 3*time.Second, "visible", true)
	tl.AddAttrChange("a", 2*time.Second, "lineCap", "round")

	zero := tl.discrete[0].changes
	if len(zero) != 2 {
		t.Fatalf("time-0 changes = %d, want 2", len(zero))
	}
	if zero[0].attr != "visible" || zero[0].value != true {
		t.Errorf("first capture = %+v, want visible=true", zero[0])
	}
	if zero[1].attr != "lineCap" || zero[1].value != "butt" {
		t.Errorf("second capture = %+v, want lineCap=butt", zero[1])
	}
}

func TestTimelineApplyDrawsScene(t *testing.T) {
	s := newRecordingSurface()
	c := NewCanvas(s, 10, 10)
	c.NewPath("a").MoveTo(0, 0).LineTo(1, 1)
	tl := NewTimeline(c, nil)
	tl.Compile()

	tl.Apply(0, false)
	tl.Apply(time.Second, true)
	if n := s.count("clear"); n != 2 {
		t.Errorf("clear calls = %d, want 2", n)
	}
}

func TestTimelineAnimatesColorAndPath(t *testing.T) {
	c, it := newTimelineScene()
	tl := NewTimeline(c, nil)
	tl.AddKeyFrame("a", time.Second, "strokeStyle", "#ff0000")
	tl.AddKeyFrame("a", 2*time.Second, "strokeStyle", "#0000ff")
	tl.AddKeyFrame("a", time.Second, "path", []Vertex{
		{Type: VertexMove}, {Type: VertexLine, X: 20, Y: 10},
	})
	tl.Compile()

	tl.Apply(500*time.Millisecond, true)
	assertVertex(t, "mid path", it.Path()[1], 15, 5)

	tl.Apply(1500*time.Millisecond, false)
	if v, _ := it.Attr("strokeStyle"); v != "rgba(127,0,127,1)" {
		t.Errorf("strokeStyle = %v", v)
	}
}

func TestTimelineAnimatesBones(t *testing.T) {
	c, it := newTimelineScene()
	b := c.NewBone("knee")
	it.AddBone(b)
	tl := NewTimeline(c, nil)
	if !tl.AddKeyFrame("knee", time.Second, "rotation", 90.0) {
		t.Fatal("bones should be animatable by name")
	}
	tl.Compile()
	tl.Apply(500*time.Millisecond, false)
	assertNear(t, "bone rotation", b.Rotation, 45)
}

func TestTimelineForget(t *testing.T) {
	c, _ := newTimelineScene()
	c.NewPath("b")
	tl := NewTimeline(c, nil)
	tl.AddKeyFrame("a", time.Second, "x", 10.0)
	tl.AddKeyFrame("b", time.Second, "x", 10.0)
	tl.AddAttrChange("a", time.Second, "visible", false)
	tl.Compile()

	c.RemoveItem("a")
	tl.Forget("a")

	if n := len(tl.Segments()); n != 1 || tl.Segments()[0].Item != "b" {
		t.Errorf("segments after Forget = %d", n)
	}
	if len(tl.discrete) != 0 {
		t.Errorf("discrete changes left: %d", len(tl.discrete))
	}
	if tl.KeyTimes("a", "x") != nil {
		t.Error("key frames should be dropped")
	}
	tl.Apply(500*time.Millisecond, true)
}

func TestTimelineHideShow(t *testing.T) {
	bgSurface := newRecordingSurface()
	bg := NewCanvas(bgSurface, 10, 10)
	c, _ := newTimelineScene()
	tl := NewTimeline(c, bg)

	tl.Hide()
	if !tl.Hidden() || !c.Hidden || !bg.Hidden {
		t.Fatal("Hide should hide scene and background")
	}
	tl.Show()
	if tl.Hidden() || c.Hidden || bg.Hidden {
		t.Fatal("Show should reveal scene and background")
	}
	if bgSurface.count("clear") != 1 {
		t.Error("Show should redraw the background")
	}
}
