package cartoon

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPositionReachesTarget(t *testing.T) {
	it := NewPathItem("a")
	tw := TweenPosition(it, 10, 20, 1, ease.Linear)
	if tw == nil {
		t.Fatal("TweenPosition returned nil")
	}

	tw.Update(0.5)
	assertNear(t, "x at half", it.X, 5)
	assertNear(t, "y at half", it.Y, 10)
	if tw.Done {
		t.Fatal("tween finished early")
	}

	tw.Update(0.5)
	assertNear(t, "x", it.X, 10)
	assertNear(t, "y", it.Y, 20)
	if !tw.Done {
		t.Error("expected Done")
	}

	tw.Update(1)
	assertNear(t, "x after done", it.X, 10)
}

func TestTweenReset(t *testing.T) {
	it := NewPathItem("a")
	tw := TweenRotation(it, 90, 1, ease.Linear)
	tw.Update(1)
	tw.Reset()
	if tw.Done {
		t.Fatal("Reset should clear Done")
	}
	tw.Update(0.5)
	assertNear(t, "rotation", it.Rotation, 45)
}

func TestTweenStopsOnRemovedItem(t *testing.T) {
	c := NewCanvas(nil, 10, 10)
	it := c.NewPath("a")
	tw := TweenAttr(it, "x", 100, 1, ease.Linear)
	c.RemoveItem("a")

	tw.Update(0.5)
	if !tw.Done {
		t.Error("expected Done for removed item")
	}
	if it.X != 0 {
		t.Errorf("x changed to %v on removed item", it.X)
	}
}

func TestTweenBone(t *testing.T) {
	b := NewBone("hip")
	tw := TweenRotation(b, 30, 2, ease.Linear)
	tw.Update(1)
	assertNear(t, "bone rotation", b.Rotation, 15)
}

func TestTweenAttrRendersNumericStyle(t *testing.T) {
	it := NewPathItem("a")
	tw := TweenAttr(it, "lineWidth", 5, 1, ease.Linear)
	tw.Update(1)
	if v, _ := it.Attr("lineWidth"); v != 5.0 {
		t.Errorf("lineWidth = %v, want 5", v)
	}
}

func TestTweenAttrRejectsBadAttrs(t *testing.T) {
	it := NewPathItem("a")
	if TweenAttr(it, "nope", 1, 1, ease.Linear) != nil {
		t.Error("unknown attribute should return nil")
	}
	if TweenAttr(it, "fillStyle", 1, 1, ease.Linear) != nil {
		t.Error("non-numeric attribute should return nil")
	}
}
