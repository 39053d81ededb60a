package cartoon

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween animates up to 4 numeric attributes of one target in real time,
// independently of any Timeline. Create one via TweenAttr, TweenPosition or
// TweenRotation and call Update(dt) each frame. Values are written through
// SetAttr, so any Animatable works. If the target is an Item that has been
// removed from its canvas, the tween stops immediately.
//
// There is no global tween manager; callers call Update themselves.
type Tween struct {
	tweens [4]*gween.Tween
	attrs  [4]string
	count  int
	target Animatable
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target. If the target has been disposed, Done is set and nothing is
// written.
func (t *Tween) Update(dt float32) {
	if t.Done {
		return
	}
	if it, ok := t.target.(*Item); ok && it.IsDisposed() {
		t.Done = true
		return
	}

	allDone := true
	for i := 0; i < t.count; i++ {
		val, finished := t.tweens[i].Update(dt)
		t.target.SetAttr(t.attrs[i], float64(val))
		if !finished {
			allDone = false
		}
	}
	t.Done = allDone
}

// Reset rewinds every tween to its start value.
func (t *Tween) Reset() {
	for i := 0; i < t.count; i++ {
		t.tweens[i].Reset()
	}
	t.Done = false
}

func (t *Tween) add(attr string, to float64, duration float32, fn ease.TweenFunc) bool {
	v, ok := t.target.Attr(attr)
	if !ok {
		return false
	}
	from, ok := toFloat(v)
	if !ok {
		return false
	}
	t.tweens[t.count] = gween.New(float32(from), float32(to), duration, fn)
	t.attrs[t.count] = attr
	t.count++
	return true
}

// TweenAttr creates a Tween that animates a numeric attribute to the given
// value over duration seconds. Returns nil if the target has no such
// attribute or its current value is not numeric.
func TweenAttr(target Animatable, attr string, to float64, duration float32, fn ease.TweenFunc) *Tween {
	t := &Tween{target: target}
	if !t.add(attr, to, duration, fn) {
		return nil
	}
	return t
}

// TweenPosition creates a Tween that animates x and y to the given
// coordinates.
func TweenPosition(target Animatable, toX, toY float64, duration float32, fn ease.TweenFunc) *Tween {
	t := &Tween{target: target}
	if !t.add("x", toX, duration, fn) || !t.add("y", toY, duration, fn) {
		return nil
	}
	return t
}

// TweenRotation creates a Tween that animates rotation (degrees) to the
// target value.
func TweenRotation(target Animatable, to float64, duration float32, fn ease.TweenFunc) *Tween {
	return TweenAttr(target, "rotation", to, duration, fn)
}
