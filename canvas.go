package cartoon

import (
	"fmt"
	"time"
)

// IDGen hands out default names such as object_0, matrix_0 and group_0.
// Each Canvas owns one so names never leak between canvases or tests.
type IDGen struct {
	counts map[string]int
}

// Next returns the next name for prefix.
func (g *IDGen) Next(prefix string) string {
	if g.counts == nil {
		g.counts = map[string]int{}
	}
	n := g.counts[prefix]
	g.counts[prefix]++
	return fmt.Sprintf("%s_%d", prefix, n)
}

// Canvas owns a set of named drawables and the surface they render onto.
// It is the scene a Timeline animates; items are looked up by name.
type Canvas struct {
	Width, Height int

	// Hidden suppresses the canvas; hosts skip hidden canvases when
	// compositing.
	Hidden bool

	// IDs generates default names for the New* helpers.
	IDs IDGen

	surface Surface
	items   map[string]Drawable
	order   []string
	debug   bool
	stats   drawStats
}

// NewCanvas creates an empty canvas drawing onto s.
func NewCanvas(s Surface, width, height int) *Canvas {
	return &Canvas{
		Width:   width,
		Height:  height,
		surface: s,
		items:   map[string]Drawable{},
	}
}

// Surface returns the surface the canvas draws onto.
func (c *Canvas) Surface() Surface {
	return c.surface
}

// SetSurface replaces the canvas surface.
func (c *Canvas) SetSurface(s Surface) {
	c.surface = s
}

// AddItem adds d to the canvas, replacing any drawable with the same name.
// A replaced item is disposed as if it had been removed. Panics if d is nil.
func (c *Canvas) AddItem(d Drawable) {
	if d == nil {
		panic("cartoon: cannot add nil item")
	}
	name := d.Name()
	old, exists := c.items[name]
	if !exists {
		c.order = append(c.order, name)
	}
	c.items[name] = d
	if old != d {
		if it, ok := old.(*Item); ok {
			c.dispose(it)
		}
	}
	if it, ok := d.(*Item); ok {
		it.canvas = c
		it.disposed = false
	}
}

// RemoveItem removes the named drawable. A removed item loses its parent
// back-reference, and items parented to it are detached so nothing keeps
// the removed subtree reachable. Timelines referencing the name must be
// told separately with Timeline.Forget.
func (c *Canvas) RemoveItem(name string) {
	d, ok := c.items[name]
	if !ok {
		return
	}
	delete(c.items, name)
	for i, n := range c.order {
		if n == name {
			copy(c.order[i:], c.order[i+1:])
			c.order[len(c.order)-1] = ""
			c.order = c.order[:len(c.order)-1]
			break
		}
	}
	if it, ok := d.(*Item); ok {
		c.dispose(it)
	}
}

// dispose cuts it loose from the canvas and detaches its children.
func (c *Canvas) dispose(it *Item) {
	it.parent = nil
	it.canvas = nil
	it.disposed = true
	for _, other := range c.items {
		if child, ok := other.(*Item); ok && child.parent == it {
			child.parent = nil
		}
	}
}

// Item returns the named drawable, or nil.
func (c *Canvas) Item(name string) Drawable {
	return c.items[name]
}

// PathItem returns the named drawable if it is an *Item.
func (c *Canvas) PathItem(name string) (*Item, bool) {
	it, ok := c.items[name].(*Item)
	return it, ok
}

// Items returns the drawables in insertion order.
func (c *Canvas) Items() []Drawable {
	out := make([]Drawable, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.items[name])
	}
	return out
}

// NumItems returns the number of drawables on the canvas.
func (c *Canvas) NumItems() int {
	return len(c.order)
}

// NewPath creates a path item, adds it to the canvas and returns it. An
// empty name is replaced by a generated one.
func (c *Canvas) NewPath(name string) *Item {
	if name == "" {
		name = c.IDs.Next("object")
	}
	it := NewPathItem(name)
	c.AddItem(it)
	return it
}

// NewBone creates a bone, adds it to the canvas and returns it.
func (c *Canvas) NewBone(name string) *Bone {
	if name == "" {
		name = c.IDs.Next("matrix")
	}
	b := NewBone(name)
	c.AddItem(b)
	return b
}

// NewGroup creates a group, adds it to the canvas and returns it.
func (c *Canvas) NewGroup(name string) *Group {
	if name == "" {
		name = c.IDs.Next("group")
	}
	g := NewGroup(name)
	c.AddItem(g)
	return g
}

// Draw clears the surface and draws every visible drawable in insertion
// order, each inside its own Save/Restore pair.
func (c *Canvas) Draw() {
	if c.surface == nil {
		return
	}
	var t0 time.Time
	if c.debug {
		t0 = time.Now()
	}
	c.stats = drawStats{}

	s := c.surface
	s.Clear()
	for _, name := range c.order {
		d := c.items[name]
		if !d.IsVisible() {
			continue
		}
		s.Save()
		d.Draw(s)
		s.Restore()
		c.stats.itemCount++
	}

	if c.debug {
		c.stats.drawTime = time.Since(t0)
		c.debugLog(c.stats)
	}
}

// EmptyPaths returns how many path items resolved to an empty global path
// during the last Draw.
func (c *Canvas) EmptyPaths() int {
	return c.stats.emptyPaths
}

// SetDebugMode enables or disables per-draw stats and diagnostics on
// stderr.
func (c *Canvas) SetDebugMode(enabled bool) {
	c.debug = enabled
}
