package cartoon

import "image"

// ItemType distinguishes drawing behavior for an Item.
type ItemType uint8

const (
	ItemPath    ItemType = iota // vector path with bones and sub-paths
	ItemGeneric                 // caller-supplied draw function
	ItemImage                   // draws an image at its global transform
)

// String returns the lower-case name of the item type.
func (t ItemType) String() string {
	switch t {
	case ItemPath:
		return "path"
	case ItemGeneric:
		return "generic"
	case ItemImage:
		return "image"
	default:
		return "unknown"
	}
}

// Item is the fundamental scene element. A single flat struct is used for
// all item kinds; Type selects the drawing behavior.
type Item struct {
	// Identity
	name string
	Type ItemType

	// Hierarchy. The parent is a weak back-reference: the tree is owned by
	// the Canvas the items live in.
	parent *Item

	// Transform (local). Rotation is in degrees.
	X, Y      float64
	Rotation  float64
	Scale     float64
	OriginX   float64
	OriginY   float64
	Reverse   bool
	Visible   bool
	ClosePath bool

	// Render attributes. Only keys present here are legal attr targets.
	attrs map[string]any

	// Path fields (ItemPath)
	path        []Vertex
	subPaths    [][]int
	subAttrs    []map[string]any
	bones       map[string][]int
	boneOrder   []string
	boneByName  map[string]*Bone
	openBone    string
	currentPath int

	// Generic fields (ItemGeneric)
	DrawFunc func(s Surface, it *Item)

	// Image fields (ItemImage)
	Image image.Image

	// Internal
	canvas   *Canvas
	disposed bool
}

// defaultRenderAttrs returns the canvas 2D defaults used by path and
// generic items.
func defaultRenderAttrs() map[string]any {
	return map[string]any{
		"fillStyle":                "#000",
		"font":                     "Arial",
		"globalAlpha":              1.0,
		"globalCompositeOperation": "source-over",
		"lineCap":                  "butt",
		"lineJoin":                 "miter",
		"lineWidth":                1.0,
		"miterLimit":               10.0,
		"shadowBlur":               0.0,
		"shadowColor":              "rgba(0,0,0,0)",
		"shadowOffsetX":            0.0,
		"shadowOffsetY":            0.0,
		"strokeStyle":              "#000",
		"textAlign":                "start",
		"textBaseLine":             "alphabetic",
	}
}

// itemDefaults sets the field values shared by all constructors.
func itemDefaults(it *Item) {
	it.Scale = 1
	it.Visible = true
}

// NewPathItem creates a path item with an empty vertex list and a single
// open sub-path.
func NewPathItem(name string) *Item {
	it := &Item{
		name:       name,
		Type:       ItemPath,
		attrs:      defaultRenderAttrs(),
		subPaths:   [][]int{{}},
		subAttrs:   []map[string]any{{}},
		bones:      map[string][]int{},
		boneByName: map[string]*Bone{},
	}
	itemDefaults(it)
	return it
}

// NewGenericItem creates an item whose drawing is delegated to fn. The
// surface is not transformed before fn is called; use ApplyGlobalTransform
// and CustomizeSurface inside fn as needed.
func NewGenericItem(name string, fn func(s Surface, it *Item)) *Item {
	it := &Item{
		name:     name,
		Type:     ItemGeneric,
		attrs:    defaultRenderAttrs(),
		DrawFunc: fn,
	}
	itemDefaults(it)
	return it
}

// NewImageItem creates an item that draws img with its origin at the
// item's pivot.
func NewImageItem(name string, img image.Image) *Item {
	it := &Item{
		name: name,
		Type: ItemImage,
		attrs: map[string]any{
			"globalAlpha":              1.0,
			"globalCompositeOperation": "source-over",
		},
		Image: img,
	}
	itemDefaults(it)
	return it
}

// Name returns the item's unique name.
func (it *Item) Name() string {
	return it.name
}

// Parent returns the item's parent, or nil.
func (it *Item) Parent() *Item {
	return it.parent
}

// SetParent makes p the parent of this item. A nil p detaches the item.
// Returns false, leaving the current parent untouched, if p is this item,
// a descendant of it, or disposed.
func (it *Item) SetParent(p *Item) bool {
	if p == nil {
		it.parent = nil
		return true
	}
	if p.disposed || isAncestor(it, p) {
		return false
	}
	it.parent = p
	return true
}

// Canvas returns the canvas the item was added to, or nil.
func (it *Item) Canvas() *Canvas {
	return it.canvas
}

// IsDisposed reports whether the item was removed from its canvas.
func (it *Item) IsDisposed() bool {
	return it.disposed
}

// CustomizeSurface copies every render attribute onto s without
// transforming it.
func (it *Item) CustomizeSurface(s Surface) {
	for _, k := range sortedKeys(it.attrs) {
		s.SetStyle(k, it.attrs[k])
	}
}

// Draw renders the item onto s. Path items draw their global path, image
// items draw at their global transform, generic items call DrawFunc.
func (it *Item) Draw(s Surface) {
	switch it.Type {
	case ItemPath:
		it.drawPath(s)
	case ItemImage:
		it.CustomizeSurface(s)
		ox, oy := it.ApplyGlobalTransform(s)
		if it.Image != nil {
			s.DrawImage(it.Image, -ox, -oy)
		}
	case ItemGeneric:
		if it.DrawFunc != nil {
			it.DrawFunc(s, it)
		}
	}
}

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Item) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}
