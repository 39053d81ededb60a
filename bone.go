package cartoon

// Bone is a named transform that deforms a subset of a path item's
// vertices. Bones chain through their own Parent links, independently of
// the item tree. Bones are canvas members so timelines can animate them,
// but they never draw anything.
type Bone struct {
	name     string
	parent   *Bone
	X, Y     float64
	Rotation float64 // degrees
	Scale    float64
	OriginX  float64
	OriginY  float64
}

// NewBone creates a bone with unit scale.
func NewBone(name string) *Bone {
	return &Bone{name: name, Scale: 1}
}

// Name returns the bone's name.
func (b *Bone) Name() string { return b.name }

// Parent returns the bone's parent, or nil.
func (b *Bone) Parent() *Bone { return b.parent }

// SetParent lets p manipulate this bone. A nil p detaches it. Returns false
// if p is this bone or one of its descendants.
func (b *Bone) SetParent(p *Bone) bool {
	for q := p; q != nil; q = q.parent {
		if q == b {
			return false
		}
	}
	b.parent = p
	return true
}

// Attr returns x, y, rotation, scale, originX or originY.
func (b *Bone) Attr(name string) (any, bool) {
	if f := b.field(name); f != nil {
		return *f, true
	}
	return nil, false
}

// SetAttr sets x, y, rotation, scale, originX or originY.
func (b *Bone) SetAttr(name string, value any) bool {
	f := b.field(name)
	if f == nil {
		return false
	}
	return setFloat(f, value)
}

// SetAttrs applies every entry of m and reports whether all succeeded.
func (b *Bone) SetAttrs(m map[string]any) bool {
	return setAll(b, m)
}

// Draw is a no-op; bones have no visual output.
func (b *Bone) Draw(Surface) {}

// IsVisible is always false so canvases skip bones when drawing.
func (b *Bone) IsVisible() bool { return false }

func (b *Bone) field(name string) *float64 {
	switch name {
	case "x":
		return &b.X
	case "y":
		return &b.Y
	case "rotation":
		return &b.Rotation
	case "scale":
		return &b.Scale
	case "originX":
		return &b.OriginX
	case "originY":
		return &b.OriginY
	}
	return nil
}

func boneParent(b *Bone) *Bone { return b.parent }

func boneLevel(b *Bone) level {
	return level{
		x: b.X, y: b.Y,
		originX: b.OriginX, originY: b.OriginY,
		rotation: b.Rotation,
		scale:    b.Scale,
	}
}

// --- Bone table on path items ---

// AddBone registers b with the item. Registering a name twice keeps the
// first bone and its vertex set.
func (it *Item) AddBone(b *Bone) *Item {
	if _, ok := it.bones[b.name]; !ok {
		it.bones[b.name] = []int{}
		it.boneByName[b.name] = b
		it.boneOrder = append(it.boneOrder, b.name)
	}
	return it
}

// BeginBone registers b if needed and assigns every vertex added until
// EndBone to it.
func (it *Item) BeginBone(b *Bone) *Item {
	it.AddBone(b)
	it.openBone = b.name
	return it
}

// EndBone stops assigning new vertices to the open bone.
func (it *Item) EndBone() *Item {
	it.openBone = ""
	return it
}

// SetBoneSegments replaces the vertex indices the named bone may deform.
// An index already owned by another bone moves to this one. Returns false
// if the bone is not registered.
func (it *Item) SetBoneSegments(bone string, indices []int) bool {
	if _, ok := it.bones[bone]; !ok {
		return false
	}
	it.bones[bone] = append([]int(nil), indices...)
	it.releaseIndices(bone, indices)
	return true
}

// BoneSegments returns a copy of the vertex indices owned by the named bone.
func (it *Item) BoneSegments(bone string) ([]int, bool) {
	idx, ok := it.bones[bone]
	if !ok {
		return nil, false
	}
	return append([]int(nil), idx...), true
}

// Bones returns the registered bones in registration order.
func (it *Item) Bones() []*Bone {
	out := make([]*Bone, 0, len(it.boneOrder))
	for _, name := range it.boneOrder {
		out = append(out, it.boneByName[name])
	}
	return out
}

// releaseIndices removes indices from every bone other than owner.
func (it *Item) releaseIndices(owner string, indices []int) {
	if len(indices) == 0 {
		return
	}
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		drop[i] = true
	}
	for name, idx := range it.bones {
		if name == owner {
			continue
		}
		kept := idx[:0]
		for _, i := range idx {
			if !drop[i] {
				kept = append(kept, i)
			}
		}
		it.bones[name] = kept
	}
}

// adoptIndices gives freshly appended vertices to the open bone.
func (it *Item) adoptIndices(indices ...int) {
	if it.openBone == "" {
		return
	}
	it.bones[it.openBone] = append(it.bones[it.openBone], indices...)
	it.releaseIndices(it.openBone, indices)
}

// applyBones deforms path in place. For every bone, its chain is walked
// leaf to root and each level rotates and scales the bone's vertices about
// that level's origin before offsetting them by (x+originX, y+originY).
func (it *Item) applyBones(path []Vertex) {
	for _, name := range it.boneOrder {
		idx := it.bones[name]
		walkChain(it.boneByName[name], boneParent, boneLevel, false, func(l level) {
			for _, i := range idx {
				if i < 0 || i >= len(path) {
					continue
				}
				v := path[i]
				x, y := polarTransform(v.X-l.originX, v.Y-l.originY, l.rotation, l.scale)
				v.X = x + l.x + l.originX
				v.Y = y + l.y + l.originY
				path[i] = v
			}
		})
	}
}
