package cartoon

import "math"

// Affine is a 2D affine matrix [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Affine [6]float64

// Identity is the identity affine matrix.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Apply transforms the point (x, y) by m.
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Mul returns m * c, i.e. c applied first.
func (m Affine) Mul(c Affine) Affine {
	return Affine{
		m[0]*c[0] + m[2]*c[1],
		m[1]*c[0] + m[3]*c[1],
		m[0]*c[2] + m[2]*c[3],
		m[1]*c[2] + m[3]*c[3],
		m[0]*c[4] + m[2]*c[5] + m[4],
		m[1]*c[4] + m[3]*c[5] + m[5],
	}
}

// Invert returns the inverse of m, or Identity if m is singular.
func (m Affine) Invert() Affine {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return Identity
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Affine{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// Translated returns m followed by a translation in m's local frame.
func (m Affine) Translated(x, y float64) Affine {
	return m.Mul(Affine{1, 0, 0, 1, x, y})
}

// Rotated returns m followed by a rotation (radians) in m's local frame.
func (m Affine) Rotated(rad float64) Affine {
	sin, cos := math.Sincos(rad)
	return m.Mul(Affine{cos, sin, -sin, cos, 0, 0})
}

// Scaled returns m followed by a scale in m's local frame.
func (m Affine) Scaled(sx, sy float64) Affine {
	return m.Mul(Affine{sx, 0, 0, sy, 0, 0})
}

// level is the per-ancestor transform extracted from an Item or a Bone.
type level struct {
	x, y             float64
	originX, originY float64
	rotation         float64 // degrees
	scale            float64
	reverse          bool
}

func (l level) sign() float64 {
	if l.reverse {
		return -1
	}
	return 1
}

// chain collects leaf and its ancestors, leaf first.
func chain[T comparable](leaf T, parent func(T) T) []T {
	var zero T
	var out []T
	for n := leaf; n != zero; n = parent(n) {
		out = append(out, n)
	}
	return out
}

// walkChain visits the levels of leaf's ancestor chain. rootFirst selects
// root-to-leaf order; otherwise levels are visited leaf-to-root.
func walkChain[T comparable](leaf T, parent func(T) T, extract func(T) level, rootFirst bool, visit func(level)) {
	nodes := chain(leaf, parent)
	if rootFirst {
		for i := len(nodes) - 1; i >= 0; i-- {
			visit(extract(nodes[i]))
		}
		return
	}
	for _, n := range nodes {
		visit(extract(n))
	}
}

func itemParent(it *Item) *Item { return it.parent }

func itemLevel(it *Item) level {
	return level{
		x: it.X, y: it.Y,
		originX: it.OriginX, originY: it.OriginY,
		rotation: it.Rotation,
		scale:    it.Scale,
		reverse:  it.Reverse,
	}
}

// GlobalTransform returns the cumulative matrix a rasterizer applies
// before drawing the item's local geometry. Levels compose root to leaf:
// translate by (x+originX, y+originY), rotate, then scale with the X sign
// flipped for reversed levels.
func (it *Item) GlobalTransform() Affine {
	m := Identity
	walkChain(it, itemParent, itemLevel, true, func(l level) {
		m = m.Translated(l.x+l.originX, l.y+l.originY).
			Rotated(l.rotation * math.Pi / 180).
			Scaled(l.sign()*l.scale, l.scale)
	})
	return m
}

// ApplyGlobalTransform issues the item's global transform onto s and
// returns the item's own origin, which callers subtract from local
// geometry so that the origin acts as the pivot.
func (it *Item) ApplyGlobalTransform(s Surface) (originX, originY float64) {
	walkChain(it, itemParent, itemLevel, true, func(l level) {
		s.Translate(l.x+l.originX, l.y+l.originY)
		s.Rotate(l.rotation * math.Pi / 180)
		s.Scale(l.sign()*l.scale, l.scale)
		originX, originY = l.originX, l.originY
	})
	return originX, originY
}

// LocalToGlobal converts a point in the item's local space to canvas space.
func (it *Item) LocalToGlobal(lx, ly float64) (gx, gy float64) {
	return it.GlobalTransform().Apply(lx, ly)
}

// GlobalToLocal converts a canvas-space point to the item's local space.
func (it *Item) GlobalToLocal(gx, gy float64) (lx, ly float64) {
	return it.GlobalTransform().Invert().Apply(gx, gy)
}

// polarTransform rotates (x, y) by rotation degrees about the origin and
// scales its radius, using the polar form.
func polarTransform(x, y, rotation, scale float64) (float64, float64) {
	r := math.Sqrt(x*x+y*y) * scale
	a := math.Atan2(y, x) + rotation*math.Pi/180
	return r * math.Cos(a), r * math.Sin(a)
}
