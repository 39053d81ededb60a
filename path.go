package cartoon

import (
	"errors"
	"fmt"
)

// ErrEmptyPath is returned by GlobalPath when resolution yields no
// vertices. It points at a construction problem upstream, usually an item
// that never received any vertices.
var ErrEmptyPath = errors.New("cartoon: empty global path")

// VertexType tags a vertex so the rasterizer knows how to consume it.
type VertexType uint8

const (
	VertexMove      VertexType = iota // jump to (X, Y)
	VertexLine                        // line to (X, Y)
	VertexBezier                      // cubic curve to (X, Y); followed by two control vertices
	VertexQuadratic                   // quadratic curve to (X, Y); followed by one control vertex
	VertexArc                         // arc through (X, Y) with Radius; followed by one control vertex
	VertexControl1                    // first control point of the preceding curve
	VertexControl2                    // second control point of the preceding bezier
)

var vertexTypeNames = [...]string{"move", "line", "bezierCurve", "quadraticCurve", "arc", "control1", "control2"}

// String returns the vertex type name.
func (t VertexType) String() string {
	if int(t) < len(vertexTypeNames) {
		return vertexTypeNames[t]
	}
	return fmt.Sprintf("VertexType(%d)", t)
}

// controls returns how many control vertices follow an anchor of this type.
func (t VertexType) controls() int {
	switch t {
	case VertexBezier:
		return 2
	case VertexQuadratic, VertexArc:
		return 1
	}
	return 0
}

// Vertex is a single path entry. Radius is only meaningful for arcs.
type Vertex struct {
	Type   VertexType
	X, Y   float64
	Radius float64
}

// --- Path construction ---

// Path returns a copy of the item's local vertex list.
func (it *Item) Path() []Vertex {
	return append([]Vertex(nil), it.path...)
}

// SetPath replaces the item's local vertex list. Sub-path and bone index
// tables are kept as they are.
func (it *Item) SetPath(path []Vertex) *Item {
	it.path = path
	return it
}

// MoveTo starts a new stroke at (x, y).
func (it *Item) MoveTo(x, y float64) *Item {
	return it.push(Vertex{Type: VertexMove, X: x, Y: y})
}

// LineTo adds a straight line to (x, y).
func (it *Item) LineTo(x, y float64) *Item {
	return it.push(Vertex{Type: VertexLine, X: x, Y: y})
}

// BezierCurveTo adds a cubic curve to (x, y) with control points
// (cx1, cy1) and (cx2, cy2).
func (it *Item) BezierCurveTo(x, y, cx1, cy1, cx2, cy2 float64) *Item {
	return it.push(
		Vertex{Type: VertexBezier, X: x, Y: y},
		Vertex{Type: VertexControl1, X: cx1, Y: cy1},
		Vertex{Type: VertexControl2, X: cx2, Y: cy2},
	)
}

// QuadraticCurveTo adds a quadratic curve to (x, y) with control (cx, cy).
func (it *Item) QuadraticCurveTo(x, y, cx, cy float64) *Item {
	return it.push(
		Vertex{Type: VertexQuadratic, X: x, Y: y},
		Vertex{Type: VertexControl1, X: cx, Y: cy},
	)
}

// ArcTo adds an arc with the given radius whose tangents run through
// (x, y) and (x2, y2).
func (it *Item) ArcTo(x, y, x2, y2, radius float64) *Item {
	return it.push(
		Vertex{Type: VertexArc, X: x, Y: y, Radius: radius},
		Vertex{Type: VertexControl1, X: x2, Y: y2},
	)
}

// EndPath closes the current sub-path; later vertices start a new one.
func (it *Item) EndPath() *Item {
	it.currentPath++
	it.subPaths = append(it.subPaths, []int{})
	it.subAttrs = append(it.subAttrs, map[string]any{})
	return it
}

// FillFor overrides fillStyle for the current sub-path.
func (it *Item) FillFor(style string) *Item {
	it.subAttrs[it.currentPath]["fillStyle"] = style
	return it
}

// StrokeFor overrides strokeStyle for the current sub-path.
func (it *Item) StrokeFor(style string) *Item {
	it.subAttrs[it.currentPath]["strokeStyle"] = style
	return it
}

// LineWidthFor overrides lineWidth for the current sub-path.
func (it *Item) LineWidthFor(width float64) *Item {
	it.subAttrs[it.currentPath]["lineWidth"] = width
	return it
}

// SubPaths returns the number of sub-paths.
func (it *Item) SubPaths() int {
	return len(it.subPaths)
}

func (it *Item) push(vs ...Vertex) *Item {
	if it.Type != ItemPath {
		panic("cartoon: path construction on a non-path item")
	}
	indices := make([]int, len(vs))
	for i, v := range vs {
		indices[i] = len(it.path)
		it.path = append(it.path, v)
	}
	it.adoptIndices(indices...)
	it.subPaths[it.currentPath] = append(it.subPaths[it.currentPath], indices...)
	return it
}

// --- Resolution ---

// GlobalPath returns the item's vertices in canvas space. Bones deform a
// copy of the local path first; the item chain is then applied one level
// at a time from the item outward. Each level mirrors X when reversed,
// rotates and scales about its origin, and offsets by (x, y) only.
// Type and Radius are preserved. The stored path is never modified.
func (it *Item) GlobalPath() ([]Vertex, error) {
	path := it.Path()
	it.applyBones(path)

	walkChain(it, itemParent, itemLevel, false, func(l level) {
		out := make([]Vertex, len(path))
		for i, v := range path {
			x, y := polarTransform((v.X-l.originX)*l.sign(), v.Y-l.originY, l.rotation, l.scale)
			out[i] = Vertex{Type: v.Type, X: x + l.x, Y: y + l.y, Radius: v.Radius}
		}
		path = out
	})

	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	return path, nil
}

// drawPath renders every sub-path of the global path with its overrides.
func (it *Item) drawPath(s Surface) {
	it.CustomizeSurface(s)
	path, err := it.GlobalPath()
	if err != nil {
		it.canvas.debugf("draw %q: %v", it.name, err)
		if it.canvas != nil {
			it.canvas.stats.emptyPaths++
		}
		return
	}
	for j, sub := range it.subPaths {
		for _, k := range sortedKeys(it.subAttrs[j]) {
			s.SetStyle(k, it.subAttrs[j][k])
		}
		s.BeginPath()
		for inc := 0; inc < len(sub); inc++ {
			i := sub[inc]
			if i >= len(path) {
				continue
			}
			p := path[i]
			n := p.Type.controls()
			if n > 0 && i+n >= len(path) {
				it.canvas.debugf("draw %q: %s at %d is missing control points", it.name, p.Type, i)
				break
			}
			switch p.Type {
			case VertexLine:
				s.LineTo(p.X, p.Y)
			case VertexBezier:
				c1, c2 := path[i+1], path[i+2]
				s.BezierCurveTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
			case VertexQuadratic:
				c := path[i+1]
				s.QuadraticCurveTo(c.X, c.Y, p.X, p.Y)
			case VertexArc:
				c := path[i+1]
				s.ArcTo(p.X, p.Y, c.X, c.Y, p.Radius)
			default:
				s.MoveTo(p.X, p.Y)
			}
			inc += n
		}
		if it.ClosePath {
			s.ClosePath()
		}
		s.Fill()
		s.Stroke()
	}
}

// interpolatePath blends two vertex lists field by field. Type is carried
// from the start path; vertices missing from the end path keep their
// start values.
func interpolatePath(from, to []Vertex, p float64) []Vertex {
	out := make([]Vertex, len(from))
	for i, a := range from {
		if i >= len(to) {
			out[i] = a
			continue
		}
		b := to[i]
		out[i] = Vertex{
			Type:   a.Type,
			X:      lerp(a.X, b.X, p),
			Y:      lerp(a.Y, b.Y, p),
			Radius: lerp(a.Radius, b.Radius, p),
		}
	}
	return out
}

// lerp interpolates linearly without clamping p.
func lerp(a, b, p float64) float64 {
	return (b-a)*p + a
}
