package cartoon

import (
	"maps"
	"math"
)

// PathOpKind is a recorded path command.
type PathOpKind uint8

const (
	OpMove  PathOpKind = iota // Pts[0] is the new current point
	OpLine                    // Pts[0] is the end point
	OpQuad                    // Pts[0] control, Pts[1] end
	OpCubic                   // Pts[0], Pts[1] controls, Pts[2] end
	OpClose
)

// Point is a device-space coordinate.
type Point struct{ X, Y float64 }

// PathOp is one path command in device space. Pts holds the control points
// followed by the end point.
type PathOp struct {
	Kind PathOpKind
	Pts  [3]Point
}

// drawState is the part of a surface saved and restored by Save/Restore.
type drawState struct {
	m      Affine
	styles map[string]any
}

// SurfaceState implements the transform stack, style state and path
// recording shared by concrete surfaces. Embed it and implement Clear,
// Fill, Stroke and DrawImage on top of Ops. Paths are recorded in device
// space as they are built, so later transform changes do not affect points
// already added. Arcs are converted to a line plus a cubic.
type SurfaceState struct {
	state drawState
	stack []drawState

	ops        []PathOp
	cur, start Point // device space
	hasCurrent bool
}

// NewSurfaceState returns an identity transform and the canvas 2D default
// styles.
func NewSurfaceState() SurfaceState {
	return SurfaceState{state: drawState{m: Identity, styles: defaultRenderAttrs()}}
}

// Save pushes the transform and styles.
func (s *SurfaceState) Save() {
	saved := s.state
	saved.styles = maps.Clone(s.state.styles)
	s.stack = append(s.stack, saved)
}

// Restore pops the transform and styles. Unbalanced calls are ignored.
func (s *SurfaceState) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.state = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// Translate moves the origin in the current frame.
func (s *SurfaceState) Translate(x, y float64) {
	s.state.m = s.state.m.Translated(x, y)
}

// Rotate rotates the current frame by rad radians.
func (s *SurfaceState) Rotate(rad float64) {
	s.state.m = s.state.m.Rotated(rad)
}

// Scale scales the current frame.
func (s *SurfaceState) Scale(sx, sy float64) {
	s.state.m = s.state.m.Scaled(sx, sy)
}

// SetStyle records a render attribute.
func (s *SurfaceState) SetStyle(name string, value any) {
	s.state.styles[name] = value
}

// Transform returns the current transform.
func (s *SurfaceState) Transform() Affine {
	return s.state.m
}

// BeginPath discards the current path.
func (s *SurfaceState) BeginPath() {
	s.ops = s.ops[:0]
	s.hasCurrent = false
}

// MoveTo starts a new sub-path at (x, y).
func (s *SurfaceState) MoveTo(x, y float64) {
	p := s.device(x, y)
	s.ops = append(s.ops, PathOp{Kind: OpMove, Pts: [3]Point{p}})
	s.cur, s.start, s.hasCurrent = p, p, true
}

// LineTo adds a straight segment; with no current point it acts as MoveTo.
func (s *SurfaceState) LineTo(x, y float64) {
	if !s.hasCurrent {
		s.MoveTo(x, y)
		return
	}
	p := s.device(x, y)
	s.ops = append(s.ops, PathOp{Kind: OpLine, Pts: [3]Point{p}})
	s.cur = p
}

// BezierCurveTo adds a cubic curve.
func (s *SurfaceState) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !s.hasCurrent {
		s.MoveTo(c1x, c1y)
	}
	p := s.device(x, y)
	s.ops = append(s.ops, PathOp{Kind: OpCubic, Pts: [3]Point{s.device(c1x, c1y), s.device(c2x, c2y), p}})
	s.cur = p
}

// QuadraticCurveTo adds a quadratic curve.
func (s *SurfaceState) QuadraticCurveTo(cx, cy, x, y float64) {
	if !s.hasCurrent {
		s.MoveTo(cx, cy)
	}
	p := s.device(x, y)
	s.ops = append(s.ops, PathOp{Kind: OpQuad, Pts: [3]Point{s.device(cx, cy), p}})
	s.cur = p
}

// ArcTo adds an arc of the given radius tangent to the lines from the
// current point to (x1, y1) and from (x1, y1) to (x2, y2). Degenerate input
// draws a straight line to (x1, y1).
func (s *SurfaceState) ArcTo(x1, y1, x2, y2, radius float64) {
	if !s.hasCurrent {
		s.MoveTo(x1, y1)
		return
	}
	x0, y0 := s.state.m.Invert().Apply(s.cur.X, s.cur.Y)

	v1x, v1y := x0-x1, y0-y1
	v2x, v2y := x2-x1, y2-y1
	l1 := math.Hypot(v1x, v1y)
	l2 := math.Hypot(v2x, v2y)
	cross := v1x*v2y - v1y*v2x
	if radius <= 0 || l1 == 0 || l2 == 0 || math.Abs(cross) < 1e-9 {
		s.LineTo(x1, y1)
		return
	}
	v1x, v1y = v1x/l1, v1y/l1
	v2x, v2y = v2x/l2, v2y/l2

	theta := math.Acos(math.Max(-1, math.Min(1, v1x*v2x+v1y*v2y)))
	d := radius / math.Tan(theta/2)
	t1x, t1y := x1+v1x*d, y1+v1y*d
	t2x, t2y := x1+v2x*d, y1+v2y*d

	// A single cubic approximates the arc; its sweep is below pi.
	k := 4.0 / 3.0 * math.Tan((math.Pi-theta)/4) * radius
	s.LineTo(t1x, t1y)
	s.BezierCurveTo(t1x-v1x*k, t1y-v1y*k, t2x-v2x*k, t2y-v2y*k, t2x, t2y)
}

// ClosePath closes the current sub-path.
func (s *SurfaceState) ClosePath() {
	if !s.hasCurrent {
		return
	}
	s.ops = append(s.ops, PathOp{Kind: OpClose})
	s.cur = s.start
}

func (s *SurfaceState) device(x, y float64) Point {
	dx, dy := s.state.m.Apply(x, y)
	return Point{dx, dy}
}

// Ops returns the current path. The slice MUST NOT be mutated.
func (s *SurfaceState) Ops() []PathOp {
	return s.ops
}

// Style returns the current value of a style, or nil.
func (s *SurfaceState) Style(name string) any {
	return s.state.styles[name]
}

// StyleFloat returns a numeric style as float64.
func (s *SurfaceState) StyleFloat(name string) (float64, bool) {
	return toFloat(s.state.styles[name])
}

// StyleColor returns a color style multiplied by globalAlpha.
func (s *SurfaceState) StyleColor(name string) RGBA {
	c := colorValue(s.state.styles[name])
	if a, ok := s.StyleFloat("globalAlpha"); ok {
		c.A *= a
	}
	return c
}

// Alpha returns globalAlpha clamped to [0, 1].
func (s *SurfaceState) Alpha() float64 {
	a, ok := s.StyleFloat("globalAlpha")
	if !ok {
		return 1
	}
	return math.Max(0, math.Min(1, a))
}

// LineWidth returns the stroke width in device pixels.
func (s *SurfaceState) LineWidth() float64 {
	w, ok := s.StyleFloat("lineWidth")
	if !ok {
		w = 1
	}
	m := s.state.m
	return w * math.Sqrt(math.Abs(m[0]*m[3]-m[1]*m[2]))
}

// flatten converts the recorded path into polylines. closed reports which
// polylines end with a ClosePath.
func (s *SurfaceState) flatten() (lines [][]Point, closed []bool) {
	const steps = 16
	var cur []Point
	flush := func(isClosed bool) {
		if len(cur) > 1 {
			lines = append(lines, cur)
			closed = append(closed, isClosed)
		}
		cur = nil
	}
	var last Point
	for _, op := range s.ops {
		switch op.Kind {
		case OpMove:
			flush(false)
			cur = []Point{op.Pts[0]}
			last = op.Pts[0]
		case OpLine:
			cur = append(cur, op.Pts[0])
			last = op.Pts[0]
		case OpQuad:
			for i := 1; i <= steps; i++ {
				t := float64(i) / steps
				u := 1 - t
				cur = append(cur, Point{
					u*u*last.X + 2*u*t*op.Pts[0].X + t*t*op.Pts[1].X,
					u*u*last.Y + 2*u*t*op.Pts[0].Y + t*t*op.Pts[1].Y,
				})
			}
			last = op.Pts[1]
		case OpCubic:
			for i := 1; i <= steps; i++ {
				t := float64(i) / steps
				u := 1 - t
				cur = append(cur, Point{
					u*u*u*last.X + 3*u*u*t*op.Pts[0].X + 3*u*t*t*op.Pts[1].X + t*t*t*op.Pts[2].X,
					u*u*u*last.Y + 3*u*u*t*op.Pts[0].Y + 3*u*t*t*op.Pts[1].Y + t*t*t*op.Pts[2].Y,
				})
			}
			last = op.Pts[2]
		case OpClose:
			if len(cur) > 0 {
				start := cur[0]
				flush(true)
				cur = []Point{start}
				last = start
			}
		}
	}
	flush(false)
	return lines, closed
}

// strokeQuads returns one quad per polyline segment, each w device pixels
// wide and consistently wound.
func strokeQuads(lines [][]Point, closed []bool, w float64) [][4]Point {
	var quads [][4]Point
	half := w / 2
	seg := func(a, b Point) {
		dx, dy := b.X-a.X, b.Y-a.Y
		l := math.Hypot(dx, dy)
		if l == 0 {
			return
		}
		nx, ny := -dy/l*half, dx/l*half
		quads = append(quads, [4]Point{
			{a.X + nx, a.Y + ny},
			{b.X + nx, b.Y + ny},
			{b.X - nx, b.Y - ny},
			{a.X - nx, a.Y - ny},
		})
	}
	for i, pl := range lines {
		for j := 1; j < len(pl); j++ {
			seg(pl[j-1], pl[j])
		}
		if closed[i] {
			seg(pl[len(pl)-1], pl[0])
		}
	}
	return quads
}

func finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
