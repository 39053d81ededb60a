package cartoon

import (
	"fmt"
	"image"
	"math"
	"strings"
)

// rnd rounds to 1e-6 so logged coordinates survive trigonometric noise.
func rnd(v float64) float64 {
	v = math.Round(v*1e6) / 1e6
	if v == 0 {
		return 0
	}
	return v
}

// recordingSurface is a Surface that logs every call.
type recordingSurface struct {
	calls  []string
	styles map[string]any
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{styles: map[string]any{}}
}

func (r *recordingSurface) log(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recordingSurface) Save()                  { r.log("save") }
func (r *recordingSurface) Restore()               { r.log("restore") }
func (r *recordingSurface) Translate(x, y float64) { r.log("translate %g %g", rnd(x), rnd(y)) }
func (r *recordingSurface) Rotate(rad float64)     { r.log("rotate %g", rnd(rad)) }
func (r *recordingSurface) Scale(sx, sy float64)   { r.log("scale %g %g", rnd(sx), rnd(sy)) }
func (r *recordingSurface) SetStyle(name string, value any) {
	r.styles[name] = value
	r.log("style %s %v", name, value)
}
func (r *recordingSurface) Clear()              { r.log("clear") }
func (r *recordingSurface) BeginPath()          { r.log("beginPath") }
func (r *recordingSurface) MoveTo(x, y float64) { r.log("moveTo %g %g", rnd(x), rnd(y)) }
func (r *recordingSurface) LineTo(x, y float64) { r.log("lineTo %g %g", rnd(x), rnd(y)) }
func (r *recordingSurface) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.log("bezierCurveTo %g %g %g %g %g %g", rnd(c1x), rnd(c1y), rnd(c2x), rnd(c2y), rnd(x), rnd(y))
}
func (r *recordingSurface) QuadraticCurveTo(cx, cy, x, y float64) {
	r.log("quadraticCurveTo %g %g %g %g", rnd(cx), rnd(cy), rnd(x), rnd(y))
}
func (r *recordingSurface) ArcTo(x1, y1, x2, y2, radius float64) {
	r.log("arcTo %g %g %g %g %g", rnd(x1), rnd(y1), rnd(x2), rnd(y2), rnd(radius))
}
func (r *recordingSurface) ClosePath() { r.log("closePath") }
func (r *recordingSurface) Fill()      { r.log("fill") }
func (r *recordingSurface) Stroke()    { r.log("stroke") }
func (r *recordingSurface) DrawImage(img image.Image, x, y float64) {
	r.log("drawImage %dx%d %g %g", img.Bounds().Dx(), img.Bounds().Dy(), rnd(x), rnd(y))
}

// pathCalls returns the logged calls excluding styles and state.
func (r *recordingSurface) pathCalls() []string {
	var out []string
	for _, c := range r.calls {
		switch {
		case strings.HasPrefix(c, "style"), c == "save", c == "restore":
			continue
		}
		out = append(out, c)
	}
	return out
}

func (r *recordingSurface) count(call string) int {
	n := 0
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}

func sameCalls(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

var _ Surface = (*recordingSurface)(nil)
var _ Surface = (*RasterSurface)(nil)
var _ ImageSurface = (*RasterSurface)(nil)
