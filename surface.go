package cartoon

import "image"

// Surface is the abstract 2D vector drawing capability items render onto.
// Path coordinates are interpreted in the surface's current transform, and
// style names match the item render attributes (fillStyle, strokeStyle,
// lineWidth, globalAlpha, ...).
type Surface interface {
	Save()
	Restore()
	Translate(x, y float64)
	Rotate(rad float64)
	Scale(sx, sy float64)
	SetStyle(name string, value any)
	Clear()

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64)
	QuadraticCurveTo(cx, cy, x, y float64)
	ArcTo(x1, y1, x2, y2, radius float64)
	ClosePath()
	Fill()
	Stroke()

	DrawImage(img image.Image, x, y float64)
}
