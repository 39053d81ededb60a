package cartoon

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
)

// RasterSurface is a headless Surface that rasterizes onto an in-memory
// RGBA image. It needs no GPU or window and is used for exports and tests.
type RasterSurface struct {
	SurfaceState

	img *image.RGBA
	z   *vector.Rasterizer
}

// NewRasterSurface creates a transparent w x h surface.
func NewRasterSurface(w, h int) *RasterSurface {
	return &RasterSurface{
		SurfaceState: NewSurfaceState(),
		img:          image.NewRGBA(image.Rect(0, 0, w, h)),
		z:            vector.NewRasterizer(w, h),
	}
}

// Image returns the backing image. It is overwritten by later draws.
func (r *RasterSurface) Image() image.Image {
	return r.img
}

// Pixels returns the backing image as *image.RGBA.
func (r *RasterSurface) Pixels() *image.RGBA {
	return r.img
}

// Clear makes every pixel transparent. The transform and styles are kept.
func (r *RasterSurface) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

// Fill fills the current path with fillStyle using the nonzero rule. Every
// sub-path is implicitly closed.
func (r *RasterSurface) Fill() {
	b := r.img.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	r.z.DrawOp = draw.Over

	started := false
	for _, op := range r.ops {
		for _, p := range op.Pts[:opPoints(op.Kind)] {
			if !finite(p) {
				return
			}
		}
		switch op.Kind {
		case OpMove:
			if started {
				r.z.ClosePath()
			}
			r.z.MoveTo(float32(op.Pts[0].X), float32(op.Pts[0].Y))
			started = true
		case OpLine:
			r.z.LineTo(float32(op.Pts[0].X), float32(op.Pts[0].Y))
		case OpQuad:
			r.z.QuadTo(float32(op.Pts[0].X), float32(op.Pts[0].Y),
				float32(op.Pts[1].X), float32(op.Pts[1].Y))
		case OpCubic:
			r.z.CubeTo(float32(op.Pts[0].X), float32(op.Pts[0].Y),
				float32(op.Pts[1].X), float32(op.Pts[1].Y),
				float32(op.Pts[2].X), float32(op.Pts[2].Y))
		case OpClose:
			r.z.ClosePath()
		}
	}
	if !started {
		return
	}
	r.z.ClosePath()
	r.z.Draw(r.img, b, image.NewUniform(r.StyleColor("fillStyle").NRGBA()), image.Point{})
}

// Stroke outlines the current path with strokeStyle at lineWidth. Joins
// and caps are butt.
func (r *RasterSurface) Stroke() {
	lines, closed := r.flatten()
	quads := strokeQuads(lines, closed, r.LineWidth())
	if len(quads) == 0 {
		return
	}
	b := r.img.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	r.z.DrawOp = draw.Over
	for _, q := range quads {
		if !finite(q[0]) || !finite(q[2]) {
			continue
		}
		r.z.MoveTo(float32(q[0].X), float32(q[0].Y))
		for _, p := range q[1:] {
			r.z.LineTo(float32(p.X), float32(p.Y))
		}
		r.z.ClosePath()
	}
	r.z.Draw(r.img, b, image.NewUniform(r.StyleColor("strokeStyle").NRGBA()), image.Point{})
}

// DrawImage draws img with its top-left corner at (x, y) in the current
// transform, scaled by globalAlpha.
func (r *RasterSurface) DrawImage(img image.Image, x, y float64) {
	if img == nil {
		return
	}
	m := r.state.m.Translated(x, y)
	s2d := f64.Aff3{m[0], m[2], m[4], m[1], m[3], m[5]}
	var opts *xdraw.Options
	if a := r.Alpha(); a < 1 {
		opts = &xdraw.Options{DstMask: image.NewUniform(color.Alpha{A: uint8(a * 255)})}
	}
	xdraw.BiLinear.Transform(r.img, s2d, img, img.Bounds(), xdraw.Over, opts)
}

// opPoints is the number of points an op of kind k carries.
func opPoints(k PathOpKind) int {
	switch k {
	case OpMove, OpLine:
		return 1
	case OpQuad:
		return 2
	case OpCubic:
		return 3
	}
	return 0
}
