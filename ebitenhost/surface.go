package ebitenhost

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/cartoon"
)

// --- White pixel singleton (single-threaded, no sync.Once) ---

var whiteSubImage *ebiten.Image

// ensureWhitePixel returns a lazily created white source image for
// DrawTriangles. The 1-pixel border keeps linear sampling inside white.
func ensureWhitePixel() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(image.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// EbitenSurface is a cartoon.Surface backed by an offscreen ebiten image.
// Paths are triangulated with ebiten's vector package and drawn on the GPU.
type EbitenSurface struct {
	cartoon.SurfaceState

	target *ebiten.Image
	images map[image.Image]*ebiten.Image
	vs     []ebiten.Vertex
	is     []uint16
}

// NewEbitenSurface creates a transparent w x h offscreen surface.
func NewEbitenSurface(w, h int) *EbitenSurface {
	return &EbitenSurface{
		SurfaceState: cartoon.NewSurfaceState(),
		target:       ebiten.NewImage(w, h),
		images:       map[image.Image]*ebiten.Image{},
	}
}

// Target returns the offscreen image the surface draws onto.
func (e *EbitenSurface) Target() *ebiten.Image {
	return e.target
}

// Clear makes every pixel transparent.
func (e *EbitenSurface) Clear() {
	e.target.Clear()
}

// Fill fills the current path with fillStyle using the nonzero rule.
func (e *EbitenSurface) Fill() {
	p := vectorPath(e.Ops())
	e.vs, e.is = p.AppendVerticesAndIndicesForFilling(e.vs[:0], e.is[:0])
	e.drawTriangles(e.StyleColor("fillStyle"))
}

// Stroke outlines the current path with strokeStyle at lineWidth, honoring
// lineCap, lineJoin and miterLimit.
func (e *EbitenSurface) Stroke() {
	p := vectorPath(e.Ops())
	e.vs, e.is = p.AppendVerticesAndIndicesForStroke(e.vs[:0], e.is[:0], strokeOptions(&e.SurfaceState))
	e.drawTriangles(e.StyleColor("strokeStyle"))
}

// DrawImage draws img with its top-left corner at (x, y) in the current
// transform. Non-ebiten images are uploaded once and cached.
func (e *EbitenSurface) DrawImage(img image.Image, x, y float64) {
	if img == nil {
		return
	}
	src, ok := img.(*ebiten.Image)
	if !ok {
		src, ok = e.images[img]
		if !ok {
			src = ebiten.NewImageFromImage(img)
			e.images[img] = src
		}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM(e.Transform().Translated(x, y))
	op.ColorScale.ScaleAlpha(float32(e.Alpha()))
	op.Filter = ebiten.FilterLinear
	e.target.DrawImage(src, op)
}

// geoM converts a cartoon affine matrix to an ebiten GeoM.
func geoM(m cartoon.Affine) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(0, 1, m[2])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 0, m[1])
	g.SetElement(1, 1, m[3])
	g.SetElement(1, 2, m[5])
	return g
}

// strokeOptions maps the canvas line styles of s onto ebiten's.
func strokeOptions(s *cartoon.SurfaceState) *vector.StrokeOptions {
	opts := &vector.StrokeOptions{
		Width:      float32(s.LineWidth()),
		LineJoin:   vector.LineJoinMiter,
		LineCap:    vector.LineCapButt,
		MiterLimit: 10,
	}
	switch s.Style("lineJoin") {
	case "round":
		opts.LineJoin = vector.LineJoinRound
	case "bevel":
		opts.LineJoin = vector.LineJoinBevel
	}
	switch s.Style("lineCap") {
	case "round":
		opts.LineCap = vector.LineCapRound
	case "square":
		opts.LineCap = vector.LineCapSquare
	}
	if ml, ok := s.StyleFloat("miterLimit"); ok {
		opts.MiterLimit = float32(ml)
	}
	return opts
}

func vectorPath(ops []cartoon.PathOp) *vector.Path {
	var p vector.Path
	for _, op := range ops {
		switch op.Kind {
		case cartoon.OpMove:
			p.MoveTo(float32(op.Pts[0].X), float32(op.Pts[0].Y))
		case cartoon.OpLine:
			p.LineTo(float32(op.Pts[0].X), float32(op.Pts[0].Y))
		case cartoon.OpQuad:
			p.QuadTo(float32(op.Pts[0].X), float32(op.Pts[0].Y),
				float32(op.Pts[1].X), float32(op.Pts[1].Y))
		case cartoon.OpCubic:
			p.CubicTo(float32(op.Pts[0].X), float32(op.Pts[0].Y),
				float32(op.Pts[1].X), float32(op.Pts[1].Y),
				float32(op.Pts[2].X), float32(op.Pts[2].Y))
		case cartoon.OpClose:
			p.Close()
		}
	}
	return &p
}

// drawTriangles paints the pending vertices with c, premultiplied.
func (e *EbitenSurface) drawTriangles(c cartoon.RGBA) {
	if len(e.is) == 0 {
		return
	}
	n := c.NRGBA()
	a := float32(n.A) / 0xff
	r := float32(n.R) / 0xff * a
	g := float32(n.G) / 0xff * a
	b := float32(n.B) / 0xff * a
	for i := range e.vs {
		e.vs[i].SrcX = 1
		e.vs[i].SrcY = 1
		e.vs[i].ColorR = r
		e.vs[i].ColorG = g
		e.vs[i].ColorB = b
		e.vs[i].ColorA = a
	}
	e.target.DrawTriangles(e.vs, e.is, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
	})
}
