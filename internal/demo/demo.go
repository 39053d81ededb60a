// Package demo builds the two-scene sample cartoon shared by the window
// example and the exporter.
package demo

import (
	"time"

	"github.com/phanxgames/cartoon"
)

// SurfaceFunc creates the surface a canvas draws onto.
type SurfaceFunc func(w, h int) cartoon.Surface

// Build registers the sample scenes with p and returns their canvases in
// compositing order: each scene's background followed by the scene.
//
// The first scene walks a boned figure across a field while the sun
// changes color; the second, from 4s, bounces a ball and morphs a wave.
func Build(p *cartoon.Player, newSurface SurfaceFunc, w, h int) []*cartoon.Canvas {
	bg1, walk := walkScene(newSurface, w, h)
	bg2, bounce := bounceScene(newSurface, w, h)
	p.AddScene(walk, 0)
	p.AddScene(bounce, 4*time.Second)
	return []*cartoon.Canvas{bg1, walk.Scene, bg2, bounce.Scene}
}

func rect(c *cartoon.Canvas, name string, x, y, w, h float64, fill string) *cartoon.Item {
	it := c.NewPath(name)
	it.MoveTo(x, y).LineTo(x+w, y).LineTo(x+w, y+h).LineTo(x, y+h)
	it.ClosePath = true
	it.SetAttrs(map[string]any{"fillStyle": fill, "strokeStyle": fill})
	return it
}

func walkScene(newSurface SurfaceFunc, w, h int) (*cartoon.Canvas, *cartoon.Timeline) {
	fw, fh := float64(w), float64(h)

	bg := cartoon.NewCanvas(newSurface(w, h), w, h)
	rect(bg, "sky", 0, 0, fw, fh*0.7, "#8ecae6")
	rect(bg, "grass", 0, fh*0.7, fw, fh*0.3, "#588157")

	scene := cartoon.NewCanvas(newSurface(w, h), w, h)

	sun := scene.NewPath("sun")
	sun.X, sun.Y = fw-80, 70
	sun.MoveTo(-30, 0).
		ArcTo(-30, -30, 0, -30, 30).
		ArcTo(30, -30, 30, 0, 30).
		ArcTo(30, 30, 0, 30, 30).
		ArcTo(-30, 30, -30, 0, 30)
	sun.ClosePath = true
	sun.SetAttrs(map[string]any{"fillStyle": "#ffd60a", "strokeStyle": "#ffc300"})

	body := scene.NewPath("body")
	body.X, body.Y = 60, fh*0.7-90
	body.MoveTo(0, 0).LineTo(0, 50)
	body.SetAttr("lineWidth", 6.0)

	head := scene.NewPath("head")
	head.SetParent(body)
	head.MoveTo(-12, -12).LineTo(12, -12).LineTo(12, 8).LineTo(-12, 8)
	head.ClosePath = true
	head.SetAttrs(map[string]any{"fillStyle": "#f4a261", "strokeStyle": "#e76f51"})

	hat := scene.NewPath("hat")
	hat.SetParent(head)
	hat.MoveTo(-16, -12).LineTo(16, -12).LineTo(0, -30)
	hat.ClosePath = true
	hat.SetAttrs(map[string]any{"fillStyle": "#6a4c93", "strokeStyle": "#6a4c93"})

	// One leg path, thigh driven by the hip bone and shin by the knee bone
	// that hangs off it.
	hip := scene.NewBone("hip")
	hip.OriginX, hip.OriginY = 0, 50
	knee := scene.NewBone("knee")
	knee.OriginX, knee.OriginY = 0, 70
	knee.SetParent(hip)

	leg := scene.NewPath("leg")
	leg.SetParent(body)
	leg.BeginBone(hip).MoveTo(0, 50).LineTo(0, 70).EndBone()
	leg.BeginBone(knee).LineTo(0, 90).EndBone()
	leg.SetAttr("lineWidth", 5.0)

	tl := cartoon.NewTimeline(scene, bg)
	tl.AddKeyFrame("body", 4*time.Second, "x", fw-120)
	for i, deg := range []float64{25, -25, 25, -25, 0} {
		at := time.Duration(i+1) * 800 * time.Millisecond
		tl.AddKeyFrame("hip", at, "rotation", deg)
		tl.AddKeyFrame("knee", at, "rotation", -deg/2)
	}
	tl.AddKeyFrame("sun", 4*time.Second, "fillStyle", "#fb8500")
	tl.AddKeyFrame("sun", 4*time.Second, "y", 120.0)
	tl.AddAttrChange("hat", 2*time.Second, "visible", false)
	tl.AddAttrChange("hat", 3*time.Second, "visible", true)
	return bg, tl
}

func bounceScene(newSurface SurfaceFunc, w, h int) (*cartoon.Canvas, *cartoon.Timeline) {
	fw, fh := float64(w), float64(h)

	bg := cartoon.NewCanvas(newSurface(w, h), w, h)
	rect(bg, "night", 0, 0, fw, fh, "#14213d")

	scene := cartoon.NewCanvas(newSurface(w, h), w, h)

	ball := scene.NewPath("ball")
	ball.X, ball.Y = fw/2, 60
	ball.MoveTo(-20, 0).
		QuadraticCurveTo(0, -20, -20, -20).
		QuadraticCurveTo(20, 0, 20, -20).
		QuadraticCurveTo(0, 20, 20, 20).
		QuadraticCurveTo(-20, 0, -20, 20)
	ball.ClosePath = true
	ball.SetAttrs(map[string]any{"fillStyle": "#e63946", "strokeStyle": "#ffffff"})

	wave := scene.NewPath("wave")
	wave.Y = fh - 60
	wave.MoveTo(0, 0).BezierCurveTo(fw, 0, fw/3, -40, 2*fw/3, 40)
	wave.SetAttrs(map[string]any{"strokeStyle": "#a8dadc", "lineWidth": 4.0, "fillStyle": "rgba(0,0,0,0)"})

	flat := wave.Path()
	crest := make([]cartoon.Vertex, len(flat))
	copy(crest, flat)
	crest[2].Y, crest[3].Y = 40, -40

	tl := cartoon.NewTimeline(scene, bg)
	floor := fh - 100
	tl.AddKeyFrame("ball", 4*time.Second, "y", 60.0)
	for i, y := range []float64{floor, 60, floor, 140, floor} {
		tl.AddKeyFrame("ball", 4*time.Second+time.Duration(i+1)*500*time.Millisecond, "y", y)
	}
	tl.AddKeyFrame("ball", 4*time.Second, "fillStyle", "#e63946")
	tl.AddKeyFrame("ball", 6500*time.Millisecond, "fillStyle", "#2a9d8f")
	tl.AddKeyFrame("wave", 4*time.Second, "path", flat)
	tl.AddKeyFrame("wave", 5*time.Second, "path", crest)
	tl.AddKeyFrame("wave", 6*time.Second, "path", flat)
	tl.AddAttrChange("ball", 5500*time.Millisecond, "scale", 1.5)
	return bg, tl
}
