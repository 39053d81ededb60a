// Package cartoon is a 2D vector animation engine. Scenes are canvases of
// named items whose attributes are animated by key frames and discrete
// changes, and a Player switches between scenes over time.
//
// # Quick start
//
// Build a scene, describe its motion on a [Timeline], register the timeline
// with a [Player] and host the player in an ebiten window with
// cartoon/ebitenhost:
//
//	q := &cartoon.FrameQueue{}
//	scene := cartoon.NewCanvas(ebitenhost.NewEbitenSurface(640, 480), 640, 480)
//
//	arm := scene.NewPath("arm")
//	arm.MoveTo(0, 0)
//	arm.LineTo(100, 0)
//
//	tl := cartoon.NewTimeline(scene, nil)
//	tl.AddKeyFrame("arm", 2*time.Second, "rotation", 90.0)
//
//	p := cartoon.NewPlayer(q, nil)
//	p.AddScene(tl, 0)
//	p.Play()
//	ebitenhost.Run(ebitenhost.NewGame(p, q, cartoon.DefaultConfig().Run, scene))
//
// Headless rendering uses [RasterSurface] with a [ManualClock]; see
// cmd/cartoon-export. This package does not import ebiten. New surfaces
// embed [SurfaceState] and draw its recorded [PathOp]s.
//
// # Items and transforms
//
// Every canvas member is a [Drawable]. Path, image and generic drawables are
// all an [Item]; [Bone] and [Group] are the others. An item's parent chain
// composes root first: each level translates by position plus origin,
// rotates (degrees), then scales, mirroring X when Reverse is set. Paths are
// resolved in canvas space by [Item.GlobalPath], after the item's bones
// have deformed their vertices.
//
// # Timelines
//
// [Timeline.AddKeyFrame] records a value for an attribute at a time; the
// first key of an attribute also captures its current value at time 0.
// [Timeline.Compile] turns consecutive keys into linear [Segment]s: numbers
// and vertex lists are interpolated, colors per channel, anything else holds
// its start value until the segment ends. [Timeline.AddAttrChange] schedules
// instantaneous changes, replayed in full when seeking.
//
// Real-time tweens outside timelines use [gween] through [TweenAttr].
// Player events can be published into a [Donburi] world with cartoon/ecs,
// and cartoon/remote accepts transport commands over MQTT.
//
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package cartoon
