// Package ebitenhost runs cartoon scenes in an ebiten window. It provides
// [EbitenSurface], a GPU-backed cartoon.Surface, and [Game], which drives a
// cartoon.Player from ebiten's frame loop.
//
//	q := &cartoon.FrameQueue{}
//	p := cartoon.NewPlayer(q, nil)
//	scene := cartoon.NewCanvas(ebitenhost.NewEbitenSurface(640, 480), 640, 480)
//	...
//	ebitenhost.Run(ebitenhost.NewGame(p, q, cartoon.DefaultConfig().Run, scene))
//
// The root cartoon package does not import ebiten, so headless tools built
// on cartoon.RasterSurface need neither cgo nor a display.
package ebitenhost
