package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/cartoon"
)

// Game hosts a Player in an ebiten window. Each Update drains the
// FrameQueue the Player schedules its ticks on; each Draw composites the
// visible canvases that draw onto an EbitenSurface.
type Game struct {
	Player   *cartoon.Player
	Queue    *cartoon.FrameQueue
	Canvases []*cartoon.Canvas
	Script   *cartoon.PlaybackScript

	// OnUpdate is called at the start of every Update, before scheduled
	// ticks run. Returning an error stops the game.
	OnUpdate func() error

	config cartoon.RunConfig
	bg     cartoon.RGBA
}

// NewGame creates a Game compositing canvases in order.
func NewGame(p *cartoon.Player, q *cartoon.FrameQueue, cfg cartoon.RunConfig, canvases ...*cartoon.Canvas) *Game {
	return &Game{
		Player:   p,
		Queue:    q,
		Canvases: canvases,
		config:   cfg,
		bg:       cartoon.ParseColor(cfg.Background),
	}
}

// Update handles transport keys, steps the optional script and runs the
// ticks scheduled for this frame. Space toggles playback, Left rewinds,
// Escape stops.
func (g *Game) Update() error {
	if g.OnUpdate != nil {
		if err := g.OnUpdate(); err != nil {
			return err
		}
	}
	if g.Player != nil {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeySpace):
			g.Player.TogglePlay()
		case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
			g.Player.Back15()
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			g.Player.Stop()
		}
		if g.Script != nil {
			g.Script.Step(g.Player, nil)
		}
	}
	if g.Queue != nil {
		g.Queue.RunFrame()
	}
	return nil
}

// Draw composites the canvases onto screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg.NRGBA())
	for _, c := range g.Canvases {
		if c.Hidden {
			continue
		}
		es, ok := c.Surface().(*EbitenSurface)
		if !ok {
			continue
		}
		screen.DrawImage(es.Target(), nil)
	}
	if g.config.ShowFPS {
		drawOverlay(screen, g.Player)
	}
}

// Layout returns the configured logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.config.Width, g.config.Height
}

// Run opens a window and runs g until the window is closed.
func Run(g *Game) error {
	cfg := g.config
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(g)
}
