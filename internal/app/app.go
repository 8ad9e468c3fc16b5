//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"mad-life/internal/render"
	"mad-life/internal/ui"
)

// Game adapts a life session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	palette render.Palette
}

// New constructs a Game seeded from cfg.
func New(cfg *Config, log *zap.Logger) (*Game, error) {
	s, err := NewSession(cfg, log)
	if err != nil {
		return nil, err
	}
	pal := render.DefaultPalette()
	return &Game{
		session: s,
		painter: render.NewGridPainter(pal),
		hud:     ui.NewHUD(s.Ctrl),
		overlay: ui.NewOverlay(),
		palette: pal,
	}, nil
}

// Session exposes the underlying session.
func (g *Game) Session() *Session { return g.session }

// Update handles per-frame input and runs due ticks.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.session.Close()
		return ebiten.Termination
	}
	ctrl := g.session.Ctrl
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		ctrl.ToggleRunning()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		ctrl.Advance()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ctrl.ResetDefault()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.session.Reseed()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !g.overlay.Visible() {
		g.session.Click(ebiten.CursorPosition())
	}

	g.overlay.Update()
	g.session.Update()
	return nil
}

// Draw renders the board, the status strip and the help overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.Background)
	g.painter.Blit(screen, g.session.Frame)
	g.hud.Draw(screen)
	g.overlay.Draw(screen)
}

// Layout tracks the window size so the board fills it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.session.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
