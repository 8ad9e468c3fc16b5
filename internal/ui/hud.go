//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"mad-life/pkg/sims/life"
)

const hudHeight = 20

type statusProvider interface {
	State() life.State
	Geometry() life.Geometry
}

// HUD renders a status strip along the bottom edge of the board.
type HUD struct {
	src   statusProvider
	panel *ebiten.Image
	width int
}

// NewHUD constructs a HUD reading from src.
func NewHUD(src statusProvider) *HUD {
	return &HUD{src: src}
}

// Draw paints the strip onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.src == nil {
		return
	}
	bounds := screen.Bounds()
	w := bounds.Dx()
	if w <= 0 || bounds.Dy() < hudHeight {
		return
	}
	if h.panel == nil || h.width != w {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(w, hudHeight)
		h.width = w
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	line := StatusLine(h.src.State(), h.src.Geometry())
	text.Draw(h.panel, line, basicfont.Face7x13, 6, 14, color.RGBA{R: 0xD5, G: 0xEF, B: 0x68, A: 0xFF})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(bounds.Dy()-hudHeight))
	screen.DrawImage(h.panel, op)
}
