//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	overlayPad        = 16
	overlayLineHeight = 16
)

// Overlay draws the help panel on top of the board. It starts hidden and is
// toggled with H.
type Overlay struct {
	visible bool
	panel   *ebiten.Image
	lines   []string
}

// NewOverlay constructs a hidden help overlay.
func NewOverlay() *Overlay {
	return &Overlay{lines: HelpLines()}
}

// Visible reports whether the overlay is shown.
func (o *Overlay) Visible() bool { return o.visible }

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw paints the panel centered on screen when visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	if o.panel == nil {
		longest := 0
		for _, l := range o.lines {
			longest = max(longest, len(l))
		}
		w := longest*basicfont.Face7x13.Advance + 2*overlayPad
		h := len(o.lines)*overlayLineHeight + 2*overlayPad
		o.panel = ebiten.NewImage(w, h)
		o.panel.Fill(color.RGBA{R: 0x21, G: 0x20, B: 0x20, A: 230})
		for i, l := range o.lines {
			y := overlayPad + (i+1)*overlayLineHeight - 4
			text.Draw(o.panel, l, basicfont.Face7x13, overlayPad, y, color.White)
		}
	}

	sb := screen.Bounds()
	pb := o.panel.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64((sb.Dx()-pb.Dx())/2), float64((sb.Dy()-pb.Dy())/2))
	screen.DrawImage(o.panel, op)
}
