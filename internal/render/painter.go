//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"mad-life/internal/core"
)

// GridPainter uploads recorded frames into a single RGBA image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
	pal  Palette
}

// NewGridPainter returns a painter using pal.
func NewGridPainter(pal Palette) *GridPainter {
	return &GridPainter{pal: pal}
}

// Blit paints grid and draws it at the origin of dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, grid *core.ByteGrid) {
	w, h := PixelSize(grid)
	if w == 0 || h == 0 {
		return
	}
	if gp.img == nil || w != gp.w || h != gp.h {
		if gp.img != nil {
			gp.img.Dispose()
		}
		gp.img = ebiten.NewImage(w, h)
		gp.buf = make([]byte, 4*w*h)
		gp.w, gp.h = w, h
	}
	fillCellsRGBA(gp.buf, grid, gp.pal)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, nil)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
