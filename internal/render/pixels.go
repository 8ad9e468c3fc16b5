package render

import (
	"image/color"

	"mad-life/internal/core"
)

// Palette colors a frame.
type Palette struct {
	Alive      color.RGBA
	Dead       color.RGBA
	Border     color.RGBA
	Background color.RGBA
}

// DefaultPalette is lime cells on charcoal with a dark grid.
func DefaultPalette() Palette {
	return Palette{
		Alive:      color.RGBA{R: 0xD5, G: 0xEF, B: 0x68, A: 0xFF},
		Dead:       color.RGBA{R: 0x21, G: 0x20, B: 0x20, A: 0xFF},
		Border:     color.RGBA{R: 0x31, G: 0x31, B: 0x31, A: 0xFF},
		Background: color.RGBA{A: 0xFF},
	}
}

// PixelSize returns the pixel dimensions of a frame.
func PixelSize(grid *core.ByteGrid) (int, int) {
	s := max(grid.CellSize, 1)
	return grid.W * s, grid.H * s
}

// fillCellsRGBA paints every cell of grid as a CellSize square into buf. The
// outermost ring of each square is the border, with its corner pixels left as
// background so cells read as rounded tiles. buf must hold 4*w*h bytes for
// w, h = PixelSize(grid).
func fillCellsRGBA(buf []byte, grid *core.ByteGrid, pal Palette) {
	s := max(grid.CellSize, 1)
	pw, _ := PixelSize(grid)
	cells := grid.Cells()
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			fill := pal.Dead
			if cells[grid.Index(x, y)] != 0 {
				fill = pal.Alive
			}
			for py := 0; py < s; py++ {
				row := (y*s + py) * pw
				edgeY := py == 0 || py == s-1
				for px := 0; px < s; px++ {
					edgeX := px == 0 || px == s-1
					c := fill
					switch {
					case s < 3:
					case edgeX && edgeY:
						c = pal.Background
					case edgeX || edgeY:
						c = pal.Border
					}
					base := (row + x*s + px) * 4
					buf[base+0] = c.R
					buf[base+1] = c.G
					buf[base+2] = c.B
					buf[base+3] = c.A
				}
			}
		}
	}
}
