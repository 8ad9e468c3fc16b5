package core

import "strings"

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// It implements the engine's Renderer and FrameSizer ports, so every frame the
// controller draws lands in the grid for front-ends to read back.
type ByteGrid struct {
	W, H     int
	CellSize int
	data     []uint8
	frames   int
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	g := &ByteGrid{}
	g.SetFrame(h, w, 1)
	return g
}

// SetFrame resizes the grid to rows×cols, reusing the buffer when possible.
func (g *ByteGrid) SetFrame(rows, cols, cellSize int) {
	rows, cols = max(rows, 0), max(cols, 0)
	g.CellSize = cellSize
	if rows == g.H && cols == g.W {
		return
	}
	g.W, g.H = cols, rows
	if n := rows * cols; cap(g.data) >= n {
		g.data = g.data[:n]
	} else {
		g.data = make([]uint8, n)
	}
}

// Clear fills the grid with zeros and starts a new frame.
func (g *ByteGrid) Clear() {
	clear(g.data)
	g.frames++
}

// DrawCell records one cell of the current frame.
func (g *ByteGrid) DrawCell(row, col int, alive bool) {
	if !g.InBounds(col, row) {
		return
	}
	var v uint8
	if alive {
		v = 1
	}
	g.data[g.Index(col, row)] = v
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Frames counts how many frames have been started.
func (g *ByteGrid) Frames() int { return g.frames }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At reports whether the cell at (x, y) is set.
func (g *ByteGrid) At(x, y int) bool {
	return g.InBounds(x, y) && g.data[g.Index(x, y)] != 0
}

// Count returns the number of set cells.
func (g *ByteGrid) Count() int {
	n := 0
	for _, v := range g.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// String renders the grid with '#' for live cells and '.' for dead ones.
func (g *ByteGrid) String() string {
	var b strings.Builder
	b.Grow((g.W + 1) * g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.data[g.Index(x, y)] != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
