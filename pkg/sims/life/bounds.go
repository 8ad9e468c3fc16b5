package life

// Geometry is the visible window expressed in cells.
type Geometry struct {
	CellSize int
	Rows     int
	Cols     int
}

// Contains reports whether c lies in [0,Rows)×[0,Cols).
func (g Geometry) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// ShouldShrink reports whether a live cell sits on one of the trigger lines
// padding cells in from the window edges. The far-side lines are
// rows-padding+1 and cols-padding+1; only exact hits count.
func ShouldShrink(live *CellSet, rows, cols, padding int) bool {
	lastRow := rows - padding + 1
	lastCol := cols - padding + 1
	for c := range live.m {
		if c.Row == padding || c.Row == lastRow || c.Col == padding || c.Col == lastCol {
			return true
		}
	}
	return false
}

// Shrink returns the next smaller cell size, never below minCellSize.
func Shrink(cellSize, minCellSize int) int {
	return max(minCellSize, cellSize-1)
}

// RecomputeGeometry covers a w×h viewport, rounding partial cells up.
func RecomputeGeometry(w, h, cellSize int) Geometry {
	if cellSize <= 0 {
		return Geometry{CellSize: cellSize}
	}
	return Geometry{
		CellSize: cellSize,
		Rows:     ceilDiv(max(h, 0), cellSize),
		Cols:     ceilDiv(max(w, 0), cellSize),
	}
}

// FloorGeometry covers a w×h viewport counting whole cells only.
func FloorGeometry(w, h, cellSize int) Geometry {
	if cellSize <= 0 {
		return Geometry{CellSize: cellSize}
	}
	return Geometry{
		CellSize: cellSize,
		Rows:     max(h, 0) / cellSize,
		Cols:     max(w, 0) / cellSize,
	}
}

// Recenter shifts live by half the growth of the window and drops every cell
// that lands outside [0,newRows)×[0,newCols).
func Recenter(live *CellSet, oldRows, oldCols, newRows, newCols int) *CellSet {
	dr := floorDiv(newRows-oldRows, 2)
	dc := floorDiv(newCols-oldCols, 2)
	window := Geometry{Rows: newRows, Cols: newCols}

	out := &CellSet{m: make(map[Cell]struct{}, live.Len())}
	for c := range live.m {
		moved := Cell{Row: c.Row + dr, Col: c.Col + dc}
		if window.Contains(moved) {
			out.m[moved] = struct{}{}
		}
	}
	return out
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

// floorDiv rounds toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
