package life

import (
	"cmp"
	"slices"
)

// Cell is a coordinate on the unbounded plane.
type Cell struct {
	Row, Col int
}

// Add returns c translated by o.
func (c Cell) Add(o Cell) Cell { return Cell{Row: c.Row + o.Row, Col: c.Col + o.Col} }

// CellSet is a sparse set of live cells. The zero value is not usable; call
// NewCellSet.
type CellSet struct {
	m map[Cell]struct{}
}

// NewCellSet returns a set holding the provided cells.
func NewCellSet(cells ...Cell) *CellSet {
	s := &CellSet{m: make(map[Cell]struct{}, len(cells))}
	for _, c := range cells {
		s.m[c] = struct{}{}
	}
	return s
}

// Contains reports whether c is live.
func (s *CellSet) Contains(c Cell) bool {
	_, ok := s.m[c]
	return ok
}

// Add marks c live.
func (s *CellSet) Add(c Cell) { s.m[c] = struct{}{} }

// Remove marks c dead.
func (s *CellSet) Remove(c Cell) { delete(s.m, c) }

// Clear removes every cell.
func (s *CellSet) Clear() { clear(s.m) }

// Len returns the number of live cells.
func (s *CellSet) Len() int { return len(s.m) }

// Clone returns an independent copy.
func (s *CellSet) Clone() *CellSet {
	out := &CellSet{m: make(map[Cell]struct{}, len(s.m))}
	for c := range s.m {
		out.m[c] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold the same cells.
func (s *CellSet) Equal(o *CellSet) bool {
	if s.Len() != o.Len() {
		return false
	}
	for c := range s.m {
		if !o.Contains(c) {
			return false
		}
	}
	return true
}

// Translate returns a new set with every cell shifted by (dr, dc).
func (s *CellSet) Translate(dr, dc int) *CellSet {
	out := &CellSet{m: make(map[Cell]struct{}, len(s.m))}
	for c := range s.m {
		out.m[Cell{Row: c.Row + dr, Col: c.Col + dc}] = struct{}{}
	}
	return out
}

// Cells returns the members in row-major order.
func (s *CellSet) Cells() []Cell {
	out := make([]Cell, 0, len(s.m))
	for c := range s.m {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Cell) int {
		if a.Row != b.Row {
			return cmp.Compare(a.Row, b.Row)
		}
		return cmp.Compare(a.Col, b.Col)
	})
	return out
}

// Bounds returns the inclusive bounding box of the set. ok is false when the
// set is empty.
func (s *CellSet) Bounds() (lo, hi Cell, ok bool) {
	for c := range s.m {
		if !ok {
			lo, hi, ok = c, c, true
			continue
		}
		lo.Row = min(lo.Row, c.Row)
		lo.Col = min(lo.Col, c.Col)
		hi.Row = max(hi.Row, c.Row)
		hi.Col = max(hi.Col, c.Col)
	}
	return lo, hi, ok
}
