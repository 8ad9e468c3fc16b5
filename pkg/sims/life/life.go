// Package life implements Conway's Game of Life on an unbounded integer plane,
// with a controller that zooms out as a pattern grows toward the window edge.
package life

// neighborhood lists the Moore offsets.
var neighborhood = [8]Cell{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Step computes the next generation. Only the live cells and their neighbors
// are visited, so the cost is proportional to the population and independent
// of any window size. live is not modified.
func Step(live *CellSet) *CellSet {
	counts := make(map[Cell]int, live.Len()*8)
	for c := range live.m {
		for _, d := range neighborhood {
			counts[c.Add(d)]++
		}
	}

	next := &CellSet{m: make(map[Cell]struct{}, live.Len())}
	for c, n := range counts {
		if n == 3 || (n == 2 && live.Contains(c)) {
			next.m[c] = struct{}{}
		}
	}
	return next
}
