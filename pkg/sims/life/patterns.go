package life

import (
	"errors"
	"fmt"
)

// Pattern is a named shape expressed as offsets from its origin.
type Pattern struct {
	Name  string
	Cells []Cell
}

// Len returns the number of offsets.
func (p Pattern) Len() int { return len(p.Cells) }

// ErrUnknownPattern is returned when a name is not in the library.
var ErrUnknownPattern = errors.New("unknown pattern")

// Library is an ordered, immutable catalog of patterns.
type Library struct {
	patterns []Pattern
	byName   map[string]int
}

// NewLibrary validates and indexes the provided patterns.
func NewLibrary(patterns ...Pattern) (*Library, error) {
	if len(patterns) == 0 {
		return nil, errors.New("library needs at least one pattern")
	}
	l := &Library{
		patterns: make([]Pattern, len(patterns)),
		byName:   make(map[string]int, len(patterns)),
	}
	for i, p := range patterns {
		if p.Name == "" {
			return nil, fmt.Errorf("pattern %d has no name", i)
		}
		if len(p.Cells) == 0 {
			return nil, fmt.Errorf("pattern %q has no cells", p.Name)
		}
		if _, dup := l.byName[p.Name]; dup {
			return nil, fmt.Errorf("duplicate pattern %q", p.Name)
		}
		l.byName[p.Name] = i
		l.patterns[i] = Pattern{Name: p.Name, Cells: append([]Cell(nil), p.Cells...)}
	}
	return l, nil
}

// Len returns the number of patterns.
func (l *Library) Len() int { return len(l.patterns) }

// At returns the i-th pattern.
func (l *Library) At(i int) Pattern { return l.patterns[i] }

// Lookup finds a pattern by name.
func (l *Library) Lookup(name string) (Pattern, error) {
	i, ok := l.byName[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return l.patterns[i], nil
}

// Names lists the patterns in catalog order.
func (l *Library) Names() []string {
	names := make([]string, len(l.patterns))
	for i, p := range l.patterns {
		names[i] = p.Name
	}
	return names
}

// Anchor picks where a pattern's origin goes in a rows×cols window. Large
// generators reach far to one side of their origin, so they start nearer the
// top-left corner than small symmetric shapes.
func (c Config) Anchor(p Pattern, rows, cols int) Cell {
	switch n := p.Len(); {
	case n >= c.LargePattern:
		return Cell{Row: rows / 4, Col: cols / 4}
	case n >= c.MediumPattern:
		return Cell{Row: rows / 3, Col: cols / 3}
	default:
		return Cell{Row: rows / 2, Col: cols / 2}
	}
}

// Place adds every offset of p translated by anchor to set.
func Place(set *CellSet, p Pattern, anchor Cell) {
	for _, off := range p.Cells {
		set.Add(anchor.Add(off))
	}
}

func cells(pairs ...[2]int) []Cell {
	out := make([]Cell, len(pairs))
	for i, p := range pairs {
		out[i] = Cell{Row: p[0], Col: p[1]}
	}
	return out
}

var builtinPatterns = []Pattern{
	{Name: "glider", Cells: cells(
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2},
	)},
	{Name: "toad", Cells: cells(
		[2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2}, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3},
	)},
	{Name: "lwss", Cells: cells(
		[2]int{0, 1}, [2]int{0, 4}, [2]int{1, 0}, [2]int{2, 0}, [2]int{2, 4},
		[2]int{3, 0}, [2]int{3, 1}, [2]int{3, 2}, [2]int{3, 3},
	)},
	{Name: "glider-gun", Cells: cells(
		[2]int{5, 1}, [2]int{5, 2}, [2]int{6, 1}, [2]int{6, 2}, [2]int{5, 11}, [2]int{6, 11}, [2]int{7, 11}, [2]int{4, 12}, [2]int{8, 12},
		[2]int{3, 13}, [2]int{9, 13}, [2]int{3, 14}, [2]int{9, 14}, [2]int{6, 15}, [2]int{4, 16}, [2]int{8, 16}, [2]int{5, 17}, [2]int{6, 17}, [2]int{7, 17},
		[2]int{6, 18}, [2]int{3, 21}, [2]int{4, 21}, [2]int{5, 21}, [2]int{3, 22}, [2]int{4, 22}, [2]int{5, 22}, [2]int{2, 23}, [2]int{6, 23},
		[2]int{1, 25}, [2]int{2, 25}, [2]int{6, 25}, [2]int{7, 25},
		[2]int{3, 35}, [2]int{4, 35}, [2]int{3, 36}, [2]int{4, 36},
	)},
	{Name: "gosper-glider-gun", Cells: cells(
		[2]int{5, 1}, [2]int{5, 2}, [2]int{6, 1}, [2]int{6, 2},
		[2]int{3, 13}, [2]int{4, 12}, [2]int{5, 11}, [2]int{6, 11}, [2]int{7, 11}, [2]int{8, 12}, [2]int{9, 13},
		[2]int{4, 14}, [2]int{8, 14}, [2]int{5, 15}, [2]int{6, 15}, [2]int{7, 15},
		[2]int{6, 16},
		[2]int{3, 21}, [2]int{4, 21}, [2]int{5, 21}, [2]int{3, 22}, [2]int{4, 22}, [2]int{5, 22}, [2]int{2, 23}, [2]int{6, 23},
		[2]int{1, 25}, [2]int{2, 25}, [2]int{6, 25}, [2]int{7, 25}, [2]int{3, 35}, [2]int{4, 35}, [2]int{3, 36}, [2]int{4, 36},
		[2]int{23, 0}, [2]int{23, 1}, [2]int{23, 2}, [2]int{23, 4}, [2]int{23, 5}, [2]int{23, 6},
		[2]int{24, 3}, [2]int{25, 3}, [2]int{26, 3}, [2]int{22, 3},
	)},
	{Name: "queen-bee-shuttle", Cells: cells(
		[2]int{7, 0}, [2]int{8, 0}, [2]int{9, 0}, [2]int{6, 1}, [2]int{10, 1},
		[2]int{5, 2}, [2]int{11, 2}, [2]int{5, 3}, [2]int{11, 3}, [2]int{7, 4}, [2]int{8, 4}, [2]int{9, 4}, [2]int{6, 5}, [2]int{10, 5},
		[2]int{0, 7}, [2]int{1, 7}, [2]int{2, 7}, [2]int{3, 7}, [2]int{0, 8}, [2]int{1, 8}, [2]int{2, 8}, [2]int{3, 8},
	)},
	{Name: "b52-bomber", Cells: cells(
		[2]int{0, 2}, [2]int{0, 3}, [2]int{0, 4}, [2]int{1, 1}, [2]int{1, 5}, [2]int{2, 0}, [2]int{2, 6},
		[2]int{3, 0}, [2]int{3, 6}, [2]int{4, 1}, [2]int{4, 5}, [2]int{5, 2}, [2]int{5, 3}, [2]int{5, 4},
	)},
}

// DefaultLibrary returns the built-in catalog.
func DefaultLibrary() *Library {
	l, err := NewLibrary(builtinPatterns...)
	if err != nil {
		panic(err)
	}
	return l
}
