package life

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"mad-life/pkg/core"
)

func TestBlinkerOscillation(t *testing.T) {
	live := NewCellSet(Cell{1, 2}, Cell{2, 2}, Cell{3, 2})

	live = Step(live)
	want := []Cell{{2, 1}, {2, 2}, {2, 3}}
	if diff := cmp.Diff(want, live.Cells()); diff != "" {
		t.Fatalf("after first step (-want +got):\n%s", diff)
	}

	live = Step(live)
	want = []Cell{{1, 2}, {2, 2}, {3, 2}}
	if diff := cmp.Diff(want, live.Cells()); diff != "" {
		t.Fatalf("after second step (-want +got):\n%s", diff)
	}
}

func TestLoneCellDies(t *testing.T) {
	next := Step(NewCellSet(Cell{7, -3}))
	if next.Len() != 0 {
		t.Fatalf("lone cell should die, got %v", next.Cells())
	}
}

func TestEmptyStaysEmpty(t *testing.T) {
	if got := Step(NewCellSet()).Len(); got != 0 {
		t.Fatalf("empty set produced %d cells", got)
	}
}

func TestBlockIsFixedPoint(t *testing.T) {
	block := NewCellSet(Cell{0, 0}, Cell{0, 1}, Cell{1, 0}, Cell{1, 1})
	next := Step(block)
	if !next.Equal(block) {
		t.Fatalf("block changed: %v", next.Cells())
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	live := NewCellSet(Cell{1, 2}, Cell{2, 2}, Cell{3, 2})
	before := live.Cells()
	Step(live)
	if diff := cmp.Diff(before, live.Cells()); diff != "" {
		t.Fatalf("input mutated (-before +after):\n%s", diff)
	}
}

func TestGliderTranslatesEveryFourGenerations(t *testing.T) {
	live := NewCellSet(DefaultLibrary().At(0).Cells...)
	for n := 0; n < 12; n++ {
		later := live
		for i := 0; i < 4; i++ {
			later = Step(later)
		}
		want := live.Translate(1, 1)
		if diff := cmp.Diff(want.Cells(), later.Cells()); diff != "" {
			t.Fatalf("generation %d: glider did not move by (+1,+1) (-want +got):\n%s", n, diff)
		}
		live = Step(live)
	}
}

func TestStepAcrossNegativeCoordinates(t *testing.T) {
	live := NewCellSet(Cell{-1, -5}, Cell{0, -5}, Cell{1, -5})
	next := Step(live)
	want := []Cell{{0, -6}, {0, -5}, {0, -4}}
	if diff := cmp.Diff(want, next.Cells()); diff != "" {
		t.Fatalf("blinker at negative coords (-want +got):\n%s", diff)
	}
}

func TestStepOrderIndependent(t *testing.T) {
	rng := core.NewRNG(11).Source()
	cells := DefaultLibrary().At(4).Cells
	reference := Step(NewCellSet(cells...))

	for trial := 0; trial < 10; trial++ {
		shuffled := append([]Cell(nil), cells...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		set := NewCellSet()
		for _, c := range shuffled {
			set.Add(c)
		}
		got := Step(set)
		if diff := cmp.Diff(reference.Cells(), got.Cells()); diff != "" {
			t.Fatalf("trial %d: result depends on insertion order (-want +got):\n%s", trial, diff)
		}
	}
}
