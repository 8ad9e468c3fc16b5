// Package core declares the ports the life engine drives or is driven by:
// rendering, tick scheduling, randomness and the viewport size.
package core

import "time"

// Size describes viewport dimensions in the same units as a cell size.
type Size struct {
	W int
	H int
}

// Renderer receives a full frame after every state change. DrawCell is called
// once per visible cell, after Clear.
type Renderer interface {
	Clear()
	DrawCell(row, col int, alive bool)
}

// FrameSizer is implemented by renderers that need the frame geometry before
// drawing. The engine calls SetFrame ahead of Clear when it is available.
type FrameSizer interface {
	SetFrame(rows, cols, cellSize int)
}

// Cancel revokes a scheduled callback. Calling it after the callback ran, or
// more than once, is a no-op.
type Cancel func()

// Scheduler runs fn once after d has elapsed.
type Scheduler interface {
	After(d time.Duration, fn func()) Cancel
}

// Random yields uniform integers in [0, n).
type Random interface {
	IntN(n int) int
}

// Viewport reports the current drawable area.
type Viewport interface {
	Size() Size
}

// NopRenderer discards every frame.
type NopRenderer struct{}

// Clear is a no-op.
func (NopRenderer) Clear() {}

// DrawCell is a no-op.
func (NopRenderer) DrawCell(int, int, bool) {}
