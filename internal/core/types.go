package core

import (
	"sync"

	pcore "mad-life/pkg/core"
)

// StaticViewport is a Viewport whose size changes only through Set. Front-ends
// update it from their resize events before calling the controller.
type StaticViewport struct {
	mu   sync.Mutex
	size pcore.Size
}

// NewStaticViewport returns a viewport of w×h.
func NewStaticViewport(w, h int) *StaticViewport {
	return &StaticViewport{size: pcore.Size{W: w, H: h}}
}

// Size returns the current dimensions.
func (v *StaticViewport) Size() pcore.Size {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.size
}

// Set replaces the dimensions and reports whether they changed.
func (v *StaticViewport) Set(w, h int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	next := pcore.Size{W: w, H: h}
	if next == v.size {
		return false
	}
	v.size = next
	return true
}
