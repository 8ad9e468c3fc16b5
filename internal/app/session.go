package app

import (
	"fmt"

	"go.uber.org/zap"

	"mad-life/internal/core"
	pcore "mad-life/pkg/core"
	"mad-life/pkg/sims/life"
)

// Session bundles a controller with the frame-driven scheduler and the
// frame buffer used by the interactive front-ends. Every method must be called
// from the front-end's update goroutine.
type Session struct {
	Ctrl     *life.Controller
	Sched    *core.FrameScheduler
	Frame    *core.ByteGrid
	Viewport *core.StaticViewport

	rng     *pcore.RNG
	log     *zap.Logger
	current life.Pattern
}

// NewSession builds a seeded, idle session from cfg. A named pattern in cfg
// is placed first; otherwise one is drawn from the configured seed.
func NewSession(cfg *Config, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{
		Sched:    core.NewFrameScheduler(nil),
		Frame:    core.NewByteGrid(0, 0),
		Viewport: core.NewStaticViewport(cfg.Width, cfg.Height),
		rng:      pcore.NewRNG(cfg.Seed),
		log:      log,
	}
	ctrl, err := life.NewController(cfg.Life, s.Viewport,
		life.WithRenderer(s.Frame),
		life.WithScheduler(s.Sched),
		life.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("new controller: %w", err)
	}
	s.Ctrl = ctrl

	if cfg.Pattern != "" {
		if s.current, err = ctrl.SeedPattern(cfg.Pattern); err != nil {
			return nil, err
		}
	} else {
		s.current = ctrl.Seed(s.rng)
	}
	return s, nil
}

// Pattern returns the most recently seeded pattern.
func (s *Session) Pattern() life.Pattern { return s.current }

// Reseed replaces the board with a randomly chosen pattern.
func (s *Session) Reseed() life.Pattern {
	s.current = s.Ctrl.Seed(s.rng)
	return s.current
}

// Replant seeds the most recent pattern again, anchored to the current
// viewport.
func (s *Session) Replant() error {
	_, err := s.Ctrl.SeedPattern(s.current.Name)
	return err
}

// Resize forwards a viewport change to the controller when the size differs.
func (s *Session) Resize(w, h int) bool {
	if !s.Viewport.Set(w, h) {
		return false
	}
	s.Ctrl.Resize()
	s.log.Debug("viewport resized", zap.Int("width", w), zap.Int("height", h))
	return true
}

// Click toggles the cell under the viewport point (x, y).
func (s *Session) Click(x, y int) {
	cell, _ := s.Ctrl.CellAt(x, y)
	s.Ctrl.ToggleCell(cell.Row, cell.Col)
}

// Update runs scheduler callbacks that are due.
func (s *Session) Update() int {
	return s.Sched.Update()
}

// Close cancels any pending tick.
func (s *Session) Close() {
	s.Ctrl.Close()
}
