package life

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"mad-life/pkg/core"
)

// State is the externally visible status of a simulation.
type State struct {
	Generation int
	Population int
	Running    bool
	Extinct    bool
}

// Option customizes a Controller.
type Option func(*Controller)

// WithRenderer sets the frame sink. Defaults to core.NopRenderer.
func WithRenderer(r core.Renderer) Option {
	return func(c *Controller) {
		if r != nil {
			c.renderer = r
		}
	}
}

// WithScheduler sets the tick scheduler. Without one, the loop only advances
// through explicit Tick calls.
func WithScheduler(s core.Scheduler) Option {
	return func(c *Controller) { c.sched = s }
}

// WithLogger attaches a logger. Defaults to zap.NewNop.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithLibrary replaces the built-in pattern catalog.
func WithLibrary(l *Library) Option {
	return func(c *Controller) {
		if l != nil {
			c.lib = l
		}
	}
}

// WithGenerationLimit stops the loop once the generation counter reaches n.
// Zero means no limit.
func WithGenerationLimit(n int) Option {
	return func(c *Controller) { c.limit = max(n, 0) }
}

// Controller owns the live cells, the window geometry and the run state.
// All methods are safe for concurrent use; each holds one lock for its whole
// duration so a tick is never interleaved with another operation.
type Controller struct {
	mu sync.Mutex

	cfg      Config
	lib      *Library
	viewport core.Viewport
	renderer core.Renderer
	sched    core.Scheduler
	log      *zap.Logger
	limit    int

	view  core.Size
	geom  Geometry
	live  *CellSet
	state State

	pending core.Cancel
	epoch   uint64
}

// NewController builds an idle controller sized to the viewport at the
// maximum cell size.
func NewController(cfg Config, viewport core.Viewport, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if viewport == nil {
		return nil, errors.New("life: nil viewport")
	}
	c := &Controller{
		cfg:      cfg,
		lib:      DefaultLibrary(),
		viewport: viewport,
		renderer: core.NopRenderer{},
		log:      zap.NewNop(),
		live:     NewCellSet(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.view = viewport.Size()
	c.geom = RecomputeGeometry(c.view.W, c.view.H, cfg.MaxCellSize)
	return c, nil
}

// Config returns the configuration the controller was built with.
func (c *Controller) Config() Config { return c.cfg }

// Library returns the pattern catalog used for seeding.
func (c *Controller) Library() *Library { return c.lib }

// State returns a copy of the run state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Geometry returns the current window geometry.
func (c *Controller) Geometry() Geometry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.geom
}

// Cells returns a row-major snapshot of every live cell, including those
// outside the window.
func (c *Controller) Cells() []Cell {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.live.Cells()
}

// Alive reports whether the cell at (row, col) is live.
func (c *Controller) Alive(row, col int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.live.Contains(Cell{Row: row, Col: col})
}

// CellAt maps a viewport point to the cell under it. ok is false when the
// point lies outside the window.
func (c *Controller) CellAt(x, y int) (Cell, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cell := Cell{Row: floorDiv(y, c.geom.CellSize), Col: floorDiv(x, c.geom.CellSize)}
	return cell, c.geom.Contains(cell)
}

// ToggleRunning starts an idle or extinct simulation, running the first tick
// immediately, or stops a running one.
func (c *Controller) ToggleRunning() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Running {
		c.state.Running = false
		c.cancelPending()
		c.log.Debug("simulation stopped", zap.Int("generation", c.state.Generation))
		return
	}
	c.state.Running = true
	c.state.Extinct = false
	c.log.Debug("simulation started", zap.Int("generation", c.state.Generation))
	c.tick()
}

// Tick runs one iteration of the loop. It does nothing unless the simulation
// is running.
func (c *Controller) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tick()
}

// Advance computes a single generation while stopped. It is ignored while the
// loop is running.
func (c *Controller) Advance() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Running {
		return
	}
	c.advance()
}

// ToggleCell flips the cell at (row, col). Coordinates outside the window are
// ignored. After an extinction the generation counter restarts at zero.
func (c *Controller) ToggleCell(row, col int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Extinct {
		c.state.Generation = 0
	}
	cell := Cell{Row: row, Col: col}
	if !c.geom.Contains(cell) {
		return
	}
	if c.live.Contains(cell) {
		c.live.Remove(cell)
	} else {
		c.live.Add(cell)
	}
	c.state.Population = c.live.Len()
	c.render()
}

// Reset stops the simulation, clears every cell and sets the cell size,
// clamped to the configured range.
func (c *Controller) Reset(cellSize int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset(cellSize)
	c.render()
}

// ResetDefault resets at the maximum cell size.
func (c *Controller) ResetDefault() { c.Reset(c.cfg.MaxCellSize) }

// Resize re-reads the viewport after it changed and recomputes the geometry
// at the current cell size. Live cells are neither moved nor dropped.
func (c *Controller) Resize() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = c.viewport.Size()
	c.geom = RecomputeGeometry(c.view.W, c.view.H, c.geom.CellSize)
	c.render()
}

// Seed resets the board and places a pattern chosen uniformly by rng.
func (c *Controller) Seed(rng core.Random) Pattern {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := c.lib.At(rng.IntN(c.lib.Len()))
	c.seed(p)
	return p
}

// SeedPattern resets the board and places the named pattern.
func (c *Controller) SeedPattern(name string) (Pattern, error) {
	p, err := c.lib.Lookup(name)
	if err != nil {
		return Pattern{}, fmt.Errorf("seed: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seed(p)
	return p, nil
}

// Close cancels any pending tick. The run state is left as is, so callers
// can still report it.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelPending()
}

func (c *Controller) seed(p Pattern) {
	c.reset(c.cfg.MaxCellSize)
	anchor := c.cfg.Anchor(p, c.geom.Rows, c.geom.Cols)
	Place(c.live, p, anchor)
	c.state.Population = c.live.Len()
	c.log.Info("seeded pattern",
		zap.String("pattern", p.Name),
		zap.Int("cells", p.Len()),
		zap.Int("anchor_row", anchor.Row),
		zap.Int("anchor_col", anchor.Col))
	c.render()
}

func (c *Controller) reset(cellSize int) {
	c.cancelPending()
	c.live.Clear()
	c.view = c.viewport.Size()
	c.geom = RecomputeGeometry(c.view.W, c.view.H, c.cfg.clampCellSize(cellSize))
	c.state = State{}
}

func (c *Controller) tick() {
	if !c.state.Running {
		return
	}
	if c.limitReached() {
		return
	}
	if c.state.Population == 0 {
		c.state.Running = false
		c.state.Extinct = true
		c.log.Info("population died out", zap.Int("generation", c.state.Generation))
		return
	}
	c.advance()
	if c.limitReached() {
		return
	}
	c.schedule()
}

// limitReached stops the loop at the generation limit.
func (c *Controller) limitReached() bool {
	if c.limit == 0 || c.state.Generation < c.limit {
		return false
	}
	c.state.Running = false
	c.log.Debug("generation limit reached", zap.Int("generation", c.state.Generation))
	return true
}

func (c *Controller) advance() {
	if c.geom.CellSize != c.cfg.MinCellSize && ShouldShrink(c.live, c.geom.Rows, c.geom.Cols, c.cfg.Padding) {
		c.shrinkAndRecenter()
	}
	c.live = Step(c.live)
	c.state.Population = c.live.Len()
	c.state.Generation++
	c.render()
}

// shrinkAndRecenter recenters against the whole-cell window at the new size,
// then settles on the rounded-up geometry used for drawing.
func (c *Controller) shrinkAndRecenter() {
	size := Shrink(c.geom.CellSize, c.cfg.MinCellSize)
	target := FloorGeometry(c.view.W, c.view.H, size)
	before := c.live.Len()
	c.live = Recenter(c.live, c.geom.Rows, c.geom.Cols, target.Rows, target.Cols)
	c.geom = RecomputeGeometry(c.view.W, c.view.H, size)
	c.state.Population = c.live.Len()
	c.log.Debug("shrunk cells",
		zap.Int("cell_size", size),
		zap.Int("rows", c.geom.Rows),
		zap.Int("cols", c.geom.Cols),
		zap.Int("dropped", before-c.live.Len()))
}

func (c *Controller) schedule() {
	if c.sched == nil {
		return
	}
	c.epoch++
	epoch := c.epoch
	c.pending = c.sched.After(c.cfg.TickDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if epoch != c.epoch {
			return
		}
		c.pending = nil
		c.tick()
	})
}

func (c *Controller) cancelPending() {
	c.epoch++
	if c.pending != nil {
		c.pending()
		c.pending = nil
	}
}

func (c *Controller) render() {
	if fs, ok := c.renderer.(core.FrameSizer); ok {
		fs.SetFrame(c.geom.Rows, c.geom.Cols, c.geom.CellSize)
	}
	c.renderer.Clear()
	for row := 0; row < c.geom.Rows; row++ {
		for col := 0; col < c.geom.Cols; col++ {
			c.renderer.DrawCell(row, col, c.live.Contains(Cell{Row: row, Col: col}))
		}
	}
}
