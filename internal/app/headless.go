package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"mad-life/internal/core"
	pcore "mad-life/pkg/core"
	"mad-life/pkg/sims/life"
)

// RunOptions controls a headless run.
type RunOptions struct {
	Generations int
	// Realtime paces ticks on wall-clock timers instead of fast-forwarding.
	Realtime bool
	Logger   *zap.Logger
}

// RunResult summarizes a headless run.
type RunResult struct {
	Pattern  string
	Cells    int
	State    life.State
	Geometry life.Geometry
	Frame    *core.ByteGrid
	Elapsed  time.Duration
}

// Run seeds a controller from cfg and advances it until the requested number
// of generations, extinction, or cancellation of ctx. The controller stops
// itself at the limit, so realtime runs never overshoot it.
func Run(ctx context.Context, cfg *Config, opts RunOptions) (RunResult, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	start := time.Now()
	frame := core.NewByteGrid(0, 0)
	viewport := core.NewStaticViewport(cfg.Width, cfg.Height)

	var (
		sched    pcore.Scheduler
		fast     *core.FrameScheduler
		realtime *core.TimerScheduler
	)
	if opts.Realtime {
		realtime = core.NewTimerScheduler()
		defer realtime.Close()
		sched = realtime
	} else {
		fast = core.NewFrameScheduler(nil)
		sched = fast
	}

	ctrl, err := life.NewController(cfg.Life, viewport,
		life.WithRenderer(frame),
		life.WithScheduler(sched),
		life.WithLogger(log),
		life.WithGenerationLimit(opts.Generations),
	)
	if err != nil {
		return RunResult{}, fmt.Errorf("new controller: %w", err)
	}
	defer ctrl.Close()

	var p life.Pattern
	if cfg.Pattern != "" {
		if p, err = ctrl.SeedPattern(cfg.Pattern); err != nil {
			return RunResult{}, err
		}
	} else {
		p = ctrl.Seed(pcore.NewRNG(cfg.Seed))
	}

	if opts.Generations > 0 {
		ctrl.ToggleRunning()
	}
	for ctrl.State().Running {
		if err := ctx.Err(); err != nil {
			return RunResult{}, err
		}
		if fast != nil {
			if !fast.RunNext() {
				break
			}
			continue
		}
		select {
		case <-ctx.Done():
			return RunResult{}, ctx.Err()
		case <-time.After(cfg.Life.TickDelay / 2):
		}
	}
	ctrl.Close()
	if realtime != nil {
		realtime.Close()
	}

	res := RunResult{
		Pattern:  p.Name,
		Cells:    p.Len(),
		State:    ctrl.State(),
		Geometry: ctrl.Geometry(),
		Frame:    frame,
		Elapsed:  time.Since(start),
	}
	log.Info("run finished",
		zap.String("pattern", res.Pattern),
		zap.Int("generation", res.State.Generation),
		zap.Int("population", res.State.Population),
		zap.Int("cell_size", res.Geometry.CellSize),
		zap.Bool("extinct", res.State.Extinct),
		zap.Duration("elapsed", res.Elapsed))
	return res, nil
}

// Survey runs every library pattern for the given number of generations on
// up to workers goroutines. Results follow catalog order.
func Survey(ctx context.Context, cfg *Config, generations, workers int, log *zap.Logger) ([]RunResult, error) {
	if workers <= 0 {
		workers = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	names := life.DefaultLibrary().Names()
	results := make([]RunResult, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, name := range names {
		g.Go(func() error {
			c := *cfg
			c.Pattern = name
			res, err := Run(ctx, &c, RunOptions{
				Generations: generations,
				Logger:      log.With(zap.String("worker_pattern", name)),
			})
			if err != nil {
				return fmt.Errorf("survey %s: %w", name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
