package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"mad-life/pkg/sims/life"
)

func TestRunNamedPattern(t *testing.T) {
	cfg := NewConfig()
	cfg.Pattern = "toad"

	res, err := Run(context.Background(), cfg, RunOptions{Generations: 10})
	require.NoError(t, err)
	assert.Equal(t, "toad", res.Pattern)
	assert.Equal(t, 10, res.State.Generation)
	assert.Equal(t, 6, res.State.Population)
	assert.False(t, res.State.Running, "the loop stops at the limit")
	assert.Equal(t, 6, res.Frame.Count())
	assert.Equal(t, res.Geometry.Cols, res.Frame.W)
	assert.Equal(t, res.Geometry.Rows, res.Frame.H)
}

func TestRunZeroGenerationsOnlySeeds(t *testing.T) {
	cfg := NewConfig()
	cfg.Pattern = "glider"

	res, err := Run(context.Background(), cfg, RunOptions{})
	require.NoError(t, err)
	assert.Zero(t, res.State.Generation)
	assert.False(t, res.State.Running)
	assert.Equal(t, 5, res.Frame.Count())
}

func TestRunRandomSeedIsDeterministic(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = 99

	a, err := Run(context.Background(), cfg, RunOptions{Generations: 25})
	require.NoError(t, err)
	b, err := Run(context.Background(), cfg, RunOptions{Generations: 25})
	require.NoError(t, err)

	assert.Equal(t, a.Pattern, b.Pattern)
	assert.Equal(t, a.State, b.State)
	assert.Equal(t, a.Frame.String(), b.Frame.String())
}

func TestRunUnknownPattern(t *testing.T) {
	cfg := NewConfig()
	cfg.Pattern = "pulsar"

	_, err := Run(context.Background(), cfg, RunOptions{Generations: 1})
	assert.True(t, errors.Is(err, life.ErrUnknownPattern))
}

func TestRunCanceled(t *testing.T) {
	cfg := NewConfig()
	cfg.Pattern = "toad"
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, cfg, RunOptions{Generations: 100})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunRealtime(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := NewConfig()
	cfg.Pattern = "toad"
	cfg.Life.TickDelay = time.Millisecond

	res, err := Run(context.Background(), cfg, RunOptions{Generations: 5, Realtime: true})
	require.NoError(t, err)
	assert.Equal(t, 5, res.State.Generation)
	assert.False(t, res.State.Running)
	assert.Equal(t, 6, res.State.Population)
}

func TestSurveyCoversCatalog(t *testing.T) {
	cfg := NewConfig()
	results, err := Survey(context.Background(), cfg, 20, 3, nil)
	require.NoError(t, err)

	names := life.DefaultLibrary().Names()
	require.Len(t, results, len(names))
	for i, res := range results {
		assert.Equal(t, names[i], res.Pattern)
		assert.LessOrEqual(t, res.State.Generation, 20)
		if !res.State.Extinct {
			assert.Equal(t, 20, res.State.Generation, res.Pattern)
		}
	}
}
