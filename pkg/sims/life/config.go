package life

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"time"
)

// Config holds the tunables of the controller.
type Config struct {
	MinCellSize int           `yaml:"min_cell_size" env:"MIN_CELL_SIZE"`
	MaxCellSize int           `yaml:"max_cell_size" env:"MAX_CELL_SIZE"`
	Padding     int           `yaml:"padding" env:"PADDING"`
	TickDelay   time.Duration `yaml:"tick_delay" env:"TICK_DELAY"`

	// Patterns with at least LargePattern offsets are anchored at a quarter
	// of the window, those with at least MediumPattern at a third, the rest at
	// the center.
	LargePattern  int `yaml:"large_pattern" env:"LARGE_PATTERN"`
	MediumPattern int `yaml:"medium_pattern" env:"MEDIUM_PATTERN"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		MinCellSize:   10,
		MaxCellSize:   16,
		Padding:       2,
		TickDelay:     90 * time.Millisecond,
		LargePattern:  40,
		MediumPattern: 15,
	}
}

// FromMap applies key/value overrides, named like the YAML keys, on top of
// base. Unknown keys and unparseable values are rejected and the result must
// pass Validate; base is returned unchanged on error.
func FromMap(base Config, kv map[string]string) (Config, error) {
	c := base
	for _, key := range slices.Sorted(maps.Keys(kv)) {
		v := kv[key]
		var err error
		switch key {
		case "min_cell_size":
			c.MinCellSize, err = strconv.Atoi(v)
		case "max_cell_size":
			c.MaxCellSize, err = strconv.Atoi(v)
		case "padding":
			c.Padding, err = strconv.Atoi(v)
		case "tick_delay":
			c.TickDelay, err = time.ParseDuration(v)
		case "large_pattern":
			c.LargePattern, err = strconv.Atoi(v)
		case "medium_pattern":
			c.MediumPattern, err = strconv.Atoi(v)
		default:
			return base, fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, key)
		}
		if err != nil {
			return base, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, v, err)
		}
	}
	if err := c.Validate(); err != nil {
		return base, err
	}
	return c, nil
}

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid life config")

// Validate reports the first inconsistent field.
func (c Config) Validate() error {
	switch {
	case c.MinCellSize < 1:
		return fmt.Errorf("%w: min_cell_size %d < 1", ErrInvalidConfig, c.MinCellSize)
	case c.MaxCellSize < c.MinCellSize:
		return fmt.Errorf("%w: max_cell_size %d < min_cell_size %d", ErrInvalidConfig, c.MaxCellSize, c.MinCellSize)
	case c.Padding < 0:
		return fmt.Errorf("%w: padding %d < 0", ErrInvalidConfig, c.Padding)
	case c.TickDelay <= 0:
		return fmt.Errorf("%w: tick_delay %s must be positive", ErrInvalidConfig, c.TickDelay)
	case c.MediumPattern > c.LargePattern:
		return fmt.Errorf("%w: medium_pattern %d > large_pattern %d", ErrInvalidConfig, c.MediumPattern, c.LargePattern)
	}
	return nil
}

// clampCellSize keeps size within [MinCellSize, MaxCellSize].
func (c Config) clampCellSize(size int) int {
	return max(c.MinCellSize, min(c.MaxCellSize, size))
}
