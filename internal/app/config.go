package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"mad-life/pkg/sims/life"
)

// EnvPrefix namespaces every environment override.
const EnvPrefix = "LIFE_"

// Config represents the runtime parameters shared by every front-end.
type Config struct {
	Width    int    `yaml:"width" env:"WIDTH"`
	Height   int    `yaml:"height" env:"HEIGHT"`
	Seed     int64  `yaml:"seed" env:"SEED"`
	Pattern  string `yaml:"pattern" env:"PATTERN"`
	TPS      int    `yaml:"tps" env:"TPS"`
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
	LogJSON  bool   `yaml:"log_json" env:"LOG_JSON"`

	Life life.Config `yaml:"life"`
	// Set holds command-line engine overrides applied last, keyed like the
	// life section of the YAML file.
	Set map[string]string `yaml:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    960,
		Height:   640,
		Seed:     42,
		TPS:      60,
		LogLevel: "info",
		Life:     life.DefaultConfig(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "viewport width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "viewport height in pixels")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for pattern selection")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed with this pattern instead of a random one")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second of the GUI loop")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&c.LogJSON, "log-json", c.LogJSON, "emit JSON logs")
	fs.IntVar(&c.Life.MinCellSize, "min-cell-size", c.Life.MinCellSize, "smallest cell size reached by zooming out")
	fs.IntVar(&c.Life.MaxCellSize, "max-cell-size", c.Life.MaxCellSize, "cell size after a reset")
	fs.IntVar(&c.Life.Padding, "padding", c.Life.Padding, "distance from the edge that triggers a zoom out")
	fs.DurationVar(&c.Life.TickDelay, "tick-delay", c.Life.TickDelay, "delay between generations")
	fs.StringToStringVar(&c.Set, setFlag, c.Set, "engine override as key=value, e.g. --set padding=3 (repeatable)")
}

const setFlag = "set"

// LoadFile merges a YAML file into c. Keys absent from the file keep their
// current values; unknown keys are rejected.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// LoadEnv applies LIFE_* environment overrides.
func (c *Config) LoadEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Resolve layers the optional file and the environment over c, then replays
// the flags set explicitly on fs so the command line wins. --set overrides
// are applied after everything else.
func (c *Config) Resolve(path string, fs *pflag.FlagSet) error {
	explicit := map[string]string{}
	if fs != nil {
		fs.Visit(func(f *pflag.Flag) {
			// Neither the file nor the environment writes Set.
			if f.Name != setFlag {
				explicit[f.Name] = f.Value.String()
			}
		})
	}
	if path != "" {
		if err := c.LoadFile(path); err != nil {
			return err
		}
	}
	if err := c.LoadEnv(); err != nil {
		return err
	}
	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("flag --%s: %w", name, err)
		}
	}
	if len(c.Set) > 0 {
		lc, err := life.FromMap(c.Life, c.Set)
		if err != nil {
			return fmt.Errorf("flag --%s: %w", setFlag, err)
		}
		c.Life = lc
	}
	return c.Validate()
}

// Validate checks the viewport and engine settings.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("viewport %dx%d must be positive", c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps %d must be positive", c.TPS)
	}
	return c.Life.Validate()
}
