package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mad-life/internal/app"
	"mad-life/internal/logging"
)

// cli carries the state shared by every subcommand.
type cli struct {
	cfg        *app.Config
	configPath string
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{cfg: app.NewConfig(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "life",
		Short: "Conway's Game of Life on an unbounded, self-zooming board",
		Long: `life runs Conway's Game of Life. The board starts at the maximum cell
size and zooms out one pixel at a time whenever the pattern reaches the
padding band near the edge, recentering the live cells as it goes.

Settings are read from defaults, then an optional YAML file (--config),
then LIFE_* environment variables, then explicit flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.cfg.Resolve(c.configPath, cmd.Flags()); err != nil {
				return err
			}
			logger, err := logging.New(logging.Options{Level: c.cfg.LogLevel, JSON: c.cfg.LogJSON})
			if err != nil {
				return err
			}
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "YAML configuration file")
	c.cfg.Bind(root.PersistentFlags())

	root.AddCommand(
		c.newRunCmd(),
		c.newSurveyCmd(),
		c.newPatternsCmd(),
		c.newTUICmd(),
		c.newGUICmd(),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
