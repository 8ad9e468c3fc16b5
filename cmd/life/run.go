package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mad-life/internal/app"
	"mad-life/internal/ui"
)

func (c *cli) newRunCmd() *cobra.Command {
	opts := app.RunOptions{Generations: 100}
	var printFrame bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a pattern headlessly and report the outcome",
		Long: `run seeds the board, advances it for the requested number of generations
or until the population dies out, and prints a summary. With --realtime the
generations are paced by the configured tick delay.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Logger = c.logger
			res, err := app.Run(cmd.Context(), c.cfg, opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if printFrame {
				fmt.Fprintln(out, res.Frame.String())
			}
			fmt.Fprintf(out, "%s (%d cells): %s\n", res.Pattern, res.Cells, ui.StatusLine(res.State, res.Geometry))
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.Generations, "generations", opts.Generations, "generations to run; 0 only seeds")
	cmd.Flags().BoolVar(&opts.Realtime, "realtime", false, "pace generations with wall-clock timers")
	cmd.Flags().BoolVar(&printFrame, "frame", false, "print the final window")
	return cmd
}
