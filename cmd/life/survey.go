package main

import (
	"fmt"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mad-life/internal/app"
	"mad-life/internal/ui"
)

func (c *cli) newSurveyCmd() *cobra.Command {
	generations := 200
	workers := runtime.NumCPU()

	cmd := &cobra.Command{
		Use:   "survey",
		Short: "Run every built-in pattern in parallel and tabulate the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := app.Survey(cmd.Context(), c.cfg, generations, workers, c.logger)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PATTERN\tCELLS\tGENERATION\tPOPULATION\tCELL SIZE\tSTATE")
			for _, r := range results {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%s\n",
					r.Pattern, r.Cells, r.State.Generation, r.State.Population,
					r.Geometry.CellSize, ui.Phase(r.State))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&generations, "generations", generations, "generations per pattern")
	cmd.Flags().IntVar(&workers, "workers", workers, "patterns run concurrently")
	return cmd
}
