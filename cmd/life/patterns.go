package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mad-life/pkg/sims/life"
)

func (c *cli) newPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List the built-in seed patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib := life.DefaultLibrary()
			out := cmd.OutOrStdout()
			for i := 0; i < lib.Len(); i++ {
				p := lib.At(i)
				fmt.Fprintf(out, "%-20s %3d cells\n", p.Name, p.Len())
			}
			return nil
		},
	}
}
