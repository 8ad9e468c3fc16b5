//go:build !ebiten

package main

import (
	"github.com/spf13/cobra"

	"mad-life/internal/app"
)

func (c *cli) newGUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the board in a window (requires the ebiten build tag)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := app.New(c.cfg, c.logger)
			return err
		},
	}
}
