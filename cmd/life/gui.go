//go:build ebiten

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"mad-life/internal/app"
)

func (c *cli) newGUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the board in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			game, err := app.New(c.cfg, c.logger)
			if err != nil {
				return err
			}

			ebiten.SetWindowTitle("mad-life")
			ebiten.SetTPS(c.cfg.TPS)
			ebiten.SetWindowSize(c.cfg.Width, c.cfg.Height)
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

			if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}
}
