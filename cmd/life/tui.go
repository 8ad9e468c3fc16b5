package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mad-life/internal/app"
	"mad-life/internal/tui"
)

func (c *cli) newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Play in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// stderr shares the terminal with the board.
			s, err := app.NewSession(c.cfg, zap.NewNop())
			if err != nil {
				return err
			}
			defer s.Close()

			m := tui.New(s, c.cfg.Life.MaxCellSize, time.Second/time.Duration(c.cfg.TPS))
			p := tea.NewProgram(m,
				tea.WithContext(cmd.Context()),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
			)
			_, err = p.Run()
			return err
		},
	}
}
