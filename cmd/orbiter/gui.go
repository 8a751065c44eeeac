package main

import (
	"orbiter/internal/config"
	"orbiter/internal/gui"

	"github.com/spf13/cobra"
)

// NewGUICmd creates the GUI command for the CLI
func NewGUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Launch the graphical user interface",
		Long:  `Open the site in a desktop window with hover dropdowns and a mobile drawer below the breakpoint.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var updates <-chan *config.Config
			if watcher := watchConfig(); watcher != nil {
				defer watcher.Close()
				updates = watcher.Updates()
			}
			return gui.Start(cfg, content, updates)
		},
	}
}
