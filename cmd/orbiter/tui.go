package main

import (
	"os"
	"path/filepath"

	"orbiter/internal/config"
	"orbiter/internal/log"
	"orbiter/internal/tui"
	"orbiter/internal/tui/messages"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	startPath string
	noMouse   bool
)

// NewTUICmd creates the terminal front end command. It is also what the
// root command runs when no subcommand is given.
func NewTUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse the site in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if startPath != "" {
				cfg.Site.StartPath = startPath
			}
			// stderr belongs to the alternate screen while the program runs
			if logFile == "" {
				configureLogging(defaultLogPath())
			}

			m := tui.New(cfg, content)
			defer m.Close()

			opts := []tea.ProgramOption{tea.WithAltScreen()}
			if !noMouse {
				opts = append(opts, tea.WithMouseAllMotion())
			}
			p := tea.NewProgram(m, opts...)

			if watcher := watchConfig(); watcher != nil {
				defer watcher.Close()
				go func() {
					for updated := range watcher.Updates() {
						p.Send(messages.ConfigUpdateMsg{Config: updated})
					}
				}()
			}

			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&startPath, "path", "", "page to open, for example /products#orbiter-core")
	cmd.Flags().BoolVar(&noMouse, "no-mouse", false, "disable mouse tracking")
	return cmd
}

// watchConfig starts a reload watcher on the active config file. A watcher
// that cannot start is logged and skipped.
func watchConfig() *config.Watcher {
	path, err := configPath()
	if err != nil {
		log.LogWithError(err).Warn("Config reload disabled")
		return nil
	}
	w, err := config.Watch(path)
	if err != nil {
		log.LogWithError(err).Warn("Config reload disabled")
		return nil
	}
	return w
}

// defaultLogPath is $XDG_STATE_HOME/orbiter/orbiter.log, falling back to
// ~/.local/state and then the temp dir.
func defaultLogPath() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".local", "state")
		} else {
			dir = os.TempDir()
		}
	}
	return filepath.Join(dir, "orbiter", "orbiter.log")
}
