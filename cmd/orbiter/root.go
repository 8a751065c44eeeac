package main

import (
	"orbiter/cmd/orbiter/cli"
	"orbiter/internal/config"
	"orbiter/internal/errors"
	"orbiter/internal/log"
	"orbiter/internal/site"

	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	debug    bool
	logFile  string
	jsonLogs bool

	cfg     *config.Config
	content *site.Content
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "orbiter",
		Short:        "Browse the Orbiter site from the terminal or the desktop",
		Long:         `Orbiter shows the marketing site with its responsive header, dropdown catalogs and section navigation.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configureLogging(logFile)
			log.SetDebug(debug)

			var err error
			if cfgFile != "" {
				cfg, err = config.LoadConfigFile(cfgFile)
			} else {
				cfg, err = config.LoadConfig()
			}
			if err != nil {
				if errors.IsInvalidConfig(err) {
					return err
				}
				cli.PrintWarning(cmd.ErrOrStderr(), "Could not load config: "+err.Error())
				cli.PrintInfo(cmd.ErrOrStderr(), "Using default settings. Run 'orbiter config init' to create one.")
				cfg = config.New()
			}
			cli.SetTheme(cfg.Theme.Name)

			if cfg.Site.ContentFile != "" {
				content, err = site.LoadFile(cfg.Site.ContentFile)
			} else {
				content, err = site.Load()
			}
			if err != nil {
				return errors.Wrap(err, "failed to load site content")
			}
			return nil
		},
	}

	helpTemplate := cli.DrawLogo() + "\n" + rootCmd.UsageTemplate()
	rootCmd.SetUsageTemplate(helpTemplate)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/orbiter/config.yaml)")
	pf.BoolVar(&debug, "debug", false, "enable debug logging")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	pf.BoolVar(&jsonLogs, "json-logs", false, "emit logs as JSON")

	tui := NewTUICmd()
	rootCmd.RunE = tui.RunE
	rootCmd.Flags().AddFlagSet(tui.Flags())

	rootCmd.AddCommand(tui)
	rootCmd.AddCommand(NewGUICmd())
	rootCmd.AddCommand(NewCatalogCmd())
	rootCmd.AddCommand(NewLeadCmd())
	rootCmd.AddCommand(NewConfigCmd())

	return rootCmd
}

// configureLogging points the package logger at path, or at stderr when
// path is empty.
func configureLogging(path string) {
	var opts []log.Option
	if jsonLogs {
		opts = append(opts, log.WithJSON())
	}
	if path != "" {
		opts = append(opts, log.WithFile(path))
	}
	log.Configure(opts...)
}

// configPath returns the file the watcher and config commands use.
func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.DefaultPath()
}
