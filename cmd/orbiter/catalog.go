package main

import (
	"fmt"

	"orbiter/cmd/orbiter/cli"
	"orbiter/internal/errors"
	"orbiter/internal/nav"

	"github.com/spf13/cobra"
)

// NewCatalogCmd prints the dropdown catalogs with the URL each entry
// scrolls to.
func NewCatalogCmd() *cobra.Command {
	var menu string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the dropdown catalogs and their section anchors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogs := content.Catalogs()
			if menu != "" {
				m, ok := nav.ParseMenu(menu)
				if !ok || m == nav.MenuNone {
					return errors.Newf("unknown menu %q (want solutions or products)", menu)
				}
				catalogs = []nav.Catalog{content.Catalog(m)}
			}

			out := cmd.OutOrStdout()
			for _, cat := range catalogs {
				title := cat.Menu.String()
				if link, ok := content.LinkFor(cat.Menu); ok {
					title = link.Label
				}
				cli.PrintHeader(out, fmt.Sprintf("%s (%s)", title, cat.BasePath))
				for _, e := range cat.Entries {
					fmt.Fprintf(out, "  %-40s %s#%s\n", e.Label, cat.BasePath, e.ID)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&menu, "menu", "", "only print this catalog (solutions or products)")
	return cmd
}
