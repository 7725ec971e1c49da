package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docnav/internal/routes"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the routes discovered in the docs directory",
	RunE:  runRoutes,
}

func init() {
	routesCmd.Flags().String("locale", "", "only list routes of this locale")
	rootCmd.AddCommand(routesCmd)
}

func runRoutes(cmd *cobra.Command, args []string) error {
	_, data, err := loadSite()
	if err != nil {
		return err
	}

	found := data.Routes
	if id, _ := cmd.Flags().GetString("locale"); id != "" {
		if _, err := data.Locale(id); err != nil {
			return err
		}
		found = routes.ForLocale(found, data.Locales, id)
	}

	t := table.New().Headers("ROUTE", "LOCALE", "TITLE", "GROUP", "ORDER")
	for _, r := range found {
		locale, _ := routes.LocaleOf(r.Path, data.Locales)
		var title, group, order string
		if r.Meta != nil {
			title = r.Meta.Frontmatter.Title()
			group, _ = r.Meta.Frontmatter.Group()
			order = strconv.FormatFloat(r.Meta.Frontmatter.Order(), 'g', -1, 64)
		}
		t.Row("/"+r.Path, locale.ID, title, group, order)
	}

	fmt.Println(t.Render())
	fmt.Printf("%d routes\n", len(found))
	return nil
}
