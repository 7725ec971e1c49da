package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ziadkadry99/docnav/internal/site"
)

var sidebarCmd = &cobra.Command{
	Use:   "sidebar",
	Short: "Print the generated sidebar",
	Long: `Prints the full sidebar keyed by parent path, or with --pathname the
sidebar shown on that page.`,
	RunE: runSidebar,
}

func init() {
	sidebarCmd.Flags().String("pathname", "", "print only the sidebar of this page (e.g. /guide/start)")
	sidebarCmd.Flags().String("locale", "", "locale id (defaults to the configured locale)")
	sidebarCmd.Flags().StringP("format", "f", "tree", "output format: tree, json or yaml")
	rootCmd.AddCommand(sidebarCmd)
}

func runSidebar(cmd *cobra.Command, args []string) error {
	_, data, err := loadSite()
	if err != nil {
		return err
	}

	localeID, _ := cmd.Flags().GetString("locale")
	sess, err := data.NewSession(localeID)
	if err != nil {
		return err
	}

	var out any = sess.FullSidebar()
	pathname, _ := cmd.Flags().GetString("pathname")
	if pathname != "" {
		out = sess.CurrentSidebar(pathname)
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(out)
	case "tree":
		if pathname != "" {
			fmt.Print(site.RenderGroups(sess.CurrentSidebar(pathname)))
			return nil
		}
		fmt.Print(site.RenderTree(sess.FullSidebar()))
		return nil
	default:
		return fmt.Errorf("unknown format %q: must be one of tree, json, yaml", format)
	}
}
