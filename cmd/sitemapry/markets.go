package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sagarc03/sitemapry"
	"github.com/sagarc03/sitemapry/config"
	"github.com/sagarc03/sitemapry/filesystem"
)

var marketsCmd = &cobra.Command{
	Use:   "markets",
	Short: "List markets available in the content store",
	RunE:  runMarkets,
}

func init() {
	rootCmd.AddCommand(marketsCmd)
}

func runMarkets(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return err
	}

	root, err := os.OpenRoot(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("open sitemap root: %w", err)
	}
	defer func() { _ = root.Close() }()

	service := sitemapry.NewSitemapService(filesystem.NewSitemapStore(root))

	docs, err := service.List(cmd.Context())
	if err != nil {
		return err
	}

	if len(docs) == 0 {
		fmt.Printf("No sitemap documents in %s\n", cfg.Storage.Path)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MARKET\tSIZE\tUPDATED")
	for _, d := range docs {
		fmt.Fprintf(w, "%s\t%d\t%s\n", d.Market, d.SizeBytes, d.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}
