package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sagarc03/sitemapry/config"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "sitemapry",
	Short:   "App-proxy sitemap relay with HMAC request verification",
	Long: `Sitemapry serves per-market sitemap XML documents behind an
e-commerce platform's app proxy, verifying the platform's signed
requests before serving.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var configFiles []string
		if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
			configFiles = append(configFiles, configFile)
		}

		cfg, err := config.Load(configFiles, cmd.Flags())
		if err != nil {
			return err
		}

		cmd.SetContext(config.WithContext(cmd.Context(), cfg))
		setupLogging(cfg)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config.yaml)")
	rootCmd.PersistentFlags().String("storage-path", "", "sitemap directory path (default: ./sitemaps, env: SITEMAPRY_STORAGE_PATH)")
	rootCmd.PersistentFlags().String("secret-env", "", "environment variable holding the shared secret (env: SITEMAPRY_AUTH_SECRET_ENV)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
