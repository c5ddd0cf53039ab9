package main

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/sagarc03/sitemapry"
	"github.com/sagarc03/sitemapry/config"
	"github.com/sagarc03/sitemapry/keybackend"
)

var signCmd = &cobra.Command{
	Use:   "sign <query-string>",
	Short: "Compute the app-proxy signature for a query string",
	Long: `Compute the platform's HMAC-SHA256 signature for a query string
using the configured shared secret.

This mirrors the signature the platform attaches to forwarded
requests and is intended for testing the relay:

  sitemapry sign 'shop=example.myshopify.com&path_prefix=/apps/sitemaps'

Any signature parameter already present in the query is ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: runSign,
}

var appendSignature bool

func init() {
	signCmd.Flags().BoolVar(&appendSignature, "append", false, "print the full query string with the signature appended")

	rootCmd.AddCommand(signCmd)
}

func runSign(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return err
	}

	secrets, err := keybackend.NewSecretSource(cfg.Auth.Secret)
	if err != nil {
		return fmt.Errorf("load shared secret: %w", err)
	}

	secret, err := secrets.Secret()
	if err != nil {
		return fmt.Errorf("load shared secret: %w", err)
	}
	if secret == "" {
		return fmt.Errorf("shared secret not configured")
	}

	query, err := url.ParseQuery(args[0])
	if err != nil {
		return fmt.Errorf("parse query string: %w", err)
	}

	signature := sitemapry.Sign(secret, query)

	if appendSignature {
		query.Set(sitemapry.SignatureParam, signature)
		fmt.Println(query.Encode())
		return nil
	}

	fmt.Println(signature)
	return nil
}
