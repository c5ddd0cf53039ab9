package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sagarc03/sitemapry"
	"github.com/sagarc03/sitemapry/config"
	"github.com/sagarc03/sitemapry/filesystem"
	sitemapryhttp "github.com/sagarc03/sitemapry/http"
	"github.com/sagarc03/sitemapry/keybackend"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP relay",
	Long:  `Start the sitemapry HTTP relay.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 5710, "HTTP server port")
	serveCmd.Flags().Bool("bypass-auth", false, "serve without signature verification (non-production only)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	cfg, err := config.FromContext(ctx)
	if err != nil {
		return err
	}

	root, err := os.OpenRoot(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("open sitemap root: %w", err)
	}
	defer func() { _ = root.Close() }()

	store := filesystem.NewSitemapStore(root)
	service := sitemapry.NewSitemapService(store)

	secrets, err := keybackend.NewSecretSource(cfg.Auth.Secret)
	if err != nil {
		return fmt.Errorf("load shared secret: %w", err)
	}

	secret, err := secrets.Secret()
	if err != nil {
		return fmt.Errorf("load shared secret: %w", err)
	}
	if secret == "" && !cfg.Auth.Bypass {
		slog.Warn("shared secret not configured; all proxy requests will be rejected")
	}

	var verifier sitemapryhttp.RequestVerifier
	if cfg.Auth.Bypass {
		slog.Warn("signature verification bypass enabled; do not run this in production")
	} else {
		verifier = sitemapry.NewProxySignatureVerifier(secrets)
	}

	handlerConfig := sitemapryhttp.HandlerConfig{
		Verifier:         verifier,
		SecretConfigured: secret != "",
		CacheMaxAge:      cfg.Cache.MaxAge,
		CORS:             cfg.CORS,
	}

	handler := sitemapryhttp.NewHandler(&handlerConfig, service)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      handler.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "err", err)
		}
		cancel()
	}()

	slog.Info("starting server", "addr", addr, "storage", cfg.Storage.Path, "bypass", cfg.Auth.Bypass)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
