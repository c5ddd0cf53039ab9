// Package e2e exercises the full relay stack: configuration loading,
// secret provisioning, the filesystem store, and the HTTP surface,
// through a real listener.
package e2e_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/sitemapry"
	"github.com/sagarc03/sitemapry/config"
	"github.com/sagarc03/sitemapry/filesystem"
	sitemapryhttp "github.com/sagarc03/sitemapry/http"
	"github.com/sagarc03/sitemapry/keybackend"
)

const austriaXML = `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>https://example.com/at/</loc></url>
</urlset>
`

// startRelay builds the stack the way cmd/sitemapry serve does and
// returns the test server plus the loaded config.
func startRelay(t *testing.T, configYAML string) (*httptest.Server, *config.Config) {
	t.Helper()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configYAML), 0o600))

	cfg, err := config.Load([]string{configPath}, nil)
	require.NoError(t, err)

	root, err := os.OpenRoot(cfg.Storage.Path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })

	service := sitemapry.NewSitemapService(filesystem.NewSitemapStore(root))

	secrets, err := keybackend.NewSecretSource(cfg.Auth.Secret)
	require.NoError(t, err)
	secret, err := secrets.Secret()
	require.NoError(t, err)

	var verifier sitemapryhttp.RequestVerifier
	if !cfg.Auth.Bypass {
		verifier = sitemapry.NewProxySignatureVerifier(secrets)
	}

	handler := sitemapryhttp.NewHandler(&sitemapryhttp.HandlerConfig{
		Verifier:         verifier,
		SecretConfigured: secret != "",
		CacheMaxAge:      cfg.Cache.MaxAge,
		CORS:             cfg.CORS,
	}, service)

	server := httptest.NewServer(handler.Router())
	t.Cleanup(server.Close)

	return server, cfg
}

func writeSitemaps(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func signedURL(t *testing.T, base, secret, market string) string {
	t.Helper()

	query := url.Values{
		"shop":        []string{"example.myshopify.com"},
		"path_prefix": []string{"/apps/sitemaps"},
		"timestamp":   []string{"1317327555"},
	}
	query.Set("signature", sitemapry.Sign(secret, query))
	return base + "/proxy/sitemaps/" + market + "?" + query.Encode()
}

func TestRelay_SignedRequestLifecycle(t *testing.T) {
	const secret = "e2e-shared-secret"

	storageDir := writeSitemaps(t, map[string]string{"austria.xml": austriaXML})

	server, _ := startRelay(t, `
storage:
  path: `+storageDir+`
auth:
  secret:
    value: `+secret+`
`)

	t.Run("valid signature serves exact document bytes", func(t *testing.T) {
		resp, err := http.Get(signedURL(t, server.URL, secret, "austria"))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, sitemapry.XMLContentType, resp.Header.Get("Content-Type"))
		assert.Equal(t, "public, max-age=3600", resp.Header.Get("Cache-Control"))

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, austriaXML, string(body))
	})

	t.Run("xml-suffixed path serves the same document", func(t *testing.T) {
		resp, err := http.Get(signedURL(t, server.URL, secret, "austria.xml"))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("altered signature is rejected", func(t *testing.T) {
		resp, err := http.Get(signedURL(t, server.URL, "not-the-secret", "austria"))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "Forbidden", string(body))
	})

	t.Run("missing signature is rejected", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/proxy/sitemaps/austria?shop=example.myshopify.com")
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("valid signature for unknown market is 404", func(t *testing.T) {
		resp, err := http.Get(signedURL(t, server.URL, secret, "atlantis"))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("status endpoint is open and lists markets", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/status")
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), `"secret_configured":true`)
		assert.Contains(t, string(body), `"bypass_enabled":false`)
		assert.Contains(t, string(body), "austria")
	})
}

func TestRelay_UnconfiguredSecretFailsClosed(t *testing.T) {
	storageDir := writeSitemaps(t, map[string]string{"austria.xml": austriaXML})

	server, _ := startRelay(t, `
storage:
  path: `+storageDir+`
`)

	// Even a self-consistent signature cannot pass without a secret.
	resp, err := http.Get(signedURL(t, server.URL, "any-secret", "austria"))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRelay_BypassServesUnsigned(t *testing.T) {
	storageDir := writeSitemaps(t, map[string]string{"austria.xml": austriaXML})

	server, cfg := startRelay(t, `
storage:
  path: `+storageDir+`
auth:
  bypass: true
`)
	require.True(t, cfg.Auth.Bypass)

	resp, err := http.Get(server.URL + "/proxy/sitemaps/austria")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, austriaXML, string(body))
}
