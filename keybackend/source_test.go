package keybackend_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/sitemapry/keybackend"
)

func TestStaticSecretSource(t *testing.T) {
	s := keybackend.NewStaticSecretSource("hush")

	secret, err := s.Secret()
	assert.NoError(t, err)
	assert.Equal(t, "hush", secret)
}

func TestStaticSecretSource_Empty(t *testing.T) {
	s := keybackend.NewStaticSecretSource("")

	secret, err := s.Secret()
	assert.NoError(t, err)
	assert.Empty(t, secret, "empty secret is reported as-is; the verifier fails closed on it")
}

func TestFileSecretSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")
	require.NoError(t, os.WriteFile(path, []byte("hush\n"), 0o600))

	s, err := keybackend.NewFileSecretSource(path)
	require.NoError(t, err)

	secret, err := s.Secret()
	assert.NoError(t, err)
	assert.Equal(t, "hush", secret, "trailing newline is stripped")
}

func TestFileSecretSource_MissingFile(t *testing.T) {
	_, err := keybackend.NewFileSecretSource(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestEnvSecretSource(t *testing.T) {
	t.Setenv("SITEMAPRY_TEST_SECRET", " hush ")

	s := keybackend.NewEnvSecretSource("SITEMAPRY_TEST_SECRET")

	secret, err := s.Secret()
	assert.NoError(t, err)
	assert.Equal(t, "hush", secret)
}

func TestEnvSecretSource_Unset(t *testing.T) {
	s := keybackend.NewEnvSecretSource("SITEMAPRY_TEST_SECRET_UNSET")

	secret, err := s.Secret()
	assert.NoError(t, err)
	assert.Empty(t, secret)
}

func TestNewSecretSource_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")
	require.NoError(t, os.WriteFile(path, []byte("from-file"), 0o600))
	t.Setenv("SITEMAPRY_TEST_SECRET", "from-env")

	tests := []struct {
		name string
		cfg  keybackend.SecretConfig
		want string
	}{
		{
			name: "file wins over inline and env",
			cfg:  keybackend.SecretConfig{Value: "inline", File: path, Env: "SITEMAPRY_TEST_SECRET"},
			want: "from-file",
		},
		{
			name: "inline wins over env",
			cfg:  keybackend.SecretConfig{Value: "inline", Env: "SITEMAPRY_TEST_SECRET"},
			want: "inline",
		},
		{
			name: "env used when alone",
			cfg:  keybackend.SecretConfig{Env: "SITEMAPRY_TEST_SECRET"},
			want: "from-env",
		},
		{
			name: "nothing configured yields empty secret",
			cfg:  keybackend.SecretConfig{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, err := keybackend.NewSecretSource(tt.cfg)
			require.NoError(t, err)

			secret, err := source.Secret()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, secret)
		})
	}
}

func TestNewSecretSource_MissingFile(t *testing.T) {
	_, err := keybackend.NewSecretSource(keybackend.SecretConfig{File: "/does/not/exist"})
	assert.Error(t, err)
}
