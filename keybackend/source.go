// Package keybackend provides SecretSource implementations for shared
// secret provisioning.
package keybackend

import (
	"github.com/sagarc03/sitemapry"
)

// SecretConfig holds configuration for locating the shared app-proxy
// secret. Exactly one source is used, in order of precedence:
// file, inline value, named environment variable.
type SecretConfig struct {
	Value string `mapstructure:"value"`      // Inline secret from config
	File  string `mapstructure:"file"`       // Path to a file containing the secret
	Env   string `mapstructure:"env"`        // Name of an environment variable holding the secret
}

// NewSecretSource creates a SecretSource from the given configuration.
// When no source is configured it returns a static empty source, which
// makes every verification attempt fail closed.
func NewSecretSource(cfg SecretConfig) (sitemapry.SecretSource, error) {
	switch {
	case cfg.File != "":
		return NewFileSecretSource(cfg.File)
	case cfg.Value != "":
		return NewStaticSecretSource(cfg.Value), nil
	case cfg.Env != "":
		return NewEnvSecretSource(cfg.Env), nil
	default:
		return NewStaticSecretSource(""), nil
	}
}
