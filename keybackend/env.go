package keybackend

import (
	"os"
	"strings"
)

// EnvSecretSource reads the secret from a named environment variable
// on every lookup.
type EnvSecretSource struct {
	name string
}

// NewEnvSecretSource creates a source reading the given environment
// variable.
func NewEnvSecretSource(name string) *EnvSecretSource {
	return &EnvSecretSource{name: name}
}

// Secret returns the current value of the environment variable. A
// missing or empty variable yields an empty secret, which the verifier
// treats as unconfigured.
func (s *EnvSecretSource) Secret() (string, error) {
	return strings.TrimSpace(os.Getenv(s.name)), nil
}
