package keybackend

import (
	"fmt"
	"os"
	"strings"
)

// FileSecretSource holds a secret read once from a file at
// construction time. Surrounding whitespace (trailing newlines in
// particular) is stripped.
type FileSecretSource struct {
	secret string
}

// NewFileSecretSource reads the secret from the given path.
func NewFileSecretSource(path string) (*FileSecretSource, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is from trusted config file
	if err != nil {
		return nil, fmt.Errorf("read secret file: %w", err)
	}

	return &FileSecretSource{secret: strings.TrimSpace(string(data))}, nil
}

// Secret returns the secret loaded at construction.
func (s *FileSecretSource) Secret() (string, error) {
	return s.secret, nil
}
