package keybackend

// StaticSecretSource returns a fixed secret. Suitable for inline
// configuration and tests.
type StaticSecretSource struct {
	secret string
}

// NewStaticSecretSource creates a source returning the given secret.
func NewStaticSecretSource(secret string) *StaticSecretSource {
	return &StaticSecretSource{secret: secret}
}

// Secret returns the configured secret. An empty secret is not an
// error here; the verifier treats it as unconfigured and fails closed.
func (s *StaticSecretSource) Secret() (string, error) {
	return s.secret, nil
}
