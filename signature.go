package sitemapry

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// SignatureParam is the reserved query parameter carrying the
// platform-computed signature. It is excluded from the signed message.
const SignatureParam = "signature"

// ProxySignatureVerifier verifies app-proxy request signatures.
//
// The platform signs every forwarded request by concatenating all query
// parameters except "signature" as name=value pairs, sorted by name,
// with no separator, and computing a lowercase hex HMAC-SHA256 over the
// result under the shared secret.
type ProxySignatureVerifier struct {
	Secrets SecretSource
}

// NewProxySignatureVerifier creates a verifier backed by the given
// secret source.
func NewProxySignatureVerifier(secrets SecretSource) *ProxySignatureVerifier {
	return &ProxySignatureVerifier{Secrets: secrets}
}

// Verify checks the signature carried in query against the shared
// secret. It returns an error wrapping ErrUnauthorized when the
// signature parameter is missing, the secret is not configured, or the
// digest does not match. Verification never panics; every negative
// outcome is a rejection signal for the caller, not a fatal condition.
func (v *ProxySignatureVerifier) Verify(query url.Values) error {
	supplied := query.Get(SignatureParam)
	if supplied == "" {
		return fmt.Errorf("missing signature parameter: %w", ErrUnauthorized)
	}

	secret, err := v.Secrets.Secret()
	if err != nil {
		return fmt.Errorf("secret lookup failed: %w", ErrUnauthorized)
	}
	if secret == "" {
		return fmt.Errorf("shared secret not configured: %w", ErrUnauthorized)
	}

	expected := Sign(secret, query)

	// Constant-time, case-sensitive, full-length comparison of the hex
	// digests.
	if !hmac.Equal([]byte(expected), []byte(supplied)) {
		return fmt.Errorf("signature mismatch: %w", ErrUnauthorized)
	}

	return nil
}

// Sign computes the lowercase hex HMAC-SHA256 app-proxy signature for
// the given query parameters under secret. Any "signature" parameter
// already present is ignored.
func Sign(secret string, query url.Values) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(canonicalMessage(query)))
	return hex.EncodeToString(mac.Sum(nil))
}

// canonicalMessage builds the signed message: parameter names sorted in
// ascending byte order, each rendered as name=value with no separator
// between pairs. Multi-valued parameters join their values with a
// comma. The output must match the platform signer byte for byte; any
// divergence (an '&' separator, case-insensitive ordering) silently
// breaks all verification.
func canonicalMessage(query url.Values) string {
	names := make([]string, 0, len(query))
	for name := range query {
		if name == SignatureParam {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteString("=")
		b.WriteString(strings.Join(query[name], ","))
	}
	return b.String()
}
