package sitemapry

import "strings"

const xmlSuffix = ".xml"

// NormalizeMarket canonicalizes a market identifier taken from the URL
// path: lowercases it and strips one trailing ".xml" suffix. The proxy
// exposes both "/austria" and "/austria.xml" path shapes; after
// normalization both resolve to the same document.
func NormalizeMarket(raw string) string {
	m := strings.ToLower(raw)
	m = strings.TrimSuffix(m, xmlSuffix)
	return m
}

// IsValidMarket validates a normalized market identifier. Identifiers
// are restricted to a fixed alphabet (lowercase alphanumerics, hyphen,
// underscore, starting with an alphanumeric) so they can never carry
// path separators or traversal sequences into the content store.
func IsValidMarket(m string) bool {
	if m == "" {
		return false
	}

	for i, r := range m {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case (r == '-' || r == '_') && i > 0:
		default:
			return false
		}
	}

	return true
}
