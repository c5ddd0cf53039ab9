package sitemapry

import "time"

// Document describes a sitemap document in the content store.
type Document struct {
	Market      string    `json:"market"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// XMLContentType is the content type every sitemap document is served with.
const XMLContentType = "application/xml; charset=utf-8"

// SecretSource provides the shared app-proxy secret.
//
// Implementations return the secret provisioned out-of-band with the
// platform. An empty secret (or an error) makes every verification
// attempt fail closed.
type SecretSource interface {
	Secret() (string, error)
}
