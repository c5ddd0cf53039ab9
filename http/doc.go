// Package http provides the HTTP surface of the sitemap relay.
//
// The relay exposes one authenticated route and one diagnostic route:
//
//	GET /proxy/sitemaps/{market}   signed; serves the market's XML document
//	GET /status                    open; secret/bypass state and market list
//
// The market path segment is normalized (lowercased, optional trailing
// ".xml" stripped) before resolution, so /proxy/sitemaps/austria and
// /proxy/sitemaps/austria.xml serve the same document.
//
// # Authentication
//
// AuthMiddleware applies a RequestVerifier to the proxy routes. The
// verifier recomputes the platform's HMAC-SHA256 query signature and
// rejects the request with a plain-text 403 on any failure. Passing a
// nil verifier disables verification entirely; this bypass is meant
// for local development and must stay off in production.
//
// # Responses
//
// Documents are served with Content-Type "application/xml;
// charset=utf-8" and an optional Cache-Control max-age directive.
// Error responses on the proxy route are plain text: 400 for an
// invalid market, 403 on verification failure, 404 for a missing
// document. Unexpected errors are downgraded to an opaque 500.
package http
