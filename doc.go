// Package sitemapry implements an app-proxy sitemap relay.
//
// An e-commerce platform forwards storefront requests for per-market
// sitemap documents to this service under a reserved proxy prefix,
// signing each forwarded request with a shared secret. The service
// verifies the HMAC-SHA256 request signature, resolves the requested
// market to a static XML document in a read-only content directory,
// and serves the document bytes.
//
// # Request signing
//
// The platform signs the query string of every forwarded request. All
// query parameters except "signature" are sorted by name and
// concatenated as name=value pairs with no separator; the signature is
// the lowercase hex HMAC-SHA256 of that message under the shared
// secret. ProxySignatureVerifier recomputes the digest and compares it
// in constant time. Verification fails closed: a missing signature, an
// unconfigured secret, or a mismatched digest all reject the request
// without ever terminating the process.
//
// # Layout
//
// The package root holds the domain types, the signature verifier, and
// the sitemap service. HTTP transport lives in the http subpackage, the
// filesystem-backed document store in filesystem, secret provisioning
// in keybackend, and configuration loading in config.
package sitemapry
