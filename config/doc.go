// Package config provides configuration loading and validation for
// sitemapry.
//
// The package handles YAML configuration files, environment variables,
// and CLI flags with automatic merging and validation using
// go-playground/validator.
//
// # Configuration Precedence
//
// Values are loaded in this order (later sources override earlier ones):
//
//  1. Default values
//  2. Configuration file(s) - multiple files merged left-to-right
//  3. Environment variables (SITEMAPRY_ prefix)
//  4. CLI flags
//
// # Environment Variables
//
// All config keys map to environment variables with SITEMAPRY_ prefix:
//   - server.port → SITEMAPRY_SERVER_PORT
//   - storage.path → SITEMAPRY_STORAGE_PATH
//   - auth.secret.value → SITEMAPRY_AUTH_SECRET_VALUE
//
// The shared secret may also come from a file (auth.secret.file) or a
// named environment variable (auth.secret.env), for deployments that
// provision it under the platform's own variable name.
//
// # Validation
//
// Configuration is validated using struct tags:
//   - Port must be 1-65535
//   - Storage path must be set
//   - Cache max-age must be non-negative
//   - Log level must be debug, info, warn, or error
package config
