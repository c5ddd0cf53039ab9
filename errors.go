package sitemapry

import "errors"

var (
	// ErrNotFound is returned when a sitemap document does not exist
	ErrNotFound = errors.New("not found")
	// ErrInternal is returned when an internal error occurs
	ErrInternal = errors.New("internal error")
	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthorized is returned when signature verification fails
	ErrUnauthorized = errors.New("unauthorized")
)
