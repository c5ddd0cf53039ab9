package sitemapry

import (
	"context"
	"fmt"
	"io"
)

// SitemapStore defines the read-only document store the service
// resolves markets against. Implementations map a market identifier to
// the bytes of its XML document.
type SitemapStore interface {
	// Get opens the document for a market. Returns ErrNotFound if no
	// document exists for the market. The caller closes the returned
	// reader.
	Get(ctx context.Context, market string) (io.ReadSeekCloser, error)

	// Stat returns metadata for a market's document without opening it.
	// Returns ErrNotFound if no document exists.
	Stat(ctx context.Context, market string) (Document, error)

	// List returns all documents currently in the store, sorted by
	// market.
	List(ctx context.Context) ([]Document, error)
}

// SitemapService resolves market identifiers to sitemap documents.
//
// The service is stateless and safe for concurrent use: the store is
// read-only at runtime and every call is independent.
type SitemapService struct {
	store SitemapStore
}

// NewSitemapService creates a service backed by the given store.
func NewSitemapService(store SitemapStore) *SitemapService {
	return &SitemapService{store: store}
}

// Get returns the document metadata and content for a market. The
// market must already be normalized (see NormalizeMarket); identifiers
// outside the allowed alphabet are rejected with ErrInvalidInput before
// any store access.
func (s *SitemapService) Get(ctx context.Context, market string) (Document, io.ReadSeekCloser, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, nil, fmt.Errorf("get sitemap: %w", err)
	}

	if !IsValidMarket(market) {
		return Document{}, nil, fmt.Errorf("get sitemap %q: %w", market, ErrInvalidInput)
	}

	doc, err := s.store.Stat(ctx, market)
	if err != nil {
		return Document{}, nil, fmt.Errorf("get sitemap %q: %w", market, err)
	}

	content, err := s.store.Get(ctx, market)
	if err != nil {
		return Document{}, nil, fmt.Errorf("get sitemap %q: %w", market, err)
	}

	return doc, content, nil
}

// List returns all markets with a document in the store.
func (s *SitemapService) List(ctx context.Context) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list sitemaps: %w", err)
	}

	docs, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sitemaps: %w", err)
	}

	return docs, nil
}
