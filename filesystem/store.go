// Package filesystem provides a read-only filesystem backend for the
// sitemap content store. Documents live as flat {market}.xml files
// under a sandboxed root directory.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/sagarc03/sitemapry"
)

// Store serves sitemap documents from a directory.
type Store struct {
	root *os.Root
}

// NewSitemapStore creates a Store over the given root directory. The
// root provides sandboxed file operations, so even a hostile market
// identifier cannot escape the content directory.
func NewSitemapStore(root *os.Root) *Store {
	return &Store{root: root}
}

// Get opens the document for a market. Returns sitemapry.ErrNotFound if
// the file does not exist.
func (s *Store) Get(ctx context.Context, market string) (io.ReadSeekCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := s.root.Open(fileName(market))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, sitemapry.ErrNotFound
		}
		return nil, fmt.Errorf("failed to open sitemap: %w", err)
	}

	return f, nil
}

// Stat returns metadata for a market's document without opening it.
func (s *Store) Stat(ctx context.Context, market string) (sitemapry.Document, error) {
	if err := ctx.Err(); err != nil {
		return sitemapry.Document{}, err
	}

	info, err := s.root.Stat(fileName(market))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return sitemapry.Document{}, sitemapry.ErrNotFound
		}
		return sitemapry.Document{}, fmt.Errorf("failed to stat sitemap: %w", err)
	}

	if info.IsDir() {
		return sitemapry.Document{}, sitemapry.ErrNotFound
	}

	return sitemapry.Document{
		Market:      market,
		ContentType: sitemapry.XMLContentType,
		SizeBytes:   info.Size(),
		UpdatedAt:   info.ModTime(),
	}, nil
}

// List returns every *.xml document directly under the root, sorted by
// market. Subdirectories and non-XML files are ignored.
func (s *Store) List(ctx context.Context) ([]sitemapry.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(s.root.FS(), ".")
	if err != nil {
		return nil, fmt.Errorf("failed to list sitemaps: %w", err)
	}

	docs := make([]sitemapry.Document, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".xml") {
			continue
		}

		market := strings.TrimSuffix(name, ".xml")
		if !sitemapry.IsValidMarket(market) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to list sitemaps: %w", err)
		}

		docs = append(docs, sitemapry.Document{
			Market:      market,
			ContentType: sitemapry.XMLContentType,
			SizeBytes:   info.Size(),
			UpdatedAt:   info.ModTime(),
		})
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Market < docs[j].Market })

	return docs, nil
}

func fileName(market string) string {
	return market + ".xml"
}
