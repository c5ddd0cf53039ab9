package filesystem_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/sitemapry"
	"github.com/sagarc03/sitemapry/filesystem"
)

func newStore(t *testing.T, files map[string]string) *filesystem.Store {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	root, err := os.OpenRoot(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })

	return filesystem.NewSitemapStore(root)
}

func TestStore_Get(t *testing.T) {
	store := newStore(t, map[string]string{
		"austria.xml": `<?xml version="1.0"?><urlset/>`,
	})

	rc, err := store.Get(context.Background(), "austria")
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, `<?xml version="1.0"?><urlset/>`, string(body))
}

func TestStore_Get_NotFound(t *testing.T) {
	store := newStore(t, nil)

	_, err := store.Get(context.Background(), "atlantis")
	assert.ErrorIs(t, err, sitemapry.ErrNotFound)
}

func TestStore_Stat(t *testing.T) {
	store := newStore(t, map[string]string{
		"austria.xml": "<urlset/>",
	})

	doc, err := store.Stat(context.Background(), "austria")
	require.NoError(t, err)

	assert.Equal(t, "austria", doc.Market)
	assert.Equal(t, sitemapry.XMLContentType, doc.ContentType)
	assert.Equal(t, int64(len("<urlset/>")), doc.SizeBytes)
	assert.False(t, doc.UpdatedAt.IsZero())
}

func TestStore_Stat_NotFound(t *testing.T) {
	store := newStore(t, nil)

	_, err := store.Stat(context.Background(), "atlantis")
	assert.ErrorIs(t, err, sitemapry.ErrNotFound)
}

func TestStore_List(t *testing.T) {
	store := newStore(t, map[string]string{
		"germany.xml": "<urlset/>",
		"austria.xml": "<urlset/>",
		"notes.txt":   "ignore me",
	})

	docs, err := store.List(context.Background())
	require.NoError(t, err)

	require.Len(t, docs, 2)
	assert.Equal(t, "austria", docs[0].Market)
	assert.Equal(t, "germany", docs[1].Market)
}

func TestStore_List_IgnoresSubdirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "archive.xml"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "austria.xml"), []byte("<urlset/>"), 0o644))

	root, err := os.OpenRoot(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })

	store := filesystem.NewSitemapStore(root)

	docs, err := store.List(context.Background())
	require.NoError(t, err)

	require.Len(t, docs, 1)
	assert.Equal(t, "austria", docs[0].Market)
}

func TestStore_List_Empty(t *testing.T) {
	store := newStore(t, nil)

	docs, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestStore_CancelledContext(t *testing.T) {
	store := newStore(t, map[string]string{"austria.xml": "<urlset/>"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Get(ctx, "austria")
	assert.ErrorIs(t, err, context.Canceled)

	_, err = store.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
