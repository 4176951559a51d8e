package artifact

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/futig/docgen-backend/internal/pkg/formatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*Store, string) {
	t.Helper()
	root := t.TempDir()
	factory := formatter.NewFactory(
		formatter.WithTempDir(t.TempDir()),
		formatter.WithClock(func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }),
	)
	return NewStore(root, factory), root
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Acme Inc.":        "acme_inc",
		"  Jane   Doe ":    "jane___doe",
		"../../etc/passwd": "etcpasswd",
		"Café Ünïcode":     "café_ünïcode",
		"":                 "document",
		"!!!":              "document",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slug(in), in)
	}
}

func TestSaveWritesUnderCategory(t *testing.T) {
	store, root := newStore(t)
	content := entity.NewStructuredContent()
	content.Set("intro", map[string]any{"title": "Intro", "content": "Hello"})

	a, err := store.Save(context.Background(), entity.CategoryLegal, "nda", "Acme Inc", entity.FormatMarkdown,
		&formatter.Document{Title: "NDA", Content: content})
	require.NoError(t, err)

	assert.Equal(t, "nda_acme_inc.md", a.Filename)
	assert.Equal(t, filepath.Join(root, "legal", "nda_acme_inc.md"), a.Path)
	assert.Equal(t, "text/markdown; charset=utf-8", a.MediaType)

	data, err := os.ReadFile(a.Path)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), a.Size)
	assert.Contains(t, string(data), "## Intro")

	store.Remove(context.Background(), a)
	_, err = os.Stat(a.Path)
	assert.True(t, os.IsNotExist(err))
}

func TestSaveOverwritesSameName(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	first, err := store.Save(ctx, entity.CategoryLegal, "nda", "Acme", entity.FormatMarkdown, &formatter.Document{Title: "A much longer first title"})
	require.NoError(t, err)
	second, err := store.Save(ctx, entity.CategoryLegal, "nda", "Acme", entity.FormatMarkdown, &formatter.Document{Title: "B"})
	require.NoError(t, err)

	assert.Equal(t, first.Path, second.Path)
	data, err := os.ReadFile(second.Path)
	require.NoError(t, err)
	assert.Equal(t, "# B\n\n", string(data))
}

func TestSaveRemovesPartialFileOnFailure(t *testing.T) {
	store, root := newStore(t)

	_, err := store.Save(context.Background(), entity.CategoryLegal, "nda", "Acme", entity.FormatPDF,
		&formatter.Document{Title: "NDA", Logo: "not an image"})
	assert.ErrorIs(t, err, entity.ErrInvalidLogo)

	entries, err := os.ReadDir(filepath.Join(root, "legal"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveUnsupportedFormat(t *testing.T) {
	store, _ := newStore(t)
	_, err := store.Save(context.Background(), entity.CategoryLegal, "nda", "Acme", "odt", &formatter.Document{})
	assert.ErrorIs(t, err, entity.ErrUnsupportedFormat)
}
