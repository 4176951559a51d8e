package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/futig/docgen-backend/internal/pkg/formatter"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const defaultSlug = "document"

// Store writes rendered documents to <root>/<category>/<prefix>_<slug><ext>.
// An existing file with the same name is overwritten.
type Store struct {
	root    string
	factory *formatter.Factory
}

func NewStore(root string, factory *formatter.Factory) *Store {
	return &Store{
		root:    root,
		factory: factory,
	}
}

// Save renders doc and returns the written artifact. A partially written
// file is removed when rendering fails.
func (s *Store) Save(ctx context.Context, category, prefix, subject string, format entity.OutputFormat, doc *formatter.Document) (*entity.RenderedArtifact, error) {
	f, err := s.factory.Create(format)
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(s.root, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create output dir: %w", entity.ErrRender, err)
	}

	filename := prefix + "_" + Slug(subject) + f.FileExtension()
	path := filepath.Join(dir, filename)

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: create %s: %w", entity.ErrRender, filename, err)
	}

	renderErr := f.Render(file, doc)
	closeErr := file.Close()
	if renderErr == nil && closeErr != nil {
		renderErr = fmt.Errorf("%w: close %s: %w", entity.ErrRender, filename, closeErr)
	}
	if renderErr != nil {
		if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
			ctxzap.Warn(ctx, "failed to remove partial artifact", zap.String("path", path), zap.Error(rmErr))
		}
		return nil, renderErr
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %w", entity.ErrRender, filename, err)
	}

	ctxzap.Info(ctx, "artifact written",
		zap.String("path", path),
		zap.String("format", string(format)),
		zap.Int64("size", info.Size()),
	)

	return &entity.RenderedArtifact{
		Path:      path,
		Filename:  filename,
		MediaType: f.ContentType(),
		Size:      info.Size(),
	}, nil
}

// Remove deletes an artifact after it has been streamed.
func (s *Store) Remove(ctx context.Context, a *entity.RenderedArtifact) {
	if a == nil {
		return
	}
	if err := os.Remove(a.Path); err != nil && !os.IsNotExist(err) {
		ctxzap.Warn(ctx, "failed to remove artifact", zap.String("path", a.Path), zap.Error(err))
	}
}

// Slug lowercases name, joins words with underscores and drops characters
// that are unsafe in file names.
func Slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune('_')
		}
	}
	if slug := strings.Trim(b.String(), "_"); slug != "" {
		return slug
	}
	return defaultSlug
}
