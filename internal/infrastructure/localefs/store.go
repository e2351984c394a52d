// Package localefs stores locale documents as <lang>.json files in one
// directory.
package localefs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	logging "github.com/ipfs/go-log/v2"

	"localesync/internal/domain"
	"localesync/internal/domain/entities"
	"localesync/internal/ports/output"
)

var log = logging.Logger("localefs")

var _ output.LocaleStore = (*Store)(nil)

const (
	fileExt     = ".json"
	indent      = "  "
	defaultMode = 0o644
)

// Store reads and rewrites locale files under dir.
type Store struct {
	dir      string
	sortKeys bool
}

// Option configures a Store.
type Option func(*Store)

// WithSortedKeys writes every object with its keys in lexical order instead
// of document order.
func WithSortedKeys(on bool) Option {
	return func(s *Store) { s.sortKeys = on }
}

// NewStore checks that dir is an existing directory.
func NewStore(dir string, opts ...Option) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("localefs: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("localefs: %s is not a directory", dir)
	}
	s := &Store{dir: dir}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Store) Path(lang string) string {
	return filepath.Join(s.dir, lang+fileExt)
}

// Read loads and parses <lang>.json.
func (s *Store) Read(_ context.Context, lang string) (*entities.Document, error) {
	path := s.Path(lang)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.ReadError{Lang: lang, Path: path, Err: err}
	}
	doc := entities.NewDocument()
	if err := doc.UnmarshalJSON(data); err != nil {
		return nil, &domain.ReadError{Lang: lang, Path: path, Err: err}
	}
	return doc, nil
}

// Write replaces <lang>.json with doc. The new content goes to a temp file
// in the same directory which is synced and renamed over the original, so
// readers see either the old or the new file. The original file mode is
// kept.
func (s *Store) Write(_ context.Context, lang string, doc *entities.Document) error {
	path := s.Path(lang)
	data, err := s.Encode(doc)
	if err != nil {
		return &domain.WriteError{Lang: lang, Path: path, Err: err}
	}
	if err := writeAtomic(path, data); err != nil {
		return &domain.WriteError{Lang: lang, Path: path, Err: err}
	}
	log.Debugw("locale written", "lang", lang, "path", path, "bytes", len(data))
	return nil
}

// Encode renders doc the way Write stores it: two-space indentation, no
// HTML escaping, trailing newline.
func (s *Store) Encode(doc *entities.Document) ([]byte, error) {
	if s.sortKeys {
		doc.SortKeys()
	}
	compact, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(compact), "", indent); err != nil {
		return nil, fmt.Errorf("indent: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func writeAtomic(path string, data []byte) error {
	mode := fs.FileMode(defaultMode)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
