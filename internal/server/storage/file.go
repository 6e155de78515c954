package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/lifearchive/internal/archive"
	"github.com/dmitrijs2005/lifearchive/internal/codec"
	"github.com/dmitrijs2005/lifearchive/internal/logging"
)

// FileStore is the flat-file backend. Concurrent writers are not
// coordinated; the last write wins.
type FileStore struct {
	path  string
	codec *codec.Codec
	log   logging.Logger
	now   func() time.Time
}

func NewFileStore(path string, c *codec.Codec, log logging.Logger, now func() time.Time) *FileStore {
	if now == nil {
		now = time.Now
	}
	return &FileStore{path: path, codec: c, log: log, now: now}
}

func (s *FileStore) Name() string { return "file" }

func (s *FileStore) Close() error { return nil }

// ensure creates the file with the seed document when it does not exist.
func (s *FileStore) ensure(ctx context.Context) error {
	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error checking archive file: %w", err)
	}

	s.log.Info(ctx, "creating archive file with seed data", "path", s.path)
	return s.write(archive.Fallback(s.now()))
}

func (s *FileStore) write(doc *archive.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding archive: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("error creating archive directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("error writing archive file: %w", err)
	}
	return nil
}

func (s *FileStore) Load(ctx context.Context) (*archive.Document, error) {
	if err := s.ensure(ctx); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("error reading archive file: %w", err)
	}

	doc, report, err := s.codec.Decode(data)
	if err != nil {
		return nil, err
	}
	if !report.Clean() {
		s.log.Debug(ctx, "archive file sanitized", "coercions", len(report.Coercions))
	}
	return doc, nil
}

// Save overwrites the file with doc as given.
func (s *FileStore) Save(_ context.Context, doc *archive.Document) error {
	return s.write(doc)
}
