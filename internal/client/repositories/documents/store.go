// Package documents is the on-device archive backend: one key/value slot in
// the local metadata table holding the whole document as JSON.
package documents

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/lifearchive/internal/archive"
	"github.com/dmitrijs2005/lifearchive/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/lifearchive/internal/codec"
	"github.com/dmitrijs2005/lifearchive/internal/common"
	"github.com/dmitrijs2005/lifearchive/internal/logging"
)

// LocalStore reads and writes the archive slot. Reads never fail: an empty
// slot, a database error or unparseable content all yield the seed document.
type LocalStore struct {
	repo  metadata.Repository
	codec *codec.Codec
	log   logging.Logger
	now   func() time.Time
	key   string
}

func NewLocalStore(repo metadata.Repository, c *codec.Codec, log logging.Logger, now func() time.Time) *LocalStore {
	if now == nil {
		now = time.Now
	}
	return &LocalStore{repo: repo, codec: c, log: log, now: now, key: common.LocalStorageKey}
}

func (s *LocalStore) seed() *archive.Document {
	return archive.Fallback(s.now())
}

// Load returns the stored document. The error is always nil; it is part of
// the signature so LocalStore satisfies the same contract as remote stores.
func (s *LocalStore) Load(ctx context.Context) (*archive.Document, error) {
	raw, err := s.repo.Get(ctx, s.key)
	if err != nil {
		s.log.Warn(ctx, "local archive unavailable, using seed", "error", err)
		return s.seed(), nil
	}
	if len(raw) == 0 {
		return s.seed(), nil
	}

	doc, report, err := s.codec.Decode(raw)
	if err != nil {
		s.log.Warn(ctx, "local archive unreadable, using seed", "error", err)
		return s.seed(), nil
	}
	if !report.Clean() {
		s.log.Debug(ctx, "local archive sanitized", "coercions", len(report.Coercions))
	}

	fillAbsent(raw, doc, s.seed())
	return doc, nil
}

// fillAbsent takes collections the stored JSON does not mention at all from
// the seed. Collections that are present but malformed stay empty.
func fillAbsent(raw []byte, doc, seed *archive.Document) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return
	}
	absent := func(k string) bool {
		v, ok := keys[k]
		return !ok || string(v) == "null"
	}
	if absent("journals") {
		doc.Journals = seed.Journals
	}
	if absent("albums") {
		doc.Albums = seed.Albums
	}
	if absent("events") {
		doc.Events = seed.Events
	}
	if absent("foodMenus") {
		doc.FoodMenus = seed.FoodMenus
	}
}

// Save stores doc as compact JSON exactly as given.
func (s *LocalStore) Save(ctx context.Context, doc *archive.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error encoding archive: %w", err)
	}
	if err := s.repo.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("error saving local archive: %w", err)
	}
	return nil
}

// Init writes the seed into an empty slot and returns the current document.
func (s *LocalStore) Init(ctx context.Context) (*archive.Document, error) {
	raw, err := s.repo.Get(ctx, s.key)
	if err != nil {
		s.log.Warn(ctx, "local archive unavailable, using seed", "error", err)
		return s.seed(), nil
	}
	if len(raw) > 0 {
		return s.Load(ctx)
	}

	doc := s.seed()
	if err := s.Save(ctx, doc); err != nil {
		return doc, err
	}
	return doc, nil
}

// Reset drops the stored document; the next Load returns the seed.
func (s *LocalStore) Reset(ctx context.Context) error {
	if err := s.repo.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("error resetting local archive: %w", err)
	}
	return nil
}
