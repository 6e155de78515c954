package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/lifearchive/internal/archive"
	"github.com/dmitrijs2005/lifearchive/internal/codec"
	"github.com/dmitrijs2005/lifearchive/internal/common"
	"github.com/dmitrijs2005/lifearchive/internal/dbx"
	"github.com/dmitrijs2005/lifearchive/internal/logging"
	"github.com/dmitrijs2005/lifearchive/internal/server/migrations"
)

// TableStore is the hosted-table backend: one row keyed by
// common.DefaultArchiveID in the archives table.
type TableStore struct {
	db    *sql.DB
	close func() error
	id    string
	codec *codec.Codec
	log   logging.Logger
	now   func() time.Time

	schemaMu sync.Mutex
	// migrate is nil once the schema is known to be in place.
	migrate func(ctx context.Context) error
}

func NewTableStore(db *sql.DB, c *codec.Codec, log logging.Logger, now func() time.Time) *TableStore {
	if now == nil {
		now = time.Now
	}
	return &TableStore{
		db:    db,
		close: func() error { return nil },
		id:    common.DefaultArchiveID,
		codec: c,
		log:   log,
		now:   now,
	}
}

var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded schema to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to migrate archive table: %w", err)
	}
	return nil
}

// openDB connects with the pgx stdlib driver. key, when set, replaces the
// password of the DSN so the credential can be configured separately.
func openDB(dsn, key string) (*sql.DB, error) {
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid table URL: %w", err)
	}
	if key != "" {
		cfg.Password = key
	}
	return stdlib.OpenDB(*cfg), nil
}

// OpenTableStore returns a store over the hosted table. Only an invalid DSN
// fails here: an unreachable database is logged and the schema migration is
// retried on first use, so reads degrade to the seed until it comes up.
func OpenTableStore(ctx context.Context, dsn, key string, c *codec.Codec, log logging.Logger, now func() time.Time) (*TableStore, error) {
	db, err := openDB(dsn, key)
	if err != nil {
		return nil, err
	}

	s := NewTableStore(db, c, log, now)
	s.close = db.Close
	s.migrate = func(ctx context.Context) error { return RunMigrations(ctx, db) }
	if err := s.ensureSchema(ctx); err != nil {
		log.Warn(ctx, "archive table not ready, will retry on first use", "error", err)
	}
	return s, nil
}

func (s *TableStore) ensureSchema(ctx context.Context) error {
	s.schemaMu.Lock()
	defer s.schemaMu.Unlock()
	if s.migrate == nil {
		return nil
	}
	if err := s.migrate(ctx); err != nil {
		return err
	}
	s.migrate = nil
	return nil
}

func (s *TableStore) Name() string { return "postgres" }

func (s *TableStore) Close() error { return s.close() }

// Load never fails: a query error, a missing row or unreadable data is
// logged and answered with the seed document.
func (s *TableStore) Load(ctx context.Context) (*archive.Document, error) {
	if err := s.ensureSchema(ctx); err != nil {
		s.log.Error(ctx, "archive table unavailable, using seed", "id", s.id, "error", fmt.Errorf("%w: %v", common.ErrRemoteReadDegraded, err))
		return archive.Fallback(s.now()), nil
	}

	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM archives WHERE id = $1`, s.id).Scan(&data)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		s.log.Warn(ctx, "archive table has no row, using seed", "id", s.id, "error", common.ErrRemoteReadDegraded)
		return archive.Fallback(s.now()), nil
	case err != nil:
		s.log.Error(ctx, "archive table read failed, using seed", "id", s.id, "error", fmt.Errorf("%w: %v", common.ErrRemoteReadDegraded, err))
		return archive.Fallback(s.now()), nil
	case len(data) == 0 || string(data) == "null":
		s.log.Warn(ctx, "archive table row is empty, using seed", "id", s.id, "error", common.ErrRemoteReadDegraded)
		return archive.Fallback(s.now()), nil
	}

	doc, _, err := s.codec.Decode(data)
	if err != nil {
		s.log.Error(ctx, "archive table data unreadable, using seed", "id", s.id, "error", err)
		return archive.Fallback(s.now()), nil
	}
	return doc, nil
}

// Save upserts the row in a transaction. Failures are returned wrapped in
// common.ErrRemoteWriteFailed.
func (s *TableStore) Save(ctx context.Context, doc *archive.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: encoding archive: %v", common.ErrRemoteWriteFailed, err)
	}
	if err := s.ensureSchema(ctx); err != nil {
		s.log.Error(ctx, "archive table unavailable", "id", s.id, "error", err)
		return fmt.Errorf("%w: %v", common.ErrRemoteWriteFailed, err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO archives (id, data, updated_at) VALUES ($1, $2, $3)
			ON CONFLICT (id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
		`, s.id, data, s.now().UTC())
		return err
	})
	if err != nil {
		s.log.Error(ctx, "archive table write failed", "id", s.id, "error", err)
		return fmt.Errorf("%w: %v", common.ErrRemoteWriteFailed, err)
	}
	return nil
}
