// Package storage holds the server-side archive backends. Exactly one is
// chosen at start-up from configuration.
//
//   - FileStore keeps the document in a pretty-printed JSON file.
//   - TableStore keeps it in one row of a PostgreSQL table.
//   - ObjectStore keeps it as one object in an S3-compatible bucket.
//
// FileStore propagates read errors. TableStore and ObjectStore degrade on
// read: a failed or empty read is logged and answered with the seed
// document. All stores propagate write errors; the hosted ones wrap them in
// common.ErrRemoteWriteFailed.
package storage

import (
	"context"

	"github.com/dmitrijs2005/lifearchive/internal/archive"
)

// Store persists the single archive document.
type Store interface {
	Load(ctx context.Context) (*archive.Document, error)
	Save(ctx context.Context, doc *archive.Document) error
	// Name identifies the backend in logs and response headers.
	Name() string
	Close() error
}
