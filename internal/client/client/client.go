package client

import (
	"context"

	"github.com/dmitrijs2005/lifearchive/internal/archive"
)

// Client is the remote side of synchronization as seen from the device.
type Client interface {
	Fetch(ctx context.Context) (*archive.Document, error)
	Push(ctx context.Context, doc *archive.Document) error
	Ping(ctx context.Context) error
}
