package storage

import (
	"time"

	"github.com/dmitrijs2005/lifearchive/internal/archive"
	"github.com/dmitrijs2005/lifearchive/internal/codec"
)

var testNow = time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return testNow }

func testCodec() *codec.Codec { return codec.New(nil, clock) }

func stampedDoc(stamp string) *archive.Document {
	doc := archive.Seed(testNow)
	doc.UpdatedAt = stamp
	return doc
}
