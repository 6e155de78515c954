// Package codec converts archive documents to and from their JSON text form.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/lifearchive/internal/archive"
	"github.com/dmitrijs2005/lifearchive/internal/common"
	"github.com/dmitrijs2005/lifearchive/internal/sanitize"
)

const exportPrefix = "life-archive-backup-"

// Codec serializes documents and turns untrusted text back into sanitized
// documents.
type Codec struct {
	sanitizer *sanitize.Sanitizer
	now       func() time.Time
}

// New returns a Codec using the given sanitizer and clock. A nil sanitizer
// means sanitize.New() and a nil clock means time.Now.
func New(s *sanitize.Sanitizer, now func() time.Time) *Codec {
	if now == nil {
		now = time.Now
	}
	if s == nil {
		s = &sanitize.Sanitizer{NewID: archive.NewID, Now: now}
	}
	return &Codec{sanitizer: s, now: now}
}

func (c *Codec) stamped(doc *archive.Document) archive.Document {
	out := *doc
	out.UpdatedAt = archive.FormatTimestamp(c.now())
	return out
}

// Serialize renders doc as compact JSON with updatedAt set to the current
// time. doc itself is not modified.
func (c *Codec) Serialize(doc *archive.Document) ([]byte, error) {
	data, err := json.Marshal(c.stamped(doc))
	if err != nil {
		return nil, fmt.Errorf("error encoding archive: %w", err)
	}
	return data, nil
}

// SerializeIndent is Serialize with two-space indentation, the format used
// for exports and the file store.
func (c *Codec) SerializeIndent(doc *archive.Document) ([]byte, error) {
	data, err := json.MarshalIndent(c.stamped(doc), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding archive: %w", err)
	}
	return data, nil
}

// Deserialize parses text, sanitizes every collection and stamps the result
// with the current time. Malformed JSON fails with common.ErrParse.
func (c *Codec) Deserialize(text []byte) (*archive.Document, sanitize.Report, error) {
	doc, report, err := c.Decode(text)
	if err != nil {
		return nil, report, err
	}
	doc.UpdatedAt = archive.FormatTimestamp(c.now())
	return doc, report, nil
}

// Decode is Deserialize without re-stamping: the stored updatedAt is kept so
// that copies can be compared by their actual write time.
func (c *Codec) Decode(text []byte) (*archive.Document, sanitize.Report, error) {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(text))
	if err := dec.Decode(&raw); err != nil {
		return nil, sanitize.Report{}, fmt.Errorf("%w: %v", common.ErrParse, err)
	}
	if dec.More() {
		return nil, sanitize.Report{}, fmt.Errorf("%w: trailing data after document", common.ErrParse)
	}
	doc, report := c.sanitizer.Document(raw)
	return doc, report, nil
}

// ExportFileName returns the download name used for a backup taken at now.
func ExportFileName(now time.Time) string {
	return exportPrefix + now.Format("2006-01-02") + ".json"
}
