package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/lifearchive/internal/archive"
	"github.com/dmitrijs2005/lifearchive/internal/common"
	"github.com/dmitrijs2005/lifearchive/internal/logging"
)

func TestFileStore_Load_CreatesSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "archive.json")
	s := NewFileStore(path, testCodec(), logging.Discard(), clock)

	doc, err := s.Load(context.Background())
	require.NoError(t, err)
	if diff := cmp.Diff(archive.Fallback(testNow), doc); diff != "" {
		t.Errorf("unexpected seed (-want +got):\n%s", diff)
	}

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "{\n  \"journals\": ["), "file must be pretty-printed with two spaces")
}

func TestFileStore_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.json")
	s := NewFileStore(path, testCodec(), logging.Discard(), clock)
	ctx := context.Background()

	doc := stampedDoc("2026-01-14T09:00:00.000Z")
	doc.Albums[0].Photos = []string{"b.jpg", "a.jpg"}
	require.NoError(t, s.Save(ctx, doc))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(doc, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFileStore_Load_ParseErrorPropagates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))
	s := NewFileStore(path, testCodec(), logging.Discard(), clock)

	_, err := s.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrParse))
}

func TestFileStore_Load_ReadErrorPropagates(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir, testCodec(), logging.Discard(), clock)

	_, err := s.Load(context.Background())
	require.Error(t, err)
}

func TestFileStore_Save_Error(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	s := NewFileStore(filepath.Join(blocker, "archive.json"), testCodec(), logging.Discard(), clock)

	err := s.Save(context.Background(), stampedDoc("2026-01-14T09:00:00.000Z"))
	require.Error(t, err)
	assert.Equal(t, "file", s.Name())
	assert.NoError(t, s.Close())
}
