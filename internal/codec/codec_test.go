package codec

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/lifearchive/internal/archive"
	"github.com/dmitrijs2005/lifearchive/internal/common"
)

var (
	seedTime = time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	codecNow = time.Date(2026, 2, 1, 12, 30, 0, 0, time.UTC)
)

func newTestCodec() *Codec {
	return New(nil, func() time.Time { return codecNow })
}

func TestCodec_RoundTrip(t *testing.T) {
	c := newTestCodec()
	doc := archive.Seed(seedTime)
	doc.Journals[0].Tags = append(doc.Journals[0].Tags, "비")
	doc.FoodMenus[0].Rating = archive.Ptr(3.5)

	data, err := c.Serialize(doc)
	require.NoError(t, err)

	got, report, err := c.Deserialize(data)
	require.NoError(t, err)
	assert.True(t, report.Clean(), report.String())

	want := *doc
	want.UpdatedAt = got.UpdatedAt
	if diff := cmp.Diff(&want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestCodec_Serialize_Stamps(t *testing.T) {
	c := newTestCodec()
	doc := archive.Seed(seedTime)
	before := doc.UpdatedAt

	data, err := c.SerializeIndent(doc)
	require.NoError(t, err)

	assert.Equal(t, before, doc.UpdatedAt, "input must not be mutated")

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "2026-02-01T12:30:00.000Z", out["updatedAt"])
	assert.Contains(t, string(data), "\n  \"journals\"")
}

func TestCodec_Deserialize_InvalidJSON(t *testing.T) {
	c := newTestCodec()

	for _, in := range []string{"", "{", "not json", `{"journals":[]} {}`} {
		_, _, err := c.Deserialize([]byte(in))
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, common.ErrParse), in)
	}
}

func TestCodec_Deserialize_Import(t *testing.T) {
	c := newTestCodec()

	doc, _, err := c.Deserialize([]byte(`{
		"journals": [{"id":"j1","title":"X"}],
		"albums": "broken",
		"settings": {"theme": "navy"}
	}`))
	require.NoError(t, err)

	require.Len(t, doc.Journals, 1)
	j := doc.Journals[0]
	assert.Equal(t, "j1", j.ID)
	assert.Equal(t, "X", j.Title)
	assert.Equal(t, archive.JournalCategoryOther, j.Category)
	assert.Empty(t, j.Tags)
	assert.Equal(t, "", j.Content)
	assert.False(t, j.IsPublic)
	assert.Empty(t, j.Photos)
	assert.NotEmpty(t, j.CreatedAt)
	assert.NotEmpty(t, j.UpdatedAt)

	assert.Empty(t, doc.Albums)
	assert.Empty(t, doc.Events)
	assert.Empty(t, doc.FoodMenus)
	assert.Equal(t, archive.ThemeNavy, doc.Settings.Theme)
	assert.Equal(t, archive.VisibilityPrivate, doc.Settings.DefaultVisibility)
	assert.Equal(t, "2026-02-01T12:30:00.000Z", doc.UpdatedAt)
}

func TestCodec_Decode_KeepsUpdatedAt(t *testing.T) {
	c := newTestCodec()

	doc, _, err := c.Decode([]byte(`{"updatedAt":"2025-12-31T23:59:59.000Z"}`))
	require.NoError(t, err)
	assert.Equal(t, "2025-12-31T23:59:59.000Z", doc.UpdatedAt)

	doc, _, err = c.Decode([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, "", doc.UpdatedAt)
	assert.Equal(t, int64(0), archive.ParseTimestamp(doc.UpdatedAt))
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "life-archive-backup-2026-03-07.json",
		ExportFileName(time.Date(2026, 3, 7, 23, 0, 0, 0, time.UTC)))
}
