package sanitize

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/lifearchive/internal/archive"
)

var fixedNow = time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

func newTestSanitizer() *Sanitizer {
	n := 0
	return &Sanitizer{
		NewID: func(prefix string) string {
			n++
			return fmt.Sprintf("%s-%d", prefix, n)
		},
		Now: func() time.Time { return fixedNow },
	}
}

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func TestSanitizer_Journal_Minimal(t *testing.T) {
	s := newTestSanitizer()

	j, r := s.Journal(decode(t, `{"id":"j1","title":"X"}`))

	assert.Equal(t, "j1", j.ID)
	assert.Equal(t, "X", j.Title)
	assert.Equal(t, archive.JournalCategoryOther, j.Category)
	assert.Equal(t, []string{}, j.Tags)
	assert.Equal(t, []string{}, j.Photos)
	assert.Equal(t, "", j.Content)
	assert.False(t, j.IsPublic)
	assert.Nil(t, j.ShareID)
	assert.Equal(t, "2026-01-15T10:00:00.000Z", j.CreatedAt)
	assert.Equal(t, "2026-01-15T10:00:00.000Z", j.UpdatedAt)
	assert.False(t, r.Clean())
}

func TestSanitizer_Journal_WrongTypes(t *testing.T) {
	s := newTestSanitizer()

	j, r := s.Journal(decode(t, `{
		"id": 7,
		"title": ["x"],
		"category": "모험",
		"tags": ["a", 1, null, "b"],
		"photos": "p.jpg",
		"isPublic": "true",
		"location": 3
	}`))

	assert.Equal(t, "journal-1", j.ID)
	assert.Equal(t, "", j.Title)
	assert.Equal(t, archive.JournalCategoryOther, j.Category)
	assert.Equal(t, []string{"a", "b"}, j.Tags)
	assert.Equal(t, []string{}, j.Photos)
	assert.False(t, j.IsPublic)
	assert.Nil(t, j.Location)

	fields := map[string]string{}
	for _, c := range r.Coercions {
		fields[c.Field] = c.Reason
	}
	assert.Equal(t, ReasonGenerated, fields["journal.id"])
	assert.Equal(t, ReasonWrongType, fields["journal.title"])
	assert.Equal(t, ReasonUnknown, fields["journal.category"])
	assert.Equal(t, ReasonDropped, fields["journal.tags"])
	assert.Equal(t, ReasonWrongType, fields["journal.photos"])
	assert.Equal(t, ReasonWrongType, fields["journal.isPublic"])
}

func TestSanitizer_Event_Guestbook(t *testing.T) {
	s := newTestSanitizer()

	e, _ := s.Event(decode(t, `{
		"id": "e1",
		"title": "결혼식",
		"type": "청첩장",
		"date": "2026-05-01",
		"guestbook": [
			{"id": "g1", "name": "  ", "message": "축하해요"},
			"not an entry",
			{"message": "hello"},
			{"id": "g3", "name": "민지", "message": "♥", "createdAt": "2026-01-01T00:00:00.000Z"}
		]
	}`))

	assert.Equal(t, archive.EventTypeInvitation, e.Type)
	require.Len(t, e.Guestbook, 3)
	assert.Equal(t, archive.GuestbookEntry{ID: "g1", Name: archive.AnonymousName, Message: "축하해요", CreatedAt: "2026-01-15T10:00:00.000Z"}, e.Guestbook[0])
	assert.Equal(t, "guestbook-1", e.Guestbook[1].ID)
	assert.Equal(t, archive.AnonymousName, e.Guestbook[1].Name)
	assert.Equal(t, "민지", e.Guestbook[2].Name)
	assert.Equal(t, "2026-01-01T00:00:00.000Z", e.Guestbook[2].CreatedAt)
}

func TestSanitizer_Event_UnknownType(t *testing.T) {
	s := newTestSanitizer()

	e, r := s.Event(map[string]any{"id": "e1", "type": "파티", "guestbook": "x"})

	assert.Equal(t, archive.EventTypeOther, e.Type)
	assert.Equal(t, []archive.GuestbookEntry{}, e.Guestbook)
	assert.Contains(t, r.String(), "event.guestbook: wrong type")
}

func TestSanitizer_FoodMenu_Numbers(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		cooking    *int
		rating     *float64
		difficulty *archive.Difficulty
	}{
		{
			name:       "valid",
			in:         `{"id":"f1","name":"김치찌개","category":"한식","cookingTime":30,"rating":4.5,"difficulty":"쉬움"}`,
			cooking:    archive.Ptr(30),
			rating:     archive.Ptr(4.5),
			difficulty: archive.Ptr(archive.DifficultyEasy),
		},
		{
			name:    "fractional cooking time is truncated",
			in:      `{"id":"f1","name":"라면","cookingTime":7.9}`,
			cooking: archive.Ptr(7),
		},
		{
			name:   "out of range cooking time is absent",
			in:     `{"id":"f1","name":"라면","cookingTime":1e20,"rating":3}`,
			rating: archive.Ptr(3.0),
		},
		{
			name: "negative out of range cooking time is absent",
			in:   `{"id":"f1","name":"라면","cookingTime":-1e20}`,
		},
		{
			name: "non numeric values are absent",
			in:   `{"id":"f1","name":"라면","cookingTime":"10","rating":"5","difficulty":"매우 어려움"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestSanitizer().FoodMenu(decode(t, tt.in))
			assert.Equal(t, tt.cooking, m.CookingTime)
			assert.Equal(t, tt.rating, m.Rating)
			assert.Equal(t, tt.difficulty, m.Difficulty)
		})
	}
}

func TestSanitizer_FoodMenu_OutOfRangeReported(t *testing.T) {
	_, r := newTestSanitizer().FoodMenu(decode(t, `{"id":"f1","name":"라면","category":"한식","cookingTime":1e20}`))
	assert.Contains(t, r.Coercions, Coercion{Field: "foodMenu.cookingTime", Reason: ReasonOutOfRange})
}

func TestReport_RootNotObject(t *testing.T) {
	s := newTestSanitizer()
	for _, v := range []any{"oops", []any{}, nil, 42.0} {
		_, r := s.Document(v)
		assert.True(t, r.RootNotObject(), "%v", v)
	}
	_, r := s.Document(map[string]any{"journals": "x"})
	assert.False(t, r.RootNotObject())
}

func TestSanitizer_Settings(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want archive.Settings
	}{
		{"missing", nil, archive.DefaultSettings()},
		{"not an object", "navy", archive.DefaultSettings()},
		{"valid", map[string]any{"defaultVisibility": "link", "theme": "olive"},
			archive.Settings{DefaultVisibility: archive.VisibilityLink, Theme: archive.ThemeOlive}},
		{"unknown values", map[string]any{"defaultVisibility": "public", "theme": "dark"},
			archive.DefaultSettings()},
		{"partial", map[string]any{"theme": "navy"},
			archive.Settings{DefaultVisibility: archive.VisibilityPrivate, Theme: archive.ThemeNavy}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := newTestSanitizer().Settings(tt.in)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizer_Document_CollectionsIndependent(t *testing.T) {
	s := newTestSanitizer()

	doc, r := s.Document(decode(t, `{
		"journals": [{"id":"j1","title":"A"}, 42, null],
		"albums": "oops",
		"foodMenus": [{"id":"f1","name":"피자","category":"피자"}],
		"settings": 5,
		"updatedAt": "2026-01-01T00:00:00.000Z"
	}`))

	require.Len(t, doc.Journals, 1)
	assert.Equal(t, "j1", doc.Journals[0].ID)
	assert.Equal(t, []archive.Album{}, doc.Albums)
	assert.Equal(t, []archive.Event{}, doc.Events)
	require.Len(t, doc.FoodMenus, 1)
	assert.Equal(t, archive.FoodCategoryPizza, doc.FoodMenus[0].Category)
	assert.Equal(t, archive.DefaultSettings(), doc.Settings)
	assert.Equal(t, "2026-01-01T00:00:00.000Z", doc.UpdatedAt)

	msg := r.String()
	assert.Contains(t, msg, "journals[1]: element skipped")
	assert.Contains(t, msg, "journals[2]: element skipped")
	assert.Contains(t, msg, "albums: wrong type")
	assert.Contains(t, msg, "events: missing")
	assert.Contains(t, msg, "settings: defaulted")
}

func TestSanitizer_NeverPanics(t *testing.T) {
	inputs := []any{
		nil,
		true,
		3.14,
		"string",
		[]any{1, "a", nil},
		map[string]any{},
		map[string]any{"journals": map[string]any{"id": "x"}},
		map[string]any{"events": []any{map[string]any{"guestbook": []any{nil, 1, []any{}}}}},
		map[string]any{"foodMenus": []any{map[string]any{"cookingTime": json.Number("nope"), "rating": json.Number("2.5")}}},
		map[string]any{"settings": []any{"navy"}},
	}

	s := newTestSanitizer()
	for i, in := range inputs {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			assert.NotPanics(t, func() {
				doc, _ := s.Document(in)
				require.NotNil(t, doc)
				assert.NotNil(t, doc.Journals)
				assert.NotNil(t, doc.Albums)
				assert.NotNil(t, doc.Events)
				assert.NotNil(t, doc.FoodMenus)
				assert.True(t, doc.Settings.Theme.Valid())
			})
			assert.NotPanics(t, func() { s.Journal(in) })
			assert.NotPanics(t, func() { s.Album(in) })
			assert.NotPanics(t, func() { s.Event(in) })
			assert.NotPanics(t, func() { s.FoodMenu(in) })
			assert.NotPanics(t, func() { s.GuestbookEntry(in) })
			assert.NotPanics(t, func() { s.Settings(in) })
		})
	}
}

func TestSanitizer_Idempotent(t *testing.T) {
	s := newTestSanitizer()
	seed := archive.Seed(fixedNow)

	raw, err := json.Marshal(seed)
	require.NoError(t, err)

	first, r := s.Document(decode(t, string(raw)))
	assert.True(t, r.Clean(), r.String())
	if diff := cmp.Diff(seed, first); diff != "" {
		t.Errorf("sanitizing a valid document changed it (-want +got):\n%s", diff)
	}

	raw, err = json.Marshal(first)
	require.NoError(t, err)
	second, r := s.Document(decode(t, string(raw)))
	assert.True(t, r.Clean(), r.String())
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second pass changed the document (-want +got):\n%s", diff)
	}
}

func TestNew(t *testing.T) {
	s := New()
	require.NotNil(t, s.NewID)
	require.NotNil(t, s.Now)

	j, _ := s.Journal(map[string]any{})
	assert.Contains(t, j.ID, archive.PrefixJournal+"-")
}
