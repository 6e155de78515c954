// Package sanitize coerces untrusted, already-decoded JSON values into
// well-typed archive entities.
//
// Every function here accepts any value (typically the result of
// json.Unmarshal into an `any`) and never fails: each field has a fallback,
// and the coercions that were needed are returned as a Report. Sanitizing a
// value that is already a valid entity yields the same entity and a clean
// report.
package sanitize

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/lifearchive/internal/archive"
)

// Sanitizer holds the id generator and clock used for fields that have to be
// invented (ids, creation timestamps).
type Sanitizer struct {
	NewID func(prefix string) string
	Now   func() time.Time
}

// New returns a Sanitizer using random ids and the wall clock.
func New() *Sanitizer {
	return &Sanitizer{NewID: archive.NewID, Now: time.Now}
}

func (s *Sanitizer) id(prefix string) func() string {
	return func() string { return s.NewID(prefix) }
}

func (s *Sanitizer) stamp() string {
	return archive.FormatTimestamp(s.Now())
}

func (s *Sanitizer) object(v any, path string, r *Report) fields {
	f, ok := newFields(v, path, r)
	if !ok {
		r.add(path, ReasonNotObject)
	}
	return f
}

// Journal sanitizes one journal.
func (s *Sanitizer) Journal(v any) (archive.Journal, Report) {
	var r Report
	j := s.journal(v, "journal", &r)
	return j, r
}

func (s *Sanitizer) journal(v any, path string, r *Report) archive.Journal {
	f := s.object(v, path, r)
	stamp := s.stamp()
	return archive.Journal{
		ID:        f.nonBlank("id", s.id(archive.PrefixJournal), ReasonGenerated),
		Title:     f.reqString("title", ""),
		Date:      f.reqString("date", ""),
		Category:  enum(f, "category", archive.JournalCategory.Valid, archive.JournalCategoryOther),
		Tags:      f.stringList("tags"),
		Location:  f.optString("location"),
		Summary:   f.optString("summary"),
		Content:   f.reqString("content", ""),
		Photos:    f.stringList("photos"),
		IsPublic:  f.boolean("isPublic", false),
		ShareID:   f.optString("shareId"),
		CreatedAt: f.reqString("createdAt", stamp),
		UpdatedAt: f.reqString("updatedAt", stamp),
	}
}

// Album sanitizes one album.
func (s *Sanitizer) Album(v any) (archive.Album, Report) {
	var r Report
	a := s.album(v, "album", &r)
	return a, r
}

func (s *Sanitizer) album(v any, path string, r *Report) archive.Album {
	f := s.object(v, path, r)
	stamp := s.stamp()
	return archive.Album{
		ID:          f.nonBlank("id", s.id(archive.PrefixAlbum), ReasonGenerated),
		Title:       f.reqString("title", ""),
		PeriodStart: f.optString("periodStart"),
		PeriodEnd:   f.optString("periodEnd"),
		Tags:        f.stringList("tags"),
		CoverURL:    f.optString("coverUrl"),
		Photos:      f.stringList("photos"),
		Memo:        f.optString("memo"),
		IsPublic:    f.boolean("isPublic", false),
		ShareID:     f.optString("shareId"),
		CreatedAt:   f.reqString("createdAt", stamp),
		UpdatedAt:   f.reqString("updatedAt", stamp),
	}
}

// GuestbookEntry sanitizes one guestbook entry. ok is false when v is not an
// object; such entries are dropped by Event.
func (s *Sanitizer) GuestbookEntry(v any) (entry archive.GuestbookEntry, ok bool, r Report) {
	entry, ok = s.guestbookEntry(v, "guestbook", &r)
	return entry, ok, r
}

func (s *Sanitizer) guestbookEntry(v any, path string, r *Report) (archive.GuestbookEntry, bool) {
	f, ok := newFields(v, path, r)
	if !ok {
		return archive.GuestbookEntry{}, false
	}
	return archive.GuestbookEntry{
		ID:        f.nonBlank("id", s.id(archive.PrefixGuestbook), ReasonGenerated),
		Name:      f.nonBlank("name", func() string { return archive.AnonymousName }, ReasonBlank),
		Message:   f.reqString("message", ""),
		CreatedAt: f.reqString("createdAt", s.stamp()),
	}, true
}

// Event sanitizes one event including its guestbook.
func (s *Sanitizer) Event(v any) (archive.Event, Report) {
	var r Report
	e := s.event(v, "event", &r)
	return e, r
}

func (s *Sanitizer) event(v any, path string, r *Report) archive.Event {
	f := s.object(v, path, r)
	stamp := s.stamp()
	return archive.Event{
		ID:          f.nonBlank("id", s.id(archive.PrefixEvent), ReasonGenerated),
		Title:       f.reqString("title", ""),
		Type:        enum(f, "type", archive.EventType.Valid, archive.EventTypeOther),
		Date:        f.reqString("date", ""),
		Time:        f.optString("time"),
		Location:    f.optString("location"),
		Contact:     f.optString("contact"),
		Greeting:    f.optString("greeting"),
		VenueInfo:   f.optString("venueInfo"),
		TransitInfo: f.optString("transitInfo"),
		AccountInfo: f.optString("accountInfo"),
		Description: f.reqString("description", ""),
		CoverURL:    f.optString("coverUrl"),
		Photos:      f.stringList("photos"),
		Guestbook:   s.guestbook(f, r),
		IsPublic:    f.boolean("isPublic", false),
		ShareID:     f.optString("shareId"),
		CreatedAt:   f.reqString("createdAt", stamp),
		UpdatedAt:   f.reqString("updatedAt", stamp),
	}
}

func (s *Sanitizer) guestbook(f fields, r *Report) []archive.GuestbookEntry {
	out := []archive.GuestbookEntry{}
	v, ok := f.lookup("guestbook")
	if !ok {
		return out
	}
	arr, ok := v.([]any)
	if !ok {
		r.add(f.name("guestbook"), ReasonWrongType)
		return out
	}
	for i, item := range arr {
		path := fmt.Sprintf("%s[%d]", f.name("guestbook"), i)
		entry, ok := s.guestbookEntry(item, path, r)
		if !ok {
			r.add(path, ReasonSkipped)
			continue
		}
		out = append(out, entry)
	}
	return out
}

// FoodMenu sanitizes one food menu.
func (s *Sanitizer) FoodMenu(v any) (archive.FoodMenu, Report) {
	var r Report
	m := s.foodMenu(v, "foodMenu", &r)
	return m, r
}

func (s *Sanitizer) foodMenu(v any, path string, r *Report) archive.FoodMenu {
	f := s.object(v, path, r)
	stamp := s.stamp()
	return archive.FoodMenu{
		ID:              f.nonBlank("id", s.id(archive.PrefixFood), ReasonGenerated),
		Name:            f.reqString("name", ""),
		Category:        enum(f, "category", archive.FoodCategory.Valid, archive.FoodCategoryOther),
		Description:     f.optString("description"),
		MainIngredients: f.stringList("mainIngredients"),
		SubIngredients:  f.stringList("subIngredients"),
		Recipe:          f.optString("recipe"),
		VideoURL:        f.optString("videoUrl"),
		ThumbnailURL:    f.optString("thumbnailUrl"),
		CookingTime:     f.optInt("cookingTime"),
		Difficulty:      optEnum(f, "difficulty", archive.Difficulty.Valid),
		Rating:          f.optFloat("rating"),
		LastEaten:       f.optString("lastEaten"),
		CreatedAt:       f.reqString("createdAt", stamp),
		UpdatedAt:       f.reqString("updatedAt", stamp),
	}
}

// Settings sanitizes the settings object. A missing or non-object value
// yields archive.DefaultSettings as a whole.
func (s *Sanitizer) Settings(v any) (archive.Settings, Report) {
	var r Report
	st := s.settings(v, "settings", &r)
	return st, r
}

func (s *Sanitizer) settings(v any, path string, r *Report) archive.Settings {
	def := archive.DefaultSettings()
	f, ok := newFields(v, path, r)
	if !ok {
		r.add(path, ReasonDefaulted)
		return def
	}
	return archive.Settings{
		DefaultVisibility: enum(f, "defaultVisibility", archive.Visibility.Valid, def.DefaultVisibility),
		Theme:             enum(f, "theme", archive.Theme.Valid, def.Theme),
	}
}

// collection sanitizes every object element of an array with one. Elements
// that are not objects are skipped; a non-array value yields an empty slice.
func collection[T any](v any, path string, r *Report, one func(any, string, *Report) T) []T {
	out := []T{}
	if v == nil {
		r.add(path, ReasonMissing)
		return out
	}
	arr, ok := v.([]any)
	if !ok {
		r.add(path, ReasonWrongType)
		return out
	}
	for i, item := range arr {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		if _, ok := item.(map[string]any); !ok {
			r.add(itemPath, ReasonSkipped)
			continue
		}
		out = append(out, one(item, itemPath, r))
	}
	return out
}

const documentField = "document"

// Document sanitizes a whole archive document. Each collection is handled
// independently. UpdatedAt is copied from the input when it is a string; the
// caller decides whether to re-stamp it.
func (s *Sanitizer) Document(v any) (*archive.Document, Report) {
	var r Report
	f, ok := newFields(v, "", &r)
	if !ok {
		r.add(documentField, ReasonNotObject)
	}

	updatedAt, _ := f.m["updatedAt"].(string)

	doc := &archive.Document{
		Journals:  collection(f.m["journals"], "journals", &r, s.journal),
		Albums:    collection(f.m["albums"], "albums", &r, s.album),
		Events:    collection(f.m["events"], "events", &r, s.event),
		FoodMenus: collection(f.m["foodMenus"], "foodMenus", &r, s.foodMenu),
		Settings:  s.settings(f.m["settings"], "settings", &r),
		UpdatedAt: strings.TrimSpace(updatedAt),
	}
	return doc, r
}
