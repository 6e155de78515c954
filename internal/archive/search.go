package archive

import (
	"sort"
	"strings"
)

// SearchKind filters search results by collection.
type SearchKind string

const (
	SearchAll     SearchKind = "전체"
	SearchJournal SearchKind = "일지"
	SearchAlbum   SearchKind = "앨범"
	SearchEvent   SearchKind = "이벤트"
)

// SearchQuery describes a search over journals, albums and events. Empty
// fields do not filter.
type SearchQuery struct {
	Text string
	Kind SearchKind
	Tag  string
}

// SearchResult is one match, with the path of its detail view.
type SearchResult struct {
	ID    string     `json:"id"`
	Kind  SearchKind `json:"type"`
	Title string     `json:"title"`
	Date  string     `json:"date,omitempty"`
	Href  string     `json:"href"`
	Tags  []string   `json:"tags"`
}

type searchItem struct {
	SearchResult
	content string
}

func joinText(parts ...string) string {
	return strings.Join(parts, " ")
}

func (d *Document) searchItems() []searchItem {
	items := make([]searchItem, 0, len(d.Journals)+len(d.Albums)+len(d.Events))
	for _, j := range d.Journals {
		items = append(items, searchItem{
			SearchResult: SearchResult{ID: j.ID, Kind: SearchJournal, Title: j.Title, Date: j.Date, Href: "/journal/" + j.ID, Tags: j.Tags},
			content:      joinText(Deref(j.Summary), j.Content, Deref(j.Location)),
		})
	}
	for _, a := range d.Albums {
		items = append(items, searchItem{
			SearchResult: SearchResult{ID: a.ID, Kind: SearchAlbum, Title: a.Title, Date: Deref(a.PeriodStart), Href: "/albums/" + a.ID, Tags: a.Tags},
			content:      joinText(Deref(a.Memo), strings.Join(a.Tags, " ")),
		})
	}
	for _, e := range d.Events {
		items = append(items, searchItem{
			SearchResult: SearchResult{ID: e.ID, Kind: SearchEvent, Title: e.Title, Date: e.Date, Href: "/events/" + e.ID, Tags: []string{string(e.Type)}},
			content:      joinText(e.Description, Deref(e.Location)),
		})
	}
	return items
}

// Search matches the query text case-insensitively against title, content
// and tags, and filters by kind and exact tag.
func (d *Document) Search(q SearchQuery) []SearchResult {
	needle := strings.ToLower(strings.TrimSpace(q.Text))
	var out []SearchResult
	for _, item := range d.searchItems() {
		if q.Kind != "" && q.Kind != SearchAll && item.Kind != q.Kind {
			continue
		}
		if needle != "" {
			hay := strings.ToLower(joinText(item.Title, item.content, strings.Join(item.Tags, " ")))
			if !strings.Contains(hay, needle) {
				continue
			}
		}
		if q.Tag != "" && !contains(item.Tags, q.Tag) {
			continue
		}
		out = append(out, item.SearchResult)
	}
	return out
}

// Tags returns the distinct non-empty tags of journals and albums plus the
// event types, in first-seen order.
func (d *Document) Tags() []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(tag string) {
		if tag == "" {
			return
		}
		if _, ok := seen[tag]; ok {
			return
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	for _, j := range d.Journals {
		for _, t := range j.Tags {
			add(t)
		}
	}
	for _, a := range d.Albums {
		for _, t := range a.Tags {
			add(t)
		}
	}
	for _, e := range d.Events {
		add(string(e.Type))
	}
	return out
}

// SortByDateDesc returns a copy of items ordered by date descending. Dates
// are compared as strings; equal dates keep their original order.
func SortByDateDesc[T any](items []T, date func(T) string) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return date(out[i]) > date(out[j])
	})
	return out
}

func journalDate(j Journal) string { return j.Date }
func eventDate(e Event) string     { return e.Date }

// RecentJournals returns up to n journals, newest date first.
func (d *Document) RecentJournals(n int) []Journal {
	return head(SortByDateDesc(d.Journals, journalDate), n)
}

// RecentEvents returns up to n events, newest date first.
func (d *Document) RecentEvents(n int) []Event {
	return head(SortByDateDesc(d.Events, eventDate), n)
}

// RecentAlbums returns the first n albums in list order.
func (d *Document) RecentAlbums(n int) []Album {
	out := make([]Album, len(d.Albums))
	copy(out, d.Albums)
	return head(out, n)
}

func head[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(items) > n {
		return items[:n]
	}
	return items
}
