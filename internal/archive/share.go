package archive

import (
	"errors"
	"strings"
	"time"
)

// AnonymousName is used for guestbook entries signed without a name.
const AnonymousName = "익명"

// ErrEmptyMessage is returned when a guestbook message is blank.
var ErrEmptyMessage = errors.New("guestbook message is empty")

// SharedKind tells which collection a shared entity came from.
type SharedKind string

const (
	SharedJournal SharedKind = "journal"
	SharedAlbum   SharedKind = "album"
	SharedEvent   SharedKind = "event"
)

// Shared is the result of a share id lookup. Exactly one of the entity
// pointers is set, matching Kind.
type Shared struct {
	Kind    SharedKind `json:"kind"`
	Journal *Journal   `json:"journal,omitempty"`
	Album   *Album     `json:"album,omitempty"`
	Event   *Event     `json:"event,omitempty"`
}

func hasShareID(p *string, shareID string) bool {
	return p != nil && *p == shareID
}

// FindByShareID scans journals, albums and events for shareID. The scan does
// not look at entity types first: whichever collection holds the id wins,
// checked in that order.
func (d *Document) FindByShareID(shareID string) (Shared, bool) {
	if shareID == "" {
		return Shared{}, false
	}
	for i := range d.Journals {
		if hasShareID(d.Journals[i].ShareID, shareID) {
			j := d.Journals[i].Clone()
			return Shared{Kind: SharedJournal, Journal: &j}, true
		}
	}
	for i := range d.Albums {
		if hasShareID(d.Albums[i].ShareID, shareID) {
			a := d.Albums[i].Clone()
			return Shared{Kind: SharedAlbum, Album: &a}, true
		}
	}
	for i := range d.Events {
		if hasShareID(d.Events[i].ShareID, shareID) {
			e := d.Events[i].Clone()
			return Shared{Kind: SharedEvent, Event: &e}, true
		}
	}
	return Shared{}, false
}

// DuplicateShareIDs returns share ids used by more than one entity across
// all shareable collections.
func (d *Document) DuplicateShareIDs() []string {
	seen := make(map[string]int)
	var order []string
	note := func(p *string) {
		if p == nil || *p == "" {
			return
		}
		if seen[*p] == 0 {
			order = append(order, *p)
		}
		seen[*p]++
	}
	for _, j := range d.Journals {
		note(j.ShareID)
	}
	for _, a := range d.Albums {
		note(a.ShareID)
	}
	for _, e := range d.Events {
		note(e.ShareID)
	}

	var dups []string
	for _, id := range order {
		if seen[id] > 1 {
			dups = append(dups, id)
		}
	}
	return dups
}

// NewGuestbookEntry builds an entry the way the shared event page does:
// both fields are trimmed, a blank name becomes AnonymousName and a blank
// message is rejected.
func NewGuestbookEntry(name, message string, now time.Time) (GuestbookEntry, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return GuestbookEntry{}, ErrEmptyMessage
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = AnonymousName
	}
	return GuestbookEntry{
		ID:        NewID(PrefixGuestbook),
		Name:      name,
		Message:   message,
		CreatedAt: FormatTimestamp(now),
	}, nil
}
