package archive

import "time"

// The constructors below mirror the creation forms: a fresh id, empty
// sequences instead of nil, both timestamps set to now. withShare adds a
// share id so the entity is reachable through its public page.

func newShareID(withShare bool) *string {
	if !withShare {
		return nil
	}
	return Ptr(NewID(PrefixShare))
}

func NewJournal(title, date string, now time.Time, withShare bool) Journal {
	stamp := FormatTimestamp(now)
	return Journal{
		ID:        NewID(PrefixJournal),
		Title:     title,
		Date:      date,
		Category:  JournalCategoryOther,
		Tags:      []string{},
		Photos:    []string{},
		ShareID:   newShareID(withShare),
		CreatedAt: stamp,
		UpdatedAt: stamp,
	}
}

func NewAlbum(title string, now time.Time, withShare bool) Album {
	stamp := FormatTimestamp(now)
	return Album{
		ID:        NewID(PrefixAlbum),
		Title:     title,
		Tags:      []string{},
		Photos:    []string{},
		ShareID:   newShareID(withShare),
		CreatedAt: stamp,
		UpdatedAt: stamp,
	}
}

func NewEvent(title string, typ EventType, date string, now time.Time, withShare bool) Event {
	stamp := FormatTimestamp(now)
	if !typ.Valid() {
		typ = EventTypeOther
	}
	return Event{
		ID:        NewID(PrefixEvent),
		Title:     title,
		Type:      typ,
		Date:      date,
		Photos:    []string{},
		Guestbook: []GuestbookEntry{},
		ShareID:   newShareID(withShare),
		CreatedAt: stamp,
		UpdatedAt: stamp,
	}
}

func NewFoodMenu(name string, category FoodCategory, now time.Time) FoodMenu {
	stamp := FormatTimestamp(now)
	if !category.Valid() {
		category = FoodCategoryOther
	}
	return FoodMenu{
		ID:              NewID(PrefixFood),
		Name:            name,
		Category:        category,
		MainIngredients: []string{},
		SubIngredients:  []string{},
		CreatedAt:       stamp,
		UpdatedAt:       stamp,
	}
}
