package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/lifearchive/internal/archive"
	"github.com/dmitrijs2005/lifearchive/internal/common"
)

// Share prints the entity published under a share id.
func (a *App) Share(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: share <shareId>")
		return errUsage
	}

	shared, ok := a.document().FindByShareID(args[0])
	if !ok {
		return fmt.Errorf("share %q: %w", args[0], common.ErrNotFound)
	}

	switch shared.Kind {
	case archive.SharedJournal:
		a.printJournal(*shared.Journal)
	case archive.SharedAlbum:
		a.printAlbum(*shared.Album)
	case archive.SharedEvent:
		a.printEvent(*shared.Event)
	}
	return nil
}

// Guestbook signs the guestbook of the event shared under a share id.
// Entries are appended, so the oldest message stays first. With "delete" it
// removes one entry from an event instead.
func (a *App) Guestbook(ctx context.Context, args []string) error {
	if len(args) == 3 && args[0] == "delete" {
		return a.deleteGuestbookEntry(ctx, args[1], args[2])
	}
	if len(args) != 1 {
		printlnFn("Usage: guestbook <shareId> | guestbook delete <eventId> <entryId>")
		return errUsage
	}

	shared, ok := a.document().FindByShareID(args[0])
	if !ok {
		return fmt.Errorf("share %q: %w", args[0], common.ErrNotFound)
	}
	if shared.Kind != archive.SharedEvent {
		return fmt.Errorf("share %q is a %s and has no guestbook", args[0], shared.Kind)
	}

	name, err := GetSimpleText(a.reader, "Your name", a.out)
	if err != nil {
		return err
	}
	message, err := GetSimpleText(a.reader, "Message", a.out)
	if err != nil {
		return err
	}
	entry, err := archive.NewGuestbookEntry(name, message, a.now())
	if err != nil {
		return err
	}

	eventID := shared.Event.ID
	a.archive.Update(ctx, func(doc *archive.Document) {
		for i := range doc.Events {
			if doc.Events[i].ID == eventID {
				doc.Events[i].Guestbook = append(doc.Events[i].Guestbook, entry)
				return
			}
		}
	})

	a.printf("Signed as %s\n", entry.Name)
	return nil
}

func (a *App) deleteGuestbookEntry(ctx context.Context, eventID, entryID string) error {
	e, ok := archive.FindByID(a.document().Events, eventID)
	if !ok {
		return fmt.Errorf("event %q: %w", eventID, common.ErrNotFound)
	}
	found := false
	for _, g := range e.Guestbook {
		if g.ID == entryID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("guestbook entry %q: %w", entryID, common.ErrNotFound)
	}

	a.archive.Update(ctx, func(doc *archive.Document) {
		for i := range doc.Events {
			if doc.Events[i].ID != eventID {
				continue
			}
			kept := make([]archive.GuestbookEntry, 0, len(doc.Events[i].Guestbook))
			for _, g := range doc.Events[i].Guestbook {
				if g.ID != entryID {
					kept = append(kept, g)
				}
			}
			doc.Events[i].Guestbook = kept
			return
		}
	})

	a.printf("Deleted guestbook entry %s\n", entryID)
	return nil
}

// Search runs a text search with optional -type and -tag filters.
func (a *App) Search(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	kind := fs.String("type", string(archive.SearchAll), "전체, 일지, 앨범 or 이벤트")
	tag := fs.String("tag", "", "exact tag")
	if err := fs.Parse(args); err != nil {
		printlnFn("Usage: search [-type 전체|일지|앨범|이벤트] [-tag t] [text]")
		return errUsage
	}

	results := a.document().Search(archive.SearchQuery{
		Text: strings.Join(fs.Args(), " "),
		Kind: archive.SearchKind(*kind),
		Tag:  *tag,
	})
	if len(results) == 0 {
		a.printf("No results\n")
		return nil
	}
	for _, r := range results {
		a.printf("%s  [%s] %s %s\n", r.ID, r.Kind, r.Title, archive.FormatDate(r.Date))
	}
	return nil
}

// PickFood prints a random menu, optionally from one category.
func (a *App) PickFood(ctx context.Context, args []string) error {
	menus := a.document().FoodMenus
	if len(args) > 0 {
		category := archive.FoodCategory(strings.Join(args, " "))
		if !category.Valid() {
			return fmt.Errorf("unknown food category %q", category)
		}
		var filtered []archive.FoodMenu
		for _, m := range menus {
			if m.Category == category {
				filtered = append(filtered, m)
			}
		}
		menus = filtered
	}

	menu, ok := archive.PickFood(menus, a.intn)
	if !ok {
		return errors.New("no food menus to pick from")
	}
	a.printFood(menu)
	return nil
}
