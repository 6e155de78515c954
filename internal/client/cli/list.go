package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/lifearchive/internal/archive"
)

func names[T ~string](items []T) []string {
	out := make([]string, len(items))
	for i, v := range items {
		out[i] = string(v)
	}
	return out
}

func shareMark(p *string) string {
	if p == nil {
		return ""
	}
	return " [shared " + *p + "]"
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) document() *archive.Document {
	if doc := a.archive.Document(); doc != nil {
		return doc
	}
	return a.archive.Refresh(context.Background())
}

// recentCount is how many entries per collection the list summary shows.
const recentCount = 3

// List prints one collection, or a summary of all of them without args.
func (a *App) List(ctx context.Context, args []string) error {
	doc := a.document()

	kind := ""
	if len(args) > 0 {
		kind = args[0]
	}

	switch kind {
	case "":
		a.printf("journals: %d, albums: %d, events: %d, food menus: %d\n",
			len(doc.Journals), len(doc.Albums), len(doc.Events), len(doc.FoodMenus))
		for _, j := range doc.RecentJournals(recentCount) {
			a.printf("journal: %s %s\n", archive.FormatDate(j.Date), j.Title)
		}
		for _, al := range doc.RecentAlbums(recentCount) {
			a.printf("album: %s (%d photos)\n", al.Title, len(al.Photos))
		}
		for _, e := range doc.RecentEvents(recentCount) {
			a.printf("event: %s %s (%s)\n", archive.FormatDate(e.Date), e.Title, e.Type)
		}
	case "journals", "journal":
		for _, j := range archive.SortByDateDesc(doc.Journals, func(j archive.Journal) string { return j.Date }) {
			a.printf("%s  %s  %s [%s]%s\n", j.ID, archive.FormatDate(j.Date), j.Title, j.Category, shareMark(j.ShareID))
		}
	case "albums", "album":
		for _, al := range doc.Albums {
			a.printf("%s  %s  %d photos%s\n", al.ID, al.Title, len(al.Photos), shareMark(al.ShareID))
		}
	case "events", "event":
		for _, e := range archive.SortByDateDesc(doc.Events, func(e archive.Event) string { return e.Date }) {
			a.printf("%s  %s  %s [%s] guestbook: %d%s\n", e.ID, archive.FormatDate(e.Date), e.Title, e.Type, len(e.Guestbook), shareMark(e.ShareID))
		}
	case "food", "foods":
		for _, f := range doc.FoodMenus {
			a.printf("%s  %s [%s]\n", f.ID, f.Name, f.Category)
		}
	default:
		printlnFn("Usage: list [journals|albums|events|food]")
		return errUsage
	}
	return nil
}

// Show prints every field of the entity with the given id.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: show <id>")
		return errUsage
	}
	id := args[0]
	doc := a.document()

	if j, ok := archive.FindByID(doc.Journals, id); ok {
		a.printJournal(j)
		return nil
	}
	if al, ok := archive.FindByID(doc.Albums, id); ok {
		a.printAlbum(al)
		return nil
	}
	if e, ok := archive.FindByID(doc.Events, id); ok {
		a.printEvent(e)
		return nil
	}
	if f, ok := archive.FindByID(doc.FoodMenus, id); ok {
		a.printFood(f)
		return nil
	}
	return fmt.Errorf("no entry with id %q", id)
}

func (a *App) printOptional(label string, p *string) {
	if p != nil && *p != "" {
		a.printf("%s: %s\n", label, *p)
	}
}

func (a *App) printJournal(j archive.Journal) {
	a.printf("Journal %s\n", j.ID)
	a.printf("Title: %s\n", j.Title)
	a.printf("Date: %s\n", archive.FormatDate(j.Date))
	a.printf("Category: %s\n", j.Category)
	if len(j.Tags) > 0 {
		a.printf("Tags: %s\n", strings.Join(j.Tags, ", "))
	}
	a.printOptional("Location", j.Location)
	a.printOptional("Summary", j.Summary)
	if j.Content != "" {
		a.printf("\n%s\n\n", j.Content)
	}
	if len(j.Photos) > 0 {
		a.printf("Photos: %s\n", strings.Join(j.Photos, ", "))
	}
	a.printOptional("Share id", j.ShareID)
}

func (a *App) printAlbum(al archive.Album) {
	a.printf("Album %s\n", al.ID)
	a.printf("Title: %s\n", al.Title)
	if al.PeriodStart != nil || al.PeriodEnd != nil {
		a.printf("Period: %s ~ %s\n", archive.FormatDate(archive.Deref(al.PeriodStart)), archive.FormatDate(archive.Deref(al.PeriodEnd)))
	}
	if len(al.Tags) > 0 {
		a.printf("Tags: %s\n", strings.Join(al.Tags, ", "))
	}
	if cover := al.EffectiveCoverURL(); cover != "" {
		a.printf("Cover: %s\n", cover)
	}
	for i, p := range al.Photos {
		a.printf("  %d. %s\n", i+1, p)
	}
	a.printOptional("Memo", al.Memo)
	a.printOptional("Share id", al.ShareID)
}

func (a *App) printEvent(e archive.Event) {
	a.printf("Event %s\n", e.ID)
	a.printf("Title: %s\n", e.Title)
	a.printf("Type: %s\n", e.Type)
	a.printf("Date: %s\n", archive.FormatDate(e.Date))
	a.printOptional("Time", e.Time)
	a.printOptional("Location", e.Location)
	a.printOptional("Contact", e.Contact)
	if e.IsInvitation() {
		a.printOptional("Greeting", e.Greeting)
		a.printOptional("Venue", e.VenueInfo)
		a.printOptional("Transit", e.TransitInfo)
		a.printOptional("Account", e.AccountInfo)
	}
	if e.Description != "" {
		a.printf("\n%s\n\n", e.Description)
	}
	a.printOptional("Share id", e.ShareID)
	a.printGuestbook(e.Guestbook)
}

func (a *App) printGuestbook(entries []archive.GuestbookEntry) {
	if len(entries) == 0 {
		a.printf("Guestbook: empty\n")
		return
	}
	a.printf("Guestbook:\n")
	for _, g := range entries {
		a.printf("  [%s] %s: %s\n", g.ID, g.Name, g.Message)
	}
}

func (a *App) printFood(f archive.FoodMenu) {
	a.printf("Food %s\n", f.ID)
	a.printf("Name: %s [%s]\n", f.Name, f.Category)
	a.printOptional("Description", f.Description)
	if len(f.MainIngredients) > 0 {
		a.printf("Main: %s\n", strings.Join(f.MainIngredients, ", "))
	}
	if len(f.SubIngredients) > 0 {
		a.printf("Sub: %s\n", strings.Join(f.SubIngredients, ", "))
	}
	if f.CookingTime != nil {
		a.printf("Cooking time: %d min\n", *f.CookingTime)
	}
	if f.Difficulty != nil {
		a.printf("Difficulty: %s\n", *f.Difficulty)
	}
	if f.Rating != nil {
		a.printf("Rating: %.1f\n", *f.Rating)
	}
	a.printOptional("Recipe", f.Recipe)
	a.printOptional("Video", f.VideoURL)
	a.printOptional("Last eaten", f.LastEaten)
}
