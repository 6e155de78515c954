package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lifearchive/internal/archive"
)

// Add prompts for a new entity of the given kind and prepends it to its
// collection.
func (a *App) Add(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: add <journal|album|event|food>")
		return errUsage
	}

	var (
		mutate func(doc *archive.Document)
		id     string
		err    error
	)

	switch args[0] {
	case kindJournal:
		var j archive.Journal
		j, err = a.inputJournal()
		id = j.ID
		mutate = func(doc *archive.Document) { doc.Journals = archive.Prepend(doc.Journals, j) }
	case kindAlbum:
		var al archive.Album
		al, err = a.inputAlbum()
		id = al.ID
		mutate = func(doc *archive.Document) { doc.Albums = archive.Prepend(doc.Albums, al) }
	case kindEvent:
		var e archive.Event
		e, err = a.inputEvent()
		id = e.ID
		mutate = func(doc *archive.Document) { doc.Events = archive.Prepend(doc.Events, e) }
	case kindFood:
		var f archive.FoodMenu
		f, err = a.inputFood()
		id = f.ID
		mutate = func(doc *archive.Document) { doc.FoodMenus = archive.Prepend(doc.FoodMenus, f) }
	default:
		printlnFn("Usage: add <journal|album|event|food>")
		return errUsage
	}
	if err != nil {
		return err
	}

	a.archive.Update(ctx, mutate)
	a.printf("Added %s\n", id)
	return nil
}

func (a *App) today() string {
	return a.now().Format("2006-01-02")
}

// withShare asks for a share link when the archive default is "link".
func (a *App) withShare() (bool, error) {
	if a.document().Settings.DefaultVisibility == archive.VisibilityLink {
		return true, nil
	}
	return GetYesNo(a.reader, "Create a share link?", a.out)
}

func (a *App) inputJournal() (archive.Journal, error) {
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return archive.Journal{}, err
	}
	date, err := GetSimpleText(a.reader, fmt.Sprintf("Date (default %s)", a.today()), a.out)
	if err != nil {
		return archive.Journal{}, err
	}
	if date == "" {
		date = a.today()
	}
	category, err := GetChoice(a.reader, "Category", names(archive.JournalCategories), string(archive.JournalCategoryOther), a.out)
	if err != nil {
		return archive.Journal{}, err
	}
	tags, err := GetList(a.reader, "Tags", a.out)
	if err != nil {
		return archive.Journal{}, err
	}
	location, err := GetOptional(a.reader, "Location", a.out)
	if err != nil {
		return archive.Journal{}, err
	}
	content, err := GetMultiline(a.reader, "Content", a.out)
	if err != nil {
		return archive.Journal{}, err
	}
	share, err := a.withShare()
	if err != nil {
		return archive.Journal{}, err
	}

	j := archive.NewJournal(title, date, a.now(), share)
	j.Category = archive.JournalCategory(category)
	j.Tags = tags
	j.Location = location
	j.Content = content
	j.IsPublic = share
	return j, nil
}

func (a *App) inputAlbum() (archive.Album, error) {
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return archive.Album{}, err
	}
	start, err := GetOptional(a.reader, "Period start (YYYY-MM-DD)", a.out)
	if err != nil {
		return archive.Album{}, err
	}
	end, err := GetOptional(a.reader, "Period end (YYYY-MM-DD)", a.out)
	if err != nil {
		return archive.Album{}, err
	}
	tags, err := GetList(a.reader, "Tags", a.out)
	if err != nil {
		return archive.Album{}, err
	}
	photos, err := GetList(a.reader, "Photo URLs", a.out)
	if err != nil {
		return archive.Album{}, err
	}
	share, err := a.withShare()
	if err != nil {
		return archive.Album{}, err
	}

	al := archive.NewAlbum(title, a.now(), share)
	al.PeriodStart = start
	al.PeriodEnd = end
	al.Tags = tags
	al.Photos = photos
	al.IsPublic = share
	return al, nil
}

func (a *App) inputEvent() (archive.Event, error) {
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return archive.Event{}, err
	}
	typ, err := GetChoice(a.reader, "Type", names(archive.EventTypes), string(archive.EventTypeOther), a.out)
	if err != nil {
		return archive.Event{}, err
	}
	date, err := GetSimpleText(a.reader, fmt.Sprintf("Date (default %s)", a.today()), a.out)
	if err != nil {
		return archive.Event{}, err
	}
	if date == "" {
		date = a.today()
	}
	location, err := GetOptional(a.reader, "Location", a.out)
	if err != nil {
		return archive.Event{}, err
	}
	description, err := GetMultiline(a.reader, "Description", a.out)
	if err != nil {
		return archive.Event{}, err
	}
	share, err := a.withShare()
	if err != nil {
		return archive.Event{}, err
	}

	e := archive.NewEvent(title, archive.EventType(typ), date, a.now(), share)
	e.Location = location
	e.Description = description
	e.IsPublic = share
	return e, nil
}

func (a *App) inputFood() (archive.FoodMenu, error) {
	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return archive.FoodMenu{}, err
	}
	category, err := GetChoice(a.reader, "Category", names(archive.FoodCategories), string(archive.FoodCategoryOther), a.out)
	if err != nil {
		return archive.FoodMenu{}, err
	}
	main, err := GetList(a.reader, "Main ingredients", a.out)
	if err != nil {
		return archive.FoodMenu{}, err
	}
	sub, err := GetList(a.reader, "Sub ingredients", a.out)
	if err != nil {
		return archive.FoodMenu{}, err
	}

	f := archive.NewFoodMenu(name, archive.FoodCategory(category), a.now())
	f.MainIngredients = main
	f.SubIngredients = sub
	return f, nil
}

// Delete removes the entity with the given id from the collection that
// holds it.
func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: delete <id>")
		return errUsage
	}
	id := args[0]

	kind := a.locate(id)
	if kind == "" {
		return fmt.Errorf("no entry with id %q", id)
	}

	a.archive.Update(ctx, func(doc *archive.Document) {
		switch kind {
		case kindJournal:
			doc.Journals, _ = archive.RemoveByID(doc.Journals, id)
		case kindAlbum:
			doc.Albums, _ = archive.RemoveByID(doc.Albums, id)
		case kindEvent:
			doc.Events, _ = archive.RemoveByID(doc.Events, id)
		case kindFood:
			doc.FoodMenus, _ = archive.RemoveByID(doc.FoodMenus, id)
		}
	})

	a.printf("Deleted %s\n", id)
	return nil
}

const (
	kindJournal = "journal"
	kindAlbum   = "album"
	kindEvent   = "event"
	kindFood    = "food"
)

// locate returns the kind of the first collection holding id, in list
// order, or "" when no entity has it.
func (a *App) locate(id string) string {
	doc := a.document()
	if _, ok := archive.FindByID(doc.Journals, id); ok {
		return kindJournal
	}
	if _, ok := archive.FindByID(doc.Albums, id); ok {
		return kindAlbum
	}
	if _, ok := archive.FindByID(doc.Events, id); ok {
		return kindEvent
	}
	if _, ok := archive.FindByID(doc.FoodMenus, id); ok {
		return kindFood
	}
	return ""
}
