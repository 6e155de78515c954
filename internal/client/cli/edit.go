package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/lifearchive/internal/archive"
)

// Edit prompts for the main fields of an entity, showing the current values,
// and replaces it in place.
func (a *App) Edit(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: edit <id>")
		return errUsage
	}
	id := args[0]
	doc := a.document()
	stamp := archive.FormatTimestamp(a.now())

	var mutate func(doc *archive.Document)
	switch a.locate(id) {
	case kindJournal:
		j, _ := archive.FindByID(doc.Journals, id)
		if err := a.editJournal(&j); err != nil {
			return err
		}
		j.UpdatedAt = stamp
		mutate = func(doc *archive.Document) { doc.Journals, _ = archive.ReplaceByID(doc.Journals, j) }
	case kindAlbum:
		al, _ := archive.FindByID(doc.Albums, id)
		if err := a.editAlbum(&al); err != nil {
			return err
		}
		al.UpdatedAt = stamp
		mutate = func(doc *archive.Document) { doc.Albums, _ = archive.ReplaceByID(doc.Albums, al) }
	case kindEvent:
		e, _ := archive.FindByID(doc.Events, id)
		if err := a.editEvent(&e); err != nil {
			return err
		}
		e.UpdatedAt = stamp
		mutate = func(doc *archive.Document) { doc.Events, _ = archive.ReplaceByID(doc.Events, e) }
	case kindFood:
		f, _ := archive.FindByID(doc.FoodMenus, id)
		if err := a.editFood(&f); err != nil {
			return err
		}
		f.UpdatedAt = stamp
		mutate = func(doc *archive.Document) { doc.FoodMenus, _ = archive.ReplaceByID(doc.FoodMenus, f) }
	default:
		return fmt.Errorf("no entry with id %q", id)
	}

	a.archive.Update(ctx, mutate)
	a.printf("Updated %s\n", id)
	return nil
}

func (a *App) editJournal(j *archive.Journal) (err error) {
	if j.Title, err = GetDefault(a.reader, "Title", j.Title, a.out); err != nil {
		return err
	}
	if j.Date, err = GetDefault(a.reader, "Date", j.Date, a.out); err != nil {
		return err
	}
	category, err := GetChoice(a.reader, "Category", names(archive.JournalCategories), string(j.Category), a.out)
	if err != nil {
		return err
	}
	j.Category = archive.JournalCategory(category)
	if j.Tags, err = GetListDefault(a.reader, "Tags", j.Tags, a.out); err != nil {
		return err
	}
	if j.Location, err = GetOptionalDefault(a.reader, "Location", j.Location, a.out); err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Content (blank keeps the current text)", a.out)
	if err != nil {
		return err
	}
	if content != "" {
		j.Content = content
	}
	return nil
}

func (a *App) editAlbum(al *archive.Album) (err error) {
	if al.Title, err = GetDefault(a.reader, "Title", al.Title, a.out); err != nil {
		return err
	}
	if al.PeriodStart, err = GetOptionalDefault(a.reader, "Period start", al.PeriodStart, a.out); err != nil {
		return err
	}
	if al.PeriodEnd, err = GetOptionalDefault(a.reader, "Period end", al.PeriodEnd, a.out); err != nil {
		return err
	}
	if al.Tags, err = GetListDefault(a.reader, "Tags", al.Tags, a.out); err != nil {
		return err
	}
	if al.CoverURL, err = GetOptionalDefault(a.reader, "Cover URL", al.CoverURL, a.out); err != nil {
		return err
	}
	al.Memo, err = GetOptionalDefault(a.reader, "Memo", al.Memo, a.out)
	return err
}

func (a *App) editEvent(e *archive.Event) (err error) {
	if e.Title, err = GetDefault(a.reader, "Title", e.Title, a.out); err != nil {
		return err
	}
	typ, err := GetChoice(a.reader, "Type", names(archive.EventTypes), string(e.Type), a.out)
	if err != nil {
		return err
	}
	e.Type = archive.EventType(typ)
	if e.Date, err = GetDefault(a.reader, "Date", e.Date, a.out); err != nil {
		return err
	}
	if e.Time, err = GetOptionalDefault(a.reader, "Time", e.Time, a.out); err != nil {
		return err
	}
	if e.Location, err = GetOptionalDefault(a.reader, "Location", e.Location, a.out); err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Description (blank keeps the current text)", a.out)
	if err != nil {
		return err
	}
	if description != "" {
		e.Description = description
	}
	return nil
}

func (a *App) editFood(f *archive.FoodMenu) (err error) {
	if f.Name, err = GetDefault(a.reader, "Name", f.Name, a.out); err != nil {
		return err
	}
	category, err := GetChoice(a.reader, "Category", names(archive.FoodCategories), string(f.Category), a.out)
	if err != nil {
		return err
	}
	f.Category = archive.FoodCategory(category)
	if f.MainIngredients, err = GetListDefault(a.reader, "Main ingredients", f.MainIngredients, a.out); err != nil {
		return err
	}
	if f.SubIngredients, err = GetListDefault(a.reader, "Sub ingredients", f.SubIngredients, a.out); err != nil {
		return err
	}
	f.Recipe, err = GetOptionalDefault(a.reader, "Recipe", f.Recipe, a.out)
	return err
}

// Photos reorders the photos of an album. Positions are 1-based, as shown
// by show.
func (a *App) Photos(ctx context.Context, args []string) error {
	if len(args) != 4 || args[1] != "move" {
		printlnFn("Usage: photos <albumId> move <from> <to>")
		return errUsage
	}
	from, errFrom := strconv.Atoi(args[2])
	to, errTo := strconv.Atoi(args[3])
	if errFrom != nil || errTo != nil {
		printlnFn("Usage: photos <albumId> move <from> <to>")
		return errUsage
	}

	al, ok := archive.FindByID(a.document().Albums, args[0])
	if !ok {
		return fmt.Errorf("no album with id %q", args[0])
	}
	if from < 1 || from > len(al.Photos) || to < 1 || to > len(al.Photos) {
		return fmt.Errorf("album %s has %d photos", al.ID, len(al.Photos))
	}

	al.Photos = archive.MoveItem(al.Photos, from-1, to-1)
	al.UpdatedAt = archive.FormatTimestamp(a.now())
	a.archive.Update(ctx, func(doc *archive.Document) { doc.Albums, _ = archive.ReplaceByID(doc.Albums, al) })

	a.printf("Moved photo %d to %d\n", from, to)
	return nil
}
