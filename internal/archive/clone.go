package archive

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Clone returns a deep copy of j.
func (j Journal) Clone() Journal {
	j.Tags = cloneStrings(j.Tags)
	j.Photos = cloneStrings(j.Photos)
	j.Location = clonePtr(j.Location)
	j.Summary = clonePtr(j.Summary)
	j.ShareID = clonePtr(j.ShareID)
	return j
}

func (a Album) Clone() Album {
	a.Tags = cloneStrings(a.Tags)
	a.Photos = cloneStrings(a.Photos)
	a.PeriodStart = clonePtr(a.PeriodStart)
	a.PeriodEnd = clonePtr(a.PeriodEnd)
	a.CoverURL = clonePtr(a.CoverURL)
	a.Memo = clonePtr(a.Memo)
	a.ShareID = clonePtr(a.ShareID)
	return a
}

func (e Event) Clone() Event {
	e.Time = clonePtr(e.Time)
	e.Location = clonePtr(e.Location)
	e.Contact = clonePtr(e.Contact)
	e.Greeting = clonePtr(e.Greeting)
	e.VenueInfo = clonePtr(e.VenueInfo)
	e.TransitInfo = clonePtr(e.TransitInfo)
	e.AccountInfo = clonePtr(e.AccountInfo)
	e.CoverURL = clonePtr(e.CoverURL)
	e.Photos = cloneStrings(e.Photos)
	e.ShareID = clonePtr(e.ShareID)
	if e.Guestbook != nil {
		gb := make([]GuestbookEntry, len(e.Guestbook))
		copy(gb, e.Guestbook)
		e.Guestbook = gb
	}
	return e
}

func (f FoodMenu) Clone() FoodMenu {
	f.Description = clonePtr(f.Description)
	f.MainIngredients = cloneStrings(f.MainIngredients)
	f.SubIngredients = cloneStrings(f.SubIngredients)
	f.Recipe = clonePtr(f.Recipe)
	f.VideoURL = clonePtr(f.VideoURL)
	f.ThumbnailURL = clonePtr(f.ThumbnailURL)
	f.CookingTime = clonePtr(f.CookingTime)
	f.Difficulty = clonePtr(f.Difficulty)
	f.Rating = clonePtr(f.Rating)
	f.LastEaten = clonePtr(f.LastEaten)
	return f
}

// Clone returns a deep copy of d. Mutating the copy never affects d.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := &Document{Settings: d.Settings, UpdatedAt: d.UpdatedAt}
	if d.Journals != nil {
		out.Journals = make([]Journal, len(d.Journals))
		for i, j := range d.Journals {
			out.Journals[i] = j.Clone()
		}
	}
	if d.Albums != nil {
		out.Albums = make([]Album, len(d.Albums))
		for i, a := range d.Albums {
			out.Albums[i] = a.Clone()
		}
	}
	if d.Events != nil {
		out.Events = make([]Event, len(d.Events))
		for i, e := range d.Events {
			out.Events[i] = e.Clone()
		}
	}
	if d.FoodMenus != nil {
		out.FoodMenus = make([]FoodMenu, len(d.FoodMenus))
		for i, f := range d.FoodMenus {
			out.FoodMenus[i] = f.Clone()
		}
	}
	return out
}
