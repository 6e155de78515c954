package archive

// Journal is a dated diary entry.
type Journal struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Date      string          `json:"date"`
	Category  JournalCategory `json:"category"`
	Tags      []string        `json:"tags"`
	Location  *string         `json:"location,omitempty"`
	Summary   *string         `json:"summary,omitempty"`
	Content   string          `json:"content"`
	Photos    []string        `json:"photos"`
	IsPublic  bool            `json:"isPublic"`
	ShareID   *string         `json:"shareId,omitempty"`
	CreatedAt string          `json:"createdAt"`
	UpdatedAt string          `json:"updatedAt"`
}

// Album is an ordered, user-reorderable collection of photos.
type Album struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	PeriodStart *string  `json:"periodStart,omitempty"`
	PeriodEnd   *string  `json:"periodEnd,omitempty"`
	Tags        []string `json:"tags"`
	CoverURL    *string  `json:"coverUrl,omitempty"`
	Photos      []string `json:"photos"`
	Memo        *string  `json:"memo,omitempty"`
	IsPublic    bool     `json:"isPublic"`
	ShareID     *string  `json:"shareId,omitempty"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// GuestbookEntry is a message left on a shared event page.
type GuestbookEntry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

// Event is a calendar-style record. Greeting, VenueInfo, TransitInfo and
// AccountInfo are only shown for invitations.
type Event struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Type        EventType        `json:"type"`
	Date        string           `json:"date"`
	Time        *string          `json:"time,omitempty"`
	Location    *string          `json:"location,omitempty"`
	Contact     *string          `json:"contact,omitempty"`
	Greeting    *string          `json:"greeting,omitempty"`
	VenueInfo   *string          `json:"venueInfo,omitempty"`
	TransitInfo *string          `json:"transitInfo,omitempty"`
	AccountInfo *string          `json:"accountInfo,omitempty"`
	Description string           `json:"description"`
	CoverURL    *string          `json:"coverUrl,omitempty"`
	Photos      []string         `json:"photos"`
	Guestbook   []GuestbookEntry `json:"guestbook"`
	IsPublic    bool             `json:"isPublic"`
	ShareID     *string          `json:"shareId,omitempty"`
	CreatedAt   string           `json:"createdAt"`
	UpdatedAt   string           `json:"updatedAt"`
}

// FoodMenu is an entry of the food-menu picker.
type FoodMenu struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Category        FoodCategory `json:"category"`
	Description     *string      `json:"description,omitempty"`
	MainIngredients []string     `json:"mainIngredients"`
	SubIngredients  []string     `json:"subIngredients"`
	Recipe          *string      `json:"recipe,omitempty"`
	VideoURL        *string      `json:"videoUrl,omitempty"`
	ThumbnailURL    *string      `json:"thumbnailUrl,omitempty"`
	CookingTime     *int         `json:"cookingTime,omitempty"`
	Difficulty      *Difficulty  `json:"difficulty,omitempty"`
	Rating          *float64     `json:"rating,omitempty"`
	LastEaten       *string      `json:"lastEaten,omitempty"`
	CreatedAt       string       `json:"createdAt"`
	UpdatedAt       string       `json:"updatedAt"`
}

// Settings holds the archive-wide preferences.
type Settings struct {
	DefaultVisibility Visibility `json:"defaultVisibility"`
	Theme             Theme      `json:"theme"`
}

// DefaultSettings returns the settings used when none are stored.
func DefaultSettings() Settings {
	return Settings{DefaultVisibility: VisibilityPrivate, Theme: ThemeCream}
}

// Document is the root aggregate. UpdatedAt is the only signal used to pick
// between a local and a remote copy.
type Document struct {
	Journals  []Journal  `json:"journals"`
	Albums    []Album    `json:"albums"`
	Events    []Event    `json:"events"`
	FoodMenus []FoodMenu `json:"foodMenus"`
	Settings  Settings   `json:"settings"`
	UpdatedAt string     `json:"updatedAt"`
}

// Ptr returns a pointer to v. Handy for optional fields.
func Ptr[T any](v T) *T {
	return &v
}

// Deref returns *p or the zero value when p is nil.
func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// EffectiveCoverURL returns the album cover, falling back to the first photo.
func (a Album) EffectiveCoverURL() string {
	if a.CoverURL != nil && *a.CoverURL != "" {
		return *a.CoverURL
	}
	if len(a.Photos) > 0 {
		return a.Photos[0]
	}
	return ""
}

// EffectiveCoverURL returns the event cover, falling back to the first photo.
func (e Event) EffectiveCoverURL() string {
	if e.CoverURL != nil && *e.CoverURL != "" {
		return *e.CoverURL
	}
	if len(e.Photos) > 0 {
		return e.Photos[0]
	}
	return ""
}

// IsInvitation reports whether the invitation-only fields apply.
func (e Event) IsInvitation() bool {
	return e.Type == EventTypeInvitation
}
