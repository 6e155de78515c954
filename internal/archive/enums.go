package archive

// JournalCategory classifies a journal entry.
type JournalCategory string

const (
	JournalCategoryDate      JournalCategory = "데이트"
	JournalCategoryRomance   JournalCategory = "연애"
	JournalCategoryParenting JournalCategory = "육아"
	JournalCategoryFamily    JournalCategory = "가족"
	JournalCategoryTravel    JournalCategory = "여행"
	JournalCategoryOther     JournalCategory = "기타"
)

// JournalCategories lists every category in display order.
var JournalCategories = []JournalCategory{
	JournalCategoryDate,
	JournalCategoryRomance,
	JournalCategoryParenting,
	JournalCategoryFamily,
	JournalCategoryTravel,
	JournalCategoryOther,
}

// Valid reports whether c is a known category.
func (c JournalCategory) Valid() bool {
	return contains(JournalCategories, c)
}

// EventType classifies an event.
type EventType string

const (
	EventTypeInvitation      EventType = "청첩장"
	EventTypeAnniversary     EventType = "기념일"
	EventTypeFirstBirthday   EventType = "돌잔치"
	EventTypeFamilyGathering EventType = "가족 모임"
	EventTypeOther           EventType = "기타"
)

// EventTypes lists every event type in display order.
var EventTypes = []EventType{
	EventTypeInvitation,
	EventTypeAnniversary,
	EventTypeFirstBirthday,
	EventTypeFamilyGathering,
	EventTypeOther,
}

func (t EventType) Valid() bool {
	return contains(EventTypes, t)
}

// FoodCategory classifies a food menu.
type FoodCategory string

const (
	FoodCategoryKorean   FoodCategory = "한식"
	FoodCategoryWestern  FoodCategory = "양식"
	FoodCategoryChinese  FoodCategory = "중식"
	FoodCategoryJapanese FoodCategory = "일식"
	FoodCategoryAsian    FoodCategory = "아시안"
	FoodCategoryChicken  FoodCategory = "치킨"
	FoodCategoryPizza    FoodCategory = "피자"
	FoodCategoryFastFood FoodCategory = "패스트푸드"
	FoodCategoryQuick    FoodCategory = "간편식"
	FoodCategoryOther    FoodCategory = "기타"
)

// FoodCategories lists every food category in display order.
var FoodCategories = []FoodCategory{
	FoodCategoryKorean,
	FoodCategoryWestern,
	FoodCategoryChinese,
	FoodCategoryJapanese,
	FoodCategoryAsian,
	FoodCategoryChicken,
	FoodCategoryPizza,
	FoodCategoryFastFood,
	FoodCategoryQuick,
	FoodCategoryOther,
}

func (c FoodCategory) Valid() bool {
	return contains(FoodCategories, c)
}

// Difficulty is the optional cooking difficulty of a food menu.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "쉬움"
	DifficultyMedium Difficulty = "보통"
	DifficultyHard   Difficulty = "어려움"
)

var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

func (d Difficulty) Valid() bool {
	return contains(Difficulties, d)
}

// Visibility is the default visibility applied to new entries.
type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityLink    Visibility = "link"
)

var Visibilities = []Visibility{VisibilityPrivate, VisibilityLink}

func (v Visibility) Valid() bool {
	return contains(Visibilities, v)
}

// Theme is the colour theme of the UI.
type Theme string

const (
	ThemeCream Theme = "cream"
	ThemeNavy  Theme = "navy"
	ThemeOlive Theme = "olive"
)

var Themes = []Theme{ThemeCream, ThemeNavy, ThemeOlive}

func (t Theme) Valid() bool {
	return contains(Themes, t)
}

func contains[T comparable](set []T, v T) bool {
	for _, item := range set {
		if item == v {
			return true
		}
	}
	return false
}
