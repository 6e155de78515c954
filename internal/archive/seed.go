package archive

import "time"

func seedFood(id, name string, category FoodCategory, description string, main, sub []string, minutes int, difficulty Difficulty, rating float64, stamp string) FoodMenu {
	if main == nil {
		main = []string{}
	}
	if sub == nil {
		sub = []string{}
	}
	return FoodMenu{
		ID:              id,
		Name:            name,
		Category:        category,
		Description:     Ptr(description),
		MainIngredients: main,
		SubIngredients:  sub,
		CookingTime:     Ptr(minutes),
		Difficulty:      Ptr(difficulty),
		Rating:          Ptr(rating),
		CreatedAt:       stamp,
		UpdatedAt:       stamp,
	}
}

// Seed returns the built-in document used whenever a backend has nothing
// stored yet or its content cannot be read. Every call returns a fresh
// value stamped with now.
func Seed(now time.Time) *Document {
	stamp := FormatTimestamp(now)

	return &Document{
		Journals: []Journal{
			{
				ID:        "journal-1",
				Title:     "따뜻했던 오후",
				Date:      "2026-01-15",
				Category:  JournalCategoryDate,
				Tags:      []string{"산책", "카페"},
				Location:  Ptr("서교동"),
				Summary:   Ptr("작은 산책과 커피 한 잔을 기록했어요."),
				Content:   "오후의 공기는 맑고 따뜻했어요. 천천히 걸으며 이야기를 나누고, 작은 카페에 들어가 창가에 앉았어요.",
				Photos:    []string{},
				IsPublic:  false,
				ShareID:   Ptr("share-journal-1"),
				CreatedAt: stamp,
				UpdatedAt: stamp,
			},
		},
		Albums: []Album{
			{
				ID:          "album-1",
				Title:       "봄 여행",
				PeriodStart: Ptr("2025-04-02"),
				PeriodEnd:   Ptr("2025-04-05"),
				Tags:        []string{"여행", "봄"},
				CoverURL:    Ptr(""),
				Photos:      []string{},
				Memo:        Ptr("가족과 함께한 봄 여행 사진을 모아두었어요."),
				IsPublic:    false,
				ShareID:     Ptr("share-album-1"),
				CreatedAt:   stamp,
				UpdatedAt:   stamp,
			},
		},
		Events: []Event{
			{
				ID:          "event-1",
				Title:       "청첩장",
				Type:        EventTypeInvitation,
				Date:        "2026-03-21",
				Time:        Ptr("14:00"),
				Location:    Ptr("서울 웨딩홀 3층"),
				Contact:     Ptr("010-0000-0000"),
				Greeting:    Ptr("소중한 분들을 초대합니다. 함께 축하해 주시면 감사하겠습니다."),
				VenueInfo:   Ptr("서울 웨딩홀 3층 라벤더홀"),
				TransitInfo: Ptr("지하철 2호선 강남역 5번 출구 도보 8분"),
				AccountInfo: Ptr("신랑 김OO 123-456-789 (OO은행)"),
				Description: "소중한 분들을 초대합니다. 편안한 마음으로 오셔서 함께 축하해 주세요.",
				CoverURL:    Ptr(""),
				Photos:      []string{},
				Guestbook: []GuestbookEntry{
					{ID: "guestbook-1", Name: "지인", Message: "결혼 진심으로 축하해요!", CreatedAt: stamp},
				},
				IsPublic:  true,
				ShareID:   Ptr("share-event-1"),
				CreatedAt: stamp,
				UpdatedAt: stamp,
			},
		},
		FoodMenus: []FoodMenu{
			seedFood("food-1", "김치찌개", FoodCategoryKorean, "매콤하고 시원한 김치찌개", []string{"김치", "돼지고기"}, []string{"두부", "대파", "양파"}, 30, DifficultyEasy, 5, stamp),
			seedFood("food-2", "파스타", FoodCategoryWestern, "크림 파스타", []string{"면", "크림"}, []string{"베이컨", "양파", "마늘"}, 20, DifficultyMedium, 4, stamp),
			seedFood("food-3", "라면", FoodCategoryQuick, "간단한 라면", []string{"라면"}, []string{"계란", "파", "김치"}, 5, DifficultyEasy, 3, stamp),
			seedFood("food-4", "치킨", FoodCategoryChicken, "바삭한 후라이드 치킨", nil, nil, 40, DifficultyHard, 5, stamp),
			seedFood("food-5", "피자", FoodCategoryWestern, "치즈 피자", []string{"도우", "치즈"}, []string{"토마토소스", "올리브오일"}, 25, DifficultyMedium, 4, stamp),
			seedFood("food-6", "초밥", FoodCategoryJapanese, "신선한 초밥", []string{"밥", "생선"}, []string{"와사비", "간장", "생강"}, 60, DifficultyHard, 5, stamp),
			seedFood("food-7", "짜장면", FoodCategoryChinese, "달콤한 짜장면", []string{"면", "춘장"}, []string{"양파", "돼지고기", "양배추"}, 25, DifficultyMedium, 4, stamp),
			seedFood("food-8", "햄버거", FoodCategoryFastFood, "맛있는 햄버거", []string{"번", "패티"}, []string{"야채", "소스", "치즈"}, 15, DifficultyEasy, 4, stamp),
			seedFood("food-9", "비빔밥", FoodCategoryKorean, "영양 만점 비빔밥", []string{"밥", "나물"}, []string{"고추장", "계란", "참기름"}, 20, DifficultyMedium, 5, stamp),
		},
		Settings:  DefaultSettings(),
		UpdatedAt: stamp,
	}
}

// Fallback is the seed as served by a backend that has nothing readable.
// Its updatedAt is empty, so it loses every timestamp comparison against a
// stamped copy and never overwrites real data during reconciliation.
func Fallback(now time.Time) *Document {
	doc := Seed(now)
	doc.UpdatedAt = ""
	return doc
}
