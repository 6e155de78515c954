package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/lifearchive/internal/archive"
	"github.com/dmitrijs2005/lifearchive/internal/codec"
	"github.com/dmitrijs2005/lifearchive/internal/common"
)

func TestList(t *testing.T) {
	capturePrintln(t)
	ctx := context.Background()

	tests := []struct {
		args []string
		want string
	}{
		{args: nil, want: "journals: 1, albums: 1, events: 1, food menus: 9"},
		{args: nil, want: "album: "},
		{args: []string{"journals"}, want: "share-journal-1"},
		{args: []string{"albums"}, want: "photos"},
		{args: []string{"events"}, want: "guestbook: 1"},
		{args: []string{"food"}, want: "[한식]"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			app, out := newTestApp(newFakeArchive(), "")
			require.NoError(t, app.List(ctx, tt.args))
			assert.Contains(t, out.String(), tt.want)
		})
	}

	app, _ := newTestApp(newFakeArchive(), "")
	assert.ErrorIs(t, app.List(ctx, []string{"nope"}), errUsage)
}

func TestShow(t *testing.T) {
	capturePrintln(t)
	fa := newFakeArchive()
	doc := fa.Document()
	ctx := context.Background()

	ids := map[string]string{
		doc.Journals[0].ID:  "Journal ",
		doc.Albums[0].ID:    "Album ",
		doc.Events[0].ID:    "Guestbook:",
		doc.FoodMenus[0].ID: "Food ",
	}
	for id, want := range ids {
		app, out := newTestApp(fa, "")
		require.NoError(t, app.Show(ctx, []string{id}))
		assert.Contains(t, out.String(), want)
	}

	app, _ := newTestApp(fa, "")
	assert.Error(t, app.Show(ctx, []string{"missing"}))
	assert.ErrorIs(t, app.Show(ctx, nil), errUsage)
}

func TestAddJournal(t *testing.T) {
	capturePrintln(t)
	fa := newFakeArchive()
	input := strings.Join([]string{
		"봄 소풍",  // title
		"",      // date -> today
		"여행",    // category
		"봄, 소풍", // tags
		"",      // location
		"도시락을 먹었다",
		"",  // end of content
		"y", // share
	}, "\n") + "\n"
	app, _ := newTestApp(fa, input)

	require.NoError(t, app.Add(context.Background(), []string{"journal"}))

	doc := fa.Document()
	require.Len(t, doc.Journals, 2)
	j := doc.Journals[0]
	assert.Equal(t, "봄 소풍", j.Title)
	assert.Equal(t, "2026-01-15", j.Date)
	assert.Equal(t, archive.JournalCategoryTravel, j.Category)
	assert.Equal(t, []string{"봄", "소풍"}, j.Tags)
	assert.Nil(t, j.Location)
	assert.Equal(t, "도시락을 먹었다", j.Content)
	require.NotNil(t, j.ShareID)
	assert.True(t, strings.HasPrefix(*j.ShareID, archive.PrefixShare+"-"))
	assert.Equal(t, 1, fa.updates)
}

func TestAddEvent_DefaultVisibilityLink(t *testing.T) {
	capturePrintln(t)
	fa := newFakeArchive()
	fa.doc.Settings.DefaultVisibility = archive.VisibilityLink
	input := strings.Join([]string{"돌잔치", "돌잔치", "2026-03-01", "서울", "", ""}, "\n") + "\n"
	app, _ := newTestApp(fa, input)

	require.NoError(t, app.Add(context.Background(), []string{"event"}))

	e := fa.Document().Events[0]
	assert.Equal(t, archive.EventTypeFirstBirthday, e.Type)
	assert.Equal(t, "2026-03-01", e.Date)
	require.NotNil(t, e.Location)
	assert.Equal(t, "서울", *e.Location)
	assert.NotNil(t, e.ShareID)
	assert.NotNil(t, e.Guestbook)
}

func TestAddAlbumAndFood(t *testing.T) {
	capturePrintln(t)
	fa := newFakeArchive()
	ctx := context.Background()

	app, _ := newTestApp(fa, "제주\n2026-01-01\n\n바다\na.jpg, b.jpg\nn\n")
	require.NoError(t, app.Add(ctx, []string{"album"}))
	al := fa.Document().Albums[0]
	assert.Equal(t, "제주", al.Title)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, al.Photos)
	assert.Nil(t, al.PeriodEnd)
	assert.Nil(t, al.ShareID)

	app, _ = newTestApp(fa, "김밥\n\n김, 밥\n\n")
	require.NoError(t, app.Add(ctx, []string{"food"}))
	f := fa.Document().FoodMenus[0]
	assert.Equal(t, "김밥", f.Name)
	assert.Equal(t, archive.FoodCategoryOther, f.Category)
	assert.Equal(t, []string{"김", "밥"}, f.MainIngredients)
	assert.Equal(t, []string{}, f.SubIngredients)
}

func TestAdd_BadChoiceLeavesArchiveUntouched(t *testing.T) {
	capturePrintln(t)
	fa := newFakeArchive()
	app, _ := newTestApp(fa, "제목\n\n없는분류\n")

	assert.Error(t, app.Add(context.Background(), []string{"journal"}))
	assert.Zero(t, fa.updates)
	assert.ErrorIs(t, app.Add(context.Background(), []string{"photo"}), errUsage)
}

func TestDelete_RemovesExactlyOne(t *testing.T) {
	capturePrintln(t)
	fa := newFakeArchive()
	doc := fa.Document()
	target := doc.FoodMenus[3].ID
	app, _ := newTestApp(fa, "")

	require.NoError(t, app.Delete(context.Background(), []string{target}))

	got := fa.Document().FoodMenus
	require.Len(t, got, len(doc.FoodMenus)-1)
	want := append(append([]archive.FoodMenu{}, doc.FoodMenus[:3]...), doc.FoodMenus[4:]...)
	assert.Equal(t, want, got)
	assert.Len(t, fa.Document().Journals, 1)
}

func TestDelete_SharedIDAcrossCollections(t *testing.T) {
	capturePrintln(t)
	fa := newFakeArchive()
	fa.doc.FoodMenus[0].ID = fa.doc.Journals[0].ID
	foods := len(fa.doc.FoodMenus)
	app, _ := newTestApp(fa, "")

	require.NoError(t, app.Delete(context.Background(), []string{"journal-1"}))

	doc := fa.Document()
	assert.Empty(t, doc.Journals)
	assert.Len(t, doc.FoodMenus, foods)
	assert.Equal(t, "journal-1", doc.FoodMenus[0].ID)
}

func TestDelete_UnknownIDDoesNotUpdate(t *testing.T) {
	capturePrintln(t)
	fa := newFakeArchive()
	app, _ := newTestApp(fa, "")

	assert.Error(t, app.Delete(context.Background(), []string{"nope"}))
	assert.Zero(t, fa.updates)
}

func TestShare(t *testing.T) {
	capturePrintln(t)
	fa := newFakeArchive()
	app, out := newTestApp(fa, "")
	ctx := context.Background()

	require.NoError(t, app.Share(ctx, []string{"share-album-1"}))
	assert.Contains(t, out.String(), "Album ")

	err := app.Share(ctx, []string{"share-unknown"})
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestGuestbook_AppendsAnonymousEntry(t *testing.T) {
	capturePrintln(t)
	fa := newFakeArchive()
	before := fa.Document().Events[0].Guestbook
	app, out := newTestApp(fa, "\n  축하해요  \n")

	require.NoError(t, app.Guestbook(context.Background(), []string{"share-event-1"}))

	gb := fa.Document().Events[0].Guestbook
	require.Len(t, gb, len(before)+1)
	last := gb[len(gb)-1]
	assert.Equal(t, archive.AnonymousName, last.Name)
	assert.Equal(t, "축하해요", last.Message)
	assert.Equal(t, before, gb[:len(before)])
	assert.Contains(t, out.String(), "Signed as 익명")
}

func TestGuestbook_Rejections(t *testing.T) {
	capturePrintln(t)
	fa := newFakeArchive()
	ctx := context.Background()

	app, _ := newTestApp(fa, "")
	assert.Error(t, app.Guestbook(ctx, []string{"share-journal-1"}))

	app, _ = newTestApp(fa, "name\n   \n")
	assert.ErrorIs(t, app.Guestbook(ctx, []string{"share-event-1"}), archive.ErrEmptyMessage)
	assert.Zero(t, fa.updates)
}

func TestSearch(t *testing.T) {
	capturePrintln(t)
	fa := newFakeArchive()
	ctx := context.Background()
	doc := fa.Document()

	app, out := newTestApp(fa, "")
	require.NoError(t, app.Search(ctx, []string{"-type", "이벤트"}))
	assert.Contains(t, out.String(), doc.Events[0].ID)
	assert.NotContains(t, out.String(), doc.Journals[0].ID)

	app, out = newTestApp(fa, "")
	require.NoError(t, app.Search(ctx, []string{"zzzz-no-match"}))
	assert.Contains(t, out.String(), "No results")

	app, _ = newTestApp(fa, "")
	assert.ErrorIs(t, app.Search(ctx, []string{"-bogus"}), errUsage)
}

func TestPickFood(t *testing.T) {
	capturePrintln(t)
	fa := newFakeArchive()
	ctx := context.Background()
	doc := fa.Document()

	app, out := newTestApp(fa, "")
	app.intn = func(n int) int { return n - 1 }
	require.NoError(t, app.PickFood(ctx, nil))
	assert.Contains(t, out.String(), doc.FoodMenus[len(doc.FoodMenus)-1].Name)

	app, _ = newTestApp(fa, "")
	assert.Error(t, app.PickFood(ctx, []string{"우주식"}))

	empty := newFakeArchive()
	empty.doc.FoodMenus = nil
	app, _ = newTestApp(empty, "")
	assert.Error(t, app.PickFood(ctx, nil))
}

func TestThemeAndVisibility(t *testing.T) {
	capturePrintln(t)
	fa := newFakeArchive()
	app, _ := newTestApp(fa, "")
	ctx := context.Background()

	require.NoError(t, app.Theme(ctx, []string{"olive"}))
	require.NoError(t, app.Visibility(ctx, []string{"link"}))
	assert.ErrorIs(t, app.Theme(ctx, []string{"pink"}), errUsage)
	assert.ErrorIs(t, app.Visibility(ctx, []string{"public"}), errUsage)

	s := fa.Document().Settings
	assert.Equal(t, archive.ThemeOlive, s.Theme)
	assert.Equal(t, archive.VisibilityLink, s.DefaultVisibility)
	assert.Equal(t, 2, fa.updates)
}

func TestExportImport(t *testing.T) {
	capturePrintln(t)
	fa := newFakeArchive()
	dir := t.TempDir()
	ctx := context.Background()

	app, out := newTestApp(fa, "")
	require.NoError(t, app.Export(ctx, []string{dir}))
	path := filepath.Join(dir, codec.ExportFileName(testNow))
	assert.Contains(t, out.String(), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"journals\""))

	other := newFakeArchive()
	other.doc = archive.Fallback(testNow)
	other.doc.Journals = nil
	app, out = newTestApp(other, "")
	require.NoError(t, app.Import(ctx, []string{path}))
	assert.Contains(t, out.String(), "Imported")
	assert.Len(t, other.Document().Journals, 1)
}

func TestImport_InvalidJSONLeavesArchive(t *testing.T) {
	capturePrintln(t)
	fa := newFakeArchive()
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))
	app, _ := newTestApp(fa, "")

	err := app.Import(context.Background(), []string{path})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrParse))
	assert.Zero(t, fa.updates)
}

func TestPullPushRefreshStatus(t *testing.T) {
	capturePrintln(t)
	fa := newFakeArchive()
	fa.remote = archive.Fallback(testNow)
	fa.remote.Journals = []archive.Journal{}
	app, out := newTestApp(fa, "")
	ctx := context.Background()

	require.NoError(t, app.Pull(ctx))
	assert.Empty(t, fa.Document().Journals)

	require.NoError(t, app.Push(ctx))
	assert.Equal(t, 1, fa.pushes)

	require.NoError(t, app.Refresh(ctx))
	require.NoError(t, app.Status(ctx))
	assert.Contains(t, out.String(), "sync: reconciled")
	assert.Contains(t, out.String(), "http://127.0.0.1:8080 (unknown)")

	fa.pullErr = errors.New("offline")
	fa.pushErr = errors.New("offline")
	assert.Error(t, app.Pull(ctx))
	assert.Error(t, app.Push(ctx))
}

func TestEdit_Journal(t *testing.T) {
	capturePrintln(t)
	fa := newFakeArchive()
	before := fa.Document().Journals[0]
	input := strings.Join([]string{
		"새 제목", // title
		"",     // date kept
		"",     // category kept
		"a, b", // tags
		"-",    // location cleared
		"",     // content kept
	}, "\n") + "\n"
	app, out := newTestApp(fa, input)

	require.NoError(t, app.Edit(context.Background(), []string{"journal-1"}))

	doc := fa.Document()
	require.Len(t, doc.Journals, 1)
	j := doc.Journals[0]
	assert.Equal(t, "새 제목", j.Title)
	assert.Equal(t, before.Date, j.Date)
	assert.Equal(t, before.Category, j.Category)
	assert.Equal(t, []string{"a", "b"}, j.Tags)
	assert.Nil(t, j.Location)
	assert.Equal(t, before.Content, j.Content)
	assert.Equal(t, before.ShareID, j.ShareID)
	assert.Equal(t, archive.FormatTimestamp(testNow), j.UpdatedAt)
	assert.Equal(t, 1, fa.updates)
	assert.Contains(t, out.String(), "Updated journal-1")
}

func TestEdit_FoodKeepsPosition(t *testing.T) {
	capturePrintln(t)
	fa := newFakeArchive()
	doc := fa.Document()
	target := doc.FoodMenus[2]
	app, _ := newTestApp(fa, "\n양식\n\n\n\n")

	require.NoError(t, app.Edit(context.Background(), []string{target.ID}))

	got := fa.Document().FoodMenus
	require.Len(t, got, len(doc.FoodMenus))
	assert.Equal(t, target.ID, got[2].ID)
	assert.Equal(t, target.Name, got[2].Name)
	assert.Equal(t, archive.FoodCategory("양식"), got[2].Category)
	assert.Equal(t, doc.FoodMenus[3], got[3])
}

func TestEdit_Rejections(t *testing.T) {
	capturePrintln(t)
	fa := newFakeArchive()
	ctx := context.Background()

	app, _ := newTestApp(fa, "")
	assert.Error(t, app.Edit(ctx, []string{"missing"}))
	assert.ErrorIs(t, app.Edit(ctx, nil), errUsage)

	app, _ = newTestApp(fa, "\n\n없는분류\n")
	assert.Error(t, app.Edit(ctx, []string{"journal-1"}))
	assert.Zero(t, fa.updates)
}

func TestPhotos_Move(t *testing.T) {
	capturePrintln(t)
	fa := newFakeArchive()
	fa.doc.Albums[0].Photos = []string{"a.jpg", "b.jpg", "c.jpg"}
	app, _ := newTestApp(fa, "")
	ctx := context.Background()

	require.NoError(t, app.Photos(ctx, []string{"album-1", "move", "3", "1"}))
	assert.Equal(t, []string{"c.jpg", "a.jpg", "b.jpg"}, fa.Document().Albums[0].Photos)
	assert.Equal(t, 1, fa.updates)

	assert.Error(t, app.Photos(ctx, []string{"album-1", "move", "0", "1"}))
	assert.Error(t, app.Photos(ctx, []string{"album-1", "move", "1", "4"}))
	assert.Error(t, app.Photos(ctx, []string{"nope", "move", "1", "2"}))
	assert.ErrorIs(t, app.Photos(ctx, []string{"album-1", "swap", "1", "2"}), errUsage)
	assert.ErrorIs(t, app.Photos(ctx, []string{"album-1", "move", "x", "2"}), errUsage)
	assert.Equal(t, 1, fa.updates)
}

func TestGuestbook_DeleteEntry(t *testing.T) {
	capturePrintln(t)
	fa := newFakeArchive()
	entry, err := archive.NewGuestbookEntry("친구", "축하해", testNow)
	require.NoError(t, err)
	fa.doc.Events[0].Guestbook = append(fa.doc.Events[0].Guestbook, entry)
	app, _ := newTestApp(fa, "")
	ctx := context.Background()

	require.NoError(t, app.Guestbook(ctx, []string{"delete", "event-1", "guestbook-1"}))

	gb := fa.Document().Events[0].Guestbook
	require.Len(t, gb, 1)
	assert.Equal(t, entry, gb[0])

	err = app.Guestbook(ctx, []string{"delete", "event-1", "guestbook-1"})
	assert.True(t, errors.Is(err, common.ErrNotFound))
	err = app.Guestbook(ctx, []string{"delete", "event-9", entry.ID})
	assert.True(t, errors.Is(err, common.ErrNotFound))
	assert.Equal(t, 1, fa.updates)
}

func TestReset(t *testing.T) {
	capturePrintln(t)
	fa := newFakeArchive()
	ctx := context.Background()

	app, out := newTestApp(fa, "n\n")
	require.NoError(t, app.Reset(ctx))
	assert.Zero(t, app.local.(*fakeResetter).calls)

	app, out = newTestApp(fa, "y\n")
	require.NoError(t, app.Reset(ctx))
	assert.Equal(t, 1, app.local.(*fakeResetter).calls)
	assert.Contains(t, out.String(), "Local archive reset")

	app, _ = newTestApp(fa, "y\n")
	app.local = &fakeResetter{err: errors.New("disk full")}
	assert.Error(t, app.Reset(ctx))
}

func TestStatusAndImport_WarnDuplicateShareIDs(t *testing.T) {
	capturePrintln(t)
	fa := newFakeArchive()
	fa.doc.Albums[0].ShareID = archive.Ptr("share-journal-1")
	app, out := newTestApp(fa, "")

	require.NoError(t, app.Status(context.Background()))
	assert.Contains(t, out.String(), "duplicate share ids: share-journal-1")

	clean := newFakeArchive()
	app, out = newTestApp(clean, "")
	require.NoError(t, app.Status(context.Background()))
	assert.NotContains(t, out.String(), "duplicate")
}
