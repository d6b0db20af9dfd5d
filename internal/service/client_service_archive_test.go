package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/char-archive/internal/logger"
	"github.com/MKhiriev/char-archive/internal/mock"
	"github.com/MKhiriev/char-archive/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedSaveTime = time.UnixMilli(1710000000000)

func newTestArchiveSvc(t *testing.T) (*clientArchiveService, *mock.MockClientCharacterService, *mock.MockNotifier) {
	t.Helper()
	ctrl := gomock.NewController(t)
	characters := mock.NewMockClientCharacterService(ctrl)
	notifier := mock.NewMockNotifier(ctrl)

	svc := NewClientArchiveService(characters, notifier, logger.Nop()).(*clientArchiveService)
	svc.now = func() time.Time { return fixedSaveTime }
	t.Cleanup(svc.Wait)
	return svc, characters, notifier
}

func ashitaRecord() models.Character {
	return models.Character{
		ID:       5,
		Slug:     "ashita",
		Name:     "Ashita Kazumi",
		Role:     models.RoleProtagonist,
		ImageURL: testPublicBase + "ashita/main-1.png",
		IconURL:  testPublicBase + "ashita/icon-1.png",
		Gallery:  models.StringList{testPublicBase + "ashita/gallery/1-a.png", testPublicBase + "ashita/gallery/2-b.png"},
		Labels:   models.StringList{"BASE"},
		Stats:    &models.Stats{CharacterID: 5, Age: models.Ptr("17")},
	}
}

func editInput(editing models.Character) models.SaveInput {
	return models.SaveInput{
		Form:    models.CharacterForm{Name: editing.Name, Role: "1"},
		Editing: &editing,
	}
}

// ── Save: create ─────────────────────────────────────────────────────────────

func TestClientArchiveService_Save_CreatesCharacter(t *testing.T) {
	svc, characters, notifier := newTestArchiveSvc(t)
	ctx := context.Background()

	input := models.SaveInput{
		Form: models.CharacterForm{
			Name: "Ashita Kazumi", Role: "1", Species: "Human",
			BirthMonth: "7", BirthDay: "4", Status: "1", Height: "162",
		},
		Extra: models.LoreExtras{Abilities: models.LoreEntries{{Name: "Foresight", Description: "one minute ahead"}}},
	}

	gomock.InOrder(
		characters.EXPECT().Save(ctx, gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, f models.CharacterFields, s models.StatsFields, _ *int64) (int64, error) {
				assert.Equal(t, "ashita", *f.Slug)
				assert.Equal(t, "Ashita Kazumi", *f.Name)
				assert.Equal(t, models.RoleProtagonist, *f.Role)
				assert.Equal(t, "", *f.ImageURL)
				assert.Equal(t, "", *f.IconURL)
				assert.Empty(t, *f.Gallery)
				assert.Nil(t, f.Labels, "the server applies the default label")

				assert.Equal(t, "2000-07-04", *s.Birthday)
				assert.Equal(t, 162, *s.Height)
				assert.Equal(t, models.StatusAlive, *s.Status)
				assert.Equal(t, "Human", *s.Species)
				assert.Nil(t, s.Age, "empty stats fields are omitted")
				assert.Nil(t, s.Gender)

				list := svc.Characters()
				require.Len(t, list, 1, "the new character is projected before it is persisted")
				assert.Equal(t, fixedSaveTime.UnixMilli(), list[0].ID)
				assert.Equal(t, "ashita", list[0].Slug)
				return 42, nil
			},
		),
		notifier.EXPECT().Alert("Character saved successfully!"),
		characters.EXPECT().FetchAll(ctx).Return([]models.Character{{ID: 42, Slug: "ashita", Name: "Ashita Kazumi"}}, nil),
	)

	done := 0
	report, err := svc.Save(ctx, input, func() { done++ })
	require.NoError(t, err)

	assert.Equal(t, models.SaveReport{ID: 42, Created: true, Persisted: true}, report)
	assert.Equal(t, 1, done)
	assert.False(t, svc.Saving())
	assert.Equal(t, int64(42), svc.Characters()[0].ID, "the fetch replaces the projection")
}

func TestClientArchiveService_Save_NewIsPrepended(t *testing.T) {
	svc, characters, notifier := newTestArchiveSvc(t)
	ctx := context.Background()
	svc.list = []models.Character{{ID: 1, Slug: "rin", Name: "Rin"}}

	characters.EXPECT().Save(ctx, gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
		func(context.Context, models.CharacterFields, models.StatsFields, *int64) (int64, error) {
			list := svc.Characters()
			require.Len(t, list, 2)
			assert.Equal(t, "zed", list[0].Slug)
			assert.Equal(t, "local:zed.png", list[0].ImageURL)
			return 0, errors.New("stop here")
		},
	)
	characters.EXPECT().UploadImage(ctx, gomock.Any(), "zed", models.ImageMain).Return("", errors.New("offline"))
	notifier.EXPECT().Alert(gomock.Any())
	characters.EXPECT().FetchAll(ctx).Return(nil, nil)

	_, _ = svc.Save(ctx, models.SaveInput{
		Form:     models.CharacterForm{Name: "Zed"},
		MainFile: &models.ImageFile{Name: "zed.png", ContentType: "image/png", Data: []byte{1}},
	}, nil)
}

// ── Save: guards and validation ──────────────────────────────────────────────

func TestClientArchiveService_Save_InvalidFormAlertsAndStops(t *testing.T) {
	svc, _, notifier := newTestArchiveSvc(t)

	notifier.EXPECT().Alert(gomock.Any()).Do(func(msg string) {
		assert.True(t, strings.HasPrefix(msg, "Invalid character data: "), msg)
	})

	done := false
	_, err := svc.Save(context.Background(), models.SaveInput{Form: models.CharacterForm{Name: "  ", BirthMonth: "13"}}, func() { done = true })
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.Empty(t, svc.Characters(), "nothing is projected for an invalid form")
	assert.True(t, done)
}

func TestClientArchiveService_Save_RejectsConcurrentSubmit(t *testing.T) {
	svc, characters, notifier := newTestArchiveSvc(t)
	ctx := context.Background()

	release := make(chan struct{})
	entered := make(chan struct{})

	characters.EXPECT().Save(ctx, gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, models.CharacterFields, models.StatsFields, *int64) (int64, error) {
			close(entered)
			<-release
			return 1, nil
		},
	)
	notifier.EXPECT().Alert("Character saved successfully!")
	characters.EXPECT().FetchAll(ctx).Return(nil, nil)

	first := make(chan error, 1)
	go func() {
		_, err := svc.Save(ctx, models.SaveInput{Form: models.CharacterForm{Name: "Rin"}}, nil)
		first <- err
	}()
	<-entered

	secondDone := false
	_, err := svc.Save(ctx, models.SaveInput{Form: models.CharacterForm{Name: "Rin"}}, func() { secondDone = true })
	assert.ErrorIs(t, err, ErrSaveInProgress)
	assert.False(t, secondDone, "a rejected submit does not finalize")
	assert.True(t, svc.Saving())

	close(release)
	require.NoError(t, <-first)
	assert.False(t, svc.Saving())
}

// ── Save: images ─────────────────────────────────────────────────────────────

func TestClientArchiveService_Save_ReplacesMainImage(t *testing.T) {
	svc, characters, notifier := newTestArchiveSvc(t)
	ctx := context.Background()

	old := ashitaRecord()
	svc.list = []models.Character{old}
	input := editInput(old)
	input.MainFile = &models.ImageFile{Name: "new.png", ContentType: "image/png", Data: []byte{1}}

	newURL := testPublicBase + "ashita/main-2.png"
	characters.EXPECT().UploadImage(ctx, *input.MainFile, "ashita", models.ImageMain).Return(newURL, nil)
	characters.EXPECT().DeleteImage(gomock.Any(), old.ImageURL).Return(nil)
	characters.EXPECT().Save(ctx, gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f models.CharacterFields, _ models.StatsFields, id *int64) (int64, error) {
			require.NotNil(t, id)
			assert.Equal(t, int64(5), *id)
			assert.Nil(t, f.Slug, "the slug never changes on edit")
			assert.Equal(t, newURL, *f.ImageURL)
			assert.Equal(t, old.IconURL, *f.IconURL)
			assert.Equal(t, old.Gallery, *f.Gallery)
			return 5, nil
		},
	)
	notifier.EXPECT().Alert("Character saved successfully!")
	characters.EXPECT().FetchAll(ctx).Return([]models.Character{old}, nil)

	_, err := svc.Save(ctx, input, nil)
	require.NoError(t, err)
	svc.Wait()
}

func TestClientArchiveService_Save_ClearsIcon(t *testing.T) {
	svc, characters, notifier := newTestArchiveSvc(t)
	ctx := context.Background()

	old := ashitaRecord()
	input := editInput(old)
	input.ClearIcon = true

	characters.EXPECT().DeleteImage(gomock.Any(), old.IconURL).Return(errors.New("already gone"))
	characters.EXPECT().Save(ctx, gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f models.CharacterFields, _ models.StatsFields, _ *int64) (int64, error) {
			assert.Equal(t, "", *f.IconURL)
			assert.Equal(t, old.ImageURL, *f.ImageURL)
			return 5, nil
		},
	)
	notifier.EXPECT().Alert("Character saved successfully!")
	characters.EXPECT().FetchAll(ctx).Return(nil, nil)

	_, err := svc.Save(ctx, input, nil)
	require.NoError(t, err, "background cleanup failures are only logged")
	svc.Wait()
}

func TestClientArchiveService_Save_FailedUploadKeepsOldURLAndWarns(t *testing.T) {
	svc, characters, notifier := newTestArchiveSvc(t)
	ctx := context.Background()

	old := ashitaRecord()
	input := editInput(old)
	input.MainFile = &models.ImageFile{Name: "new.png", ContentType: "image/png", Data: []byte{1}}
	input.IconFile = &models.ImageFile{Name: "icon.png", ContentType: "image/png", Data: []byte{1}}

	characters.EXPECT().UploadImage(ctx, *input.MainFile, "ashita", models.ImageMain).Return("", errors.New("offline"))
	characters.EXPECT().UploadImage(ctx, *input.IconFile, "ashita", models.ImageIcon).Return("", errors.New("offline"))
	characters.EXPECT().Save(ctx, gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f models.CharacterFields, _ models.StatsFields, _ *int64) (int64, error) {
			assert.Equal(t, old.ImageURL, *f.ImageURL)
			assert.Equal(t, old.IconURL, *f.IconURL)
			return 5, nil
		},
	)
	notifier.EXPECT().Alert("Character saved, BUT these images failed to upload: Main Image, Icon. Please try uploading them again.")
	characters.EXPECT().FetchAll(ctx).Return(nil, nil)

	report, err := svc.Save(ctx, input, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Main Image", "Icon"}, report.UploadWarnings)
	assert.True(t, report.Persisted)
}

func TestClientArchiveService_Save_GalleryAccumulates(t *testing.T) {
	svc, characters, notifier := newTestArchiveSvc(t)
	ctx := context.Background()

	old := ashitaRecord()
	input := editInput(old)
	input.Extra.GalleryFiles = []models.ImageFile{
		{Name: "c.png", ContentType: "image/png", Data: []byte{1}},
		{Name: "d.png", ContentType: "image/png", Data: []byte{1}},
		{Name: "e.png", ContentType: "image/png", Data: []byte{1}},
	}

	characters.EXPECT().UploadImage(ctx, input.Extra.GalleryFiles[0], "ashita", models.ImageGallery).Return("url-c", nil)
	characters.EXPECT().UploadImage(ctx, input.Extra.GalleryFiles[1], "ashita", models.ImageGallery).Return("", errors.New("too big"))
	characters.EXPECT().UploadImage(ctx, input.Extra.GalleryFiles[2], "ashita", models.ImageGallery).Return("url-e", nil)
	characters.EXPECT().Save(ctx, gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f models.CharacterFields, _ models.StatsFields, _ *int64) (int64, error) {
			want := append(append(models.StringList{}, old.Gallery...), "url-c", "url-e")
			assert.Equal(t, want, *f.Gallery, "existing images first, then new ones in submission order")
			return 5, nil
		},
	)
	notifier.EXPECT().Alert("Character saved, BUT these images failed to upload: Gallery Image (d.png). Please try uploading them again.")
	characters.EXPECT().FetchAll(ctx).Return(nil, nil)

	_, err := svc.Save(ctx, input, nil)
	require.NoError(t, err)
}

func TestClientArchiveService_Save_DroppedGalleryImagesAreDeleted(t *testing.T) {
	svc, characters, notifier := newTestArchiveSvc(t)
	ctx := context.Background()

	old := ashitaRecord()
	input := editInput(old)
	input.Extra.RetainedGallery = models.StringList{old.Gallery[1]}

	characters.EXPECT().DeleteImage(gomock.Any(), old.Gallery[0]).Return(nil)
	characters.EXPECT().Save(ctx, gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f models.CharacterFields, _ models.StatsFields, _ *int64) (int64, error) {
			assert.Equal(t, models.StringList{old.Gallery[1]}, *f.Gallery)
			return 5, nil
		},
	)
	notifier.EXPECT().Alert("Character saved successfully!")
	characters.EXPECT().FetchAll(ctx).Return(nil, nil)

	_, err := svc.Save(ctx, input, nil)
	require.NoError(t, err)
	svc.Wait()
}

// ── Save: stats normalization ────────────────────────────────────────────────

func TestClientArchiveService_Save_EditPersistsPaddedBirthday(t *testing.T) {
	svc, characters, notifier := newTestArchiveSvc(t)
	ctx := context.Background()

	old := ashitaRecord()
	svc.list = []models.Character{old}
	input := editInput(old)
	input.Form.BirthMonth = "07"
	input.Form.BirthDay = "04"
	input.Form.Height = "162"

	characters.EXPECT().Save(ctx, gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.CharacterFields, s models.StatsFields, id *int64) (int64, error) {
			require.NotNil(t, id)
			assert.Equal(t, int64(5), *id)
			require.NotNil(t, s.Birthday)
			assert.Equal(t, "2000-07-04", *s.Birthday)
			assert.Equal(t, 162, *s.Height)

			projected := svc.Characters()[0]
			require.NotNil(t, projected.Stats)
			assert.Equal(t, "2000-07-04", *projected.Stats.Birthday)
			return 5, nil
		},
	)
	notifier.EXPECT().Alert("Character saved successfully!")
	characters.EXPECT().FetchAll(ctx).Return([]models.Character{old}, nil)

	_, err := svc.Save(ctx, input, nil)
	require.NoError(t, err)
}

// ── Save: persist and sync failures ──────────────────────────────────────────

func TestClientArchiveService_Save_PersistFailureStillRefetches(t *testing.T) {
	svc, characters, notifier := newTestArchiveSvc(t)
	ctx := context.Background()

	rin := models.Character{ID: 1, Slug: "rin", Name: "Rin"}
	svc.list = []models.Character{rin}

	saveErr := errors.New("character slug already exists")
	gomock.InOrder(
		characters.EXPECT().Save(ctx, gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(context.Context, models.CharacterFields, models.StatsFields, *int64) (int64, error) {
				require.Len(t, svc.Characters(), 2, "the new character is projected first")
				return 0, saveErr
			},
		),
		notifier.EXPECT().Alert("Failed to save character data: character slug already exists"),
		characters.EXPECT().FetchAll(ctx).Return([]models.Character{rin}, nil),
	)

	done := false
	report, err := svc.Save(ctx, models.SaveInput{Form: models.CharacterForm{Name: "Ashita Kazumi", Role: "1"}}, func() { done = true })
	assert.ErrorIs(t, err, saveErr)
	assert.NotErrorIs(t, err, ErrSyncFailed)
	assert.False(t, report.Persisted)
	assert.True(t, done)

	list := svc.Characters()
	require.Len(t, list, 1, "the refetch drops the unsaved projection")
	assert.Equal(t, "rin", list[0].Slug)
}

func TestClientArchiveService_Save_PersistAndSyncFailure(t *testing.T) {
	svc, characters, notifier := newTestArchiveSvc(t)
	ctx := context.Background()

	old := ashitaRecord()
	svc.list = []models.Character{old}
	input := editInput(old)
	input.Form.Quote = "Tomorrow never waits."

	saveErr := errors.New("connection reset")
	gomock.InOrder(
		characters.EXPECT().Save(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), saveErr),
		notifier.EXPECT().Alert("Failed to save character data: connection reset"),
		characters.EXPECT().FetchAll(ctx).Return(nil, errors.New("offline")),
		notifier.EXPECT().Alert("Critical Sync Error: offline. The page will reload."),
		notifier.EXPECT().Reload(),
	)

	report, err := svc.Save(ctx, input, nil)
	assert.ErrorIs(t, err, saveErr)
	assert.ErrorIs(t, err, ErrSyncFailed)
	assert.False(t, report.Persisted)
	assert.Equal(t, "Tomorrow never waits.", svc.Characters()[0].Quote, "a failed refetch leaves the projection until reload")
}

func TestClientArchiveService_Save_SyncFailureReloads(t *testing.T) {
	svc, characters, notifier := newTestArchiveSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		characters.EXPECT().Save(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(8), nil),
		notifier.EXPECT().Alert("Character saved successfully!"),
		characters.EXPECT().FetchAll(ctx).Return(nil, errors.New("boom")),
		notifier.EXPECT().Alert("Critical Sync Error: boom. The page will reload."),
		notifier.EXPECT().Reload(),
	)

	report, err := svc.Save(ctx, models.SaveInput{Form: models.CharacterForm{Name: "Rin"}}, nil)
	assert.ErrorIs(t, err, ErrSyncFailed)
	assert.True(t, report.Persisted)
	assert.Equal(t, int64(8), report.ID)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestClientArchiveService_Delete_Declined(t *testing.T) {
	svc, _, notifier := newTestArchiveSvc(t)
	svc.list = []models.Character{ashitaRecord()}

	notifier.EXPECT().Confirm("CONFIRM PERMANENT DELETION OF ASHITA?").Return(false)

	require.NoError(t, svc.Delete(context.Background(), 5, "ashita"))
	assert.Len(t, svc.Characters(), 1)
}

func TestClientArchiveService_Delete_Success(t *testing.T) {
	svc, characters, notifier := newTestArchiveSvc(t)
	ctx := context.Background()
	svc.list = []models.Character{{ID: 1, Slug: "rin"}, ashitaRecord()}

	notifier.EXPECT().Confirm("CONFIRM PERMANENT DELETION OF ASHITA?").Return(true)
	characters.EXPECT().Delete(ctx, int64(5), "ashita").DoAndReturn(func(context.Context, int64, string) error {
		assert.Len(t, svc.Characters(), 1, "removed optimistically before the server call")
		return nil
	})
	notifier.EXPECT().Alert("Character deleted successfully.")

	require.NoError(t, svc.Delete(ctx, 5, "ashita"))
	assert.Equal(t, "rin", svc.Characters()[0].Slug)
}

func TestClientArchiveService_Delete_FailureRestoresSnapshot(t *testing.T) {
	svc, characters, notifier := newTestArchiveSvc(t)
	ctx := context.Background()
	before := []models.Character{{ID: 1, Slug: "rin"}, ashitaRecord(), {ID: 9, Slug: "zed"}}
	svc.list = append([]models.Character(nil), before...)

	notifier.EXPECT().Confirm(gomock.Any()).Return(true)
	characters.EXPECT().Delete(ctx, int64(5), "ashita").Return(ErrStorageCleanup)
	notifier.EXPECT().Alert("Deletion Error: " + ErrStorageCleanup.Error())

	assert.ErrorIs(t, svc.Delete(ctx, 5, "ashita"), ErrStorageCleanup)
	assert.Equal(t, before, svc.Characters())
}

// ── helpers ──────────────────────────────────────────────────────────────────

func TestSlugFromName(t *testing.T) {
	assert.Equal(t, "ashita", slugFromName("Ashita Kazumi"))
	assert.Equal(t, "rin", slugFromName("  RIN  "))
	assert.Equal(t, "", slugFromName("   "))
}

func TestNormalizeStats_BirthdayNeedsBothParts(t *testing.T) {
	assert.Nil(t, normalizeStats(models.CharacterForm{BirthMonth: "7"}).Birthday)
	assert.Equal(t, "2000-12-01", *normalizeStats(models.CharacterForm{BirthMonth: "12", BirthDay: "1"}).Birthday)
}
