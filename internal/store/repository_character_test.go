// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/char-archive/internal/logger"
	"github.com/MKhiriev/char-archive/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCharacterRepo(t *testing.T) (CharacterRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewCharacterRepository(newDB(db, logger.Nop()), logger.Nop()), mock
}

var fetchColumns = []string{
	"id", "slug", "name", "role", "quote", "bio", "abilities", "relationships",
	"trivias", "labels", "gallery", "icon_url", "image_url", "created_at", "updated_at",
	"character_id", "age", "gender", "species", "height", "birthday", "status",
}

// ── FetchAll ──

func TestCharacterRepository_FetchAll(t *testing.T) {
	repo, mock := newTestCharacterRepo(t)
	now := time.Now()

	rows := sqlmock.NewRows(fetchColumns).
		AddRow(1, "ashita", "Ashita Kazumi", 1, "q", "b",
			[]byte(`[{"name":"Fire","description":"burns"}]`), []byte(`[]`),
			[]byte(`["likes tea"]`), []byte(`["BASE"]`), []byte(`["http://x/g1.png"]`),
			"http://x/icon.png", "http://x/main.png", now, now,
			1, "17", 2, "Human", 162, "2000-07-04", 1).
		AddRow(2, "zed", "Zed", 0, "", "",
			[]byte(`[]`), []byte(`[]`), []byte(`[]`), []byte(`["BASE"]`), []byte(`[]`),
			"", "", now, now,
			nil, nil, nil, nil, nil, nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN stats s ON s.character_id = c.id ORDER BY c.name ASC")).
		WillReturnRows(rows)

	list, err := repo.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	ashita := list[0]
	assert.Equal(t, models.RoleProtagonist, ashita.Role)
	assert.Equal(t, "Fire", ashita.Abilities[0].Name)
	assert.Equal(t, models.StringList{"likes tea"}, ashita.Trivias)
	require.NotNil(t, ashita.Stats)
	assert.Equal(t, "2000-07-04", *ashita.Stats.Birthday)
	assert.Equal(t, models.GenderFemale, *ashita.Stats.Gender)
	assert.Equal(t, 162, *ashita.Stats.Height)
	assert.Equal(t, models.StatusAlive, *ashita.Stats.Status)

	assert.Nil(t, list[1].Stats, "character without stats row must have nil stats")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCharacterRepository_FetchAll_QueryError(t *testing.T) {
	repo, mock := newTestCharacterRepo(t)

	mock.ExpectQuery("SELECT").WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.FetchAll(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCharacterRepository_FetchAll_ScanError(t *testing.T) {
	repo, mock := newTestCharacterRepo(t)

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err := repo.FetchAll(context.Background())
	assert.ErrorIs(t, err, ErrScanningRow)
}

// ── Save ──

func TestCharacterRepository_Save_InsertWithStats(t *testing.T) {
	repo, mock := newTestCharacterRepo(t)

	req := models.SaveRequest{
		Character: models.CharacterFields{
			Slug: models.Ptr("ashita"),
			Name: models.Ptr("Ashita Kazumi"),
		},
		Stats: models.StatsFields{
			Birthday: models.Ptr("2000-07-04"),
			Height:   models.Ptr(162),
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO characters (name,slug) VALUES ($1,$2) RETURNING id")).
		WithArgs("Ashita Kazumi", "ashita").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO stats (character_id,height,birthday) VALUES ($1,$2,$3) ON CONFLICT (character_id) DO UPDATE SET height = EXCLUDED.height, birthday = EXCLUDED.birthday")).
		WithArgs(int64(42), 162, "2000-07-04").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := repo.Save(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.SaveResponse{ID: 42, Created: true}, resp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCharacterRepository_Save_UpdateRepairsMissingStats(t *testing.T) {
	repo, mock := newTestCharacterRepo(t)

	id := int64(7)
	req := models.SaveRequest{
		ID:        &id,
		Character: models.CharacterFields{IconURL: models.Ptr("")},
		Stats:     models.StatsFields{Status: models.Ptr(models.StatusUnknown)},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE characters SET icon_url = $1, updated_at = now() WHERE id = $2")).
		WithArgs("", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO stats .* ON CONFLICT \\(character_id\\) DO UPDATE SET status = EXCLUDED.status").
		WithArgs(int64(7), int16(0)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := repo.Save(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.SaveResponse{ID: 7}, resp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCharacterRepository_Save_StatsOnlySkipsCharacterUpdate(t *testing.T) {
	repo, mock := newTestCharacterRepo(t)

	id := int64(7)
	req := models.SaveRequest{ID: &id, Stats: models.StatsFields{Age: models.Ptr("17")}}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO stats").
		WithArgs(int64(7), "17").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err := repo.Save(context.Background(), req)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCharacterRepository_Save_UpdateMissingRowRollsBack(t *testing.T) {
	repo, mock := newTestCharacterRepo(t)

	id := int64(99)
	req := models.SaveRequest{
		ID:        &id,
		Character: models.CharacterFields{Name: models.Ptr("Ghost")},
		Stats:     models.StatsFields{Age: models.Ptr("1")},
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE characters").
		WithArgs("Ghost", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.Save(context.Background(), req)
	assert.ErrorIs(t, err, ErrCharacterNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCharacterRepository_Save_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{"duplicate slug", pgError(pgerrcode.UniqueViolation), ErrSlugAlreadyExists},
		{"generic failure", errors.New("disk full"), ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestCharacterRepo(t)

			mock.ExpectBegin()
			mock.ExpectQuery("INSERT INTO characters").WillReturnError(tt.dbErr)
			mock.ExpectRollback()

			_, err := repo.Save(context.Background(), models.SaveRequest{
				Character: models.CharacterFields{Slug: models.Ptr("ashita"), Name: models.Ptr("Ashita")},
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCharacterRepository_Save_StatsFailureRollsBackInsert(t *testing.T) {
	repo, mock := newTestCharacterRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO characters").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectExec("INSERT INTO stats").
		WillReturnError(pgError(pgerrcode.InvalidDatetimeFormat))
	mock.ExpectRollback()

	_, err := repo.Save(context.Background(), models.SaveRequest{
		Character: models.CharacterFields{Slug: models.Ptr("a"), Name: models.Ptr("A")},
		Stats:     models.StatsFields{Birthday: models.Ptr("2000-13-40")},
	})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCharacterRepository_Save_Empty(t *testing.T) {
	repo, _ := newTestCharacterRepo(t)

	_, err := repo.Save(context.Background(), models.SaveRequest{})
	assert.ErrorIs(t, err, ErrNothingToSave)
}

func TestCharacterRepository_Save_BeginFails(t *testing.T) {
	repo, mock := newTestCharacterRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

	_, err := repo.Save(context.Background(), models.SaveRequest{
		Character: models.CharacterFields{Name: models.Ptr("A")},
	})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

// ── Delete ──

func TestCharacterRepository_Delete(t *testing.T) {
	repo, mock := newTestCharacterRepo(t)

	mock.ExpectExec("DELETE FROM characters WHERE id").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM characters WHERE id").
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), 3))
	assert.ErrorIs(t, repo.Delete(context.Background(), 4), ErrCharacterNotFound)
}

// ── Import ──

func TestCharacterRepository_Import(t *testing.T) {
	repo, mock := newTestCharacterRepo(t)

	characters := []models.Character{
		{Slug: "ashita", Name: "Ashita", Labels: models.StringList{"BASE"},
			Stats: &models.Stats{Species: models.Ptr("Human")}},
		{Slug: "zed", Name: "Zed"},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO characters .* ON CONFLICT \\(slug\\)").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec("INSERT INTO stats").
		WithArgs(int64(1), "Human").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO characters .* ON CONFLICT \\(slug\\)").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectCommit()

	n, err := repo.Import(context.Background(), characters)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCharacterRepository_Import_FailureRollsBack(t *testing.T) {
	repo, mock := newTestCharacterRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO characters").WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	n, err := repo.Import(context.Background(), []models.Character{{Slug: "a", Name: "A"}})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
