// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/char-archive/internal/logger"
	"github.com/MKhiriev/char-archive/models"
	"github.com/jackc/pgerrcode"
)

// characterRepository is the PostgreSQL-backed implementation of
// [CharacterRepository]. It reads and writes the "characters" and "stats"
// tables through the embedded [*DB].
type characterRepository struct {
	*DB
	logger *logger.Logger
}

// NewCharacterRepository constructs a [CharacterRepository] backed by db.
func NewCharacterRepository(db *DB, logger *logger.Logger) CharacterRepository {
	logger.Debug().Msg("creating character repository")
	return &characterRepository{
		DB:     db,
		logger: logger,
	}
}

// FetchAll returns every character with its stats. Characters without a
// stats row come back with a nil Stats.
func (r *characterRepository) FetchAll(ctx context.Context) ([]models.Character, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFetchAllCharactersQuery()
	if err != nil {
		log.Err(err).Str("func", "*characterRepository.FetchAll").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*characterRepository.FetchAll").
			Bool("retryable", r.retryable(err)).
			Msg("failed to execute query for fetching characters")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	characters := make([]models.Character, 0, 64)
	for rows.Next() {
		character, scanErr := scanCharacter(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*characterRepository.FetchAll").Msg("failed to scan character row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		characters = append(characters, character)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*characterRepository.FetchAll").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return characters, nil
}

// Save writes req in one transaction.
//
// Without an id a character row is inserted (Created=true). With an id the
// character row is updated only when character fields are present; an id
// that matches no row yields [ErrCharacterNotFound]. Stats fields, when
// present, are upserted so a missing stats row is repaired.
func (r *characterRepository) Save(ctx context.Context, req models.SaveRequest) (models.SaveResponse, error) {
	log := logger.FromContext(ctx)

	if req.Character.IsEmpty() && req.Stats.IsEmpty() {
		return models.SaveResponse{}, ErrNothingToSave
	}

	var resp models.SaveResponse
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if req.IsNew() {
			id, err := r.insertCharacter(ctx, tx, req.Character)
			if err != nil {
				return err
			}
			resp = models.SaveResponse{ID: id, Created: true}
		} else {
			resp = models.SaveResponse{ID: *req.ID}
			if !req.Character.IsEmpty() {
				if err := r.updateCharacter(ctx, tx, *req.ID, req.Character); err != nil {
					return err
				}
			}
		}

		if req.Stats.IsEmpty() {
			return nil
		}
		return r.upsertStats(ctx, tx, resp.ID, req.Stats)
	})
	if err != nil {
		log.Err(err).
			Str("func", "*characterRepository.Save").
			Bool("new", req.IsNew()).
			Bool("retryable", r.retryable(err)).
			Msg("failed to save character")
		return models.SaveResponse{}, err
	}

	return resp, nil
}

// Delete removes the character with the given id.
func (r *characterRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteCharacter, id)
	if err != nil {
		log.Err(err).Str("func", "*characterRepository.Delete").Int64("id", id).Msg("failed to delete character")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCharacterNotFound
	}

	return nil
}

// Import upserts every character, and its stats when present, in one transaction.
func (r *characterRepository) Import(ctx context.Context, characters []models.Character) (int, error) {
	log := logger.FromContext(ctx)

	written := 0
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		for _, character := range characters {
			query, args, err := buildImportCharacterQuery(character)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}

			var id int64
			if err = tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
				log.Err(err).
					Str("func", "*characterRepository.Import").
					Str("slug", character.Slug).
					Msg("failed to upsert character")
				return fmt.Errorf("%w: %s: %w", ErrExecutingStatement, character.Slug, err)
			}

			if stats := statsFieldsOf(character.Stats); !stats.IsEmpty() {
				if err = r.upsertStats(ctx, tx, id, stats); err != nil {
					return err
				}
			}
			written++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info().Str("func", "*characterRepository.Import").Int("count", written).Msg("characters imported")
	return written, nil
}

func (r *characterRepository) insertCharacter(ctx context.Context, tx *sql.Tx, fields models.CharacterFields) (int64, error) {
	query, args, err := buildInsertCharacterQuery(fields)
	if err != nil {
		return 0, err
	}

	var id int64
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, mapCharacterWriteError(err)
	}
	return id, nil
}

func (r *characterRepository) updateCharacter(ctx context.Context, tx *sql.Tx, id int64, fields models.CharacterFields) error {
	query, args, err := buildUpdateCharacterQuery(id, fields)
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return mapCharacterWriteError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCharacterNotFound
	}
	return nil
}

func (r *characterRepository) upsertStats(ctx context.Context, tx *sql.Tx, characterID int64, fields models.StatsFields) error {
	query, args, err := buildUpsertStatsQuery(characterID, fields)
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return mapCharacterWriteError(err)
	}
	return nil
}

func mapCharacterWriteError(err error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %w", ErrSlugAlreadyExists, err)
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrCharacterNotFound, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCharacter(row rowScanner) (models.Character, error) {
	var (
		c        models.Character
		role     int16
		statsID  sql.NullInt64
		age      sql.NullString
		gender   sql.NullInt16
		species  sql.NullString
		height   sql.NullInt32
		birthday sql.NullString
		status   sql.NullInt16
	)

	err := row.Scan(
		&c.ID,
		&c.Slug,
		&c.Name,
		&role,
		&c.Quote,
		&c.Bio,
		&c.Abilities,
		&c.Relationships,
		&c.Trivias,
		&c.Labels,
		&c.Gallery,
		&c.IconURL,
		&c.ImageURL,
		&c.CreatedAt,
		&c.UpdatedAt,
		&statsID,
		&age,
		&gender,
		&species,
		&height,
		&birthday,
		&status,
	)
	if err != nil {
		return models.Character{}, err
	}
	c.Role = models.Role(role)

	if statsID.Valid {
		stats := &models.Stats{CharacterID: statsID.Int64}
		if age.Valid {
			stats.Age = models.Ptr(age.String)
		}
		if gender.Valid {
			stats.Gender = models.Ptr(models.Gender(gender.Int16))
		}
		if species.Valid {
			stats.Species = models.Ptr(species.String)
		}
		if height.Valid {
			stats.Height = models.Ptr(int(height.Int32))
		}
		if birthday.Valid {
			stats.Birthday = models.Ptr(birthday.String)
		}
		if status.Valid {
			stats.Status = models.Ptr(models.VitalStatus(status.Int16))
		}
		c.Stats = stats
	}

	return c, nil
}
