package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/char-archive/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (email, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	createSession = `INSERT INTO sessions (session_id, user_id, created_at, expires_at)
    VALUES ($1, $2, $3, $4);`

	getSession = `SELECT s.session_id, s.user_id, u.email, s.created_at, s.expires_at
    FROM sessions s
    JOIN users u ON u.user_id = s.user_id
    WHERE s.session_id = $1;`

	deleteSession = `DELETE FROM sessions WHERE session_id = $1;`

	deleteExpiredSessions = `DELETE FROM sessions WHERE expires_at <= now();`

	deleteCharacter = `DELETE FROM characters WHERE id = $1;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// characterColumns is the SELECT list shared by every character read. The
// order matches scanCharacter.
var characterColumns = []string{
	"c.id",
	"c.slug",
	"c.name",
	"c.role",
	"c.quote",
	"c.bio",
	"c.abilities",
	"c.relationships",
	"c.trivias",
	"c.labels",
	"c.gallery",
	"c.icon_url",
	"c.image_url",
	"c.created_at",
	"c.updated_at",
	"s.character_id",
	"s.age",
	"s.gender",
	"s.species",
	"s.height",
	"to_char(s.birthday, 'YYYY-MM-DD') AS birthday",
	"s.status",
}

var statsColumns = []string{"age", "gender", "species", "height", "birthday", "status"}

func buildFetchAllCharactersQuery() (string, []any, error) {
	return psql.
		Select(characterColumns...).
		From("characters c").
		LeftJoin("stats s ON s.character_id = c.id").
		OrderBy("c.name ASC", "c.id ASC").
		ToSql()
}

// characterSetMap turns the present fields of a save request into a column map.
func characterSetMap(f models.CharacterFields) map[string]any {
	set := make(map[string]any, 12)
	if f.Slug != nil {
		set["slug"] = *f.Slug
	}
	if f.Name != nil {
		set["name"] = *f.Name
	}
	if f.Role != nil {
		set["role"] = int16(*f.Role)
	}
	if f.Quote != nil {
		set["quote"] = *f.Quote
	}
	if f.Bio != nil {
		set["bio"] = *f.Bio
	}
	if f.Abilities != nil {
		set["abilities"] = *f.Abilities
	}
	if f.Relationships != nil {
		set["relationships"] = *f.Relationships
	}
	if f.Trivias != nil {
		set["trivias"] = *f.Trivias
	}
	if f.Labels != nil {
		set["labels"] = *f.Labels
	}
	if f.Gallery != nil {
		set["gallery"] = *f.Gallery
	}
	if f.IconURL != nil {
		set["icon_url"] = *f.IconURL
	}
	if f.ImageURL != nil {
		set["image_url"] = *f.ImageURL
	}
	return set
}

// statsSetMap turns the present stats fields into a column map.
func statsSetMap(f models.StatsFields) map[string]any {
	set := make(map[string]any, 6)
	if f.Age != nil {
		set["age"] = *f.Age
	}
	if f.Gender != nil {
		set["gender"] = int16(*f.Gender)
	}
	if f.Species != nil {
		set["species"] = *f.Species
	}
	if f.Height != nil {
		set["height"] = *f.Height
	}
	if f.Birthday != nil {
		set["birthday"] = *f.Birthday
	}
	if f.Status != nil {
		set["status"] = int16(*f.Status)
	}
	return set
}

func buildInsertCharacterQuery(f models.CharacterFields) (string, []any, error) {
	set := characterSetMap(f)
	if len(set) == 0 {
		return "", nil, fmt.Errorf("%w: no character columns", ErrBuildingSQLQuery)
	}
	return psql.Insert("characters").SetMap(set).Suffix("RETURNING id").ToSql()
}

func buildUpdateCharacterQuery(id int64, f models.CharacterFields) (string, []any, error) {
	set := characterSetMap(f)
	if len(set) == 0 {
		return "", nil, fmt.Errorf("%w: no character columns", ErrBuildingSQLQuery)
	}
	return psql.Update("characters").
		SetMap(set).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildUpsertStatsQuery writes only the given stats columns. A missing stats
// row is created, an existing one keeps the columns not listed in set.
func buildUpsertStatsQuery(characterID int64, f models.StatsFields) (string, []any, error) {
	set := statsSetMap(f)
	if len(set) == 0 {
		return "", nil, fmt.Errorf("%w: no stats columns", ErrBuildingSQLQuery)
	}

	columns := []string{"character_id"}
	values := []any{characterID}
	updates := make([]string, 0, len(set))
	for _, col := range statsColumns {
		v, ok := set[col]
		if !ok {
			continue
		}
		columns = append(columns, col)
		values = append(values, v)
		updates = append(updates, col+" = EXCLUDED."+col)
	}

	return psql.Insert("stats").
		Columns(columns...).
		Values(values...).
		Suffix("ON CONFLICT (character_id) DO UPDATE SET " + strings.Join(updates, ", ")).
		ToSql()
}

// buildImportCharacterQuery upserts a full character keyed by slug.
func buildImportCharacterQuery(c models.Character) (string, []any, error) {
	return psql.Insert("characters").
		Columns("slug", "name", "role", "quote", "bio", "abilities", "relationships",
			"trivias", "labels", "gallery", "icon_url", "image_url").
		Values(c.Slug, c.Name, int16(c.Role), c.Quote, c.Bio, c.Abilities, c.Relationships,
			c.Trivias, c.Labels, c.Gallery, c.IconURL, c.ImageURL).
		Suffix(`ON CONFLICT (slug) DO UPDATE SET
			name = EXCLUDED.name, role = EXCLUDED.role, quote = EXCLUDED.quote, bio = EXCLUDED.bio,
			abilities = EXCLUDED.abilities, relationships = EXCLUDED.relationships,
			trivias = EXCLUDED.trivias, labels = EXCLUDED.labels, gallery = EXCLUDED.gallery,
			icon_url = EXCLUDED.icon_url, image_url = EXCLUDED.image_url, updated_at = now()
			RETURNING id`).
		ToSql()
}

// statsFieldsOf converts a stored stats row into a full write of every column.
func statsFieldsOf(s *models.Stats) models.StatsFields {
	if s == nil {
		return models.StatsFields{}
	}
	return models.StatsFields{
		Age:      s.Age,
		Gender:   s.Gender,
		Species:  s.Species,
		Height:   s.Height,
		Birthday: s.Birthday,
		Status:   s.Status,
	}
}
