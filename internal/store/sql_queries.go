package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/asalimova/word-inventory/models"
)

// Both engines accept $N placeholders (SQLite supports them natively), so
// the query constants and the squirrel builder share one placeholder format.
const (
	createUser = `INSERT INTO users (login, password_hash, name, created_at)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id;`

	findUserByLogin = `SELECT user_id, login, password_hash, name, created_at
    FROM users
    WHERE login = $1;`

	insertLanguage = `INSERT INTO languages (user_id, name, iso_code, created_at)
    VALUES ($1, $2, $3, $4)
    RETURNING id;`

	getLanguage = `SELECT id, user_id, name, iso_code, created_at
    FROM languages
    WHERE id = $1 AND user_id = $2;`

	listLanguages = `SELECT id, user_id, name, iso_code, created_at
    FROM languages
    WHERE user_id = $1
    ORDER BY name;`

	updateLanguage = `UPDATE languages
    SET name = $1, iso_code = $2
    WHERE id = $3 AND user_id = $4;`

	deleteLanguage = `DELETE FROM languages
    WHERE id = $1 AND user_id = $2;`

	insertEntry = `INSERT INTO entries (slug, user_id, kind, language_id, text, translation, notes, color, image_url, tags, created_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    RETURNING id;`

	getEntry = `SELECT id, slug, user_id, kind, language_id, text, translation, notes, color, image_url, enrichment, tags, created_at
    FROM entries
    WHERE id = $1 AND user_id = $2;`

	updateEntry = `UPDATE entries
    SET text = $1, translation = $2, notes = $3, color = $4, image_url = $5, tags = $6
    WHERE id = $7 AND user_id = $8;`

	updateEntryEnrichment = `UPDATE entries
    SET enrichment = $1
    WHERE id = $2 AND user_id = $3;`

	deleteEntry = `DELETE FROM entries
    WHERE id = $1 AND user_id = $2;`

	randomEntrySlug = `SELECT slug
    FROM entries
    WHERE user_id = $1 AND kind = $2 AND slug <> $3
    ORDER BY RANDOM()
    LIMIT 1;`

	insertTagMetadata = `INSERT INTO tag_metadata (user_id, name, icon, color_class)
    VALUES ($1, $2, $3, $4)
    RETURNING id;`

	listTagMetadata = `SELECT id, user_id, name, icon, color_class
    FROM tag_metadata
    WHERE user_id = $1
    ORDER BY name;`

	findTagMetadataByName = `SELECT id, user_id, name, icon, color_class
    FROM tag_metadata
    WHERE user_id = $1 AND name = $2;`

	updateTagMetadata = `UPDATE tag_metadata
    SET icon = $1, color_class = $2
    WHERE id = $3 AND user_id = $4;`

	deleteTagMetadata = `DELETE FROM tag_metadata
    WHERE id = $1 AND user_id = $2;`

	getProfile = `SELECT user_id, username, native_language, theme, sort_preference
    FROM profiles
    WHERE user_id = $1;`

	upsertProfile = `INSERT INTO profiles (user_id, username, native_language, theme, sort_preference)
    VALUES ($1, $2, $3, $4, $5)
    ON CONFLICT (user_id) DO UPDATE
    SET username = excluded.username,
        native_language = excluded.native_language,
        theme = excluded.theme,
        sort_preference = excluded.sort_preference;`
)

// entryColumns is the canonical column order shared by [getEntry] and the
// listing builder; scanEntry depends on it.
var entryColumns = []string{
	"id", "slug", "user_id", "kind", "language_id", "text", "translation",
	"notes", "color", "image_url", "enrichment", "tags", "created_at",
}

// buildListEntriesQuery assembles the entry listing SELECT for the given
// owner, optional filters and sort order. The secondary id ordering keeps
// pagination-free listings stable when timestamps or texts collide.
func buildListEntriesQuery(userID int64, filter models.EntryFilter, sort models.SortOrder) (string, []any, error) {
	builder := sq.Select(entryColumns...).
		From("entries").
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Dollar)

	if filter.Kind != "" {
		builder = builder.Where(sq.Eq{"kind": string(filter.Kind)})
	}
	if filter.LanguageID != nil {
		builder = builder.Where(sq.Eq{"language_id": *filter.LanguageID})
	}

	switch sort {
	case models.SortDateAsc:
		builder = builder.OrderBy("created_at ASC", "id ASC")
	case models.SortAlphaAsc:
		builder = builder.OrderBy("lower(text) ASC", "id ASC")
	case models.SortAlphaDesc:
		builder = builder.OrderBy("lower(text) DESC", "id DESC")
	default:
		builder = builder.OrderBy("created_at DESC", "id DESC")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// rowScanner is the subset of *sql.Row / *sql.Rows needed by scanEntry.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanEntry reads one row in [entryColumns] order and converts the nullable
// and JSON-encoded columns into their model representation.
func scanEntry(row rowScanner) (models.Entry, error) {
	var (
		entry      models.Entry
		languageID sql.NullInt64
		enrichment sql.NullString
		tags       string
	)

	err := row.Scan(
		&entry.ID, &entry.Slug, &entry.UserID, &entry.Kind, &languageID,
		&entry.Text, &entry.Translation, &entry.Notes, &entry.Color,
		&entry.ImageURL, &enrichment, &tags, &entry.CreatedAt,
	)
	if err != nil {
		return models.Entry{}, err
	}

	if languageID.Valid {
		id := languageID.Int64
		entry.LanguageID = &id
	}
	if enrichment.Valid && enrichment.String != "" {
		entry.Enrichment = json.RawMessage(enrichment.String)
	}
	if err = json.Unmarshal([]byte(tags), &entry.Tags); err != nil {
		return models.Entry{}, fmt.Errorf("%w: decoding tags: %w", ErrScanningRow, err)
	}

	return entry, nil
}

// encodeTags serialises a tag name list for the JSON text column. A nil
// slice is stored as an empty array so the column never holds SQL NULL.
func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("%w: encoding tags: %w", ErrBuildingSQLQuery, err)
	}
	return string(data), nil
}

// enrichmentArg converts an optional enrichment payload into a driver
// argument: SQL NULL when absent, the raw JSON text otherwise.
func enrichmentArg(payload json.RawMessage) any {
	if len(payload) == 0 {
		return nil
	}
	return string(payload)
}
