// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alina Salimova

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/asalimova/word-inventory/internal/logger"
	"github.com/asalimova/word-inventory/models"
)

// entryRepository is the SQL-backed implementation of [EntryRepository].
// Every statement filters by user_id: an entry owned by another user is
// reported as not found, never as forbidden.
type entryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEntryRepository constructs an [EntryRepository] backed by the provided
// database connection and logger.
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	logger.Debug().Msg("creating entry repository")
	return &entryRepository{
		db:     db,
		logger: logger,
	}
}

// InsertEntry persists a new entry and returns it with the server-assigned
// ID filled in. The caller supplies the slug; the repository assigns the
// creation timestamp.
//
// Error handling:
//   - unique violation (duplicate text for the owner) → [ErrEntryExists];
//   - foreign key violation (missing language) → [ErrLanguageInUse];
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *entryRepository) InsertEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	log := logger.FromContext(ctx)

	tags, err := encodeTags(entry.Tags)
	if err != nil {
		return models.Entry{}, err
	}
	entry.CreatedAt = time.Now().UTC()

	row := r.db.QueryRowContext(ctx, insertEntry,
		entry.Slug, entry.UserID, entry.Kind, entry.LanguageID,
		entry.Text, entry.Translation, entry.Notes, entry.Color,
		entry.ImageURL, tags, entry.CreatedAt,
	)
	if err = row.Scan(&entry.ID); err != nil {
		switch {
		case r.db.errorClassifier.IsUniqueViolation(err):
			log.Warn().Str("func", "*entryRepository.InsertEntry").Str("text", entry.Text).Msg("duplicate entry")
			return models.Entry{}, ErrEntryExists
		case r.db.errorClassifier.IsForeignKeyViolation(err):
			return models.Entry{}, ErrLanguageInUse
		default:
			log.Err(err).Str("func", "*entryRepository.InsertEntry").Msg("error inserting entry")
			return models.Entry{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return entry, nil
}

// GetEntry retrieves the entry identified by id and userID.
// A missing or foreign row yields [ErrEntryNotFound].
func (r *entryRepository) GetEntry(ctx context.Context, id, userID int64) (models.Entry, error) {
	log := logger.FromContext(ctx)

	entry, err := scanEntry(r.db.QueryRowContext(ctx, getEntry, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Entry{}, ErrEntryNotFound
		}

		log.Err(err).Str("func", "*entryRepository.GetEntry").Msg("error getting entry")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

// ListEntries returns the owner's entries narrowed by filter and ordered by
// sort. The query is assembled by [buildListEntriesQuery].
func (r *entryRepository) ListEntries(ctx context.Context, userID int64, filter models.EntryFilter, sort models.SortOrder) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(userID, filter, sort)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntries").Msg("error building listing query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntries").Msg("error querying entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.Entry, 0)
	for rows.Next() {
		entry, scanErr := scanEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*entryRepository.ListEntries").Msg("error scanning entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// UpdateEntry replaces all mutable fields of the entry identified by id and
// userID. Fields omitted from the request arrive as zero values and
// overwrite what was stored; partial patches are not supported.
//
// Error handling:
//   - unique violation (update collides with another entry) → [ErrEntryExists];
//   - zero affected rows → [ErrEntryNotFound].
func (r *entryRepository) UpdateEntry(ctx context.Context, id, userID int64, fields models.EntryFields) error {
	log := logger.FromContext(ctx)

	tags, err := encodeTags(fields.Tags)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, updateEntry,
		fields.Text, fields.Translation, fields.Notes, fields.Color,
		fields.ImageURL, tags, id, userID,
	)
	if err != nil {
		if r.db.errorClassifier.IsUniqueViolation(err) {
			return ErrEntryExists
		}

		log.Err(err).Str("func", "*entryRepository.UpdateEntry").Msg("error updating entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// UpdateEnrichment stores a freshly generated enrichment payload on the
// entry identified by id and userID, replacing any previous payload.
// A zero-row update yields [ErrEntryNotFound].
func (r *entryRepository) UpdateEnrichment(ctx context.Context, id, userID int64, payload json.RawMessage) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateEntryEnrichment, enrichmentArg(payload), id, userID)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.UpdateEnrichment").Msg("error updating enrichment")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// DeleteEntry removes the entry identified by id and userID.
//
// A delete that affects zero rows returns [ErrNothingDeleted]: the row was
// already gone, and the caller is told so rather than given a silent
// success.
func (r *entryRepository) DeleteEntry(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteEntry, id, userID)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.DeleteEntry").Msg("error deleting entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNothingDeleted
	}

	return nil
}

// RandomEntrySlug picks one of the owner's entries of the given kind at
// random, never returning excludeSlug. When no other entry exists the
// result is [ErrEntryNotFound].
func (r *entryRepository) RandomEntrySlug(ctx context.Context, userID int64, kind models.EntryKind, excludeSlug string) (string, error) {
	log := logger.FromContext(ctx)

	var slug string
	row := r.db.QueryRowContext(ctx, randomEntrySlug, userID, kind, excludeSlug)
	if err := row.Scan(&slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrEntryNotFound
		}

		log.Err(err).Str("func", "*entryRepository.RandomEntrySlug").Msg("error picking random entry")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return slug, nil
}
