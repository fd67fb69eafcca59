// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alina Salimova

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrEntryExists is returned when an INSERT violates the per-owner
	// uniqueness constraint on entries (same owner, language, and source
	// text). Surfaced distinctly so callers can report a duplicate rather
	// than a generic failure.
	ErrEntryExists = errors.New("entry already exists")

	// ErrEntryNotFound is returned when a query or update targets an entry
	// (identified by id and user_id) that does not exist. Because every
	// statement filters by owner, another user's row is indistinguishable
	// from an absent one — which also defends against cross-owner tampering.
	ErrEntryNotFound = errors.New("entry was not found")

	// ErrNothingDeleted is returned when a DELETE affects zero rows.
	// A delete against an already-gone row is treated as a reportable
	// failure, not an idempotent success; see the repository docs.
	ErrNothingDeleted = errors.New("no rows were deleted")

	// ErrLanguageExists is returned when inserting or updating a language
	// violates the per-owner uniqueness of the ISO code, which doubles as a
	// URL slug and therefore must never be silently duplicated.
	ErrLanguageExists = errors.New("language with this ISO code already exists")

	// ErrLanguageNotFound is returned when an update or delete targets a
	// language that does not exist for the calling owner.
	ErrLanguageNotFound = errors.New("language was not found")

	// ErrLanguageInUse is returned when a language insert references a
	// missing owner or an entry insert references a missing language.
	ErrLanguageInUse = errors.New("referenced language does not exist")

	// ErrTagMetadataExists is returned when tag decoration already exists
	// for the given owner and tag name.
	ErrTagMetadataExists = errors.New("tag metadata already exists")

	// ErrTagMetadataNotFound is returned when a lookup, update or delete
	// targets tag metadata that does not exist for the calling owner.
	// Lookups by name treat this as an expected miss: rendering falls back
	// to the default icon and color.
	ErrTagMetadataNotFound = errors.New("tag metadata was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
