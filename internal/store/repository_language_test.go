package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/asalimova/word-inventory/internal/logger"
	"github.com/asalimova/word-inventory/models"
	"github.com/mattn/go-sqlite3"
)

// The language tests run against the SQLite classifier so both engine
// mappings get exercised somewhere in the suite.
func newTestLanguageRepo(t *testing.T) (*languageRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &languageRepository{
		db:     &DB{DB: db, errorClassifier: NewSQLiteErrorClassifier(), logger: l},
		logger: l,
	}
	return repo, mock, db
}

func sqliteConstraintError(extended sqlite3.ErrNoExtended) error {
	return sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: extended}
}

func TestInsertLanguage_Success(t *testing.T) {
	repo, mock, db := newTestLanguageRepo(t)
	defer db.Close()

	ctx := context.Background()
	language := models.Language{UserID: 1, Name: "German", ISOCode: "de"}

	mock.ExpectQuery("INSERT INTO languages").
		WithArgs(language.UserID, language.Name, language.ISOCode, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	created, err := repo.InsertLanguage(ctx, language)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 3 {
		t.Errorf("expected ID=3, got %d", created.ID)
	}
}

func TestInsertLanguage_DuplicateISOCode(t *testing.T) {
	repo, mock, db := newTestLanguageRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO languages").
		WillReturnError(sqliteConstraintError(sqlite3.ErrConstraintUnique))

	_, err := repo.InsertLanguage(ctx, models.Language{UserID: 1, Name: "German", ISOCode: "de"})
	if !errors.Is(err, ErrLanguageExists) {
		t.Fatalf("expected ErrLanguageExists, got %v", err)
	}
}

func TestListLanguages_Success(t *testing.T) {
	repo, mock, db := newTestLanguageRepo(t)
	defer db.Close()

	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"id", "user_id", "name", "iso_code", "created_at"}).
		AddRow(1, 1, "French", "fr", now).
		AddRow(2, 1, "German", "de", now)

	mock.ExpectQuery("SELECT (.+) FROM languages").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	languages, err := repo.ListLanguages(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(languages) != 2 {
		t.Fatalf("expected 2 languages, got %d", len(languages))
	}
	if languages[0].Name != "French" {
		t.Errorf("expected French first, got %s", languages[0].Name)
	}
}

func TestUpdateLanguage_NotFound(t *testing.T) {
	repo, mock, db := newTestLanguageRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE languages").
		WithArgs("German", "de", int64(9), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateLanguage(ctx, models.Language{ID: 9, UserID: 1, Name: "German", ISOCode: "de"})
	if !errors.Is(err, ErrLanguageNotFound) {
		t.Fatalf("expected ErrLanguageNotFound, got %v", err)
	}
}

func TestDeleteLanguage_NothingDeleted(t *testing.T) {
	repo, mock, db := newTestLanguageRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM languages").
		WithArgs(int64(9), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteLanguage(ctx, 9, 1)
	if !errors.Is(err, ErrNothingDeleted) {
		t.Fatalf("expected ErrNothingDeleted, got %v", err)
	}
}
