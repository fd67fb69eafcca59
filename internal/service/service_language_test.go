package service

import (
	"context"
	"errors"
	"testing"

	"github.com/asalimova/word-inventory/internal/logger"
	"github.com/asalimova/word-inventory/internal/store"
	"github.com/asalimova/word-inventory/models"
)

func TestCreateLanguage_TrimsAndLowercasesISOCode(t *testing.T) {
	var inserted models.Language
	repo := &fakeLanguageRepository{
		insertLanguageFn: func(_ context.Context, language models.Language) (models.Language, error) {
			inserted = language
			language.ID = 1
			return language, nil
		},
	}
	svc := NewLanguageService(repo, logger.Nop())

	created, err := svc.CreateLanguage(context.Background(), models.Language{
		UserID:  1,
		Name:    "  German  ",
		ISOCode: " DE ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inserted.Name != "German" {
		t.Errorf("expected trimmed name, got %q", inserted.Name)
	}
	if inserted.ISOCode != "de" {
		t.Errorf("expected lowercase iso code, got %q", inserted.ISOCode)
	}
	if created.ID != 1 {
		t.Errorf("expected assigned id, got %d", created.ID)
	}
}

func TestCreateLanguage_EmptyName(t *testing.T) {
	svc := NewLanguageService(&fakeLanguageRepository{}, logger.Nop())

	if _, err := svc.CreateLanguage(context.Background(), models.Language{Name: "   "}); !errors.Is(err, ErrInvalidDataProvided) {
		t.Errorf("expected ErrInvalidDataProvided, got %v", err)
	}
}

func TestCreateLanguage_DuplicateISOCode(t *testing.T) {
	repo := &fakeLanguageRepository{
		insertLanguageFn: func(context.Context, models.Language) (models.Language, error) {
			return models.Language{}, store.ErrLanguageExists
		},
	}
	svc := NewLanguageService(repo, logger.Nop())

	if _, err := svc.CreateLanguage(context.Background(), models.Language{Name: "German", ISOCode: "de"}); !errors.Is(err, store.ErrLanguageExists) {
		t.Errorf("expected ErrLanguageExists, got %v", err)
	}
}

func TestDeleteLanguage_PropagatesNotFound(t *testing.T) {
	repo := &fakeLanguageRepository{
		deleteLanguageFn: func(context.Context, int64, int64) error {
			return store.ErrLanguageNotFound
		},
	}
	svc := NewLanguageService(repo, logger.Nop())

	if err := svc.DeleteLanguage(context.Background(), 9, 1); !errors.Is(err, store.ErrLanguageNotFound) {
		t.Errorf("expected ErrLanguageNotFound, got %v", err)
	}
}
