package service

import (
	"context"
	"errors"
	"testing"

	"github.com/asalimova/word-inventory/internal/logger"
	"github.com/asalimova/word-inventory/models"
)

func TestUpdateProfile_DefaultsApplied(t *testing.T) {
	var saved models.Profile
	repo := &fakeProfileRepository{
		upsertFn: func(_ context.Context, profile models.Profile) error {
			saved = profile
			return nil
		},
	}
	svc := NewProfileService(repo, logger.Nop())

	if err := svc.UpdateProfile(context.Background(), models.Profile{UserID: 1, Username: "  alice  "}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Username != "alice" {
		t.Errorf("expected trimmed username, got %q", saved.Username)
	}
	if saved.Theme != "system" {
		t.Errorf("expected default theme, got %q", saved.Theme)
	}
	if saved.SortPreference != models.SortDateDesc {
		t.Errorf("expected default sort, got %q", saved.SortPreference)
	}
}

func TestUpdateProfile_UnknownTheme(t *testing.T) {
	svc := NewProfileService(&fakeProfileRepository{}, logger.Nop())

	err := svc.UpdateProfile(context.Background(), models.Profile{UserID: 1, Theme: "sepia"})
	if !errors.Is(err, ErrValidationUnknownTheme) {
		t.Errorf("expected ErrValidationUnknownTheme, got %v", err)
	}
}

func TestUpdateProfile_UnknownSort(t *testing.T) {
	svc := NewProfileService(&fakeProfileRepository{}, logger.Nop())

	err := svc.UpdateProfile(context.Background(), models.Profile{UserID: 1, SortPreference: "random"})
	if !errors.Is(err, ErrValidationUnknownSort) {
		t.Errorf("expected ErrValidationUnknownSort, got %v", err)
	}
}

func TestGetProfile_DefaultsWhenUnsaved(t *testing.T) {
	svc := NewProfileService(&fakeProfileRepository{}, logger.Nop())

	profile, err := svc.GetProfile(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Theme != "system" || profile.SortPreference != models.SortDateDesc {
		t.Errorf("expected defaults, got %+v", profile)
	}
}
