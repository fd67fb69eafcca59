package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/asalimova/word-inventory/internal/config"
	"github.com/asalimova/word-inventory/internal/logger"
	"github.com/asalimova/word-inventory/internal/store"
	"github.com/asalimova/word-inventory/internal/utils"
	"github.com/asalimova/word-inventory/models"
)

func newTestAuthService(repo store.UserRepository) AuthService {
	return NewAuthService(repo, config.App{
		TokenSignKey:  "secret",
		TokenIssuer:   "word-inventory",
		TokenDuration: time.Hour,
	}, logger.Nop())
}

func TestRegisterUser_HashesPassword(t *testing.T) {
	var stored models.User
	repo := &fakeUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			stored = user
			user.UserID = 1
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	registered, err := svc.RegisterUser(context.Background(), models.User{Login: "alina", Password: "s3cret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if registered.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", registered.UserID)
	}
	if stored.Password != "" {
		t.Error("expected plain password to be dropped before persistence")
	}
	if stored.PasswordHash == "" || stored.PasswordHash == "s3cret" {
		t.Error("expected password to be hashed")
	}
	if !utils.CheckPassword(stored.PasswordHash, "s3cret") {
		t.Error("expected stored hash to verify against the password")
	}
}

func TestRegisterUser_InvalidData(t *testing.T) {
	svc := newTestAuthService(&fakeUserRepository{})

	tests := []struct {
		name string
		user models.User
	}{
		{"empty login", models.User{Password: "s3cret"}},
		{"blank login", models.User{Login: "   ", Password: "s3cret"}},
		{"empty password", models.User{Login: "alina"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.RegisterUser(context.Background(), tt.user); !errors.Is(err, ErrInvalidDataProvided) {
				t.Errorf("expected ErrInvalidDataProvided, got %v", err)
			}
		})
	}
}

func TestRegisterUser_LoginTaken(t *testing.T) {
	repo := &fakeUserRepository{
		createUserFn: func(context.Context, models.User) (models.User, error) {
			return models.User{}, store.ErrLoginAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "alina", Password: "s3cret"})
	if !errors.Is(err, store.ErrLoginAlreadyExists) {
		t.Fatalf("expected wrapped ErrLoginAlreadyExists, got %v", err)
	}
}

func TestLogin_IssuesValidToken(t *testing.T) {
	hash, err := utils.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo := &fakeUserRepository{
		findUserByLoginFn: func(context.Context, string) (models.User, error) {
			return models.User{UserID: 42, Login: "alina", PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(repo)

	token, err := svc.Login(context.Background(), models.User{Login: "alina", Password: "s3cret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := svc.ValidateToken(token.SignedString)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.UserID != 42 {
		t.Errorf("expected UserID=42, got %d", parsed.UserID)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo := &fakeUserRepository{
		findUserByLoginFn: func(context.Context, string) (models.User, error) {
			return models.User{UserID: 42, PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(repo)

	if _, err = svc.Login(context.Background(), models.User{Login: "alina", Password: "wrong"}); !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
}

// TestLogin_UnknownUser verifies that a missing account is reported the
// same way as a wrong password.
func TestLogin_UnknownUser(t *testing.T) {
	repo := &fakeUserRepository{
		findUserByLoginFn: func(context.Context, string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(repo)

	if _, err := svc.Login(context.Background(), models.User{Login: "ghost", Password: "s3cret"}); !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newTestAuthService(&fakeUserRepository{})

	if _, err := svc.ValidateToken("not.a.token"); !errors.Is(err, ErrTokenIsExpiredOrInvalid) {
		t.Fatalf("expected ErrTokenIsExpiredOrInvalid, got %v", err)
	}
}
