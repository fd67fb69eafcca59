package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/asalimova/word-inventory/internal/config"
	"github.com/asalimova/word-inventory/internal/logger"
	"github.com/asalimova/word-inventory/internal/store"
	"github.com/asalimova/word-inventory/internal/utils"
	"github.com/asalimova/word-inventory/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that both Login and Password are non-empty, hashes the
// password with bcrypt, and delegates persistence to the UserRepository.
// The plain password is dropped from the returned record.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if Login or Password is empty;
//   - a wrapped storage error if the repository call fails (e.g. login
//     already taken — see store.ErrLoginAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Login = strings.TrimSpace(user.Login)
	if user.Login == "" || user.Password == "" {
		log.Error().Str("login", user.Login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(user.Password)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}
	user.PasswordHash = hash
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and issues a signed JWT.
//
// Returns the token or:
//   - ErrInvalidDataProvided if Login or Password is empty;
//   - ErrWrongPassword if the account exists but the password does not
//     match, or if the account does not exist at all — the two cases are
//     deliberately indistinguishable to the caller;
//   - a wrapped storage error for any other repository failure.
func (a *authService) Login(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	user.Login = strings.TrimSpace(user.Login)
	if user.Login == "" || user.Password == "" {
		log.Error().Str("login", user.Login).Msg("invalid user data provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, user.Login)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Token{}, ErrWrongPassword
		}

		log.Err(err).Str("login", user.Login).Msg("user lookup ended with error")
		return models.Token{}, fmt.Errorf("user lookup ended with error: %w", err)
	}

	if !utils.CheckPassword(foundUser.PasswordHash, user.Password) {
		return models.Token{}, ErrWrongPassword
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, foundUser.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Msg("error generating token")
		return models.Token{}, fmt.Errorf("error generating token: %w", err)
	}
	token.UserID = foundUser.UserID

	return token, nil
}

// ValidateToken verifies a raw JWT string and returns the parsed token with
// the UserID claim extracted. Any validation failure (bad signature, wrong
// issuer, expired) is reported as ErrTokenIsExpiredOrInvalid.
func (a *authService) ValidateToken(tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
