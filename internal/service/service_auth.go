// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avkarpov/itemvault/internal/config"
	"github.com/avkarpov/itemvault/internal/logger"
	"github.com/avkarpov/itemvault/internal/store"
	"github.com/avkarpov/itemvault/internal/utils"
	"github.com/avkarpov/itemvault/models"
	"github.com/golang-jwt/jwt/v5"
)

// minPasswordLength is the minimum accepted password length at registration
// and on password change.
const minPasswordLength = 6

// BearerTokenType is the token_type field of every issued token pair.
const BearerTokenType = "bearer"

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

	// accessTokenDuration controls how long a newly issued access token
	// remains valid.
	accessTokenDuration time.Duration

	// refreshTokenDuration controls how long a newly issued refresh token
	// remains valid.
	refreshTokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       userRepository,
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		accessTokenDuration:  cfg.AccessTokenDuration,
		refreshTokenDuration: cfg.RefreshTokenDuration,
		logger:               logger,
	}
}

// RegisterUser creates a new active, non-superuser account.
//
// It validates the email shape and minimum password length, hashes the
// password with bcrypt, and delegates persistence to the UserRepository.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if the email or password fails validation.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
func (a *authService) RegisterUser(ctx context.Context, create models.UserCreate) (models.User, error) {
	log := logger.FromContext(ctx)

	if !isValidEmail(create.Email) || len(create.Password) < minPasswordLength {
		log.Error().Str("email", create.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hashedPassword, err := utils.HashPassword(create.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, ErrInvalidDataProvided
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:          create.Email,
		HashedPassword: hashedPassword,
		FullName:       create.FullName,
		IsActive:       true,
	})
	if err != nil {
		log.Err(err).Str("email", create.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by email and password.
//
// A missing account and a wrong password both map to ErrInvalidCredentials so
// that the response does not reveal whether the email is registered.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrInvalidCredentials on unknown email or password mismatch.
//   - ErrInactiveUser if the account is deactivated.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyPassword(password, foundUser.HashedPassword) {
		log.Warn().Int64("id", foundUser.ID).Str("email", email).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	if !foundUser.IsActive {
		return models.User{}, ErrInactiveUser
	}

	return foundUser, nil
}

// CreateTokenPair issues a fresh access+refresh token pair for the given user.
//
// Both tokens are signed with the configured tokenSignKey, carry the
// configured tokenIssuer as the "iss" claim and the user ID as "sub", and
// differ only in lifetime and "type" claim.
func (a *authService) CreateTokenPair(ctx context.Context, user models.User) (models.TokenPair, error) {
	accessToken, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, models.TokenTypeAccess, a.accessTokenDuration, a.tokenSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refreshToken, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, models.TokenTypeRefresh, a.refreshTokenDuration, a.tokenSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{
		AccessToken:  accessToken.SignedString,
		RefreshToken: refreshToken.SignedString,
		TokenType:    BearerTokenType,
	}, nil
}

// Refresh exchanges a valid refresh token for a brand-new token pair.
//
// The presented refresh token stays valid until its own expiry; no
// server-side state is kept.
//
// Returns:
//   - ErrTokenIsExpired / ErrTokenIsInvalid on validation failure.
//   - ErrWrongTokenType if an access token is presented.
//   - store.ErrUserNotFound (wrapped) if the subject account is gone.
//   - ErrInactiveUser if the subject account is deactivated.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	token, err := a.parseToken(refreshToken)
	if err != nil {
		return models.TokenPair{}, err
	}
	if token.TokenType != models.TokenTypeRefresh {
		return models.TokenPair{}, ErrWrongTokenType
	}

	user, err := a.loadActiveUser(ctx, token.UserID)
	if err != nil {
		return models.TokenPair{}, err
	}

	return a.CreateTokenPair(ctx, user)
}

// CurrentUser resolves an access token to the account it was issued for.
//
// Returns:
//   - ErrTokenIsExpired / ErrTokenIsInvalid on validation failure.
//   - ErrWrongTokenType if a refresh token is presented.
//   - store.ErrUserNotFound (wrapped) if the subject account is gone.
//   - ErrInactiveUser if the subject account is deactivated.
func (a *authService) CurrentUser(ctx context.Context, accessToken string) (models.User, error) {
	token, err := a.parseToken(accessToken)
	if err != nil {
		return models.User{}, err
	}
	if token.TokenType != models.TokenTypeAccess {
		return models.User{}, ErrWrongTokenType
	}

	return a.loadActiveUser(ctx, token.UserID)
}

// parseToken validates a raw JWT string and normalises validation failures:
// expiry maps to ErrTokenIsExpired, everything else to ErrTokenIsInvalid.
func (a *authService) parseToken(tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}

func (a *authService) loadActiveUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, err
		}
		logger.FromContext(ctx).Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	if !user.IsActive {
		return models.User{}, ErrInactiveUser
	}

	return user, nil
}

// isValidEmail applies the minimal shape check the API promises: a non-empty
// local part and domain separated by a single "@".
func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}
	return at < len(email)-1
}
