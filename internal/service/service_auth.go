// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/booknotes/internal/config"
	"github.com/MKhiriev/booknotes/internal/logger"
	"github.com/MKhiriev/booknotes/internal/store"
	"github.com/MKhiriev/booknotes/internal/utils"
	"github.com/MKhiriev/booknotes/models"
)

const minUsernameLength = 3

// authService is the concrete implementation of [AuthService].
// It handles registration, credential verification, profile mutation and the
// session token lifecycle using a [store.UserRepository] for persistence and
// bcrypt for password hashing.
type authService struct {
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued session token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued session remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given
// [store.UserRepository] and populated with session parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Session, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.SignKey,
		tokenIssuer:    cfg.Issuer,
		tokenDuration:  cfg.Duration,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// The username is trimmed and must be at least 3 characters long; the
// password must be non-empty. The password is hashed with bcrypt before
// storage.
//
// Returns the persisted user or:
//   - [ErrUsernameTooShort] / [ErrPasswordRequired] on validation failure.
//   - [store.ErrUsernameAlreadyExists] when the username is taken.
func (a *authService) Register(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if len(username) < minUsernameLength {
		return models.User{}, ErrUsernameTooShort
	}
	if password == "" {
		return models.User{}, ErrPasswordRequired
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	now := time.Now()
	user := models.User{
		UserID:       uuid.NewString(),
		Username:     username,
		PasswordHash: string(passwordHash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Authenticate verifies a username/password pair.
//
// On success the login time is recorded. Returns:
//   - [ErrUsernameTooShort] / [ErrPasswordRequired] on validation failure.
//   - A wrapped [store.ErrNoUserWasFound] for an unknown username.
//   - [ErrWrongPassword] when the password does not match.
func (a *authService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if len(username) < minUsernameLength {
		return models.User{}, ErrUsernameTooShort
	}
	if password == "" {
		return models.User{}, ErrPasswordRequired
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Warn().Str("username", username).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	// login proceeds even if the timestamp write fails
	if err := a.userRepository.TouchLastLogin(ctx, foundUser.UserID); err != nil {
		log.Err(err).Str("username", username).Msg("recording last login failed")
	} else {
		now := time.Now()
		foundUser.LastLogin = &now
	}

	return foundUser, nil
}

// GetUser retrieves a user record by canonical id.
func (a *authService) GetUser(ctx context.Context, userID string) (models.User, error) {
	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// UpdateProfile changes the username and bio of an existing user.
//
// The full record is fetched first so untouched fields survive the update,
// and the refreshed record is returned for session re-issue.
func (a *authService) UpdateProfile(ctx context.Context, userID, username, bio string) (models.User, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if len(username) < minUsernameLength {
		return models.User{}, ErrUsernameTooShort
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("userID", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	user.Username = username
	user.Bio = bio

	updatedUser, err := a.userRepository.UpdateProfile(ctx, user)
	if err != nil {
		log.Err(err).Str("userID", userID).Msg("profile update ended with error")
		return models.User{}, fmt.Errorf("profile update ended with error: %w", err)
	}

	return updatedUser, nil
}

// IssueSession signs a session token carrying the user's display identity.
func (a *authService) IssueSession(user models.User) (string, error) {
	token, err := utils.GenerateSessionToken(a.tokenIssuer, models.NewSessionUser(user), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return "", fmt.Errorf("session token creation failed: %w", err)
	}

	return token, nil
}

// ParseSession validates and parses a raw session token.
//
// Any validation failure (expired, wrong issuer, malformed, bad signature)
// is normalized to [ErrSessionInvalid] so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseSession(tokenString string) (models.SessionUser, error) {
	sessionUser, err := utils.ValidateAndParseSessionToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.SessionUser{}, ErrSessionInvalid
	}

	return sessionUser, nil
}
