// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ride-share/internal/config"
	"github.com/MKhiriev/go-ride-share/internal/logger"
	"github.com/MKhiriev/go-ride-share/internal/store"
	"github.com/MKhiriev/go-ride-share/internal/utils"
	"github.com/MKhiriev/go-ride-share/models"
	"golang.org/x/crypto/bcrypt"
)

// tokenDuration is the lifetime of every session token.
const tokenDuration = time.Hour

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for storage and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// passwordHashCost is the bcrypt cost used at registration time.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// now returns the issuance time of new tokens.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		passwordHashCost: cfg.PasswordHashCost,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		now:              time.Now,
		logger:           logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that both Username and Password are non-empty, hashes the
// password with bcrypt, and delegates storage to the UserRepository.
//
// Returns the stored user (without the plaintext password) or:
//   - ErrInvalidDataProvided if Username or Password is empty, or the
//     password is longer than bcrypt accepts.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken, see store.ErrLoginAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Username == "" || user.Password == "" {
		log.Error().Any("user", user.Credentials()).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(user.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Any("user", user.Credentials()).Msg("password hashing failed")
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return models.User{}, fmt.Errorf("%w: %w", ErrPasswordTooLong, err)
		}
		return models.User{}, err
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     user.Username,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Any("user", user.Credentials()).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// An unknown username and a wrong password both yield ErrInvalidCredentials,
// so a caller cannot tell which one was wrong.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Username == "" || user.Password == "" {
		log.Error().Any("user", user.Credentials()).Msg("invalid user data provided")
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, user.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("username", user.Username).Msg("login attempt for unknown user")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = utils.CheckPassword(foundUser.PasswordHash, user.Password); err != nil {
		log.Info().Str("username", foundUser.Username).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires one hour after issuance.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Username, a.now(), tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (bad signature, foreign algorithm, expired, wrong
// issuer, malformed) is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
