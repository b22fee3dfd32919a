// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-ride-share/internal/logger"
	"github.com/MKhiriev/go-ride-share/models"
)

// userRepository is the in-memory [UserRepository]. Users are never updated
// or deleted once created.
type userRepository struct {
	mu    sync.RWMutex
	users map[string]models.User

	logger *logger.Logger
}

// NewUserRepository constructs an empty in-memory [UserRepository].
func NewUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		users:  make(map[string]models.User),
		logger: logger,
	}
}

// CreateUser stores the username and password hash. The duplicate check and
// the insert happen under the same lock, so of two concurrent signups with
// the same username exactly one succeeds.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Username == "" {
		return models.User{}, ErrEmptyUsername
	}

	stored := models.User{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[stored.Username]; ok {
		log.Debug().Str("username", stored.Username).Msg("username is taken")
		return models.User{}, ErrLoginAlreadyExists
	}
	r.users[stored.Username] = stored

	return stored, nil
}

// FindUserByUsername returns the stored user or [ErrNoUserWasFound].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	return user, nil
}
