// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when a user with the same username
	// is already registered.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when no user matches the username.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrEmptyUsername is returned when a user without a username is
	// passed to CreateUser.
	ErrEmptyUsername = errors.New("empty username")
)
