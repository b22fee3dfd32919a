// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides helpers shared across the server: context keys,
// password hashing, JWT generation and validation, HTTP response writing
// and ID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so keys from other
// packages cannot collide with ours.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UsernameCtxKey is the context key under which the auth middleware stores
// the authenticated username.
var UsernameCtxKey = contextKey("username")

// WithUsername returns a copy of ctx carrying username.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, UsernameCtxKey, username)
}

// GetUsernameFromContext returns the authenticated username. ok is false if
// the value is missing, empty or of the wrong type.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok && username != ""
}
