// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a session JWT.
//
// It embeds [jwt.RegisteredClaims] so it can be passed directly to
// [jwt.ParseWithClaims]. SignedString holds the compact form handed to the
// client; Username is the cached "sub" claim after a successful parse.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation (header.payload.signature).
	SignedString string `json:"-"`

	// Username is the owner of the session, taken from the "sub" claim.
	Username string `json:"-"`
}

// String returns the compact signed token.
func (t *Token) String() string {
	return t.SignedString
}

// LoginResponse is the body returned by a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}
