// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is an account registered through the signup endpoint.
//
// Username is the unique key. Password carries the plaintext value only
// while a request is being processed; it is never stored or serialised back
// to a client. PasswordHash holds the salted bcrypt hash kept by the
// credential store.
type User struct {
	// Username is the unique login name chosen at signup.
	Username string `json:"username"`

	// Password is the plaintext password received from the client.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the password. Never exposed via JSON.
	PasswordHash string `json:"-"`
}

// Credentials returns a copy of u without the plaintext password,
// suitable for logging.
func (u User) Credentials() User {
	return User{Username: u.Username}
}
