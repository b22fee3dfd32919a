// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	testIssuer = "test-issuer"
	testKey    = "secret-key"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuedAt := time.Now().Truncate(time.Second)

	token, err := GenerateJWTToken(testIssuer, "alice", issuedAt, time.Hour, testKey)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Username != "alice" {
		t.Errorf("expected username 'alice', got %s", token.Username)
	}
	if token.Issuer != testIssuer {
		t.Errorf("expected issuer %s, got %s", testIssuer, token.Issuer)
	}
	if got := token.ExpiresAt.Sub(token.IssuedAt.Time); got != time.Hour {
		t.Errorf("expected 1h lifetime, got %s", got)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		username string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "alice", time.Hour, "key"},
		{"empty username", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "alice", 0, "key"},
		{"empty key", "iss", "alice", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.username, time.Now(), tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, "bob", time.Now(), 5*time.Minute, testKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, testKey, testIssuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsed.Username != "bob" {
		t.Errorf("expected username 'bob', got %s", parsed.Username)
	}
	if parsed.SignedString != generated.SignedString {
		t.Error("expected signed string to be kept")
	}
}

func TestValidateAndParseJWTToken_ExpiresAfterOneHour(t *testing.T) {
	issuedAt := time.Now()
	generated, err := GenerateJWTToken(testIssuer, "alice", issuedAt, time.Hour, testKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	at := func(d time.Duration) jwt.ParserOption {
		return jwt.WithTimeFunc(func() time.Time { return issuedAt.Add(d) })
	}

	if _, err := ValidateAndParseJWTToken(generated.SignedString, testKey, testIssuer, at(59*time.Minute)); err != nil {
		t.Errorf("expected token valid before expiry, got %v", err)
	}

	_, err = ValidateAndParseJWTToken(generated.SignedString, testKey, testIssuer, at(time.Hour+time.Second))
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	generated, _ := GenerateJWTToken(testIssuer, "alice", time.Now(), time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(generated.SignedString, "wrong-key", testIssuer)
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	generated, _ := GenerateJWTToken("real-issuer", "alice", time.Now(), time.Hour, testKey)

	_, err := ValidateAndParseJWTToken(generated.SignedString, testKey, "fake-issuer")
	if !errors.Is(err, jwt.ErrTokenInvalidIssuer) {
		t.Errorf("expected ErrTokenInvalidIssuer, got %v", err)
	}
}

func TestValidateAndParseJWTToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testKey))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(signed, testKey, testIssuer); err == nil {
		t.Error("expected HS512 token to be rejected")
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ValidateAndParseJWTToken(unsigned, testKey, testIssuer); err == nil {
		t.Error("expected unsigned token to be rejected")
	}
}

func TestValidateAndParseJWTToken_MissingClaims(t *testing.T) {
	noExp, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:  testIssuer,
		Subject: "alice",
	}).SignedString([]byte(testKey))
	if _, err := ValidateAndParseJWTToken(noExp, testKey, testIssuer); err == nil {
		t.Error("expected token without exp to be rejected")
	}

	noSub, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testKey))
	if _, err := ValidateAndParseJWTToken(noSub, testKey, testIssuer); !errors.Is(err, ErrEmptySubject) {
		t.Errorf("expected ErrEmptySubject, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", testKey, testIssuer)
	if !errors.Is(err, jwt.ErrTokenMalformed) {
		t.Errorf("expected ErrTokenMalformed, got %v", err)
	}
}
