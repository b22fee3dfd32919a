// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-ride-share/internal/config"
	"github.com/MKhiriev/go-ride-share/internal/logger"
	"github.com/MKhiriev/go-ride-share/internal/mock"
	"github.com/MKhiriev/go-ride-share/internal/store"
	"github.com/MKhiriev/go-ride-share/internal/utils"
	"github.com/MKhiriev/go-ride-share/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// ─── helpers ──────────────────────────────────────────────────────────────────

var testAppConfig = config.App{
	TokenSignKey:     "test-sign-key",
	TokenIssuer:      "test-issuer",
	PasswordHashCost: bcrypt.MinCost,
}

func newTestAuthService(t *testing.T) (*authService, *mock.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	svc := NewAuthService(repo, testAppConfig, logger.Nop()).(*authService)
	return svc, repo
}

func hashed(t *testing.T, password string) string {
	t.Helper()

	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

// ─── RegisterUser ─────────────────────────────────────────────────────────────

func TestRegisterUser_Success(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "alice", u.Username)
			assert.Empty(t, u.Password, "plaintext password must not reach the store")
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pw123")))
			return u, nil
		},
	)

	user, err := svc.RegisterUser(ctx, models.User{Username: "alice", Password: "pw123"})

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.Password)
}

func TestRegisterUser_UsesConfiguredCost(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	cfg := testAppConfig
	cfg.PasswordHashCost = 8
	svc := NewAuthService(repo, cfg, logger.Nop())

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			cost, err := bcrypt.Cost([]byte(u.PasswordHash))
			require.NoError(t, err)
			assert.Equal(t, 8, cost)
			return u, nil
		},
	)

	_, err := svc.RegisterUser(context.Background(), models.User{Username: "alice", Password: "pw123"})
	require.NoError(t, err)
}

func TestRegisterUser_EmptyFields(t *testing.T) {
	tests := []struct {
		name string
		user models.User
	}{
		{"empty username", models.User{Password: "pw"}},
		{"empty password", models.User{Username: "alice"}},
		{"both empty", models.User{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestAuthService(t)

			_, err := svc.RegisterUser(context.Background(), tt.user)

			require.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestRegisterUser_PasswordTooLong(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.RegisterUser(context.Background(), models.User{
		Username: "alice",
		Password: strings.Repeat("p", 73),
	})

	require.ErrorIs(t, err, ErrPasswordTooLong)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
}

func TestRegisterUser_Duplicate(t *testing.T) {
	svc, repo := newTestAuthService(t)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{Username: "alice", Password: "pw"})

	require.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

// ─── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	svc, repo := newTestAuthService(t)

	stored := models.User{Username: "alice", PasswordHash: hashed(t, "pw123")}
	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(stored, nil)

	user, err := svc.Login(context.Background(), models.User{Username: "alice", Password: "pw123"})

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestLogin_WrongPasswordAndUnknownUserAreIndistinguishable(t *testing.T) {
	svc, repo := newTestAuthService(t)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").
		Return(models.User{Username: "alice", PasswordHash: hashed(t, "pw123")}, nil)
	repo.EXPECT().FindUserByUsername(gomock.Any(), "mallory").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, wrongPassword := svc.Login(context.Background(), models.User{Username: "alice", Password: "nope"})
	_, unknownUser := svc.Login(context.Background(), models.User{Username: "mallory", Password: "pw123"})

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestLogin_EmptyFields(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), models.User{Username: "alice"})

	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_StoreFailure(t *testing.T) {
	svc, repo := newTestAuthService(t)
	storeErr := errors.New("boom")

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, storeErr)

	_, err := svc.Login(context.Background(), models.User{Username: "alice", Password: "pw"})

	require.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ─── CreateToken / ParseToken ─────────────────────────────────────────────────

func TestCreateToken_ExpiresInOneHour(t *testing.T) {
	svc, _ := newTestAuthService(t)
	issuedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.CreateToken(context.Background(), models.User{Username: "alice"})

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, "alice", token.Username)
	assert.Equal(t, issuedAt, token.IssuedAt.Time.UTC())
	assert.Equal(t, issuedAt.Add(time.Hour), token.ExpiresAt.Time.UTC())
}

func TestCreateToken_EmptyUsername(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.CreateToken(context.Background(), models.User{})

	require.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestParseToken_RoundTrip(t *testing.T) {
	svc, _ := newTestAuthService(t)

	token, err := svc.CreateToken(context.Background(), models.User{Username: "alice"})
	require.NoError(t, err)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)

	require.NoError(t, err)
	assert.Equal(t, "alice", parsed.Username)
}

func TestParseToken_Expired(t *testing.T) {
	svc, _ := newTestAuthService(t)
	svc.now = func() time.Time { return time.Now().Add(-time.Hour - time.Minute) }

	token, err := svc.CreateToken(context.Background(), models.User{Username: "alice"})
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), token.SignedString)

	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_Invalid(t *testing.T) {
	svc, _ := newTestAuthService(t)

	other := NewAuthService(nil, config.App{TokenSignKey: "other-key", TokenIssuer: testAppConfig.TokenIssuer}, logger.Nop())
	foreign, err := other.CreateToken(context.Background(), models.User{Username: "alice"})
	require.NoError(t, err)

	otherIssuer := NewAuthService(nil, config.App{TokenSignKey: testAppConfig.TokenSignKey, TokenIssuer: "someone-else"}, logger.Nop())
	wrongIssuer, err := otherIssuer.CreateToken(context.Background(), models.User{Username: "alice"})
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"garbage":      "garbage",
		"empty":        "",
		"foreign key":  foreign.SignedString,
		"wrong issuer": wrongIssuer.SignedString,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), raw)
			require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
