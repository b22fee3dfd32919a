// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-ride-share/internal/service"
	"github.com/MKhiriev/go-ride-share/internal/store"
	"github.com/MKhiriev/go-ride-share/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// ─── signup ───────────────────────────────────────────────────────────────────

func TestSignup(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		callsSvc   bool
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success",
			body:       `{"username":"alice","password":"pw123"}`,
			callsSvc:   true,
			wantStatus: http.StatusOK,
			wantBody:   "Signup successful",
		},
		{
			name:       "duplicate",
			body:       `{"username":"alice","password":"other"}`,
			serviceErr: fmt.Errorf("user creation ended with error: %w", store.ErrLoginAlreadyExists),
			callsSvc:   true,
			wantStatus: http.StatusBadRequest,
			wantBody:   "User exists",
		},
		{
			name:       "missing password",
			body:       `{"username":"alice"}`,
			serviceErr: service.ErrInvalidDataProvided,
			callsSvc:   true,
			wantStatus: http.StatusBadRequest,
			wantBody:   "Missing username or password",
		},
		{
			name:       "password too long",
			body:       `{"username":"alice","password":"x"}`,
			serviceErr: service.ErrPasswordTooLong,
			callsSvc:   true,
			wantStatus: http.StatusBadRequest,
			wantBody:   "Password is too long",
		},
		{
			name:       "unexpected error",
			body:       `{"username":"alice","password":"pw"}`,
			serviceErr: errors.New("boom"),
			callsSvc:   true,
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Internal Server Error",
		},
		{
			name:       "invalid json",
			body:       `{"username":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "Invalid JSON was passed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newTestRouter(t)
			if tt.callsSvc {
				mocks.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
					Return(models.User{Username: "alice"}, tt.serviceErr)
			}

			rr := doRequest(router, http.MethodPost, "/signup", tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestSignup_PassesCredentials(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.auth.EXPECT().RegisterUser(gomock.Any(), models.User{Username: "alice", Password: "pw123"}).
		Return(models.User{Username: "alice"}, nil)

	rr := doRequest(router, http.MethodPost, "/signup", `{"username":"alice","password":"pw123"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
}

// ─── login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	router, mocks := newTestRouter(t)
	gomock.InOrder(
		mocks.auth.EXPECT().Login(gomock.Any(), models.User{Username: "alice", Password: "pw123"}).
			Return(models.User{Username: "alice"}, nil),
		mocks.auth.EXPECT().CreateToken(gomock.Any(), models.User{Username: "alice"}).
			Return(models.Token{SignedString: "signed.jwt.token"}, nil),
	)

	rr := doRequest(router, http.MethodPost, "/login", `{"username":"alice","password":"pw123"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"token":"signed.jwt.token"}`, rr.Body.String())
	assert.Equal(t, "Bearer signed.jwt.token", rr.Header().Get("Authorization"))
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrInvalidCredentials)

	rr := doRequest(router, http.MethodPost, "/login", `{"username":"alice","password":"wrong"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid username or password", rr.Body.String())
}

func TestLogin_TokenCreationFails(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{Username: "alice"}, nil)
	mocks.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrTokenCreationFailed)

	rr := doRequest(router, http.MethodPost, "/login", `{"username":"alice","password":"pw"}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestLogin_InvalidJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doRequest(router, http.MethodPost, "/login", `not json`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid JSON was passed", rr.Body.String())
}
