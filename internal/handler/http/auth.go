// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-ride-share/internal/logger"
	"github.com/MKhiriev/go-ride-share/internal/service"
	"github.com/MKhiriev/go-ride-share/internal/store"
	"github.com/MKhiriev/go-ride-share/internal/utils"
	"github.com/MKhiriev/go-ride-share/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), msgInvalidJSON)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrLoginAlreadyExists):
			writeError(w, r, err, msgUserExists)
		case errors.Is(err, service.ErrPasswordTooLong):
			writeError(w, r, err, msgPasswordTooLong)
		default:
			writeError(w, r, err, msgMissingCredentials)
		}
		return
	}

	log.Info().Str("username", registeredUser.Username).Msg("user signed up")
	utils.WriteText(w, msgSignupSuccessful, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), msgInvalidJSON)
		return
	}

	log.Debug().Any("received user info", user.Credentials()).Send()

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		writeError(w, r, err, msgInvalidCredentials)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	log.Debug().Str("username", foundUser.Username).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString}, http.StatusOK)
}
