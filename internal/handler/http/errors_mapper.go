// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-ride-share/internal/logger"
	"github.com/MKhiriev/go-ride-share/internal/service"
	"github.com/MKhiriev/go-ride-share/internal/store"
	"github.com/MKhiriev/go-ride-share/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusBadRequest,
	service.ErrInvalidRequest:          http.StatusBadRequest,
	service.ErrUnauthenticated:         http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusForbidden,

	store.ErrLoginAlreadyExists: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status. Unmapped errors
// never leak their message: the client gets the status text instead.
func writeError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		message = http.StatusText(status)
	}

	logger.FromRequest(r).Err(err).Int("status", status).Msg(message)
	utils.WriteText(w, message, status)
}
