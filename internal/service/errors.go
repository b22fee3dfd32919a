// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrPasswordTooLong     = fmt.Errorf("%w: password is too long", ErrInvalidDataProvided)
	ErrInvalidCredentials  = errors.New("invalid username or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrUnauthenticated         = errors.New("no authenticated user in context")

	// ErrInvalidRequest covers every rejected ride offer or booking request.
	ErrInvalidRequest = errors.New("invalid request")

	ErrMissingRideDetails         = fmt.Errorf("%w: missing required details", ErrInvalidRequest)
	ErrInvalidStartLocation       = fmt.Errorf("%w: invalid starting state or city", ErrInvalidRequest)
	ErrInvalidDestinationLocation = fmt.Errorf("%w: invalid destination state or city", ErrInvalidRequest)
)
