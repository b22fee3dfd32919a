// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingFields              = errors.New("required fields are missing")
	ErrInvalidStartLocation       = errors.New("invalid starting state or city")
	ErrInvalidDestinationLocation = errors.New("invalid destination state or city")
)
