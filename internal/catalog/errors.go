// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package catalog

import "errors"

var (
	ErrEmptyCatalog   = errors.New("location catalog is empty")
	ErrInvalidCatalog = errors.New("invalid location catalog")
)
