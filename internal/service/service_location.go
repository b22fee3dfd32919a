// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-ride-share/internal/catalog"
)

type locationService struct {
	catalog *catalog.Catalog
}

func NewLocationService(c *catalog.Catalog) LocationService {
	return &locationService{catalog: c}
}

func (s *locationService) Locations(ctx context.Context) map[string][]string {
	return s.catalog.Snapshot()
}
