// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-ride-share/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocations_ReturnsDetachedCopy(t *testing.T) {
	c, err := catalog.New(map[string][]string{"Goa": {"Panaji", "Margao"}})
	require.NoError(t, err)
	svc := NewLocationService(c)

	first := svc.Locations(context.Background())
	assert.Equal(t, map[string][]string{"Goa": {"Panaji", "Margao"}}, first)

	first["Goa"][0] = "Changed"
	delete(first, "Goa")

	second := svc.Locations(context.Background())
	assert.Equal(t, []string{"Panaji", "Margao"}, second["Goa"])
	assert.True(t, c.IsValid("Goa", "Panaji"))
}
