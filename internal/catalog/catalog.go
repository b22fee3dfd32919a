// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package catalog holds the fixed set of regions and cities that ride
// offers and booking requests may refer to.
//
// A Catalog is built once at startup and never modified afterwards, so it
// can be shared between goroutines without locking.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sort"
)

// Catalog is an immutable region → cities lookup. Names are matched
// exactly and case-sensitively.
type Catalog struct {
	cities map[string][]string
}

// New builds a catalog from the given mapping. The input is copied; later
// changes to it do not affect the catalog. Regions without cities and empty
// names are rejected.
func New(locations map[string][]string) (*Catalog, error) {
	if len(locations) == 0 {
		return nil, ErrEmptyCatalog
	}

	cities := make(map[string][]string, len(locations))
	for region, list := range locations {
		if region == "" {
			return nil, fmt.Errorf("%w: empty region name", ErrInvalidCatalog)
		}
		if len(list) == 0 {
			return nil, fmt.Errorf("%w: region %q has no cities", ErrInvalidCatalog, region)
		}
		if slices.Contains(list, "") {
			return nil, fmt.Errorf("%w: region %q has an empty city name", ErrInvalidCatalog, region)
		}
		cities[region] = slices.Clone(list)
	}

	return &Catalog{cities: cities}, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultLocations)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

// Load reads a catalog from a JSON file of the form
// {"Region": ["City", ...], ...}. An empty path returns [Default].
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening catalog file: %w", err)
	}
	defer f.Close()

	var locations map[string][]string
	if err := json.NewDecoder(f).Decode(&locations); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	return New(locations)
}

// IsValid reports whether city belongs to region.
func (c *Catalog) IsValid(region, city string) bool {
	cities, ok := c.cities[region]
	if !ok {
		return false
	}
	return slices.Contains(cities, city)
}

// Regions returns all region names sorted alphabetically.
func (c *Catalog) Regions() []string {
	regions := make([]string, 0, len(c.cities))
	for region := range c.cities {
		regions = append(regions, region)
	}
	sort.Strings(regions)
	return regions
}

// Cities returns the cities of region in catalog order, or nil if the
// region is unknown. The returned slice is a copy.
func (c *Catalog) Cities(region string) []string {
	return slices.Clone(c.cities[region])
}

// Snapshot returns a deep copy of the whole mapping, e.g. for serialising
// it to clients.
func (c *Catalog) Snapshot() map[string][]string {
	out := make(map[string][]string, len(c.cities))
	for region, cities := range c.cities {
		out[region] = slices.Clone(cities)
	}
	return out
}
