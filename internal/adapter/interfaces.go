// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the ride-share HTTP API.
//
// [ServerAdapter] hides the REST details: request serialisation, the bearer
// token header and mapping of HTTP status codes to the sentinel errors in
// errors.go, so callers can use [errors.Is] (e.g. [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-ride-share/models"
)

// ServerAdapter defines client-side communication with the ride-share server.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Signup registers a new user. It does not log in.
	Signup(ctx context.Context, user models.User) error

	// Login authenticates the user, stores the returned token via SetToken
	// and returns it.
	Login(ctx context.Context, user models.User) (string, error)

	// Locations fetches the location catalog.
	Locations(ctx context.Context) (map[string][]string, error)

	// ShareRide publishes a ride offer and returns its ID.
	ShareRide(ctx context.Context, offer models.RideOffer) (string, error)

	// AvailableRides lists every published offer in publication order.
	AvailableRides(ctx context.Context) ([]models.RideOffer, error)

	// BookRide submits a booking request and returns its ID.
	BookRide(ctx context.Context, booking models.BookingRequest) (string, error)

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
