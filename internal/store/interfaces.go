// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-ride-share/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store: username → password hash.
type UserRepository interface {
	// CreateUser stores user. Returns ErrLoginAlreadyExists if the username
	// is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername returns the stored user or ErrNoUserWasFound.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// OfferRepository is the append-only list of ride offers.
type OfferRepository interface {
	// SaveOffer appends offer and returns it with its assigned ID.
	SaveOffer(ctx context.Context, offer models.RideOffer) (models.RideOffer, error)
	// GetAllOffers returns every stored offer in insertion order.
	GetAllOffers(ctx context.Context) ([]models.RideOffer, error)
}

// BookingRepository is the append-only list of booking requests.
type BookingRepository interface {
	// SaveBooking appends booking and returns it with its assigned ID.
	SaveBooking(ctx context.Context, booking models.BookingRequest) (models.BookingRequest, error)
}

// IDGenerator produces unique record identifiers.
type IDGenerator interface {
	Generate() string
}
