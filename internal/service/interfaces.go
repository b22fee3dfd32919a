// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=RideServiceWrapper

import (
	"context"

	"github.com/MKhiriev/go-ride-share/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// RideService publishes ride offers and records booking requests. The owner
// of every record is the authenticated user found in ctx.
type RideService interface {
	PublishOffer(ctx context.Context, offer models.RideOffer) (string, error)
	ListOffers(ctx context.Context) ([]models.RideOffer, error)
	RequestBooking(ctx context.Context, booking models.BookingRequest) (string, error)
}

// RideServiceWrapper defines middleware composition for RideService.
// Implementations wrap an existing RideService to add behavior such as
// logging or validating.
type RideServiceWrapper interface {
	Wrap(RideService) RideService // returns a decorated RideService applying additional behavior
}

// LocationService exposes the location catalog to clients.
type LocationService interface {
	// Locations returns every region with its cities. The result is a copy.
	Locations(ctx context.Context) map[string][]string
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
