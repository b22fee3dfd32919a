// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-ride-share/internal/catalog"
	"github.com/MKhiriev/go-ride-share/internal/config"
	"github.com/MKhiriev/go-ride-share/internal/logger"
	"github.com/MKhiriev/go-ride-share/internal/store"
	"github.com/MKhiriev/go-ride-share/models"
)

type Services struct {
	AuthService     AuthService
	RideService     RideService
	LocationService LocationService
	AppInfoService  AppInfoService
}

// NewServices wires the services on top of storages. Ride requests are
// validated against locations before they reach the registry.
func NewServices(storages *store.Storages, cfg config.App, locations *catalog.Catalog, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	rideService := NewRideService(storages.OfferRepository, storages.BookingRepository, logger)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg, logger),
		RideService:     NewRideValidationService(locations).Wrap(rideService),
		LocationService: NewLocationService(locations),
		AppInfoService:  NewAppInfoService(buildInfo, logger),
	}
}
