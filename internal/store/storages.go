// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-ride-share/internal/logger"
	"github.com/MKhiriev/go-ride-share/internal/utils"
)

// Storages owns all process state. It is created once at startup; its
// contents live until the process exits.
type Storages struct {
	UserRepository    UserRepository
	OfferRepository   OfferRepository
	BookingRepository BookingRepository
}

// NewStorages creates the in-memory repositories. Record IDs are UUIDv7.
func NewStorages(logger *logger.Logger) *Storages {
	logger.Info().Msg("creating in-memory storages...")

	ids := utils.NewUUIDGenerator()

	return &Storages{
		UserRepository:    NewUserRepository(logger),
		OfferRepository:   NewOfferRepository(ids, logger),
		BookingRepository: NewBookingRepository(ids, logger),
	}
}
