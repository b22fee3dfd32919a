// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-ride-share/internal/logger"
	"github.com/MKhiriev/go-ride-share/models"
)

// bookingRepository is the in-memory, append-only [BookingRepository].
// Bookings are write-only: nothing in the API reads them back.
type bookingRepository struct {
	mu       sync.Mutex
	bookings []models.BookingRequest

	ids    IDGenerator
	logger *logger.Logger
}

// NewBookingRepository constructs an empty in-memory [BookingRepository].
func NewBookingRepository(ids IDGenerator, logger *logger.Logger) BookingRepository {
	logger.Debug().Msg("creating booking repository")
	return &bookingRepository{
		bookings: make([]models.BookingRequest, 0),
		ids:      ids,
		logger:   logger,
	}
}

func (r *bookingRepository) SaveBooking(ctx context.Context, booking models.BookingRequest) (models.BookingRequest, error) {
	booking.ID = r.ids.Generate()

	r.mu.Lock()
	r.bookings = append(r.bookings, booking)
	r.mu.Unlock()

	logger.FromContext(ctx).Debug().Str("id", booking.ID).Str("username", booking.Username).Msg("booking request saved")

	return booking, nil
}

