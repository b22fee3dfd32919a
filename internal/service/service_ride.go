// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ride-share/internal/logger"
	"github.com/MKhiriev/go-ride-share/internal/store"
	"github.com/MKhiriev/go-ride-share/internal/utils"
	"github.com/MKhiriev/go-ride-share/models"
)

// rideService appends offers and bookings to the registry. It performs no
// validation of its own; see RideValidationService.
type rideService struct {
	offerRepository   store.OfferRepository
	bookingRepository store.BookingRepository

	logger *logger.Logger
}

func NewRideService(offerRepository store.OfferRepository, bookingRepository store.BookingRepository, logger *logger.Logger) RideService {
	return &rideService{
		offerRepository:   offerRepository,
		bookingRepository: bookingRepository,
		logger:            logger,
	}
}

// PublishOffer stores the offer under the authenticated user and returns
// its ID. Any username in the payload is overwritten.
func (s *rideService) PublishOffer(ctx context.Context, offer models.RideOffer) (string, error) {
	username, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		return "", ErrUnauthenticated
	}
	offer.Username = username

	saved, err := s.offerRepository.SaveOffer(ctx, offer)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("error saving ride offer")
		return "", fmt.Errorf("error saving ride offer: %w", err)
	}

	return saved.ID, nil
}

// ListOffers returns every offer in insertion order. The result is never nil.
func (s *rideService) ListOffers(ctx context.Context) ([]models.RideOffer, error) {
	offers, err := s.offerRepository.GetAllOffers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error listing ride offers")
		return nil, fmt.Errorf("error listing ride offers: %w", err)
	}

	if offers == nil {
		offers = []models.RideOffer{}
	}

	return offers, nil
}

// RequestBooking stores the booking request under the authenticated user and
// returns its ID. The request is not matched against any offer.
func (s *rideService) RequestBooking(ctx context.Context, booking models.BookingRequest) (string, error) {
	username, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		return "", ErrUnauthenticated
	}
	booking.Username = username

	saved, err := s.bookingRepository.SaveBooking(ctx, booking)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("error saving booking request")
		return "", fmt.Errorf("error saving booking request: %w", err)
	}

	return saved.ID, nil
}
