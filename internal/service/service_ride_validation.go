// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ride-share/internal/logger"
	"github.com/MKhiriev/go-ride-share/internal/validators"
	"github.com/MKhiriev/go-ride-share/models"
)

// RideValidationService rejects offers and bookings with missing fields or
// locations outside the catalog before they reach the wrapped RideService.
type RideValidationService struct {
	inner     RideService
	validator validators.Validator
}

func NewRideValidationService(locations validators.LocationChecker) RideServiceWrapper {
	return &RideValidationService{
		validator: validators.NewRideValidator(locations),
	}
}

func (v *RideValidationService) PublishOffer(ctx context.Context, offer models.RideOffer) (string, error) {
	if err := v.validator.Validate(ctx, offer); err != nil {
		logger.FromContext(ctx).Info().Err(err).Msg("ride offer rejected")
		return "", fmt.Errorf("error during ride offer validation: %w", validationError(err))
	}

	return v.inner.PublishOffer(ctx, offer)
}

func (v *RideValidationService) ListOffers(ctx context.Context) ([]models.RideOffer, error) {
	return v.inner.ListOffers(ctx)
}

func (v *RideValidationService) RequestBooking(ctx context.Context, booking models.BookingRequest) (string, error) {
	if err := v.validator.Validate(ctx, booking); err != nil {
		logger.FromContext(ctx).Info().Err(err).Msg("booking request rejected")
		return "", fmt.Errorf("error during booking request validation: %w", validationError(err))
	}

	return v.inner.RequestBooking(ctx, booking)
}

func (v *RideValidationService) Wrap(wrapped RideService) RideService {
	v.inner = wrapped
	return v
}

// validationError maps validator errors onto the service's request errors,
// keeping the original error in the chain.
func validationError(err error) error {
	switch {
	case errors.Is(err, validators.ErrMissingFields):
		return fmt.Errorf("%w: %w", ErrMissingRideDetails, err)
	case errors.Is(err, validators.ErrInvalidStartLocation):
		return fmt.Errorf("%w: %w", ErrInvalidStartLocation, err)
	case errors.Is(err, validators.ErrInvalidDestinationLocation):
		return fmt.Errorf("%w: %w", ErrInvalidDestinationLocation, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
}
