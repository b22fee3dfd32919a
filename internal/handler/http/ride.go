// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-ride-share/internal/logger"
	"github.com/MKhiriev/go-ride-share/internal/service"
	"github.com/MKhiriev/go-ride-share/internal/utils"
	"github.com/MKhiriev/go-ride-share/models"
)

// resourceIDHeader carries the ID of a newly created offer or booking.
const resourceIDHeader = "X-Resource-ID"

func (h *Handler) shareRide(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var offer models.RideOffer
	if err := json.NewDecoder(r.Body).Decode(&offer); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), msgInvalidJSON)
		return
	}

	id, err := h.services.RideService.PublishOffer(ctx, offer)
	if err != nil {
		writeError(w, r, err, rideErrorMessage(err, msgMissingRideDetails))
		return
	}

	logger.FromRequest(r).Info().Str("id", id).Msg("ride offer published")

	w.Header().Set(resourceIDHeader, id)
	utils.WriteText(w, msgRideShared, http.StatusOK)
}

func (h *Handler) getAvailableRides(w http.ResponseWriter, r *http.Request) {
	offers, err := h.services.RideService.ListOffers(r.Context())
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	utils.WriteJSON(w, offers, http.StatusOK)
}

func (h *Handler) bookRide(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var booking models.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), msgInvalidJSON)
		return
	}

	id, err := h.services.RideService.RequestBooking(ctx, booking)
	if err != nil {
		writeError(w, r, err, rideErrorMessage(err, msgMissingBookingDetails))
		return
	}

	logger.FromRequest(r).Info().Str("id", id).Msg("booking request added")

	w.Header().Set(resourceIDHeader, id)
	utils.WriteText(w, msgBookingAdded, http.StatusOK)
}

// rideErrorMessage picks the client message for a rejected offer or booking.
// Location errors have fixed messages; anything else in the request is
// reported as missing details.
func rideErrorMessage(err error, missingDetails string) string {
	switch {
	case errors.Is(err, service.ErrInvalidStartLocation):
		return msgInvalidStartLocation
	case errors.Is(err, service.ErrInvalidDestinationLocation):
		return msgInvalidDestinationLocation
	case errors.Is(err, service.ErrUnauthenticated):
		return http.StatusText(http.StatusUnauthorized)
	default:
		return missingDetails
	}
}
