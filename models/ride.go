// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RideDetails holds the route and time shared by ride offers and booking
// requests. States and cities must belong to the location catalog; points
// and date/time are free text.
type RideDetails struct {
	StartState string `json:"startState" validate:"required"`
	StartCity  string `json:"startCity" validate:"required"`
	StartPoint string `json:"startPoint" validate:"required"`

	DestState string `json:"destState" validate:"required"`
	DestCity  string `json:"destCity" validate:"required"`
	DestPoint string `json:"destPoint" validate:"required"`

	DateTime string `json:"dateTime" validate:"required"`
}

// RideOffer is a published ride availability record. Once stored it is
// never modified or removed.
type RideOffer struct {
	// ID is assigned by the registry on insertion.
	ID string `json:"id,omitempty"`

	// Username is the owner of the offer, taken from the session token.
	Username string `json:"username"`

	RideDetails

	AvailableSeats int `json:"availableSeats" validate:"required"`
}

// BookingRequest is a request for seats on some ride. It is recorded as-is:
// it is not linked to any offer and seats are not checked.
type BookingRequest struct {
	// ID is assigned by the registry on insertion.
	ID string `json:"id,omitempty"`

	// Username is the requester, taken from the session token.
	Username string `json:"username"`

	RideDetails

	SeatsRequired int `json:"seatsRequired" validate:"required"`
}
