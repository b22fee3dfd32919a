// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-ride-share/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of checks.
const (
	// FieldRequired checks that every field tagged `validate:"required"` is set.
	FieldRequired = "required"

	// FieldStartLocation checks the start state and city against the catalog.
	FieldStartLocation = "start_location"

	// FieldDestinationLocation checks the destination state and city against the catalog.
	FieldDestinationLocation = "destination_location"
)

// defaultRideFields are applied in order when no fields are given.
// The first failing check wins.
var defaultRideFields = []string{FieldRequired, FieldStartLocation, FieldDestinationLocation}

// LocationChecker reports whether city belongs to region.
type LocationChecker interface {
	IsValid(region, city string) bool
}

// RideValidator validates ride offers and booking requests: presence of
// every required field and catalog membership of both endpoints.
type RideValidator struct {
	validate  *validator.Validate
	locations LocationChecker
}

// NewRideValidator constructs a RideValidator checking locations against
// the given catalog.
func NewRideValidator(locations LocationChecker) Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &RideValidator{
		validate:  validate,
		locations: locations,
	}
}

// Validate dispatches on the dynamic type of obj. Supported types:
//   - models.RideOffer / *models.RideOffer
//   - models.BookingRequest / *models.BookingRequest
//   - models.RideDetails / *models.RideDetails
func (v *RideValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RideOffer:
		return v.validateRide(value, value.RideDetails, fields...)
	case *models.RideOffer:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRide(*value, value.RideDetails, fields...)
	case models.BookingRequest:
		return v.validateRide(value, value.RideDetails, fields...)
	case *models.BookingRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRide(*value, value.RideDetails, fields...)
	case models.RideDetails:
		return v.validateRide(value, value, fields...)
	case *models.RideDetails:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRide(*value, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RideValidator) validateRide(obj any, details models.RideDetails, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultRideFields
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldRequired:
			err = v.validateRequired(obj)
		case FieldStartLocation:
			if !v.locations.IsValid(details.StartState, details.StartCity) {
				err = fmt.Errorf("%w: %q/%q", ErrInvalidStartLocation, details.StartState, details.StartCity)
			}
		case FieldDestinationLocation:
			if !v.locations.IsValid(details.DestState, details.DestCity) {
				err = fmt.Errorf("%w: %q/%q", ErrInvalidDestinationLocation, details.DestState, details.DestCity)
			}
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *RideValidator) validateRequired(obj any) error {
	err := v.validate.Struct(obj)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	missing := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		missing = append(missing, fieldErr.Field())
	}

	return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
}
