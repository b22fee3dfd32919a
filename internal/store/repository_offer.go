// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-ride-share/internal/logger"
	"github.com/MKhiriev/go-ride-share/models"
)

// offerRepository is the in-memory, append-only [OfferRepository].
type offerRepository struct {
	mu     sync.RWMutex
	offers []models.RideOffer

	ids    IDGenerator
	logger *logger.Logger
}

// NewOfferRepository constructs an empty in-memory [OfferRepository].
func NewOfferRepository(ids IDGenerator, logger *logger.Logger) OfferRepository {
	logger.Debug().Msg("creating offer repository")
	return &offerRepository{
		offers: make([]models.RideOffer, 0),
		ids:    ids,
		logger: logger,
	}
}

func (r *offerRepository) SaveOffer(ctx context.Context, offer models.RideOffer) (models.RideOffer, error) {
	offer.ID = r.ids.Generate()

	r.mu.Lock()
	r.offers = append(r.offers, offer)
	r.mu.Unlock()

	logger.FromContext(ctx).Debug().Str("id", offer.ID).Str("username", offer.Username).Msg("offer saved")

	return offer, nil
}

// GetAllOffers returns a copy of the registry, so later appends never show
// up in a slice already handed out.
func (r *offerRepository) GetAllOffers(ctx context.Context) ([]models.RideOffer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.offers), nil
}
