// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-ride-share/internal/utils"
)

func (h *Handler) getLocations(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.LocationService.Locations(r.Context()), http.StatusOK)
}
