// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-ride-share/internal/logger"
	"github.com/MKhiriev/go-ride-share/models"
	"github.com/go-resty/resty/v2"
)

const (
	defaultRequestTimeout = 15 * time.Second

	resourceIDHeader = "X-Resource-ID"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. address may omit the scheme ("localhost:5000"). A zero
// timeout means 15 seconds.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json, text/plain")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Signup POSTs the credentials to /signup.
func (h *httpServerAdapter) Signup(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/signup")
	if err != nil {
		return fmt.Errorf("signup request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login POSTs the credentials to /login and keeps the token from the
// response body.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (string, error) {
	var loginResponse models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&loginResponse).
		Post("/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if loginResponse.Token == "" {
		return "", fmt.Errorf("login response carries no token")
	}

	h.SetToken(loginResponse.Token)
	h.logger.Debug().Str("username", user.Username).Msg("logged in")

	return loginResponse.Token, nil
}

func (h *httpServerAdapter) Locations(ctx context.Context) (map[string][]string, error) {
	var locations map[string][]string

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&locations).
		Get("/locations")
	if err != nil {
		return nil, fmt.Errorf("locations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return locations, nil
}

func (h *httpServerAdapter) ShareRide(ctx context.Context, offer models.RideOffer) (string, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(offer).
		Post("/share-ride")
	if err != nil {
		return "", fmt.Errorf("share ride request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.Header().Get(resourceIDHeader), nil
}

func (h *httpServerAdapter) AvailableRides(ctx context.Context) ([]models.RideOffer, error) {
	var offers []models.RideOffer

	resp, err := h.authedRequest(ctx).
		SetResult(&offers).
		Get("/available-rides")
	if err != nil {
		return nil, fmt.Errorf("available rides request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return offers, nil
}

func (h *httpServerAdapter) BookRide(ctx context.Context, booking models.BookingRequest) (string, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(booking).
		Post("/book-ride")
	if err != nil {
		return "", fmt.Errorf("book ride request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.Header().Get(resourceIDHeader), nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
