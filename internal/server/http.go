// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	stdlog "log"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-ride-share/internal/config"
	"github.com/MKhiriev/go-ride-share/internal/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type httpServer struct {
	server   *http.Server
	listener net.Listener
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	errorLogger := logger.With().Str("component", "http-server").Logger()

	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
			ErrorLog:          stdlog.New(errorLogger, "", 0),
		},
	}
}

// Listen binds the configured address. Binding before serving reports a
// busy port synchronously and resolves ":0" to a real port. Calling it
// again is a no-op.
func (h *httpServer) Listen() error {
	if h.listener != nil {
		return nil
	}

	listener, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return err
	}
	h.listener = listener
	return nil
}

// Addr returns the bound address, or the configured one before Listen.
func (h *httpServer) Addr() string {
	if h.listener != nil {
		return h.listener.Addr().String()
	}
	return h.server.Addr
}

// RunServer serves on the bound listener until the server stops. A graceful
// shutdown is not an error.
func (h *httpServer) RunServer() error {
	err := h.server.Serve(h.listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown waits for in-flight requests, at most shutdownTimeout past ctx.
func (h *httpServer) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	return h.server.Shutdown(ctx)
}
