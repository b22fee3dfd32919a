// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/go-ride-share/internal/catalog"
	"github.com/MKhiriev/go-ride-share/internal/config"
	"github.com/MKhiriev/go-ride-share/internal/handler"
	"github.com/MKhiriev/go-ride-share/internal/logger"
	"github.com/MKhiriev/go-ride-share/internal/server"
	"github.com/MKhiriev/go-ride-share/internal/service"
	"github.com/MKhiriev/go-ride-share/internal/store"
	"github.com/MKhiriev/go-ride-share/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-ride-share", "info").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-ride-share", cfg.App.LogLevel)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Str("catalog", cfg.Catalog.FilePath).
		Msg("received configs")

	locations, err := catalog.Load(cfg.Catalog.FilePath)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading location catalog")
	}

	storages := store.NewStorages(log)
	services := service.NewServices(storages, cfg.App, locations, buildInfo, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
