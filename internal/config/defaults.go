// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultHTTPAddress      = "localhost:5000"
	defaultRequestTimeout   = 30 * time.Second
	defaultTokenIssuer      = "go-ride-share"
	defaultPasswordHashCost = 8
	defaultLogLevel         = "info"

	dotEnvFile = ".env"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      defaultTokenIssuer,
			PasswordHashCost: defaultPasswordHashCost,
			LogLevel:         defaultLogLevel,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
	}
}
