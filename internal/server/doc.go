// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the HTTP transport server.
//
// It handles startup, signal handling, and graceful shutdown: on a stop
// signal the server stops accepting connections and waits for in-flight
// requests before returning.
package server
