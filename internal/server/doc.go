// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires the admin API handler into an HTTP server with
// graceful shutdown on SIGTERM/SIGINT/SIGQUIT.
package server
