// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the admin API of clawdock: activity queries,
// activity recording, statistics, health and version endpoints. Routing
// is built on chi; every request carries a trace id and a request-scoped
// logger in its context.
package http
