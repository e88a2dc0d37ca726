// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the flat configuration surface of a clawdock
// container: provider credentials, the primary-model selector, gateway
// network settings, workspace and state paths, per-integration feature
// toggles, and the activity/admin settings.
//
// Values are merged from environment variables, command-line flags, an
// optional JSON file, and built-in defaults. The merged Config is the
// only source the synthesis pipeline reads from — builders never touch
// the process environment themselves.
package config
