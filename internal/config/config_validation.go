// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [Config] satisfies the invariants
// the synthesis pipeline relies on.
//
// The upstream selector is deliberately not validated here: unknown
// selectors resolve via fallback at synthesis time so a misconfigured
// container still starts.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *Config) validate() error {
	if cfg.Gateway.Port < 0 || cfg.Gateway.Port > 65535 {
		return ErrInvalidGatewayConfigs
	}

	switch cfg.Gateway.Bind {
	case "", "loopback", "lan":
	default:
		return ErrInvalidGatewayConfigs
	}

	if cfg.Agent.Temperature < 0 || cfg.Agent.Temperature > 2 {
		return ErrInvalidAgentConfigs
	}

	return nil
}
