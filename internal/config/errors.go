package config

import "errors"

var (
	// ErrInvalidGatewayConfigs is returned when the gateway port or bind
	// mode is out of range.
	ErrInvalidGatewayConfigs = errors.New("invalid gateway configs")

	// ErrInvalidAgentConfigs is returned when agent defaults are out of
	// range (e.g. temperature outside [0, 2]).
	ErrInvalidAgentConfigs = errors.New("invalid agent configs")
)
