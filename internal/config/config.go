// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/clawdock/clawdock/internal/catalog"
)

// Config is the top-level configuration container for clawdock. It is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file, and built-in defaults (in that priority
// order — earlier sources win for non-zero fields).
//
// Struct tags:
//   - env — direct environment variable name for scalar fields. The
//     names follow the container's conventional flat environment
//     surface, so nested groups carry no prefix of their own.
type Config struct {
	// Upstream selects the gateway family to synthesize for.
	Upstream Upstream

	// Providers holds the per-provider API credentials. An empty field
	// means the provider is omitted from every rendered document.
	Providers Providers

	// Agent holds agent-level defaults (primary model selector,
	// workspace directory, sampling temperature).
	Agent Agent

	// Gateway holds the gateway network surface settings.
	Gateway Gateway

	// Channels holds per-integration feature toggles.
	Channels Channels

	// Activity holds the activity log settings.
	Activity Activity

	// Admin holds the admin API server settings.
	Admin Admin

	// StateDir is the root directory for family state; rendered
	// configuration files land below it.
	StateDir string `env:"OPENCLAW_STATE_DIR"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after environment
	// variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Upstream selects the gateway family and source version.
type Upstream struct {
	// Selector is the discrete family identifier. Unrecognized values
	// fall back to the default family at synthesis time instead of
	// failing — misconfigured containers still come up.
	// Env: UPSTREAM
	Selector string `env:"UPSTREAM"`

	// Version is the upstream source version to build/check out
	// (tag, branch alias, or dotted number).
	// Env: UPSTREAM_VERSION
	Version string `env:"UPSTREAM_VERSION"`
}

// Providers carries one credential slot per catalog provider.
type Providers struct {
	Anthropic  string `env:"ANTHROPIC_API_KEY"`
	OpenAI     string `env:"OPENAI_API_KEY"`
	OpenRouter string `env:"OPENROUTER_API_KEY"`
	Gemini     string `env:"GEMINI_API_KEY"`
	DeepSeek   string `env:"DEEPSEEK_API_KEY"`
	Moonshot   string `env:"MOONSHOT_API_KEY"`
}

// Credentials returns the provider credential map keyed by canonical
// provider identifier. Empty credentials are included as empty strings;
// omission happens at resolution time, not here.
func (p Providers) Credentials() map[catalog.ProviderID]string {
	return map[catalog.ProviderID]string{
		catalog.ProviderAnthropic:  p.Anthropic,
		catalog.ProviderOpenAI:     p.OpenAI,
		catalog.ProviderOpenRouter: p.OpenRouter,
		catalog.ProviderGemini:     p.Gemini,
		catalog.ProviderDeepSeek:   p.DeepSeek,
		catalog.ProviderMoonshot:   p.Moonshot,
	}
}

// Agent holds agent-level defaults shared across families.
type Agent struct {
	// PrimaryModel is the compound "provider/model" selector. A value
	// without a slash resolves to the default provider.
	// Env: OPENCLAW_PRIMARY_MODEL
	PrimaryModel string `env:"OPENCLAW_PRIMARY_MODEL"`

	// Workspace is the agent workspace directory inside the container.
	// Env: OPENCLAW_WORKSPACE_DIR
	Workspace string `env:"OPENCLAW_WORKSPACE_DIR"`

	// Temperature is the default sampling temperature for families
	// whose schema carries one.
	// Env: OPENCLAW_TEMPERATURE
	Temperature float64 `env:"OPENCLAW_TEMPERATURE"`
}

// Gateway holds the gateway network settings.
type Gateway struct {
	// Env: OPENCLAW_GATEWAY_HOST
	Host string `env:"OPENCLAW_GATEWAY_HOST"`

	// Env: OPENCLAW_GATEWAY_PORT
	Port int `env:"OPENCLAW_GATEWAY_PORT"`

	// Bind selects the bind mode ("loopback" or "lan").
	// Env: OPENCLAW_GATEWAY_BIND
	Bind string `env:"OPENCLAW_GATEWAY_BIND"`
}

// Channels holds per-integration feature toggles.
type Channels struct {
	// TelegramBotToken enables the telegram channel when non-empty.
	// Env: TELEGRAM_BOT_TOKEN
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`

	// WebhookEnabled toggles the inbound webhook channel.
	// Env: OPENCLAW_WEBHOOK_ENABLED
	WebhookEnabled bool `env:"OPENCLAW_WEBHOOK_ENABLED"`

	// BrowserCDPURL is the browser-automation endpoint.
	// Env: BROWSER_CDP_URL
	BrowserCDPURL string `env:"BROWSER_CDP_URL"`
}

// Activity holds the activity log settings.
type Activity struct {
	// Env: ACTIVITY_LOG_DIR
	LogDir string `env:"ACTIVITY_LOG_DIR"`

	// Env: ACTIVITY_LOG_ENABLED
	Enabled *bool `env:"ACTIVITY_LOG_ENABLED"`
}

// LogEnabled resolves the tri-state Enabled flag; unset means enabled.
func (a Activity) LogEnabled() bool {
	return a.Enabled == nil || *a.Enabled
}

// Admin holds settings for the admin API server.
type Admin struct {
	// HTTPAddress is the TCP address on which the admin API listens,
	// in "host:port" format.
	// Env: ADMIN_API_ADDRESS
	HTTPAddress string `env:"ADMIN_API_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single
	// inbound request (e.g. "30s", "1m").
	// Env: ADMIN_API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"ADMIN_API_REQUEST_TIMEOUT"`
}

// GetConfig loads, merges, and validates the application configuration
// from all available sources in the following priority order (earlier
// sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *Config or an error if any source fails to
// load or the final config fails validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
