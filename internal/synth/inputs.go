package synth

import "github.com/clawdock/clawdock/internal/catalog"

// Default gateway settings shared by all families. A builder that only
// emits gateway overrides compares against these.
const (
	DefaultGatewayHost = "127.0.0.1"
	DefaultGatewayPort = 18789
	DefaultGatewayBind = "loopback"
)

// Inputs is the flat set of configuration values a synthesis run consumes.
// It is deliberately decoupled from the process environment: the config
// package assembles it from env/flags/JSON, tests construct it literally.
type Inputs struct {
	// Credentials maps canonical provider identifiers to API keys.
	// Providers without an entry (or with an empty value) are omitted
	// from every rendered document.
	Credentials map[catalog.ProviderID]string

	// PrimaryModel is the raw "provider/model" selector. A value without
	// a slash resolves to the catalog's default provider.
	PrimaryModel string

	// Workspace is the agent workspace directory inside the container.
	Workspace string

	// StateDir is the root under which family state (and the rendered
	// configuration files) live.
	StateDir string

	GatewayHost string
	GatewayPort int
	GatewayBind string

	// Temperature is the default sampling temperature for families whose
	// schema carries one. Zero means "not configured".
	Temperature float64

	// TelegramBotToken enables the telegram channel when non-empty.
	TelegramBotToken string

	// WebhookEnabled toggles the inbound webhook channel.
	WebhookEnabled bool

	// BrowserCDPURL is the browser-automation endpoint, when available.
	BrowserCDPURL string
}

// gatewayOverridden reports whether any gateway setting differs from the
// built-in defaults.
func (in Inputs) gatewayOverridden() bool {
	return (in.GatewayHost != "" && in.GatewayHost != DefaultGatewayHost) ||
		(in.GatewayPort != 0 && in.GatewayPort != DefaultGatewayPort) ||
		(in.GatewayBind != "" && in.GatewayBind != DefaultGatewayBind)
}
