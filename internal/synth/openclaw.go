package synth

import (
	"path/filepath"

	"github.com/clawdock/clawdock/internal/catalog"
	"github.com/clawdock/clawdock/internal/tree"
)

// openClawBuilder renders the official OpenClaw JSON schema: provider
// credentials nested under models.providers, agent defaults under
// agents.defaults, and per-integration channels as optional branches.
type openClawBuilder struct {
	cat *catalog.Catalog
}

func newOpenClawBuilder(cat *catalog.Catalog) *openClawBuilder {
	return &openClawBuilder{cat: cat}
}

func (b *openClawBuilder) Family() catalog.UpstreamType {
	return catalog.UpstreamOpenClaw
}

func (b *openClawBuilder) Format() Format {
	return FormatJSON
}

func (b *openClawBuilder) TargetPath(stateDir string) string {
	return filepath.Join(stateDir, ".openclaw", "openclaw.json")
}

func (b *openClawBuilder) BuildTree(in Inputs) (*tree.Node, error) {
	root := tree.Map()

	providers := tree.Map()
	for _, p := range b.cat.ResolveProviders(in.Credentials) {
		entry := tree.Map().
			Set("apiKey", tree.String(p.APIKey)).
			Set("baseUrl", tree.String(p.BaseURL)).
			Set("models", tree.Strings(p.Models...))
		providers.Set(string(p.ID), entry)
	}
	if providers.Len() > 0 {
		root.Set("models", tree.Map().Set("providers", providers))
	}

	provider, model := b.cat.ResolveModelSelector(in.PrimaryModel)
	defaults := tree.Map().
		Set("model", tree.Map().Set("primary", tree.String(string(provider)+"/"+model)))
	if in.Workspace != "" {
		defaults.Set("workspace", tree.String(in.Workspace))
	}
	root.Set("agents", tree.Map().Set("defaults", defaults))

	gateway := tree.Map()
	if in.GatewayHost != "" {
		gateway.Set("host", tree.String(in.GatewayHost))
	}
	if in.GatewayPort != 0 {
		gateway.Set("port", tree.Int(int64(in.GatewayPort)))
	}
	if in.GatewayBind != "" {
		gateway.Set("bind", tree.String(in.GatewayBind))
	}
	if gateway.Len() > 0 {
		root.Set("gateway", gateway)
	}

	channels := tree.Map()
	if in.TelegramBotToken != "" {
		channels.Set("telegram", tree.Map().
			Set("botToken", tree.String(in.TelegramBotToken)).
			Set("enabled", tree.Bool(true)))
	}
	if in.WebhookEnabled {
		channels.Set("webhook", tree.Map().Set("enabled", tree.Bool(true)))
	}
	if channels.Len() > 0 {
		root.Set("channels", channels)
	}

	if in.BrowserCDPURL != "" {
		root.Set("browser", tree.Map().Set("cdpUrl", tree.String(in.BrowserCDPURL)))
	}

	return root, nil
}
