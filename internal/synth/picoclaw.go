package synth

import (
	"path/filepath"

	"github.com/clawdock/clawdock/internal/catalog"
	"github.com/clawdock/clawdock/internal/tree"
)

// picoClawBuilder renders the PicoClaw TOML schema: a flat top level
// carrying the default provider's credential and the agent defaults,
// gateway overrides as a [gateway] section, and any provider beyond the
// default under [providers.<key>].
//
// PicoClaw does not share OpenClaw's provider identifiers, so the builder
// carries its own remap table instead of a global naming scheme. Notably
// the moonshot credential surfaces under picoclaw's "kimi" key.
type picoClawBuilder struct {
	cat *catalog.Catalog

	providerKeys map[catalog.ProviderID]string
}

func newPicoClawBuilder(cat *catalog.Catalog) *picoClawBuilder {
	return &picoClawBuilder{
		cat: cat,
		providerKeys: map[catalog.ProviderID]string{
			catalog.ProviderMoonshot: "kimi",
		},
	}
}

func (b *picoClawBuilder) Family() catalog.UpstreamType {
	return catalog.UpstreamPicoClaw
}

func (b *picoClawBuilder) Format() Format {
	return FormatTOML
}

func (b *picoClawBuilder) TargetPath(stateDir string) string {
	return filepath.Join(stateDir, ".picoclaw", "config.toml")
}

func (b *picoClawBuilder) BuildTree(in Inputs) (*tree.Node, error) {
	root := tree.Map()

	if in.Workspace != "" {
		root.Set("workspace", tree.String(in.Workspace))
	}

	provider, model := b.cat.ResolveModelSelector(in.PrimaryModel)
	root.Set("default_provider", tree.String(b.providerKey(provider)))
	root.Set("default_model", tree.String(model))

	resolved := b.cat.ResolveProviders(in.Credentials)
	for _, p := range resolved {
		if p.ID == provider {
			// the default provider's credential lives at top level
			root.Set("api_key", tree.String(p.APIKey))
			break
		}
	}

	if in.Temperature > 0 {
		root.Set("temperature", tree.Float(in.Temperature))
	}

	if in.gatewayOverridden() {
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
		root.Set("gateway", gateway)
	}

	extras := tree.Map()
	for _, p := range resolved {
		if p.ID == provider {
			continue
		}
		extras.Set(b.providerKey(p.ID), tree.Map().
			Set("api_key", tree.String(p.APIKey)).
			Set("base_url", tree.String(p.BaseURL)))
	}
	if extras.Len() > 0 {
		root.Set("providers", extras)
	}

	return root, nil
}

func (b *picoClawBuilder) providerKey(id catalog.ProviderID) string {
	if key, ok := b.providerKeys[id]; ok {
		return key
	}
	return string(id)
}
