// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package catalog holds the static resolution tables the synthesis
// pipeline draws from: the model-provider table (credential key, fixed
// base URL, default model list per provider) and the upstream family
// table (repository coordinates and container layout per gateway
// flavor).
//
// Both tables are injected values rather than package-level mutable
// state, so tests can substitute alternate catalogs.
package catalog

import "strings"

// ProviderID is the canonical identifier of a model provider.
type ProviderID string

const (
	ProviderAnthropic  ProviderID = "anthropic"
	ProviderOpenAI     ProviderID = "openai"
	ProviderOpenRouter ProviderID = "openrouter"
	ProviderGemini     ProviderID = "gemini"
	ProviderDeepSeek   ProviderID = "deepseek"
	ProviderMoonshot   ProviderID = "moonshot"
)

// Provider is one row of the provider resolution table.
type Provider struct {
	// ID is the canonical provider identifier used in rendered
	// configuration documents.
	ID ProviderID

	// CredentialKey is the conventional environment variable that
	// carries the provider's API key (documentation only — credentials
	// reach the catalog through the resolved input set, never through
	// the process environment).
	CredentialKey string

	// BaseURL is the fixed API endpoint for the provider.
	BaseURL string

	// DefaultModels lists the models advertised when the provider is
	// enabled.
	DefaultModels []string
}

// ResolvedProvider is one emitted entry of ResolveProviders: a provider
// whose credential was present in the inputs.
type ResolvedProvider struct {
	ID      ProviderID
	APIKey  string
	BaseURL string
	Models  []string
}

// Catalog is the full resolution table handed to the schema builders.
type Catalog struct {
	// Providers is iterated in declared order on every resolution run,
	// which keeps rendered documents deterministic.
	Providers []Provider

	// DefaultProvider resolves unslashed model selectors.
	DefaultProvider ProviderID

	// DefaultModel is used when no primary model selector is supplied.
	DefaultModel string
}

// Default returns the built-in provider table.
func Default() *Catalog {
	return &Catalog{
		Providers: []Provider{
			{
				ID:            ProviderAnthropic,
				CredentialKey: "ANTHROPIC_API_KEY",
				BaseURL:       "https://api.anthropic.com",
				DefaultModels: []string{"claude-opus-4-1", "claude-sonnet-4-5"},
			},
			{
				ID:            ProviderOpenAI,
				CredentialKey: "OPENAI_API_KEY",
				BaseURL:       "https://api.openai.com/v1",
				DefaultModels: []string{"gpt-5", "gpt-5-mini"},
			},
			{
				ID:            ProviderOpenRouter,
				CredentialKey: "OPENROUTER_API_KEY",
				BaseURL:       "https://openrouter.ai/api/v1",
				DefaultModels: []string{"openrouter/auto"},
			},
			{
				ID:            ProviderGemini,
				CredentialKey: "GEMINI_API_KEY",
				BaseURL:       "https://generativelanguage.googleapis.com/v1beta",
				DefaultModels: []string{"gemini-2.5-pro", "gemini-2.5-flash"},
			},
			{
				ID:            ProviderDeepSeek,
				CredentialKey: "DEEPSEEK_API_KEY",
				BaseURL:       "https://api.deepseek.com",
				DefaultModels: []string{"deepseek-chat", "deepseek-reasoner"},
			},
			{
				ID:            ProviderMoonshot,
				CredentialKey: "MOONSHOT_API_KEY",
				BaseURL:       "https://api.moonshot.cn/v1",
				DefaultModels: []string{"kimi-k2"},
			},
		},
		DefaultProvider: ProviderAnthropic,
		DefaultModel:    "claude-opus-4-1",
	}
}

// ResolveProviders walks the provider table in declared order and emits
// one entry per provider whose credential is non-empty. Providers without
// a credential are omitted entirely — never emitted with empty fields.
// Credential keys that match no table row are ignored.
func (c *Catalog) ResolveProviders(credentials map[ProviderID]string) []ResolvedProvider {
	resolved := make([]ResolvedProvider, 0, len(c.Providers))
	for _, p := range c.Providers {
		key := strings.TrimSpace(credentials[p.ID])
		if key == "" {
			continue
		}
		resolved = append(resolved, ResolvedProvider{
			ID:      p.ID,
			APIKey:  key,
			BaseURL: p.BaseURL,
			Models:  p.DefaultModels,
		})
	}
	return resolved
}

// ResolveModelSelector splits a "provider/model" compound selector on its
// first slash. A selector without a slash always resolves to the catalog's
// default provider — the provider is never inferred from the model name.
// An empty selector resolves to the default provider and model.
func (c *Catalog) ResolveModelSelector(selector string) (ProviderID, string) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return c.DefaultProvider, c.DefaultModel
	}

	if provider, model, found := strings.Cut(selector, "/"); found {
		return ProviderID(provider), model
	}

	return c.DefaultProvider, selector
}

// Lookup returns the table row for id, if present.
func (c *Catalog) Lookup(id ProviderID) (Provider, bool) {
	for _, p := range c.Providers {
		if p.ID == id {
			return p, true
		}
	}
	return Provider{}, false
}
