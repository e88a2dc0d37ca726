package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── ResolveProviders ──────────────────────────────────────────────────────────

// TestResolveProviders_TableOrder verifies that resolved providers come back
// in the table's declared order regardless of map iteration order.
func TestResolveProviders_TableOrder(t *testing.T) {
	cat := Default()

	resolved := cat.ResolveProviders(map[ProviderID]string{
		ProviderMoonshot:  "mk-1",
		ProviderAnthropic: "sk-1",
		ProviderOpenAI:    "oa-1",
	})

	require.Len(t, resolved, 3)
	assert.Equal(t, ProviderAnthropic, resolved[0].ID)
	assert.Equal(t, ProviderOpenAI, resolved[1].ID)
	assert.Equal(t, ProviderMoonshot, resolved[2].ID)
}

// TestResolveProviders_OmitsMissingCredentials verifies providers without a
// credential are never emitted, even with empty fields.
func TestResolveProviders_OmitsMissingCredentials(t *testing.T) {
	cat := Default()

	resolved := cat.ResolveProviders(map[ProviderID]string{
		ProviderAnthropic: "sk-1",
		ProviderOpenAI:    "",
		ProviderGemini:    "   ",
	})

	require.Len(t, resolved, 1)
	assert.Equal(t, ProviderAnthropic, resolved[0].ID)
	assert.Equal(t, "sk-1", resolved[0].APIKey)
}

// TestResolveProviders_CarriesTableFields verifies base URL and default
// models come from the table row.
func TestResolveProviders_CarriesTableFields(t *testing.T) {
	cat := Default()

	resolved := cat.ResolveProviders(map[ProviderID]string{ProviderAnthropic: "sk-1"})

	require.Len(t, resolved, 1)
	assert.Equal(t, "https://api.anthropic.com", resolved[0].BaseURL)
	assert.Equal(t, []string{"claude-opus-4-1", "claude-sonnet-4-5"}, resolved[0].Models)
}

// TestResolveProviders_IgnoresUnknownIDs verifies credentials for providers
// outside the table are skipped without error.
func TestResolveProviders_IgnoresUnknownIDs(t *testing.T) {
	cat := Default()

	resolved := cat.ResolveProviders(map[ProviderID]string{
		ProviderID("mystery"): "xx",
	})

	assert.Empty(t, resolved)
}

// TestResolveProviders_NoCredentials verifies an empty input yields an empty
// (non-nil) result.
func TestResolveProviders_NoCredentials(t *testing.T) {
	cat := Default()

	assert.Empty(t, cat.ResolveProviders(nil))
}

// ── ResolveModelSelector ──────────────────────────────────────────────────────

// TestResolveModelSelector verifies compound, bare and empty selectors.
func TestResolveModelSelector(t *testing.T) {
	cat := Default()

	tests := []struct {
		name         string
		selector     string
		wantProvider ProviderID
		wantModel    string
	}{
		{
			name:         "compound selector splits on first slash",
			selector:     "openai/gpt-5",
			wantProvider: ProviderOpenAI,
			wantModel:    "gpt-5",
		},
		{
			name:         "model part keeps further slashes",
			selector:     "openrouter/meta/llama-4",
			wantProvider: ProviderOpenRouter,
			wantModel:    "meta/llama-4",
		},
		{
			name:         "bare model resolves to default provider",
			selector:     "gpt-5",
			wantProvider: ProviderAnthropic,
			wantModel:    "gpt-5",
		},
		{
			name:         "empty selector resolves to defaults",
			selector:     "",
			wantProvider: ProviderAnthropic,
			wantModel:    "claude-opus-4-1",
		},
		{
			name:         "whitespace-only selector resolves to defaults",
			selector:     "   ",
			wantProvider: ProviderAnthropic,
			wantModel:    "claude-opus-4-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, model := cat.ResolveModelSelector(tt.selector)
			assert.Equal(t, tt.wantProvider, provider)
			assert.Equal(t, tt.wantModel, model)
		})
	}
}

// TestResolveModelSelector_UnknownProviderPassesThrough verifies the split
// never validates the provider part — builders decide what to do with it.
func TestResolveModelSelector_UnknownProviderPassesThrough(t *testing.T) {
	cat := Default()

	provider, model := cat.ResolveModelSelector("notreal/some-model")
	assert.Equal(t, ProviderID("notreal"), provider)
	assert.Equal(t, "some-model", model)
}

// ── Lookup ────────────────────────────────────────────────────────────────────

// TestLookup verifies hit and miss behaviour.
func TestLookup(t *testing.T) {
	cat := Default()

	row, ok := cat.Lookup(ProviderDeepSeek)
	require.True(t, ok)
	assert.Equal(t, "DEEPSEEK_API_KEY", row.CredentialKey)

	_, ok = cat.Lookup(ProviderID("nope"))
	assert.False(t, ok)
}
