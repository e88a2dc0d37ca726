package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clawdock/clawdock/internal/catalog"
)

// TestProviders_Credentials verifies the credential map carries every slot
// under its canonical provider identifier.
func TestProviders_Credentials(t *testing.T) {
	p := Providers{
		Anthropic: "sk",
		Moonshot:  "mk",
	}

	creds := p.Credentials()
	assert.Len(t, creds, 6)
	assert.Equal(t, "sk", creds[catalog.ProviderAnthropic])
	assert.Equal(t, "mk", creds[catalog.ProviderMoonshot])
	assert.Empty(t, creds[catalog.ProviderOpenAI])
}

// TestActivity_LogEnabled verifies the tri-state toggle: unset means
// enabled.
func TestActivity_LogEnabled(t *testing.T) {
	enabled := true
	disabled := false

	assert.True(t, Activity{}.LogEnabled())
	assert.True(t, Activity{Enabled: &enabled}.LogEnabled())
	assert.False(t, Activity{Enabled: &disabled}.LogEnabled())
}
