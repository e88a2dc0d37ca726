package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── NetAddress ────────────────────────────────────────────────────────────────

// TestNetAddress_Set verifies parsing and validation of host:port inputs.
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "ip and port", input: "0.0.0.0:8888", want: NetAddress{Host: "0.0.0.0", Port: 8888}},
		{name: "localhost", input: "localhost:9000", want: NetAddress{Host: "localhost", Port: 9000}},
		{name: "missing port", input: "0.0.0.0", wantErr: true},
		{name: "non-numeric port", input: "0.0.0.0:http", wantErr: true},
		{name: "zero port", input: "0.0.0.0:0", wantErr: true},
		{name: "bad host", input: "not-an-ip:8888", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

// TestNetAddress_String verifies rendering, including the unset case.
func TestNetAddress_String(t *testing.T) {
	assert.Empty(t, (&NetAddress{}).String())
	assert.Equal(t, "127.0.0.1:9999", (&NetAddress{Host: "127.0.0.1", Port: 9999}).String())
}
