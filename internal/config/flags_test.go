package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set_Valid(t *testing.T) {
	tests := []struct {
		in       string
		wantHost string
		wantPort int
	}{
		{"localhost:8080", "localhost", 8080},
		{"127.0.0.1:9000", "127.0.0.1", 9000},
		{"0.0.0.0:80", "0.0.0.0", 80},
	}

	for _, tt := range tests {
		var a NetAddress
		require.NoErrorf(t, a.Set(tt.in), "input %q", tt.in)
		assert.Equal(t, tt.wantHost, a.Host)
		assert.Equal(t, tt.wantPort, a.Port)
		assert.Equal(t, tt.in, a.String())
	}
}

func TestNetAddress_Set_Invalid(t *testing.T) {
	tests := []string{
		"localhost",
		"localhost:port",
		"localhost:0",
		"not-an-ip:8080",
		"1.2.3.4:8080:extra",
	}

	for _, in := range tests {
		var a NetAddress
		assert.Errorf(t, a.Set(in), "input %q", in)
	}
}

func TestNetAddress_String_Unset(t *testing.T) {
	var a NetAddress
	assert.Empty(t, a.String())
}
