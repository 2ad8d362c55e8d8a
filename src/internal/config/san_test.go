// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/certtool/src/internal/certerr"
	"github.com/H0llyW00dzZ/certtool/src/internal/config"
)

func TestClassifySAN(t *testing.T) {
	tests := []struct {
		name    string
		entry   string
		kind    config.SANKind
		wantErr bool
	}{
		{"DNS hostname", "example.com", config.SANDNS, false},
		{"DNS wildcard", "*.example.com", config.SANDNS, false},
		{"IPv4 literal", "10.0.0.1", config.SANIPv4, false},
		{"IPv4 loopback", "127.0.0.1", config.SANIPv4, false},
		{"IPv6 loopback", "::1", config.SANIPv6, false},
		{"IPv6 full", "2001:db8::8a2e:370:7334", config.SANIPv6, false},
		{"IPv4-mapped IPv6 counts as IPv4", "::ffff:192.0.2.1", config.SANIPv4, false},
		{"almost an IP is DNS", "10.0.0.256", config.SANDNS, false},
		{"surrounding whitespace trimmed", "  app.local  ", config.SANDNS, false},
		{"blank entry rejected", "   ", config.SANDNS, true},
		{"empty entry rejected", "", config.SANDNS, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			san, err := config.ClassifySAN(tt.entry)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, certerr.ErrConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, san.Kind)

			switch tt.kind {
			case config.SANDNS:
				assert.NotEmpty(t, san.DNS)
				assert.Nil(t, san.IP)
			default:
				assert.NotNil(t, san.IP)
				assert.Empty(t, san.DNS)
			}
		})
	}
}

func TestSubjectAltNameString(t *testing.T) {
	dns, err := config.ClassifySAN("app.local")
	require.NoError(t, err)
	assert.Equal(t, "app.local", dns.String())

	ip, err := config.ClassifySAN("10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", ip.String())
}

func TestClassifySANs_OrderPreserved(t *testing.T) {
	res, err := config.ResolveDocument(map[string]any{
		"commonName":        "order.example.test",
		"subject_alt_names": []any{"b.local", "10.0.0.2", "a.local", "::1"},
	}, "")
	require.NoError(t, err)

	require.Len(t, res.SubjectAltNames, 4)
	assert.Equal(t, "b.local", res.SubjectAltNames[0].DNS)
	assert.Equal(t, config.SANIPv4, res.SubjectAltNames[1].Kind)
	assert.Equal(t, "a.local", res.SubjectAltNames[2].DNS)
	assert.Equal(t, config.SANIPv6, res.SubjectAltNames[3].Kind)
}
