// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/certtool/src/internal/certerr"
	"github.com/H0llyW00dzZ/certtool/src/internal/config"
)

func TestResolveDocument_DefaultsApply(t *testing.T) {
	res, err := config.ResolveDocument(map[string]any{
		"commonName": "dev.local",
	}, "")
	require.NoError(t, err)

	assert.Equal(t, "dev.local", res.DN.CommonName)
	assert.Equal(t, config.DigestSHA512, res.Config.DigestAlg)
	assert.Equal(t, 2048, res.Config.PrivateKeyBits)
	assert.Equal(t, config.KeyTypeRSA, res.Config.PrivateKeyType)
	assert.False(t, res.Config.EncryptKey)
	assert.Equal(t, 365, res.Config.ValidDays)
	assert.Empty(t, res.SubjectAltNames)
	assert.Empty(t, res.Passphrase)
}

func TestResolveDocument_FlatShape(t *testing.T) {
	res, err := config.ResolveDocument(map[string]any{
		"countryName":      "UK",
		"localityName":     "Glastonbury",
		"commonName":       "web.example.test",
		"digest_alg":       "sha256",
		"private_key_bits": float64(4096),
		"valid_days":       float64(30),
		"unrecognized_key": "ignored",
	}, "")
	require.NoError(t, err)

	assert.Equal(t, "UK", res.DN.CountryName)
	assert.Equal(t, "Glastonbury", res.DN.LocalityName)
	assert.Equal(t, "web.example.test", res.DN.CommonName)
	assert.Equal(t, config.DigestSHA256, res.Config.DigestAlg)
	assert.Equal(t, 4096, res.Config.PrivateKeyBits)
	assert.Equal(t, 30, res.Config.ValidDays)
}

func TestResolveDocument_NestedShape(t *testing.T) {
	res, err := config.ResolveDocument(map[string]any{
		"dn": map[string]any{
			"organizationName": "Example Org",
			"commonName":       "svc.example.test",
		},
		"config": map[string]any{
			"digest_alg": "sha384",
			"valid_days": float64(90),
		},
	}, "")
	require.NoError(t, err)

	assert.Equal(t, "Example Org", res.DN.OrganizationName)
	assert.Equal(t, "svc.example.test", res.DN.CommonName)
	assert.Equal(t, config.DigestSHA384, res.Config.DigestAlg)
	assert.Equal(t, 90, res.Config.ValidDays)
	// Untouched settings keep their defaults.
	assert.Equal(t, 2048, res.Config.PrivateKeyBits)
}

func TestResolveDocument_NestedShapeIgnoresStrayTopLevelKeys(t *testing.T) {
	// Once a document declares dn/config blocks, loose DN keys at the top
	// level are not merged in.
	res, err := config.ResolveDocument(map[string]any{
		"dn": map[string]any{
			"commonName": "svc.example.test",
		},
		"organizationName": "Should Be Ignored",
	}, "")
	require.NoError(t, err)

	assert.Empty(t, res.DN.OrganizationName)
}

func TestResolveDocument_ReservedKeysBothShapes(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]any
	}{
		{
			name: "flat shape",
			doc: map[string]any{
				"commonName":        "san.example.test",
				"subject_alt_names": []any{"san.example.test", "10.0.0.1"},
				"passphrase":        "secret",
			},
		},
		{
			name: "nested shape with top-level reserved keys",
			doc: map[string]any{
				"dn":                map[string]any{"commonName": "san.example.test"},
				"subject_alt_names": []any{"san.example.test", "10.0.0.1"},
				"passphrase":        "secret",
			},
		},
		{
			name: "nested shape with reserved keys inside config",
			doc: map[string]any{
				"dn": map[string]any{"commonName": "san.example.test"},
				"config": map[string]any{
					"subject_alt_names": []any{"san.example.test", "10.0.0.1"},
					"passphrase":        "secret",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := config.ResolveDocument(tt.doc, "")
			require.NoError(t, err)

			require.Len(t, res.SubjectAltNames, 2)
			assert.Equal(t, config.SANDNS, res.SubjectAltNames[0].Kind)
			assert.Equal(t, "san.example.test", res.SubjectAltNames[0].DNS)
			assert.Equal(t, config.SANIPv4, res.SubjectAltNames[1].Kind)
			assert.Equal(t, "secret", res.Passphrase)
		})
	}
}

func TestResolveDocument_CLIPassphraseOverridesDocument(t *testing.T) {
	res, err := config.ResolveDocument(map[string]any{
		"commonName": "dev.local",
		"passphrase": "from-document",
	}, "from-cli")
	require.NoError(t, err)

	assert.Equal(t, "from-cli", res.Passphrase)
}

func TestResolveDocument_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]any
	}{
		{"missing commonName", map[string]any{"organizationName": "Example Org"}},
		{"blank commonName", map[string]any{"commonName": "   "}},
		{"unsupported key type", map[string]any{"commonName": "a", "private_key_type": "DSA"}},
		{"zero key bits", map[string]any{"commonName": "a", "private_key_bits": float64(0)}},
		{"negative key bits", map[string]any{"commonName": "a", "private_key_bits": float64(-2048)}},
		{"zero valid days", map[string]any{"commonName": "a", "valid_days": float64(0)}},
		{"negative valid days", map[string]any{"commonName": "a", "valid_days": float64(-1)}},
		{"unsupported digest", map[string]any{"commonName": "a", "digest_alg": "md5"}},
		{"non-integral key bits", map[string]any{"commonName": "a", "private_key_bits": 2048.5}},
		{"non-string DN attribute", map[string]any{"commonName": float64(42)}},
		{"non-array SANs", map[string]any{"commonName": "a", "subject_alt_names": "not-a-list"}},
		{"non-string SAN entry", map[string]any{"commonName": "a", "subject_alt_names": []any{float64(1)}}},
		{"blank SAN entry", map[string]any{"commonName": "a", "subject_alt_names": []any{"  "}}},
		{"unparseable bool", map[string]any{"commonName": "a", "encrypt_key": "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.ResolveDocument(tt.doc, "")
			require.Error(t, err)
			assert.True(t, errors.Is(err, certerr.ErrConfig), "expected a configuration error, got %v", err)
		})
	}
}

func TestResolveDocument_ValueCoercion(t *testing.T) {
	res, err := config.ResolveDocument(map[string]any{
		"commonName":       "coerce.example.test",
		"private_key_bits": "3072",
		"valid_days":       " 30 ",
		"encrypt_key":      "yes",
		"passphrase":       "pw",
	}, "")
	require.NoError(t, err)

	assert.Equal(t, 3072, res.Config.PrivateKeyBits)
	assert.Equal(t, 30, res.Config.ValidDays)
	assert.True(t, res.Config.EncryptKey)
}

func TestResolveDocument_BoolSpellings(t *testing.T) {
	truthy := []any{true, "1", "true", "YES", "y", "On", float64(1)}
	falsy := []any{false, "0", "false", "No", "n", "OFF", float64(0)}

	for _, v := range truthy {
		res, err := config.ResolveDocument(map[string]any{
			"commonName": "a", "encrypt_key": v, "passphrase": "pw",
		}, "")
		require.NoError(t, err, "value %v", v)
		assert.True(t, res.Config.EncryptKey, "value %v should be truthy", v)
	}

	for _, v := range falsy {
		res, err := config.ResolveDocument(map[string]any{
			"commonName": "a", "encrypt_key": v,
		}, "")
		require.NoError(t, err, "value %v", v)
		assert.False(t, res.Config.EncryptKey, "value %v should be falsy", v)
	}
}

func TestResolveDocument_DigestCaseInsensitive(t *testing.T) {
	res, err := config.ResolveDocument(map[string]any{
		"commonName": "a",
		"digest_alg": "SHA256",
	}, "")
	require.NoError(t, err)

	assert.Equal(t, config.DigestSHA256, res.Config.DigestAlg)
}

func TestResolveCLI(t *testing.T) {
	encrypt := true
	res, err := config.ResolveCLI(config.CLIInput{
		DN: config.DistinguishedName{
			CountryName: "UK",
			CommonName:  "cli.example.test",
		},
		DigestAlg:       "sha256",
		PrivateKeyBits:  4096,
		EncryptKey:      &encrypt,
		ValidDays:       7,
		SubjectAltNames: []string{"cli.example.test", "192.168.1.10"},
		Passphrase:      "pw",
	})
	require.NoError(t, err)

	assert.Equal(t, "cli.example.test", res.DN.CommonName)
	assert.Equal(t, config.DigestSHA256, res.Config.DigestAlg)
	assert.Equal(t, 4096, res.Config.PrivateKeyBits)
	assert.True(t, res.Config.EncryptKey)
	assert.Equal(t, 7, res.Config.ValidDays)
	require.Len(t, res.SubjectAltNames, 2)
	assert.Equal(t, config.SANIPv4, res.SubjectAltNames[1].Kind)
}

func TestResolveCLI_DefaultsWhenUnset(t *testing.T) {
	res, err := config.ResolveCLI(config.CLIInput{
		DN: config.DistinguishedName{CommonName: "cli.example.test"},
	})
	require.NoError(t, err)

	assert.Equal(t, config.DefaultIssuanceConfig(), res.Config)
}

func TestResolveCLI_MissingCommonName(t *testing.T) {
	_, err := config.ResolveCLI(config.CLIInput{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, certerr.ErrConfig))
}

func TestLoadFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cert.json")
	doc := `{
  "dn": {"commonName": "file.example.test", "countryName": "UK"},
  "config": {"digest_alg": "sha256", "valid_days": 10}
}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	res, err := config.LoadFile(path, "")
	require.NoError(t, err)

	assert.Equal(t, "file.example.test", res.DN.CommonName)
	assert.Equal(t, "UK", res.DN.CountryName)
	assert.Equal(t, config.DigestSHA256, res.Config.DigestAlg)
	assert.Equal(t, 10, res.Config.ValidDays)
}

func TestLoadFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cert.yaml")
	doc := `dn:
  commonName: yaml.example.test
config:
  private_key_bits: 3072
  subject_alt_names:
    - yaml.example.test
    - "10.20.30.40"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	res, err := config.LoadFile(path, "")
	require.NoError(t, err)

	assert.Equal(t, "yaml.example.test", res.DN.CommonName)
	assert.Equal(t, 3072, res.Config.PrivateKeyBits)
	require.Len(t, res.SubjectAltNames, 2)
	assert.Equal(t, config.SANDNS, res.SubjectAltNames[0].Kind)
	assert.Equal(t, config.SANIPv4, res.SubjectAltNames[1].Kind)
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	badJSON := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badJSON, []byte("{not json"), 0644))

	topLevelArray := filepath.Join(dir, "array.json")
	require.NoError(t, os.WriteFile(topLevelArray, []byte(`["a"]`), 0644))

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.json")},
		{"invalid JSON", badJSON},
		{"top level not an object", topLevelArray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadFile(tt.path, "")
			require.Error(t, err)
			assert.True(t, errors.Is(err, certerr.ErrConfig))
		})
	}
}
