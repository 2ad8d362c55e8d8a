// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/certtool/src/internal/certerr"
)

// documentFormat represents supported configuration file formats.
type documentFormat int

const (
	// documentFormatJSON represents JSON configuration format (.json)
	documentFormatJSON documentFormat = iota
	// documentFormatYAML represents YAML configuration format (.yaml, .yml)
	documentFormatYAML
)

// detectDocumentFormat determines the configuration file format based on
// file extension, case-insensitively. Anything that is not .yaml/.yml is
// treated as JSON.
func detectDocumentFormat(path string) documentFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return documentFormatYAML
	default:
		return documentFormatJSON
	}
}

// CLIInput carries explicit command-line DN and issuance values for
// CLI-parameter mode. Zero values mean "not supplied": the resolver fills
// them from the issuance defaults. DN fields have no defaults.
type CLIInput struct {
	DN DistinguishedName

	DigestAlg      string
	PrivateKeyBits int
	PrivateKeyType string
	EncryptKey     *bool
	ValidDays      int

	SubjectAltNames []string
	Passphrase      string
}

// ResolveCLI merges CLI-supplied values on top of the default issuance
// configuration and validates the result. The DN is taken solely from the
// input; commonName must be present.
func ResolveCLI(in CLIInput) (*Resolved, error) {
	cfg := DefaultIssuanceConfig()

	if in.DigestAlg != "" {
		cfg.DigestAlg = in.DigestAlg
	}
	if in.PrivateKeyBits != 0 {
		cfg.PrivateKeyBits = in.PrivateKeyBits
	}
	if in.PrivateKeyType != "" {
		cfg.PrivateKeyType = in.PrivateKeyType
	}
	if in.EncryptKey != nil {
		cfg.EncryptKey = *in.EncryptKey
	}
	if in.ValidDays != 0 {
		cfg.ValidDays = in.ValidDays
	}

	sans, err := classifySANs(in.SubjectAltNames)
	if err != nil {
		return nil, err
	}

	res := &Resolved{
		DN:              in.DN,
		Config:          cfg,
		SubjectAltNames: sans,
		Passphrase:      in.Passphrase,
	}

	if err := validate(res); err != nil {
		return nil, err
	}
	return res, nil
}

// LoadFile reads a JSON or YAML configuration file and resolves it.
// cliPassphrase, if non-empty, takes precedence over any passphrase in the
// document.
func LoadFile(path, cliPassphrase string) (*Resolved, error) {
	doc, err := parseFile(path)
	if err != nil {
		return nil, err
	}
	return ResolveDocument(doc, cliPassphrase)
}

// parseFile reads and parses a configuration file into a generic document,
// detecting JSON or YAML by extension. The top level must be a mapping.
func parseFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, certerr.Configf("unable to read config %s: %v", path, err)
	}

	var raw any
	switch detectDocumentFormat(path) {
	case documentFormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, certerr.Configf("invalid YAML in config %s: %v", path, err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, certerr.Configf("invalid JSON in config %s: %v", path, err)
		}
	}

	doc, ok := toStringMap(raw)
	if !ok {
		return nil, certerr.Configf("config %s must be an object at the top level", path)
	}
	return doc, nil
}

// toStringMap normalizes a decoded mapping to string keys. YAML documents
// decoded into any may produce map[string]any already (yaml.v3) but nested
// values are normalized defensively.
func toStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	default:
		return nil, false
	}
}

// ResolveDocument resolves a parsed configuration document. Both supported
// shapes are accepted:
//
//   - explicit blocks: {"dn": {...}, "config": {...}}
//   - flat mapping: DN and config keys at the top level
//
// Keys are classified by fixed membership in the DN and config key sets;
// unrecognized keys are ignored. The reserved keys subject_alt_names and
// passphrase are honored in either shape, at the top level or inside the
// config block. cliPassphrase, if non-empty, overrides the document's
// passphrase.
func ResolveDocument(doc map[string]any, cliPassphrase string) (*Resolved, error) {
	var (
		dnRaw  map[string]any
		cfgRaw map[string]any
	)

	if hasExplicitBlocks(doc) {
		dnRaw, cfgRaw = extractExplicitBlocks(doc)
	} else {
		dnRaw, cfgRaw = extractFlat(doc)
	}

	// Reserved top-level keys apply regardless of shape.
	for _, key := range []string{KeySubjectAltNames, KeyPassphrase} {
		if v, ok := doc[key]; ok {
			cfgRaw[key] = v
		}
	}

	dn, err := buildDN(dnRaw)
	if err != nil {
		return nil, err
	}

	res := &Resolved{DN: dn, Config: DefaultIssuanceConfig()}
	if err := applyConfig(res, cfgRaw); err != nil {
		return nil, err
	}

	if cliPassphrase != "" {
		res.Passphrase = cliPassphrase
	}

	if err := validate(res); err != nil {
		return nil, err
	}
	return res, nil
}

// hasExplicitBlocks reports whether the document uses the nested
// {dn, config} shape.
func hasExplicitBlocks(doc map[string]any) bool {
	_, hasDN := doc["dn"]
	_, hasCfg := doc["config"]
	return hasDN || hasCfg
}

// extractExplicitBlocks pulls the dn and config mappings out of a nested
// document. Blocks that are absent or not mappings are ignored.
func extractExplicitBlocks(doc map[string]any) (dn, cfg map[string]any) {
	dn = map[string]any{}
	cfg = map[string]any{}

	if block, ok := toStringMap(doc["dn"]); ok {
		for k, v := range block {
			dn[k] = v
		}
	}
	if block, ok := toStringMap(doc["config"]); ok {
		for k, v := range block {
			cfg[k] = v
		}
	}
	return dn, cfg
}

// extractFlat classifies top-level keys of a flat document into DN and
// config mappings by key-set membership. Unknown keys are ignored.
func extractFlat(doc map[string]any) (dn, cfg map[string]any) {
	dn = map[string]any{}
	cfg = map[string]any{}

	for k, v := range doc {
		switch {
		case dnKeySet[k]:
			dn[k] = v
		case configKeys[k] || k == KeySubjectAltNames || k == KeyPassphrase:
			cfg[k] = v
		}
	}
	return dn, cfg
}

// buildDN converts a raw DN mapping into a DistinguishedName. Values must
// be strings; unrecognized keys are ignored.
func buildDN(raw map[string]any) (DistinguishedName, error) {
	var dn DistinguishedName

	fields := map[string]*string{
		KeyCountryName:            &dn.CountryName,
		KeyStateOrProvinceName:    &dn.StateOrProvinceName,
		KeyLocalityName:           &dn.LocalityName,
		KeyOrganizationName:       &dn.OrganizationName,
		KeyOrganizationalUnitName: &dn.OrganizationalUnitName,
		KeyCommonName:             &dn.CommonName,
		KeyEmailAddress:           &dn.EmailAddress,
	}

	for key, dst := range fields {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return dn, certerr.Configf("DN attribute %s must be a string, got %T", key, v)
		}
		*dst = s
	}

	return dn, nil
}

// applyConfig merges raw issuance settings on top of the defaults already
// present in res, coercing known value types.
func applyConfig(res *Resolved, raw map[string]any) error {
	if v, ok := raw[KeyDigestAlg]; ok {
		s, err := coerceString(KeyDigestAlg, v)
		if err != nil {
			return err
		}
		res.Config.DigestAlg = s
	}

	if v, ok := raw[KeyPrivateKeyBits]; ok {
		n, err := coerceInt(KeyPrivateKeyBits, v)
		if err != nil {
			return err
		}
		res.Config.PrivateKeyBits = n
	}

	if v, ok := raw[KeyPrivateKeyType]; ok {
		s, err := coerceString(KeyPrivateKeyType, v)
		if err != nil {
			return err
		}
		res.Config.PrivateKeyType = s
	}

	if v, ok := raw[KeyEncryptKey]; ok {
		b, err := coerceBool(KeyEncryptKey, v)
		if err != nil {
			return err
		}
		res.Config.EncryptKey = b
	}

	if v, ok := raw[KeyValidDays]; ok {
		n, err := coerceInt(KeyValidDays, v)
		if err != nil {
			return err
		}
		res.Config.ValidDays = n
	}

	if v, ok := raw[KeyPassphrase]; ok && v != nil {
		s, err := coerceString(KeyPassphrase, v)
		if err != nil {
			return err
		}
		res.Passphrase = s
	}

	if v, ok := raw[KeySubjectAltNames]; ok && v != nil {
		entries, err := coerceStringSlice(KeySubjectAltNames, v)
		if err != nil {
			return err
		}
		sans, err := classifySANs(entries)
		if err != nil {
			return err
		}
		res.SubjectAltNames = sans
	}

	return nil
}

// validate enforces the resolver's invariants. It is pure and
// side-effect-free; any violation fails with a configuration error before
// key generation begins.
func validate(res *Resolved) error {
	if strings.TrimSpace(res.DN.CommonName) == "" {
		return certerr.Configf("DN is missing %q; provide it in the JSON config or via CLI", KeyCommonName)
	}

	if !strings.EqualFold(res.Config.PrivateKeyType, KeyTypeRSA) {
		return certerr.Configf("unsupported private_key_type %q; only %q is supported", res.Config.PrivateKeyType, KeyTypeRSA)
	}

	if res.Config.PrivateKeyBits <= 0 {
		return certerr.Configf("private_key_bits must be a positive integer, got %d", res.Config.PrivateKeyBits)
	}

	if res.Config.ValidDays <= 0 {
		return certerr.Configf("valid_days must be a positive integer, got %d", res.Config.ValidDays)
	}

	digest := strings.ToLower(res.Config.DigestAlg)
	if !allowedDigests[digest] {
		return certerr.Configf("unsupported digest %q; allowed: %s, %s, %s", res.Config.DigestAlg, DigestSHA256, DigestSHA384, DigestSHA512)
	}
	res.Config.DigestAlg = digest

	return nil
}

// coerceString accepts string values only.
func coerceString(key string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", certerr.Configf("%s must be a string, got %T", key, v)
	}
	return s, nil
}

// coerceInt converts JSON/YAML scalar values to int. JSON numbers arrive as
// float64 and must be integral; numeric strings are accepted the way the
// tool's configuration documents historically allowed.
func coerceInt(key string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, certerr.Configf("%s must be an integer, got %v", key, n)
		}
		return int(n), nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, certerr.Configf("%s must be an integer, got %q", key, n)
		}
		return parsed, nil
	default:
		return 0, certerr.Configf("%s must be an integer, got %T", key, v)
	}
}

// coerceBool converts scalar values to bool. Accepted string forms mirror
// common configuration spellings: 1/0, true/false, yes/no, y/n, on/off.
func coerceBool(key string, v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case int:
		return b != 0, nil
	case int64:
		return b != 0, nil
	case float64:
		return b != 0, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "1", "true", "yes", "y", "on":
			return true, nil
		case "0", "false", "no", "n", "off":
			return false, nil
		}
		return false, certerr.Configf("cannot interpret %s value %q as a boolean", key, b)
	default:
		return false, certerr.Configf("cannot interpret %s value of type %T as a boolean", key, v)
	}
}

// coerceStringSlice converts a decoded array into a []string.
func coerceStringSlice(key string, v any) ([]string, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, certerr.Configf("%s must be an array of strings, got %T", key, v)
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, certerr.Configf("%s entries must be strings, got %T", key, item)
		}
		out = append(out, s)
	}
	return out, nil
}
