// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/H0llyW00dzZ/certtool/src/internal/certerr"
)

// documentSchema is the structural JSON Schema applied by ValidateFile
// before semantic resolution. It is intentionally permissive about value
// spellings (numeric strings, boolean words) because the resolver coerces
// those; it only pins down the document shape and gross type errors.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "dn": {
      "type": "object",
      "properties": {
        "countryName": {"type": "string"},
        "stateOrProvinceName": {"type": "string"},
        "localityName": {"type": "string"},
        "organizationName": {"type": "string"},
        "organizationalUnitName": {"type": "string"},
        "commonName": {"type": "string"},
        "emailAddress": {"type": "string"}
      }
    },
    "config": {
      "type": "object",
      "properties": {
        "digest_alg": {"type": "string"},
        "private_key_bits": {"type": ["integer", "string"]},
        "private_key_type": {"type": "string"},
        "encrypt_key": {"type": ["boolean", "string", "integer", "number"]},
        "valid_days": {"type": ["integer", "string"]},
        "subject_alt_names": {"type": "array", "items": {"type": "string"}},
        "passphrase": {"type": "string"}
      }
    },
    "countryName": {"type": "string"},
    "stateOrProvinceName": {"type": "string"},
    "localityName": {"type": "string"},
    "organizationName": {"type": "string"},
    "organizationalUnitName": {"type": "string"},
    "commonName": {"type": "string"},
    "emailAddress": {"type": "string"},
    "digest_alg": {"type": "string"},
    "private_key_bits": {"type": ["integer", "string"]},
    "private_key_type": {"type": "string"},
    "encrypt_key": {"type": ["boolean", "string", "integer", "number"]},
    "valid_days": {"type": ["integer", "string"]},
    "subject_alt_names": {"type": "array", "items": {"type": "string"}},
    "passphrase": {"type": "string"}
  }
}`

// validateSchema checks a parsed document against the structural schema.
// Violations are reported together in one configuration error.
func validateSchema(doc map[string]any) error {
	schema := gojsonschema.NewStringLoader(documentSchema)
	document := gojsonschema.NewGoLoader(doc)

	result, err := gojsonschema.Validate(schema, document)
	if err != nil {
		return certerr.Configf("schema validation failed: %v", err)
	}
	if result.Valid() {
		return nil
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return certerr.Configf("config does not match schema: %s", strings.Join(problems, "; "))
}

// ValidateFile parses a JSON or YAML configuration file, checks it against
// the structural schema, and runs full semantic resolution without
// generating anything. It is the implementation of validate-only mode.
func ValidateFile(path string) error {
	doc, err := parseFile(path)
	if err != nil {
		return err
	}
	if err := validateSchema(doc); err != nil {
		return err
	}
	_, err = ResolveDocument(doc, "")
	return err
}
