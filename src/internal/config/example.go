// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"os"

	"github.com/H0llyW00dzZ/certtool/src/internal/certerr"
)

// exampleDocument mirrors the nested {dn, config} configuration shape so the
// emitted example keeps a stable field order.
type exampleDocument struct {
	DN struct {
		CountryName            string `json:"countryName"`
		StateOrProvinceName    string `json:"stateOrProvinceName"`
		LocalityName           string `json:"localityName"`
		OrganizationName       string `json:"organizationName"`
		OrganizationalUnitName string `json:"organizationalUnitName"`
		CommonName             string `json:"commonName"`
		EmailAddress           string `json:"emailAddress"`
	} `json:"dn"`
	Config struct {
		DigestAlg       string   `json:"digest_alg"`
		PrivateKeyBits  int      `json:"private_key_bits"`
		PrivateKeyType  string   `json:"private_key_type"`
		EncryptKey      bool     `json:"encrypt_key"`
		ValidDays       int      `json:"valid_days"`
		SubjectAltNames []string `json:"subject_alt_names"`
	} `json:"config"`
}

// ExampleJSON renders a complete example configuration in the nested shape,
// including a SAN array, as indented JSON with a trailing newline. The
// output is accepted unchanged by [LoadFile].
func ExampleJSON() ([]byte, error) {
	var doc exampleDocument

	doc.DN.CountryName = "UK"
	doc.DN.StateOrProvinceName = "Somerset"
	doc.DN.LocalityName = "Glastonbury"
	doc.DN.OrganizationName = "Example Org"
	doc.DN.OrganizationalUnitName = "Certificate Tooling"
	doc.DN.CommonName = "example.certtool.test"
	doc.DN.EmailAddress = "admin@example.test"

	doc.Config.DigestAlg = DigestSHA512
	doc.Config.PrivateKeyBits = 2048
	doc.Config.PrivateKeyType = KeyTypeRSA
	doc.Config.EncryptKey = false
	doc.Config.ValidDays = 365
	doc.Config.SubjectAltNames = []string{
		"example.certtool.test",
		"www.example.certtool.test",
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, certerr.Outputf("unable to render example config: %v", err)
	}
	return append(data, '\n'), nil
}

// WriteExample writes the example configuration to path, or is a no-op with
// the rendered bytes returned when path is empty (the caller prints them).
func WriteExample(path string) ([]byte, error) {
	data, err := ExampleJSON()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return data, nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, certerr.Outputf("unable to write example config to %s: %v", path, err)
	}
	return data, nil
}
