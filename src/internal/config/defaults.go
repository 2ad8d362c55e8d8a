// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

// Distinguished Name attribute keys recognized in configuration input.
// These match the long-form OpenSSL attribute names used in JSON documents.
const (
	KeyCountryName            = "countryName"
	KeyStateOrProvinceName    = "stateOrProvinceName"
	KeyLocalityName           = "localityName"
	KeyOrganizationName       = "organizationName"
	KeyOrganizationalUnitName = "organizationalUnitName"
	KeyCommonName             = "commonName"
	KeyEmailAddress           = "emailAddress"
)

// DNKeys lists the recognized DN attribute keys in canonical order:
// country, state/province, locality, organization, organizational unit,
// common name, email. The order is a compatibility contract shared with
// the subject name builder.
var DNKeys = []string{
	KeyCountryName,
	KeyStateOrProvinceName,
	KeyLocalityName,
	KeyOrganizationName,
	KeyOrganizationalUnitName,
	KeyCommonName,
	KeyEmailAddress,
}

// Issuance configuration keys recognized in configuration input.
const (
	KeyDigestAlg       = "digest_alg"
	KeyPrivateKeyBits  = "private_key_bits"
	KeyPrivateKeyType  = "private_key_type"
	KeyEncryptKey      = "encrypt_key"
	KeyValidDays       = "valid_days"
	KeySubjectAltNames = "subject_alt_names"
	KeyPassphrase      = "passphrase"
)

// configKeys is the membership set used to classify flat-document keys as
// issuance settings. subject_alt_names and passphrase are reserved keys
// handled explicitly regardless of document shape.
var configKeys = map[string]bool{
	KeyDigestAlg:      true,
	KeyPrivateKeyBits: true,
	KeyPrivateKeyType: true,
	KeyEncryptKey:     true,
	KeyValidDays:      true,
}

// dnKeySet is the membership set used to classify flat-document keys as DN
// attributes.
var dnKeySet = func() map[string]bool {
	m := make(map[string]bool, len(DNKeys))
	for _, k := range DNKeys {
		m[k] = true
	}
	return m
}()

// Digest algorithms permitted for CSR and certificate signing.
const (
	DigestSHA256 = "sha256"
	DigestSHA384 = "sha384"
	DigestSHA512 = "sha512"
)

// allowedDigests is the enumerated set of digest algorithm names accepted
// by validation. Names are compared lowercase.
var allowedDigests = map[string]bool{
	DigestSHA256: true,
	DigestSHA384: true,
	DigestSHA512: true,
}

// KeyTypeRSA is the only supported private key type.
const KeyTypeRSA = "RSA"

// DistinguishedName holds the subject identity attributes for one
// certificate. Every field except CommonName is optional; empty fields are
// omitted from the encoded X.509 name entirely.
type DistinguishedName struct {
	CountryName            string
	StateOrProvinceName    string
	LocalityName           string
	OrganizationName       string
	OrganizationalUnitName string
	CommonName             string
	EmailAddress           string
}

// IssuanceConfig holds the certificate and key settings for one issuance
// run. Values are immutable after validation.
type IssuanceConfig struct {
	DigestAlg      string
	PrivateKeyBits int
	PrivateKeyType string
	EncryptKey     bool
	ValidDays      int
}

// DefaultIssuanceConfig returns a fresh copy of the process-wide issuance
// defaults: sha512 digest, 2048-bit RSA key, unencrypted, 365-day validity.
// Callers always receive an independent value, never shared state.
func DefaultIssuanceConfig() IssuanceConfig {
	return IssuanceConfig{
		DigestAlg:      DigestSHA512,
		PrivateKeyBits: 2048,
		PrivateKeyType: KeyTypeRSA,
		EncryptKey:     false,
		ValidDays:      365,
	}
}

// Resolved is the validated output of configuration resolution: the DN, the
// merged issuance settings, classified SAN entries, and the passphrase if
// one was supplied. It is consumed read-only by the issuance pipeline.
type Resolved struct {
	DN              DistinguishedName
	Config          IssuanceConfig
	SubjectAltNames []SubjectAltName
	Passphrase      string
}
