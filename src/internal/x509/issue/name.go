// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509issue

import (
	"crypto/x509/pkix"
	"encoding/asn1"

	"github.com/H0llyW00dzZ/certtool/src/internal/config"
)

// Attribute type OIDs for the recognized DN attributes.
var (
	oidCountryName            = asn1.ObjectIdentifier{2, 5, 4, 6}
	oidStateOrProvinceName    = asn1.ObjectIdentifier{2, 5, 4, 8}
	oidLocalityName           = asn1.ObjectIdentifier{2, 5, 4, 7}
	oidOrganizationName       = asn1.ObjectIdentifier{2, 5, 4, 10}
	oidOrganizationalUnitName = asn1.ObjectIdentifier{2, 5, 4, 11}
	oidCommonName             = asn1.ObjectIdentifier{2, 5, 4, 3}
	oidEmailAddress           = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 9, 1}
)

// BuildName constructs the X.509 subject name from a validated DN using the
// fixed canonical attribute order: country, state/province, locality,
// organization, organizational unit, common name, email. Absent fields are
// omitted entirely, never emitted as empty attributes. Each attribute is
// carried in ExtraNames so the encoded RDN sequence follows exactly this
// order, making the encoding deterministic: equal DNs always produce
// byte-identical names.
func BuildName(dn config.DistinguishedName) pkix.Name {
	var attrs []pkix.AttributeTypeAndValue

	add := func(oid asn1.ObjectIdentifier, value string) {
		if value != "" {
			attrs = append(attrs, pkix.AttributeTypeAndValue{Type: oid, Value: value})
		}
	}

	add(oidCountryName, dn.CountryName)
	add(oidStateOrProvinceName, dn.StateOrProvinceName)
	add(oidLocalityName, dn.LocalityName)
	add(oidOrganizationName, dn.OrganizationName)
	add(oidOrganizationalUnitName, dn.OrganizationalUnitName)
	add(oidCommonName, dn.CommonName)
	add(oidEmailAddress, dn.EmailAddress)

	return pkix.Name{ExtraNames: attrs}
}

// MarshalName returns the DER encoding of a name built by [BuildName].
// Used by tests and callers that need the exact byte form.
func MarshalName(name pkix.Name) ([]byte, error) {
	return asn1.Marshal(name.ToRDNSequence())
}
