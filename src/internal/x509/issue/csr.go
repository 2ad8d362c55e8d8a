// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509issue

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"net"

	"github.com/H0llyW00dzZ/certtool/src/internal/certerr"
	"github.com/H0llyW00dzZ/certtool/src/internal/config"
)

// signatureAlgorithm maps a validated digest algorithm name to the RSA
// signature algorithm used for CSR and certificate signing.
func signatureAlgorithm(digestAlg string) (x509.SignatureAlgorithm, error) {
	switch digestAlg {
	case config.DigestSHA256:
		return x509.SHA256WithRSA, nil
	case config.DigestSHA384:
		return x509.SHA384WithRSA, nil
	case config.DigestSHA512:
		return x509.SHA512WithRSA, nil
	default:
		return x509.UnknownSignatureAlgorithm, certerr.Configf("unsupported digest %q", digestAlg)
	}
}

// splitSANs separates classified SAN entries into the DNS-name and
// IP-address slices the x509 templates expect, preserving supplied order
// within each kind.
func splitSANs(sans []config.SubjectAltName) (dnsNames []string, ipAddresses []net.IP) {
	for _, san := range sans {
		if san.Kind == config.SANDNS {
			dnsNames = append(dnsNames, san.DNS)
		} else {
			ipAddresses = append(ipAddresses, san.IP)
		}
	}
	return dnsNames, ipAddresses
}

// BuildCSR constructs a certificate signing request with the given subject
// and SAN entries, signed by the private key with the configured digest.
// The returned request is the parsed form of the signed DER, so RawSubject
// reflects the exact bytes later copied into the certificate.
func BuildCSR(key *rsa.PrivateKey, subject pkix.Name, digestAlg string, sans []config.SubjectAltName) (*x509.CertificateRequest, error) {
	alg, err := signatureAlgorithm(digestAlg)
	if err != nil {
		return nil, err
	}

	dnsNames, ipAddresses := splitSANs(sans)

	template := x509.CertificateRequest{
		Subject:            subject,
		SignatureAlgorithm: alg,
		DNSNames:           dnsNames,
		IPAddresses:        ipAddresses,
	}

	der, err := x509.CreateCertificateRequest(rand.Reader, &template, key)
	if err != nil {
		return nil, certerr.Generationf("failed to create CSR: %v", err)
	}

	csr, err := x509.ParseCertificateRequest(der)
	if err != nil {
		return nil, certerr.Generationf("failed to parse generated CSR: %v", err)
	}
	return csr, nil
}
