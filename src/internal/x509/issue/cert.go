// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509issue

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"math/big"
	"time"

	"github.com/H0llyW00dzZ/certtool/src/internal/certerr"
)

// serialBits is the entropy of every certificate serial number. 160 bits of
// crypto/rand output makes collisions across any bulk run unreachable.
const serialBits = 160

// serialLimit is the exclusive upper bound for random serials (1 << 160).
var serialLimit = new(big.Int).Lsh(big.NewInt(1), serialBits)

// randomSerial draws a serial number from the cryptographically secure
// random source.
func randomSerial() (*big.Int, error) {
	serial, err := rand.Int(rand.Reader, serialLimit)
	if err != nil {
		return nil, certerr.Generationf("failed to generate serial number: %v", err)
	}
	return serial, nil
}

// IssueSelfSigned issues a self-signed leaf certificate from a CSR. The
// CSR's subject bytes are used verbatim as both subject and issuer, the SAN
// entries requested by the CSR are copied unchanged, and the certificate is
// signed with the same key and digest used for the CSR. The validity window
// starts at the time of issuance (UTC) and ends exactly validDays calendar
// days later.
func IssueSelfSigned(key *rsa.PrivateKey, csr *x509.CertificateRequest, digestAlg string, validDays int) (*x509.Certificate, error) {
	alg, err := signatureAlgorithm(digestAlg)
	if err != nil {
		return nil, err
	}

	if validDays <= 0 {
		return nil, certerr.Generationf("invalid validity window: %d days", validDays)
	}

	serial, err := randomSerial()
	if err != nil {
		return nil, err
	}

	notBefore := time.Now().UTC()
	notAfter := notBefore.AddDate(0, 0, validDays)

	template := x509.Certificate{
		SerialNumber:          serial,
		RawSubject:            csr.RawSubject,
		NotBefore:             notBefore,
		NotAfter:              notAfter,
		SignatureAlgorithm:    alg,
		BasicConstraintsValid: true,
		IsCA:                  true,
		DNSNames:              csr.DNSNames,
		IPAddresses:           csr.IPAddresses,
	}

	der, err := x509.CreateCertificate(rand.Reader, &template, &template, key.Public(), key)
	if err != nil {
		return nil, certerr.Generationf("failed to create self-signed certificate: %v", err)
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, certerr.Generationf("failed to parse generated certificate: %v", err)
	}
	return cert, nil
}
