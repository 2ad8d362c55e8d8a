// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509inspect

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"time"

	"github.com/cloudflare/cfssl/crypto/pkcs7"

	"github.com/H0llyW00dzZ/certtool/src/internal/certerr"
)

var (
	// ErrInvalidPEMBlock indicates that the provided data does not contain a valid PEM block.
	ErrInvalidPEMBlock = fmt.Errorf("%w: invalid PEM block", certerr.ErrGeneration)

	// ErrInvalidBlockType indicates that the PEM block type is not the expected certificate type.
	ErrInvalidBlockType = fmt.Errorf("%w: invalid PEM block type", certerr.ErrGeneration)

	// ErrParseCertificate indicates a failure to parse the certificate from the provided data.
	ErrParseCertificate = fmt.Errorf("%w: failed to parse certificate", certerr.ErrGeneration)

	// ErrParsePKCS7 indicates a failure to parse PKCS7 formatted data.
	ErrParsePKCS7 = fmt.Errorf("%w: failed to parse PKCS7 data", certerr.ErrGeneration)

	// ErrNoCertificatesInPKCS indicates that no certificates were found in the PKCS7 data.
	ErrNoCertificatesInPKCS = fmt.Errorf("%w: no certificates found in PKCS7 data", certerr.ErrGeneration)
)

// Inspector decodes previously issued certificates and extracts the fields
// surfaced by inspection. It never attempts partial recovery from malformed
// input.
type Inspector struct {
	certBlockType string
}

// New creates a new Inspector with default settings.
func New() *Inspector {
	return &Inspector{
		certBlockType: "CERTIFICATE",
	}
}

// IsPEM checks if the data is in PEM format.
func (i *Inspector) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// decodePEMBlock decodes a PEM block and checks its type. Blocks that are
// not certificates (CSRs, keys) are rejected.
func (i *Inspector) decodePEMBlock(data []byte) (*pem.Block, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrInvalidPEMBlock
	}
	if block.Type != i.certBlockType {
		return nil, ErrInvalidBlockType
	}
	return block, nil
}

// Decode decodes a single certificate from data. PEM input must carry a
// CERTIFICATE block; bare DER and PKCS7 payloads are also accepted.
func (i *Inspector) Decode(data []byte) (*x509.Certificate, error) {
	if i.IsPEM(data) {
		block, err := i.decodePEMBlock(data)
		if err != nil {
			return nil, err
		}
		data = block.Bytes
	}

	cert, err := x509.ParseCertificate(data)
	if err == nil {
		return cert, nil
	}

	// Attempt to parse as PKCS7 using Cloudflare's library
	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, ErrParsePKCS7
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificatesInPKCS
	}

	return p.Content.SignedData.Certificates[0], nil
}

// Details captures the fields surfaced when inspecting a certificate:
// subject and issuer names with all present attributes, the validity
// window, SAN entries if any, and the serial number.
type Details struct {
	Subject      string
	Issuer       string
	SerialNumber string
	NotBefore    time.Time
	NotAfter     time.Time
	DNSNames     []string
	IPAddresses  []string
}

// Inspect decodes a certificate and extracts its details.
func (i *Inspector) Inspect(data []byte) (*Details, error) {
	cert, err := i.Decode(data)
	if err != nil {
		return nil, err
	}

	d := &Details{
		Subject:      cert.Subject.String(),
		Issuer:       cert.Issuer.String(),
		SerialNumber: cert.SerialNumber.String(),
		NotBefore:    cert.NotBefore,
		NotAfter:     cert.NotAfter,
		DNSNames:     cert.DNSNames,
	}

	for _, ip := range cert.IPAddresses {
		d.IPAddresses = append(d.IPAddresses, ip.String())
	}

	return d, nil
}
