// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509issue

import (
	"crypto/rsa"
	"crypto/x509"

	"github.com/H0llyW00dzZ/certtool/src/internal/config"
)

// Bundle owns the in-memory artifacts of a single issuance run: the private
// key, the CSR, and the issued certificate. It exists only between
// generation and serialization and is never persisted as a unit.
type Bundle struct {
	Key  *rsa.PrivateKey
	CSR  *x509.CertificateRequest
	Cert *x509.Certificate
}

// Generate runs the issuance pipeline for one resolved request: subject
// name, key pair, CSR, and self-signed certificate, in that order. Each
// stage runs to completion before the next begins; the first failure halts
// the pipeline.
func Generate(res *config.Resolved) (*Bundle, error) {
	subject := BuildName(res.DN)

	key, err := GenerateKeyPair(res.Config.PrivateKeyBits)
	if err != nil {
		return nil, err
	}

	csr, err := BuildCSR(key, subject, res.Config.DigestAlg, res.SubjectAltNames)
	if err != nil {
		return nil, err
	}

	cert, err := IssueSelfSigned(key, csr, res.Config.DigestAlg, res.Config.ValidDays)
	if err != nil {
		return nil, err
	}

	return &Bundle{Key: key, CSR: csr, Cert: cert}, nil
}

// Issue runs the full pipeline and serializes the bundle to PEM artifacts
// in one call. This is the entry point used by the CLI for every
// generation mode.
func Issue(res *config.Resolved) (*PemArtifacts, error) {
	bundle, err := Generate(res)
	if err != nil {
		return nil, err
	}
	return Serialize(bundle, res.Config.EncryptKey, res.Passphrase)
}
