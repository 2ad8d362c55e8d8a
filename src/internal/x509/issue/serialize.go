// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509issue

import (
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"

	"github.com/H0llyW00dzZ/certtool/src/internal/certerr"
)

// PEM block types for the three artifacts.
const (
	certBlockType = "CERTIFICATE"
	csrBlockType  = "CERTIFICATE REQUEST"
	keyBlockType  = "RSA PRIVATE KEY"
)

// PemArtifacts is the durable output of one issuance run: three
// independently valid PEM byte sequences. Where they go (stdout, disk) is
// the caller's concern; serialization performs no I/O.
type PemArtifacts struct {
	CertificatePEM []byte
	CSRPEM         []byte
	PrivateKeyPEM  []byte
}

// Serialize encodes a bundle's certificate, CSR, and private key as PEM.
// The key is PKCS#1 encoded; when encryptKey is set the key block is
// AES-256 protected with the passphrase. Requesting encryption without a
// passphrase is a hard failure: a requested security property is never
// silently downgraded.
func Serialize(b *Bundle, encryptKey bool, passphrase string) (*PemArtifacts, error) {
	keyBytes := x509.MarshalPKCS1PrivateKey(b.Key)

	var keyBlock *pem.Block
	if encryptKey {
		if passphrase == "" {
			return nil, certerr.Configf("encrypt_key is true but no passphrase was provided; set %q in the config or via --passphrase", "passphrase")
		}
		encrypted, err := x509.EncryptPEMBlock(rand.Reader, keyBlockType, keyBytes, []byte(passphrase), x509.PEMCipherAES256)
		if err != nil {
			return nil, certerr.Generationf("failed to encrypt private key: %v", err)
		}
		keyBlock = encrypted
	} else {
		keyBlock = &pem.Block{Type: keyBlockType, Bytes: keyBytes}
	}

	return &PemArtifacts{
		CertificatePEM: pem.EncodeToMemory(&pem.Block{Type: certBlockType, Bytes: b.Cert.Raw}),
		CSRPEM:         pem.EncodeToMemory(&pem.Block{Type: csrBlockType, Bytes: b.CSR.Raw}),
		PrivateKeyPEM:  pem.EncodeToMemory(keyBlock),
	}, nil
}
