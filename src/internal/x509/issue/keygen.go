// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509issue

import (
	"crypto/rand"
	"crypto/rsa"

	"github.com/H0llyW00dzZ/certtool/src/internal/certerr"
)

// GenerateKeyPair generates an RSA key pair of the requested size from the
// cryptographically secure random source. The public exponent is fixed at
// 65537 by crypto/rsa and is not configurable. Failure halts the pipeline;
// key generation is never retried.
func GenerateKeyPair(bits int) (*rsa.PrivateKey, error) {
	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, certerr.Generationf("failed to generate RSA key (%d bits): %v", bits, err)
	}
	return key, nil
}
