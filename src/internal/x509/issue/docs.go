// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509issue implements the certificate issuance pipeline: building
// an ordered [X.509] subject name from a validated Distinguished Name,
// generating an RSA key pair, constructing a signed CSR, issuing a
// self-signed leaf certificate from it, and serializing the results to
// [PEM] (optionally encrypting the private key). The pipeline is synchronous
// and carries no shared mutable state; concurrent pipelines only share the
// crypto/rand source, which is safe for concurrent use.
//
// [X.509]: https://en.wikipedia.org/wiki/X.509
// [PEM]: https://en.wikipedia.org/wiki/Privacy-Enhanced_Mail
package x509issue
