// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509inspect provides the read path over previously issued
// certificates: decoding [PEM] (with DER and [PKCS7] fallbacks) and
// extracting subject, issuer, validity window, and subject alternative
// names for display. Malformed or non-certificate input fails with a
// generation error carrying the parse-failure reason.
//
// [PKCS7]: https://en.wikipedia.org/wiki/PKCS_7
// [PEM]: https://en.wikipedia.org/wiki/Privacy-Enhanced_Mail
package x509inspect
