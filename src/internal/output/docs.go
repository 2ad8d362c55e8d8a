// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package output writes serialized PEM artifacts to their destination:
// either a human-readable stream (stdout) or a per-certificate
// subdirectory containing cert.pem, csr.pem, and key.pem. It owns
// directory naming and collision avoidance; the issuance pipeline itself
// never performs I/O.
package output
