// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config resolves and validates certificate issuance requests. It
// merges Distinguished Name and issuance settings from command-line values or
// from JSON/YAML configuration documents on top of an immutable default
// configuration, classifies subject alternative names once at resolve time,
// and rejects invalid input before any cryptographic work starts. Resolution
// is pure: it never touches the network or the filesystem beyond reading the
// configuration file handed to it.
package config
