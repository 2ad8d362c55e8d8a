// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the certificate tool.
// It implements a Cobra-based CLI that supports single-certificate
// generation from flags, single- and bulk-generation from JSON/YAML config
// files, validation-only and example-config modes, and inspection of
// existing PEM certificates. The package enforces the mutual-exclusivity
// contract between modes before the issuance pipeline runs and integrates
// with the logger package for human-readable or structured output.
package cli
