// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides the logging interface used across the certificate
// tool, with a human-readable CLI implementation and a structured JSON
// implementation for machine-readable diagnostics.
package logger
