// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package certerr defines the error categories shared across the certificate
// tool: configuration errors, generation errors, and output errors. Each
// category is a sentinel error that failure sites wrap with context, so
// callers can classify failures with [errors.Is] and the CLI can map each
// category to a distinct exit status.
package certerr
