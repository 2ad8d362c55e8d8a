// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides pooled byte buffers that reduce allocation overhead
// for repeated I/O work, such as rendering PEM bundles for many
// certificates in a bulk run.
package gc
