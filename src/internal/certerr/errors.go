// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certerr

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig indicates that DN or issuance configuration input is
	// structurally invalid, missing required fields, or uses unsupported
	// enumerated values. It is always raised before any cryptographic work.
	ErrConfig = errors.New("certtool: invalid configuration")

	// ErrGeneration indicates a cryptographic operation failure: key
	// generation, CSR/certificate construction or signing, or a parse
	// failure while inspecting an existing certificate.
	ErrGeneration = errors.New("certtool: generation failure")

	// ErrOutput indicates that a destination directory or file could not
	// be created or written. It is never produced by the issuance pipeline
	// itself, only by the output layer.
	ErrOutput = errors.New("certtool: output failure")
)

// Exit statuses reported by the CLI for each error category.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitConfig     = 2
	ExitGeneration = 3
	ExitOutput     = 4
)

// Configf wraps a formatted message in the [ErrConfig] category.
func Configf(format string, v ...any) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, v...))
}

// Generationf wraps a formatted message in the [ErrGeneration] category.
func Generationf(format string, v ...any) error {
	return fmt.Errorf("%w: %s", ErrGeneration, fmt.Sprintf(format, v...))
}

// Outputf wraps a formatted message in the [ErrOutput] category.
func Outputf(format string, v ...any) error {
	return fmt.Errorf("%w: %s", ErrOutput, fmt.Sprintf(format, v...))
}

// ExitCode maps an error to the process exit status the CLI should use.
// A nil error maps to ExitOK; errors outside the three categories map to
// ExitFailure.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrConfig):
		return ExitConfig
	case errors.Is(err, ErrGeneration):
		return ExitGeneration
	case errors.Is(err, ErrOutput):
		return ExitOutput
	default:
		return ExitFailure
	}
}
