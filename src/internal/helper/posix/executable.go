// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// GetExecutableName returns the executable name without extension, cross-platform compatible.
// It extracts the base name from os.Args[0] and removes common executable extensions
// (.exe on Windows) to provide a clean name for CLI usage strings.
//
// This ensures consistent behavior across all operating systems:
//   - Linux/macOS: "certtool" from "/usr/local/bin/certtool"
//   - Windows: "certtool" from "C:\bin\certtool.exe"
//   - Fallback: Uses "certtool" if os.Args[0] is unavailable
func GetExecutableName() string {
	// This literally never happens. If it happens, then it's not an operating system.
	if len(os.Args) == 0 || os.Args[0] == "" {
		return "certtool" // fallback name
	}

	name := filepath.Base(os.Args[0])
	return strings.TrimSuffix(name, filepath.Ext(name))
}
