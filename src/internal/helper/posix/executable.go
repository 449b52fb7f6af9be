// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultExecutableName is returned when os.Args[0] is unavailable.
const DefaultExecutableName = "fmld"

// GetExecutableName returns the executable name without extension, cross-platform compatible.
//
//   - Linux/macOS: "fmld" from "/usr/local/bin/fmld"
//   - Windows: "fmld" from "C:\bin\fmld.exe", also when running on a Unix host
//   - Fallback: [DefaultExecutableName] if os.Args[0] is unavailable
func GetExecutableName() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return DefaultExecutableName
	}

	name := filepath.Base(os.Args[0])

	// filepath.Base only knows the separator of the current OS.
	if strings.ContainsAny(name, `/\`) {
		parts := strings.FieldsFunc(name, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			name = parts[len(parts)-1]
		}
	}

	return strings.TrimSuffix(name, ".exe")
}
