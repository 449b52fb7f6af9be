// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetExecutableName(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "Relative path", args: []string{"./fmld"}, expected: "fmld"},
		{name: "Just filename", args: []string{"fmld"}, expected: "fmld"},
		{name: "Unix absolute path", args: []string{"/usr/local/bin/fmld"}, expected: "fmld"},
		{name: "Windows path with .exe", args: []string{`C:\Program Files\fmld\fmld.exe`}, expected: "fmld"},
		{name: "Windows path without .exe", args: []string{`C:\tools\labfix`}, expected: "labfix"},
		{name: "Keeps other extensions", args: []string{"/opt/fmld.bin"}, expected: "fmld.bin"},
		{name: "Empty args", args: []string{}, expected: DefaultExecutableName},
		{name: "Empty first arg", args: []string{""}, expected: DefaultExecutableName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			os.Args = tt.args
			defer func() {
				os.Args = origArgs
			}()

			assert.Equal(t, tt.expected, GetExecutableName())
		})
	}
}
