// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"sync"
)

// TempDirEnv lists the environment variables that can redirect the temp
// directory. [SystemTempDir] hides them during the lookup.
var TempDirEnv = []string{"TMPDIR", "TEMP", "TMP"}

// envMu serializes the unset-lookup-restore sequence of SystemTempDir.
var envMu sync.Mutex

// SystemTempDir returns the operating system's default temp directory.
//
// [os.TempDir] honours TMPDIR on Unix and TMP/TEMP on Windows, so those
// variables are removed from the environment for the lookup and then
// restored with their original values. Variables that were not set stay
// unset.
//
// The environment is process-wide; other goroutines reading these
// variables during the call may observe them unset.
func SystemTempDir() string {
	envMu.Lock()
	defer envMu.Unlock()

	saved := make(map[string]string, len(TempDirEnv))
	for _, key := range TempDirEnv {
		if v, ok := os.LookupEnv(key); ok {
			saved[key] = v
			os.Unsetenv(key)
		}
	}
	defer func() {
		for key, v := range saved {
			os.Setenv(key, v)
		}
	}()

	return os.TempDir()
}
