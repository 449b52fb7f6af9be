// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-style helper functions that behave the same
// across operating systems.
//
// Key functions:
//   - GetExecutableName: Returns the executable name without extension for CLI usage
//   - SystemTempDir: Returns the OS default temp directory, ignoring TMPDIR, TEMP and TMP
//
// # Usage Examples
//
//	// Use in cobra command definitions
//	rootCmd := &cobra.Command{
//	    Use:   posix.GetExecutableName(),
//	    Short: "Lab device diagnostic log",
//	}
//
//	// Fallback directory for log files that user overrides cannot redirect
//	dir := posix.SystemTempDir()
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
