// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logdir picks the directory persisted log files are written to.
//
// The system log directory is preferred. It is created when missing and
// write-tested with a marker file; on any permission or I/O problem the
// resolver falls back to the operating system's default temp directory.
// Resolution never fails: losing diagnostics is worse than writing them to
// an unexpected place, so a path is always returned and the caller learns
// from [Result.Writable] whether the final write test passed.
package logdir
