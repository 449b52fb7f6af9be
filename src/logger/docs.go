// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides the diagnostic logger used by fmld.
//
// A [Registry] lazily builds one [Log] with two sinks: a console sink that
// prints user-facing messages at a switchable verbosity, and a buffer sink
// that records every message at DEBUG level in memory so it can later be
// exported to a file or a paste. The console sink can be switched between
// message-only output and detailed output with [Registry.EnableDebug] and
// [Registry.DisableDebug]; the buffer sink never changes.
//
// Line formatting uses pooled buffers from the gc helper package and every
// sink guards its destination with a mutex, so a [Log] is safe for
// concurrent use by multiple goroutines.
package logger
