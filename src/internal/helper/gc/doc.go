// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides reusable byte buffers to reduce garbage collection overhead.
// It abstracts the [bytebufferpool] library behind small interfaces so the logger
// can format each line in a pooled scratch buffer and keep its in-memory log store
// in a growable buffer of the same type.
//
// [bytebufferpool]: https://github.com/valyala/bytebufferpool
package gc
