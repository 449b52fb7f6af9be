// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"io"
	"sync"

	"github.com/H0llyW00dzZ/fmld/src/internal/helper/gc"
)

const (
	// ConsoleSinkName names the console sink.
	ConsoleSinkName = "console"
	// BufferSinkName names the in-memory buffer sink.
	BufferSinkName = "buffer"
)

// Sink is a named output destination with its own minimum level and format.
type Sink interface {
	// Name identifies the sink.
	Name() string
	// Level returns the minimum level the sink accepts.
	Level() Level
	// Emit formats and writes rec if its level is accepted.
	Emit(rec Record) error
}

// StreamSink writes formatted records to an [io.Writer]. Its level,
// formatter and destination may change at any time.
//
// StreamSink is safe for concurrent use by multiple goroutines.
type StreamSink struct {
	mu        sync.Mutex
	name      string
	level     Level
	formatter Formatter
	w         io.Writer
}

// NewStreamSink creates a stream sink. A nil writer discards output and a
// nil formatter falls back to [MessageFormatter].
func NewStreamSink(name string, w io.Writer, level Level, f Formatter) *StreamSink {
	if w == nil {
		w = io.Discard
	}
	if f == nil {
		f = MessageFormatter{}
	}
	return &StreamSink{name: name, level: level, formatter: f, w: w}
}

// Name implements [Sink].
func (s *StreamSink) Name() string { return s.name }

// Level implements [Sink].
func (s *StreamSink) Level() Level {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// Formatter returns the current formatter.
func (s *StreamSink) Formatter() Formatter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.formatter
}

// Set replaces the level and formatter together.
func (s *StreamSink) Set(level Level, f Formatter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.level = level
	s.formatter = f
}

// SetOutput replaces the destination. A nil writer discards output.
func (s *StreamSink) SetOutput(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w == nil {
		s.w = io.Discard
	} else {
		s.w = w
	}
}

// Emit implements [Sink].
func (s *StreamSink) Emit(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.Level < s.level {
		return nil
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	s.formatter.Format(buf, rec)
	_, err := buf.WriteTo(s.w)
	return err
}

// BufferSink keeps every record at DEBUG level and above in memory using
// [DetailFormatter]. Its level and format are fixed, and the store grows
// for the lifetime of the process.
//
// BufferSink is safe for concurrent use by multiple goroutines.
type BufferSink struct {
	mu    sync.Mutex
	store gc.Buffer
}

// NewBufferSink creates an empty buffer sink.
func NewBufferSink() *BufferSink { return &BufferSink{store: gc.New()} }

// Name implements [Sink].
func (b *BufferSink) Name() string { return BufferSinkName }

// Level implements [Sink]. It is always [LevelDebug].
func (b *BufferSink) Level() Level { return LevelDebug }

// Emit implements [Sink].
func (b *BufferSink) Emit(rec Record) error {
	if rec.Level < LevelDebug {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	DetailFormatter{}.Format(b.store, rec)
	return nil
}

// String returns everything recorded so far.
func (b *BufferSink) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.store.String()
}
