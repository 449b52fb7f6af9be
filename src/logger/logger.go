// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// ErrBufferMissing reports that a [Log] has no buffer sink attached. It
// means the logger was not built by a [Registry] and indicates a
// programming defect rather than an environmental problem.
var ErrBufferMissing = errors.New("logger: buffer sink is not attached")

// Logger defines the interface for logging operations.
// It provides methods for the different levels and formatted output.
type Logger interface {
	// Debugf logs a formatted message at DEBUG level.
	Debugf(format string, v ...any)
	// Infof logs a formatted message at INFO level.
	Infof(format string, v ...any)
	// Warnf logs a formatted message at WARNING level.
	Warnf(format string, v ...any)
	// Errorf logs a formatted message at ERROR level.
	Errorf(format string, v ...any)
	// Printf formats and prints a log message at INFO level.
	Printf(format string, v ...any)
	// Println prints a log message at INFO level.
	Println(v ...any)
}

// Log is the shared logger. It fans every record out to the attached
// sinks; each sink decides on its own whether to accept the record.
//
// Log is safe for concurrent use by multiple goroutines.
type Log struct {
	sinks   []Sink
	console *StreamSink
	buffer  *BufferSink
	now     func() time.Time
}

var _ Logger = (*Log)(nil)

func (l *Log) log(level Level, msg string) {
	now := time.Now
	if l.now != nil {
		now = l.now
	}

	rec := Record{Time: now(), Level: level, Message: msg}
	for _, s := range l.sinks {
		// Sink errors are dropped: logging must never fail the caller.
		_ = s.Emit(rec)
	}
}

// Debugf logs a formatted message at DEBUG level.
func (l *Log) Debugf(format string, v ...any) { l.log(LevelDebug, fmt.Sprintf(format, v...)) }

// Infof logs a formatted message at INFO level.
func (l *Log) Infof(format string, v ...any) { l.log(LevelInfo, fmt.Sprintf(format, v...)) }

// Warnf logs a formatted message at WARNING level.
func (l *Log) Warnf(format string, v ...any) { l.log(LevelWarning, fmt.Sprintf(format, v...)) }

// Errorf logs a formatted message at ERROR level.
func (l *Log) Errorf(format string, v ...any) { l.log(LevelError, fmt.Sprintf(format, v...)) }

// Printf formats and prints a log message at INFO level.
func (l *Log) Printf(format string, v ...any) { l.log(LevelInfo, fmt.Sprintf(format, v...)) }

// Println prints a log message at INFO level.
func (l *Log) Println(v ...any) { l.log(LevelInfo, strings.TrimSuffix(fmt.Sprintln(v...), "\n")) }

// Exception logs err at ERROR level together with its wrapped causes.
func (l *Log) Exception(err error) {
	if err == nil {
		return
	}

	msg := err.Error()
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		msg += fmt.Sprintf("\n  caused by %T: %v", cause, cause)
	}
	l.log(LevelError, msg)
}

// SetOutput sets the console destination.
func (l *Log) SetOutput(w io.Writer) {
	if l.console != nil {
		l.console.SetOutput(w)
	}
}

// Sinks returns the attached sinks in attachment order.
func (l *Log) Sinks() []Sink { return append([]Sink(nil), l.sinks...) }

// Console returns the console sink, or nil if none is attached.
func (l *Log) Console() *StreamSink { return l.console }

// BufferContents returns everything the buffer sink recorded since the
// logger was built.
//
// Returns:
//   - string: Buffer contents, one detailed line per record
//   - error: [ErrBufferMissing] if no buffer sink is attached
func (l *Log) BufferContents() (string, error) {
	if l.buffer == nil {
		return "", ErrBufferMissing
	}
	return l.buffer.String(), nil
}

// Options configures a [Registry].
type Options struct {
	// Console is the console destination (default: os.Stderr).
	Console io.Writer
	// Plain is the console formatter outside debug mode
	// (default: MessageFormatter).
	Plain Formatter
	// Clock returns the record time (default: time.Now).
	Clock func() time.Time
}

// Registry owns the shared [Log] and builds it on first use.
//
// The registry is an explicit object created by the program entry point
// and handed to every caller; there is no package-level logger.
//
// Registry is safe for concurrent use by multiple goroutines.
type Registry struct {
	opts Options
	once sync.Once
	log  *Log

	mu    sync.Mutex
	debug bool
}

// NewRegistry creates a registry. The logger itself is built by the first
// call to [Registry.Logger].
func NewRegistry(opts Options) *Registry {
	if opts.Console == nil {
		opts.Console = os.Stderr
	}
	if opts.Plain == nil {
		opts.Plain = MessageFormatter{}
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Registry{opts: opts}
}

// Logger returns the shared logger, attaching the console and buffer sinks
// on the first call only. Concurrent first calls attach them once.
func (r *Registry) Logger() *Log {
	r.once.Do(func() {
		console := NewStreamSink(ConsoleSinkName, r.opts.Console, LevelInfo, r.opts.Plain)
		buffer := NewBufferSink()
		r.log = &Log{
			sinks:   []Sink{console, buffer},
			console: console,
			buffer:  buffer,
			now:     r.opts.Clock,
		}
	})
	return r.log
}

// EnableDebug switches the console sink to DEBUG level with detailed lines.
// The buffer sink is not affected.
func (r *Registry) EnableDebug() {
	l := r.Logger()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.debug = true
	l.console.Set(LevelDebug, DetailFormatter{})
}

// DisableDebug switches the console sink back to INFO level with the
// plain formatter. The buffer sink is not affected.
func (r *Registry) DisableDebug() {
	l := r.Logger()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.debug = false
	l.console.Set(LevelInfo, r.opts.Plain)
}

// SetPlain replaces the console formatter used outside debug mode. A nil
// formatter is ignored.
func (r *Registry) SetPlain(f Formatter) {
	if f == nil {
		return
	}
	l := r.Logger()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.opts.Plain = f
	if !r.debug {
		l.console.Set(LevelInfo, f)
	}
}

// Debug reports whether the console is in debug mode.
func (r *Registry) Debug() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.debug
}

// BufferContents returns the buffer sink contents of the shared logger.
func (r *Registry) BufferContents() (string, error) { return r.Logger().BufferContents() }
