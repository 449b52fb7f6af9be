// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package diaglog

import (
	"context"
	"fmt"
	"time"

	"github.com/H0llyW00dzZ/fmld/src/internal/logdir"
	"github.com/H0llyW00dzZ/fmld/src/internal/paste"
	"github.com/H0llyW00dzZ/fmld/src/internal/sysinfo"
	"github.com/H0llyW00dzZ/fmld/src/logger"
	"github.com/spf13/afero"
)

// DefaultFilePrefix is the first component of generated log file names.
const DefaultFilePrefix = "fmld"

// Options configures a [DiagnosticLog].
type Options struct {
	// Registry owns the shared logger. Required.
	Registry *logger.Registry
	// Resolver picks the log directory (default: logdir.New with the OS
	// system directory).
	Resolver *logdir.Resolver
	// Paste submits pastes. Without it paste exports yield no result.
	Paste paste.Client
	// Fs receives exported log files (default: the resolver's filesystem).
	Fs afero.Fs
	// FilePrefix starts generated file names (default: DefaultFilePrefix).
	FilePrefix string
	// Hostname names the machine in generated file names
	// (default: sysinfo.Hostname).
	Hostname func() string
	// Clock stamps generated file names (default: time.Now).
	Clock func() time.Time
}

// DiagnosticLog is the context object handed to every part of the program
// that logs or exports diagnostics. Its lifecycle is owned by the program
// entry point.
type DiagnosticLog struct {
	reg      *logger.Registry
	resolver *logdir.Resolver
	paste    paste.Client
	fs       afero.Fs
	prefix   string
	hostname func() string
	clock    func() time.Time
}

// New builds a DiagnosticLog. It panics if opts.Registry is nil.
func New(opts Options) *DiagnosticLog {
	if opts.Registry == nil {
		panic("diaglog: Options.Registry is required")
	}
	if opts.Resolver == nil {
		opts.Resolver = logdir.New(opts.Registry.Logger(), "")
	}
	if opts.Fs == nil {
		opts.Fs = opts.Resolver.Fs
	}
	if opts.FilePrefix == "" {
		opts.FilePrefix = DefaultFilePrefix
	}
	if opts.Hostname == nil {
		opts.Hostname = func() string { return sysinfo.Hostname(context.Background()) }
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	return &DiagnosticLog{
		reg:      opts.Registry,
		resolver: opts.Resolver,
		paste:    opts.Paste,
		fs:       opts.Fs,
		prefix:   opts.FilePrefix,
		hostname: opts.Hostname,
		clock:    opts.Clock,
	}
}

// Logger returns the shared logger.
func (d *DiagnosticLog) Logger() *logger.Log { return d.reg.Logger() }

// Registry returns the registry owning the shared logger.
func (d *DiagnosticLog) Registry() *logger.Registry { return d.reg }

// EnableDebug switches the console to detailed DEBUG output.
func (d *DiagnosticLog) EnableDebug() { d.reg.EnableDebug() }

// DisableDebug switches the console back to user-facing INFO output.
func (d *DiagnosticLog) DisableDebug() { d.reg.DisableDebug() }

// BufferContents returns everything recorded since the logger was built.
func (d *DiagnosticLog) BufferContents() (string, error) { return d.reg.BufferContents() }

// mustBufferContents returns the buffer contents. A missing buffer sink
// breaks the registry's setup invariant and panics.
func (d *DiagnosticLog) mustBufferContents() string {
	contents, err := d.reg.BufferContents()
	if err != nil {
		panic(fmt.Errorf("diaglog: %w", err))
	}
	return contents
}

// LogDirectory resolves the directory for log files. It is recomputed on
// every call.
func (d *DiagnosticLog) LogDirectory() logdir.Result { return d.resolver.Resolve() }
