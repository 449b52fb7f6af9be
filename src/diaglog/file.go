// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package diaglog

import (
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/spf13/afero"
)

// TimestampLayout is the second-precision timestamp of log file names.
const TimestampLayout = "20060102.150405"

// LogFileName returns "<prefix>.<host>.<YYYYMMDD.HHMMSS>.out".
//
// The host name takes the place of a random token so a log file can be
// traced to its machine by name alone. Two exports from one host within the
// same second share a name. Path separators, colons and spaces in host are
// replaced by underscores and an empty host becomes "localhost".
func LogFileName(prefix, host string, t time.Time) string {
	host = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ':' || unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(host))
	if host == "" {
		host = "localhost"
	}

	return prefix + "." + host + "." + t.Format(TimestampLayout) + ".out"
}

// MakeLogFilePath returns a log file path inside the resolved log directory.
func (d *DiagnosticLog) MakeLogFilePath() string {
	dir := d.LogDirectory().Path
	return filepath.Join(dir, LogFileName(d.prefix, d.hostname(), d.clock()))
}

// ExportBufferToFile writes the buffer contents to path, replacing any
// existing file. An empty path means [DiagnosticLog.MakeLogFilePath].
//
// Returns:
//   - string: The written path
//   - bool: false if writing failed; the failure is logged
func (d *DiagnosticLog) ExportBufferToFile(path string) (string, bool) {
	log := d.Logger()

	if path == "" {
		path = d.MakeLogFilePath()
	}

	if err := afero.WriteFile(d.fs, path, []byte(d.mustBufferContents()), 0o600); err != nil {
		log.Exception(err)
		log.Errorf("Failed to write log file: %s", path)
		return "", false
	}

	return path, true
}
