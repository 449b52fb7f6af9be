// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logdir

import (
	"errors"
	"io/fs"
	"path/filepath"
	"runtime"

	"github.com/H0llyW00dzZ/fmld/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/fmld/src/internal/sysinfo"
	"github.com/H0llyW00dzZ/fmld/src/logger"
	"github.com/spf13/afero"
)

// MarkerName is the file created and removed to prove a directory is writable.
const MarkerName = "fmld.testfile"

// Result is the outcome of [Resolver.Resolve].
type Result struct {
	// Path is the directory to write log files to. Never empty.
	Path string
	// Fallback is true when Path is the temp directory.
	Fallback bool
	// Writable is false when even the temp directory failed its write test.
	Writable bool
}

// Resolver determines a writable log directory. The zero value is not
// usable; build one with [New] or fill every field.
type Resolver struct {
	// Fs is the filesystem probed and written to.
	Fs afero.Fs
	// SystemDir is the preferred log directory.
	SystemDir string
	// TempDir returns the fallback directory.
	TempDir func() string
	// Log receives the resolution diagnostics.
	Log logger.Logger
}

// New returns a resolver for the real filesystem, preferring the system
// log directory of the running OS and falling back to [posix.SystemTempDir].
// A non-empty systemDir overrides the OS default.
func New(log logger.Logger, systemDir string) *Resolver {
	if systemDir == "" {
		systemDir = sysinfo.DefaultSystemLogDir(runtime.GOOS)
	}
	return &Resolver{
		Fs:        afero.NewOsFs(),
		SystemDir: systemDir,
		TempDir:   posix.SystemTempDir,
		Log:       log,
	}
}

// Resolve returns the directory to write log files to. It is evaluated on
// every call so environment changes between calls are picked up.
//
// Policy:
//  1. SystemDir is a directory: use it.
//  2. SystemDir exists but is not a directory: log an error, use the temp dir.
//  3. SystemDir is missing: create it with its parents. On success log a
//     warning to verify its permissions; on failure use the temp dir.
//  4. Write-test the chosen directory; on failure use the temp dir.
//  5. Write-test the temp dir; on failure log an error and return it anyway.
func (r *Resolver) Resolve() Result {
	dir := r.SystemDir
	if r.systemDirUsable(dir) && r.writeTest(dir) {
		return Result{Path: dir, Writable: true}
	}

	temp := r.TempDir()
	r.Log.Debugf("Logging to temporary log directory %s", temp)

	ok := r.writeTest(temp)
	if !ok {
		r.Log.Errorf("Failed to write log file: failed to write to %s and %s", dir, temp)
	}

	return Result{Path: temp, Fallback: true, Writable: ok}
}

// systemDirUsable applies steps 1 to 3 of the policy.
func (r *Resolver) systemDirUsable(dir string) bool {
	info, err := r.Fs.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return true

	case err == nil:
		// A file, link target or other non-directory object
		r.Log.Debugf("Log directory %s is not directory", dir)
		r.Log.Errorf("Log directory %s exists and is not directory", dir)
		return false

	case errors.Is(err, fs.ErrNotExist):
		r.Log.Debugf("Log directory %s does not exist. Creating it", dir)

		if err := r.Fs.MkdirAll(dir, 0o755); err != nil {
			if errors.Is(err, fs.ErrPermission) {
				r.Log.Infof("Log directory %s does not exist. Insufficient permissions to create it", dir)
			} else {
				r.Log.Errorf("Failed to create log directory %s: %v", dir, err)
			}
			return false
		}

		// Ownership is left to the user; the creator can write into it.
		r.Log.Warnf("Please verify permissions of %s are correct", dir)
		return true

	default:
		r.Log.Errorf("Failed to inspect log directory %s: %v", dir, err)
		return false
	}
}

// writeTest creates and removes the marker file in dir.
func (r *Resolver) writeTest(dir string) bool {
	marker := filepath.Join(dir, MarkerName)

	if err := afero.WriteFile(r.Fs, marker, []byte("Test writing to file"), 0o644); err != nil {
		r.Log.Debugf("Failed to write %s: %v", marker, err)
		return false
	}

	if err := r.Fs.Remove(marker); err != nil && !errors.Is(err, fs.ErrNotExist) {
		r.Log.Debugf("Failed to remove %s: %v", marker, err)
		return false
	}

	return true
}
