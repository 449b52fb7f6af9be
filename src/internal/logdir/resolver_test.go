// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logdir_test

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/H0llyW00dzZ/fmld/src/internal/logdir"
	"github.com/H0llyW00dzZ/fmld/src/logger"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	systemDir = "/var/tmp"
	tempDir   = "/tmp"
)

// denyFs rejects directory creation and file writes below prefix.
type denyFs struct {
	afero.Fs
	prefix string
	err    error
}

func (d *denyFs) denied(name string) bool {
	return strings.HasPrefix(filepath.ToSlash(name), d.prefix)
}

func (d *denyFs) MkdirAll(path string, perm os.FileMode) error {
	if d.denied(path) {
		return &fs.PathError{Op: "mkdir", Path: path, Err: d.err}
	}
	return d.Fs.MkdirAll(path, perm)
}

func (d *denyFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if d.denied(name) && flag&(os.O_WRONLY|os.O_RDWR|os.O_CREATE) != 0 {
		return nil, &fs.PathError{Op: "open", Path: name, Err: d.err}
	}
	return d.Fs.OpenFile(name, flag, perm)
}

func newResolver(t *testing.T, fsys afero.Fs) (*logdir.Resolver, *logger.Registry) {
	t.Helper()
	reg := logger.NewRegistry(logger.Options{Console: io.Discard})
	return &logdir.Resolver{
		Fs:        fsys,
		SystemDir: systemDir,
		TempDir:   func() string { return tempDir },
		Log:       reg.Logger(),
	}, reg
}

func bufferOf(t *testing.T, reg *logger.Registry) string {
	t.Helper()
	contents, err := reg.BufferContents()
	require.NoError(t, err)
	return contents
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(t *testing.T) afero.Fs
		expected   logdir.Result
		logLine    string
		created    bool
		noMarkerIn string
	}{
		{
			name: "System directory exists",
			setup: func(t *testing.T) afero.Fs {
				fsys := afero.NewMemMapFs()
				require.NoError(t, fsys.MkdirAll(systemDir, 0o755))
				return fsys
			},
			expected: logdir.Result{Path: systemDir, Writable: true},
		},
		{
			name: "System path is a regular file",
			setup: func(t *testing.T) afero.Fs {
				fsys := afero.NewMemMapFs()
				require.NoError(t, afero.WriteFile(fsys, systemDir, []byte("oops"), 0o644))
				return fsys
			},
			expected: logdir.Result{Path: tempDir, Fallback: true, Writable: true},
			logLine:  "ERROR - Log directory /var/tmp exists and is not directory",
		},
		{
			name: "System directory missing and created",
			setup: func(t *testing.T) afero.Fs {
				return afero.NewMemMapFs()
			},
			expected: logdir.Result{Path: systemDir, Writable: true},
			logLine:  "WARNING - Please verify permissions of /var/tmp are correct",
			created:  true,
		},
		{
			name: "System directory missing and permission denied",
			setup: func(t *testing.T) afero.Fs {
				return &denyFs{Fs: afero.NewMemMapFs(), prefix: "/var", err: fs.ErrPermission}
			},
			expected: logdir.Result{Path: tempDir, Fallback: true, Writable: true},
			logLine:  "INFO - Log directory /var/tmp does not exist. Insufficient permissions to create it",
		},
		{
			name: "System directory missing and creation fails otherwise",
			setup: func(t *testing.T) afero.Fs {
				return &denyFs{Fs: afero.NewMemMapFs(), prefix: "/var", err: errors.New("read-only file system")}
			},
			expected: logdir.Result{Path: tempDir, Fallback: true, Writable: true},
			logLine:  "ERROR - Failed to create log directory /var/tmp",
		},
		{
			name: "System directory not writable",
			setup: func(t *testing.T) afero.Fs {
				base := afero.NewMemMapFs()
				require.NoError(t, base.MkdirAll(systemDir, 0o755))
				return &denyFs{Fs: base, prefix: "/var", err: fs.ErrPermission}
			},
			expected: logdir.Result{Path: tempDir, Fallback: true, Writable: true},
			logLine:  "DEBUG - Failed to write /var/tmp/fmld.testfile",
		},
		{
			name: "Nothing writable",
			setup: func(t *testing.T) afero.Fs {
				base := afero.NewMemMapFs()
				require.NoError(t, base.MkdirAll(tempDir, 0o755))
				return afero.NewReadOnlyFs(base)
			},
			expected: logdir.Result{Path: tempDir, Fallback: true, Writable: false},
			logLine:  "ERROR - Failed to write log file: failed to write to /var/tmp and /tmp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := tt.setup(t)
			r, reg := newResolver(t, fsys)

			var got logdir.Result
			require.NotPanics(t, func() { got = r.Resolve() })
			assert.Equal(t, tt.expected, got)

			if tt.logLine != "" {
				assert.Contains(t, bufferOf(t, reg), tt.logLine)
			}
			if tt.created {
				ok, err := afero.DirExists(fsys, systemDir)
				require.NoError(t, err)
				assert.True(t, ok)
			}

			// The marker never outlives the write test.
			for _, dir := range []string{systemDir, tempDir} {
				exists, _ := afero.Exists(fsys, filepath.Join(dir, logdir.MarkerName))
				assert.False(t, exists, "marker left in %s", dir)
			}
		})
	}
}

func TestResolveIsNotCached(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, systemDir, []byte("file"), 0o644))
	r, _ := newResolver(t, fsys)

	assert.Equal(t, tempDir, r.Resolve().Path)

	// The obstruction is removed between calls.
	require.NoError(t, fsys.Remove(systemDir))
	assert.Equal(t, systemDir, r.Resolve().Path)
}

func TestResolveRealFilesystem(t *testing.T) {
	root := t.TempDir()
	reg := logger.NewRegistry(logger.Options{Console: io.Discard})

	r := logdir.New(reg.Logger(), filepath.Join(root, "nested", "logs"))
	r.TempDir = func() string { return root }

	got := r.Resolve()
	assert.Equal(t, logdir.Result{Path: filepath.Join(root, "nested", "logs"), Writable: true}, got)
	assert.DirExists(t, got.Path)
	assert.NoFileExists(t, filepath.Join(got.Path, logdir.MarkerName))
}
