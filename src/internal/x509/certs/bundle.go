// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto/x509"
	"fmt"

	"github.com/spf13/afero"
)

// DefaultBundlePaths lists the CA bundles shipped with common operating
// systems, in search order. The paths come from the OS documentation or
// from the output of `curl -v https://www.example.com`.
var DefaultBundlePaths = []string{
	// Fedora/CentOS - see man update-ca-trust
	"/etc/pki/tls/certs/ca-bundle.crt",
	// macOS
	"/etc/ssl/cert.pem",
	// Ubuntu/Debian - see man update-ca-certificates
	"/etc/ssl/certs/ca-certificates.crt",
	// Windows, provided by Chef
	"/opscode/chef/embedded/ssl/certs/cacert.pem",
}

// isFile reports whether path names an existing regular file on fs.
func isFile(fs afero.Fs, path string) bool {
	if path == "" {
		return false
	}
	info, err := fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// DiscoverBundle picks the CA bundle to trust.
//
// If current names an existing file it is returned unchanged. Otherwise the
// first candidate that exists as a regular file wins. When nothing matches,
// current is returned as is.
//
// Parameters:
//   - fs: Filesystem to probe (afero.NewOsFs() in production)
//   - current: Bundle path the client is configured with, may be empty
//   - candidates: Ordered paths to probe, usually [DefaultBundlePaths]
//
// Returns:
//   - string: Bundle path to use
func DiscoverBundle(fs afero.Fs, current string, candidates []string) string {
	if isFile(fs, current) {
		return current
	}

	for _, path := range candidates {
		if isFile(fs, path) {
			return path
		}
	}

	return current
}

// LoadPool reads the bundle at path and returns a pool holding all of its
// certificates.
func LoadPool(fs afero.Fs, path string) (*x509.CertPool, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA bundle %s: %w", path, err)
	}

	certs, err := New().DecodeMultiple(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode CA bundle %s: %w", path, err)
	}

	pool := x509.NewCertPool()
	for _, cert := range certs {
		pool.AddCert(cert)
	}

	return pool, nil
}
