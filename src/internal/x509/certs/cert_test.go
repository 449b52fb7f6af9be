// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509certs "github.com/H0llyW00dzZ/fmld/src/internal/x509/certs"
)

// newCA returns a freshly generated self-signed CA certificate.
func newCA(t *testing.T, cn string) *x509.Certificate {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(time.Now().UnixNano()),
		Subject:               pkix.Name{CommonName: cn},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageCertSign,
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)
	return cert
}

func pemOf(cert *x509.Certificate) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: cert.Raw})
}

func TestDecodeMultiple(t *testing.T) {
	first := newCA(t, "Lab Root A")
	second := newCA(t, "Lab Root B")

	tests := []struct {
		name      string
		data      []byte
		wantCNs   []string
		wantError error
	}{
		{
			name:    "PEM bundle with comments",
			data:    append(append([]byte("# Lab Root A\n"), pemOf(first)...), append([]byte("\n# Lab Root B\n"), pemOf(second)...)...),
			wantCNs: []string{"Lab Root A", "Lab Root B"},
		},
		{
			name:    "Concatenated DER",
			data:    append(append([]byte(nil), first.Raw...), second.Raw...),
			wantCNs: []string{"Lab Root A", "Lab Root B"},
		},
		{
			name:      "Private key block",
			data:      pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: []byte("nope")}),
			wantError: x509certs.ErrInvalidBlockType,
		},
		{
			name:      "Corrupted PEM certificate",
			data:      pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: []byte("nope")}),
			wantError: x509certs.ErrParseCertificate,
		},
		{
			name:      "Garbage",
			data:      []byte("definitely not a certificate"),
			wantError: x509certs.ErrParseCertificate,
		},
	}

	decoder := x509certs.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			certs, err := decoder.DecodeMultiple(tt.data)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				return
			}

			require.NoError(t, err)
			var cns []string
			for _, c := range certs {
				cns = append(cns, c.Subject.CommonName)
			}
			assert.Equal(t, tt.wantCNs, cns)
		})
	}
}

func TestDiscoverBundle(t *testing.T) {
	candidates := []string{"/etc/pki/a.crt", "/etc/ssl/b.pem", "/etc/ssl/c.crt"}

	tests := []struct {
		name     string
		files    []string
		dirs     []string
		current  string
		expected string
	}{
		{
			name:     "First existing candidate wins",
			files:    []string{"/etc/ssl/b.pem", "/etc/ssl/c.crt"},
			current:  "/missing/bundle.pem",
			expected: "/etc/ssl/b.pem",
		},
		{
			name:     "Current path kept when it exists",
			files:    []string{"/opt/own/bundle.pem", "/etc/pki/a.crt"},
			current:  "/opt/own/bundle.pem",
			expected: "/opt/own/bundle.pem",
		},
		{
			name:     "Directories are not bundles",
			dirs:     []string{"/etc/pki/a.crt"},
			files:    []string{"/etc/ssl/c.crt"},
			expected: "/etc/ssl/c.crt",
		},
		{
			name:     "Nothing found keeps current",
			current:  "/missing/bundle.pem",
			expected: "/missing/bundle.pem",
		},
		{
			name:     "Empty current and nothing found",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			for _, f := range tt.files {
				require.NoError(t, afero.WriteFile(fs, f, []byte("bundle"), 0o644))
			}
			for _, d := range tt.dirs {
				require.NoError(t, fs.MkdirAll(d, 0o755))
			}

			assert.Equal(t, tt.expected, x509certs.DiscoverBundle(fs, tt.current, candidates))
		})
	}
}

func TestDefaultBundlePathsOrder(t *testing.T) {
	require.Len(t, x509certs.DefaultBundlePaths, 4)
	assert.Equal(t, "/etc/pki/tls/certs/ca-bundle.crt", x509certs.DefaultBundlePaths[0])
	assert.Equal(t, "/opscode/chef/embedded/ssl/certs/cacert.pem", x509certs.DefaultBundlePaths[3])
}

func TestLoadPool(t *testing.T) {
	ca := newCA(t, "Lab Root")
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/ssl/cert.pem", pemOf(ca), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/etc/ssl/broken.pem", []byte("broken"), 0o644))

	t.Run("Valid bundle", func(t *testing.T) {
		pool, err := x509certs.LoadPool(fs, "/etc/ssl/cert.pem")
		require.NoError(t, err)

		_, err = ca.Verify(x509.VerifyOptions{Roots: pool})
		assert.NoError(t, err, "CA should verify against its own pool")
	})

	t.Run("Missing bundle", func(t *testing.T) {
		_, err := x509certs.LoadPool(fs, "/etc/ssl/none.pem")
		assert.ErrorContains(t, err, "failed to read CA bundle")
	})

	t.Run("Broken bundle", func(t *testing.T) {
		_, err := x509certs.LoadPool(fs, "/etc/ssl/broken.pem")
		assert.ErrorIs(t, err, x509certs.ErrParseCertificate)
	})
}
