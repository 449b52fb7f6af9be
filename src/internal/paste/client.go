// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package paste

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/H0llyW00dzZ/fmld/src/internal/helper/gc"
	x509certs "github.com/H0llyW00dzZ/fmld/src/internal/x509/certs"
	"github.com/spf13/afero"
)

var (
	// ErrMissingEndpoint indicates that no paste service URL is configured.
	ErrMissingEndpoint = errors.New("paste: endpoint is not configured")

	// ErrMissingCredentials indicates that the app id or token is empty.
	ErrMissingCredentials = errors.New("paste: app credentials are not configured")

	// ErrEmptyURL indicates that the service answered without a paste URL.
	ErrEmptyURL = errors.New("paste: response carries no URL")
)

// StatusError reports a non-2xx answer from the paste service.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("paste: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Paste is the content to submit.
type Paste struct {
	Content   string
	Permanent bool
	Colorized bool
}

// Credentials identify the caller to the paste service.
type Credentials struct {
	AppID    string
	AppToken string
}

// Client creates pastes.
type Client interface {
	// ConfigureTrust selects the CA bundle used for the next submissions.
	ConfigureTrust()
	// Create submits p and returns the URL of the new paste.
	Create(ctx context.Context, p Paste) (string, error)
}

// request is the JSON body sent to the service.
type request struct {
	Content   string `json:"content"`
	Permanent bool   `json:"permanent"`
	Colorized bool   `json:"colorized"`
	AppID     string `json:"app_id"`
	Token     string `json:"token"`
}

// response is the JSON body returned by the service.
type response struct {
	URL string `json:"url"`
}

// maxErrorBody caps the response text quoted in a [StatusError].
const maxErrorBody = 512

// HTTPClient is the [Client] for the paste service HTTP API.
//
// HTTPClient is safe for concurrent use.
type HTTPClient struct {
	// Endpoint is the URL pastes are POSTed to.
	Endpoint string
	// Credentials identify this application.
	Credentials Credentials
	// Timeout bounds a whole submission (default 30s).
	Timeout time.Duration
	// UserAgent is sent with every request.
	UserAgent string
	// Fs is used to find and read CA bundles.
	Fs afero.Fs
	// BundleCandidates are probed by ConfigureTrust when CABundle is missing.
	BundleCandidates []string

	mu       sync.Mutex
	caBundle string
}

// NewHTTPClient returns a client for endpoint using the real filesystem and
// [x509certs.DefaultBundlePaths].
func NewHTTPClient(endpoint string, creds Credentials, version string) *HTTPClient {
	return &HTTPClient{
		Endpoint:         endpoint,
		Credentials:      creds,
		Timeout:          30 * time.Second,
		UserAgent:        fmt.Sprintf("fmld/%s (+https://github.com/H0llyW00dzZ/fmld)", version),
		Fs:               afero.NewOsFs(),
		BundleCandidates: x509certs.DefaultBundlePaths,
	}
}

// CABundle returns the CA bundle path currently trusted.
func (c *HTTPClient) CABundle() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.caBundle
}

// SetCABundle sets the CA bundle path to trust.
func (c *HTTPClient) SetCABundle(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.caBundle = path
}

// ConfigureTrust keeps the configured CA bundle if it exists and otherwise
// switches to the first bundle of BundleCandidates found on Fs.
func (c *HTTPClient) ConfigureTrust() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.caBundle = x509certs.DiscoverBundle(c.Fs, c.caBundle, c.BundleCandidates)
}

// httpClient builds the transport trusting the current CA bundle. With no
// bundle the system roots are used.
func (c *HTTPClient) httpClient() (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if bundle := c.CABundle(); bundle != "" {
		pool, err := x509certs.LoadPool(c.Fs, bundle)
		if err != nil {
			return nil, err
		}
		transport.TLSClientConfig = &tls.Config{RootCAs: pool, MinVersion: tls.VersionTLS12}
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &http.Client{Timeout: timeout, Transport: transport}, nil
}

// Create submits p and returns the URL of the created paste.
//
// Parameters:
//   - ctx: Context for cancellation and timeouts
//   - p: Content and display flags
//
// Returns:
//   - string: URL of the paste
//   - error: Configuration, transport, status or decoding error
func (c *HTTPClient) Create(ctx context.Context, p Paste) (string, error) {
	if c.Endpoint == "" {
		return "", ErrMissingEndpoint
	}
	if c.Credentials.AppID == "" || c.Credentials.AppToken == "" {
		return "", ErrMissingCredentials
	}

	body, err := json.Marshal(request{
		Content:   p.Content,
		Permanent: p.Permanent,
		Colorized: p.Colorized,
		AppID:     c.Credentials.AppID,
		Token:     c.Credentials.AppToken,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode paste request: %w", err)
	}

	client, err := c.httpClient()
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build paste request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach paste service: %w", err)
	}
	defer resp.Body.Close()

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()         // Reset the buffer to prevent data leaks
		gc.Default.Put(buf) // Return the buffer to the pool for reuse
	}()

	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return "", fmt.Errorf("error reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text := buf.String()
		if len(text) > maxErrorBody {
			text = text[:maxErrorBody]
		}
		return "", &StatusError{StatusCode: resp.StatusCode, Body: text}
	}

	var out response
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		return "", fmt.Errorf("failed to decode paste response: %w", err)
	}
	if out.URL == "" {
		return "", ErrEmptyURL
	}

	return out.URL, nil
}
