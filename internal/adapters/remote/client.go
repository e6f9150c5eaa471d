// Package remote fetches files from Maven layout repositories over HTTP.
package remote

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/jx/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	defaultAttempts = 3
	defaultDelay    = 500 * time.Millisecond
	userAgent       = "jx"
)

// ChecksumPrefix is prepended to hex encoded sha256 digests.
const ChecksumPrefix = "sha256:"

// Client performs GET requests with retries on transient failures.
type Client struct {
	http     *http.Client
	attempts int
	delay    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

// WithRetry sets the attempt count and the initial backoff delay.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(cl *Client) {
		cl.attempts = attempts
		cl.delay = delay
	}
}

// NewClient creates a Client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:     http.DefaultClient,
		attempts: defaultAttempts,
		delay:    defaultDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL joins a repository base URL and a repository relative path.
func URL(base, path string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}

// Get returns the response body of url. A 404 yields domain.ErrArtifactNotFound.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	err := c.do(ctx, url, func(r io.Reader) error {
		var readErr error
		body, readErr = io.ReadAll(r)
		return readErr
	})
	return body, err
}

// Download streams url to dst through a temp file in the same directory and returns
// the sha256 checksum and the size of the written file.
func (c *Client) Download(ctx context.Context, url, dst string) (checksum string, size int64, err error) {
	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return "", 0, zerr.With(zerr.Wrap(err, "failed to create cache directory"), "path", filepath.Dir(dst))
	}

	err = c.do(ctx, url, func(r io.Reader) error {
		checksum, size, err = writeAtomic(dst, r)
		return err
	})
	if err != nil {
		return "", 0, err
	}
	return checksum, size, nil
}

func (c *Client) do(ctx context.Context, url string, consume func(io.Reader) error) error {
	return Retry(ctx, c.attempts, c.delay, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to build request"), "url", url)
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := c.http.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return &RetryableError{Err: zerr.With(zerr.Wrap(err, "request failed"), "url", url)}
		}
		defer func() { _ = resp.Body.Close() }()

		switch {
		case resp.StatusCode == http.StatusOK:
			return consume(resp.Body)
		case resp.StatusCode == http.StatusNotFound:
			return zerr.With(zerr.Wrap(domain.ErrArtifactNotFound, "repository returned 404"), "url", url)
		case resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests:
			return &RetryableError{Err: zerr.With(
				zerr.New(fmt.Sprintf("repository returned %d", resp.StatusCode)), "url", url)}
		default:
			return zerr.With(zerr.New(fmt.Sprintf("repository returned %d", resp.StatusCode)), "url", url)
		}
	})
}

func writeAtomic(dst string, r io.Reader) (string, int64, error) {
	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*.tmp")
	if err != nil {
		return "", 0, zerr.With(zerr.Wrap(err, "failed to create temp file"), "path", dst)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	h := sha256.New()
	size, err := io.Copy(io.MultiWriter(tmp, h), r)
	if err != nil {
		_ = tmp.Close()
		return "", 0, &RetryableError{Err: zerr.With(zerr.Wrap(err, "download interrupted"), "path", dst)}
	}
	if err := tmp.Close(); err != nil {
		return "", 0, zerr.With(zerr.Wrap(err, "failed to close temp file"), "path", dst)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return "", 0, zerr.With(zerr.Wrap(err, "failed to set file mode"), "path", dst)
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return "", 0, zerr.With(zerr.Wrap(err, "failed to move download into place"), "path", dst)
	}
	return ChecksumPrefix + hex.EncodeToString(h.Sum(nil)), size, nil
}

// WriteFile stores data at dst atomically.
func WriteFile(dst string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create cache directory"), "path", filepath.Dir(dst))
	}
	_, _, err := writeAtomic(dst, bytes.NewReader(data))
	return err
}

// FileChecksum returns the sha256 checksum and size of the file at path.
func FileChecksum(path string) (string, int64, error) {
	f, err := os.Open(path) //nolint:gosec // cache paths are derived from coordinates
	if err != nil {
		return "", 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		return "", 0, zerr.With(zerr.Wrap(err, "failed to hash file"), "path", path)
	}
	return ChecksumPrefix + hex.EncodeToString(h.Sum(nil)), size, nil
}
