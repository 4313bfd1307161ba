package mdsource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	pkgLog "tesla-buddy/pkg/log"
)

// Client fetches markdown over HTTP or from disk.
type Client struct {
	httpClient *http.Client
	l          pkgLog.Logger
}

// NewClient creates a markdown source client.
func NewClient(l pkgLog.Logger, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{httpClient: httpClient, l: l}
}

// Fetch performs a plain GET and returns the body as text.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build markdown request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to fetch markdown: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{StatusCode: resp.StatusCode}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, MaxDocumentBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read markdown body: %w", err)
	}
	if len(raw) > MaxDocumentBytes {
		return "", ErrDocumentTooLarge
	}
	return string(raw), nil
}

// ReadFile reads a markdown file from disk.
func (c *Client) ReadFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read markdown file: %w", err)
	}
	return string(raw), nil
}

// Load fetches location and falls back to ErrorDocument on any failure.
func (c *Client) Load(ctx context.Context, location string) string {
	var (
		doc string
		err error
	)
	if IsRemote(location) {
		doc, err = c.Fetch(ctx, location)
	} else {
		doc, err = c.ReadFile(location)
	}
	if err != nil {
		c.l.Errorf(ctx, "mdsource.Load %s: %v", location, err)
		return ErrorDocument
	}
	return doc
}

// IsRemote reports whether location is an http(s) URL.
func IsRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}
