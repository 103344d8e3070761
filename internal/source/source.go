// Package source resolves a payload text from a file, URL, or sample text.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const httpTimeout = 30 * time.Second

// UnavailableError reports that a source specifier could not produce text.
type UnavailableError struct {
	Spec string
	Err  error
}

func (e UnavailableError) Error() string {
	return fmt.Sprintf("source %q unavailable: %v", e.Spec, e.Err)
}

func (e UnavailableError) Unwrap() error {
	return e.Err
}

// IsSampleKeyword reports whether spec requests the built-in sample text.
func IsSampleKeyword(spec string) bool {
	switch strings.ToLower(strings.TrimSpace(spec)) {
	case "sample", "demo", "test", "default":
		return true
	}
	return false
}

// Resolve returns the payload text for a source specifier: a sample-text
// keyword, an http(s) URL, or a filesystem path. The returned text is an
// opaque payload; callers must not care where it came from.
func Resolve(ctx context.Context, spec string) (string, error) {
	if IsSampleKeyword(spec) {
		return SampleText, nil
	}
	if parsed, err := url.Parse(spec); err == nil && (parsed.Scheme == "http" || parsed.Scheme == "https") {
		text, err := fetchURL(ctx, spec)
		if err != nil {
			return "", UnavailableError{Spec: spec, Err: err}
		}
		return text, nil
	}
	data, err := os.ReadFile(spec)
	if err != nil {
		return "", UnavailableError{Spec: spec, Err: err}
	}
	return string(data), nil
}

func fetchURL(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	client := &http.Client{Timeout: httpTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	return string(body), nil
}
