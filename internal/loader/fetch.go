package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// fetch reads the raw document bytes from a local path or an http(s) URL.
// Remote fetches honor the caller's context; the loader imposes no timeout
// of its own.
func fetch(ctx context.Context, source string) ([]byte, error) {
	if isURL(source) {
		return fetchURL(ctx, source)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read OpenAPI file: %w", err)
	}
	return data, nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func fetchURL(ctx context.Context, source string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid schema URL %s: %w", source, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch OpenAPI document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch OpenAPI document: %s returned %s", source, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read OpenAPI document body: %w", err)
	}
	return data, nil
}

// baseRef splits the source into the base path and base URL used by the
// document index to resolve external references relative to the document.
func baseRef(source string) (string, *url.URL) {
	if isURL(source) {
		if u, err := url.Parse(source); err == nil {
			base := *u
			base.Path = parentPath(base.Path)
			return "", &base
		}
		return "", nil
	}
	return parentPath(source), nil
}

func parentPath(p string) string {
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[:i]
	}
	return "."
}
