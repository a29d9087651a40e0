// Package integration resolves the optional openapi-ts side config that
// points the generated client at externally generated type definitions.
// The feature is an enhancement layer: any problem reading or parsing the
// descriptor disables it instead of failing the run.
package integration

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Descriptor describes where externally generated types live and how the
// generated client should be decorated.
type Descriptor struct {
	TypesPath string            `json:"typesPath"`
	BaseURL   string            `json:"baseUrl,omitempty"`
	Headers   map[string]string `json:"headers,omitempty"`
}

// Resolve reads the descriptor at path. It returns nil when the feature is
// disabled: empty path, unreadable file, malformed JSON, or a descriptor
// without a typesPath. Soft failures are noted on warn when it is non-nil.
func Resolve(path string, warn io.Writer) *Descriptor {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		warnf(warn, "openapi-ts integration disabled: %v\n", err)
		return nil
	}

	var desc Descriptor
	if err := json.Unmarshal(data, &desc); err != nil {
		warnf(warn, "openapi-ts integration disabled: invalid JSON in %s: %v\n", path, err)
		return nil
	}
	if desc.TypesPath == "" {
		warnf(warn, "openapi-ts integration disabled: %s has no typesPath\n", path)
		return nil
	}
	return &desc
}

func warnf(w io.Writer, format string, args ...any) {
	if w != nil {
		fmt.Fprintf(w, format, args...)
	}
}
