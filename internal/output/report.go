// Package output renders the end-of-run generation summary, either as
// human-readable text or as JSON for tooling.
package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// Format represents the summary output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat parses a string into a Format, returning an error if invalid.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid format '%s': must be 'text' or 'json'", s)
	}
}

// Summary describes one generation run.
type Summary struct {
	Source      string   `json:"source"`
	Title       string   `json:"title,omitempty"`
	Version     string   `json:"version,omitempty"`
	OutputDir   string   `json:"outputDir"`
	Operations  int      `json:"operations"`
	Tags        int      `json:"tags"`
	Integration bool     `json:"integration"`
	DryRun      bool     `json:"dryRun"`
	Files       []string `json:"files"`
}

// WriteSummary writes the summary to w in the requested format.
func WriteSummary(w io.Writer, summary Summary, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	case FormatText:
		return writeText(w, summary)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writeText(w io.Writer, s Summary) error {
	action := "written to"
	if s.DryRun {
		action = "planned for"
	}
	if s.Title != "" {
		fmt.Fprintf(w, "%s %s\n", s.Title, s.Version)
	}
	fmt.Fprintf(w, "%d operations across %d tags\n", s.Operations, s.Tags)
	fmt.Fprintf(w, "%d files %s %s\n", len(s.Files), action, s.OutputDir)
	for _, f := range s.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
	if s.Integration {
		fmt.Fprintln(w, "openapi-ts integration: configured")
	}
	return nil
}
