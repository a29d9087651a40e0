// Package plan expands rendered artifacts into concrete output files and
// writes them. Build is pure, so a dry run and a real run always see the
// exact same file list; only Write touches the filesystem.
package plan

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/querykit/querykit/internal/integration"
	"github.com/querykit/querykit/internal/model"
	"github.com/querykit/querykit/internal/render"
)

// Ext is the extension of every generated file.
const Ext = "ts"

// File is one planned output file. Path is relative to the output
// directory and always uses forward slashes.
type File struct {
	Path     string
	Contents string
}

// Options controls file expansion.
type Options struct {
	// GroupByTag emits one hooks file per tag under hooks/; when false a
	// single combined hooks file sits next to the core files. The mode
	// changes file layout and import paths only, never identifiers or keys.
	GroupByTag bool

	// WithTypes adds the coarse per-operation parameter interfaces file.
	WithTypes bool
}

// Build renders every artifact and returns the full output file list in a
// fixed, deterministic order: core files first, then hook files in group
// order.
func Build(groups model.GroupedOperations, desc *integration.Descriptor, baseURL string, opts Options) []File {
	files := []File{
		{Path: "client." + Ext, Contents: render.Client(desc, baseURL)},
		{Path: "queryKeys." + Ext, Contents: render.QueryKeys(groups)},
		{Path: "invalidate." + Ext, Contents: render.Invalidate(groups)},
	}
	if opts.WithTypes {
		files = append(files, File{Path: "types." + Ext, Contents: render.Types(groups)})
	}
	if desc != nil {
		files = append(files, File{Path: "openapi-ts.config." + Ext, Contents: render.IntegrationConfig(desc)})
	}

	if opts.GroupByTag {
		for _, g := range groups {
			files = append(files, File{
				Path:     path.Join("hooks", tagFileName(g.Tag)+".generated."+Ext),
				Contents: render.Hooks(model.GroupedOperations{g}, ".."),
			})
		}
	} else {
		files = append(files, File{
			Path:     "hooks.generated." + Ext,
			Contents: render.Hooks(groups, "."),
		})
	}
	return files
}

// tagFileName flattens a tag into a single safe path segment. Identifiers
// and cache keys keep the raw tag; only the file name is sanitized, so a
// tag containing separators cannot nest or escape the output directory.
func tagFileName(tag string) string {
	safe := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':':
			return '-'
		default:
			return r
		}
	}, tag)
	safe = strings.Trim(safe, ". ")
	if safe == "" {
		return "default"
	}
	return safe
}

// Paths returns the relative paths of the planned files, in plan order.
func Paths(files []File) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Path
	}
	return out
}

// Write writes every planned file under outDir, creating intermediate
// directories as needed and overwriting existing files unconditionally.
// Regeneration is the recovery path for partial output: a failed write
// aborts but does not roll back files already written.
func Write(files []File, outDir string) error {
	for _, f := range files {
		target := filepath.Join(outDir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(target, []byte(f.Contents), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.Path, err)
		}
	}
	return nil
}
