package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/querykit/querykit/internal/integration"
	"github.com/querykit/querykit/internal/loader"
	"github.com/querykit/querykit/internal/model"
	"github.com/querykit/querykit/internal/naming"
	"github.com/querykit/querykit/internal/output"
	"github.com/querykit/querykit/internal/plan"
)

var (
	// Color helpers
	green = color.New(color.FgGreen).SprintFunc()
	cyan  = color.New(color.FgCyan, color.Bold).SprintFunc()

	isTTY = isatty.IsTerminal(os.Stdout.Fd())
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [openapi-spec]",
	Short: "Generate query hooks from an OpenAPI document",
	Long: `Generate TypeScript query hooks, a query-key factory, invalidation
helpers and a request client from an OpenAPI 3.x document.

The document may be a local JSON or YAML file or an http(s) URL. External
references are bundled before extraction.

Examples:
  # Generate per-tag hook files into the default output directory
  querykit generate ./openapi.yaml

  # Generate from a URL into a custom directory, one combined hooks file
  querykit generate https://petstore3.swagger.io/api/v3/openapi.json \
    --output ./src/api --group-by-tag=false

  # Show the file plan without writing anything
  querykit generate ./openapi.yaml --dry-run

  # Wire in externally generated types from openapi-typescript
  querykit generate ./openapi.yaml --openapi-ts ./openapi-ts.json --types`,
	Args: cobra.ExactArgs(1),
	Run:  runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) {
	source := args[0]
	verbose := viper.GetBool("verbose")
	dryRun := viper.GetBool("dry-run")
	outputDir := viper.GetString("output")

	format, err := output.ParseFormat(viper.GetString("report"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var s *spinner.Spinner
	if isTTY && !verbose {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = " Loading " + source
		s.Start()
	}
	m, err := loader.Load(context.Background(), source)
	if s != nil {
		s.Stop()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading OpenAPI document: %v\n", err)
		os.Exit(1)
	}

	var warn io.Writer
	if verbose {
		warn = os.Stderr
	}
	desc := integration.Resolve(viper.GetString("openapi-ts"), warn)

	baseURL := viper.GetString("base-url")
	if baseURL == "" {
		baseURL = m.BaseURL
	}

	groups := model.GroupByTag(m)
	files := plan.Build(groups, desc, baseURL, plan.Options{
		GroupByTag: viper.GetBool("group-by-tag"),
		WithTypes:  viper.GetBool("types"),
	})

	if verbose {
		for _, g := range groups {
			fmt.Printf("%s (%d operations)\n", cyan(g.Tag), len(g.Operations))
			for _, op := range g.Operations {
				fmt.Printf("  %-6s %s -> %s\n", strings.ToUpper(string(op.Method)), op.Path, naming.HookName(op.ID))
			}
		}
		fmt.Println()
	}

	if !dryRun {
		if err := plan.Write(files, outputDir); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing generated files: %v\n", err)
			os.Exit(1)
		}
	}

	summary := output.Summary{
		Source:      source,
		Title:       m.Title,
		Version:     m.Version,
		OutputDir:   outputDir,
		Operations:  len(m.Operations),
		Tags:        len(groups),
		Integration: desc != nil,
		DryRun:      dryRun,
		Files:       plan.Paths(files),
	}
	if err := output.WriteSummary(os.Stdout, summary, format); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing summary: %v\n", err)
		os.Exit(1)
	}
	if format == output.FormatText && !dryRun {
		fmt.Printf("%s generation complete\n", green("✓"))
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("output", "o", "./src/api/generated", "Output directory for generated files")
	generateCmd.Flags().String("base-url", "", "Override the base URL (default: first server in the document)")
	generateCmd.Flags().Bool("types", false, "Also generate coarse per-operation parameter interfaces")
	generateCmd.Flags().Bool("group-by-tag", true, "Split hooks into one file per tag")
	generateCmd.Flags().BoolP("verbose", "v", false, "List every operation while generating")
	generateCmd.Flags().Bool("dry-run", false, "Print the file plan without writing anything")
	generateCmd.Flags().String("openapi-ts", "", "Path to an openapi-ts integration descriptor (JSON)")
	generateCmd.Flags().String("report", "text", "Summary format: text, json")

	// Config file values back every flag default.
	_ = viper.BindPFlags(generateCmd.Flags())
}
