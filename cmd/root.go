package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "querykit",
	Short: "Generate typed query hooks from an OpenAPI specification",
	Long: `querykit reads an OpenAPI 3.x document (JSON or YAML, local file or URL)
and generates TypeScript data-fetching hooks bound to a TanStack Query
convention: a request client, a query-key factory, invalidation helpers,
and one hook per operation.`,
}

func Execute() {
	cobra.OnInitialize(initConfig)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initConfig loads an optional querykit config file from the working
// directory. A missing file is fine; flags keep their built-in defaults.
func initConfig() {
	viper.SetConfigName("querykit")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "warning: could not read config file: %v\n", err)
		}
	}
}
