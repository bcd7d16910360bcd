package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/keepactive/keepactive/internal/logging"
	"github.com/keepactive/keepactive/internal/output"
	"github.com/keepactive/keepactive/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "keepactive",
	Short: "Keep a target window in the foreground",
	Long:  "A CLI tool that keeps a designated application window active by periodically reasserting its foreground state, targeting it by executable name or window title.",
}

// logger is configured once by the persistent pre-run; commands and the
// engine share it.
var logger = zap.NewNop()

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging to stderr")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		logger = logging.New(verbose)

		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}

		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty
		return nil
	}
}
