package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/claude2gemini/internal"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	version string = "dev"
	commit  string = "unknown"
	date    string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "claude2gemini",
	Short: "Convert Claude chat exports to Gemini's chunkedPrompt format",
	Long: `A CLI tool to convert Claude-style chat JSON exports into Gemini's
chunkedPrompt format, with per-role token statistics.

The converter maps each text and thinking segment of a Claude conversation
onto a Gemini prompt chunk, counts tokens with the cl100k_base encoding,
and wraps the result in the run settings AI Studio expects.

Features:
  • Convert one or many export files in a single run
  • Token statistics per role (user, model, thinking)
  • Preview a source file before converting
  • Alternate output formats (jsonl, yaml, markdown report)

Quick Start:
  claude2gemini convert conversation.json     # Write conversation_gemini.json
  claude2gemini inspect conversation.json     # Preview without converting
  claude2gemini stats conversation.json       # Token statistics only

For detailed usage, see: https://github.com/iksnae/claude2gemini`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// newConverter builds the production converter. Tokenizer initialization
// happens here, before any input is read, so a broken vocabulary aborts the
// whole command.
func newConverter() (*internal.Converter, error) {
	counter, err := internal.NewTiktokenCounter()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tokenizer: %w", err)
	}
	return internal.NewConverter(counter), nil
}
