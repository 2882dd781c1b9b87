package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iksnae/claude2gemini/internal"
	"github.com/iksnae/claude2gemini/internal/export"
	"github.com/spf13/cobra"
)

var (
	format    string
	outputDir string
	quiet     bool
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <file>...",
	Short: "Convert Claude export files to Gemini format",
	Long: `Convert one or more Claude-style chat JSON exports into Gemini's
chunkedPrompt format.

Each input file <name>.json produces <name>_gemini.json in the output
directory (the json format is what AI Studio imports; jsonl, yaml and md
are alternate renderings of the same conversion). The input files are
never modified. Token statistics are printed after each conversion.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		converter, err := newConverter()
		if err != nil {
			return err
		}

		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		failed := 0
		for _, path := range args {
			if err := convertFile(converter, exporter, path); err != nil {
				internal.PrintError(fmt.Sprintf("%s: %v", path, err))
				failed++
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d file(s) failed", failed, len(args))
		}
		return nil
	},
}

// convertFile converts a single export file and writes the derived output
// file. The conversion either fully succeeds or writes nothing.
func convertFile(converter *internal.Converter, exporter export.Exporter, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	doc, err := internal.DecodeSourceDocument(data)
	if err != nil {
		return err
	}

	var (
		converted *internal.GeminiDocument
		stats     *internal.TokenStats
	)
	ctx := context.Background()
	err = internal.ShowProgress(ctx, fmt.Sprintf("Converting %s", filepath.Base(path)), func() error {
		var convErr error
		converted, stats, convErr = converter.Convert(doc)
		return convErr
	})
	if err != nil {
		return err
	}

	result := &internal.ConversionResult{
		SourceName: filepath.Base(path),
		Metadata:   doc.Metadata(),
		Stats:      *stats,
		Document:   converted,
	}

	outName := internal.OutputFilename(filepath.Base(path), exporter.Extension())
	outPath := filepath.Join(outputDir, outName)

	file, err := os.Create(outPath)
	if err != nil {
		return &internal.ExportError{Format: exporter.Extension(), Path: outPath, Err: err}
	}
	if err := exporter.Export(result, file); err != nil {
		_ = file.Close()
		return &internal.ExportError{Format: exporter.Extension(), Path: outPath, Err: err}
	}
	if err := file.Close(); err != nil {
		return &internal.ExportError{Format: exporter.Extension(), Path: outPath, Err: err}
	}

	if !quiet {
		displayStats(result)
	}
	internal.PrintSuccess(fmt.Sprintf("Wrote %s (%d chunks)", outPath, len(converted.ChunkedPrompt.Chunks)))
	return nil
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json, jsonl, yaml, md)")
	convertCmd.Flags().StringVarP(&outputDir, "out", "o", ".", "Output directory")
	convertCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Skip the token statistics display")
}
