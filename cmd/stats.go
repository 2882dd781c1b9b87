package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/claude2gemini/internal"
	"github.com/spf13/cobra"
)

var (
	// Styles for the statistics display
	statsHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62")).
				Padding(0, 1)

	statsLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	statsValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	thinkingValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("135")).
				Bold(true)
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Show token statistics for a Claude export",
	Long: `Run the conversion on a Claude export and display its token
statistics without writing any output file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		converter, err := newConverter()
		if err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		doc, err := internal.DecodeSourceDocument(data)
		if err != nil {
			return err
		}

		converted, stats, err := converter.Convert(doc)
		if err != nil {
			return err
		}

		displayStats(&internal.ConversionResult{
			SourceName: filepath.Base(path),
			Metadata:   doc.Metadata(),
			Stats:      *stats,
			Document:   converted,
		})
		return nil
	},
}

// displayStats renders the token statistics block for a conversion.
func displayStats(result *internal.ConversionResult) {
	title := result.SourceName
	if result.Metadata.Name != "" {
		title = fmt.Sprintf("%s (%s)", result.Metadata.Name, result.SourceName)
	}
	fmt.Println(statsHeaderStyle.Render("Token statistics: " + title))

	stats := result.Stats
	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', 0)

	row := func(label string, value string) {
		_, _ = fmt.Fprintf(w, "%s\t%s\t\n", statsLabelStyle.Render(label), value)
	}

	row("Total tokens", statsValueStyle.Render(strconv.Itoa(stats.TotalTokens)))
	row("User messages", statsValueStyle.Render(fmt.Sprintf("%d tokens", stats.UserTokens)))
	row("Model responses", statsValueStyle.Render(fmt.Sprintf("%d tokens", stats.ModelTokens)))
	if stats.HasThinking {
		row("Thinking segments", thinkingValueStyle.Render(fmt.Sprintf("%d tokens", stats.ThinkingTokens)))
	}
	row("Messages", strconv.Itoa(stats.MessageCount))
	row("Chunks", strconv.Itoa(len(result.Document.ChunkedPrompt.Chunks)))

	_ = w.Flush()
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
