package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/claude2gemini/internal"
	"github.com/spf13/cobra"
)

const sampleLimit = 500

var (
	// Styles for the inspect preview
	inspectHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212")).
				Padding(0, 1)

	inspectKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	inspectValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255"))

	sampleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 2)
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Preview a Claude export without converting it",
	Long: `Show a Claude export's metadata, message count, thinking detection
and a sample of the first message, without running the conversion.

A file missing the chat_messages field is reported as a warning here;
the convert command would reject it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		doc, err := internal.DecodeSourceDocument(data)
		if err != nil {
			return err
		}

		fmt.Println(inspectHeaderStyle.Render("Source: " + path))
		fmt.Println()

		meta := doc.Metadata()
		if !meta.IsEmpty() {
			printMetaField("uuid", meta.UUID)
			printMetaField("name", meta.Name)
			printMetaField("model", meta.Model)
			printMetaField("created_at", meta.CreatedAt)
			fmt.Println()
		}

		if !doc.HasChatMessages() {
			internal.PrintWarning("This doesn't appear to be a standard Claude export: the 'chat_messages' field is missing")
			return nil
		}

		hasThinking := "No"
		if doc.HasThinking() {
			hasThinking = "Yes"
		}
		fmt.Printf("%s %s | %s %s\n",
			inspectKeyStyle.Render("Messages:"),
			inspectValueStyle.Render(fmt.Sprintf("%d", len(doc.Messages))),
			inspectKeyStyle.Render("Has thinking segments:"),
			inspectValueStyle.Render(hasThinking))

		if sample := firstMessageSample(data); sample != "" {
			fmt.Println()
			fmt.Println(inspectKeyStyle.Render("First message sample:"))
			fmt.Println(sampleStyle.Render(sample))
		}

		return nil
	},
}

func printMetaField(key, value string) {
	if value == "" {
		return
	}
	fmt.Printf("%s %s\n", inspectKeyStyle.Render(key+":"), inspectValueStyle.Render(value))
}

// firstMessageSample re-reads the raw first message so the preview shows the
// export exactly as uploaded, truncated for display.
func firstMessageSample(data []byte) string {
	var raw struct {
		Messages []json.RawMessage `json:"chat_messages"`
	}
	if err := json.Unmarshal(data, &raw); err != nil || len(raw.Messages) == 0 {
		return ""
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw.Messages[0], "", "  "); err != nil {
		return ""
	}

	sample := buf.String()
	if len(sample) > sampleLimit {
		sample = sample[:sampleLimit] + "..."
	}
	return sample
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
