package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/claude2gemini/internal"
)

// MarkdownExporter writes a human-readable conversion report.
type MarkdownExporter struct{}

// Export writes the conversion result as a Markdown report
func (e *MarkdownExporter) Export(result *internal.ConversionResult, w io.Writer) error {
	// Header
	title := result.Metadata.Name
	if title == "" {
		title = result.SourceName
	}
	if title == "" {
		title = "Converted Conversation"
	}
	_, _ = fmt.Fprintf(w, "# %s\n\n", title)

	if result.SourceName != "" {
		_, _ = fmt.Fprintf(w, "**Source:** %s  \n", result.SourceName)
	}
	if result.Metadata.Model != "" {
		_, _ = fmt.Fprintf(w, "**Model:** %s  \n", result.Metadata.Model)
	}
	if result.Metadata.UUID != "" {
		_, _ = fmt.Fprintf(w, "**UUID:** %s  \n", result.Metadata.UUID)
	}
	if result.Metadata.CreatedAt != "" {
		_, _ = fmt.Fprintf(w, "**Created:** %s  \n", result.Metadata.CreatedAt)
	}
	_, _ = fmt.Fprintf(w, "\n")

	// Token statistics
	stats := result.Stats
	_, _ = fmt.Fprintf(w, "## Token Statistics\n\n")
	_, _ = fmt.Fprintf(w, "- Total tokens: %d\n", stats.TotalTokens)
	_, _ = fmt.Fprintf(w, "- User messages: %d tokens\n", stats.UserTokens)
	_, _ = fmt.Fprintf(w, "- Model responses: %d tokens\n", stats.ModelTokens)
	if stats.HasThinking {
		_, _ = fmt.Fprintf(w, "- Thinking segments: %d tokens\n", stats.ThinkingTokens)
	}
	_, _ = fmt.Fprintf(w, "- Messages: %d\n\n", stats.MessageCount)

	_, _ = fmt.Fprintf(w, "---\n\n")
	_, _ = fmt.Fprintf(w, "## Chunks\n\n")

	chunks := result.Document.ChunkedPrompt.Chunks
	for i, chunk := range chunks {
		label := chunk.Role
		if chunk.IsThought {
			label += " (thinking)"
		}

		content := escapeMarkdown(chunk.Text)

		_, _ = fmt.Fprintf(w, "**%s** · %d tokens\n\n%s\n\n", label, chunk.TokenCount, content)

		// Add horizontal rule after each chunk (except the last one)
		if i < len(chunks)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}

	return nil
}

// escapeMarkdown escapes markdown special characters outside code blocks
func escapeMarkdown(text string) string {
	lines := strings.Split(text, "\n")
	var result []string
	inCodeBlock := false

	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			inCodeBlock = !inCodeBlock
			result = append(result, line)
		} else if inCodeBlock {
			result = append(result, line)
		} else {
			line = strings.ReplaceAll(line, "**", "\\*\\*")
			line = strings.ReplaceAll(line, "__", "\\_\\_")
			result = append(result, line)
		}
	}

	return strings.Join(result, "\n")
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
