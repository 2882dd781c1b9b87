package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/claude2gemini/internal"
)

// JSONLExporter exports the converted conversation as JSONL, one chunk per
// line. Handy for feeding the chunks into line-oriented tooling.
type JSONLExporter struct{}

// Export writes each chunk as a single JSON line
func (e *JSONLExporter) Export(result *internal.ConversionResult, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	for _, chunk := range result.Document.ChunkedPrompt.Chunks {
		if err := enc.Encode(chunk); err != nil {
			return fmt.Errorf("failed to encode chunk: %w", err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
