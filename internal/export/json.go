package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/claude2gemini/internal"
)

// JSONExporter writes the converted Gemini document itself, pretty-printed.
// This is the format AI Studio accepts for import.
type JSONExporter struct{}

// Export writes the Gemini document as indented JSON
func (e *JSONExporter) Export(result *internal.ConversionResult, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return enc.Encode(result.Document)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
