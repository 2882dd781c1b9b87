package export

import (
	"io"

	"github.com/iksnae/claude2gemini/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports the full conversion result (source metadata, token
// statistics, and document) in YAML format.
type YAMLExporter struct{}

// Export writes the conversion result as YAML
func (e *YAMLExporter) Export(result *internal.ConversionResult, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(result)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
