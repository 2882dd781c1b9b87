package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iksnae/claude2gemini/internal"
)

func TestJSONLExporter_Export(t *testing.T) {
	result := internal.CreateTestResult("conversation.json")

	var buf bytes.Buffer
	exporter := &JSONLExporter{}
	if err := exporter.Export(result, &buf); err != nil {
		t.Fatalf("JSONLExporter.Export() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != len(result.Document.ChunkedPrompt.Chunks) {
		t.Fatalf("got %d lines, want one per chunk (%d)", len(lines), len(result.Document.ChunkedPrompt.Chunks))
	}

	for i, line := range lines {
		var chunk internal.Chunk
		if err := json.Unmarshal([]byte(line), &chunk); err != nil {
			t.Fatalf("line %d is not valid JSON: %v\nLine: %s", i, err, line)
		}
		if chunk.Text != result.Document.ChunkedPrompt.Chunks[i].Text {
			t.Errorf("line %d text = %q, want %q", i, chunk.Text, result.Document.ChunkedPrompt.Chunks[i].Text)
		}
	}
}

func TestJSONLExporter_EmptyConversation(t *testing.T) {
	result := &internal.ConversionResult{
		SourceName: "empty.json",
		Document:   internal.NewGeminiDocument(),
	}

	var buf bytes.Buffer
	if err := (&JSONLExporter{}).Export(result, &buf); err != nil {
		t.Fatalf("JSONLExporter.Export() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty conversation should produce no output, got %q", buf.String())
	}
}

func TestJSONLExporter_Extension(t *testing.T) {
	exporter := &JSONLExporter{}
	if got := exporter.Extension(); got != "jsonl" {
		t.Errorf("JSONLExporter.Extension() = %v, want jsonl", got)
	}
}
