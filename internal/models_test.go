package internal

import (
	"errors"
	"testing"
)

func TestDecodeSourceDocument(t *testing.T) {
	data := []byte(`{
		"uuid": "u-1",
		"name": "My Chat",
		"model": "claude-3-7-sonnet-20250219",
		"created_at": "2025-04-01T12:00:00Z",
		"chat_messages": [
			{"sender": "human", "content": [{"type": "text", "text": "Hello"}]},
			{"sender": "assistant", "content": [
				{"type": "thinking", "thinking": "Hmm."},
				{"type": "tool_use", "name": "calculator"},
				{"type": "text", "text": "Hi"}
			]}
		]
	}`)

	doc, err := DecodeSourceDocument(data)
	if err != nil {
		t.Fatalf("DecodeSourceDocument() error = %v", err)
	}

	if !doc.HasChatMessages() {
		t.Error("HasChatMessages() = false, want true")
	}
	if doc.UUID != "u-1" || doc.Name != "My Chat" {
		t.Errorf("metadata not decoded: %+v", doc.Metadata())
	}
	if len(doc.Messages) != 2 {
		t.Fatalf("decoded %d messages, want 2", len(doc.Messages))
	}

	first := doc.Messages[0]
	if first.Sender != "human" || !first.hasSender {
		t.Errorf("first message sender = %q (present=%v), want human", first.Sender, first.hasSender)
	}
	if len(first.Content) != 1 || first.Content[0].Kind != SegmentText || first.Content[0].Text != "Hello" {
		t.Errorf("first message content = %+v", first.Content)
	}

	second := doc.Messages[1]
	kinds := []SegmentKind{SegmentThinking, SegmentUnknown, SegmentText}
	for i, want := range kinds {
		if second.Content[i].Kind != want {
			t.Errorf("segment %d kind = %v, want %v", i, second.Content[i].Kind, want)
		}
	}
	if second.Content[1].RawType != "tool_use" {
		t.Errorf("unknown segment RawType = %q, want tool_use", second.Content[1].RawType)
	}
}

func TestDecodeSourceDocumentMissingChatMessages(t *testing.T) {
	doc, err := DecodeSourceDocument([]byte(`{"name": "not an export"}`))
	if err != nil {
		t.Fatalf("DecodeSourceDocument() error = %v", err)
	}
	if doc.HasChatMessages() {
		t.Error("HasChatMessages() = true, want false")
	}
}

func TestDecodeSourceDocumentEmptyChatMessages(t *testing.T) {
	doc, err := DecodeSourceDocument([]byte(`{"chat_messages": []}`))
	if err != nil {
		t.Fatalf("DecodeSourceDocument() error = %v", err)
	}
	if !doc.HasChatMessages() {
		t.Error("present-but-empty chat_messages should count as present")
	}
	if len(doc.Messages) != 0 {
		t.Errorf("decoded %d messages, want 0", len(doc.Messages))
	}
}

func TestDecodeSourceDocumentInvalidJSON(t *testing.T) {
	doc, err := DecodeSourceDocument([]byte(`{not json`))
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("DecodeSourceDocument() error = %v, want DecodeError", err)
	}
	if doc != nil {
		t.Error("DecodeSourceDocument() should return nil document on error")
	}
}

func TestDecodeMessageDefaults(t *testing.T) {
	doc, err := DecodeSourceDocument([]byte(`{
		"chat_messages": [
			{"content": [{"type": "text", "text": "orphan"}]},
			{"sender": "human"}
		]
	}`))
	if err != nil {
		t.Fatalf("DecodeSourceDocument() error = %v", err)
	}

	if doc.Messages[0].hasSender {
		t.Error("missing sender should be recorded as absent, not defaulted")
	}
	if doc.Messages[1].Content != nil {
		t.Error("missing content should decode as an empty sequence")
	}
}

func TestDecodeSegmentDefaults(t *testing.T) {
	doc, err := DecodeSourceDocument([]byte(`{
		"chat_messages": [
			{"sender": "human", "content": [
				{"type": "text"},
				{"type": "thinking"},
				{"text": "typeless"}
			]}
		]
	}`))
	if err != nil {
		t.Fatalf("DecodeSourceDocument() error = %v", err)
	}

	segs := doc.Messages[0].Content
	if segs[0].Kind != SegmentText || segs[0].Text != "" {
		t.Errorf("text segment without payload = %+v, want empty text", segs[0])
	}
	if segs[1].Kind != SegmentThinking || segs[1].Thinking != "" {
		t.Errorf("thinking segment without payload = %+v, want empty thinking", segs[1])
	}
	if segs[2].hasType {
		t.Error("segment without type should be recorded as absent")
	}
}

func TestHasThinking(t *testing.T) {
	tests := []struct {
		name string
		doc  *SourceDocument
		want bool
	}{
		{
			name: "with thinking",
			doc:  CreateTestDocument(),
			want: true,
		},
		{
			name: "text only",
			doc: CreateTestDocumentWithMessages([]SourceMessage{
				NewSourceMessage("human", TextSegment("Hello")),
			}),
			want: false,
		},
		{
			name: "no messages",
			doc:  CreateTestDocumentWithMessages(nil),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.doc.HasThinking(); got != tt.want {
				t.Errorf("HasThinking() = %v, want %v", got, tt.want)
			}
		})
	}
}
