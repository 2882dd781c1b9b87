package internal

import (
	"encoding/json"
)

// SegmentKind identifies the variant of a content segment.
type SegmentKind int

const (
	SegmentUnknown SegmentKind = iota
	SegmentText
	SegmentThinking
)

// SourceDocument represents a Claude-style chat export. The metadata fields
// are opaque pass-through strings; only chat_messages drives the conversion.
type SourceDocument struct {
	UUID      string
	Name      string
	Model     string
	CreatedAt string
	Messages  []SourceMessage

	hasMessages bool
}

// SourceMessage is one message in a Claude export. Sender is a strict field:
// a message decoded from JSON without one is rejected during conversion.
type SourceMessage struct {
	Sender  string
	Content []SourceSegment

	hasSender bool
}

// SourceSegment is one typed content unit within a message. The type field
// is strict; the text/thinking payloads default to empty when absent.
// Segment types other than text/thinking decode as SegmentUnknown.
type SourceSegment struct {
	Kind     SegmentKind
	RawType  string
	Text     string
	Thinking string

	hasType bool
}

// HasChatMessages reports whether the chat_messages key was present in the
// decoded document (present-but-empty still counts as present).
func (d *SourceDocument) HasChatMessages() bool {
	return d.hasMessages
}

// Metadata returns the pass-through metadata fields for display.
func (d *SourceDocument) Metadata() Metadata {
	return Metadata{
		UUID:      d.UUID,
		Name:      d.Name,
		Model:     d.Model,
		CreatedAt: d.CreatedAt,
	}
}

// HasThinking reports whether any message carries a thinking segment,
// regardless of whether its text survives trimming. Used by the inspect
// preview; the authoritative per-conversion flag lives in TokenStats.
func (d *SourceDocument) HasThinking() bool {
	for _, msg := range d.Messages {
		for _, seg := range msg.Content {
			if seg.Kind == SegmentThinking {
				return true
			}
		}
	}
	return false
}

// TextSegment builds a text-variant segment.
func TextSegment(text string) SourceSegment {
	return SourceSegment{Kind: SegmentText, RawType: "text", Text: text, hasType: true}
}

// ThinkingSegment builds a thinking-variant segment.
func ThinkingSegment(text string) SourceSegment {
	return SourceSegment{Kind: SegmentThinking, RawType: "thinking", Thinking: text, hasType: true}
}

// UnknownSegment builds a segment of an unrecognized type (e.g. tool_use).
func UnknownSegment(rawType string) SourceSegment {
	return SourceSegment{Kind: SegmentUnknown, RawType: rawType, hasType: true}
}

// NewSourceMessage builds a message with a resolved sender.
func NewSourceMessage(sender string, content ...SourceSegment) SourceMessage {
	return SourceMessage{Sender: sender, Content: content, hasSender: true}
}

// DecodeSourceDocument parses raw bytes into a SourceDocument. Invalid JSON
// yields a DecodeError. Missing fields never fail here: presence is recorded
// so the Converter can apply its strict-field rules.
func DecodeSourceDocument(data []byte) (*SourceDocument, error) {
	var doc SourceDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &doc, nil
}

// UnmarshalJSON decodes a document, recording whether chat_messages was
// present so the missing-key case stays distinguishable from an empty list.
func (d *SourceDocument) UnmarshalJSON(data []byte) error {
	var raw struct {
		UUID      string           `json:"uuid"`
		Name      string           `json:"name"`
		Model     string           `json:"model"`
		CreatedAt string           `json:"created_at"`
		Messages  *[]SourceMessage `json:"chat_messages"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d.UUID = raw.UUID
	d.Name = raw.Name
	d.Model = raw.Model
	d.CreatedAt = raw.CreatedAt
	if raw.Messages != nil {
		d.Messages = *raw.Messages
		d.hasMessages = true
	}
	return nil
}

// UnmarshalJSON decodes a message. Sender presence is recorded rather than
// defaulted; content defaults to an empty sequence.
func (m *SourceMessage) UnmarshalJSON(data []byte) error {
	var raw struct {
		Sender  *string         `json:"sender"`
		Content []SourceSegment `json:"content"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw.Sender != nil {
		m.Sender = *raw.Sender
		m.hasSender = true
	}
	m.Content = raw.Content
	return nil
}

// UnmarshalJSON decodes a segment into its tagged variant. The type field is
// strict (presence recorded); text and thinking payloads default to empty.
func (s *SourceSegment) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type     *string `json:"type"`
		Text     string  `json:"text"`
		Thinking string  `json:"thinking"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw.Type == nil {
		*s = SourceSegment{}
		return nil
	}

	s.hasType = true
	s.RawType = *raw.Type
	switch *raw.Type {
	case "text":
		s.Kind = SegmentText
		s.Text = raw.Text
	case "thinking":
		s.Kind = SegmentThinking
		s.Thinking = raw.Thinking
	default:
		s.Kind = SegmentUnknown
	}
	return nil
}
