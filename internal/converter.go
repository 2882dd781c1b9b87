package internal

import "strings"

// Converter transforms Claude-style source documents into Gemini
// chunkedPrompt documents. It holds no mutable state, so a single instance
// is safe to reuse across calls as long as its TokenCounter is.
type Converter struct {
	counter TokenCounter
}

// NewConverter creates a Converter using the given token counter.
func NewConverter(counter TokenCounter) *Converter {
	return &Converter{counter: counter}
}

// Convert runs the schema mapping in a single pass over the messages.
//
// Every message increments the message count, whether or not it produces
// chunks. Within a message, segments are emitted in source order: thinking
// segments become isThought chunks, text segments become plain chunks (with
// finishReason STOP for the model role), and unrecognized segment types are
// skipped. Whitespace-only segments produce no chunk and count no tokens.
func (c *Converter) Convert(doc *SourceDocument) (*GeminiDocument, *TokenStats, error) {
	if doc == nil || !doc.HasChatMessages() {
		return nil, nil, &InvalidInputError{Reason: "expected a JSON object with a 'chat_messages' field"}
	}

	converted := NewGeminiDocument()
	stats := &TokenStats{}

	for i, msg := range doc.Messages {
		if !msg.hasSender {
			return nil, nil, &MalformedInputError{Field: "sender", MessageIndex: i, SegmentIndex: -1}
		}
		role := resolveRole(msg.Sender)
		stats.MessageCount++

		for j, seg := range msg.Content {
			if !seg.hasType {
				return nil, nil, &MalformedInputError{Field: "type", MessageIndex: i, SegmentIndex: j}
			}

			switch seg.Kind {
			case SegmentThinking:
				text := strings.TrimSpace(seg.Thinking)
				if text == "" {
					continue
				}
				stats.HasThinking = true
				tokens := c.countTokens(text)
				stats.TotalTokens += tokens
				stats.ThinkingTokens += tokens
				converted.ChunkedPrompt.Chunks = append(converted.ChunkedPrompt.Chunks, Chunk{
					Text:       text,
					Role:       role,
					IsThought:  true,
					TokenCount: tokens,
				})

			case SegmentText:
				text := strings.TrimSpace(seg.Text)
				if text == "" {
					continue
				}
				tokens := c.countTokens(text)
				stats.TotalTokens += tokens
				if role == RoleUser {
					stats.UserTokens += tokens
				} else {
					stats.ModelTokens += tokens
				}
				chunk := Chunk{
					Text:       text,
					Role:       role,
					TokenCount: tokens,
				}
				if role == RoleModel {
					chunk.FinishReason = "STOP"
				}
				converted.ChunkedPrompt.Chunks = append(converted.ChunkedPrompt.Chunks, chunk)

			default:
				// Unrecognized segment types (tool use, images, ...) are
				// dropped without affecting statistics or output.
			}
		}
	}

	return converted, stats, nil
}

// countTokens delegates to the counter, short-circuiting empty text so the
// tokenizer is never invoked for it.
func (c *Converter) countTokens(text string) int {
	if text == "" {
		return 0
	}
	return c.counter.Count(text)
}

// resolveRole maps the Claude sender label to a Gemini role. Only "human"
// maps to user; every other sender is treated as the model.
func resolveRole(sender string) string {
	if sender == "human" {
		return RoleUser
	}
	return RoleModel
}
