package internal

import "fmt"

// InvalidInputError means the document is not a recognized Claude export
// (the chat_messages field is missing). No conversion output is produced.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// MalformedInputError means the document was recognized but a message or
// segment is missing a strict field (sender or type).
type MalformedInputError struct {
	Field        string
	MessageIndex int
	SegmentIndex int // -1 when the error is on the message itself
}

func (e *MalformedInputError) Error() string {
	if e.SegmentIndex >= 0 {
		return fmt.Sprintf("malformed input: message %d segment %d: missing %q field",
			e.MessageIndex, e.SegmentIndex, e.Field)
	}
	return fmt.Sprintf("malformed input: message %d: missing %q field", e.MessageIndex, e.Field)
}

// DecodeError means the uploaded bytes are not valid JSON.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("decode error: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("decode error: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TokenizerInitError means the tokenizer vocabulary could not be loaded.
// This is fatal: commands abort before touching any input.
type TokenizerInitError struct {
	Encoding string
	Err      error
}

func (e *TokenizerInitError) Error() string {
	return fmt.Sprintf("tokenizer init error [%s]: %v", e.Encoding, e.Err)
}

func (e *TokenizerInitError) Unwrap() error {
	return e.Err
}

// ExportError represents errors writing a converted document.
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
