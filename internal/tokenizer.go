package internal

import (
	"github.com/tiktoken-go/tokenizer"
)

// TokenCounter counts tokens in a text string. Implementations must be safe
// for concurrent use; the Converter calls Count with non-empty text only.
type TokenCounter interface {
	Count(text string) int
}

// TiktokenCounter counts tokens with the cl100k_base byte-pair encoding,
// matching what OpenAI-compatible tooling reports for the same text.
type TiktokenCounter struct {
	codec tokenizer.Codec
}

// NewTiktokenCounter loads the cl100k_base vocabulary. The vocabulary is
// embedded in the binary, so this cannot hit the network, but a failure here
// is fatal and callers should abort before processing any input.
func NewTiktokenCounter() (*TiktokenCounter, error) {
	codec, err := tokenizer.Get(tokenizer.Cl100kBase)
	if err != nil {
		return nil, &TokenizerInitError{Encoding: "cl100k_base", Err: err}
	}
	return &TiktokenCounter{codec: codec}, nil
}

// Count returns the number of tokens in text. Empty text is zero tokens
// without touching the codec. cl100k_base has a byte-level fallback, so
// encoding cannot fail on valid strings; if it ever does, the failure is
// logged and the text counts as zero.
func (c *TiktokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}
	ids, _, err := c.codec.Encode(text)
	if err != nil {
		LogWarn("Failed to encode text for token counting: %v", err)
		return 0
	}
	return len(ids)
}
