package internal

// CreateTestDocument creates a source document with a short two-turn
// conversation including a thinking segment.
func CreateTestDocument() *SourceDocument {
	return &SourceDocument{
		UUID:      "11111111-2222-3333-4444-555555555555",
		Name:      "Test Conversation",
		Model:     "claude-3-7-sonnet-20250219",
		CreatedAt: "2025-04-01T12:00:00Z",
		Messages: []SourceMessage{
			NewSourceMessage("human", TextSegment("Hello, how are you?")),
			NewSourceMessage("assistant",
				ThinkingSegment("The user is greeting me."),
				TextSegment("I'm doing well, thank you!"),
			),
		},
		hasMessages: true,
	}
}

// CreateTestDocumentWithMessages creates a source document with custom messages.
func CreateTestDocumentWithMessages(messages []SourceMessage) *SourceDocument {
	return &SourceDocument{
		Messages:    messages,
		hasMessages: true,
	}
}

// CreateTestResult creates a conversion result with sample chunks for
// exercising exporters.
func CreateTestResult(name string) *ConversionResult {
	doc := NewGeminiDocument()
	doc.ChunkedPrompt.Chunks = []Chunk{
		{Text: "Hello, how are you?", Role: RoleUser, TokenCount: 6},
		{Text: "The user is greeting me.", Role: RoleModel, IsThought: true, TokenCount: 6},
		{Text: "I'm doing well, thank you!", Role: RoleModel, TokenCount: 8, FinishReason: "STOP"},
	}
	return &ConversionResult{
		SourceName: name,
		Metadata: Metadata{
			UUID:      "11111111-2222-3333-4444-555555555555",
			Name:      "Test Conversation",
			Model:     "claude-3-7-sonnet-20250219",
			CreatedAt: "2025-04-01T12:00:00Z",
		},
		Stats: TokenStats{
			TotalTokens:    20,
			UserTokens:     6,
			ModelTokens:    8,
			ThinkingTokens: 6,
			MessageCount:   2,
			HasThinking:    true,
		},
		Document: doc,
	}
}
