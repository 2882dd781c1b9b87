package internal

import "strings"

// Role values used in the Gemini chunkedPrompt format.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// GeminiDocument is the converted output: fixed run settings, an empty
// system instruction, and the chunked prompt built from the source messages.
type GeminiDocument struct {
	RunSettings       RunSettings   `json:"runSettings"`
	SystemInstruction struct{}      `json:"systemInstruction"`
	ChunkedPrompt     ChunkedPrompt `json:"chunkedPrompt"`
}

// RunSettings is the fixed configuration block emitted with every document.
type RunSettings struct {
	Temperature                float64         `json:"temperature"`
	Model                      string          `json:"model"`
	TopP                       float64         `json:"topP"`
	TopK                       int             `json:"topK"`
	MaxOutputTokens            int             `json:"maxOutputTokens"`
	SafetySettings             []SafetySetting `json:"safetySettings"`
	ResponseMimeType           string          `json:"responseMimeType"`
	EnableCodeExecution        bool            `json:"enableCodeExecution"`
	EnableEnhancedCivicAnswers bool            `json:"enableEnhancedCivicAnswers"`
	EnableSearchAsATool        bool            `json:"enableSearchAsATool"`
	EnableBrowseAsATool        bool            `json:"enableBrowseAsATool"`
	EnableAutoFunctionResponse bool            `json:"enableAutoFunctionResponse"`
}

// SafetySetting disables filtering for one harm category.
type SafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

// ChunkedPrompt holds the converted conversation.
type ChunkedPrompt struct {
	Chunks        []Chunk        `json:"chunks"`
	PendingInputs []PendingInput `json:"pendingInputs"`
}

// Chunk is one emitted unit of conversation text. IsThought is set only on
// thinking-derived chunks; FinishReason is "STOP" only on model-role chunks
// that are not thoughts.
type Chunk struct {
	Text         string `json:"text"`
	Role         string `json:"role"`
	IsThought    bool   `json:"isThought,omitempty"`
	TokenCount   int    `json:"tokenCount"`
	FinishReason string `json:"finishReason,omitempty"`
}

// PendingInput is the empty user turn Gemini expects at the end of a prompt.
type PendingInput struct {
	Text string `json:"text"`
	Role string `json:"role"`
}

// Metadata carries the opaque pass-through fields from the source document.
type Metadata struct {
	UUID      string `json:"uuid,omitempty"`
	Name      string `json:"name,omitempty"`
	Model     string `json:"model,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// IsEmpty reports whether no metadata field was present in the source.
func (m Metadata) IsEmpty() bool {
	return m.UUID == "" && m.Name == "" && m.Model == "" && m.CreatedAt == ""
}

// TokenStats summarizes token usage for one conversion. Thinking tokens are
// tracked separately from the per-role buckets; the total includes them.
type TokenStats struct {
	TotalTokens    int  `json:"total_tokens"`
	UserTokens     int  `json:"user_tokens"`
	ModelTokens    int  `json:"model_tokens"`
	ThinkingTokens int  `json:"thinking_tokens"`
	MessageCount   int  `json:"message_count"`
	HasThinking    bool `json:"has_thinking"`
}

// ConversionResult bundles everything downstream consumers need: the
// converted document, its statistics, and display metadata.
type ConversionResult struct {
	SourceName string          `json:"source_name,omitempty"`
	Metadata   Metadata        `json:"metadata,omitempty"`
	Stats      TokenStats      `json:"stats"`
	Document   *GeminiDocument `json:"document"`
}

// DefaultRunSettings returns the run settings block every converted
// document carries. The values match what Google AI Studio writes for a
// gemini-2.5-pro prompt with all safety filters off.
func DefaultRunSettings() RunSettings {
	return RunSettings{
		Temperature:     1.0,
		Model:           "models/gemini-2.5-pro-preview-03-25",
		TopP:            0.95,
		TopK:            64,
		MaxOutputTokens: 65536,
		SafetySettings: []SafetySetting{
			{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "OFF"},
			{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "OFF"},
			{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "OFF"},
			{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "OFF"},
		},
		ResponseMimeType:           "text/plain",
		EnableCodeExecution:        false,
		EnableEnhancedCivicAnswers: true,
		EnableSearchAsATool:        false,
		EnableBrowseAsATool:        false,
		EnableAutoFunctionResponse: false,
	}
}

// NewGeminiDocument returns an empty converted document with the fixed
// envelope filled in. Chunks is non-nil so it marshals as [].
func NewGeminiDocument() *GeminiDocument {
	return &GeminiDocument{
		RunSettings: DefaultRunSettings(),
		ChunkedPrompt: ChunkedPrompt{
			Chunks:        []Chunk{},
			PendingInputs: []PendingInput{{Text: "", Role: RoleUser}},
		},
	}
}

// OutputFilename derives the converted file's name from the source name:
// session.json becomes session_gemini.json. Names without a .json suffix
// get _gemini.<ext> appended.
func OutputFilename(name, ext string) string {
	base := strings.TrimSuffix(name, ".json")
	return base + "_gemini." + ext
}
