package testutil

// ClaudeExportFixture is a small Claude-style export covering text segments,
// a thinking segment and metadata pass-through.
const ClaudeExportFixture = `{
  "uuid": "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
  "name": "Fixture Conversation",
  "model": "claude-3-7-sonnet-20250219",
  "created_at": "2025-04-01T12:00:00Z",
  "chat_messages": [
    {
      "sender": "human",
      "content": [
        {"type": "text", "text": "Hello there"}
      ]
    },
    {
      "sender": "assistant",
      "content": [
        {"type": "thinking", "thinking": "A friendly greeting."},
        {"type": "text", "text": "Hi! How can I help you today?"}
      ]
    }
  ]
}`

// ClaudeExportNoMessagesFixture has the metadata fields but no chat_messages
// key, so it is structurally unrecognized.
const ClaudeExportNoMessagesFixture = `{
  "uuid": "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
  "name": "Not An Export"
}`

// ClaudeExportToolUseFixture contains a segment type the converter skips.
const ClaudeExportToolUseFixture = `{
  "chat_messages": [
    {
      "sender": "assistant",
      "content": [
        {"type": "tool_use", "name": "calculator", "input": {"a": 1}},
        {"type": "text", "text": "The answer is 2."}
      ]
    }
  ]
}`
