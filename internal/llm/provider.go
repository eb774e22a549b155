package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single fallible external boundary of the generation
// pipeline: a request/response call that accepts a prompt and returns a
// text blob.
type Provider interface {
	// Generate sends a prompt to the model and returns its output.
	// When the request carries a Schema, the provider uses its native
	// structured-output mechanism and validates the result against it.
	// When Schema is nil the Content is the raw model text, which callers
	// must treat as untrusted.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role. Optional; course prompts carry their
	// own framing and usually leave it empty.
	System string

	// Messages is the conversation. Course generation is single-turn, so
	// this normally holds one user message.
	Messages []Message

	// Schema, when set, requests schema-constrained output. Course
	// generation leaves it nil and relies on the repair stage instead.
	Schema *Schema

	// MaxTokens is the output-size ceiling for this call.
	MaxTokens int

	// Temperature, TopP, and TopK are passed through to the transport.
	// Zero values mean "provider default".
	Temperature float64
	TopP        float64
	TopK        int
}

// Message is a single turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "course-document".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output. Validated JSON when a Schema was
	// requested, otherwise the raw text wrapped as a json.RawMessage.
	Content json.RawMessage

	// Usage reports token consumption for this call.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token consumption for a single call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
