package llm

import "context"

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// The credential travels with every call; implementations must not cache it.
type ChatModel interface {
	// Ask sends an optional system message followed by the user prompt and
	// returns the text of the first completion.
	Ask(ctx context.Context, apiKey, systemPrompt, userPrompt string) (string, error)
}

// Named is implemented by models that can report the model identifier they call.
type Named interface {
	ModelName() string
}

// ModelName returns the identifier of m, or "" when m does not expose one.
func ModelName(m ChatModel) string {
	if n, ok := m.(Named); ok {
		return n.ModelName()
	}
	return ""
}
