package checkers

import (
	"context"
	"time"
)

// Pinger is implemented by chat clients able to verify a credential.
type Pinger interface {
	Ping(ctx context.Context, apiKey string) error
}

// ChatChecker verifies the chat endpoint with the server's own key.
type ChatChecker struct {
	client  Pinger
	apiKey  string
	timeout time.Duration
}

// NewChatChecker returns nil when there is no server key to check with.
func NewChatChecker(client Pinger, apiKey string) *ChatChecker {
	if apiKey == "" {
		return nil
	}
	return &ChatChecker{client: client, apiKey: apiKey, timeout: 3 * time.Second}
}

func (c *ChatChecker) Name() string { return "chat-endpoint" }

func (c *ChatChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.client.Ping(ctx, c.apiKey)
}
