// Package structured asks a chat model for JSON and recovers it from the reply.
//
// Models often wrap JSON in a Markdown fence or add prose around it. Generate
// strips a fence when present, and when the candidate still does not parse it
// asks once more with a stricter instruction. It never retries more than once.
package structured

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/sethvargo/go-retry"

	"github.com/artem13815/founderkit/pkg/llm"
)

// Request is a single structured prompt.
type Request struct {
	Prompt            string
	SystemInstruction string
	// Schema is a human-readable description of the expected JSON. When it is
	// itself valid JSON the reply is shape-checked against it.
	Schema string
}

// Client produces schema-shaped JSON from a chat model.
type Client struct {
	model      llm.ChatModel
	retryDelay time.Duration
}

type Option func(*Client)

// WithRetryDelay sets the pause before the corrective retry.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.retryDelay = d
		}
	}
}

func New(model llm.ChatModel, opts ...Option) *Client {
	c := &Client{model: model, retryDelay: 100 * time.Millisecond}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ModelName reports the underlying model identifier, if known.
func (c *Client) ModelName() string { return llm.ModelName(c.model) }

// GenerateText sends the prompt with an optional system instruction and
// returns the completion text.
func (c *Client) GenerateText(ctx context.Context, apiKey, prompt, systemInstruction string) (string, error) {
	if apiKey == "" {
		return "", llm.NewError(llm.ErrConfiguration, "", nil)
	}
	if c.model == nil {
		return "", llm.NewError(llm.ErrConfiguration, "chat model is not configured", nil)
	}
	return c.model.Ask(ctx, apiKey, systemInstruction, prompt)
}

const maxRetries = 1

var errNotJSON = errors.New("candidate is not valid JSON")

// Generate returns the JSON value the model produced for req.
func (c *Client) Generate(ctx context.Context, apiKey string, req Request) (json.RawMessage, error) {
	var (
		attempt int
		out     json.RawMessage
		lastErr error
	)
	backoff := retry.WithMaxRetries(maxRetries, retry.NewConstant(c.retryDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		prompt := withSchema(req.Prompt, req.Schema)
		if attempt > 1 {
			prompt = withStrictSchema(req.Prompt, req.Schema)
		}
		text, err := c.GenerateText(ctx, apiKey, prompt, req.SystemInstruction)
		if err != nil {
			return err
		}
		candidate := ExtractJSON(text)
		if err := checkJSON(candidate); err != nil {
			lastErr = err
			log.Warnw("structured reply is not valid JSON", "attempt", attempt, "error", err)
			return retry.RetryableError(errNotJSON)
		}
		out = json.RawMessage(candidate)
		return nil
	})
	if err != nil {
		if errors.Is(err, errNotJSON) {
			log.Errorw("structured reply could not be parsed after retry", "attempts", attempt, "error", lastErr)
			return nil, llm.NewError(llm.ErrParse, llm.ParseFailureMessage, lastErr)
		}
		return nil, err
	}

	if err := ValidateShape(req.Schema, out); err != nil {
		log.Warnw("structured reply does not match schema", "error", err)
		return nil, err
	}
	return out, nil
}

// GenerateInto runs Generate and decodes the result into dst.
func (c *Client) GenerateInto(ctx context.Context, apiKey string, req Request, dst any) error {
	raw, err := c.Generate(ctx, apiKey, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return llm.NewError(llm.ErrSchemaMismatch, "", fmt.Errorf("decode into %T: %w", dst, err))
	}
	return nil
}

func withSchema(prompt, schema string) string {
	return fmt.Sprintf("%s\n\nPlease respond with valid JSON that matches this schema:\n%s", prompt, schema)
}

func withStrictSchema(prompt, schema string) string {
	return fmt.Sprintf("%s\n\nRespond with ONLY valid JSON matching this schema, with no prose and no code fences:\n%s", prompt, schema)
}

func checkJSON(s string) error {
	if s == "" {
		return errors.New("empty reply")
	}
	var v any
	return json.Unmarshal([]byte(s), &v)
}
