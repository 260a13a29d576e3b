package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/artem13815/founderkit/pkg/llm"
)

const (
	DefaultBaseURL     = "https://api.openai.com/v1"
	DefaultModel       = "gpt-4"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2000
)

// Client is a minimal OpenAI-compatible chat completions client.
// It holds no credential: the API key is supplied on every call.
type Client struct {
	BaseURL      string
	Model        string
	Temperature  float32
	MaxTokens    int
	Organization string
	httpDo       *http.Client
	// set by WithTimeout, applied once all options have run
	timeout time.Duration
}

// Option tweaks a Client built by New.
type Option func(*Client)

func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.Model = model
		}
	}
}

func WithSampling(temperature float32, maxTokens int) Option {
	return func(c *Client) {
		c.Temperature = temperature
		if maxTokens > 0 {
			c.MaxTokens = maxTokens
		}
	}
}

func WithOrganization(org string) Option {
	return func(c *Client) { c.Organization = org }
}

// WithTimeout bounds every request. It never mutates a client passed to
// WithHTTPClient, whichever order the options come in.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying transport (tests use httptest servers).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpDo = hc
		}
	}
}

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		Model:       DefaultModel,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
		httpDo: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.httpDo
		hc.Timeout = c.timeout
		c.httpDo = &hc
	}
	return c
}

// ModelName reports the model identifier sent with every request.
func (c *Client) ModelName() string { return c.Model }

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionsRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float32   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type chatChoice struct {
	Index   int `json:"index"`
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type chatCompletionsResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
}

type apiErrorBody struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	} `json:"error"`
}

// Ask sends a single chat request and returns the first completion's text.
func (c *Client) Ask(ctx context.Context, apiKey, systemPrompt, userPrompt string) (string, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return "", llm.NewError(llm.ErrConfiguration, "", nil)
	}
	msgs := make([]message, 0, 2)
	if strings.TrimSpace(systemPrompt) != "" {
		msgs = append(msgs, message{Role: "system", Content: systemPrompt})
	}
	msgs = append(msgs, message{Role: "user", Content: userPrompt})

	data, err := json.Marshal(chatCompletionsRequest{
		Model:       c.Model,
		Messages:    msgs,
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
	})
	if err != nil {
		return "", llm.NewError(llm.ErrUpstream, "", err)
	}

	endpoint := fmt.Sprintf("%s/chat/completions", c.BaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", llm.NewError(llm.ErrUpstream, "", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	c.authorize(httpReq, apiKey)

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return "", llm.NewError(llm.ErrUpstream, "", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", classify(resp)
	}
	var out chatCompletionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", llm.NewError(llm.ErrUpstream, "", fmt.Errorf("decode completion: %w", err))
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", llm.NewError(llm.ErrUpstream, "No response generated", nil)
	}
	return out.Choices[0].Message.Content, nil
}

// Ping lists models to confirm the endpoint is reachable and the key accepted.
func (c *Client) Ping(ctx context.Context, apiKey string) error {
	if strings.TrimSpace(apiKey) == "" {
		return llm.NewError(llm.ErrConfiguration, "", nil)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/models", nil)
	if err != nil {
		return llm.NewError(llm.ErrUpstream, "", err)
	}
	c.authorize(req, apiKey)
	resp, err := c.httpDo.Do(req)
	if err != nil {
		return llm.NewError(llm.ErrUpstream, "", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return classify(resp)
	}
	return nil
}

func (c *Client) authorize(req *http.Request, apiKey string) {
	req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(apiKey))
	if c.Organization != "" {
		req.Header.Set("OpenAI-Organization", c.Organization)
	}
}

// classify maps a non-2xx response to one of the llm error kinds.
func classify(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var body apiErrorBody
	_ = json.Unmarshal(raw, &body)
	remote := strings.TrimSpace(body.Error.Message)
	code, _ := body.Error.Code.(string)
	cause := fmt.Errorf("openai http %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		if remote == "" {
			remote = "Invalid OpenAI API key."
		}
		return llm.NewError(llm.ErrAuth, remote, cause)
	case resp.StatusCode == http.StatusTooManyRequests || code == "insufficient_quota" || body.Error.Type == "insufficient_quota":
		if remote == "" {
			remote = "OpenAI usage limit exceeded."
		}
		return llm.NewError(llm.ErrQuota, remote, cause)
	default:
		return llm.NewError(llm.ErrUpstream, "", cause)
	}
}
