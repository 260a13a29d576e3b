package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	cause := errors.New("http 401")
	err := fmt.Errorf("ask: %w", NewError(ErrAuth, "Incorrect API key provided", cause))

	assert.ErrorIs(t, err, ErrAuth)
	assert.NotErrorIs(t, err, ErrQuota)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "ask: llm credential rejected: Incorrect API key provided: http 401", err.Error())
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, ParseFailureMessage, UserMessage(NewError(ErrParse, "", errors.New("invalid character"))))
	assert.Equal(t, "bad key", UserMessage(NewError(ErrAuth, "bad key", nil)))
	assert.Contains(t, UserMessage(NewError(ErrQuota, "", nil)), "billing")
	assert.Contains(t, UserMessage(ErrConfiguration), "X-OpenAI-Key")
	assert.Contains(t, UserMessage(NewError(ErrSchemaMismatch, "$.a: expected string", nil)), "$.a")
	assert.Equal(t, "Failed to generate AI response. Please try again in a moment.", UserMessage(errors.New("dial tcp: refused")))
}
