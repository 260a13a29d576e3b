package llm

import (
	"errors"
	"strings"
)

// Error kinds returned by chat models and the structured client.
// Callers match them with errors.Is; the wrapped text carries details.
var (
	ErrConfiguration  = errors.New("llm credential is not configured")
	ErrAuth           = errors.New("llm credential rejected")
	ErrQuota          = errors.New("llm usage limit exceeded")
	ErrUpstream       = errors.New("llm upstream failure")
	ErrParse          = errors.New("llm response is not valid JSON")
	ErrSchemaMismatch = errors.New("llm response does not match schema")
)

// ParseFailureMessage is what a caller sees when a reply could not be
// recovered as JSON even after the corrective retry.
const ParseFailureMessage = "Failed to parse AI response. Please try again."

// Error carries a user-displayable message next to its kind.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Is reports whether target is the kind of e.
func (e *Error) Is(target error) bool { return e.Kind == target }

func (e *Error) Unwrap() error { return e.Err }

// NewError builds an *Error of the given kind.
func NewError(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// UserMessage converts any error into the single string shown to an end user.
// Raw transport and decoding errors never leak through it.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var msg string
	var le *Error
	if errors.As(err, &le) {
		msg = le.Message
	}
	switch {
	case errors.Is(err, ErrConfiguration):
		return "OpenAI API key is not configured. Provide one in the X-OpenAI-Key header."
	case errors.Is(err, ErrAuth):
		if msg != "" {
			return msg
		}
		return "The OpenAI API key was rejected."
	case errors.Is(err, ErrQuota):
		if msg == "" {
			msg = "OpenAI usage limit exceeded."
		}
		return msg + " Check your OpenAI plan and billing details."
	case errors.Is(err, ErrParse):
		return ParseFailureMessage
	case errors.Is(err, ErrSchemaMismatch):
		if msg != "" {
			return "AI response did not match the expected format (" + msg + "). Please try again."
		}
		return "AI response did not match the expected format. Please try again."
	default:
		return "Failed to generate AI response. Please try again in a moment."
	}
}
