package tools

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ID names one of the generators.
type ID string

const (
	IdeaAnalyzer       ID = "idea-analyzer"
	MVPGenerator       ID = "mvp-generator"
	LandingPageWriter  ID = "landing-page"
	EmailGenerator     ID = "email-generator"
	CompetitorAnalysis ID = "competitor-analysis"
	LeanCanvasBuilder  ID = "lean-canvas"
	PitchDeckSlides    ID = "pitch-deck"
	FounderBio         ID = "founder-bio"
	OnePagerWriter     ID = "one-pager"
)

// Input: свободный текст из формы генератора. Каждый инструмент использует своё подмножество полей.
type Input struct {
	Idea         string `json:"idea,omitempty"`
	CompanyName  string `json:"companyName,omitempty"`
	FounderInfo  string `json:"founderInfo,omitempty"`
	Traction     string `json:"traction,omitempty"`
	Tone         string `json:"tone,omitempty"`
	Role         string `json:"role,omitempty"`
	Experience   string `json:"experience,omitempty"`
	Achievements string `json:"achievements,omitempty"`
}

// field returns the value of the input field with the given JSON name.
func (in Input) field(name string) (string, bool) {
	switch name {
	case "idea":
		return in.Idea, true
	case "companyName":
		return in.CompanyName, true
	case "founderInfo":
		return in.FounderInfo, true
	case "traction":
		return in.Traction, true
	case "tone":
		return in.Tone, true
	case "role":
		return in.Role, true
	case "experience":
		return in.Experience, true
	case "achievements":
		return in.Achievements, true
	}
	return "", false
}

// Tool is the public description of a generator.
type Tool struct {
	ID          ID       `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Required    []string `json:"required"`
	Tones       []string `json:"tones"`
}

// Generation: результат одного запуска генератора.
type Generation struct {
	ID        uuid.UUID       `json:"id"`
	OwnerID   uuid.UUID       `json:"ownerId,omitempty"`
	Tool      ID              `json:"tool"`
	Input     Input           `json:"input"`
	Result    json.RawMessage `json:"result"`
	Model     string          `json:"model"`
	CreatedAt time.Time       `json:"createdAt"`
	// Saved is false for anonymous callers: nothing was persisted.
	Saved bool `json:"saved"`
}

// Actor is the caller of a use case. The zero value is anonymous.
type Actor struct {
	UserID uuid.UUID
}

func (a Actor) Authenticated() bool { return a.UserID != uuid.Nil }

var (
	ErrUnknownTool = errors.New("unknown tool")
	ErrNotFound    = errors.New("generation not found")
	ErrAnonymous   = errors.New("authentication required")
)

// ErrValidation простая ошибка валидации входа.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// Repository: порт для хранения истории генераций.
type Repository interface {
	Create(ctx context.Context, g Generation) error
	GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (Generation, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, tool ID, limit, offset int) ([]Generation, error)
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
}
