package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/artem13815/founderkit/pkg/llm"
	"github.com/artem13815/founderkit/pkg/llm/structured"
	"github.com/artem13815/founderkit/pkg/prompts"
)

// Generator is the structured prompt client as seen by this package.
type Generator interface {
	Generate(ctx context.Context, apiKey string, req structured.Request) (json.RawMessage, error)
	ModelName() string
}

// UseCase: сценарии запуска генераторов и работы с историей.
type UseCase interface {
	Catalog() []Tool
	Generate(ctx context.Context, actor Actor, apiKey string, id ID, in Input) (Generation, error)
	Get(ctx context.Context, actor Actor, id uuid.UUID) (Generation, error)
	List(ctx context.Context, actor Actor, tool ID, limit, offset int) ([]Generation, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

type service struct {
	catalog  *prompts.Catalog
	gen      Generator
	repo     Repository
	maxChars int
}

// NewService wires the use case. repo may be nil: nothing is persisted then.
func NewService(catalog *prompts.Catalog, gen Generator, repo Repository) UseCase {
	return &service{
		catalog:  catalog,
		gen:      gen,
		repo:     repo,
		maxChars: 12000,
	}
}

func (s *service) Catalog() []Tool {
	entries := s.catalog.Entries()
	out := make([]Tool, 0, len(entries))
	for _, e := range entries {
		tones := e.Tones
		if tones == nil {
			tones = []string{}
		}
		out = append(out, Tool{
			ID:          ID(e.ID),
			Name:        e.Name,
			Description: e.Description,
			Required:    e.Required,
			Tones:       tones,
		})
	}
	return out
}

func (s *service) Generate(ctx context.Context, actor Actor, apiKey string, id ID, in Input) (Generation, error) {
	entry, ok := s.catalog.Get(string(id))
	if !ok {
		return Generation{}, fmt.Errorf("%w: %s", ErrUnknownTool, id)
	}
	in = in.trimmed()
	if err := s.validate(entry, in); err != nil {
		return Generation{}, err
	}
	prompt, err := s.catalog.Render(entry.ID, in)
	if err != nil {
		return Generation{}, err
	}

	raw, err := s.gen.Generate(ctx, apiKey, structured.Request{
		Prompt:            prompt,
		SystemInstruction: entry.System,
		Schema:            entry.Schema,
	})
	if err != nil {
		return Generation{}, err
	}
	result, err := normalize(id, raw)
	if err != nil {
		return Generation{}, err
	}

	g := Generation{
		ID:        uuid.New(),
		OwnerID:   actor.UserID,
		Tool:      id,
		Input:     in,
		Result:    result,
		Model:     s.gen.ModelName(),
		CreatedAt: time.Now().UTC(),
	}
	if actor.Authenticated() && s.repo != nil {
		if err := s.repo.Create(ctx, g); err != nil {
			// the caller still gets the result; history is best-effort
			log.Errorw("save generation", "tool", id, "owner", actor.UserID, "error", err)
		} else {
			g.Saved = true
		}
	}
	return g, nil
}

func (s *service) Get(ctx context.Context, actor Actor, id uuid.UUID) (Generation, error) {
	if err := s.requireHistory(actor); err != nil {
		return Generation{}, err
	}
	g, err := s.repo.GetForOwner(ctx, actor.UserID, id)
	if err != nil {
		return Generation{}, err
	}
	g.Saved = true
	return g, nil
}

func (s *service) List(ctx context.Context, actor Actor, tool ID, limit, offset int) ([]Generation, error) {
	if err := s.requireHistory(actor); err != nil {
		return nil, err
	}
	if tool != "" {
		if _, ok := s.catalog.Get(string(tool)); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTool, tool)
		}
	}
	items, err := s.repo.ListByOwner(ctx, actor.UserID, tool, limit, offset)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Saved = true
	}
	if items == nil {
		items = []Generation{}
	}
	return items, nil
}

func (s *service) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if err := s.requireHistory(actor); err != nil {
		return err
	}
	return s.repo.DeleteForOwner(ctx, actor.UserID, id)
}

func (s *service) requireHistory(actor Actor) error {
	if !actor.Authenticated() {
		return ErrAnonymous
	}
	if s.repo == nil {
		return ErrNotFound
	}
	return nil
}

func (s *service) validate(e prompts.Entry, in Input) error {
	for _, name := range e.Required {
		v, known := in.field(name)
		if !known {
			return fmt.Errorf("tool %s requires unknown field %q", e.ID, name)
		}
		if v == "" {
			return ErrValidation(name + " is required")
		}
	}
	if !e.AllowsTone(in.Tone) {
		if len(e.Tones) == 0 {
			return ErrValidation("tone is not supported by " + e.ID)
		}
		return ErrValidation("tone must be one of: " + strings.Join(e.Tones, ", "))
	}
	total := 0
	for _, v := range []string{in.Idea, in.CompanyName, in.FounderInfo, in.Traction, in.Role, in.Experience, in.Achievements} {
		total += len([]rune(v))
	}
	if total > s.maxChars {
		return ErrValidation(fmt.Sprintf("input is too long: limit is %d characters", s.maxChars))
	}
	return nil
}

func (in Input) trimmed() Input {
	return Input{
		Idea:         strings.TrimSpace(in.Idea),
		CompanyName:  strings.TrimSpace(in.CompanyName),
		FounderInfo:  strings.TrimSpace(in.FounderInfo),
		Traction:     strings.TrimSpace(in.Traction),
		Tone:         strings.ToLower(strings.TrimSpace(in.Tone)),
		Role:         strings.TrimSpace(in.Role),
		Experience:   strings.TrimSpace(in.Experience),
		Achievements: strings.TrimSpace(in.Achievements),
	}
}

// normalize decodes raw into the tool's typed result and re-encodes it, so
// clients always receive exactly the documented fields.
func normalize(id ID, raw json.RawMessage) (json.RawMessage, error) {
	dst := newResult(id)
	if dst == nil {
		return raw, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return nil, llm.NewError(llm.ErrSchemaMismatch, "", fmt.Errorf("decode %s result: %w", id, err))
	}
	out, err := json.Marshal(dst)
	if err != nil {
		return nil, err
	}
	return out, nil
}
