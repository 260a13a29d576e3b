package tools

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/founderkit/pkg/llm"
	"github.com/artem13815/founderkit/pkg/llm/structured"
	"github.com/artem13815/founderkit/pkg/prompts"
)

type fakeGenerator struct {
	reply json.RawMessage
	err   error
	got   []structured.Request
	keys  []string
}

func (f *fakeGenerator) Generate(_ context.Context, apiKey string, req structured.Request) (json.RawMessage, error) {
	f.got = append(f.got, req)
	f.keys = append(f.keys, apiKey)
	return f.reply, f.err
}

func (f *fakeGenerator) ModelName() string { return "gpt-test" }

type memRepo struct {
	mu    sync.Mutex
	items []Generation
	fail  error
}

func (r *memRepo) Create(_ context.Context, g Generation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return r.fail
	}
	r.items = append(r.items, g)
	return nil
}

func (r *memRepo) GetForOwner(_ context.Context, ownerID, id uuid.UUID) (Generation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range r.items {
		if g.ID == id && g.OwnerID == ownerID {
			return g, nil
		}
	}
	return Generation{}, ErrNotFound
}

func (r *memRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, tool ID, limit, offset int) ([]Generation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Generation
	for _, g := range r.items {
		if g.OwnerID == ownerID && (tool == "" || g.Tool == tool) {
			out = append(out, g)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memRepo) DeleteForOwner(_ context.Context, ownerID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, g := range r.items {
		if g.ID == id && g.OwnerID == ownerID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func newTestService(t *testing.T, gen Generator, repo Repository) UseCase {
	t.Helper()
	c, err := prompts.Default()
	require.NoError(t, err)
	return NewService(c, gen, repo)
}

const emailReply = `{"subject":"Quick intro","email":"Hi","followUp":"Ping","tips":["be brief"],"extra":"dropped"}`

func TestGenerate_Anonymous(t *testing.T) {
	gen := &fakeGenerator{reply: json.RawMessage(emailReply)}
	repo := &memRepo{}
	uc := newTestService(t, gen, repo)

	g, err := uc.Generate(context.Background(), Actor{}, "sk-1", EmailGenerator, Input{Idea: "  invoices  ", Tone: "Humble"})
	require.NoError(t, err)

	assert.Equal(t, EmailGenerator, g.Tool)
	assert.Equal(t, "gpt-test", g.Model)
	assert.False(t, g.Saved)
	assert.Empty(t, repo.items)
	assert.JSONEq(t, `{"subject":"Quick intro","email":"Hi","followUp":"Ping","tips":["be brief"]}`, string(g.Result))

	require.Len(t, gen.got, 1)
	assert.Equal(t, "sk-1", gen.keys[0])
	assert.Contains(t, gen.got[0].Prompt, `"invoices"`)
	assert.Contains(t, gen.got[0].Prompt, "Tone: humble")
	assert.Contains(t, gen.got[0].SystemInstruction, "cold emails")
	assert.Contains(t, gen.got[0].Schema, `"followUp"`)
}

func TestGenerate_AuthenticatedIsSaved(t *testing.T) {
	gen := &fakeGenerator{reply: json.RawMessage(emailReply)}
	repo := &memRepo{}
	uc := newTestService(t, gen, repo)
	actor := Actor{UserID: uuid.New()}

	g, err := uc.Generate(context.Background(), actor, "sk-1", EmailGenerator, Input{Idea: "x"})
	require.NoError(t, err)
	assert.True(t, g.Saved)
	require.Len(t, repo.items, 1)
	assert.Equal(t, actor.UserID, repo.items[0].OwnerID)

	got, err := uc.Get(context.Background(), actor, g.ID)
	require.NoError(t, err)
	assert.Equal(t, g.ID, got.ID)

	list, err := uc.List(context.Background(), actor, EmailGenerator, 20, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = uc.List(context.Background(), actor, IdeaAnalyzer, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)

	require.NoError(t, uc.Delete(context.Background(), actor, g.ID))
	_, err = uc.Get(context.Background(), actor, g.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGenerate_SaveFailureStillReturnsResult(t *testing.T) {
	gen := &fakeGenerator{reply: json.RawMessage(emailReply)}
	uc := newTestService(t, gen, &memRepo{fail: errors.New("db down")})

	g, err := uc.Generate(context.Background(), Actor{UserID: uuid.New()}, "k", EmailGenerator, Input{Idea: "x"})
	require.NoError(t, err)
	assert.False(t, g.Saved)
	assert.NotEmpty(t, g.Result)
}

func TestGenerate_Validation(t *testing.T) {
	uc := newTestService(t, &fakeGenerator{reply: json.RawMessage(`{}`)}, nil)
	ctx := context.Background()

	_, err := uc.Generate(ctx, Actor{}, "k", "no-such-tool", Input{Idea: "x"})
	assert.ErrorIs(t, err, ErrUnknownTool)

	var verr ErrValidation
	_, err = uc.Generate(ctx, Actor{}, "k", IdeaAnalyzer, Input{Idea: "   "})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "idea is required", err.Error())

	_, err = uc.Generate(ctx, Actor{}, "k", FounderBio, Input{Idea: "x"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "role is required", err.Error())

	_, err = uc.Generate(ctx, Actor{}, "k", LandingPageWriter, Input{Idea: "x", Tone: "sarcastic"})
	require.ErrorAs(t, err, &verr)

	_, err = uc.Generate(ctx, Actor{}, "k", IdeaAnalyzer, Input{Idea: "x", Tone: "friendly"})
	require.ErrorAs(t, err, &verr)
}

func TestGenerate_PropagatesLLMErrors(t *testing.T) {
	gen := &fakeGenerator{err: llm.NewError(llm.ErrParse, llm.ParseFailureMessage, nil)}
	uc := newTestService(t, gen, nil)

	_, err := uc.Generate(context.Background(), Actor{}, "k", IdeaAnalyzer, Input{Idea: "x"})
	assert.ErrorIs(t, err, llm.ErrParse)
}

func TestGenerate_TypeMismatchIsSchemaError(t *testing.T) {
	gen := &fakeGenerator{reply: json.RawMessage(`{"slides":"one big slide"}`)}
	uc := newTestService(t, gen, nil)

	_, err := uc.Generate(context.Background(), Actor{}, "k", PitchDeckSlides, Input{Idea: "x"})
	assert.ErrorIs(t, err, llm.ErrSchemaMismatch)
}

func TestHistoryRequiresAuth(t *testing.T) {
	uc := newTestService(t, &fakeGenerator{}, &memRepo{})

	_, err := uc.List(context.Background(), Actor{}, "", 20, 0)
	assert.ErrorIs(t, err, ErrAnonymous)
	err = uc.Delete(context.Background(), Actor{}, uuid.New())
	assert.ErrorIs(t, err, ErrAnonymous)
}

func TestCatalog(t *testing.T) {
	uc := newTestService(t, &fakeGenerator{}, nil)

	tools := uc.Catalog()
	require.Len(t, tools, 9)
	for _, tool := range tools {
		assert.NotNil(t, newResult(tool.ID), "typed result for %s", tool.ID)
		assert.NotNil(t, tool.Tones)
	}
}
