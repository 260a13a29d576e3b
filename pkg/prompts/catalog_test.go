package prompts

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type input struct {
	Idea, CompanyName, FounderInfo, Traction, Tone, Role, Experience, Achievements string
}

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	want := []string{
		"idea-analyzer", "mvp-generator", "landing-page", "email-generator", "competitor-analysis",
		"lean-canvas", "pitch-deck", "founder-bio", "one-pager",
	}
	var got []string
	for _, e := range c.Entries() {
		got = append(got, e.ID)
		var v any
		assert.NoError(t, json.Unmarshal([]byte(e.Schema), &v), "schema of %s must be JSON", e.ID)
		assert.NotEmpty(t, e.Required, e.ID)
	}
	assert.Equal(t, want, got)
}

func TestRender(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	out, err := c.Render("competitor-analysis", input{Idea: "AI bookkeeping for freelancers"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `Conduct a comprehensive competitive analysis for this startup: "AI bookkeeping for freelancers"`))

	out, err = c.Render("email-generator", input{Idea: "x", Traction: "2k MAU", Tone: "humble"})
	require.NoError(t, err)
	assert.Contains(t, out, "Traction and achievements: 2k MAU")
	assert.Contains(t, out, "Tone: humble")
	assert.NotContains(t, out, "Founder information")

	out, err = c.Render("founder-bio", input{Role: "CTO"})
	require.NoError(t, err)
	assert.Contains(t, out, "Write founder bios for a CTO.")
}

func TestRenderUnknown(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	_, err = c.Render("nope", input{})
	assert.ErrorIs(t, err, ErrUnknownEntry)
}

func TestAllowsTone(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	lp, ok := c.Get("landing-page")
	require.True(t, ok)
	assert.True(t, lp.AllowsTone(""))
	assert.True(t, lp.AllowsTone("Luxury"))
	assert.False(t, lp.AllowsTone("humble"))

	idea, _ := c.Get("idea-analyzer")
	assert.False(t, idea.AllowsTone("friendly"))
}

func TestParseRejectsBrokenCatalogs(t *testing.T) {
	cases := map[string]string{
		"empty":          "tools: []\n",
		"unknown field":  "tools:\n  - id: a\n    system: s\n    template: t\n    schema: '{}'\n    colour: red\n",
		"no schema":      "tools:\n  - id: a\n    system: s\n    template: t\n",
		"bad template":   "tools:\n  - id: a\n    system: s\n    template: '{{.Idea'\n    schema: '{}'\n",
		"duplicate id":   "tools:\n  - {id: a, system: s, template: t, schema: '{}'}\n  - {id: a, system: s, template: t, schema: '{}'}\n",
		"missing the id": "tools:\n  - {system: s, template: t, schema: '{}'}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	doc := "tools:\n  - {id: custom, system: s, template: 'Idea: {{.Idea}}', schema: '{\"a\":\"string\"}', required: [idea]}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	out, err := c.Render("custom", input{Idea: "boats"})
	require.NoError(t, err)
	assert.Equal(t, "Idea: boats", out)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
