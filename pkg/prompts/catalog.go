// Package prompts holds the generator definitions: system prompt, JSON schema
// and prompt template for every tool. Definitions are data, loaded from YAML.
package prompts

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"go.yaml.in/yaml/v4"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Entry describes one generator.
type Entry struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Required    []string `yaml:"required"`
	Tones       []string `yaml:"tones"`
	System      string   `yaml:"system"`
	Template    string   `yaml:"template"`
	Schema      string   `yaml:"schema"`

	tmpl *template.Template
}

type file struct {
	Tools []Entry `yaml:"tools"`
}

// Catalog is an immutable, ordered set of entries.
type Catalog struct {
	entries []Entry
	byID    map[string]int
}

var ErrUnknownEntry = errors.New("unknown prompt entry")

// Default parses the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(bytes.NewReader(defaultCatalog))
}

// Load reads the catalog from path, or the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open prompts file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes and validates a YAML catalog.
func Parse(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc file
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode prompts: %w", err)
	}
	if len(doc.Tools) == 0 {
		return nil, errors.New("prompts: catalog is empty")
	}
	c := &Catalog{byID: make(map[string]int, len(doc.Tools))}
	for i := range doc.Tools {
		e := doc.Tools[i]
		e.ID = strings.TrimSpace(e.ID)
		switch {
		case e.ID == "":
			return nil, fmt.Errorf("prompts: entry #%d has no id", i)
		case strings.TrimSpace(e.System) == "":
			return nil, fmt.Errorf("prompts: %s: system prompt is empty", e.ID)
		case strings.TrimSpace(e.Template) == "":
			return nil, fmt.Errorf("prompts: %s: template is empty", e.ID)
		case strings.TrimSpace(e.Schema) == "":
			return nil, fmt.Errorf("prompts: %s: schema is empty", e.ID)
		}
		if _, dup := c.byID[e.ID]; dup {
			return nil, fmt.Errorf("prompts: duplicate id %q", e.ID)
		}
		t, err := template.New(e.ID).Option("missingkey=error").Parse(e.Template)
		if err != nil {
			return nil, fmt.Errorf("prompts: %s: %w", e.ID, err)
		}
		e.tmpl = t
		if e.Name == "" {
			e.Name = e.ID
		}
		c.byID[e.ID] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// Entries returns the entries in catalog order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Catalog) Get(id string) (Entry, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Render executes the entry's template against data.
func (c *Catalog) Render(id string, data any) (string, error) {
	e, ok := c.Get(id)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownEntry, id)
	}
	var buf bytes.Buffer
	if err := e.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", id, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// AllowsTone reports whether tone is accepted by the entry. Entries without a
// tone list accept only the empty tone.
func (e Entry) AllowsTone(tone string) bool {
	if tone == "" {
		return true
	}
	for _, t := range e.Tones {
		if strings.EqualFold(t, tone) {
			return true
		}
	}
	return false
}
