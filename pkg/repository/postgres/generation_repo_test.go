package postgres

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/founderkit/pkg/tools"
)

func TestFillGeneration(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("MSK", 3*3600))
	base := tools.Generation{ID: uuid.New()}

	g, err := fillGeneration(base, "lean-canvas", []byte(`{"idea":"pet food"}`), []byte(`{"problem":["x"]}`), created)
	require.NoError(t, err)
	assert.Equal(t, tools.LeanCanvasBuilder, g.Tool)
	assert.Equal(t, "pet food", g.Input.Idea)
	assert.JSONEq(t, `{"problem":["x"]}`, string(g.Result))
	assert.Equal(t, time.UTC, g.CreatedAt.Location())

	_, err = fillGeneration(base, "lean-canvas", []byte(`{"idea":`), []byte(`{}`), created)
	assert.ErrorContains(t, err, "decode generation input")

	_, err = fillGeneration(base, "lean-canvas", []byte(`{}`), []byte(`not json`), created)
	assert.Error(t, err)
}
