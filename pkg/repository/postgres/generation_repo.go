package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/founderkit/pkg/tools"
)

// GenerationRepository сохраняет историю генераций пользователей.
type GenerationRepository struct {
	pool *pgxpool.Pool
}

func NewGenerationRepository(pool *pgxpool.Pool) *GenerationRepository {
	return &GenerationRepository{pool: pool}
}

func (r *GenerationRepository) Create(ctx context.Context, g tools.Generation) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now().UTC()
	}
	inputJSON, err := json.Marshal(g.Input)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO generations (id, owner_id, tool, input, result, model, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, g.ID, g.OwnerID, string(g.Tool), inputJSON, []byte(g.Result), g.Model, g.CreatedAt)
	return err
}

const generationColumns = `id, owner_id, tool, input, result, model, created_at`

func (r *GenerationRepository) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (tools.Generation, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+generationColumns+`
FROM generations WHERE id = $1 AND owner_id = $2
`, id, ownerID)
	g, err := scanGeneration(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return tools.Generation{}, tools.ErrNotFound
	}
	return g, err
}

func (r *GenerationRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, tool tools.ID, limit, offset int) ([]tools.Generation, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+generationColumns+`
FROM generations
WHERE owner_id = $1 AND ($2::text = '' OR tool = $2::text)
ORDER BY created_at DESC
LIMIT $3 OFFSET $4
`, ownerID, string(tool), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]tools.Generation, 0, limit)
	for rows.Next() {
		g, err := scanGeneration(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *GenerationRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM generations WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return tools.ErrNotFound
	}
	return nil
}

func scanGeneration(row pgx.Row) (tools.Generation, error) {
	var (
		g           tools.Generation
		tool        string
		inputBytes  []byte
		resultBytes []byte
		created     time.Time
	)
	if err := row.Scan(&g.ID, &g.OwnerID, &tool, &inputBytes, &resultBytes, &g.Model, &created); err != nil {
		return tools.Generation{}, err
	}
	return fillGeneration(g, tool, inputBytes, resultBytes, created)
}

// fillGeneration decodes the jsonb columns of a generations row.
func fillGeneration(g tools.Generation, tool string, input, result []byte, created time.Time) (tools.Generation, error) {
	g.Tool = tools.ID(tool)
	if err := json.Unmarshal(input, &g.Input); err != nil {
		return tools.Generation{}, fmt.Errorf("decode generation input: %w", err)
	}
	if !json.Valid(result) {
		return tools.Generation{}, fmt.Errorf("decode generation %s result: invalid JSON", g.ID)
	}
	g.Result = json.RawMessage(result)
	g.CreatedAt = created.UTC()
	return g, nil
}

var _ tools.Repository = (*GenerationRepository)(nil)
