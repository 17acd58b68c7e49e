package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/llmcompare/pkg/generate"
)

// GenerationRepository stores the audit trail of aggregations.
// The schema is owned by the goose migrations in pkg/storage/postgres.
type GenerationRepository struct {
	pool *pgxpool.Pool
}

func NewGenerationRepository(pool *pgxpool.Pool) *GenerationRepository {
	return &GenerationRepository{pool: pool}
}

func (r *GenerationRepository) Create(ctx context.Context, g generate.Generation) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO generations (id, prompt, claude_response, gpt4_response, error, duration_ms, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, g.ID, g.Prompt, g.ClaudeResponse, g.GPT4Response, g.Error, g.DurationMS, g.CreatedAt)
	return err
}

func (r *GenerationRepository) GetByID(ctx context.Context, id uuid.UUID) (generate.Generation, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, prompt, claude_response, gpt4_response, error, duration_ms, created_at
FROM generations WHERE id = $1
`, id)
	g, err := scanGeneration(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return generate.Generation{}, generate.ErrNotFound
		}
		return generate.Generation{}, err
	}
	return g, nil
}

func (r *GenerationRepository) List(ctx context.Context, limit, offset int) ([]generate.Generation, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, prompt, claude_response, gpt4_response, error, duration_ms, created_at
FROM generations
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []generate.Generation{}
	for rows.Next() {
		g, err := scanGeneration(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, g)
	}
	return res, rows.Err()
}

func scanGeneration(row pgx.Row) (generate.Generation, error) {
	var g generate.Generation
	var created time.Time
	if err := row.Scan(&g.ID, &g.Prompt, &g.ClaudeResponse, &g.GPT4Response, &g.Error, &g.DurationMS, &created); err != nil {
		return generate.Generation{}, err
	}
	g.CreatedAt = created.UTC()
	return g, nil
}
