package generate

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// CombinedResult holds both providers' text for one prompt.
// Both fields are always present, possibly empty.
type CombinedResult struct {
	ClaudeResponse string `json:"claude_response"`
	GPT4Response   string `json:"gpt4_response"`
}

// Generation is the audit record of one aggregation attempt.
type Generation struct {
	ID             uuid.UUID `json:"id"`
	Prompt         string    `json:"prompt"`
	ClaudeResponse string    `json:"claude_response"`
	GPT4Response   string    `json:"gpt4_response"`
	Error          string    `json:"error,omitempty"`
	DurationMS     int64     `json:"duration_ms"`
	CreatedAt      time.Time `json:"created_at"`
}

var ErrNotFound = errors.New("generation not found")

// Repository persists generations.
type Repository interface {
	Create(ctx context.Context, g Generation) error
	GetByID(ctx context.Context, id uuid.UUID) (Generation, error)
	List(ctx context.Context, limit, offset int) ([]Generation, error)
}
