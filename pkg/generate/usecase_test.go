package generate

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type completerFunc func(ctx context.Context, prompt string) (string, error)

func (f completerFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func fixed(text string) completerFunc {
	return func(context.Context, string) (string, error) { return text, nil }
}

type memRepo struct {
	mu      sync.Mutex
	items   []Generation
	failErr error
}

func (r *memRepo) Create(_ context.Context, g Generation) error {
	if r.failErr != nil {
		return r.failErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, g)
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id uuid.UUID) (Generation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range r.items {
		if g.ID == id {
			return g, nil
		}
	}
	return Generation{}, ErrNotFound
}

func (r *memRepo) List(_ context.Context, limit, offset int) ([]Generation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items, nil
}

func TestGenerateCombinesBothProviders(t *testing.T) {
	var gotA, gotB string
	a := completerFunc(func(_ context.Context, p string) (string, error) { gotA = p; return "hello", nil })
	b := completerFunc(func(_ context.Context, p string) (string, error) { gotB = p; return "world", nil })

	out, err := NewService(a, b, nil, time.Second, nil).Generate(context.Background(), "compare us")
	require.NoError(t, err)
	assert.Equal(t, CombinedResult{ClaudeResponse: "hello", GPT4Response: "world"}, out)
	assert.Equal(t, "compare us", gotA)
	assert.Equal(t, "compare us", gotB)
}

func TestGenerateKeepsEmptyResponses(t *testing.T) {
	out, err := NewService(fixed(""), fixed("world"), nil, time.Second, nil).Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, CombinedResult{ClaudeResponse: "", GPT4Response: "world"}, out)
}

func TestGenerateRunsProvidersConcurrently(t *testing.T) {
	var started sync.WaitGroup
	started.Add(2)
	both := make(chan struct{})
	go func() { started.Wait(); close(both) }()

	wait := func(text string) completerFunc {
		return func(ctx context.Context, _ string) (string, error) {
			started.Done()
			select {
			case <-both:
				return text, nil
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}

	out, err := NewService(wait("a"), wait("b"), nil, 2*time.Second, nil).Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, CombinedResult{ClaudeResponse: "a", GPT4Response: "b"}, out)
}

func TestGenerateFailsWithoutPartialResult(t *testing.T) {
	boom := errors.New("claude: connection refused")
	failing := completerFunc(func(context.Context, string) (string, error) { return "", boom })
	blocking := completerFunc(func(ctx context.Context, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})

	out, err := NewService(failing, blocking, nil, 5*time.Second, nil).Generate(context.Background(), "p")
	require.ErrorIs(t, err, boom)
	assert.Equal(t, CombinedResult{}, out)

	out, err = NewService(fixed("hello"), failing, nil, 5*time.Second, nil).Generate(context.Background(), "p")
	require.ErrorIs(t, err, boom)
	assert.Equal(t, CombinedResult{}, out)
}

func TestGenerateTimeout(t *testing.T) {
	blocking := completerFunc(func(ctx context.Context, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})

	_, err := NewService(blocking, blocking, nil, 20*time.Millisecond, nil).Generate(context.Background(), "p")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGenerateIsIdempotent(t *testing.T) {
	svc := NewService(fixed("hello"), fixed("world"), nil, time.Second, nil)

	first, err := svc.Generate(context.Background(), "same")
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), "same")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateRecordsOutcome(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(fixed("hello"), fixed("world"), repo, time.Second, nil)

	_, err := svc.Generate(context.Background(), "audited")
	require.NoError(t, err)

	failing := completerFunc(func(context.Context, string) (string, error) { return "", errors.New("openai: upstream http 500") })
	_, err = NewService(fixed("hello"), failing, repo, time.Second, nil).Generate(context.Background(), "broken")
	require.Error(t, err)

	require.Len(t, repo.items, 2)
	ok := repo.items[0]
	assert.NotEqual(t, uuid.Nil, ok.ID)
	assert.Equal(t, "audited", ok.Prompt)
	assert.Equal(t, "hello", ok.ClaudeResponse)
	assert.Equal(t, "world", ok.GPT4Response)
	assert.Empty(t, ok.Error)
	assert.False(t, ok.CreatedAt.IsZero())

	bad := repo.items[1]
	assert.Equal(t, "broken", bad.Prompt)
	assert.Equal(t, "openai: upstream http 500", bad.Error)
	assert.Empty(t, bad.ClaudeResponse)
}

func TestGenerateIgnoresRecordFailure(t *testing.T) {
	repo := &memRepo{failErr: errors.New("db down")}

	out, err := NewService(fixed("hello"), fixed("world"), repo, time.Second, nil).Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "hello", out.ClaudeResponse)
}
