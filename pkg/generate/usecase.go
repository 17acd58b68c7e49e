package generate

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/artem13815/llmcompare/pkg/llm"
)

// recordTimeout bounds the audit write that follows each aggregation.
const recordTimeout = 3 * time.Second

// UseCase fans a prompt out to every provider and combines the replies.
type UseCase interface {
	Generate(ctx context.Context, prompt string) (CombinedResult, error)
}

type service struct {
	claude  llm.Completer
	gpt4    llm.Completer
	repo    Repository
	timeout time.Duration
	logger  *zap.Logger
	now     func() time.Time
}

// NewService creates the default implementation. repo may be nil to disable
// auditing; a non-positive timeout leaves the caller's context as the only bound.
func NewService(claude, gpt4 llm.Completer, repo Repository, timeout time.Duration, logger *zap.Logger) UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		claude:  claude,
		gpt4:    gpt4,
		repo:    repo,
		timeout: timeout,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *service) Generate(ctx context.Context, prompt string) (CombinedResult, error) {
	started := s.now()
	fanCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		fanCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var out CombinedResult
	g, gctx := errgroup.WithContext(fanCtx)
	g.Go(func() error {
		text, err := s.claude.Complete(gctx, prompt)
		out.ClaudeResponse = text
		return err
	})
	g.Go(func() error {
		text, err := s.gpt4.Complete(gctx, prompt)
		out.GPT4Response = text
		return err
	})
	err := g.Wait()
	if err != nil {
		out = CombinedResult{}
	}

	s.record(ctx, prompt, out, err, s.now().Sub(started))
	if err != nil {
		return CombinedResult{}, err
	}
	return out, nil
}

func (s *service) record(ctx context.Context, prompt string, out CombinedResult, genErr error, took time.Duration) {
	if s.repo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	rec := Generation{
		ID:             uuid.New(),
		Prompt:         prompt,
		ClaudeResponse: out.ClaudeResponse,
		GPT4Response:   out.GPT4Response,
		DurationMS:     took.Milliseconds(),
		CreatedAt:      s.now().UTC(),
	}
	if genErr != nil {
		rec.Error = genErr.Error()
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		s.logger.Warn("failed to record generation", zap.String("id", rec.ID.String()), zap.Error(err))
	}
}
