package llm

import "context"

// Completer is a single-prompt text completion provider.
// Implementations issue exactly one upstream call per invocation.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
