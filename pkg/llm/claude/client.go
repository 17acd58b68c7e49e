package claude

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/artem13815/llmcompare/pkg/llm"
)

const defaultURL = "https://api.claude.ai/call"

// Client calls the Claude prompt endpoint and returns its "response" field.
type Client struct {
	URL    string
	APIKey string
	httpDo *http.Client
	logger *zap.Logger
}

// New builds a client. An empty url falls back to the public endpoint,
// an empty apiKey sends no Authorization header.
func New(url, apiKey string, hc *http.Client, logger *zap.Logger) *Client {
	if url == "" {
		url = defaultURL
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{URL: url, APIKey: apiKey, httpDo: hc, logger: logger}
}

type callRequest struct {
	Prompt string `json:"prompt"`
}

func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	var header http.Header
	if c.APIKey != "" {
		header = http.Header{"Authorization": {"Bearer " + c.APIKey}}
	}
	body, err := llm.PostJSON(ctx, c.httpDo, c.URL, header, callRequest{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("claude: %w", err)
	}
	text, err := llm.ExtractString(body, "response")
	if errors.Is(err, llm.ErrFieldMissing) {
		c.logger.Warn("claude reply has no text, using empty response", zap.Error(err))
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("claude: %w", err)
	}
	return text, nil
}
