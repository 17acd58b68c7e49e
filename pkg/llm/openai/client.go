package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/artem13815/llmcompare/pkg/llm"
)

const (
	defaultURL   = "https://api.openai.com/v4/completions"
	defaultModel = "text-davinci-003"

	temperature = 0.7
	maxTokens   = 256
)

// Client is a minimal OpenAI text completions client.
type Client struct {
	APIKey string
	URL    string
	Model  string
	httpDo *http.Client
	logger *zap.Logger
}

func New(apiKey, url, model string, hc *http.Client, logger *zap.Logger) *Client {
	if url == "" {
		url = defaultURL
	}
	if model == "" {
		model = defaultModel
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{APIKey: apiKey, URL: url, Model: model, httpDo: hc, logger: logger}
}

type completionsRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

// Complete returns the text of the first choice, or "" when no choice came back.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.APIKey == "" {
		return "", errors.New("openai: api key is empty")
	}
	header := http.Header{"Authorization": {"Bearer " + c.APIKey}}
	body, err := llm.PostJSON(ctx, c.httpDo, c.URL, header, completionsRequest{
		Model:       c.Model,
		Prompt:      prompt,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	text, err := llm.ExtractString(body, "choices.0.text")
	if errors.Is(err, llm.ErrFieldMissing) {
		c.logger.Warn("openai reply has no choices text, using empty response", zap.Error(err))
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	return text, nil
}
