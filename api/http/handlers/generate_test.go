package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/llmcompare/pkg/generate"
)

type fakeUseCase struct {
	prompts []string
	out     generate.CombinedResult
	err     error
}

func (f *fakeUseCase) Generate(_ context.Context, prompt string) (generate.CombinedResult, error) {
	f.prompts = append(f.prompts, prompt)
	return f.out, f.err
}

func newGenerateApp(uc generate.UseCase) *fiber.App {
	app := fiber.New()
	app.Post("/api/generate-response", NewGenerateHandler(uc, nil).Generate)
	return app
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m), string(b))
	return m
}

func TestGenerateFromQuery(t *testing.T) {
	uc := &fakeUseCase{out: generate.CombinedResult{ClaudeResponse: "hello", GPT4Response: "world"}}
	app := newGenerateApp(uc)

	req := httptest.NewRequest(http.MethodPost, "/api/generate-response?prompt="+url.QueryEscape("what is go?"), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]any{"claude_response": "hello", "gpt4_response": "world"}, decode(t, resp))
	assert.Equal(t, []string{"what is go?"}, uc.prompts)
}

func TestGenerateFromJSONBody(t *testing.T) {
	uc := &fakeUseCase{}
	app := newGenerateApp(uc)

	req := httptest.NewRequest(http.MethodPost, "/api/generate-response", strings.NewReader(`{"prompt":"from body"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]any{"claude_response": "", "gpt4_response": ""}, decode(t, resp))
	assert.Equal(t, []string{"from body"}, uc.prompts)
}

func TestGenerateEmptyQueryPromptIsAccepted(t *testing.T) {
	uc := &fakeUseCase{}
	app := newGenerateApp(uc)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/generate-response?prompt=", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{""}, uc.prompts)
}

func TestGenerateMissingPrompt(t *testing.T) {
	uc := &fakeUseCase{}
	app := newGenerateApp(uc)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/generate-response", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, map[string]any{"error": "prompt is required"}, decode(t, resp))
	assert.Empty(t, uc.prompts)
}

func TestGenerateFailure(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("openai: upstream http 503")}
	app := newGenerateApp(uc)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/generate-response?prompt=x", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, map[string]any{"error": "openai: upstream http 503"}, decode(t, resp))
}
