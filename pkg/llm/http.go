package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxBodyBytes caps how much of a provider reply is read into memory.
const maxBodyBytes = 4 << 20

// PostJSON marshals payload, POSTs it to endpoint and returns the raw reply body.
// Non-2xx replies become *StatusError.
func PostJSON(ctx context.Context, hc *http.Client, endpoint string, header http.Header, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: snippet(body)}
	}
	return body, nil
}

func snippet(b []byte) string {
	const limit = 512
	s := string(bytes.TrimSpace(b))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
