package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrFieldMissing means the reply was well-formed JSON but lacked the text path.
	// Providers treat it as an empty completion.
	ErrFieldMissing = errors.New("text field missing")

	// ErrMalformedResponse means the reply body could not be interpreted at all.
	ErrMalformedResponse = errors.New("malformed provider response")
)

// StatusError is returned when a provider answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("upstream http %d", e.StatusCode)
	}
	return fmt.Sprintf("upstream http %d: %s", e.StatusCode, e.Body)
}
