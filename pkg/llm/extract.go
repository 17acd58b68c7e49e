package llm

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// ExtractString reads the string at a gjson path inside a JSON object body.
// A missing path yields ErrFieldMissing; anything that is not an object, or a
// value of another type, yields ErrMalformedResponse.
func ExtractString(body []byte, path string) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("%w: invalid json", ErrMalformedResponse)
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return "", fmt.Errorf("%w: expected json object", ErrMalformedResponse)
	}
	v := root.Get(path)
	if !v.Exists() {
		return "", fmt.Errorf("%w: %s", ErrFieldMissing, path)
	}
	if v.Type != gjson.String {
		return "", fmt.Errorf("%w: %s is %s, want string", ErrMalformedResponse, path, v.Type)
	}
	return v.Str, nil
}
