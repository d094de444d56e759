package graphql

import (
	"bytes"
	"encoding/json"
	"strconv"
	"unicode/utf8"

	consts "github.com/khanhnv2901/gqlaudit/internal/shared/constants"
)

// Envelope is the standard GraphQL response shape.
type Envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []Error         `json:"errors,omitempty"`
}

// Error is one entry of the "errors" array.
type Error struct {
	Message string        `json:"message"`
	Path    []interface{} `json:"path,omitempty"`
}

// DecodeData unmarshals the "data" member of body into v. It reports false when body is not
// a JSON object or carries no data.
func DecodeData(body []byte, v interface{}) bool {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return false
	}
	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return false
	}
	return json.Unmarshal(env.Data, v) == nil
}

// RawSnippet renders body for inclusion in a message: compact JSON when the body is JSON,
// otherwise the body as a quoted JSON string. The result is capped at RawCaptureLimitBytes,
// cut on a rune boundary.
func RawSnippet(body []byte) string {
	var out string
	var buf bytes.Buffer
	if len(bytes.TrimSpace(body)) > 0 && json.Compact(&buf, body) == nil {
		out = buf.String()
	} else {
		out = strconv.Quote(string(body))
	}
	if len(out) > consts.RawCaptureLimitBytes {
		n := consts.RawCaptureLimitBytes
		for n > 0 && !utf8.RuneStart(out[n]) {
			n--
		}
		out = out[:n] + "..."
	}
	return out
}
