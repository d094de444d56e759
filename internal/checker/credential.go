package checker

import (
	"net/http"
	"strings"

	sharedErrors "github.com/khanhnv2901/gqlaudit/internal/shared/errors"
)

// Credential is the single header attached to authenticated probes.
type Credential struct {
	Key   string
	Value string
}

// ParseCredential splits a "key: value" header on its first colon. A missing colon, empty key
// or empty value is ErrMalformedCredential.
func ParseCredential(raw string) (Credential, error) {
	key, value, found := strings.Cut(raw, ":")
	if !found {
		return Credential{}, sharedErrors.ErrMalformedCredential
	}
	cred := Credential{Key: strings.TrimSpace(key), Value: strings.TrimSpace(value)}
	if cred.Key == "" || cred.Value == "" {
		return Credential{}, sharedErrors.ErrMalformedCredential
	}
	return cred, nil
}

// Apply returns a copy of headers with the credential set.
func (c Credential) Apply(headers http.Header) http.Header {
	out := headers.Clone()
	if out == nil {
		out = http.Header{}
	}
	out.Set(c.Key, c.Value)
	return out
}
