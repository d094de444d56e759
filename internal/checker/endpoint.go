package checker

import (
	"fmt"
	"net/url"
	"strings"

	sharedErrors "github.com/khanhnv2901/gqlaudit/internal/shared/errors"
)

// ParseEndpoint validates an endpoint URL and returns it normalized. Unlike a scan target, an
// endpoint must already be absolute: probing a guessed scheme would audit a different server
// than the one configured.
func ParseEndpoint(endpoint string) (string, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		return "", sharedErrors.ErrEmptyEndpoint
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %v", sharedErrors.ErrInvalidEndpoint, err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if (scheme != "http" && scheme != "https") || parsed.Hostname() == "" {
		return "", fmt.Errorf("%w: %q", sharedErrors.ErrInvalidEndpoint, endpoint)
	}
	parsed.Scheme = scheme

	return parsed.String(), nil
}
