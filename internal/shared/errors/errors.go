package errors

import "errors"

// Input errors
var (
	// Endpoint errors
	ErrEmptyEndpoint   = errors.New("endpoint cannot be empty")
	ErrInvalidEndpoint = errors.New("endpoint must be an absolute http(s) URL")

	// Credential errors
	ErrMalformedCredential = errors.New("credential header must look like `key: value`")

	// Flag errors
	ErrInvalidBoolean      = errors.New("value must be `true` or `false`")
	ErrInvalidOutputFormat = errors.New("unsupported output format")
	ErrInvalidTimeout      = errors.New("timeout must be positive")
)

// Transport errors
var (
	ErrResponseTooLarge = errors.New("response body too large")
)

// Output errors
var (
	ErrViolationsFound     = errors.New("endpoint failed one or more checks")
	ErrOutputFileWrite     = errors.New("failed to write output file")
	ErrSerializationFailed = errors.New("serialization failed")
)
