package cmd

import (
	"fmt"

	sharedErrors "github.com/khanhnv2901/gqlaudit/internal/shared/errors"
)

// InputError reports a boolean-looking input that is neither `true` nor `false`.
type InputError struct {
	Name  string
	Value string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("Input `%s` must be `true` or `false`", e.Name)
}

func (e *InputError) Unwrap() error {
	return sharedErrors.ErrInvalidBoolean
}

// ViolationsError is returned by the check command when the endpoint failed any check, so the
// process exits non-zero.
type ViolationsError struct {
	Endpoint   string
	Violations []string
}

func (e *ViolationsError) Error() string {
	return fmt.Sprintf("%s: %d violation(s) for %s", sharedErrors.ErrViolationsFound, len(e.Violations), e.Endpoint)
}

func (e *ViolationsError) Unwrap() error {
	return sharedErrors.ErrViolationsFound
}
