package cmd

import (
	"errors"
	"testing"

	sharedErrors "github.com/khanhnv2901/gqlaudit/internal/shared/errors"
)

func TestInputError(t *testing.T) {
	err := &InputError{Name: "subgraph", Value: "yes"}
	want := "Input `subgraph` must be `true` or `false`"
	if err.Error() != want {
		t.Fatalf("expected %s, got %s", want, err.Error())
	}
	if !errors.Is(err, sharedErrors.ErrInvalidBoolean) {
		t.Fatal("expected InputError to wrap ErrInvalidBoolean")
	}
}

func TestViolationsError(t *testing.T) {
	err := &ViolationsError{Endpoint: "https://api.example.com/graphql", Violations: []string{"a", "b"}}
	want := "endpoint failed one or more checks: 2 violation(s) for https://api.example.com/graphql"
	if err.Error() != want {
		t.Fatalf("expected %s, got %s", want, err.Error())
	}
	if !errors.Is(err, sharedErrors.ErrViolationsFound) {
		t.Fatal("expected ViolationsError to wrap ErrViolationsFound")
	}
}
