package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestSentinelMatching(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"missing field", MissingField("session", "session_id"), ErrMissingField},
		{"type mismatch", TypeMismatch("message", "token_count", "integer", "12"), ErrTypeMismatch},
		{"dimension mismatch", DimensionMismatch("kb", 1536, 384), ErrDimensionMismatch},
		{"server assigned", ServerAssigned("session", "uuid"), ErrServerAssignedField},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.sentinel) {
				t.Fatalf("expected %v to match its sentinel", tc.err)
			}
			for _, other := range cases {
				if other.sentinel != tc.sentinel && errors.Is(tc.err, other.sentinel) {
					t.Fatalf("%v must not match %v", tc.err, other.sentinel)
				}
			}
		})
	}
}

func TestMessagesIdentifyEntityAndField(t *testing.T) {
	t.Parallel()
	err := MissingField("summary", "token_count")
	for _, want := range []string{"summary", "token_count"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q must mention %q", err.Error(), want)
		}
	}

	err = TypeMismatch("document", "embedding", "sequence of numbers", "0.1")
	for _, want := range []string{"document", "embedding", "sequence of numbers", "string"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q must mention %q", err.Error(), want)
		}
	}
}
