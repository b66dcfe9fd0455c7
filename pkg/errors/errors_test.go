package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestWithCause(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := WithCause(ErrCredentialsInvalid, cause)

	if err.Error() != ErrCredentialsInvalid.Error() {
		t.Errorf("Expected message %q, got %q", ErrCredentialsInvalid.Error(), err.Error())
	}
	if !errors.Is(err, ErrCredentialsInvalid) {
		t.Errorf("Expected error to match sentinel")
	}
	if errors.Is(err, ErrCredentialsNotFound) {
		t.Errorf("Expected error not to match another sentinel")
	}
	if !errors.Is(err, cause) {
		t.Errorf("Expected error to match its cause")
	}
	if Cause(err) != cause {
		t.Errorf("Expected cause %v, got %v", cause, Cause(err))
	}

	wrapped := fmt.Errorf("notify: %w", err)
	if !errors.Is(wrapped, ErrCredentialsInvalid) || Cause(wrapped) != cause {
		t.Errorf("Expected wrapped error to keep sentinel and cause")
	}
}

func TestWithNilCause(t *testing.T) {
	if err := WithCause(ErrDeliveryFailed, nil); err != ErrDeliveryFailed {
		t.Errorf("Expected the sentinel itself, got %v", err)
	}
	if Cause(ErrDeliveryFailed) != nil {
		t.Errorf("Expected no cause on a bare sentinel")
	}
}

func TestWithCauseFormat(t *testing.T) {
	err := WithCause(ErrCommitNotFound, fmt.Errorf("422 No commit found"))
	want := ErrCommitNotFound.Error() + ": 422 No commit found"
	if got := fmt.Sprintf("%v", err); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if got := fmt.Sprintf("%s", err); got != ErrCommitNotFound.Error() {
		t.Errorf("Expected %q, got %q", ErrCommitNotFound.Error(), got)
	}
}
