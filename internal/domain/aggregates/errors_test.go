package aggregates

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCodes(t *testing.T) {
	err := NewError(CodeNotFound, "Workflow.Test", "idea not found", nil)
	if !IsCode(err, CodeNotFound) {
		t.Fatal("expected CodeNotFound")
	}
	if IsCode(err, CodeConflict) {
		t.Fatal("did not expect CodeConflict")
	}
	if CodeOf(err) != CodeNotFound {
		t.Fatalf("CodeOf = %q", CodeOf(err))
	}
}

func TestErrorWrappedDetection(t *testing.T) {
	inner := NewError(CodeConflict, "Workflow.Test", "duplicate", nil)
	outer := fmt.Errorf("outer: %w", inner)
	if !IsCode(outer, CodeConflict) {
		t.Fatal("wrapped aggregate error not detected")
	}
	if CodeOf(errors.New("plain")) != "" {
		t.Fatal("plain error should have no code")
	}
}

func TestPreconditionReasons(t *testing.T) {
	reasons := []string{"production is blocked", "content title must not be blank"}
	err := NewPreconditionError("Workflow.Test", reasons)
	if !IsCode(err, CodePreconditionFailed) {
		t.Fatal("expected CodePreconditionFailed")
	}
	got := ReasonsOf(err)
	if len(got) != 2 || got[0] != reasons[0] {
		t.Fatalf("ReasonsOf = %v", got)
	}
	// message falls back to the joined reasons
	if err.Error() == "" {
		t.Fatal("expected non-empty error string")
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(CodeInternal, "op", nil) != nil {
		t.Fatal("Wrap(nil) must be nil")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewError(CodeInternal, "op", "boom", cause)
	if !errors.Is(err, cause) {
		t.Fatal("cause must be reachable via errors.Is")
	}
}
