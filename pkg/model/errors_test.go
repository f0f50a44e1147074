package model

import "testing"

func TestAPIError_Error(t *testing.T) {
	err := &APIError{Code: ErrNotFound, Message: "Discipline 'xyz' not found"}
	want := "NOT_FOUND: Discipline 'xyz' not found"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Discipline", "lottery")
	if err.Code != ErrNotFound {
		t.Errorf("Code = %q, want %q", err.Code, ErrNotFound)
	}
	if err.Message != "Discipline 'lottery' not found" {
		t.Errorf("Message = %q, want %q", err.Message, "Discipline 'lottery' not found")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("Invalid request",
		FieldError{Field: "processes[0].duration", Message: "must be >= 0"},
		FieldError{Field: "quantum", Message: "must be >= 1"},
	)
	if err.Code != ErrValidation {
		t.Errorf("Code = %q, want %q", err.Code, ErrValidation)
	}
	if len(err.Details) != 2 {
		t.Errorf("Details length = %d, want 2", len(err.Details))
	}
}

func TestInvalidTransitionError(t *testing.T) {
	err := &InvalidTransitionError{PID: 3, From: ProcessStateDone, To: ProcessStateRunning}
	want := "invalid process state transition: DONE → RUNNING (pid 3)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
