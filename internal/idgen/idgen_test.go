package idgen

import (
	"strings"
	"testing"
)

func TestRunID(t *testing.T) {
	id := RunID()
	if !strings.HasPrefix(id, "run_") || len(id) != len("run_")+8 {
		t.Errorf("RunID() = %q, want run_ + 8 chars", id)
	}
	if RunID() == id {
		t.Error("RunID() returned the same id twice")
	}
}

func TestNewFuncStub(t *testing.T) {
	orig := NewFunc
	t.Cleanup(func() { NewFunc = orig })
	NewFunc = func() string { return "fixed" }

	if got := RunID(); got != "run_fixed" {
		t.Errorf("RunID() = %q, want run_fixed", got)
	}
}
