package executor

import (
	"context"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	ctx := context.Background()
	exec := New()

	out, err := exec.Execute(ctx, "sh", "-c", "echo hello")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != "hello" {
		t.Errorf("Execute() output = %q, want hello", out)
	}
}

func TestExecuteFailureIncludesStderr(t *testing.T) {
	ctx := context.Background()
	exec := New()

	_, err := exec.Execute(ctx, "sh", "-c", "echo boom >&2; exit 1")
	if err == nil {
		t.Fatal("Execute() should return error for nonzero exit")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("Execute() error should contain stderr, got: %v", err)
	}
}

func TestExecuteMissingBinary(t *testing.T) {
	ctx := context.Background()
	exec := New()

	_, err := exec.Execute(ctx, "definitely-not-a-real-binary")
	if err == nil {
		t.Error("Execute() should return error for missing binary")
	}
}
