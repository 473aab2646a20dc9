package mongodb

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestConnectValidation(t *testing.T) {
	if _, err := Connect(Config{}, zap.NewNop()); err == nil {
		t.Fatal("expected error for empty URI")
	}
	if _, err := Connect(Config{URI: "mongodb://localhost:27017"}, zap.NewNop()); err == nil {
		t.Fatal("expected error for empty database")
	}
}

func TestWithTimeoutAddsDeadline(t *testing.T) {
	c := &Client{timeout: 2 * time.Second}

	ctx, cancel := c.withTimeout(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatal("expected a deadline from the operation timeout")
	}
	if remaining := time.Until(deadline); remaining <= 0 || remaining > 2*time.Second {
		t.Fatalf("unexpected remaining timeout: %v", remaining)
	}
}

func TestWithTimeoutPreservesCallerDeadline(t *testing.T) {
	c := &Client{timeout: 2 * time.Second}
	parent, parentCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer parentCancel()

	ctx, cancel := c.withTimeout(parent)
	defer cancel()

	parentDeadline, _ := parent.Deadline()
	gotDeadline, _ := ctx.Deadline()
	if !gotDeadline.Equal(parentDeadline) {
		t.Fatalf("caller deadline not preserved: got %v want %v", gotDeadline, parentDeadline)
	}
}
