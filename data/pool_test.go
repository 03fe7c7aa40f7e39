package data

import (
	"context"
	"testing"
)

func TestNewPoolFailureIsSticky(t *testing.T) {
	// an unparseable connection string fails pool construction immediately,
	// before any connection attempt
	t.Setenv("DB_CONN", "://not-a-connection-string")

	if _, err := NewPool(context.Background()); err == nil {
		t.Fatal("expected pool creation to fail")
	}

	pool, err := NewPool(context.Background())
	if err == nil {
		t.Fatal("later calls must keep reporting the original failure")
	}
	if pool != nil {
		t.Error("no pool should be handed out after a failed init")
	}
}
