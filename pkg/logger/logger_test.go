package logger

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestCorrelationIDRoundTrip(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "abc-123")
	if got := CorrelationIDFromContext(ctx); got != "abc-123" {
		t.Fatalf("expected abc-123, got %q", got)
	}

	if got := CorrelationIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty id on bare context, got %q", got)
	}
}

func TestNewCorrelationIDIsRandomUUID(t *testing.T) {
	first := NewCorrelationID()
	second := NewCorrelationID()

	if _, err := uuid.Parse(first); err != nil {
		t.Fatalf("expected uuid, got %q", first)
	}
	if first == second {
		t.Fatalf("expected distinct ids, got %q twice", first)
	}
}
