package cache

import (
	"context"
	"testing"
	"time"
)

// A Redis with no client is the degraded mode NewRedis falls back to
// when the server is unreachable.
func TestDegradedModeIsPassThrough(t *testing.T) {
	r := &Redis{}
	ctx := context.Background()

	ok, err := r.SetIfNotExists(ctx, "aggregate:lock:q=engineer", "1", time.Minute)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !ok {
		t.Fatalf("degraded SetIfNotExists must report acquired so callers do real work")
	}

	var out []string
	hit, err := r.GetJSON(ctx, "jobs:search:abc", &out)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if hit {
		t.Fatalf("degraded GetJSON must miss")
	}

	if err := r.SetJSON(ctx, "jobs:search:abc", []string{"x"}, time.Minute); err != nil {
		t.Fatalf("degraded SetJSON must be a no-op, got %v", err)
	}
	if err := r.Delete(ctx, "aggregate:lock:q=engineer"); err != nil {
		t.Fatalf("degraded Delete must be a no-op, got %v", err)
	}
	if err := r.InvalidateSearch(ctx, "engineer"); err != nil {
		t.Fatalf("degraded InvalidateSearch must be a no-op, got %v", err)
	}
	if err := r.Ping(ctx); err == nil {
		t.Fatalf("degraded Ping must report unhealthy")
	}
}

func TestNilReceiverIsSafe(t *testing.T) {
	var r *Redis
	ok, err := r.SetIfNotExists(context.Background(), "k", "1", time.Minute)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !ok {
		t.Fatalf("nil receiver must behave like degraded mode")
	}
}
