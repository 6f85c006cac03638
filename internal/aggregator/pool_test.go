package aggregator

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"
)

func TestWorkerPool_CollectsAllResults(t *testing.T) {
	pool := NewWorkerPool(3, 8)
	results := pool.Run(context.Background())

	boards := []string{"a", "b", "c", "d", "e"}
	for _, b := range boards {
		b := b
		pool.Submit(func(context.Context) Result {
			return Result{Board: b, Count: 1}
		})
	}
	pool.Close()

	got := make([]string, 0, len(boards))
	for res := range results {
		got = append(got, res.Board)
	}
	sort.Strings(got)

	if len(got) != len(boards) {
		t.Fatalf("expected %d results, got %d", len(boards), len(got))
	}
	for i, b := range boards {
		if got[i] != b {
			t.Fatalf("missing result for board %q", b)
		}
	}
}

func TestWorkerPool_ErrorsDoNotStopOtherTasks(t *testing.T) {
	pool := NewWorkerPool(2, 4)
	results := pool.Run(context.Background())

	pool.Submit(func(context.Context) Result {
		return Result{Board: "bad", Err: errors.New("boom")}
	})
	pool.Submit(func(context.Context) Result {
		return Result{Board: "good", Count: 3}
	})
	pool.Close()

	var okCount, errCount int
	for res := range results {
		if res.Err != nil {
			errCount++
		} else {
			okCount++
		}
	}
	if okCount != 1 || errCount != 1 {
		t.Fatalf("expected 1 ok and 1 err, got ok=%d err=%d", okCount, errCount)
	}
}

func TestWorkerPool_ContextCancelStopsWorkers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewWorkerPool(1, 0)
	results := pool.Run(ctx)

	cancel()

	select {
	case _, ok := <-results:
		if ok {
			t.Fatalf("expected closed channel without results")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("pool did not shut down after cancel")
	}
}
