package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
}

func TestWorkerPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewWorkerPool(n)
		expected := runtime.GOMAXPROCS(0)
		if pool.Workers() != expected {
			t.Errorf("NewWorkerPool(%d).Workers() = %d, want %d (GOMAXPROCS)", n, pool.Workers(), expected)
		}
		pool.Close()
	}
}

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	numTasks := 100

	work := make([]func(), numTasks)
	for i := range work {
		work[i] = func() {
			counter.Add(1)
		}
	}

	pool.ExecuteAll(work)

	if counter.Load() != int64(numTasks) {
		t.Errorf("counter = %d, want %d", counter.Load(), numTasks)
	}
}

func TestWorkerPool_ExecuteAll_AllItemsRun(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var mu sync.Mutex
	results := make([]int, 0, 10)

	work := make([]func(), 10)
	for i := range work {
		idx := i
		work[i] = func() {
			mu.Lock()
			results = append(results, idx)
			mu.Unlock()
		}
	}

	pool.ExecuteAll(work)

	// Execution order may vary; every index must appear exactly once.
	if len(results) != 10 {
		t.Fatalf("results length = %d, want 10", len(results))
	}
	seen := make(map[int]bool)
	for _, v := range results {
		seen[v] = true
	}
	for i := 0; i < 10; i++ {
		if !seen[i] {
			t.Errorf("missing index %d in results", i)
		}
	}
}

func TestWorkerPool_ExecuteAll_Empty(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	// Should not panic or block
	pool.ExecuteAll(nil)
	pool.ExecuteAll([]func(){})
}

func TestWorkerPool_ExecuteAll_MoreTasksThanQueueSpace(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	var counter atomic.Int64
	numTasks := 1000 // far beyond queue capacity; submission must not deadlock

	work := make([]func(), numTasks)
	for i := range work {
		work[i] = func() {
			counter.Add(1)
		}
	}

	pool.ExecuteAll(work)

	if counter.Load() != int64(numTasks) {
		t.Errorf("counter = %d, want %d", counter.Load(), numTasks)
	}
}

func TestWorkerPool_CloseTwice(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close() // must not panic
}

func TestWorkerPool_ExecuteAfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	var counter atomic.Int64
	pool.ExecuteAll([]func(){func() { counter.Add(1) }})

	if counter.Load() != 0 {
		t.Error("closed pool should not execute work")
	}
}
