package pptx2html

import (
	"sync"
	"testing"
)

func TestNewServicePool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		n        int
		wantSize int
	}{
		{name: "requested size", n: 4, wantSize: 4},
		{name: "zero clamps to minimum", n: 0, wantSize: MinPoolSize},
		{name: "negative clamps to minimum", n: -3, wantSize: MinPoolSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pool := NewServicePool(tt.n)
			defer func() { _ = pool.Close() }()

			if pool.Size() != tt.wantSize {
				t.Errorf("Size() = %d, want %d", pool.Size(), tt.wantSize)
			}
		})
	}
}

func TestServicePoolAcquireRelease(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(2)
	defer func() { _ = pool.Close() }()

	a := pool.Acquire()
	b := pool.Acquire()
	if a == nil || b == nil {
		t.Fatal("Acquire() returned nil service")
	}

	pool.Release(a)
	c := pool.Acquire()
	if c != a {
		t.Error("Acquire() after Release() should reuse the released service")
	}
	pool.Release(b)
	pool.Release(c)
}

func TestServicePoolConcurrentUse(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(3)
	defer func() { _ = pool.Close() }()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc := pool.Acquire()
			pool.Release(svc)
		}()
	}
	wg.Wait()
}

func TestServicePoolAcquireAfterClosePanics(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(1)
	if err := pool.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("Acquire() on a closed pool should panic, got none")
		}
	}()
	pool.Acquire()
}

func TestServicePoolCloseIdempotent(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(1)
	if err := pool.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := pool.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
}

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	t.Run("explicit value wins", func(t *testing.T) {
		t.Parallel()

		if got := ResolvePoolSize(5); got != 5 {
			t.Errorf("ResolvePoolSize(5) = %d, want 5", got)
		}
	})

	t.Run("auto stays within bounds", func(t *testing.T) {
		t.Parallel()

		got := ResolvePoolSize(0)
		if got < MinPoolSize || got > MaxPoolSize {
			t.Errorf("ResolvePoolSize(0) = %d, want within [%d, %d]", got, MinPoolSize, MaxPoolSize)
		}
	})
}
