package bluenoise

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"dithermap/pkg/core"
)

func TestCacheGeneratesOncePerKey(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	cache := NewCache(WithGenerator(func(size int, seed int64) (*core.RankGrid, error) {
		calls.Add(1)
		<-release
		return Generate(size, seed)
	}))

	const callers = 16
	var wg sync.WaitGroup
	grids := make([]*core.RankGrid, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			grids[i], errs[i] = cache.Get(8, 3)
		}(i)
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := range grids {
		if errs[i] != nil {
			t.Fatalf("caller %d: %v", i, errs[i])
		}
		if grids[i] != grids[0] {
			t.Fatalf("caller %d received a different grid instance", i)
		}
	}

	if _, err := cache.Get(8, 3); err != nil {
		t.Fatal(err)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("generator ran %d times, want 1", got)
	}
	if got := cache.Generations(); got != 1 {
		t.Fatalf("Generations() = %d, want 1", got)
	}
}

func TestCacheSeparatesKeys(t *testing.T) {
	cache := NewCache()
	a, err := cache.Get(4, 1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := cache.Get(4, 2)
	if err != nil {
		t.Fatal(err)
	}
	c, err := cache.Get(5, 1)
	if err != nil {
		t.Fatal(err)
	}
	if a == b || a == c {
		t.Fatal("distinct keys shared a cached grid")
	}
	if cache.Len() != 3 || cache.Generations() != 3 {
		t.Fatalf("Len=%d Generations=%d, want 3 and 3", cache.Len(), cache.Generations())
	}
}

func TestCacheDoesNotKeepFailures(t *testing.T) {
	cache := NewCache()
	for i := 0; i < 2; i++ {
		if _, err := cache.Get(1, 0); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("Get(1) error = %v, want ErrInvalidSize", err)
		}
	}
	if cache.Len() != 0 {
		t.Fatalf("failed generation was cached")
	}
	if got := cache.Generations(); got != 2 {
		t.Fatalf("Generations() = %d, want 2 (failures retried)", got)
	}
}

func TestCacheAsyncDeliversOnce(t *testing.T) {
	cache := NewCache()
	res := <-cache.Async(8, 21)
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	if res.Size != 8 || res.Seed != 21 {
		t.Fatalf("result tagged %d/%d", res.Size, res.Seed)
	}
	want, err := Generate(8, 21)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Grid.Equal(want) {
		t.Fatal("async grid differs from direct generation")
	}

	bad := <-cache.Async(0, 21)
	if !errors.Is(bad.Err, ErrInvalidSize) || bad.Grid != nil {
		t.Fatalf("async invalid size = %+v", bad)
	}
}
