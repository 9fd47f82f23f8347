package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"dithermap/pkg/bluenoise"
)

type seedResult struct {
	seed  int64
	stats []bluenoise.Stats
	worst bluenoise.Stats
	err   error
}

func main() {
	size := flag.Int("size", 32, "threshold map side length")
	from := flag.Int64("from", 0, "first seed")
	count := flag.Int("count", 16, "number of seeds to generate")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "results to list")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	bluenoise.SetLogger(logger)

	if *size < bluenoise.MinSize || *count <= 0 || *workers <= 0 {
		log.Fatalf("size must be >= %d, count and workers positive", bluenoise.MinSize)
	}

	seeds := make([]int64, *count)
	for i := range seeds {
		seeds[i] = *from + int64(i)
	}
	cuts := defaultCuts(*size)

	fmt.Printf("Sweeping %d seeds at size %d (%d workers, cuts %v)\n", len(seeds), *size, *workers, cuts)

	start := time.Now()
	cache := bluenoise.NewCache(bluenoise.WithLogger(logger))
	all := sweepSeeds(cache, *size, seeds, cuts, *workers)
	elapsed := time.Since(start)

	for _, res := range all {
		if res.err != nil {
			log.Fatalf("seed %d: %v", res.seed, res.err)
		}
	}

	fmt.Printf("\nWorst-cut ratio per seed, best first (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		printResult(i+1, all[i])
	}
	if len(all) > *top {
		fmt.Println("...")
		printResult(len(all), all[len(all)-1])
	}
}

func printResult(n int, res seedResult) {
	fmt.Printf("%2d) seed=%d worst cut=%d minSpacing=%.3f expected=%.3f ratio=%.3f\n",
		n, res.seed, res.worst.Cut, res.worst.MinSpacing, res.worst.Expected, res.worst.Ratio)
}

// defaultCuts returns the 1/16, 1/8, 1/4 and 1/2 density cuts for size.
func defaultCuts(size int) []int {
	total := size * size
	var cuts []int
	for _, div := range []int{16, 8, 4, 2} {
		if c := total / div; c >= 2 && (len(cuts) == 0 || cuts[len(cuts)-1] != c) {
			cuts = append(cuts, c)
		}
	}
	return cuts
}

// sweepSeeds generates one map per seed on a worker pool and measures every
// cut. Results are ordered by worst-cut ratio, highest first.
func sweepSeeds(cache *bluenoise.Cache, size int, seeds []int64, cuts []int, workers int) []seedResult {
	jobs := make(chan int64)
	results := make(chan seedResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runSeed(cache, size, seed, cuts)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, seed := range seeds {
			jobs <- seed
		}
		close(jobs)
	}()

	var all []seedResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].worst.Ratio != all[j].worst.Ratio {
			return all[i].worst.Ratio > all[j].worst.Ratio
		}
		return all[i].seed < all[j].seed
	})
	return all
}

func runSeed(cache *bluenoise.Cache, size int, seed int64, cuts []int) seedResult {
	res := seedResult{seed: seed}
	grid, err := cache.Get(size, seed)
	if err != nil {
		res.err = err
		return res
	}
	res.worst.Ratio = math.Inf(1)
	for _, c := range cuts {
		s := bluenoise.Analyze(grid, seed, c)
		res.stats = append(res.stats, s)
		if s.Ratio < res.worst.Ratio {
			res.worst = s
		}
	}
	return res
}
