// Package parallel provides chunked parallel loops over disjoint index ranges.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64, // Typical cache line aware chunk.
	}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < cfg.MinChunkSize {
		// Sequential fallback.
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// ForBlocks splits [0, n) into consecutive blocks of blockSize items (the
// last one may be shorter) and calls f(block, start, end) once per block.
//
// Block boundaries depend only on n and blockSize, never on the worker
// count, so work keyed by block index is reproducible across machines.
// MinChunkSize is compared against n: once the whole range is large enough,
// every block may run on its own goroutine.
func ForBlocks(n, blockSize int, f func(block, start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	if blockSize <= 0 {
		blockSize = n
	}
	blocks := (n + blockSize - 1) / blockSize

	if n < cfg.MinChunkSize {
		cfg.Enabled = false
	}
	cfg.MinChunkSize = 1

	For(blocks, func(b int) {
		start := b * blockSize
		f(b, start, min(start+blockSize, n))
	}, cfg)
}
