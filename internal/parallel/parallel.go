// Package parallel spreads the neurons of a single layer across goroutines.
//
// Neurons of one layer only read the previous layer's values and write their
// own, so they can be evaluated in any order. Layers themselves must still
// run one after another; that ordering is the caller's job.
package parallel

import (
	"runtime"
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// Config controls parallel execution behavior.
//
// The zero value runs everything sequentially.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	Workers    int  // Number of worker goroutines to use.
	MinNeurons int  // Minimum neurons per goroutine to avoid overhead.
}

// DefaultConfig enables parallelism on multi-core machines.
//
// Each neuron is a handful of multiply-adds, so chunks are kept large.
func DefaultConfig() Config {
	n := workers(cpuid.CPU.LogicalCores, runtime.NumCPU())
	return Config{
		Enabled:    n > 1,
		Workers:    n,
		MinNeurons: 256,
	}
}

// workers caps the detected logical cores by the CPUs the process may run
// on. An affinity mask can make the latter smaller.
func workers(logical, usable int) int {
	if logical <= 0 {
		return max(usable, 1)
	}
	return max(min(logical, usable), 1)
}

// Sequential returns a Config that never spawns goroutines.
func Sequential() Config {
	return Config{}
}

// For executes f(i) for i in [0, n).
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	workers := cfg.Workers
	if !cfg.Enabled || workers < 2 || n < 2*max(cfg.MinNeurons, 1) {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunk := max((n+workers-1)/workers, cfg.MinNeurons, 1)

	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
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
