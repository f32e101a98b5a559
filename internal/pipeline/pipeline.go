package pipeline

import (
	"iter"

	"github.com/sourcegraph/conc/pool"
)

// Config controls the worker pool.
type Config struct {
	Workers   int // number of worker goroutines; <= 1 runs in the caller
	ChunkSize int // items per submitted task (>= 1)
}

// Sequential reports whether cfg runs without a pool.
func (c Config) Sequential() bool { return c.Workers <= 1 }

// Collect applies work to every item and returns all results flattened.
//
// With more than one worker, items are grouped into chunks of ChunkSize and
// each chunk runs as one pool task. Submission blocks while every worker is
// busy, so items is consumed lazily. A panic in work is re-raised in the
// caller once the pool drains.
func Collect[T, R any](cfg Config, items iter.Seq[T], work func(T) []R) []R {
	if cfg.ChunkSize < 1 {
		cfg.ChunkSize = 1
	}
	if cfg.Sequential() {
		var out []R
		for it := range items {
			out = append(out, work(it)...)
		}
		return out
	}

	p := pool.NewWithResults[[]R]().WithMaxGoroutines(cfg.Workers)
	submit := func(chunk []T) {
		p.Go(func() []R {
			var local []R
			for _, it := range chunk {
				local = append(local, work(it)...)
			}
			return local
		})
	}

	chunk := make([]T, 0, cfg.ChunkSize)
	for it := range items {
		chunk = append(chunk, it)
		if len(chunk) == cfg.ChunkSize {
			submit(chunk)
			chunk = make([]T, 0, cfg.ChunkSize)
		}
	}
	if len(chunk) > 0 {
		submit(chunk)
	}

	var out []R
	for _, rs := range p.Wait() {
		out = append(out, rs...)
	}
	return out
}
