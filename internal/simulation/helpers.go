package simulation

import (
	"math/rand/v2"
)

// NewSource returns a PCG-backed generator for (seed, stream). Distinct
// streams under the same seed are independent.
func NewSource(seed, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, stream))
}

// NewSeed returns a fresh seed from the runtime's randomly seeded source.
func NewSeed() uint64 {
	return rand.Uint64()
}

// span is a half-open range of trial indexes owned by one worker.
type span struct {
	start, end int
}

// split divides n trials into at most workers contiguous spans. The first
// n%workers spans are one trial longer.
func split(n, workers int) []span {
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if n <= 0 {
		return nil
	}

	size, extra := n/workers, n%workers
	spans := make([]span, 0, workers)
	start := 0
	for i := 0; i < workers; i++ {
		end := start + size
		if i < extra {
			end++
		}
		spans = append(spans, span{start: start, end: end})
		start = end
	}
	return spans
}
