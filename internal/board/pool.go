package board

import (
	"runtime"
	"sync"
)

// Pool is a thread-safe freelist of preallocated Boards, used so MCTS
// expansion (one Board per child) doesn't put the allocator on the hot
// path. Grounded on the reference BoardPool (original_source/src/cpp/
// board.h): acquire copies a template into a pooled instance and never
// returns a nil/uninitialized Board; the pool refills by fanning
// preallocation out across hardware threads when empty, matching the
// reference's refillPool thread fan-out — reimplemented here as a
// goroutine fan-out over runtime.NumCPU(), the idiomatic Go analogue of
// the teacher's Lazy-SMP worker fan-out in internal/engine/worker.go.
type Pool struct {
	mu   sync.Mutex
	free []*Board
	size int
}

// NewPool creates a pool that refills to `size` Boards whenever it runs
// dry. size is a construction parameter only; exceeding it just triggers
// another refill; it is never a hard failure (spec §4.5).
func NewPool(size int) *Pool {
	if size <= 0 {
		size = 1
	}
	p := &Pool{size: size}
	p.refill()
	return p
}

// Acquire returns a Board initialized by bitwise copy from template,
// blocking until one is available (refilling synchronously if the pool is
// empty). Never returns nil.
func (p *Pool) Acquire(template *Board) *Board {
	p.mu.Lock()
	if len(p.free) == 0 {
		p.mu.Unlock()
		p.refill()
		p.mu.Lock()
	}
	b := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	p.mu.Unlock()

	b.CopyFrom(template)
	return b
}

// Release returns b to the pool. After Release, the caller must not touch
// b again; releasing the same Board twice is a programmer error.
func (p *Pool) Release(b *Board) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, existing := range p.free {
		if existing == b {
			panic("board: double release into pool")
		}
	}
	p.free = append(p.free, b)
}

// refill fans preallocation of p.size fresh Boards out across
// runtime.NumCPU() goroutines and merges the results in, mirroring the
// reference BoardPool::refillPool's per-thread batches.
func (p *Pool) refill() {
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	if workers > p.size {
		workers = p.size
	}

	batches := make([][]*Board, workers)
	batchSize := p.size / workers
	remainder := p.size - batchSize*workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		n := batchSize
		if w == workers-1 {
			n += remainder
		}
		wg.Add(1)
		go func(w, n int) {
			defer wg.Done()
			batch := make([]*Board, n)
			for i := 0; i < n; i++ {
				batch[i] = New()
			}
			batches[w] = batch
		}(w, n)
	}
	wg.Wait()

	p.mu.Lock()
	for _, batch := range batches {
		p.free = append(p.free, batch...)
	}
	p.mu.Unlock()
}
