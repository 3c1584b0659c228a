// Package worker provides a worker pool for parallel move-tree
// counting.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/VeeDeltaVee/knight-witch/internal/chess"
)

// WorkItem is one subtree to count: a position reached by Move from the
// split point, and the remaining depth to explore below it.
type WorkItem struct {
	Move     chess.Move
	Position *chess.Position
	Depth    int
	Index    int // Original index for ordering
}

// CountResult is a counted subtree.
type CountResult struct {
	Move  chess.Move
	Index int
	Nodes uint64
}

// CountFunc is the function signature for counting a work item.
type CountFunc func(item WorkItem) CountResult

// Pool manages a pool of workers counting subtrees in parallel. Work
// items share no mutable state: every subtree owns its position clone.
type Pool struct {
	numWorkers int
	bufferSize int
	workChan   chan WorkItem
	resultChan chan CountResult
	countFunc  CountFunc
	wg         sync.WaitGroup
	stopFlag   int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a new worker pool with the specified number of
// workers and buffer size.
func NewPool(numWorkers, bufferSize int, countFunc CountFunc) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Pool{
		numWorkers: numWorkers,
		bufferSize: bufferSize,
		workChan:   make(chan WorkItem, bufferSize),
		resultChan: make(chan CountResult, bufferSize),
		countFunc:  countFunc,
	}
}

// NewPoolWithOptions creates a new worker pool using functional
// options. countFunc is required; other settings have sensible
// defaults. Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(countFunc CountFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		countFunc:  countFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan CountResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker counts items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without counting
		}
		p.resultChan <- p.countFunc(item)
	}
}

// Submit submits a work item for counting.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// TrySubmit attempts to submit a work item without blocking.
// Returns false if the work channel is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if atomic.LoadInt32(&p.stopFlag) != 0 {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop signals workers to stop counting new items.
// Items already in the channel will be drained but not counted.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all
// workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading counted subtrees.
func (p *Pool) Results() <-chan CountResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
