// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for
// data-parallel sampling. A Pool is created once and reused across runs, so
// repeated estimates do not pay goroutine spawn cost per run.
//
// Usage:
//
//	pool := workerpool.New(runtime.NumCPU())
//	defer pool.Close()
//
//	pool.RunTasks(pool.NumWorkers(), func(task int) {
//	    counts[task] = sample(seeds[task])
//	})
package workerpool

import (
	"runtime"
	"sync"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// reused until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem

	// mu is held for reading while RunTasks enqueues and for writing by
	// Close, so workC is never closed under a pending send.
	mu     sync.RWMutex
	closed bool
}

// workItem is one closure plus the barrier it reports to.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. Pending work completes first; a Close
// racing with RunTasks waits until that call has enqueued its tasks.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.workC)
}

// RunTasks runs fn(task) for every task in [0, n) and blocks until all of
// them have returned. Tasks are independent: with n above NumWorkers the
// extra tasks queue behind the running ones. A closed pool runs the tasks
// sequentially on the calling goroutine.
func (p *Pool) RunTasks(n int, fn func(task int)) {
	if n <= 0 {
		return
	}

	p.mu.RLock()
	if p.closed || n == 1 {
		p.mu.RUnlock()
		for task := range n {
			fn(task)
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(n)
	for task := range n {
		p.workC <- workItem{
			fn: func() {
				fn(task)
			},
			barrier: &wg,
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}
