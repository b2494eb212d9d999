// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
)

// ErrPoolClosed is returned by [Pool.Do] after Shutdown.
var ErrPoolClosed = errors.New("worker pool is closed")

// Pool runs CPU-bound jobs (key derivation, sealing, opening) on a fixed set
// of goroutines so that a burst of uploads cannot fan out into an unbounded
// number of concurrent PBKDF2 computations. It implements [Worker]; Run
// starts the goroutines and returns immediately.
type Pool struct {
	size   int
	jobs   chan job
	quit   chan struct{}
	logger *logger.Logger
}

type job struct {
	fn   func()
	done chan struct{}
}

// NewPool constructs a pool of size goroutines. Run must be called before
// the first Do.
func NewPool(size int, log *logger.Logger) *Pool {
	log.Debug().Int("size", size).Msg("creating crypto worker pool")
	return &Pool{
		size:   size,
		jobs:   make(chan job),
		quit:   make(chan struct{}),
		logger: log,
	}
}

// Run starts the pool goroutines. Implements [Worker].
func (p *Pool) Run() {
	for i := 0; i < p.size; i++ {
		go p.worker()
	}
}

func (p *Pool) worker() {
	for {
		select {
		case j := <-p.jobs:
			j.fn()
			close(j.done)
		case <-p.quit:
			return
		}
	}
}

// Do executes fn on a pool goroutine and blocks until it completes or ctx is
// done. When ctx expires while the job is still queued, Do returns the
// context error and the job never runs; once picked up, the job runs to
// completion on its worker regardless.
func (p *Pool) Do(ctx context.Context, fn func()) error {
	j := job{fn: fn, done: make(chan struct{})}

	select {
	case p.jobs <- j:
	case <-p.quit:
		return ErrPoolClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-j.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops the pool goroutines. Jobs already picked up finish; queued
// submissions still waiting in Do fail with [ErrPoolClosed].
func (p *Pool) Shutdown() {
	close(p.quit)
}
