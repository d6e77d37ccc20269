// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package queue serializes operations that target the same object identity.
//
// An [IdentityQueue] runs an operation immediately for every requested item
// whose identity is free and defers the others behind the operation that
// currently holds their identity. Deferred items are handed over strictly in
// FIFO order per identity, so no two operations for the same identity are
// ever in flight at once, while operations on disjoint identities run
// concurrently.
//
// A single mutex guards the bookkeeping map only; operations never execute
// under it.
package queue

import (
	"context"
	"sync"
)

// Identifiable is implemented by values scheduled by identity.
type Identifiable interface {
	Identity() string
}

// Operation processes a subset of the items passed to [IdentityQueue.Run].
//
// It may be invoked several times for one Run call: once for the items whose
// identities were free, and again for every group of deferred items released
// together. Implementations must tolerate that and return only the results
// of the items they were given.
type Operation[T Identifiable, R any] func(ctx context.Context, items []T) ([]R, error)

// IdentityQueue schedules operations by item identity. The zero value is not
// usable; create one with [New].
type IdentityQueue[T Identifiable, R any] struct {
	mu sync.Mutex
	// waiting holds an entry for every identity in flight; the slice is the
	// FIFO of items deferred behind it.
	waiting map[string][]pendingItem[T, R]
}

type pendingItem[T Identifiable, R any] struct {
	item T
	req  *request[T, R]
}

// request aggregates the partial results of one Run call.
type request[T Identifiable, R any] struct {
	ctx context.Context
	op  Operation[T, R]

	mu        sync.Mutex
	remaining int
	results   []R
	err       error
	done      chan struct{}
}

// New returns an empty IdentityQueue.
func New[T Identifiable, R any]() *IdentityQueue[T, R] {
	return &IdentityQueue[T, R]{
		waiting: make(map[string][]pendingItem[T, R]),
	}
}

// Run executes op for items, deferring every item whose identity is already
// in flight. It blocks until all items have been processed and returns the
// concatenated results of every op invocation together with the first error
// any invocation returned.
//
// Items deferred behind other operations are skipped with ctx.Err() when ctx
// is done by the time their turn comes.
func (q *IdentityQueue[T, R]) Run(ctx context.Context, items []T, op Operation[T, R]) ([]R, error) {
	if len(items) == 0 {
		return nil, nil
	}

	req := &request[T, R]{
		ctx:       ctx,
		op:        op,
		remaining: len(items),
		done:      make(chan struct{}),
	}

	ready := make([]T, 0, len(items))

	q.mu.Lock()
	for _, item := range items {
		id := item.Identity()
		if queued, busy := q.waiting[id]; busy {
			q.waiting[id] = append(queued, pendingItem[T, R]{item: item, req: req})
			continue
		}
		q.waiting[id] = nil
		ready = append(ready, item)
	}
	q.mu.Unlock()

	if len(ready) > 0 {
		q.execute(req, ready)
	}

	<-req.done

	req.mu.Lock()
	defer req.mu.Unlock()
	return req.results, req.err
}

// InFlight returns the number of identities currently held by an operation.
func (q *IdentityQueue[T, R]) InFlight() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.waiting)
}

// Pending returns the number of items deferred behind id.
func (q *IdentityQueue[T, R]) Pending(id string) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.waiting[id])
}

func (q *IdentityQueue[T, R]) execute(req *request[T, R], items []T) {
	var (
		results []R
		err     error
	)
	if err = req.ctx.Err(); err == nil {
		results, err = req.op(req.ctx, items)
	}

	q.release(items)
	req.complete(len(items), results, err)
}

// release hands every identity of items over to the next deferred item, or
// frees it. Items released for the same request are coalesced into one
// operation call.
func (q *IdentityQueue[T, R]) release(items []T) {
	var order []*request[T, R]
	batches := make(map[*request[T, R]][]T)

	q.mu.Lock()
	for _, item := range items {
		id := item.Identity()
		queued := q.waiting[id]
		if len(queued) == 0 {
			delete(q.waiting, id)
			continue
		}

		next := queued[0]
		q.waiting[id] = queued[1:]

		if _, ok := batches[next.req]; !ok {
			order = append(order, next.req)
		}
		batches[next.req] = append(batches[next.req], next.item)
	}
	q.mu.Unlock()

	for _, req := range order {
		go q.execute(req, batches[req])
	}
}

func (r *request[T, R]) complete(n int, results []R, err error) {
	r.mu.Lock()
	r.results = append(r.results, results...)
	if err != nil && r.err == nil {
		r.err = err
	}
	r.remaining -= n
	finished := r.remaining == 0
	r.mu.Unlock()

	if finished {
		close(r.done)
	}
}
