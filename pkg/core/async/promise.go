// ============================================================================
// commons - Shared Service Utilities
// ============================================================================
//
// Package:     async
// Description: Adapts callback style functions into awaitable futures
// Created:     2026-10-05
// License:     MIT
// ============================================================================

package async

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"golang.org/x/sync/errgroup"

	cmnerror "github.com/msto63/commons/foundation/core/error"
)

// ErrRejected is the rejection reason when reject is called with nil
var ErrRejected = errors.New("async: rejected")

// Future is the eventual result of a promisified function. It settles once.
type Future[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

// Promisify runs exec in a new goroutine. The future resolves with the value
// exec returns, unless exec called reject first or panicked. A panic becomes
// a ServerUnknown exception.
func Promisify[T any](exec func(reject func(error)) T) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go f.run(exec)
	return f
}

func (f *Future[T]) run(exec func(reject func(error)) T) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			f.settle(zero, panicException(r))
		}
	}()

	value := exec(func(err error) {
		if err == nil {
			err = ErrRejected
		}
		var zero T
		f.settle(zero, err)
	})
	f.settle(value, nil)
}

func (f *Future[T]) settle(value T, err error) {
	f.once.Do(func() {
		f.value = value
		f.err = err
		close(f.done)
	})
}

// Done is closed once the future has settled
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future settles or ctx ends
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// AwaitAll waits for every future and returns their values in order.
// The first failure cancels the remaining waits and is returned.
func AwaitAll[T any](ctx context.Context, futures ...*Future[T]) ([]T, error) {
	results := make([]T, len(futures))
	g, gctx := errgroup.WithContext(ctx)

	for i, f := range futures {
		g.Go(func() error {
			value, err := f.Await(gctx)
			if err != nil {
				return err
			}
			results[i] = value
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func panicException(r interface{}) error {
	cause, ok := r.(error)
	if !ok {
		cause = fmt.Errorf("%v", r)
	}
	return cmnerror.ServerUnknown(http.StatusInternalServerError, "promisified function panicked").WithCause(cause)
}
