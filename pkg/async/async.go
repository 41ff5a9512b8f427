package async

import (
	"context"
	"errors"
)

// Future holds the result of a function running in its own goroutine.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Waiter is implemented by every Future regardless of its result type.
type Waiter interface {
	Wait(ctx context.Context) error
}

// Run executes fn asynchronously. A context that is already done short
// circuits fn and resolves the future with ctx.Err().
func Run[U any](ctx context.Context, fn func(context.Context) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}
		f.result, f.err = fn(ctx)
	}()

	return f
}

// Await blocks until the function returns or ctx is done.
func (f *Future[U]) Await(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// Wait is Await without the result.
func (f *Future[U]) Wait(ctx context.Context) error {
	_, err := f.Await(ctx)
	return err
}

// All waits for every future and joins their errors.
func All(ctx context.Context, futures ...Waiter) error {
	var errs []error
	for _, f := range futures {
		if err := f.Wait(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
