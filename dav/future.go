package dav

import "context"

// Future is the pending result of one async call. It resolves after exactly
// one transport round trip, there is no internal concurrency beyond that.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Wait blocks until the call resolves or ctx is done, whichever comes first.
// Cancelling the wait does not cancel the underlying call, cancellation of
// the transport rides on the context the call was started with.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case <-f.done:
		return f.val, f.err
	}
}

// Done exposes the completion channel for select loops.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func newFuture[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.val, f.err = fn()
	}()
	return f
}

func failedFuture[T any](err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	f.err = err
	close(f.done)
	return f
}
