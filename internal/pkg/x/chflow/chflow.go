// Package chflow provides context-aware helpers for receiving from and
// sending to Go channels, so that no goroutine blocks past cancellation.
package chflow

import "context"

// Receive waits to receive a value from ch or for ctx to be canceled.
// The boolean is false when ctx is done or ch is closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send delivers data to ch unless ctx is canceled first.
// It returns false when ctx was done before the value was sent.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// Forward copies every value from in to out, in order, until in is closed or
// ctx is done. It does not close out.
func Forward[T any](ctx context.Context, in <-chan T, out chan<- T) {
	for {
		data, ok := Receive(ctx, in)
		if !ok {
			return
		}

		if !Send(ctx, out, data) {
			return
		}
	}
}
