package livedom

import (
	"context"

	"github.com/pthm/livedom/lib/broadcast"
)

// DeriveAtomic returns an Atomic that holds fn(src.Value()) and follows
// every change of src. The derivation stops when src closes or the
// derived container is closed.
//
//	count := livedom.NewAtomic(1)
//	double := livedom.DeriveAtomic(count, func(n int) int { return n * 2 })
func DeriveAtomic[S, T any](src Observable[S], fn func(S) T) *Atomic[T] {
	rx := src.Subscribe()
	id := rx.Latest()
	d := NewAtomic(fn(src.Value()))
	go derive[S, T](d.ctx, rx, id, src, fn, d.Put)
	return d
}

// DeriveMutex is DeriveAtomic for values better kept behind a lock.
func DeriveMutex[S, T any](src Observable[S], fn func(S) T) *Mutex[T] {
	rx := src.Subscribe()
	id := rx.Latest()
	d := NewMutex(fn(src.Value()))
	go derive[S, T](d.ctx, rx, id, src, fn, d.Put)
	return d
}

// derive calls put(fn(src.Value())) after every change of src until ctx
// is done or src closes.
func derive[S, T any](ctx context.Context, rx broadcast.Receiver[S], id broadcast.StateID, src Observable[S], fn func(S) T, put func(T)) {
	for {
		next, _, err := rx.Receive(ctx, id)
		if err != nil || ctx.Err() != nil {
			return
		}
		id = next
		put(fn(src.Value()))
	}
}
