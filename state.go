package livedom

import (
	"context"
	"fmt"

	"github.com/pthm/livedom/lib/broadcast"
)

// Observable is a value that announces its changes.
type Observable[T any] interface {
	// Value returns a copy of the current value.
	Value() T
	// Subscribe returns a receiver for change notifications. Receivers
	// always observe the latest value; intermediate values may be skipped.
	Subscribe() broadcast.Receiver[T]
}

// State is a shared mutable value. Every handle to a container refers
// to the same payload and the same channel.
type State[T any] interface {
	Observable[T]
	// Put replaces the value and notifies subscribers.
	Put(v T)
	// Update re-broadcasts the current value.
	Update()
	// Modify replaces the value with fn(current) and notifies once.
	Modify(fn func(T) T)
	// Sender returns the sending side of the change channel.
	Sender() broadcast.Sender[T]
	// Pointer returns a comparable identity of the shared payload.
	Pointer() any
	// Close stops notifications and ends derivations fed by the container.
	Close()
}

// stateBase carries the channel and lifetime shared by the containers.
type stateBase[T any] struct {
	tx     broadcast.Sender[T]
	rx     broadcast.Receiver[T]
	ctx    context.Context
	cancel context.CancelFunc
}

func newStateBase[T any]() stateBase[T] {
	tx, rx := broadcast.New[T]()
	ctx, cancel := context.WithCancel(context.Background())
	return stateBase[T]{tx: tx, rx: rx, ctx: ctx, cancel: cancel}
}

func (b *stateBase[T]) Subscribe() broadcast.Receiver[T] { return b.rx }

func (b *stateBase[T]) Sender() broadcast.Sender[T] { return b.tx }

func (b *stateBase[T]) Close() {
	b.cancel()
	b.tx.Close()
}

// send drops ErrClosed: a closed container silently stops notifying.
func (b *stateBase[T]) send(v T) {
	_ = b.tx.Send(v)
}

// watch applies the current value of obs to n now and again after every
// change, until n is disposed or the channel closes. Values are re-read
// from obs rather than taken from the channel, so the last write wins.
func watch[T any](n *Node, obs Observable[T], apply func(T)) {
	rx := obs.Subscribe()
	id := rx.Latest()
	apply(obs.Value())
	n.Go(func(ctx context.Context) {
		for {
			next, _, err := rx.Receive(ctx, id)
			if err != nil {
				return
			}
			id = next
			scheduler.Run(func() {
				if ctx.Err() == nil {
					apply(obs.Value())
				}
			})
		}
	})
}

// binder is implemented by values that can drive an attribute or text.
type binder interface {
	bind(n *Node, apply func(string))
}

func bindObservable[T any](n *Node, obs Observable[T], apply func(string)) {
	watch(n, obs, func(v T) { apply(fmt.Sprint(v)) })
}

// bindValue applies a static or live value to n.
func bindValue(n *Node, v any, apply func(string)) {
	if b, ok := v.(binder); ok {
		b.bind(n, apply)
		return
	}
	apply(fmt.Sprint(v))
}

// textNode renders obs as a text node kept in sync by its own goroutine.
func textNode[T any](obs Observable[T]) *Node {
	n := NewNode(Document().CreateTextNode(""))
	bindObservable(n, obs, n.dom.SetTextContent)
	return n
}
