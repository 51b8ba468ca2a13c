// Package broadcast provides the two channel primitives the reactive core
// is built on.
//
// A state channel (New) keeps only the latest value together with a
// generation counter. Receivers pass the last StateID they saw and are
// handed the newest value once one exists, so a slow or late receiver
// skips intermediate values but always converges:
//
//	tx, rx := broadcast.New[int]()
//	var seen broadcast.StateID
//	for {
//	    id, v, err := rx.Receive(ctx, seen)
//	    if err != nil {
//	        return // closed or ctx done
//	    }
//	    seen = id
//	    render(v)
//	}
//
// A Queue is the opposite: an unbounded FIFO where every pushed value is
// delivered exactly once. Structural list events use queues because
// collapsing them would desynchronise the views replaying them.
package broadcast

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Send, Push and Receive once a channel or queue
// has been closed.
var ErrClosed = errors.New("broadcast: channel closed")

// StateID identifies a generation of a state channel's value.
// The zero StateID is older than any value ever sent.
type StateID uint64

type channel[T any] struct {
	mu     sync.Mutex
	value  T
	id     StateID
	notify chan struct{}
	closed bool
}

// Sender is the sending half of a state channel. Copies share the channel.
type Sender[T any] struct {
	ch *channel[T]
}

// Receiver is the receiving half of a state channel. Copies share the
// channel; the caller keeps its own StateID.
type Receiver[T any] struct {
	ch *channel[T]
}

// New creates a state channel with no value yet.
func New[T any]() (Sender[T], Receiver[T]) {
	ch := &channel[T]{notify: make(chan struct{})}
	return Sender[T]{ch: ch}, Receiver[T]{ch: ch}
}

// Send stores value as the newest generation and wakes every waiting
// receiver. It never blocks.
func (s Sender[T]) Send(value T) error {
	c := s.ch
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.value = value
	c.id++
	close(c.notify)
	c.notify = make(chan struct{})
	return nil
}

// Close closes the channel. Receivers still get a value newer than their
// StateID if one exists, then ErrClosed.
func (s Sender[T]) Close() {
	c := s.ch
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.notify)
}

// IsClosed reports whether Close has been called.
func (s Sender[T]) IsClosed() bool {
	s.ch.mu.Lock()
	defer s.ch.mu.Unlock()
	return s.ch.closed
}

// Receive returns the newest value if its generation is newer than id.
// Otherwise it blocks until a value is sent, the channel closes or ctx is
// done.
func (r Receiver[T]) Receive(ctx context.Context, id StateID) (StateID, T, error) {
	c := r.ch
	for {
		c.mu.Lock()
		if c.id > id {
			next, value := c.id, c.value
			c.mu.Unlock()
			return next, value, nil
		}
		if c.closed {
			c.mu.Unlock()
			var zero T
			return id, zero, ErrClosed
		}
		wait := c.notify
		c.mu.Unlock()

		select {
		case <-wait:
		case <-ctx.Done():
			var zero T
			return id, zero, ctx.Err()
		}
	}
}

// Latest returns the current generation. Values sent after the call are
// guaranteed to have a larger StateID.
func (r Receiver[T]) Latest() StateID {
	r.ch.mu.Lock()
	defer r.ch.mu.Unlock()
	return r.ch.id
}
