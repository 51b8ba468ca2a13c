package store

import (
	"context"
	"sync"

	"github.com/pthm/livedom"
	"github.com/pthm/livedom/lib/broadcast"
)

// Singleton is a single record shared by the whole page, such as the
// signed-in user or the current game. Subscribers are told the status;
// they read the value with Get.
type Singleton[V any] struct {
	mu     sync.Mutex
	value  V
	status Status
	tx     broadcast.Sender[Status]
	rx     broadcast.Receiver[Status]
}

// NewSingleton creates a Ready singleton holding v.
func NewSingleton[V any](v V) *Singleton[V] {
	tx, rx := broadcast.New[Status]()
	return &Singleton[V]{value: v, status: Ready, tx: tx, rx: rx}
}

// Get returns the current value.
func (s *Singleton[V]) Get() V {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Status returns the current status.
func (s *Singleton[V]) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Mutate applies m, marks the value Ready and notifies.
func (s *Singleton[V]) Mutate(m Mutator[V]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = m.Mutate(s.value)
	s.status = Ready
	_ = s.tx.Send(s.status)
}

// Subscribe returns the status channel.
func (s *Singleton[V]) Subscribe() broadcast.Receiver[Status] { return s.rx }

// Notify re-sends the current status.
func (s *Singleton[V]) Notify() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.tx.Send(s.status)
}

// Formatted returns a text node showing f applied to the value, redrawn
// on every notification.
func (s *Singleton[V]) Formatted(f func(V) string) *livedom.Node {
	s.mu.Lock()
	seen := s.rx.Latest()
	v := s.value
	s.mu.Unlock()

	n := livedom.Text(f(v))
	n.Go(func(ctx context.Context) {
		for {
			next, _, err := s.rx.Receive(ctx, seen)
			if err != nil {
				return
			}
			seen = next
			v := s.Get()
			livedom.Batch(func() {
				if ctx.Err() == nil {
					n.DOM().SetTextContent(f(v))
				}
			})
		}
	})
	return n
}
