package livedom

import "sync"

// Scheduler runs reactions one at a time. Binding goroutines wait on
// their channels concurrently but only touch the document inside Run,
// so a DOM write is never interleaved with another.
//
// Run is not reentrant: a reaction must not call Run or dispatch
// events. Event handlers run outside it.
type Scheduler struct {
	mu sync.Mutex
}

// Run executes fn with exclusive access to the document.
func (s *Scheduler) Run(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

var scheduler = &Scheduler{}

// Batch runs fn inside the package scheduler. Use it when code outside
// a reaction needs several DOM writes to land together.
func Batch(fn func()) {
	scheduler.Run(fn)
}
