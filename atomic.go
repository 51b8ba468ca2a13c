package livedom

import (
	"fmt"
	"sync/atomic"
)

// Atomic is a lock-free state container. T should be small and cheap to
// copy; every Put allocates a new cell.
type Atomic[T any] struct {
	stateBase[T]
	cell atomic.Pointer[T]
}

// NewAtomic creates an Atomic holding v.
func NewAtomic[T any](v T) *Atomic[T] {
	a := &Atomic[T]{stateBase: newStateBase[T]()}
	a.cell.Store(&v)
	return a
}

var _ State[int] = (*Atomic[int])(nil)

func (a *Atomic[T]) Value() T { return *a.cell.Load() }

func (a *Atomic[T]) Put(v T) {
	a.cell.Store(&v)
	a.send(v)
}

func (a *Atomic[T]) Update() { a.send(a.Value()) }

// Modify retries fn until its result is stored without interference,
// then broadcasts once. fn may run more than once.
func (a *Atomic[T]) Modify(fn func(T) T) {
	for {
		old := a.cell.Load()
		v := fn(*old)
		if a.cell.CompareAndSwap(old, &v) {
			break
		}
	}
	a.Update()
}

func (a *Atomic[T]) Pointer() any { return a }

// AsNode creates a new text node bound to the container.
func (a *Atomic[T]) AsNode() *Node { return textNode[T](a) }

func (a *Atomic[T]) String() string { return fmt.Sprint(a.Value()) }

func (a *Atomic[T]) bind(n *Node, apply func(string)) { bindObservable[T](n, a, apply) }
