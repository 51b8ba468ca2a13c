package livedom

import (
	"fmt"
	"sync"
)

// Mutex is a lock-guarded state container for values that are large or
// edited in place. The lock is never exposed; use Mutate to edit.
type Mutex[T any] struct {
	stateBase[T]
	mu    sync.Mutex
	value T
}

// NewMutex creates a Mutex holding v.
func NewMutex[T any](v T) *Mutex[T] {
	return &Mutex[T]{stateBase: newStateBase[T](), value: v}
}

var _ State[string] = (*Mutex[string])(nil)

func (m *Mutex[T]) Value() T {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value
}

func (m *Mutex[T]) Put(v T) {
	m.mu.Lock()
	m.value = v
	m.mu.Unlock()
	m.send(v)
}

func (m *Mutex[T]) Update() { m.send(m.Value()) }

func (m *Mutex[T]) Modify(fn func(T) T) {
	m.mu.Lock()
	m.value = fn(m.value)
	m.mu.Unlock()
	m.Update()
}

// Mutate edits the value in place under the lock, then broadcasts.
// fn must not call back into m.
func (m *Mutex[T]) Mutate(fn func(*T)) {
	m.mu.Lock()
	fn(&m.value)
	m.mu.Unlock()
	m.Update()
}

func (m *Mutex[T]) Pointer() any { return m }

// AsNode creates a new text node bound to the container.
func (m *Mutex[T]) AsNode() *Node { return textNode[T](m) }

func (m *Mutex[T]) String() string { return fmt.Sprint(m.Value()) }

func (m *Mutex[T]) bind(n *Node, apply func(string)) { bindObservable[T](n, m, apply) }
