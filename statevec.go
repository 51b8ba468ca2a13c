package livedom

import (
	"iter"
	"slices"
	"sync"

	"github.com/pthm/livedom/lib/broadcast"
	"github.com/pthm/livedom/lib/report"
)

// ChangeKind is the kind of structural change made to a StateVec.
type ChangeKind int

const (
	ChangePush ChangeKind = iota
	ChangeInsert
	ChangeRemove
	ChangePop
)

func (k ChangeKind) String() string {
	switch k {
	case ChangePush:
		return "push"
	case ChangeInsert:
		return "insert"
	case ChangeRemove:
		return "remove"
	case ChangePop:
		return "pop"
	default:
		return "unknown"
	}
}

// Change describes one structural change. Index is the position the
// item was inserted at or removed from.
type Change[T any] struct {
	Kind  ChangeKind
	Index int
	Item  T
}

// StateVec is an observable list. Every view gets its own FIFO of
// changes, so views never skip a structural event and replay them in
// the order they were applied.
//
// Items are compared by ==; for lists of containers that is handle
// identity, which is what RemoveElem and IndexOf match on.
type StateVec[T comparable] struct {
	mu    sync.RWMutex
	items []T
	views map[*broadcast.Queue[Change[T]]]struct{}
}

// NewStateVec creates a list holding items.
func NewStateVec[T comparable](items ...T) *StateVec[T] {
	return &StateVec[T]{
		items: slices.Clone(items),
		views: make(map[*broadcast.Queue[Change[T]]]struct{}),
	}
}

// NewStateVecCap creates an empty list with room for n items.
func NewStateVecCap[T comparable](n int) *StateVec[T] {
	return &StateVec[T]{
		items: make([]T, 0, n),
		views: make(map[*broadcast.Queue[Change[T]]]struct{}),
	}
}

// publishLocked fans c out to every registered view. Must hold v.mu for
// writing so all views see changes in application order.
func (v *StateVec[T]) publishLocked(c Change[T]) {
	for q := range v.views {
		if err := q.Push(c); err != nil {
			report.Report(&report.Error{
				Op:         "statevec.publish",
				Kind:       report.KindChannel,
				Err:        err,
				StackTrace: report.CaptureStack(),
			})
		}
	}
}

// Push appends x.
func (v *StateVec[T]) Push(x T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.items = append(v.items, x)
	v.publishLocked(Change[T]{Kind: ChangePush, Index: len(v.items) - 1, Item: x})
}

// Insert places x at index i, shifting later items right. i may equal
// Len to append.
func (v *StateVec[T]) Insert(i int, x T) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if i < 0 || i > len(v.items) {
		return ErrIndexOutOfRange
	}
	v.items = slices.Insert(v.items, i, x)
	v.publishLocked(Change[T]{Kind: ChangeInsert, Index: i, Item: x})
	return nil
}

// Remove deletes and returns the item at index i.
func (v *StateVec[T]) Remove(i int) (T, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if i < 0 || i >= len(v.items) {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	x := v.items[i]
	v.items = slices.Delete(v.items, i, i+1)
	v.publishLocked(Change[T]{Kind: ChangeRemove, Index: i, Item: x})
	return x, nil
}

// Pop removes and returns the last item. It reports false when the
// list is empty.
func (v *StateVec[T]) Pop() (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.items) == 0 {
		var zero T
		return zero, false
	}
	i := len(v.items) - 1
	x := v.items[i]
	var zero T
	v.items[i] = zero
	v.items = v.items[:i]
	v.publishLocked(Change[T]{Kind: ChangePop, Index: i, Item: x})
	return x, true
}

// RemoveElem removes the first item equal to x.
func (v *StateVec[T]) RemoveElem(x T) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	i := slices.Index(v.items, x)
	if i < 0 {
		return ErrNotFound
	}
	v.items = slices.Delete(v.items, i, i+1)
	v.publishLocked(Change[T]{Kind: ChangeRemove, Index: i, Item: x})
	return nil
}

// Len returns the number of items.
func (v *StateVec[T]) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.items)
}

// IsEmpty reports whether the list has no items.
func (v *StateVec[T]) IsEmpty() bool { return v.Len() == 0 }

// Get returns the item at index i.
func (v *StateVec[T]) Get(i int) (T, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if i < 0 || i >= len(v.items) {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	return v.items[i], nil
}

// IndexOf returns the index of the first item equal to x, or -1.
func (v *StateVec[T]) IndexOf(x T) int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Index(v.items, x)
}

// Items returns a copy of the items.
func (v *StateVec[T]) Items() []T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.items)
}

// All iterates over a snapshot taken when iteration starts.
func (v *StateVec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.Items() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// subscribe registers a view queue and returns it with the items it
// must render first. Both are taken under the write lock so no change
// is missed or seen twice.
func (v *StateVec[T]) subscribe() (*broadcast.Queue[Change[T]], []T) {
	q := broadcast.NewQueue[Change[T]]()
	v.mu.Lock()
	defer v.mu.Unlock()
	v.views[q] = struct{}{}
	return q, slices.Clone(v.items)
}

// unsubscribe drops q before closing it, so publish never sees a
// closed queue for an unmounted view.
func (v *StateVec[T]) unsubscribe(q *broadcast.Queue[Change[T]]) {
	v.mu.Lock()
	delete(v.views, q)
	v.mu.Unlock()
	q.Close()
}

// Views returns the number of mounted views.
func (v *StateVec[T]) Views() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.views)
}

// AtomicVec creates a list of Atomic containers, one per value.
func AtomicVec[T any](values ...T) *StateVec[*Atomic[T]] {
	v := NewStateVecCap[*Atomic[T]](len(values))
	for _, x := range values {
		v.items = append(v.items, NewAtomic(x))
	}
	return v
}

// MutexVec creates a list of Mutex containers, one per value.
func MutexVec[T any](values ...T) *StateVec[*Mutex[T]] {
	v := NewStateVecCap[*Mutex[T]](len(values))
	for _, x := range values {
		v.items = append(v.items, NewMutex(x))
	}
	return v
}

// PushAtomic wraps x in a new Atomic, appends it and returns it.
func PushAtomic[T any](v *StateVec[*Atomic[T]], x T) *Atomic[T] {
	a := NewAtomic(x)
	v.Push(a)
	return a
}

// InsertAtomic wraps x in a new Atomic and inserts it at i.
func InsertAtomic[T any](v *StateVec[*Atomic[T]], i int, x T) (*Atomic[T], error) {
	a := NewAtomic(x)
	if err := v.Insert(i, a); err != nil {
		return nil, err
	}
	return a, nil
}

// PushMutex wraps x in a new Mutex, appends it and returns it.
func PushMutex[T any](v *StateVec[*Mutex[T]], x T) *Mutex[T] {
	m := NewMutex(x)
	v.Push(m)
	return m
}

// InsertMutex wraps x in a new Mutex and inserts it at i.
func InsertMutex[T any](v *StateVec[*Mutex[T]], i int, x T) (*Mutex[T], error) {
	m := NewMutex(x)
	if err := v.Insert(i, m); err != nil {
		return nil, err
	}
	return m, nil
}
