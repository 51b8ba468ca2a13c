// Package store keeps keyed records that many parts of a page display
// at once. Each record carries a Status describing where it is in its
// load/edit/save lifecycle, and every change is announced on the
// record's own channel, so a formatted node only redraws for its key.
//
//	todos := store.NewRelation[int, Todo]()
//	todos.Insert(1, Todo{Title: "milk"})
//	label := todos.Formatted(1, func(t Todo, s store.Status) string {
//	    return t.Title + " (" + s.String() + ")"
//	})
package store

import "errors"

var (
	// ErrNotFound is returned when a key has no record.
	ErrNotFound = errors.New("store: no such key")
	// ErrExists is returned by Insert when the key already has a record.
	ErrExists = errors.New("store: key already exists")
)

// IsNotFound checks if an error is ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Status is the lifecycle state of a record.
type Status int

const (
	// Ready means the record is current.
	Ready Status = iota
	// Loading means the record is being fetched.
	Loading
	// Editing means the record is open in a form.
	Editing
	// Dirty means the record changed locally since it was last loaded.
	Dirty
	// Saving means a change is being sent to the service.
	Saving
	// Error means the last exchange with the service failed.
	Error
)

func (s Status) String() string {
	switch s {
	case Ready:
		return "ready"
	case Loading:
		return "loading"
	case Editing:
		return "editing"
	case Dirty:
		return "dirty"
	case Saving:
		return "saving"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Mutator transforms a record. Mutators are values so a remote store
// can forward them to its service.
type Mutator[V any] interface {
	Mutate(v V) V
}

// MutatorFunc adapts a function to Mutator.
type MutatorFunc[V any] func(V) V

func (f MutatorFunc[V]) Mutate(v V) V { return f(v) }

// Entry is a record value with its status, as sent to subscribers.
type Entry[V any] struct {
	Value  V
	Status Status
}
