package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/pthm/livedom"
	"github.com/pthm/livedom/lib/broadcast"
)

type row[V any] struct {
	value  V
	status Status
	tx     broadcast.Sender[Entry[V]]
	rx     broadcast.Receiver[Entry[V]]
}

func newRow[V any](v V, s Status) *row[V] {
	tx, rx := broadcast.New[Entry[V]]()
	return &row[V]{value: v, status: s, tx: tx, rx: rx}
}

func (r *row[V]) send() {
	_ = r.tx.Send(Entry[V]{Value: r.value, Status: r.status})
}

// Relation is an in-memory table of records keyed by K.
type Relation[K comparable, V any] struct {
	mu   sync.Mutex
	rows map[K]*row[V]

	// missing is called, outside the lock, for a row Get had to create.
	missing func(id K)
	// mutated is called, outside the lock, after Mutate stored a change.
	mutated func(id K, m Mutator[V])
	// created and changed are the statuses given to those rows.
	created Status
	changed Status
}

// NewRelation creates an empty local relation. Rows created by Get are
// Dirty; mutated rows become Ready.
func NewRelation[K comparable, V any]() *Relation[K, V] {
	return &Relation[K, V]{
		rows:    make(map[K]*row[V]),
		created: Dirty,
		changed: Ready,
	}
}

// Get returns the record for id. A missing record is created from
// template.
func (r *Relation[K, V]) Get(id K, template V) (V, Status) {
	r.mu.Lock()
	if row, ok := r.rows[id]; ok {
		v, s := row.value, row.status
		r.mu.Unlock()
		return v, s
	}
	row := newRow(template, r.created)
	r.rows[id] = row
	s := row.status
	r.mu.Unlock()

	if r.missing != nil {
		r.missing(id)
	}
	return template, s
}

// Lookup returns the record for id without creating it.
func (r *Relation[K, V]) Lookup(id K) (V, Status, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		var zero V
		return zero, 0, false
	}
	return row.value, row.status, true
}

// Insert adds a new record. It is Dirty until it is mutated or set.
func (r *Relation[K, V]) Insert(id K, v V) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; ok {
		return fmt.Errorf("%w: %v", ErrExists, id)
	}
	r.rows[id] = newRow(v, Dirty)
	return nil
}

// Set stores v with status s and notifies, creating the record if
// needed.
func (r *Relation[K, V]) Set(id K, v V, s Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		row = newRow(v, s)
		r.rows[id] = row
	}
	row.value, row.status = v, s
	row.send()
}

// SetStatus changes only the status of a record and notifies.
func (r *Relation[K, V]) SetStatus(id K, s Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	row.status = s
	row.send()
	return nil
}

// Mutate applies m to the record and notifies once.
func (r *Relation[K, V]) Mutate(id K, m Mutator[V]) error {
	r.mu.Lock()
	row, ok := r.rows[id]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	row.value = m.Mutate(row.value)
	row.status = r.changed
	row.send()
	r.mu.Unlock()

	if r.mutated != nil {
		r.mutated(id, m)
	}
	return nil
}

// Subscribe returns the change channel for id.
func (r *Relation[K, V]) Subscribe(id K) (broadcast.Receiver[Entry[V]], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return broadcast.Receiver[Entry[V]]{}, fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	return row.rx, nil
}

// Notify re-sends the current record to subscribers.
func (r *Relation[K, V]) Notify(id K) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	row.send()
	return nil
}

// Delete removes a record and closes its channel, which stops every
// node formatting it.
func (r *Relation[K, V]) Delete(id K) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	delete(r.rows, id)
	row.tx.Close()
	return nil
}

// Len returns the number of records.
func (r *Relation[K, V]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

// Keys returns the keys in no particular order.
func (r *Relation[K, V]) Keys() []K {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make([]K, 0, len(r.rows))
	for k := range r.rows {
		keys = append(keys, k)
	}
	return keys
}

// Formatted returns a text node showing f applied to the record for id,
// redrawn whenever the record changes. A missing record is created from
// the zero value.
func (r *Relation[K, V]) Formatted(id K, f func(V, Status) string) *livedom.Node {
	var zero V
	r.Get(id, zero)

	r.mu.Lock()
	row, ok := r.rows[id]
	if !ok {
		// Deleted between Get and here.
		r.mu.Unlock()
		return livedom.Text(f(zero, r.created))
	}
	rx := row.rx
	seen := rx.Latest()
	v, s := row.value, row.status
	r.mu.Unlock()

	n := livedom.Text(f(v, s))
	n.Go(func(ctx context.Context) {
		for {
			next, _, err := rx.Receive(ctx, seen)
			if err != nil {
				return
			}
			seen = next
			v, s, ok := r.Lookup(id)
			if !ok {
				return
			}
			livedom.Batch(func() {
				if ctx.Err() == nil {
					n.DOM().SetTextContent(f(v, s))
				}
			})
		}
	})
	return n
}
