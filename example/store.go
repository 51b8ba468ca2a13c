package main

import (
	"sync"
	"time"

	"github.com/pthm/livedom"
	"github.com/pthm/livedom/example/components"
	"github.com/pthm/livedom/store"
)

// Store is an in-memory todo store that implements components.TodoStore.
type Store struct {
	mu     sync.Mutex
	nextID int
	todos  *livedom.StateVec[components.Item]
	stats  *store.Singleton[components.TodoStats]
}

// NewStore creates a new store with sample data.
func NewStore() *Store {
	s := &Store{
		nextID: 1,
		todos:  livedom.NewStateVec[components.Item](),
		stats:  store.NewSingleton(components.TodoStats{}),
	}

	// Add sample todos
	s.Add("Buy groceries", []components.Tag{components.TagPersonal})
	s.Add("Review PR #123", []components.Tag{components.TagWork, components.TagUrgent})
	s.Add("Write documentation", []components.Tag{components.TagWork})
	s.Add("Call dentist", []components.Tag{components.TagPersonal, components.TagLater})

	return s
}

func (s *Store) Todos() *livedom.StateVec[components.Item] { return s.todos }

func (s *Store) Stats() *store.Singleton[components.TodoStats] { return s.stats }

// Add creates a todo at the top of the list.
func (s *Store) Add(title string, tags []components.Tag) components.Item {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.mu.Unlock()

	item, _ := livedom.InsertMutex(s.todos, 0, components.Todo{
		ID:        id,
		Title:     title,
		Status:    components.StatusPending,
		Tags:      tags,
		CreatedAt: time.Now(),
	})
	s.refreshStats()
	return item
}

// Toggle flips the completed status of a todo.
func (s *Store) Toggle(item components.Item) {
	item.Mutate(func(t *components.Todo) {
		if t.Status == components.StatusCompleted {
			t.Status = components.StatusPending
		} else {
			t.Status = components.StatusCompleted
		}
	})
	s.refreshStats()
}

// Delete removes a todo.
func (s *Store) Delete(item components.Item) error {
	if err := s.todos.RemoveElem(item); err != nil {
		return err
	}
	item.Close()
	s.refreshStats()
	return nil
}

func (s *Store) refreshStats() {
	stats := components.TodoStats{ByTag: make(map[components.Tag]int)}
	for _, item := range s.todos.All() {
		todo := item.Value()
		stats.Total++
		if todo.Done() {
			stats.Completed++
		} else {
			stats.Pending++
		}
		for _, tag := range todo.Tags {
			stats.ByTag[tag]++
		}
	}
	s.stats.Mutate(store.MutatorFunc[components.TodoStats](func(components.TodoStats) components.TodoStats {
		return stats
	}))
}
