package components

import (
	"time"

	"github.com/pthm/livedom"
	"github.com/pthm/livedom/store"
)

// Status is the completion state of a todo.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Tag labels a todo.
type Tag string

const (
	TagWork     Tag = "work"
	TagPersonal Tag = "personal"
	TagUrgent   Tag = "urgent"
	TagLater    Tag = "later"
)

// AllTags lists the tags in display order.
var AllTags = []Tag{TagWork, TagPersonal, TagUrgent, TagLater}

// Todo is a single task.
type Todo struct {
	ID        int
	Title     string
	Status    Status
	Tags      []Tag
	CreatedAt time.Time
}

// Done reports whether the todo is completed.
func (t Todo) Done() bool { return t.Status == StatusCompleted }

// HasTag reports whether the todo carries tag.
func (t Todo) HasTag(tag Tag) bool {
	for _, x := range t.Tags {
		if x == tag {
			return true
		}
	}
	return false
}

// TodoStats summarises the list.
type TodoStats struct {
	Total     int
	Completed int
	Pending   int
	ByTag     map[Tag]int
}

// Item is a live todo; list entries are compared by handle.
type Item = *livedom.Mutex[Todo]

// TodoStore is what the components need from the application.
type TodoStore interface {
	Todos() *livedom.StateVec[Item]
	Add(title string, tags []Tag) Item
	Toggle(item Item)
	Delete(item Item) error
	Stats() *store.Singleton[TodoStats]
}
