package components

import (
	"github.com/pthm/livedom"
)

// TodoList is the main column: the add form and the live list.
func TodoList(s TodoStore) *livedom.Tag {
	list := s.Todos().View(livedom.Ul().Class("todos"), func(item Item) any {
		return TodoItem(s, item)
	})

	return livedom.Section(
		livedom.H2("Todos"),
		AddTodo(s),
		list,
	).Class("todo-list")
}
