package components

import (
	"strings"

	"github.com/pthm/livedom"
	"github.com/pthm/livedom/lib/dom"
)

// AddTodo is the new-task form. The input and the title state are bound
// both ways, so clearing the state clears the field.
func AddTodo(s TodoStore) *livedom.Tag {
	title := livedom.NewAtomic("")
	urgent := livedom.NewAtomic(false)

	input := livedom.DoubleBind(livedom.Input("text").Placeholder("What needs doing?"), title)
	flag := livedom.BindFunc(livedom.Input("checkbox").ID("urgent"), urgent, func(string) bool {
		return !urgent.Value()
	})

	submit := func() {
		t := strings.TrimSpace(title.Value())
		if t == "" {
			return
		}
		var tags []Tag
		if urgent.Value() {
			tags = append(tags, TagUrgent)
		}
		s.Add(t, tags)
		title.Put("")
	}

	return livedom.Div(
		input,
		livedom.Label(flag, " urgent").Attr("for", "urgent"),
		livedom.Button("Add").Class("primary").On("click", func(dom.Event) { submit() }),
	).Class("add-todo")
}
