package components

import (
	"github.com/pthm/livedom"
	"github.com/pthm/livedom/lib/dom"
	"github.com/pthm/livedom/lib/report"
)

// TodoItem renders one todo. The label and class follow the item, so
// toggling redraws only this row.
func TodoItem(s TodoStore, item Item) *livedom.Tag {
	label := livedom.DeriveAtomic(item, func(t Todo) string {
		if t.Done() {
			return "✓ " + t.Title
		}
		return "○ " + t.Title
	})
	class := livedom.DeriveAtomic(item, func(t Todo) string {
		if t.Done() {
			return "todo done"
		}
		return "todo"
	})

	li := livedom.Li(
		livedom.Span(label).Class("title"),
		livedom.Button("toggle").On("click", func(dom.Event) { s.Toggle(item) }),
		livedom.Button("delete").Class("danger").On("click", func(dom.Event) {
			if err := s.Delete(item); err != nil {
				report.Report(&report.Error{Op: "todo.delete", Kind: report.KindUnknown, Err: err})
			}
		}),
	).Class(class)

	li.AsNode().OnDispose(func() {
		label.Close()
		class.Close()
	})
	return li
}
