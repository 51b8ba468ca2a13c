package components

import (
	"github.com/pthm/livedom"
	"github.com/pthm/livedom/lib/dom"
)

// Counter shows one count in two places plus a derived value.
func Counter() *livedom.Tag {
	count := livedom.NewAtomic(0)
	doubled := livedom.DeriveAtomic(count, func(n int) int { return n * 2 })

	root := livedom.Section(
		livedom.H2("Counter"),
		livedom.P("Count: ", livedom.Strong(count)),
		livedom.P("Again: ", count),
		livedom.P("Doubled: ", doubled),
		livedom.Div(
			livedom.Button("-1").On("click", func(dom.Event) { livedom.Sub[int](count, 1) }),
			livedom.Button("+1").On("click", func(dom.Event) { livedom.Add[int](count, 1) }),
			livedom.Button("reset").On("click", func(dom.Event) { count.Put(0) }),
		).Class("buttons"),
	).Class("counter")

	root.AsNode().OnDispose(doubled.Close)
	return root
}
