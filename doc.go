// Package livedom is a reactive UI core without a virtual DOM.
//
// State lives in containers that broadcast their changes. Every place a
// container is rendered owns a small goroutine that waits for the next
// change and writes the new value into exactly that spot of the
// document. There is no diffing pass: a change touches only the nodes
// bound to it.
//
// # State
//
// Atomic holds small values in a lock-free cell; Mutex holds values that
// are large or edited in place. Both implement State:
//
//	count := livedom.NewAtomic(0)
//	livedom.Add(count, 1)          // one broadcast
//	name := livedom.NewMutex("")
//	name.Mutate(func(s *string) { *s += "!" })
//
// Handles are pointers, so passing one around shares the payload.
// Receivers only ever see the latest value: a slow binding skips
// intermediate values but always converges on the last one.
//
// Derived containers follow a source:
//
//	double := livedom.DeriveAtomic(count, func(n int) int { return n * 2 })
//
// # Building the document
//
// Tags are built with chained calls. Containers can be pushed as
// children or used as attribute values and stay live:
//
//	livedom.Div(
//	    livedom.H1("Count: ", count),
//	    livedom.Button("+1").On("click", func(dom.Event) { livedom.Add(count, 1) }),
//	).Class(theme)
//
// Every binding goroutine belongs to the Node it writes to. Disposing a
// node cancels its goroutines, removes its listeners and disposes its
// children. Mounting a new page disposes the previous one.
//
// # Lists
//
// StateVec is an observable list. Unlike state channels, list changes
// are never collapsed: each view receives every push, insert, remove
// and pop in order and replays them against its own record of the
// nodes it rendered.
//
//	todos := livedom.NewStateVec[*livedom.Mutex[string]]()
//	todos.View(livedom.Ul(), func(t *livedom.Mutex[string]) any {
//	    return livedom.Li(t)
//	})
//
// # Documents
//
// Outside the browser nodes live in an in-memory document (lib/dom/memdom)
// that renders to HTML and can be served with Host. Under js/wasm the
// browser's document is used directly. Tests use NewTestDocument and
// TestRender.
//
// # Errors
//
// Operations with a caller return errors (StateVec.Insert, App.Render).
// Background goroutines have no caller; unexpected failures there are
// sent to lib/report. A view that loses track of the document panics.
package livedom
