package livedom

import "fmt"

// Lens is a two-way projection of another container: it reads a part of
// the source and writes changes back into it. The lens has its own
// channel, fed by a goroutine that follows the source, so subscribers
// see every change whether it was made through the lens or the source.
//
//	todo := livedom.NewMutex(Todo{Title: "milk"})
//	title := livedom.NewLens(todo,
//	    func(t Todo) string { return t.Title },
//	    func(t Todo, s string) Todo { t.Title = s; return t })
//	livedom.DoubleBind(livedom.Input("text"), title)
type Lens[S, D any] struct {
	stateBase[D]
	src State[S]
	get func(S) D
	set func(S, D) S
}

// NewLens creates a lens over src. set receives a copy of the source
// value and returns the updated copy.
func NewLens[S, D any](src State[S], get func(S) D, set func(S, D) S) *Lens[S, D] {
	rx := src.Subscribe()
	id := rx.Latest()
	l := &Lens[S, D]{stateBase: newStateBase[D](), src: src, get: get, set: set}
	go derive[S, D](l.ctx, rx, id, src, get, l.send)
	return l
}

var _ State[int] = (*Lens[struct{}, int])(nil)

func (l *Lens[S, D]) Value() D { return l.get(l.src.Value()) }

// Put writes v into the source, which notifies both sides.
func (l *Lens[S, D]) Put(v D) {
	l.src.Modify(func(s S) S { return l.set(s, v) })
}

func (l *Lens[S, D]) Update() { l.send(l.Value()) }

// Modify applies fn to the projected value as one source Modify.
func (l *Lens[S, D]) Modify(fn func(D) D) {
	l.src.Modify(func(s S) S { return l.set(s, fn(l.get(s))) })
}

func (l *Lens[S, D]) Pointer() any { return l }

// Source returns the container the lens projects.
func (l *Lens[S, D]) Source() State[S] { return l.src }

// AsNode creates a new text node bound to the lens.
func (l *Lens[S, D]) AsNode() *Node { return textNode[D](l) }

func (l *Lens[S, D]) String() string { return fmt.Sprint(l.Value()) }

func (l *Lens[S, D]) bind(n *Node, apply func(string)) { bindObservable[D](n, l, apply) }
