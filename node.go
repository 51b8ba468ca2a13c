package livedom

import (
	"context"
	"fmt"
	"sync"

	"github.com/pthm/livedom/lib/dom"
)

// Component is anything that can be attached to the document.
type Component interface {
	AsNode() *Node
}

// Node is a document node together with the goroutines that keep it
// up to date. Disposing a node stops them.
//
// A Node owns:
//   - a context canceled on Dispose, passed to every binding goroutine
//   - disposers, run in reverse registration order
//   - adopted children, disposed after the disposers
type Node struct {
	dom    dom.Node
	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	disposers []func()
	children  []*Node
	disposed  bool
}

// NewNode wraps an existing document node.
func NewNode(d dom.Node) *Node {
	ctx, cancel := context.WithCancel(context.Background())
	return &Node{dom: d, ctx: ctx, cancel: cancel}
}

// AsNode returns n.
func (n *Node) AsNode() *Node { return n }

// DOM returns the underlying document node.
func (n *Node) DOM() dom.Node { return n.dom }

// Context is canceled when the node is disposed.
func (n *Node) Context() context.Context { return n.ctx }

// Disposed reports whether Dispose has been called.
func (n *Node) Disposed() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.disposed
}

// OnDispose registers fn to run when the node is disposed. If the node
// is already disposed fn runs immediately.
func (n *Node) OnDispose(fn func()) {
	n.mu.Lock()
	if n.disposed {
		n.mu.Unlock()
		fn()
		return
	}
	n.disposers = append(n.disposers, fn)
	n.mu.Unlock()
}

// Adopt ties child's lifetime to n.
func (n *Node) Adopt(child *Node) {
	if child == nil || child == n {
		return
	}
	n.mu.Lock()
	if n.disposed {
		n.mu.Unlock()
		child.Dispose()
		return
	}
	n.children = append(n.children, child)
	n.mu.Unlock()
}

// Release stops tracking child without disposing it.
func (n *Node) Release(child *Node) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// Go runs fn in a goroutine that lives as long as the node.
func (n *Node) Go(fn func(ctx context.Context)) {
	go fn(n.ctx)
}

// Dispose cancels the node's goroutines, runs its disposers and
// disposes adopted children. It does not detach the node from the
// document and does not wait for goroutines to exit. Calling Dispose
// more than once is a no-op.
func (n *Node) Dispose() {
	n.mu.Lock()
	if n.disposed {
		n.mu.Unlock()
		return
	}
	n.disposed = true
	disposers := n.disposers
	children := n.children
	n.disposers = nil
	n.children = nil
	n.mu.Unlock()

	n.cancel()
	for i := len(disposers) - 1; i >= 0; i-- {
		disposers[i]()
	}
	for _, c := range children {
		c.Dispose()
	}
}

// Text creates a static text node.
func Text(s string) *Node {
	return NewNode(Document().CreateTextNode(s))
}

// toNode converts a child value to a node: components attach as
// themselves, nil yields nil and anything else becomes static text.
func toNode(c any) *Node {
	switch v := c.(type) {
	case nil:
		return nil
	case Component:
		return v.AsNode()
	case string:
		return Text(v)
	default:
		return Text(fmt.Sprint(v))
	}
}
