// Package dom defines the presentation layer livedom writes to.
//
// Two implementations ship with the module: memdom, an in-memory tree
// used on servers and in tests, and jsdom, which forwards to the browser
// through syscall/js in js/wasm builds. Anything else that can create
// elements and text nodes can be plugged in with livedom.SetDocument.
package dom

import "errors"

var (
	// ErrNotChild is returned when a reference node is not a child of
	// the node being modified.
	ErrNotChild = errors.New("dom: node is not a child")
	// ErrHierarchy is returned when an insertion would create a cycle or
	// give a text node children.
	ErrHierarchy = errors.New("dom: hierarchy request error")
	// ErrForeignNode is returned when a node from another document is
	// passed in.
	ErrForeignNode = errors.New("dom: node belongs to another document")
)

// Document creates nodes.
type Document interface {
	CreateElement(tag string) (Node, error)
	CreateTextNode(text string) Node
	// Body is the node applications are mounted under.
	Body() Node
}

// Node is an element or text node.
//
// Mutating methods return an error instead of panicking so that callers
// decide how fatal a failure is.
type Node interface {
	AppendChild(child Node) error
	// InsertBefore inserts child before ref. A nil ref appends.
	InsertBefore(child, ref Node) error
	RemoveChild(child Node) error
	ReplaceChild(newChild, oldChild Node) error
	FirstChild() Node

	SetTextContent(text string)
	TextContent() string

	SetAttribute(name, value string) error
	Attribute(name string) (string, bool)
	RemoveAttribute(name string)

	// SetProperty and Property access live element state that is not
	// reflected in attributes, such as an input's current value.
	SetProperty(name string, value any)
	Property(name string) any

	// AddEventListener registers fn for event and returns a function
	// that removes it.
	AddEventListener(event string, fn func(Event)) (remove func())
}

// Event is delivered to listeners.
type Event struct {
	Type   string
	Target Node
	// Value carries the target's value property for input events.
	Value string
}
