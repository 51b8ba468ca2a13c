package livedom

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pthm/livedom/lib/dom"
	"github.com/pthm/livedom/lib/report"
)

// Tag is an element under construction. Builder methods return the tag
// so calls chain:
//
//	livedom.Button("+1").
//	    Class("primary").
//	    On("click", func(dom.Event) { livedom.Add(count, 1) })
//
// Document failures while building panic: a tag that cannot be built
// leaves the page in an unknown state.
type Tag struct {
	node *Node
	name string

	mu        sync.Mutex
	listeners map[string][]func()
}

// NewTag creates an element with the given tag name in the current
// document.
func NewTag(name string) *Tag {
	el, err := Document().CreateElement(name)
	if err != nil {
		panic(fmt.Sprintf("livedom: create <%s>: %v", name, err))
	}
	return &Tag{node: NewNode(el), name: strings.ToLower(name)}
}

// AsNode returns the tag's node, or nil for a nil tag.
func (t *Tag) AsNode() *Node {
	if t == nil {
		return nil
	}
	return t.node
}

// DOM returns the underlying element.
func (t *Tag) DOM() dom.Node { return t.node.dom }

// Name returns the lower-cased tag name.
func (t *Tag) Name() string { return t.name }

// Push appends children. Components are attached and adopted, so they
// are disposed with the tag; nil is skipped; []any is flattened;
// anything else becomes a static text node.
func (t *Tag) Push(children ...any) *Tag {
	for _, c := range children {
		t.push(c)
	}
	return t
}

func (t *Tag) push(c any) {
	if list, ok := c.([]any); ok {
		t.Push(list...)
		return
	}
	child := toNode(c)
	if child == nil {
		return
	}
	if err := t.node.dom.AppendChild(child.dom); err != nil {
		panic(fmt.Sprintf("livedom: append to <%s>: %v", t.name, err))
	}
	t.node.Adopt(child)
}

// PushLoop pushes fn(0) through fn(n-1).
func (t *Tag) PushLoop(n int, fn func(i int) any) *Tag {
	for i := 0; i < n; i++ {
		t.push(fn(i))
	}
	return t
}

// On attaches an event handler. A panicking handler is reported and
// does not take the page down.
//
// Handlers run on the dispatching goroutine, outside the package
// scheduler, so a handler may dispatch further events synchronously
// (el.click(), focus changes). It must not do so from inside Batch.
func (t *Tag) On(event string, fn func(dom.Event)) *Tag {
	node := t.node
	remove := node.dom.AddEventListener(event, func(ev dom.Event) {
		if node.ctx.Err() != nil {
			return
		}
		defer report.Recover("tag.on " + event)
		fn(ev)
	})

	t.mu.Lock()
	if t.listeners == nil {
		t.listeners = make(map[string][]func())
	}
	t.listeners[event] = append(t.listeners[event], remove)
	t.mu.Unlock()

	node.OnDispose(remove)
	return t
}

// Off removes every handler attached to event with On.
func (t *Tag) Off(event string) *Tag {
	t.mu.Lock()
	removers := t.listeners[event]
	delete(t.listeners, event)
	t.mu.Unlock()

	for _, remove := range removers {
		remove()
	}
	return t
}

// OnEvent attaches a handler that receives captured, typically a state
// handle, along with the event.
func OnEvent[C any](t *Tag, event string, captured C, fn func(C, dom.Event)) *Tag {
	return t.On(event, func(ev dom.Event) { fn(captured, ev) })
}

// Attr sets an attribute. value may be a live container, in which case
// the attribute follows it; true sets an empty attribute and false
// removes it. Names that are not legal for the element are reported
// with ErrUnknownAttribute and skipped.
func (t *Tag) Attr(name string, value any) *Tag {
	if !ValidAttribute(t.name, name) {
		report.Report(&report.Error{
			Op:   "tag.attr",
			Kind: report.KindAttribute,
			Err:  fmt.Errorf("%w: <%s %s>", ErrUnknownAttribute, t.name, name),
		})
		return t
	}
	switch v := value.(type) {
	case bool:
		t.setFlag(name, v)
	case Observable[bool]:
		watch(t.node, v, func(b bool) { t.setFlag(name, b) })
	default:
		bindValue(t.node, value, func(s string) { t.setAttr(name, s) })
	}
	return t
}

// setFlag sets a boolean attribute: present when on, absent otherwise.
func (t *Tag) setFlag(name string, on bool) {
	if on {
		t.setAttr(name, "")
		return
	}
	t.node.dom.RemoveAttribute(name)
}

func (t *Tag) setAttr(name, value string) {
	if err := t.node.dom.SetAttribute(name, value); err != nil {
		panic(fmt.Sprintf("livedom: set %s on <%s>: %v", name, t.name, err))
	}
}

// GetAttr returns the current value of an attribute.
func (t *Tag) GetAttr(name string) (string, bool) {
	return t.node.dom.Attribute(name)
}

// ID sets the id attribute.
func (t *Tag) ID(id any) *Tag { return t.Attr("id", id) }

// GetID returns the id attribute.
func (t *Tag) GetID() string {
	v, _ := t.GetAttr("id")
	return v
}

// Class sets the class attribute.
func (t *Tag) Class(class any) *Tag { return t.Attr("class", class) }

// GetClass returns the class attribute.
func (t *Tag) GetClass() string {
	v, _ := t.GetAttr("class")
	return v
}

// Placeholder sets the placeholder text of an input or textarea.
func (t *Tag) Placeholder(text any) *Tag { return t.Attr("placeholder", text) }

// Input creates an <input> of the given type.
func Input(typ string) *Tag {
	return NewTag("input").Attr("type", typ)
}
