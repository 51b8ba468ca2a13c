//go:build js && wasm

// Package jsdom implements dom.Document on top of the browser DOM.
package jsdom

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/pthm/livedom/lib/dom"
)

// Document wraps the global document object.
type Document struct {
	doc js.Value
}

// New returns the browser's document.
func New() *Document {
	return &Document{doc: js.Global().Get("document")}
}

// CreateElement calls document.createElement.
func (d *Document) CreateElement(tag string) (n dom.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("jsdom: createElement(%q): %v", tag, r)
		}
	}()
	return &Node{v: d.doc.Call("createElement", tag)}, nil
}

// CreateTextNode calls document.createTextNode.
func (d *Document) CreateTextNode(text string) dom.Node {
	return &Node{v: d.doc.Call("createTextNode", text)}
}

// Body returns document.body.
func (d *Document) Body() dom.Node {
	return &Node{v: d.doc.Get("body")}
}

// Node wraps a js.Value holding a DOM node.
type Node struct {
	v js.Value
}

// Value returns the underlying JavaScript object.
func (n *Node) Value() js.Value { return n.v }

func value(n dom.Node) (js.Value, error) {
	if n == nil {
		return js.Null(), nil
	}
	jn, ok := n.(*Node)
	if !ok {
		return js.Undefined(), dom.ErrForeignNode
	}
	return jn.v, nil
}

// call converts a thrown DOMException into an error.
func (n *Node) call(method string, args ...any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if jsErr, ok := r.(js.Error); ok {
				if jsErr.Get("name").String() == "NotFoundError" {
					err = dom.ErrNotChild
					return
				}
				if jsErr.Get("name").String() == "HierarchyRequestError" {
					err = dom.ErrHierarchy
					return
				}
				err = errors.New(jsErr.Error())
				return
			}
			err = fmt.Errorf("jsdom: %s: %v", method, r)
		}
	}()
	n.v.Call(method, args...)
	return nil
}

func (n *Node) AppendChild(child dom.Node) error {
	c, err := value(child)
	if err != nil {
		return err
	}
	return n.call("appendChild", c)
}

func (n *Node) InsertBefore(child, ref dom.Node) error {
	c, err := value(child)
	if err != nil {
		return err
	}
	r, err := value(ref)
	if err != nil {
		return err
	}
	return n.call("insertBefore", c, r)
}

func (n *Node) RemoveChild(child dom.Node) error {
	c, err := value(child)
	if err != nil {
		return err
	}
	return n.call("removeChild", c)
}

func (n *Node) ReplaceChild(newChild, oldChild dom.Node) error {
	nc, err := value(newChild)
	if err != nil {
		return err
	}
	oc, err := value(oldChild)
	if err != nil {
		return err
	}
	return n.call("replaceChild", nc, oc)
}

func (n *Node) FirstChild() dom.Node {
	c := n.v.Get("firstChild")
	if c.IsNull() || c.IsUndefined() {
		return nil
	}
	return &Node{v: c}
}

func (n *Node) SetTextContent(text string) { n.v.Set("textContent", text) }

func (n *Node) TextContent() string { return n.v.Get("textContent").String() }

func (n *Node) SetAttribute(name, value string) error {
	return n.call("setAttribute", name, value)
}

func (n *Node) Attribute(name string) (string, bool) {
	v := n.v.Call("getAttribute", name)
	if v.IsNull() {
		return "", false
	}
	return v.String(), true
}

func (n *Node) RemoveAttribute(name string) { n.v.Call("removeAttribute", name) }

func (n *Node) SetProperty(name string, value any) { n.v.Set(name, value) }

func (n *Node) Property(name string) any {
	v := n.v.Get(name)
	switch v.Type() {
	case js.TypeString:
		return v.String()
	case js.TypeBoolean:
		return v.Bool()
	case js.TypeNumber:
		return v.Float()
	case js.TypeNull, js.TypeUndefined:
		return nil
	default:
		return v
	}
}

// AddEventListener wraps fn in a js.Func that is released on removal.
func (n *Node) AddEventListener(event string, fn func(dom.Event)) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := dom.Event{Type: event, Target: n}
		if len(args) > 0 {
			if target := args[0].Get("target"); !target.IsUndefined() && !target.IsNull() {
				ev.Target = &Node{v: target}
				if v := target.Get("value"); v.Type() == js.TypeString {
					ev.Value = v.String()
				}
			}
		}
		fn(ev)
		return nil
	})
	n.v.Call("addEventListener", event, cb)

	removed := false
	return func() {
		if removed {
			return
		}
		removed = true
		n.v.Call("removeEventListener", event, cb)
		cb.Release()
	}
}
