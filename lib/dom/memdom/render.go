package memdom

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/a-h/templ"
)

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// Decorator returns extra attributes for an element at render time.
// events lists the event names with listeners on the element.
type Decorator func(id uint64, events []string) templ.Attributes

// Render writes the body element as HTML.
func (d *Document) Render(ctx context.Context, w io.Writer) error {
	return d.body.Render(ctx, w)
}

// Component returns the body as a templ component that applies decorate
// to every element.
func (d *Document) Component(decorate Decorator) templ.Component {
	return d.body.Component(decorate)
}

// Render writes n and its subtree as HTML.
func (n *Node) Render(ctx context.Context, w io.Writer) error {
	return n.Component(nil).Render(ctx, w)
}

// Component returns n as a templ component. Live properties such as an
// input's value are written as attributes so the markup reflects what
// the user sees.
func (n *Node) Component(decorate Decorator) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		n.doc.mu.RLock()
		defer n.doc.mu.RUnlock()
		return n.renderLocked(ctx, w, decorate)
	})
}

func (n *Node) renderLocked(ctx context.Context, w io.Writer, decorate Decorator) error {
	if n.tag == "" {
		_, err := io.WriteString(w, templ.EscapeString(n.text))
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "<"+n.tag); err != nil {
		return err
	}
	for _, a := range n.renderAttrsLocked() {
		if err := writeAttr(w, a.name, a.value); err != nil {
			return err
		}
	}
	if decorate != nil {
		extra := decorate(n.id, n.eventsLocked())
		keys := make([]string, 0, len(extra))
		for k := range extra {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			if err := writeAttrValue(w, k, extra[k]); err != nil {
				return err
			}
		}
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if voidElements[n.tag] {
		return nil
	}
	for _, c := range n.children {
		if err := c.renderLocked(ctx, w, decorate); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+n.tag+">")
	return err
}

// renderAttrsLocked merges live value/checked properties over attributes.
func (n *Node) renderAttrsLocked() []attr {
	out := slices.Clone(n.attrs)
	set := func(name, value string) {
		for i := range out {
			if out[i].name == name {
				out[i].value = value
				return
			}
		}
		out = append(out, attr{name: name, value: value})
	}
	if v, ok := n.props["value"].(string); ok {
		set("value", v)
	}
	if c, ok := n.props["checked"].(bool); ok {
		if c {
			set("checked", "")
		} else {
			out = slices.DeleteFunc(out, func(a attr) bool { return a.name == "checked" })
		}
	}
	return out
}

func writeAttr(w io.Writer, name, value string) error {
	_, err := io.WriteString(w, " "+name+"=\""+templ.EscapeString(value)+"\"")
	return err
}

func writeAttrValue(w io.Writer, name string, v any) error {
	switch v := v.(type) {
	case bool:
		if !v {
			return nil
		}
		_, err := io.WriteString(w, " "+name)
		return err
	case string:
		return writeAttr(w, name, v)
	default:
		return writeAttr(w, name, fmt.Sprint(v))
	}
}
