// Package memdom is an in-memory implementation of dom.Document.
//
// It is the default document outside the browser: the headless host
// serves it over HTTP and tests assert against it. All operations are
// safe for concurrent use; a single lock guards the whole tree and
// listeners always run with the lock released.
package memdom

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/pthm/livedom/lib/dom"
)

// Document is an in-memory DOM tree rooted at a body element.
type Document struct {
	mu     sync.RWMutex
	nextID uint64
	// nodes indexes the attached nodes only; detached subtrees are
	// dropped as soon as they leave the body.
	nodes map[uint64]*Node
	body  *Node
}

// New returns an empty document.
func New() *Document {
	d := &Document{nodes: make(map[uint64]*Node)}
	d.body = d.newNode("body", "")
	d.nodes[d.body.id] = d.body
	return d
}

func (d *Document) newNode(tag, text string) *Node {
	d.nextID++
	return &Node{doc: d, id: d.nextID, tag: tag, text: text}
}

func (d *Document) trackLocked(n *Node) {
	d.nodes[n.id] = n
	for _, c := range n.children {
		d.trackLocked(c)
	}
}

func (d *Document) untrackLocked(n *Node) {
	delete(d.nodes, n.id)
	for _, c := range n.children {
		d.untrackLocked(c)
	}
}

// CreateElement creates a detached element.
func (d *Document) CreateElement(tag string) (dom.Node, error) {
	if !validName(tag) {
		return nil, fmt.Errorf("memdom: invalid tag name %q", tag)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.newNode(strings.ToLower(tag), ""), nil
}

// CreateTextNode creates a detached text node.
func (d *Document) CreateTextNode(text string) dom.Node {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.newNode("", text)
}

// Body returns the body element.
func (d *Document) Body() dom.Node {
	return d.body
}

// Lookup returns the node with the given id, if it is still attached to
// the body.
func (d *Document) Lookup(id uint64) (*Node, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	n, ok := d.nodes[id]
	return n, ok
}

// Indexed returns the number of nodes Lookup can find, body included.
func (d *Document) Indexed() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.nodes)
}

type attr struct {
	name  string
	value string
}

type listener struct {
	fn func(dom.Event)
}

// Node is an element (tag != "") or a text node.
type Node struct {
	doc       *Document
	id        uint64
	tag       string
	text      string
	attrs     []attr
	props     map[string]any
	parent    *Node
	children  []*Node
	listeners map[string][]*listener
	mutations int
}

// ID returns the node's document-unique identifier.
func (n *Node) ID() uint64 { return n.id }

// Tag returns the lower-cased tag name, or "" for text nodes.
func (n *Node) Tag() string { return n.tag }

// IsText reports whether n is a text node.
func (n *Node) IsText() bool { return n.tag == "" }

// Mutations returns how many writes have touched this node directly.
func (n *Node) Mutations() int {
	n.doc.mu.RLock()
	defer n.doc.mu.RUnlock()
	return n.mutations
}

// Parent returns the parent node or nil.
func (n *Node) Parent() *Node {
	n.doc.mu.RLock()
	defer n.doc.mu.RUnlock()
	return n.parent
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	n.doc.mu.RLock()
	defer n.doc.mu.RUnlock()
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

func (n *Node) attachedLocked() bool {
	for p := n; p != nil; p = p.parent {
		if p == n.doc.body {
			return true
		}
	}
	return false
}

func (n *Node) own(child dom.Node) (*Node, error) {
	c, ok := child.(*Node)
	if !ok || c == nil || c.doc != n.doc {
		return nil, dom.ErrForeignNode
	}
	return c, nil
}

func (n *Node) indexLocked(c *Node) int {
	for i, x := range n.children {
		if x == c {
			return i
		}
	}
	return -1
}

func (n *Node) detachLocked(c *Node) {
	if i := n.indexLocked(c); i >= 0 {
		if n.attachedLocked() {
			n.doc.untrackLocked(c)
		}
		n.children = append(n.children[:i], n.children[i+1:]...)
		c.parent = nil
		n.mutations++
	}
}

func (n *Node) checkInsertLocked(c *Node) error {
	if n.tag == "" {
		return dom.ErrHierarchy
	}
	for p := n; p != nil; p = p.parent {
		if p == c {
			return dom.ErrHierarchy
		}
	}
	return nil
}

// AppendChild appends child, moving it from its current parent.
func (n *Node) AppendChild(child dom.Node) error {
	return n.InsertBefore(child, nil)
}

// InsertBefore inserts child before ref, or appends when ref is nil.
func (n *Node) InsertBefore(child, ref dom.Node) error {
	c, err := n.own(child)
	if err != nil {
		return err
	}
	var r *Node
	if ref != nil {
		if r, err = n.own(ref); err != nil {
			return err
		}
	}

	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()
	if err := n.checkInsertLocked(c); err != nil {
		return err
	}
	if r != nil && r.parent != n {
		return dom.ErrNotChild
	}
	if c == r {
		return nil
	}
	if c.parent != nil {
		c.parent.detachLocked(c)
	}
	at := len(n.children)
	if r != nil {
		at = n.indexLocked(r)
	}
	n.children = append(n.children, nil)
	copy(n.children[at+1:], n.children[at:])
	n.children[at] = c
	c.parent = n
	n.mutations++
	if n.attachedLocked() {
		n.doc.trackLocked(c)
	}
	return nil
}

// RemoveChild detaches child.
func (n *Node) RemoveChild(child dom.Node) error {
	c, err := n.own(child)
	if err != nil {
		return err
	}
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()
	if c.parent != n {
		return dom.ErrNotChild
	}
	n.detachLocked(c)
	return nil
}

// ReplaceChild puts newChild where oldChild was.
func (n *Node) ReplaceChild(newChild, oldChild dom.Node) error {
	nc, err := n.own(newChild)
	if err != nil {
		return err
	}
	oc, err := n.own(oldChild)
	if err != nil {
		return err
	}
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()
	if oc.parent != n {
		return dom.ErrNotChild
	}
	if nc == oc {
		return nil
	}
	if err := n.checkInsertLocked(nc); err != nil {
		return err
	}
	if nc.parent != nil {
		nc.parent.detachLocked(nc)
	}
	attached := n.attachedLocked()
	if attached {
		n.doc.untrackLocked(oc)
	}
	i := n.indexLocked(oc)
	n.children[i] = nc
	nc.parent = n
	oc.parent = nil
	n.mutations++
	if attached {
		n.doc.trackLocked(nc)
	}
	return nil
}

// FirstChild returns the first child or nil.
func (n *Node) FirstChild() dom.Node {
	n.doc.mu.RLock()
	defer n.doc.mu.RUnlock()
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// SetTextContent sets a text node's data, or replaces an element's
// children with a single text node.
func (n *Node) SetTextContent(text string) {
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()
	n.mutations++
	if n.tag == "" {
		n.text = text
		return
	}
	attached := n.attachedLocked()
	for _, c := range n.children {
		if attached {
			n.doc.untrackLocked(c)
		}
		c.parent = nil
	}
	n.children = nil
	if text != "" {
		t := n.doc.newNode("", text)
		t.parent = n
		n.children = []*Node{t}
		if attached {
			n.doc.nodes[t.id] = t
		}
	}
}

// TextContent returns the concatenated text of n and its descendants.
func (n *Node) TextContent() string {
	n.doc.mu.RLock()
	defer n.doc.mu.RUnlock()
	var sb strings.Builder
	n.textLocked(&sb)
	return sb.String()
}

func (n *Node) textLocked(sb *strings.Builder) {
	if n.tag == "" {
		sb.WriteString(n.text)
		return
	}
	for _, c := range n.children {
		c.textLocked(sb)
	}
}

// SetAttribute sets or replaces an attribute, keeping insertion order.
func (n *Node) SetAttribute(name, value string) error {
	if !validName(name) {
		return fmt.Errorf("memdom: invalid attribute name %q", name)
	}
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()
	if n.tag == "" {
		return dom.ErrHierarchy
	}
	n.mutations++
	name = strings.ToLower(name)
	for i := range n.attrs {
		if n.attrs[i].name == name {
			n.attrs[i].value = value
			return nil
		}
	}
	n.attrs = append(n.attrs, attr{name: name, value: value})
	return nil
}

// Attribute returns the named attribute.
func (n *Node) Attribute(name string) (string, bool) {
	n.doc.mu.RLock()
	defer n.doc.mu.RUnlock()
	name = strings.ToLower(name)
	for _, a := range n.attrs {
		if a.name == name {
			return a.value, true
		}
	}
	return "", false
}

// RemoveAttribute deletes the named attribute if present.
func (n *Node) RemoveAttribute(name string) {
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()
	name = strings.ToLower(name)
	for i, a := range n.attrs {
		if a.name == name {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			n.mutations++
			return
		}
	}
}

// SetProperty stores a live property.
func (n *Node) SetProperty(name string, value any) {
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()
	if n.props == nil {
		n.props = make(map[string]any)
	}
	n.props[name] = value
	n.mutations++
}

// Property returns a live property or nil.
func (n *Node) Property(name string) any {
	n.doc.mu.RLock()
	defer n.doc.mu.RUnlock()
	return n.props[name]
}

// AddEventListener registers fn for event.
func (n *Node) AddEventListener(event string, fn func(dom.Event)) func() {
	l := &listener{fn: fn}
	n.doc.mu.Lock()
	if n.listeners == nil {
		n.listeners = make(map[string][]*listener)
	}
	n.listeners[event] = append(n.listeners[event], l)
	n.doc.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			n.doc.mu.Lock()
			defer n.doc.mu.Unlock()
			ls := n.listeners[event]
			for i, x := range ls {
				if x == l {
					n.listeners[event] = append(ls[:i:i], ls[i+1:]...)
					break
				}
			}
			if len(n.listeners[event]) == 0 {
				delete(n.listeners, event)
			}
		})
	}
}

// Events returns the event names that currently have listeners on n.
func (n *Node) Events() []string {
	n.doc.mu.RLock()
	defer n.doc.mu.RUnlock()
	return n.eventsLocked()
}

func (n *Node) eventsLocked() []string {
	if len(n.listeners) == 0 {
		return nil
	}
	out := make([]string, 0, len(n.listeners))
	for ev := range n.listeners {
		out = append(out, ev)
	}
	slices.Sort(out)
	return out
}

// Dispatch delivers ev to the listeners registered on target. For input
// and change events a non-empty ev.Value is stored in the "value"
// property first, the way a browser updates the element before firing.
// It returns the number of listeners invoked.
func Dispatch(target dom.Node, ev dom.Event) int {
	n, ok := target.(*Node)
	if !ok || n == nil {
		return 0
	}
	if ev.Target == nil {
		ev.Target = n
	}

	n.doc.mu.Lock()
	if (ev.Type == "input" || ev.Type == "change") && ev.Value != "" {
		if n.props == nil {
			n.props = make(map[string]any)
		}
		n.props["value"] = ev.Value
	}
	ls := make([]*listener, len(n.listeners[ev.Type]))
	copy(ls, n.listeners[ev.Type])
	n.doc.mu.Unlock()

	for _, l := range ls {
		l.fn(ev)
	}
	return len(ls)
}

// validName accepts the characters browsers accept in tag and attribute
// names produced by markup.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == ':' || r == '.':
		default:
			return false
		}
	}
	return true
}
