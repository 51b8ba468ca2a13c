package memdom

import (
	"github.com/vmihailenco/msgpack/v5"
)

// Attr is a name/value pair in a Snapshot.
type Attr struct {
	Name  string `msgpack:"n"`
	Value string `msgpack:"v"`
}

// Snapshot is a serializable copy of a subtree.
type Snapshot struct {
	ID       uint64     `msgpack:"id"`
	Tag      string     `msgpack:"tag,omitempty"`
	Text     string     `msgpack:"text,omitempty"`
	Attrs    []Attr     `msgpack:"attrs,omitempty"`
	Events   []string   `msgpack:"events,omitempty"`
	Children []Snapshot `msgpack:"children,omitempty"`
}

// TextContent returns the concatenated text of the snapshot.
func (s Snapshot) TextContent() string {
	if s.Tag == "" {
		return s.Text
	}
	var out string
	for _, c := range s.Children {
		out += c.TextContent()
	}
	return out
}

// Snapshot copies n and its subtree.
func (n *Node) Snapshot() Snapshot {
	n.doc.mu.RLock()
	defer n.doc.mu.RUnlock()
	return n.snapshotLocked()
}

func (n *Node) snapshotLocked() Snapshot {
	s := Snapshot{ID: n.id, Tag: n.tag, Text: n.text, Events: n.eventsLocked()}
	for _, a := range n.renderAttrsLocked() {
		s.Attrs = append(s.Attrs, Attr{Name: a.name, Value: a.value})
	}
	for _, c := range n.children {
		s.Children = append(s.Children, c.snapshotLocked())
	}
	return s
}

// Snapshot copies the body subtree.
func (d *Document) Snapshot() Snapshot {
	return d.body.Snapshot()
}

// MarshalSnapshot encodes the snapshot of n with msgpack.
func MarshalSnapshot(n *Node) ([]byte, error) {
	return msgpack.Marshal(n.Snapshot())
}

// UnmarshalSnapshot decodes data produced by MarshalSnapshot.
func UnmarshalSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	err := msgpack.Unmarshal(data, &s)
	return s, err
}
