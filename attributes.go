package livedom

import (
	"strings"
	"sync"
)

//go:generate go run ./cmd/livedom generate .

// elementSpec is one row of the generated element table.
type elementSpec struct {
	Name       string
	Void       bool
	Attributes []string
}

type attributeIndex struct {
	global   map[string]bool
	elements map[string]map[string]bool
	void     map[string]bool
}

var attributes = sync.OnceValue(func() *attributeIndex {
	idx := &attributeIndex{
		global:   make(map[string]bool, len(globalAttributes)),
		elements: make(map[string]map[string]bool, len(elementTable)),
		void:     make(map[string]bool),
	}
	for _, a := range globalAttributes {
		idx.global[a] = true
	}
	for _, e := range elementTable {
		set := make(map[string]bool, len(e.Attributes))
		for _, a := range e.Attributes {
			set[a] = true
		}
		idx.elements[e.Name] = set
		if e.Void {
			idx.void[e.Name] = true
		}
	}
	return idx
})

// ValidAttribute reports whether name may be set on a tag element.
// data-* and aria-* attributes and the global attributes are legal
// everywhere. Elements missing from the table, custom elements
// included, accept any attribute.
func ValidAttribute(tag, name string) bool {
	tag, name = strings.ToLower(tag), strings.ToLower(name)
	if name == "" {
		return false
	}
	if strings.HasPrefix(name, "data-") || strings.HasPrefix(name, "aria-") {
		return true
	}
	idx := attributes()
	if idx.global[name] {
		return true
	}
	set, ok := idx.elements[tag]
	if !ok {
		return true
	}
	return set[name]
}

// IsVoidElement reports whether tag never has children.
func IsVoidElement(tag string) bool {
	return attributes().void[strings.ToLower(tag)]
}
