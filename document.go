package livedom

import (
	"sync"

	"github.com/pthm/livedom/lib/dom"
	"github.com/pthm/livedom/lib/dom/memdom"
)

var (
	docMu      sync.RWMutex
	defaultDoc dom.Document = newDefaultDocument()
)

// SetDocument replaces the document new nodes are created in.
// Pass nil to restore the platform default.
func SetDocument(d dom.Document) {
	docMu.Lock()
	defer docMu.Unlock()
	if d == nil {
		d = newDefaultDocument()
	}
	defaultDoc = d
}

// Document returns the current document.
func Document() dom.Document {
	docMu.RLock()
	defer docMu.RUnlock()
	return defaultDoc
}

// MemDocument returns the current document when it is in-memory.
func MemDocument() (*memdom.Document, bool) {
	d, ok := Document().(*memdom.Document)
	return d, ok
}
