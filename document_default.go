//go:build !(js && wasm)

package livedom

import (
	"github.com/pthm/livedom/lib/dom"
	"github.com/pthm/livedom/lib/dom/memdom"
)

func newDefaultDocument() dom.Document {
	return memdom.New()
}
