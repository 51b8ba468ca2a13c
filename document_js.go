//go:build js && wasm

package livedom

import (
	"github.com/pthm/livedom/lib/dom"
	"github.com/pthm/livedom/lib/dom/jsdom"
)

func newDefaultDocument() dom.Document {
	return jsdom.New()
}
