package livedom

import (
	"encoding"
	"fmt"
	"reflect"

	"github.com/pthm/livedom/lib/dom"
)

// Bind writes the element's value into s on every input event. The
// text is parsed into T; unparsable input stores the zero value.
func Bind[T any](t *Tag, s State[T]) *Tag {
	return BindFunc(t, s, parseValue[T])
}

// DoubleBind is Bind plus the reverse direction: changes to s are
// written back into the element's value.
func DoubleBind[T any](t *Tag, s State[T]) *Tag {
	watch[T](t.node, s, func(v T) {
		t.node.dom.SetProperty("value", fmt.Sprint(v))
	})
	return Bind(t, s)
}

// BindFunc stores fn(value) into s on every input event.
//
//	length := livedom.NewAtomic(0)
//	livedom.BindFunc(livedom.Input("text"), length, func(s string) int { return len(s) })
func BindFunc[T any](t *Tag, s State[T], fn func(string) T) *Tag {
	return OnEvent(t, "input", s, func(st State[T], ev dom.Event) {
		st.Put(fn(inputValue(t, ev)))
	})
}

func inputValue(t *Tag, ev dom.Event) string {
	if v, ok := t.node.dom.Property("value").(string); ok {
		return v
	}
	return ev.Value
}

// parseValue converts input text to T. Strings are taken verbatim,
// encoding.TextUnmarshaler is honored, everything else goes through
// fmt.Sscan.
func parseValue[T any](s string) T {
	var v T
	p := any(&v)
	if u, ok := p.(encoding.TextUnmarshaler); ok {
		if err := u.UnmarshalText([]byte(s)); err != nil {
			var zero T
			return zero
		}
		return v
	}
	rv := reflect.ValueOf(&v).Elem()
	if rv.Kind() == reflect.String {
		rv.SetString(s)
		return v
	}
	if _, err := fmt.Sscan(s, p); err != nil {
		var zero T
		return zero
	}
	return v
}
