// Package report routes errors that have no caller to return to.
//
// Background goroutines (state bindings, derivations, list views) never
// surface errors to user code. When something unexpected happens they
// build an *Error and hand it to the global Handler, which logs to stderr
// by default.
package report

import (
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindChannel indicates a broadcast or queue delivery failure.
	KindChannel
	// KindDOM indicates a failed presentation-layer operation.
	KindDOM
	// KindAttribute indicates an attribute that is not legal for its element.
	KindAttribute
	// KindFetch indicates a failed remote fetch or relay.
	KindFetch
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindChannel:
		return "channel"
	case KindDOM:
		return "dom"
	case KindAttribute:
		return "attribute"
	case KindFetch:
		return "fetch"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error is a structured error reported from a background operation.
type Error struct {
	// Op is the operation that failed (e.g., "statevec.publish").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked.
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Handler receives reported errors.
type Handler interface {
	HandleError(err *Error)
	HandlePanic(err *PanicError)
}
