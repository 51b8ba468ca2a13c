package livedom

import (
	"errors"

	"github.com/pthm/livedom/lib/broadcast"
	"github.com/pthm/livedom/lib/encoding"
)

// Sentinel errors for state and DOM operations.
var (
	ErrNotFound         = errors.New("livedom: element not found")
	ErrIndexOutOfRange  = errors.New("livedom: index out of range")
	ErrUnknownRoute     = errors.New("livedom: unknown route")
	ErrUnknownAttribute = errors.New("livedom: attribute not valid for element")
	ErrInvalidToken     = errors.New("livedom: invalid event token")
	ErrNilComponent     = errors.New("livedom: nil component")

	// ErrClosed is returned by channel operations after Close.
	ErrClosed = broadcast.ErrClosed
)

// IsNotFound checks if err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsIndexOutOfRange checks if err is an index error from a StateVec.
func IsIndexOutOfRange(err error) bool {
	return errors.Is(err, ErrIndexOutOfRange)
}

// IsTokenError checks if err came from decoding an event token.
func IsTokenError(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, encoding.ErrInvalidFormat) ||
		errors.Is(err, encoding.ErrSignatureInvalid) ||
		errors.Is(err, encoding.ErrDecryptFailed)
}
