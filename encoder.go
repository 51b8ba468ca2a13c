package livedom

import (
	"fmt"

	"github.com/pthm/livedom/lib/encoding"
)

// Encoder is an alias for encoding.Encoder for convenience.
type Encoder = encoding.Encoder

// NewEncoder creates a new encoder with the given key.
func NewEncoder(key []byte) (*Encoder, error) {
	return encoding.NewEncoder(key)
}

// eventToken names a listener on a rendered element.
type eventToken struct {
	Node  uint64 `msgpack:"n"`
	Event string `msgpack:"e"`
}

// wrapTokenError marks encoding failures as ErrInvalidToken while
// keeping the underlying cause inspectable.
func wrapTokenError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidToken, err)
}
