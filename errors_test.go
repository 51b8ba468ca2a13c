package livedom

import (
	"errors"
	"fmt"
	"testing"

	"github.com/pthm/livedom/lib/broadcast"
	"github.com/pthm/livedom/lib/encoding"
)

func TestSentinelErrors(t *testing.T) {
	// Verify sentinel errors are distinct
	errs := []error{
		ErrNotFound,
		ErrIndexOutOfRange,
		ErrUnknownRoute,
		ErrUnknownAttribute,
		ErrInvalidToken,
		ErrNilComponent,
		ErrClosed,
	}

	for i, err1 := range errs {
		for j, err2 := range errs {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v and %v", err1, err2)
			}
		}
	}
}

func TestErrClosedIsBroadcastError(t *testing.T) {
	if !errors.Is(ErrClosed, broadcast.ErrClosed) {
		t.Error("ErrClosed should match broadcast.ErrClosed")
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect bool
	}{
		{"nil error", nil, false},
		{"ErrNotFound", ErrNotFound, true},
		{"wrapped ErrNotFound", fmt.Errorf("wrapped: %w", ErrNotFound), true},
		{"other error", errors.New("other error"), false},
		{"ErrIndexOutOfRange", ErrIndexOutOfRange, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsNotFound(tt.err)
			if result != tt.expect {
				t.Errorf("IsNotFound(%v) = %v, want %v", tt.err, result, tt.expect)
			}
		})
	}
}

func TestIsIndexOutOfRange(t *testing.T) {
	if !IsIndexOutOfRange(fmt.Errorf("insert: %w", ErrIndexOutOfRange)) {
		t.Error("wrapped ErrIndexOutOfRange not detected")
	}
	if IsIndexOutOfRange(ErrNotFound) {
		t.Error("ErrNotFound detected as index error")
	}
}

func TestIsTokenError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect bool
	}{
		{"nil error", nil, false},
		{"ErrInvalidToken", ErrInvalidToken, true},
		{"ErrInvalidFormat", encoding.ErrInvalidFormat, true},
		{"ErrSignatureInvalid", encoding.ErrSignatureInvalid, true},
		{"ErrDecryptFailed", encoding.ErrDecryptFailed, true},
		{"wrapped", wrapTokenError(encoding.ErrSignatureInvalid), true},
		{"ErrNotFound", ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTokenError(tt.err); got != tt.expect {
				t.Errorf("IsTokenError(%v) = %v, want %v", tt.err, got, tt.expect)
			}
		})
	}
}

func TestWrapTokenErrorKeepsCause(t *testing.T) {
	err := wrapTokenError(encoding.ErrSignatureInvalid)
	if !errors.Is(err, ErrInvalidToken) || !errors.Is(err, encoding.ErrSignatureInvalid) {
		t.Errorf("wrapTokenError lost a cause: %v", err)
	}
	if wrapTokenError(nil) != nil {
		t.Error("wrapTokenError(nil) should be nil")
	}
}
