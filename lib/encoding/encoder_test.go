package encoding

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type eventToken struct {
	Node  uint64 `msgpack:"n"`
	Event string `msgpack:"e"`
	Tags  []string
}

func TestNewEncoder(t *testing.T) {
	// Should work with any key length (derives 32-byte key)
	if _, err := NewEncoder([]byte("short")); err != nil {
		t.Fatalf("NewEncoder with short key failed: %v", err)
	}
	if _, err := NewEncoder([]byte("this-is-a-32-byte-key-for-aes!!!")); err != nil {
		t.Fatalf("NewEncoder with 32-byte key failed: %v", err)
	}
}

func TestSignedRoundTrip(t *testing.T) {
	enc, err := NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	original := eventToken{Node: 12345, Event: "click", Tags: []string{"a", "b"}}
	encoded, err := enc.Encode(original, false)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !strings.Contains(encoded, ".") {
		t.Fatalf("signed token %q has no signature separator", encoded)
	}

	var decoded eventToken
	if err := enc.Decode(encoded, false, &decoded); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if diff := cmp.Diff(original, decoded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncryptedRoundTrip(t *testing.T) {
	enc, err := NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	original := eventToken{Node: 67890, Event: "input"}
	encoded, err := enc.Encode(original, true)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if strings.Contains(encoded, "input") {
		t.Errorf("encrypted token leaks payload: %q", encoded)
	}

	var decoded eventToken
	if err := enc.Decode(encoded, true, &decoded); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.Node != original.Node || decoded.Event != original.Event {
		t.Errorf("decoded = %+v, want %+v", decoded, original)
	}
}

func TestSignatureVerificationFailure(t *testing.T) {
	enc, _ := NewEncoder([]byte("test-key"))

	encoded, err := enc.Encode(eventToken{Node: 1, Event: "click"}, false)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	payload, _, _ := strings.Cut(encoded, ".")
	forged, _ := enc.Encode(eventToken{Node: 2, Event: "click"}, false)
	_, forgedSig, _ := strings.Cut(forged, ".")

	var decoded eventToken
	err = enc.Decode(payload+"."+forgedSig, false, &decoded)
	if !errors.Is(err, ErrSignatureInvalid) {
		t.Errorf("Decode with mismatched signature = %v, want ErrSignatureInvalid", err)
	}
}

func TestDecryptionFailure(t *testing.T) {
	enc, _ := NewEncoder([]byte("test-key"))

	encoded, err := enc.Encode(eventToken{Node: 1}, true)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	tampered := encoded[:len(encoded)-2] + "XX"
	var decoded eventToken
	if err := enc.Decode(tampered, true, &decoded); err == nil {
		t.Error("expected error for tampered ciphertext, got nil")
	}
}

func TestInvalidFormat(t *testing.T) {
	enc, _ := NewEncoder([]byte("test-key"))

	var decoded eventToken
	err := enc.Decode("invalidbase64withoutseparator", false, &decoded)
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat, got: %v", err)
	}
}

func TestDifferentKeysCannotDecode(t *testing.T) {
	enc1, _ := NewEncoder([]byte("key-one"))
	enc2, _ := NewEncoder([]byte("key-two"))

	encoded, err := enc1.Encode(eventToken{Node: 123}, false)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var decoded eventToken
	if err := enc2.Decode(encoded, false, &decoded); !errors.Is(err, ErrSignatureInvalid) {
		t.Errorf("decode with other key = %v, want ErrSignatureInvalid", err)
	}
}

func TestMarshalAnyValue(t *testing.T) {
	data, err := Marshal(map[string]any{"count": int64(3)})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var got map[string]any
	if err := Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if got["count"] != int64(3) && got["count"] != int8(3) {
		t.Errorf("count = %#v", got["count"])
	}

	if err := Unmarshal([]byte{0xc1}, &got); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Unmarshal garbage = %v, want ErrInvalidFormat", err)
	}
}
