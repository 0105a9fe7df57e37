package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidHash is returned by ParseHash for text that is not a hex run.
var ErrInvalidHash = errors.New("invalid hash")

// Hash is an opaque commit identifier. The zero value means "no hash".
type Hash struct {
	hex string
}

// ParseHash validates a hexadecimal commit identifier.
// Any non-empty run of hex digits is accepted, in either case; the stored
// form is lowercase so that hashes compare equal regardless of input case.
func ParseHash(text string) (Hash, error) {
	if text == "" {
		return Hash{}, fmt.Errorf("%w: empty", ErrInvalidHash)
	}
	for i := 0; i < len(text); i++ {
		if !isHexDigit(text[i]) {
			return Hash{}, fmt.Errorf("%w: %q", ErrInvalidHash, text)
		}
	}
	return Hash{hex: strings.ToLower(text)}, nil
}

// String returns the full hex form.
func (h Hash) String() string {
	return h.hex
}

// Short returns the first 8 characters of the hash.
func (h Hash) Short() string {
	if len(h.hex) > 8 {
		return h.hex[:8]
	}
	return h.hex
}

// IsZero reports whether h was never set.
func (h Hash) IsZero() bool {
	return h.hex == ""
}

// MarshalText implements encoding.TextMarshaler.
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.hex), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Hash) UnmarshalText(data []byte) error {
	parsed, err := ParseHash(string(data))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
