// Package uuid implements RFC 4122 UUIDs as a fixed-size value type with
// strict canonical-form text encoding and decoding.
package uuid

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// StringLen is the length of the canonical textual form:
// 8-4-4-4-12 lowercase hex digits separated by four hyphens.
const StringLen = 36

// UUID is a 128-bit identifier in the RFC 4122 byte layout.
// It is a plain value type; the zero value is the nil UUID.
type UUID [16]byte

// Nil is the reserved all-zero UUID, used as an explicit "no identifier" sentinel.
var Nil UUID

// ErrParse is returned (wrapped with detail) by Parse, ParseBytes and
// UnmarshalText for any input that is not a canonical 36-character UUID.
var ErrParse = errors.New("invalid UUID string")

// NewV4 returns a new random (version 4) UUID. The version nibble and variant
// bits are set per RFC 4122; the remaining 122 bits come from crypto/rand.
// Safe for concurrent use.
func NewV4() UUID {
	var u UUID
	if _, err := io.ReadFull(rand.Reader, u[:]); err != nil {
		// A broken random source must not silently yield predictable
		// identifiers, so this is not a returnable error.
		panic(fmt.Sprintf("uuid: random source unavailable: %v", err))
	}
	u[6] = (u[6] & 0x0f) | 0x40 // version 4
	u[8] = (u[8] & 0x3f) | 0x80 // RFC 4122 variant
	return u
}

// MustParse is Parse that panics on malformed input, for fixtures and tests.
func MustParse(s string) UUID {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// IsNil reports whether u is the all-zero UUID.
func (u UUID) IsNil() bool {
	return u == Nil
}

// Version returns the version number encoded in the high nibble of byte 6.
func (u UUID) Version() byte {
	return u[6] >> 4
}

// Variant returns the top two bits of byte 8; RFC 4122 values have 0b10.
func (u UUID) Variant() byte {
	return u[8] >> 6
}

const hexDigits = "0123456789abcdef"

// String encodes u in canonical form. The result is always exactly StringLen
// characters and uses lowercase hex; Nil encodes to
// "00000000-0000-0000-0000-000000000000".
func (u UUID) String() string {
	var buf [StringLen]byte
	n := 0
	for i, b := range u {
		switch i {
		case 4, 6, 8, 10:
			buf[n] = '-'
			n++
		}
		buf[n] = hexDigits[b>>4]
		buf[n+1] = hexDigits[b&0x0f]
		n += 2
	}
	return string(buf[:])
}

// Parse decodes a UUID from its canonical textual form. It accepts exactly
// StringLen bytes with hyphens at the four fixed positions and hex digits
// (either case) everywhere else; braced, urn-prefixed and otherwise
// non-canonical forms are rejected. Any byte outside the ASCII hex alphabet,
// including bytes of invalid UTF-8 sequences, fails the same way. On failure
// the returned UUID is Nil, never a partially decoded value.
func Parse(s string) (UUID, error) {
	var u UUID
	if len(s) != StringLen {
		return Nil, fmt.Errorf("%w: length is %d, want %d", ErrParse, len(s), StringLen)
	}
	i, n := 0, 0
	for n < 16 {
		if i == 8 || i == 13 || i == 18 || i == 23 {
			if s[i] != '-' {
				return Nil, fmt.Errorf("%w: missing hyphen at position %d", ErrParse, i)
			}
			i++
			continue
		}
		hi, lo := hexVal(s[i]), hexVal(s[i+1])
		if hi < 0 || lo < 0 {
			return Nil, fmt.Errorf("%w: non-hex byte at position %d", ErrParse, i)
		}
		u[n] = byte(hi<<4 | lo)
		n++
		i += 2
	}
	return u, nil
}

// ParseBytes is Parse for a raw byte slice, so callers holding untrusted
// bytes do not need to convert first.
func ParseBytes(b []byte) (UUID, error) {
	return Parse(string(b))
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (u UUID) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the same strict
// contract as Parse. The receiver is not touched on failure.
func (u *UUID) UnmarshalText(b []byte) error {
	parsed, err := ParseBytes(b)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}
