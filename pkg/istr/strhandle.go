package istr

import (
	"errors"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned by StrFromUTF8 when a handle's bytes are not
// valid UTF-8.
var ErrInvalidUTF8 = errors.New("istr: handle content is not valid UTF-8")

// StrHandle is a UTF-8-validated view over a Handle. It carries no
// additional allocation; it is only the validation proof plus the
// underlying Handle.
type StrHandle struct {
	h Handle
}

// StrFromUTF8 validates h's bytes as UTF-8 and returns a StrHandle, or
// ErrInvalidUTF8 if validation fails. Validation is O(n) in the string's
// length and is deliberately not performed on the byte-oriented
// Intern/Lookup path, so callers who know their data is ASCII or already
// validated elsewhere pay nothing for it.
func StrFromUTF8(h Handle) (StrHandle, error) {
	if !utf8.Valid(h.Bytes()) {
		return StrHandle{}, ErrInvalidUTF8
	}
	return StrHandle{h: h}, nil
}

// StrFromUTF8Unchecked wraps h as a StrHandle without validation. The
// caller is asserting the bytes are valid UTF-8; violating that assertion
// produces a StrHandle whose String method can return ill-formed text.
func StrFromUTF8Unchecked(h Handle) StrHandle {
	return StrHandle{h: h}
}

// Handle returns the underlying byte-oriented Handle.
func (s StrHandle) Handle() Handle { return s.h }

// Len returns the number of bytes (not runes) in the string.
func (s StrHandle) Len() int { return s.h.Len() }

// String returns the interned text as a Go string, without copying.
func (s StrHandle) String() string { return s.h.String() }
