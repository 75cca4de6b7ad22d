package base64

import (
	"errors"

	"golang.org/x/exp/slices"

	"github.com/ericlagergren/b64/internal/mem"
)

// padChar is the standard padding character.
const padChar = '='

var (
	// ErrInvalidCharacter is returned when the input contains
	// a byte outside the Base64 alphabet.
	ErrInvalidCharacter = errors.New("base64: invalid character")
	// ErrMalformedPadding is returned when the input length is
	// not a multiple of 4 or when padding appears anywhere but
	// the end of the final group.
	ErrMalformedPadding = errors.New("base64: malformed padding")
)

// StdEncoding is the standard, padded Base64 encoding.
//
// It uses the following table:
//
//	ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	abcdefghijklmnopqrstuvwxyz
//	0123456789
//	+/
var StdEncoding = &Encoding{}

// Encoding is the standard Base64 encoding.
//
// An Encoding is immutable and safe for concurrent use.
type Encoding struct {
	strict bool
}

// Strict returns an identical Encoding that operates in "strict"
// mode where all padding bits MUST be zero (see section 3.5 of
// RFC 4648).
func (e Encoding) Strict() *Encoding {
	e.strict = true
	return &e
}

// EncodedLen returns the size in bytes of the Base64 encoding
// of n source bytes.
func (e *Encoding) EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// DecodedLen returns the maximum length in bytes of n bytes of
// Base64-encoded data.
func (e *Encoding) DecodedLen(n int) int {
	return n / 4 * 3
}

// Encode encodes src, writing EncodedLen(len(src)) bytes to dst.
//
// Encode panics if dst is too short.
func (e *Encoding) Encode(dst, src []byte) {
	encode(dst, src)
}

// EncodeToString encodes src.
func (e *Encoding) EncodeToString(src []byte) string {
	dst := make([]byte, e.EncodedLen(len(src)))
	e.Encode(dst, src)
	return string(dst)
}

// AppendEncode appends the encoding of src to dst and returns
// the extended slice.
func (e *Encoding) AppendEncode(dst, src []byte) []byte {
	n := e.EncodedLen(len(src))
	dst = slices.Grow(dst, n)
	e.Encode(dst[len(dst):len(dst)+n], src)
	return dst[:len(dst)+n]
}

// Decode decodes src, writing at most DecodedLen(len(src))
// bytes to dst. It returns the number of bytes written, which
// is DecodedLen(len(src)) less one byte per padding character.
//
// If src is not valid Base64, Decode returns 0 and either
// ErrInvalidCharacter or ErrMalformedPadding. Whatever Decode
// wrote to dst before finding the error is zeroed.
//
// Decode panics if dst is too short.
func (e *Encoding) Decode(dst, src []byte) (int, error) {
	n, err := decode(dst, src, e.strict)
	if err != nil {
		mem.Wipe(dst[:min(len(dst), e.DecodedLen(len(src)))])
		return 0, err
	}
	return n, nil
}

// DecodeString decodes s.
//
// It returns a nil slice if s is not valid Base64.
func (e *Encoding) DecodeString(s string) ([]byte, error) {
	dst := make([]byte, e.DecodedLen(len(s)))
	n, err := e.Decode(dst, []byte(s))
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// AppendDecode appends the decoding of src to dst and returns
// the extended slice.
//
// If src is not valid Base64, dst is returned unextended along
// with the error.
func (e *Encoding) AppendDecode(dst, src []byte) ([]byte, error) {
	n := e.DecodedLen(len(src))
	dst = slices.Grow(dst, n)
	m, err := e.Decode(dst[len(dst):len(dst)+n], src)
	if err != nil {
		return dst, err
	}
	return dst[:len(dst)+m], nil
}
