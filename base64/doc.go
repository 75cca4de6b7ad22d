// Package base64 implements the standard, padded Base64 encoding
// specified by RFC 4648.
//
// # Strategy
//
// Both directions pick an engine from the address of the input.
//
// Encoding looks at the input address modulo 4. Aligned input
// is encoded 12 bytes at a time, read as one 64-bit and one
// 32-bit word. Input one byte past a boundary is realigned by
// encoding a single 3-byte group first. Anything else is
// encoded 3 bytes at a time with single-byte reads.
//
// Decoding reads 8 characters per iteration and rejects the
// whole group with a single test if any of them is outside the
// alphabet. Aligned input is read as one 64-bit word. Otherwise
// the 4 characters of each group that sit on a word boundary
// are read together and the rest individually. Padding is only
// looked for in the final 4 characters.
//
// The output never depends on which engine ran.
//
// # Comparison to encoding/base64
//
// Only the standard alphabet with '=' padding is supported.
// There is no streaming API and no line wrapping.
//
// Unlike encoding/base64, this package rejects the newline
// characters '\r' and '\n', and does not return partial output.
// For example:
//
//	src := []byte("aGVsb?8=")
//	// encoding/base64: 3, CorruptInputError(5)
//	// this package:    0, ErrInvalidCharacter
//	n, err := StdEncoding.Decode(dst, src)
package base64
