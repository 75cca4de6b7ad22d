// Package mem holds the small amount of memory-level plumbing
// the codecs need: address alignment checks and wiping.
package mem

import (
	"runtime"
	"unsafe"
)

// WordSize is the boundary, in bytes, that word loads are
// gated on.
//
// Base64 works on 3 and 4 byte groups, so only 4-byte
// alignment can be recovered by skipping whole groups.
const WordSize = 4

// Residue returns the address of p[0] modulo WordSize.
//
// An empty slice has no address and is reported as aligned.
func Residue(p []byte) int {
	if len(p) == 0 {
		return 0
	}
	return int(uintptr(unsafe.Pointer(&p[0])) & (WordSize - 1))
}

// Wipe sets every byte in x to zero.
//
//go:noinline
func Wipe(x []byte) {
	for i := range x {
		x[i] = 0
	}
	// Keep the loop from being eliminated as a dead store.
	runtime.KeepAlive(x)
}
