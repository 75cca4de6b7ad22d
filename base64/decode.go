package base64

import (
	"encoding/binary"

	"github.com/ericlagergren/b64/internal/mem"
)

// decode decodes src into dst, which must hold at least
// decodedLen(len(src)) bytes. It returns the number of bytes
// written.
//
// On error the contents of dst are unspecified.
func decode(dst, src []byte, strict bool) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}
	if len(src)%4 != 0 {
		return 0, ErrMalformedPadding
	}
	// A non-zero residue is the shift passed to decodeSlow.
	if shift := mem.Residue(src); shift != 0 {
		return decodeSlow(dst, src, shift, strict)
	}
	return decodeFast(dst, src, strict)
}

// groups returns the number of 8-character groups the main
// loops handle for n input characters.
//
// n must be a positive multiple of 4. The loops always leave
// 4 or 8 characters behind so that padding is only looked for
// in decodeTail.
func groups(n int) int {
	return (n - 1) / 8
}

// decodeFast decodes 8 characters per iteration, loading them
// as one 64-bit word.
func decodeFast(dst, src []byte, strict bool) (int, error) {
	var n int
	for i := groups(len(src)); i > 0; i-- {
		w := binary.LittleEndian.Uint64(src)
		c0 := decodeTable[byte(w)]
		c1 := decodeTable[byte(w>>8)]
		c2 := decodeTable[byte(w>>16)]
		c3 := decodeTable[byte(w>>24)]
		c4 := decodeTable[byte(w>>32)]
		c5 := decodeTable[byte(w>>40)]
		c6 := decodeTable[byte(w>>48)]
		c7 := decodeTable[byte(w>>56)]
		if (c0|c1|c2|c3|c4|c5|c6|c7)&0x80 != 0 {
			return n, corrupt(src[:8])
		}
		decodeQuantum(dst[n:], c0, c1, c2, c3)
		decodeQuantum(dst[n+3:], c4, c5, c6, c7)
		src = src[8:]
		n += 6
	}
	return decodeTail(dst, src, n, strict)
}

// decodeSlow decodes 8 characters per iteration for input that
// starts shift bytes past a word boundary.
//
// Every group starts at the same residue, so the 4 characters
// at offset 4-shift are always word aligned and are loaded
// together. The rest are read one at a time.
func decodeSlow(dst, src []byte, shift int, strict bool) (int, error) {
	if shift < 1 || shift > 3 {
		panic("base64: invalid shift")
	}
	k := 4 - shift

	var n int
	for i := groups(len(src)); i > 0; i-- {
		var g [8]byte
		for j := 0; j < k; j++ {
			g[j] = decodeTable[src[j]]
		}
		w := binary.LittleEndian.Uint32(src[k:])
		g[k+0] = decodeTable[byte(w)]
		g[k+1] = decodeTable[byte(w>>8)]
		g[k+2] = decodeTable[byte(w>>16)]
		g[k+3] = decodeTable[byte(w>>24)]
		for j := k + 4; j < 8; j++ {
			g[j] = decodeTable[src[j]]
		}
		if (g[0]|g[1]|g[2]|g[3]|g[4]|g[5]|g[6]|g[7])&0x80 != 0 {
			return n, corrupt(src[:8])
		}
		decodeQuantum(dst[n:], g[0], g[1], g[2], g[3])
		decodeQuantum(dst[n+3:], g[4], g[5], g[6], g[7])
		src = src[8:]
		n += 6
	}
	return decodeTail(dst, src, n, strict)
}

// decodeTail decodes the last 4 or 8 characters. n is the
// number of bytes already written to dst.
func decodeTail(dst, src []byte, n int, strict bool) (int, error) {
	switch len(src) {
	case 8:
		c0 := decodeTable[src[0]]
		c1 := decodeTable[src[1]]
		c2 := decodeTable[src[2]]
		c3 := decodeTable[src[3]]
		if (c0|c1|c2|c3)&0x80 != 0 {
			return n, corrupt(src[:4])
		}
		decodeQuantum(dst[n:], c0, c1, c2, c3)
		src = src[4:]
		n += 3
	case 4:
	default:
		panic("base64: decodeTail called with a partial group")
	}
	m, err := decodeFinal(dst[n:], src, strict)
	return n + m, err
}

// decodeQuantum writes the 3 bytes encoded by the 6-bit values
// a, b, c, and d to dst[:3].
func decodeQuantum(dst []byte, a, b, c, d byte) {
	_ = dst[2]
	dst[0] = a<<2 | b>>4
	dst[1] = b<<4 | c>>2
	dst[2] = c<<6 | d
}

// decodeFinal decodes the last group of the input, which may
// end in one or two padding characters. It returns the number
// of bytes written to dst: 3, 2, or 1.
func decodeFinal(dst, src []byte, strict bool) (int, error) {
	_ = src[3]
	a := decodeTable[src[0]]
	b := decodeTable[src[1]]
	c := decodeTable[src[2]]
	d := decodeTable[src[3]]

	switch {
	case src[3] != padChar:
		if (a|b|c|d)&0x80 != 0 {
			return 0, corrupt(src)
		}
		decodeQuantum(dst, a, b, c, d)
		return 3, nil
	case src[2] != padChar:
		if (a|b|c)&0x80 != 0 {
			return 0, corrupt(src[:3])
		}
		// The low 2 bits of c are not part of the output.
		if strict && c&0x3 != 0 {
			return 0, ErrMalformedPadding
		}
		_ = dst[1]
		dst[0] = a<<2 | b>>4
		dst[1] = b<<4 | c>>2
		return 2, nil
	default:
		if (a|b)&0x80 != 0 {
			return 0, corrupt(src[:2])
		}
		// The low 4 bits of b are not part of the output.
		if strict && b&0xf != 0 {
			return 0, ErrMalformedPadding
		}
		dst[0] = a<<2 | b>>4
		return 1, nil
	}
}

// corrupt reports why a group failed the validity check.
func corrupt(group []byte) error {
	for _, c := range group {
		if decodeTable[c]&0x80 == 0 {
			continue
		}
		if c == padChar {
			return ErrMalformedPadding
		}
		return ErrInvalidCharacter
	}
	return ErrInvalidCharacter
}
