package base64

import "encoding/binary"

// encode writes the Base64 encoding of src to dst, which must
// hold at least encodedLen(len(src)) bytes.
func encode(dst, src []byte) {
	if len(src) == 0 {
		return
	}
	switch classifyEncode(src) {
	case aligned:
		encodeFast(dst, src)
	case realignable:
		encodeQuantum(dst, src[0], src[1], src[2])
		encodeFast(dst[4:], src[3:])
	default:
		encodeSlow(dst, src)
	}
}

// encodeFast encodes 12 source bytes per iteration, loading
// them as one 64-bit and one 32-bit word.
func encodeFast(dst, src []byte) {
	for len(src) >= 12 {
		lo := binary.LittleEndian.Uint64(src)
		hi := binary.LittleEndian.Uint32(src[8:])

		b0, b1, b2, b3 := byte(lo), byte(lo>>8), byte(lo>>16), byte(lo>>24)
		b4, b5, b6, b7 := byte(lo>>32), byte(lo>>40), byte(lo>>48), byte(lo>>56)
		b8, b9, b10, b11 := byte(hi), byte(hi>>8), byte(hi>>16), byte(hi>>24)

		// The indices that straddle two source bytes. Each
		// is masked to 6 bits at the lookup.
		i0 := b0<<4 | b1>>4
		i1 := b1<<2 | b2>>6
		i2 := b3<<4 | b4>>4
		i3 := b4<<2 | b5>>6
		i4 := b6<<4 | b7>>4
		i5 := b7<<2 | b8>>6
		i6 := b9<<4 | b10>>4
		i7 := b10<<2 | b11>>6

		_ = dst[15]
		dst[0] = encodeTable[b0>>2]
		dst[1] = encodeTable[i0&0x3f]
		dst[2] = encodeTable[i1&0x3f]
		dst[3] = encodeTable[b2&0x3f]
		dst[4] = encodeTable[b3>>2]
		dst[5] = encodeTable[i2&0x3f]
		dst[6] = encodeTable[i3&0x3f]
		dst[7] = encodeTable[b5&0x3f]
		dst[8] = encodeTable[b6>>2]
		dst[9] = encodeTable[i4&0x3f]
		dst[10] = encodeTable[i5&0x3f]
		dst[11] = encodeTable[b8&0x3f]
		dst[12] = encodeTable[b9>>2]
		dst[13] = encodeTable[i6&0x3f]
		dst[14] = encodeTable[i7&0x3f]
		dst[15] = encodeTable[b11&0x3f]

		src = src[12:]
		dst = dst[16:]
	}
	encodeTail(dst, src)
}

// encodeTail encodes the 0-11 bytes left over by encodeFast.
func encodeTail(dst, src []byte) {
	n := len(src) / 3 * 3
	switch n {
	case 9:
		encodeQuantum(dst[8:], src[6], src[7], src[8])
		fallthrough
	case 6:
		encodeQuantum(dst[4:], src[3], src[4], src[5])
		fallthrough
	case 3:
		encodeQuantum(dst, src[0], src[1], src[2])
	case 0:
	default:
		panic("base64: encodeTail called with more than 11 bytes")
	}
	encodeFinal(dst[n/3*4:], src[n:])
}

// encodeSlow encodes src one 3-byte group at a time using only
// single-byte reads.
func encodeSlow(dst, src []byte) {
	for len(src) >= 3 {
		encodeQuantum(dst, src[0], src[1], src[2])
		src = src[3:]
		dst = dst[4:]
	}
	encodeFinal(dst, src)
}

// encodeQuantum encodes one full group into dst[:4].
func encodeQuantum(dst []byte, a, b, c byte) {
	_ = dst[3]
	dst[0] = encodeTable[a>>2]
	dst[1] = encodeTable[(a<<4|b>>4)&0x3f]
	dst[2] = encodeTable[(b<<2|c>>6)&0x3f]
	dst[3] = encodeTable[c&0x3f]
}

// encodeFinal encodes the last 0, 1, or 2 bytes of the input,
// padding the group with '='.
func encodeFinal(dst, src []byte) {
	switch len(src) {
	case 2:
		a, b := src[0], src[1]
		_ = dst[3]
		dst[0] = encodeTable[a>>2]
		dst[1] = encodeTable[(a<<4|b>>4)&0x3f]
		dst[2] = encodeTable[(b<<2)&0x3f]
		dst[3] = padChar
	case 1:
		a := src[0]
		_ = dst[3]
		dst[0] = encodeTable[a>>2]
		dst[1] = encodeTable[(a<<4)&0x3f]
		dst[2] = padChar
		dst[3] = padChar
	}
}
