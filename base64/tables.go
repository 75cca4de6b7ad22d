package base64

// invalid is the decodeTable entry for bytes outside the
// alphabet. Only its high bit matters: a group is rejected if
// any translated character has bit 7 set.
const invalid = 0xff

// encodeTable maps a 6-bit value to its Base64 character.
//
// It uses the following table:
//
//	ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	abcdefghijklmnopqrstuvwxyz
//	0123456789
//	+/
var encodeTable = func() (t [64]byte) {
	for i := range t {
		t[i] = stdLookup(uint(i))
	}
	return
}()

// decodeTable maps a byte to its 6-bit value, or invalid.
//
// The padding character '=' maps to invalid; the final group
// is the only place padding is checked for.
var decodeTable = func() (t [256]byte) {
	for i := range t {
		t[i] = stdRevLookup(uint(i))
	}
	return
}()

// stdLookup converts the 6-bit value c to its corresponding
// base64 character.
//
// c must be in [0, 63].
//
// See http://0x80.pl/notesen/2016-01-12-sse-base64-encoding.html
func stdLookup(c uint) byte {
	// Start with 'A' and move the shift every time c crosses
	// into the next range: a-z, 0-9, '+', '/'.
	s := uint('A')
	s += (26 - c - 1) >> 8 & 6
	s -= (52 - c - 1) >> 8 & 75
	s -= (62 - c - 1) >> 8 & 15
	s += (63 - c - 1) >> 8 & 3
	return byte(c + s)
}

// stdRevLookup converts the base64 character c to its 6-bit
// binary value.
//
// If the character is invalid stdRevLookup returns 0xff.
func stdRevLookup(c uint) byte {
	// switch {
	// case c >= 'A' && c <= 'Z':
	//     s = -65
	// case c >= 'a' && c <= 'z'
	//     s = -71
	// case c >= '0' && c <= '9'
	//     s = 4
	// case c == '+':
	//     s = 19
	// case c == '/':
	//     s = 16
	// }
	s := ((((64 - c) & (c - 91)) >> 8) & 191) ^
		((((96 - c) & (c - 123)) >> 8) & 185) ^
		((((47 - c) & (c - 58)) >> 8) & 4) ^
		((((42 - c) & (c - 44)) >> 8) & 19) ^
		((((46 - c) & (c - 48)) >> 8) & 16)
	// If s == 0 then the input is corrupt.
	return byte((s+c)&0x3f | ((((0 - s) >> 8) & 0xff) ^ 0xff))
}
