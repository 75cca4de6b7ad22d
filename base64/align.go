package base64

import "github.com/ericlagergren/b64/internal/mem"

// alignment classifies where an input buffer starts relative
// to a word boundary.
type alignment int

const (
	// aligned inputs go straight to the fast engines.
	aligned alignment = iota
	// realignable inputs become aligned after one 3-byte
	// group, since 1+3 ≡ 0 (mod 4).
	realignable
	// unaligned inputs need the slow engines.
	unaligned
)

// classifyEncode picks the encode strategy for src.
func classifyEncode(src []byte) alignment {
	switch mem.Residue(src) {
	case 0:
		return aligned
	case 1:
		if len(src) >= 3 {
			return realignable
		}
		return unaligned
	default:
		return unaligned
	}
}
