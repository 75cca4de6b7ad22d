package base64

import (
	"bytes"
	"encoding/base64"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/rand"
)

// TestEncodeEngines checks encodeFast and encodeSlow against
// the stdlib for every input length.
func TestEncodeEngines(t *testing.T) {
	src := randBytes(t, 1024)
	for i := 0; i <= len(src); i++ {
		src := src[:i]
		n := StdEncoding.EncodedLen(i)
		want := []byte(base64.StdEncoding.EncodeToString(src))

		fast := make([]byte, n)
		encodeFast(fast, src)
		if !bytes.Equal(want, fast) {
			t.Fatalf("#%d: encodeFast: %s", i, cmp.Diff(want, fast))
		}

		slow := make([]byte, n)
		encodeSlow(slow, src)
		if !bytes.Equal(want, slow) {
			t.Fatalf("#%d: encodeSlow: %s", i, cmp.Diff(want, slow))
		}
	}
}

func TestEncodeTail(t *testing.T) {
	src := randBytes(t, 11)
	for i := 0; i <= len(src); i++ {
		want := []byte(base64.StdEncoding.EncodeToString(src[:i]))
		got := make([]byte, len(want))
		encodeTail(got, src[:i])
		if !bytes.Equal(want, got) {
			t.Fatalf("#%d: %s", i, cmp.Diff(want, got))
		}
	}
}

// TestDecodeEngines checks that decodeFast and decodeSlow, for
// every shift, agree with each other.
func TestDecodeEngines(t *testing.T) {
	src := randBytes(t, 1024)
	for i := 1; i <= len(src); i++ {
		enc := []byte(base64.StdEncoding.EncodeToString(src[:i]))
		dst := make([]byte, StdEncoding.DecodedLen(len(enc)))

		n, err := decodeFast(dst, enc, false)
		if err != nil {
			t.Fatalf("#%d: decodeFast: %v", i, err)
		}
		if !bytes.Equal(src[:i], dst[:n]) {
			t.Fatalf("#%d: decodeFast: %s", i, cmp.Diff(src[:i], dst[:n]))
		}

		for shift := 1; shift <= 3; shift++ {
			for j := range dst {
				dst[j] = 0
			}
			n, err := decodeSlow(dst, enc, shift, false)
			if err != nil {
				t.Fatalf("#%d: decodeSlow(%d): %v", i, shift, err)
			}
			if !bytes.Equal(src[:i], dst[:n]) {
				t.Fatalf("#%d: decodeSlow(%d): %s", i, shift, cmp.Diff(src[:i], dst[:n]))
			}
		}
	}
}

func TestDecodeSlowBadShift(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	decodeSlow(make([]byte, 3), []byte("QUJD"), 0, false)
}

// TestDecodeEnginesReject corrupts each position of a valid
// encoding and checks that every decode engine rejects it.
func TestDecodeEnginesReject(t *testing.T) {
	enc := []byte(StdEncoding.EncodeToString(randBytes(t, 60)))
	dst := make([]byte, StdEncoding.DecodedLen(len(enc)))
	for i := 0; i < len(enc); i++ {
		bad := bytes.Clone(enc)
		bad[i] = '.'
		if _, err := decodeFast(dst, bad, false); err != ErrInvalidCharacter {
			t.Fatalf("#%d: decodeFast: expected %v, got %v", i, ErrInvalidCharacter, err)
		}
		for shift := 1; shift <= 3; shift++ {
			if _, err := decodeSlow(dst, bad, shift, false); err != ErrInvalidCharacter {
				t.Fatalf("#%d: decodeSlow(%d): expected %v, got %v",
					i, shift, ErrInvalidCharacter, err)
			}
		}
	}
}

// TestRoundTrip encodes and decodes random inputs at random
// residues until the time budget runs out.
func TestRoundTrip(t *testing.T) {
	d := 2 * time.Second
	if testing.Short() {
		d = 100 * time.Millisecond
	}
	tm := time.NewTimer(d)
	defer tm.Stop()

	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %#x", seed)
	rng := rand.New(rand.NewSource(seed))

	buf := make([]byte, 512)
	for i := 0; ; i++ {
		select {
		case <-tm.C:
			t.Logf("iter: %d", i)
			return
		default:
		}

		n := 1 + rng.Intn(len(buf)-1)
		rng.Read(buf[:n])
		src := at(buf[:n], rng.Intn(4))

		enc := at([]byte(StdEncoding.EncodeToString(src)), rng.Intn(4))
		if want := base64.StdEncoding.EncodeToString(src); string(enc) != want {
			t.Fatalf("#%d: Encode mismatch: %s", i, cmp.Diff(want, string(enc)))
		}

		dst := make([]byte, StdEncoding.DecodedLen(len(enc)))
		m, err := StdEncoding.Decode(dst, enc)
		if err != nil {
			t.Fatalf("#%d: Decode(%q): %v", i, enc, err)
		}
		if !bytes.Equal(src, dst[:m]) {
			t.Fatalf("#%d: Decode mismatch: %s", i, cmp.Diff(src, dst[:m]))
		}
	}
}

var sinkB byte

func BenchmarkStdLookup(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkB = stdLookup(uint(i % len(stdTable)))
	}
}

func BenchmarkStdRevLookup(b *testing.B) {
	for i := 0; i < b.N; i++ {
		c := stdTable[i%len(stdTable)]
		sinkB = stdRevLookup(uint(c))
	}
}

func benchmarkEncode(b *testing.B, residue int) {
	src := at(randBytes(b, 8192), residue)
	dst := make([]byte, StdEncoding.EncodedLen(len(src)))
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		StdEncoding.Encode(dst, src)
	}
}

func BenchmarkEncodeAligned(b *testing.B) { benchmarkEncode(b, 0) }
func BenchmarkEncodeRealignable(b *testing.B) { benchmarkEncode(b, 1) }
func BenchmarkEncodeUnaligned(b *testing.B) { benchmarkEncode(b, 2) }

func benchmarkDecode(b *testing.B, residue int) {
	src := at([]byte(StdEncoding.EncodeToString(randBytes(b, 8192))), residue)
	dst := make([]byte, StdEncoding.DecodedLen(len(src)))
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := StdEncoding.Decode(dst, src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeAligned(b *testing.B) { benchmarkDecode(b, 0) }
func BenchmarkDecodeUnaligned(b *testing.B) { benchmarkDecode(b, 3) }

func BenchmarkStdlibEncode(b *testing.B) {
	src := randBytes(b, 8192)
	dst := make([]byte, base64.StdEncoding.EncodedLen(len(src)))
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		base64.StdEncoding.Encode(dst, src)
	}
}
