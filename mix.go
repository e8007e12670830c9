package wyhash

import (
	"encoding/binary"
	"math/bits"
)

// mum computes the full 128-bit product of a and b. bits.Mul64 compiles to
// a single multiply on 64-bit targets; on 32-bit targets the compiler
// lowers it to 32x32 partial products, which is slower but bit-identical.
func mum(a, b uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(a, b)
	return lo, hi
}

// mix folds the 128-bit product of a and b down to 64 bits by XORing its
// halves. Every component of the package reduces through this primitive.
func mix(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}

func read8(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}

func read4(b []byte) uint64 {
	return uint64(binary.LittleEndian.Uint32(b))
}

// read3 packs the first, middle and last of n (1 to 3) bytes into a word
// the way the reference reads short keys.
func read3(b []byte, n int) uint64 {
	return uint64(b[0])<<16 | uint64(b[n>>1])<<8 | uint64(b[n-1])
}
