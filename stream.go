package wyhash

import "encoding/binary"

// Fill overwrites p with random bytes, consuming one raw draw per 8 bytes
// (rounded up). Draws are written in little-endian order on every host,
// so a filled buffer reinterpreted as little-endian 64-bit words equals
// the corresponding Uint64 sequence. An empty p consumes no draw.
func (r *Rand) Fill(p []byte) {
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, r.Uint64())
		p = p[8:]
	}
	if len(p) > 0 {
		var tail [8]byte
		binary.LittleEndian.PutUint64(tail[:], r.Uint64())
		copy(p, tail[:])
	}
}

// Stream returns n random bytes. It is a packaging convenience over Fill;
// n of 0 returns an empty slice without consuming a draw.
func (r *Rand) Stream(n int) []byte {
	buf := make([]byte, n)
	r.Fill(buf)
	return buf
}
