package wyhash

import (
	"encoding/binary"
	"hash"
)

// Compile-time interface assertions.
var _ hash.Hash = (*Digest)(nil)
var _ hash.Hash64 = (*Digest)(nil)

// Digest adapts the one-shot hash engine to the standard streaming
// [hash.Hash64] interface by buffering written bytes and hashing them on
// Sum64. It exists for callers that require the stdlib interface; the
// one-shot Hasher.Sum64 is faster and allocation-free.
type Digest struct {
	secret Secret
	buf    []byte
}

// NewDigest returns a streaming hasher using the default secret.
func NewDigest() *Digest {
	return &Digest{secret: DefaultSecret()}
}

// NewDigestSeeded returns a streaming hasher whose secret is derived from
// seed with MakeSecret.
func NewDigestSeeded(seed uint64) *Digest {
	return &Digest{secret: MakeSecret(seed)}
}

// Write appends p to the buffered data. It never fails.
func (d *Digest) Write(p []byte) (int, error) {
	d.buf = append(d.buf, p...)
	return len(p), nil
}

// Sum64 returns the digest of the buffered data.
func (d *Digest) Sum64() uint64 {
	return sum64(d.buf, &d.secret)
}

// Sum appends the current digest, big-endian, to b.
func (d *Digest) Sum(b []byte) []byte {
	var out [8]byte
	binary.BigEndian.PutUint64(out[:], d.Sum64())
	return append(b, out[:]...)
}

// Reset discards the buffered data, keeping the secret.
func (d *Digest) Reset() {
	d.buf = d.buf[:0]
}

// Size returns the digest size in bytes.
func (d *Digest) Size() int { return 8 }

// BlockSize returns the write block size.
func (d *Digest) BlockSize() int { return 1 }
