package wyhash

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
)

// ErrInvalidRange reports a bounded draw with an empty or inverted range:
// hi <= lo for a real interval, k == 0 for an integer bound, or std <= 0
// for a Gaussian.
var ErrInvalidRange = errors.New("invalid range")

// Rand satisfies math/rand/v2's Source, so it can drive the stdlib
// distributions as well as its own.
var _ rand.Source = (*Rand)(nil)

// Rand is a wyrand pseudo-random generator. Its entire state is one
// 64-bit word advanced on every draw; every seed starts a distinct
// sequence with full period 2^64.
//
// A Rand is NOT safe for concurrent use: callers must give each goroutine
// its own instance or serialize access externally. Draws never block,
// allocate, or fail.
type Rand struct {
	state uint64
}

// NewRand returns a generator seeded from the system entropy source. The
// one-time entropy read may block briefly on some platforms; draws never
// do. Use NewRandSeed for reproducible sequences.
func NewRand() (*Rand, error) {
	return NewRandFromReader(crand.Reader)
}

// NewRandFromReader returns a generator seeded with 8 bytes read from r.
// It exists so tests and callers with their own entropy source can inject
// one in place of the system default.
func NewRandFromReader(r io.Reader) (*Rand, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, fmt.Errorf("wyhash: entropy seeding: %w", err)
	}
	return &Rand{state: binary.LittleEndian.Uint64(buf[:])}, nil
}

// NewRandSeed returns a generator with the given seed. The same seed
// always produces the same sequence of draws.
func NewRandSeed(seed uint64) *Rand {
	return &Rand{state: seed}
}

// wyrand advances state and returns the next raw value. Shared by Rand
// and MakeSecret.
func wyrand(state *uint64) uint64 {
	*state += wyp0
	return mix(*state, *state^wyp1)
}

// Uint64 returns the next raw 64-bit draw.
func (r *Rand) Uint64() uint64 {
	return wyrand(&r.state)
}

// 1/2^52 and 1/2^20 as exact powers of two, for scaling integer draws
// into floats without division.
const (
	norm52 = 1.0 / (1 << 52)
	norm20 = 1.0 / (1 << 20)
)

// Float64 returns a uniformly distributed value in [0, 1), consuming one
// raw draw. The top 52 bits of the draw are scaled by 2^-52, so 1.0 is
// never produced.
func (r *Rand) Float64() float64 {
	return float64(r.Uint64()>>12) * norm52
}

// Float64Range returns a uniformly distributed value in [lo, hi),
// consuming one raw draw. It returns ErrInvalidRange without consuming a
// draw unless hi > lo.
func (r *Rand) Float64Range(lo, hi float64) (float64, error) {
	if !(hi > lo) {
		return 0, fmt.Errorf("wyhash: uniform bounds [%v, %v): %w", lo, hi, ErrInvalidRange)
	}
	return lo + (hi-lo)*r.Float64(), nil
}

// Uint64n returns a value in [0, k), consuming one raw draw. It scales
// the draw by k through a 128-bit multiply and keeps the high half, which
// is biased by O(k/2^64); that bias is intentional, trading exactness for
// a rejection-free single draw per value. It returns ErrInvalidRange
// without consuming a draw when k == 0.
func (r *Rand) Uint64n(k uint64) (uint64, error) {
	if k == 0 {
		return 0, fmt.Errorf("wyhash: uniform bound must be positive: %w", ErrInvalidRange)
	}
	_, hi := mum(r.Uint64(), k)
	return hi, nil
}

// Gaussian01 returns an APPROXIMATELY Gaussian value with mean 0 and
// standard deviation 1, consuming one raw draw. The draw's three 21-bit
// fields are summed, giving an Irwin-Hall approximation clipped to
// (-3, 3); it is a deterministic function of the draw, not a rejection
// sampler.
func (r *Rand) Gaussian01() float64 {
	v := r.Uint64()
	return float64((v&0x1fffff)+((v>>21)&0x1fffff)+((v>>42)&0x1fffff))*norm20 - 3.0
}

// Gaussian returns an approximately Gaussian value with the given mean
// and standard deviation, consuming one raw draw. It returns
// ErrInvalidRange without consuming a draw unless std > 0.
func (r *Rand) Gaussian(mean, std float64) (float64, error) {
	if !(std > 0) {
		return 0, fmt.Errorf("wyhash: standard deviation %v: %w", std, ErrInvalidRange)
	}
	return r.Gaussian01()*std + mean, nil
}
