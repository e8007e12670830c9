package wyhash

import "math/bits"

// secretCandidates are the byte values secrets are assembled from. Each
// has exactly 4 bits set, so every assembled word has a population count
// of 32 and the multiply-and-fold step never sees a degenerate operand.
var secretCandidates = [70]byte{
	15, 23, 27, 29, 30, 39, 43, 45, 46, 51, 53, 54, 57, 58,
	60, 71, 75, 77, 78, 83, 85, 86, 89, 90, 92, 99, 101, 102,
	105, 106, 108, 113, 114, 116, 120, 135, 139, 141, 142, 147, 149, 150,
	153, 154, 156, 163, 165, 166, 169, 170, 172, 177, 178, 180, 184, 195,
	197, 198, 201, 202, 204, 209, 210, 212, 216, 225, 226, 228, 232, 240,
}

// maxSecretAttempts bounds the rejection loop per secret word. The
// candidate table guarantees a valid word exists, so hitting the bound
// means the table itself is corrupted.
const maxSecretAttempts = 100000

// MakeSecret derives a hashing secret from seed. The same seed always
// yields the same secret. Each word is assembled byte-by-byte from the
// candidate table using wyrand draws and accepted only if it is odd and
// its XOR with every earlier word has exactly 32 bits set; rejected words
// are regenerated from further draws.
//
// MakeSecret panics if a word cannot be validated within a generous retry
// bound, which cannot happen unless the candidate table is corrupted.
func MakeSecret(seed uint64) Secret {
	var s Secret
	for i := 0; i < 4; i++ {
		accepted := false
		for attempt := 0; attempt < maxSecretAttempts && !accepted; attempt++ {
			var w uint64
			for j := 0; j < 64; j += 8 {
				w |= uint64(secretCandidates[wyrand(&seed)%70]) << j
			}
			if w%2 == 0 {
				continue
			}
			accepted = true
			for j := 0; j < i; j++ {
				if bits.OnesCount64(s[j]^w) != 32 {
					accepted = false
					break
				}
			}
			if accepted {
				s[i] = w
			}
		}
		if !accepted {
			panic("wyhash: secret generation exhausted retries; candidate table corrupted")
		}
	}
	return s
}
