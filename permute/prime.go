package permute

import "math/big"

// FindPrime returns the largest prime p ≤ max with p ≡ 3 (mod 4), the
// modulus QPR needs to biject [0, max].
//
// Degenerate small domains have no such prime: for max ≤ 3 the value
// max itself is returned (3 is already ≡ 3 mod 4 and prime; 0, 1 and 2
// make QPR the identity, which the Mixer stages tolerate).
//
// The walk steps down through odd candidates, testing primality only
// for the one-in-two candidates that pass the cheap p & 3 == 3 check.
// The prime gap below any 64-bit value is tiny in practice, so
// discovery is fast — but it is not free, so prefer building a Mixer
// once over rediscovering the prime per call.
func FindPrime(max uint64) uint64 {
	if max <= 3 {
		return max
	}
	n := max
	if n&1 == 0 {
		n--
	}
	for n > 3 {
		if n&3 == 3 && isPrime(n) {
			return n
		}
		n -= 2
	}

	return n
}

// isPrime reports whether n is prime.
//
// big.Int.ProbablyPrime(0) runs the Baillie-PSW test, which is proven
// exact for every input below 2^64, so this is a deterministic check
// despite the name.
func isPrime(n uint64) bool {
	return new(big.Int).SetUint64(n).ProbablyPrime(0)
}
