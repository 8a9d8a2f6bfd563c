package compress_pure

import "math/bits"

func rotr(x uint64, n int) uint64 { return bits.RotateLeft64(x, -n) }

// BigSigma0 is the Σ0 mix applied to a each round.
func BigSigma0(x uint64) uint64 { return rotr(x, 28) ^ rotr(x, 34) ^ rotr(x, 39) }

// BigSigma1 is the Σ1 mix applied to e each round.
func BigSigma1(x uint64) uint64 { return rotr(x, 14) ^ rotr(x, 18) ^ rotr(x, 41) }

// SmallSigma0 is the σ0 mix of the message schedule.
func SmallSigma0(x uint64) uint64 { return rotr(x, 1) ^ rotr(x, 8) ^ (x >> 7) }

// SmallSigma1 is the σ1 mix of the message schedule.
func SmallSigma1(x uint64) uint64 { return rotr(x, 19) ^ rotr(x, 61) ^ (x >> 6) }

// BitSelect takes the bits of y where mask is set and the bits of x elsewhere.
func BitSelect(x, y, mask uint64) uint64 { return x ^ ((x ^ y) & mask) }

// Choose takes the bits of f where e is set and the bits of g elsewhere.
func Choose(e, f, g uint64) uint64 { return BitSelect(g, f, e) }

// Majority returns, per bit, the value held by at least two of a, b and c.
// Where a and c agree they are the majority; where they differ b decides.
func Majority(a, b, c uint64) uint64 { return BitSelect(a, b, a^c) }
