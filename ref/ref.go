// Package ref is a direct rendition of the FIPS 180-4 SHA-512 compression
// function, materializing the full 80 word message schedule. It exists to
// check the optimized compressors against.
package ref

import (
	"math/bits"

	"github.com/zeebo/sha512block/internal/consts"
)

// Expand returns the full message schedule W[0..79] for block.
func Expand(block *[16]uint64) (w [consts.Rounds]uint64) {
	copy(w[:16], block[:])
	for t := 16; t < consts.Rounds; t++ {
		v1 := w[t-2]
		s1 := bits.RotateLeft64(v1, -19) ^ bits.RotateLeft64(v1, -61) ^ (v1 >> 6)
		v0 := w[t-15]
		s0 := bits.RotateLeft64(v0, -1) ^ bits.RotateLeft64(v0, -8) ^ (v0 >> 7)
		w[t] = s1 + w[t-7] + s0 + w[t-16]
	}
	return w
}

// Rounds runs the 80 rounds over state and returns the working variables
// a..h before they are fed forward.
func Rounds(state *[8]uint64, block *[16]uint64) (out [8]uint64) {
	w := Expand(block)
	a, b, c, d, e, f, g, h := state[0], state[1], state[2], state[3], state[4], state[5], state[6], state[7]

	for t := 0; t < consts.Rounds; t++ {
		S1 := bits.RotateLeft64(e, -14) ^ bits.RotateLeft64(e, -18) ^ bits.RotateLeft64(e, -41)
		ch := (e & f) | (^e & g)
		t1 := h + S1 + ch + consts.K[t] + w[t]

		S0 := bits.RotateLeft64(a, -28) ^ bits.RotateLeft64(a, -34) ^ bits.RotateLeft64(a, -39)
		maj := (a & b) | (a & c) | (b & c)
		t2 := S0 + maj

		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	return [8]uint64{a, b, c, d, e, f, g, h}
}

// Compress returns the next hash state after absorbing block.
func Compress(state *[8]uint64, block *[16]uint64, out *[8]uint64) {
	v := Rounds(state, block)
	for i := range out {
		out[i] = state[i] + v[i]
	}
}
