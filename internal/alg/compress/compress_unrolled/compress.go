package compress_unrolled

import (
	"math/bits"

	"github.com/zeebo/sha512block/internal/consts"
)

// round runs one round with the working words passed in their current
// roles. Only d and h change: it returns the new d, which becomes e, and the
// new h, which becomes a. The caller rotates the roles by permuting the
// arguments of the following round.
func round(a, b, c, d, e, f, g, h, k, w uint64) (uint64, uint64) {
	s1 := bits.RotateLeft64(e, -14) ^ bits.RotateLeft64(e, -18) ^ bits.RotateLeft64(e, -41)
	ch := g ^ (e & (f ^ g))
	t1 := h + s1 + ch + k + w

	s0 := bits.RotateLeft64(a, -28) ^ bits.RotateLeft64(a, -34) ^ bits.RotateLeft64(a, -39)
	maj := a ^ ((a ^ b) & (a ^ c))

	return d + t1, t1 + s0 + maj
}

// next returns W[t], producing it into the window when t is past the block.
// Slot t mod 17 holds W[t-17] on entry, which no later word needs.
func next(w *[consts.WindowWords]uint64, t int) uint64 {
	const m = consts.WindowWords

	if t < consts.BlockWords {
		return w[t]
	}

	v1 := w[(t-2)%m]
	s1 := bits.RotateLeft64(v1, -19) ^ bits.RotateLeft64(v1, -61) ^ (v1 >> 6)
	v0 := w[(t-15)%m]
	s0 := bits.RotateLeft64(v0, -1) ^ bits.RotateLeft64(v0, -8) ^ (v0 >> 7)

	w[t%m] = s1 + w[(t-7)%m] + s0 + w[(t-16)%m]
	return w[t%m]
}

// Compress absorbs block into state, writing the next state to out. out may
// alias state. block is copied into the window and never written.
func Compress(state *[consts.StateWords]uint64, block *[consts.BlockWords]uint64, out *[consts.StateWords]uint64) {
	var w [consts.WindowWords]uint64
	copy(w[:], block[:])

	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for i := 0; i < consts.Rounds; i += 8 {
		d, h = round(a, b, c, d, e, f, g, h, consts.K[i+0], next(&w, i+0))
		c, g = round(h, a, b, c, d, e, f, g, consts.K[i+1], next(&w, i+1))
		b, f = round(g, h, a, b, c, d, e, f, consts.K[i+2], next(&w, i+2))
		a, e = round(f, g, h, a, b, c, d, e, consts.K[i+3], next(&w, i+3))
		h, d = round(e, f, g, h, a, b, c, d, consts.K[i+4], next(&w, i+4))
		g, c = round(d, e, f, g, h, a, b, c, consts.K[i+5], next(&w, i+5))
		f, b = round(c, d, e, f, g, h, a, b, consts.K[i+6], next(&w, i+6))
		e, a = round(b, c, d, e, f, g, h, a, consts.K[i+7], next(&w, i+7))
	}

	out[0] = state[0] + a
	out[1] = state[1] + b
	out[2] = state[2] + c
	out[3] = state[3] + d
	out[4] = state[4] + e
	out[5] = state[5] + f
	out[6] = state[6] + g
	out[7] = state[7] + h
}
