package compress_pure

import "github.com/zeebo/sha512block/internal/consts"

// Compress absorbs block into state, writing the next state to out. out may
// alias state. block is only read.
func Compress(state *[consts.StateWords]uint64, block *[consts.BlockWords]uint64, out *[consts.StateWords]uint64) {
	var s Schedule

	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for t := 0; t < consts.Rounds; t++ {
		var w uint64
		switch {
		case t < consts.BlockWords:
			w = block[t]
		case t == consts.BlockWords:
			s.Seed(block)
			w = s.Word(t)
		default:
			if (t-16)%consts.WindowWords == 0 {
				s.Refresh(t, refreshLen(t))
			}
			w = s.Word(t)
		}

		t1 := h + BigSigma1(e) + Choose(e, f, g) + consts.K[t] + w
		t2 := BigSigma0(a) + Majority(a, b, c)

		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
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
