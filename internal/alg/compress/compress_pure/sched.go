package compress_pure

import "github.com/zeebo/sha512block/internal/consts"

// Schedule produces the expanded message words W[16..79] of one block while
// holding only the 17 most recent ones. Word t lives in slot t mod 17.
type Schedule struct {
	w [consts.WindowWords]uint64
}

// Seed fills the window with W[16..32] computed from block.
func (s *Schedule) Seed(block *[consts.BlockWords]uint64) {
	word := func(t int) uint64 {
		if t < consts.BlockWords {
			return block[t]
		}
		return s.w[t%consts.WindowWords]
	}

	for t := 16; t < 16+consts.WindowWords; t++ {
		s.w[t%consts.WindowWords] = SmallSigma1(word(t-2)) + word(t-7) + SmallSigma0(word(t-15)) + word(t-16)
	}
}

// Refresh replaces n slots in place, producing W[base..base+n-1] from the
// 17 words before base. base must follow the words currently held.
func (s *Schedule) Refresh(base, n int) {
	const m = consts.WindowWords

	// slot k holds W[t-17] on entry and W[t] on exit. the slots 1, 2, 10
	// and 15 ahead hold W[t-16], W[t-15], W[t-7] and W[t-2], each either
	// left over from before base or written earlier in this loop.
	for t := base; t < base+n; t++ {
		k := t % m
		s.w[k] = s.w[(k+1)%m] + SmallSigma0(s.w[(k+2)%m]) + s.w[(k+10)%m] + SmallSigma1(s.w[(k+15)%m])
	}
}

// Word returns W[t]. It is only valid for the 17 words most recently
// produced by Seed or Refresh.
func (s *Schedule) Word(t int) uint64 {
	return s.w[t%consts.WindowWords]
}

// Expand drives the window through the whole schedule, calling fn with each
// of W[16..79] in order.
func (s *Schedule) Expand(block *[consts.BlockWords]uint64, fn func(t int, w uint64)) {
	s.Seed(block)
	for t := 16; t < consts.Rounds; t++ {
		if t > 16 && (t-16)%consts.WindowWords == 0 {
			s.Refresh(t, refreshLen(t))
		}
		fn(t, s.Word(t))
	}
}

// refreshLen is the number of words the refresh at base must produce. The
// last one is partial: 64 words after the block is 17*3 + 13.
func refreshLen(base int) int {
	if n := consts.Rounds - base; n < consts.WindowWords {
		return n
	}
	return consts.WindowWords
}
