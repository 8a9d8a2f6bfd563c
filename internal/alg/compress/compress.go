package compress

import (
	"github.com/zeebo/sha512block/internal/alg/compress/compress_unrolled"
	"github.com/zeebo/sha512block/internal/consts"
)

// Compress absorbs block into state, writing the next state to out.
func Compress(state *[consts.StateWords]uint64, block *[consts.BlockWords]uint64, out *[consts.StateWords]uint64) {
	compress_unrolled.Compress(state, block, out)
}
