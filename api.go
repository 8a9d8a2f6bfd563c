// Package sha512block provides the SHA-512 block compression function.
//
// It does not pad messages, convert byte order, or buffer input. Callers hand
// it blocks that are already padded and loaded as big-endian words, and read
// the digest back out of the returned state words in big-endian order.
package sha512block

import (
	"github.com/zeebo/sha512block/internal/alg/compress"
	"github.com/zeebo/sha512block/internal/consts"
)

const (
	// BlockSize is the number of bytes in a block.
	BlockSize = consts.BlockLen

	// Size is the number of bytes in a digest.
	Size = consts.DigestLen
)

// IV is the standard SHA-512 initial state.
var IV = consts.IV

// Compress returns the state that results from absorbing block into state.
// The block is not modified. Chaining Compress from IV over the blocks of a
// padded message yields its digest.
func Compress(state [8]uint64, block *[16]uint64) [8]uint64 {
	compress.Compress(&state, block, &state)
	return state
}

// CompressTwoBlock compresses the two blocks in blocks starting from the
// standard initial state. It does not check that blocks holds a correctly
// padded message of 112 to 239 bytes; that is left to the caller.
func CompressTwoBlock(blocks *[32]uint64) [8]uint64 {
	state := consts.IV
	compress.Compress(&state, (*[16]uint64)(blocks[0:16]), &state)
	compress.Compress(&state, (*[16]uint64)(blocks[16:32]), &state)
	return state
}
