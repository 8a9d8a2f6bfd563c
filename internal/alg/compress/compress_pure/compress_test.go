package compress_pure

import (
	"crypto/sha512"
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
	"github.com/zeebo/sha512block/internal/consts"
	"github.com/zeebo/sha512block/internal/utils"
	"github.com/zeebo/sha512block/ref"
)

func randomState() (state [consts.StateWords]uint64) {
	for i := range &state {
		state[i] = pcg.Uint64()
	}
	return state
}

func TestCompress(t *testing.T) {
	for i := 0; i < 1e5; i++ {
		var o1, o2 [consts.StateWords]uint64

		state, block := randomState(), randomBlock()

		Compress(&state, &block, &o1)
		ref.Compress(&state, &block, &o2)

		assert.Equal(t, o1, o2)
	}
}

func TestCompressDigests(t *testing.T) {
	for _, n := range []int{0, 3, 111, 112, 239, 240, 367} {
		msg := make([]byte, n)
		for i := range msg {
			msg[i] = byte(pcg.Uint32())
		}

		state := consts.IV
		for _, block := range utils.Pad(msg) {
			block := block
			Compress(&state, &block, &state)
		}

		exp := sha512.Sum512(msg)
		for i := range state {
			assert.Equal(t, state[i], binary.BigEndian.Uint64(exp[8*i:]))
		}
	}
}

func TestCompressLeavesInputs(t *testing.T) {
	state, block := randomState(), randomBlock()
	state0, block0 := state, block

	var o1, o2 [consts.StateWords]uint64
	Compress(&state, &block, &o1)
	Compress(&state, &block, &o2)

	assert.Equal(t, o1, o2)
	assert.Equal(t, state, state0)
	assert.Equal(t, block, block0)
}

func TestCompressWraparound(t *testing.T) {
	mod := new(big.Int).Lsh(big.NewInt(1), 64)

	for i := 0; i < 1e3; i++ {
		var state [consts.StateWords]uint64
		for j := range state {
			// within 2^16 of the top so the feed forward nearly always wraps
			state[j] = ^uint64(0) - uint64(pcg.Uint32()&0xffff)
		}
		block := randomBlock()
		if i == 0 {
			block = [consts.BlockWords]uint64{}
			for j := range block {
				block[j] = ^uint64(0)
			}
		}

		var out [consts.StateWords]uint64
		Compress(&state, &block, &out)
		work := ref.Rounds(&state, &block)

		for j := range out {
			sum := new(big.Int).SetUint64(state[j])
			sum.Add(sum, new(big.Int).SetUint64(work[j]))
			sum.Mod(sum, mod)
			assert.Equal(t, out[j], sum.Uint64())
		}
	}
}
