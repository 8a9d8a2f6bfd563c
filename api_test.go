package sha512block

import (
	"crypto/sha512"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
	"github.com/zeebo/sha512block/internal/utils"
)

func digestHex(state [8]uint64) string {
	var out [Size]byte
	utils.WordsToBytes(&state, &out)
	return hex.EncodeToString(out[:])
}

func chain(msg []byte) [8]uint64 {
	state := IV
	for _, block := range utils.Pad(msg) {
		block := block
		state = Compress(state, &block)
	}
	return state
}

var vectors = []struct {
	name   string
	input  string
	blocks int
	hash   string
}{
	{
		name:   "Empty",
		input:  "",
		blocks: 1,
		hash: "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce" +
			"47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e",
	},
	{
		name:   "ABC",
		input:  "abc",
		blocks: 1,
		hash: "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a" +
			"2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
	},
	{
		name: "TwoBlock",
		input: "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmn" +
			"hijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu",
		blocks: 2,
		hash: "8e959b75dae313da8cf4f72814fc143f8f7779c6eb9f7fa17299aeadb6889018" +
			"501d289e4900f7e4331b99dec4b5433ac7d329eeb6dd26545e96e55b874be909",
	},
	{
		name:   "ThreeBlock",
		input:  strings.Repeat("0123456789", 30),
		blocks: 3,
	},
}

func TestVectors(t *testing.T) {
	for _, tv := range vectors {
		t.Run(tv.name, func(t *testing.T) {
			assert.Equal(t, len(utils.Pad([]byte(tv.input))), tv.blocks)

			exp := sha512.Sum512([]byte(tv.input))
			if tv.hash != "" {
				assert.Equal(t, tv.hash, hex.EncodeToString(exp[:]))
			}

			assert.Equal(t, digestHex(chain([]byte(tv.input))), hex.EncodeToString(exp[:]))
		})
	}
}

func TestEmptyBlock(t *testing.T) {
	var block [16]uint64
	block[0] = 0x8000000000000000

	assert.Equal(t, digestHex(Compress(IV, &block)), vectors[0].hash)
}

func TestCompressTwoBlock(t *testing.T) {
	t.Run("Random", func(t *testing.T) {
		for i := 0; i < 1e4; i++ {
			var blocks [32]uint64
			for j := range &blocks {
				blocks[j] = pcg.Uint64()
			}

			var b0, b1 [16]uint64
			copy(b0[:], blocks[:16])
			copy(b1[:], blocks[16:])

			assert.Equal(t, CompressTwoBlock(&blocks), Compress(Compress(IV, &b0), &b1))
		}
	})

	t.Run("Messages", func(t *testing.T) {
		for n := 112; n <= 239; n++ {
			msg := make([]byte, n)
			for i := range msg {
				msg[i] = byte(pcg.Uint32())
			}

			var blocks [32]uint64
			assert.That(t, utils.PadTwoBlock(msg, &blocks))

			exp := sha512.Sum512(msg)
			assert.Equal(t, digestHex(CompressTwoBlock(&blocks)), hex.EncodeToString(exp[:]))
		}
	})
}

func TestCompressPure(t *testing.T) {
	var state [8]uint64
	var block [16]uint64
	for i := range &state {
		state[i] = pcg.Uint64()
	}
	for i := range &block {
		block[i] = pcg.Uint64()
	}
	state0, block0 := state, block

	o1 := Compress(state, &block)
	o2 := Compress(state, &block)

	assert.Equal(t, o1, o2)
	assert.Equal(t, state, state0)
	assert.Equal(t, block, block0)
}

func TestIVCopy(t *testing.T) {
	saved := IV
	defer func() { IV = saved }()

	var blocks [32]uint64
	exp := CompressTwoBlock(&blocks)

	IV[0] ^= 1
	assert.Equal(t, CompressTwoBlock(&blocks), exp)
}
