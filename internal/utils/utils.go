package utils

import (
	"encoding/binary"

	"github.com/zeebo/sha512block/internal/consts"
)

// BytesToWords loads a 128 byte block as 16 big-endian words.
func BytesToWords(bytes *[consts.BlockLen]byte, words *[consts.BlockWords]uint64) {
	words[0] = binary.BigEndian.Uint64(bytes[0*8:])
	words[1] = binary.BigEndian.Uint64(bytes[1*8:])
	words[2] = binary.BigEndian.Uint64(bytes[2*8:])
	words[3] = binary.BigEndian.Uint64(bytes[3*8:])
	words[4] = binary.BigEndian.Uint64(bytes[4*8:])
	words[5] = binary.BigEndian.Uint64(bytes[5*8:])
	words[6] = binary.BigEndian.Uint64(bytes[6*8:])
	words[7] = binary.BigEndian.Uint64(bytes[7*8:])
	words[8] = binary.BigEndian.Uint64(bytes[8*8:])
	words[9] = binary.BigEndian.Uint64(bytes[9*8:])
	words[10] = binary.BigEndian.Uint64(bytes[10*8:])
	words[11] = binary.BigEndian.Uint64(bytes[11*8:])
	words[12] = binary.BigEndian.Uint64(bytes[12*8:])
	words[13] = binary.BigEndian.Uint64(bytes[13*8:])
	words[14] = binary.BigEndian.Uint64(bytes[14*8:])
	words[15] = binary.BigEndian.Uint64(bytes[15*8:])
}

// WordsToBytes stores a hash state as the 64 byte big-endian digest.
func WordsToBytes(words *[consts.StateWords]uint64, bytes *[consts.DigestLen]byte) {
	binary.BigEndian.PutUint64(bytes[0*8:], words[0])
	binary.BigEndian.PutUint64(bytes[1*8:], words[1])
	binary.BigEndian.PutUint64(bytes[2*8:], words[2])
	binary.BigEndian.PutUint64(bytes[3*8:], words[3])
	binary.BigEndian.PutUint64(bytes[4*8:], words[4])
	binary.BigEndian.PutUint64(bytes[5*8:], words[5])
	binary.BigEndian.PutUint64(bytes[6*8:], words[6])
	binary.BigEndian.PutUint64(bytes[7*8:], words[7])
}

// PaddedLen returns the length of msgLen bytes after padding: a 0x80 byte,
// zeros, and a 16 byte length field, rounded up to whole blocks.
func PaddedLen(msgLen int) int {
	return (msgLen + 17 + consts.BlockLen - 1) / consts.BlockLen * consts.BlockLen
}

// Pad applies the SHA-512 padding rule to msg and returns the resulting
// blocks as big-endian words.
func Pad(msg []byte) [][consts.BlockWords]uint64 {
	buf := make([]byte, PaddedLen(len(msg)))
	n := copy(buf, msg)
	buf[n] = 0x80

	// the high 64 bits of the 128 bit length are always zero for an int
	// sized message, except for the bits shifted out of len*8.
	binary.BigEndian.PutUint64(buf[len(buf)-16:], uint64(len(msg))>>61)
	binary.BigEndian.PutUint64(buf[len(buf)-8:], uint64(len(msg))<<3)

	blocks := make([][consts.BlockWords]uint64, len(buf)/consts.BlockLen)
	for i := range blocks {
		var tmp [consts.BlockLen]byte
		copy(tmp[:], buf[i*consts.BlockLen:])
		BytesToWords(&tmp, &blocks[i])
	}
	return blocks
}

// PadTwoBlock pads msg into out and reports whether msg fits exactly two
// blocks once padded. out is left untouched when it does not.
func PadTwoBlock(msg []byte, out *[2 * consts.BlockWords]uint64) bool {
	if PaddedLen(len(msg)) != 2*consts.BlockLen {
		return false
	}
	blocks := Pad(msg)
	copy(out[:consts.BlockWords], blocks[0][:])
	copy(out[consts.BlockWords:], blocks[1][:])
	return true
}
