package cmd

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zeebo/sha512block"
	"github.com/zeebo/sha512block/internal/utils"
)

type vector struct {
	name  string
	input string
	hash  string
}

var knownVectors = []vector{
	{
		name:  "empty",
		input: "",
		hash: "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce" +
			"47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e",
	},
	{
		name:  "abc",
		input: "abc",
		hash: "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a" +
			"2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
	},
	{
		name: "two-block",
		input: "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmn" +
			"hijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu",
		hash: "8e959b75dae313da8cf4f72814fc143f8f7779c6eb9f7fa17299aeadb6889018" +
			"501d289e4900f7e4331b99dec4b5433ac7d329eeb6dd26545e96e55b874be909",
	},
}

var vectorsCmd = &cobra.Command{
	Use:   "vectors",
	Short: "Checks the compressor against known SHA-512 digests.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var failed []string
		for _, v := range knownVectors {
			got := digest([]byte(v.input))
			log := logrus.WithFields(logrus.Fields{"vector": v.name, "digest": got})
			if got != v.hash {
				log.WithField("exp", v.hash).Error("mismatch")
				failed = append(failed, v.name)
				continue
			}
			log.Info("ok")
		}

		if len(failed) > 0 {
			return errors.Errorf("vectors failed: %s", strings.Join(failed, ", "))
		}
		return nil
	},
}

// digest chains Compress over the padded blocks of msg.
func digest(msg []byte) string {
	state := sha512block.IV
	for _, block := range utils.Pad(msg) {
		block := block
		state = sha512block.Compress(state, &block)
	}

	var out [sha512block.Size]byte
	utils.WordsToBytes(&state, &out)
	return hex.EncodeToString(out[:])
}
